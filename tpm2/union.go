package tpm2

import (
	"fmt"
	"reflect"
	"sort"
)

// Union is implemented by every TPMU type. A union value carries the
// selector it was constructed with, so encoding never has to guess which
// member is populated.
type Union interface {
	// Family returns the union family of the type.
	Family() *UnionFamily
	Selector() (uint64, bool)
	Member() interface{}
	tpmUnion() union
}

// union is embedded by every TPMU type.
type union struct {
	selector uint64
	// contents points at the payload, or is nil for empty members.
	contents interface{}
	set      bool
}

func (u union) tpmUnion() union { return u }

func (u *union) setUnion(selector uint64, contents interface{}) {
	u.selector = selector
	u.contents = contents
	u.set = true
}

// Selector returns the stored selector and whether the union was set.
func (u union) Selector() (uint64, bool) {
	return u.selector, u.set
}

// Member returns the selected payload, or nil for empty and unset members.
func (u union) Member() interface{} {
	return u.contents
}

// unionSetter is implemented by pointers to TPMU types.
type unionSetter interface {
	setUnion(selector uint64, contents interface{})
}

var unionType = reflect.TypeOf((*Union)(nil)).Elem()

// variant maps one selector to its payload type. A nil payload marks an
// empty member.
type variant struct {
	selector uint64
	payload  reflect.Type
}

// UnionFamily is the table of payload types of one TPMU type, keyed by the
// values of its discriminator family.
type UnionFamily struct {
	name          string
	discriminator *Constants
	variants      map[uint64]variant
	order         []uint64
}

func newUnionFamily(name string, discriminator *Constants, variants ...variant) *UnionFamily {
	f := &UnionFamily{
		name:          name,
		discriminator: discriminator,
		variants:      make(map[uint64]variant),
	}
	for _, v := range variants {
		if !discriminator.Contains(v.selector) {
			panic(fmt.Sprintf("tpm2: %s selector 0x%x is not a %s value", name, v.selector, discriminator.Name()))
		}
		if _, ok := f.variants[v.selector]; ok {
			panic(fmt.Sprintf("tpm2: %s selector 0x%x registered twice", name, v.selector))
		}
		f.variants[v.selector] = v
		f.order = append(f.order, v.selector)
	}
	registerUnionFamily(f)
	return f
}

type selectorType interface {
	~uint8 | ~uint16 | ~uint32
}

// member returns a variant for a payload type. It is only used while
// building tables.
func member[T any, S selectorType](selector S) variant {
	return variant{selector: uint64(selector), payload: reflect.TypeOf((*T)(nil)).Elem()}
}

func empty[S selectorType](selector S) variant {
	return variant{selector: uint64(selector)}
}

// Name returns the union family name, e.g. "TPMU_SIGNATURE".
func (f *UnionFamily) Name() string { return f.name }

// Discriminator returns the constant family the selectors are drawn from.
func (f *UnionFamily) Discriminator() *Constants { return f.discriminator }

// Selectors returns every registered selector in registration order.
func (f *UnionFamily) Selectors() []uint64 {
	return append([]uint64(nil), f.order...)
}

// PayloadType returns the Go type of the member selected by sel. It returns
// nil for empty members.
func (f *UnionFamily) PayloadType(sel uint64) (reflect.Type, error) {
	v, ok := f.variants[sel]
	if !ok {
		return nil, &UnresolvedUnionVariantError{Family: f.name, Selector: sel}
	}
	return v.payload, nil
}

// Resolve returns a pointer to a new, zero payload for the member selected by
// sel, or nil if that member is empty.
func (f *UnionFamily) Resolve(sel uint64) (interface{}, error) {
	t, err := f.PayloadType(sel)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return reflect.New(t).Interface(), nil
}

// DiscriminatorFor returns the selector stored in u after checking that it is
// registered in this family and that the contents have the registered type.
func (f *UnionFamily) DiscriminatorFor(u Union) (uint64, error) {
	if u.Family() != f {
		return 0, unencodable(f.name, "value belongs to %s", u.Family().Name())
	}
	info := u.tpmUnion()
	if !info.set {
		return 0, unencodable(f.name, "union was never set")
	}
	v, ok := f.variants[info.selector]
	if !ok {
		return 0, unencodable(f.name, "selector %s has no member", f.discriminator.Format(info.selector))
	}
	if v.payload == nil {
		if info.contents != nil {
			return 0, unencodable(f.name, "selector %s selects an empty member but contents were %T",
				f.discriminator.Format(info.selector), info.contents)
		}
		return info.selector, nil
	}
	want := reflect.PointerTo(v.payload)
	if info.contents == nil || reflect.TypeOf(info.contents) != want || reflect.ValueOf(info.contents).IsNil() {
		return 0, unencodable(f.name, "selector %s requires %v, contents were %T",
			f.discriminator.Format(info.selector), want, info.contents)
	}
	return info.selector, nil
}

// isEmpty reports whether sel selects an empty member.
func (f *UnionFamily) isEmpty(sel uint64) bool {
	v, ok := f.variants[sel]
	return ok && v.payload == nil
}

var unionFamilies = map[string]*UnionFamily{}

func registerUnionFamily(f *UnionFamily) {
	if _, ok := unionFamilies[f.name]; ok {
		panic(fmt.Sprintf("tpm2: union family %s registered twice", f.name))
	}
	unionFamilies[f.name] = f
}

// LookupUnionFamily returns the union family with the given name.
func LookupUnionFamily(name string) (*UnionFamily, bool) {
	f, ok := unionFamilies[name]
	return f, ok
}

// UnionFamilies returns the names of all union families, sorted.
func UnionFamilies() []string {
	names := make([]string, 0, len(unionFamilies))
	for n := range unionFamilies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up the named family and resolves sel in it. An unknown
// family is an unregistered pairing like any other.
func Resolve(family string, sel uint64) (interface{}, error) {
	f, ok := LookupUnionFamily(family)
	if !ok {
		return nil, &UnresolvedUnionVariantError{Family: family, Selector: sel}
	}
	return f.Resolve(sel)
}

// DiscriminatorFor looks up the named family and returns the selector of u.
func DiscriminatorFor(family string, u Union) (uint64, error) {
	f, ok := LookupUnionFamily(family)
	if !ok {
		return 0, unencodable(family, "no such union family")
	}
	return f.DiscriminatorFor(u)
}

// contentsOf returns the typed contents of u if it was set with sel. It backs
// the accessors of the TPMU types.
func contentsOf[T any](u union, f *UnionFamily, sel uint64) (*T, error) {
	if !u.set {
		return nil, fmt.Errorf("%s: union was never set", f.name)
	}
	if u.selector != sel {
		return nil, fmt.Errorf("%s: selector is %s, not %s", f.name,
			f.discriminator.Format(u.selector), f.discriminator.Format(sel))
	}
	c, ok := u.contents.(*T)
	if !ok {
		return nil, fmt.Errorf("%s: contents are %T, not %T", f.name, u.contents, (*T)(nil))
	}
	return c, nil
}

// newUnion builds the embedded carrier for a TPMU constructor.
func newUnion(selector uint64, contents interface{}) union {
	return union{selector: selector, contents: contents, set: true}
}
