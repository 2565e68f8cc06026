package tpm2

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/go-tpm-wire/tpmutil"
)

var (
	selfMarshalerType = reflect.TypeOf((*tpmutil.SelfMarshaler)(nil)).Elem()
	enumType          = reflect.TypeOf((*Enum)(nil)).Elem()
	checkerType       = reflect.TypeOf((*checker)(nil)).Elem()
)

// checker is implemented by values that carry a fixed magic, such as
// TPMGenerated.
type checker interface {
	Check() error
}

// minSizer reports the smallest possible encoding of a self-marshaling type.
type minSizer interface {
	minEncodedSize() int
}

// fieldTags is the parsed form of a `gotpm:"..."` struct tag.
type fieldTags struct {
	// sized is the width of the length prefix of a sized field (0, 1 or 2).
	sized int
	// list is the width of the element count of a list field (0, 1, 2 or 4).
	list     int
	tag      string
	nullable bool
	check    bool
	skip     bool
}

func parseTags(sf reflect.StructField) (fieldTags, error) {
	var ft fieldTags
	all, ok := sf.Tag.Lookup("gotpm")
	if !ok {
		return ft, nil
	}
	for _, tag := range strings.Split(all, ",") {
		// Settable tags have the form key=value.
		assignment := strings.SplitN(tag, "=", 2)
		val := ""
		if len(assignment) > 1 {
			val = assignment[1]
		}
		switch assignment[0] {
		case "":
		case "sized":
			ft.sized = 2
		case "sized8":
			ft.sized = 1
		case "list":
			ft.list = 4
			if val != "" {
				n, err := strconv.Atoi(val)
				if err != nil || (n != 1 && n != 2 && n != 4) {
					return ft, invalidDefinition("field %s: bad list width %q", sf.Name, val)
				}
				ft.list = n
			}
		case "tag":
			if val == "" {
				return ft, invalidDefinition("field %s: empty union tag", sf.Name)
			}
			ft.tag = val
		case "nullable":
			ft.nullable = true
		case "check":
			ft.check = true
		case "skip":
			ft.skip = true
		default:
			return ft, invalidDefinition("field %s: unknown gotpm tag %q", sf.Name, assignment[0])
		}
	}
	if ft.sized != 0 && (ft.list != 0 || ft.tag != "") {
		return ft, invalidDefinition("field %s: sized cannot be combined with list or tag", sf.Name)
	}
	if ft.list != 0 && ft.tag != "" {
		return ft, invalidDefinition("field %s: list cannot be combined with tag", sf.Name)
	}
	return ft, nil
}

// structTags parses and checks the tags of every field of t.
func structTags(t reflect.Type) ([]fieldTags, error) {
	tags := make([]fieldTags, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		ft, err := parseTags(sf)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.Name(), err)
		}
		tags[i] = ft
		if ft.skip {
			continue
		}
		if !sf.IsExported() {
			return nil, invalidDefinition("%s.%s is unexported and not skipped", t.Name(), sf.Name)
		}
		if ft.list != 0 && sf.Type.Kind() != reflect.Slice {
			return nil, invalidDefinition("%s.%s has the list tag but is not a slice", t.Name(), sf.Name)
		}
		if ft.check && !sf.Type.Implements(checkerType) {
			return nil, invalidDefinition("%s.%s has the check tag but no Check method", t.Name(), sf.Name)
		}
		isUnion := sf.Type.Implements(unionType)
		if ft.tag == "" {
			if isUnion {
				return nil, invalidDefinition("%s.%s is a union without a tag", t.Name(), sf.Name)
			}
			continue
		}
		if !isUnion {
			return nil, invalidDefinition("%s.%s has a union tag but is not a union", t.Name(), sf.Name)
		}
		sel, ok := t.FieldByName(ft.tag)
		if !ok || len(sel.Index) != 1 || sel.Index[0] >= i {
			return nil, invalidDefinition("%s.%s: selector %q must be an earlier field", t.Name(), sf.Name, ft.tag)
		}
		switch sel.Type.Kind() {
		case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		default:
			return nil, invalidDefinition("%s.%s: selector %q is not an unsigned integer", t.Name(), sf.Name, ft.tag)
		}
	}
	return tags, nil
}

// enumOf returns the constant family of an Enum type.
func enumOf(t reflect.Type) (*Constants, bool) {
	if !t.Implements(enumType) {
		return nil, false
	}
	return reflect.Zero(t).Interface().(Enum).Constants(), true
}

// nullValue is what a zero nullable field is written as: TPM_ALG_NULL for
// algorithms and TPM_RH_NULL for handles.
func nullValue(t reflect.Type) uint64 {
	switch t.Kind() {
	case reflect.Uint16:
		return uint64(TPMAlgNull)
	case reflect.Uint32:
		return uint64(TPMRHNull)
	}
	return 0
}

func isSelfMarshaler(t reflect.Type) bool {
	return t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(selfMarshalerType)
}

// addressable returns a pointer to v, copying v if it is not addressable.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v.Addr()
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p
}

// marshal serializes v, appending it to w.
func marshal(w *tpmutil.Writer, v reflect.Value) error {
	t := v.Type()
	if isSelfMarshaler(t) {
		return addressable(v).Interface().(tpmutil.SelfMarshaler).MarshalTPM(w)
	}
	if t.Implements(unionType) {
		u := v.Interface().(Union)
		sel, err := u.Family().DiscriminatorFor(u)
		if err != nil {
			return err
		}
		return marshalUnion(w, u, sel)
	}
	switch t.Kind() {
	case reflect.Bool:
		if v.Bool() {
			w.WriteU8(1)
		} else {
			w.WriteU8(0)
		}
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return marshalUint(w, t, v.Uint())
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.WriteUint(uint64(v.Int()), int(t.Size()))
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := marshal(w, v.Index(i)); err != nil {
				return fmt.Errorf("element %d of %v: %w", i, t, err)
			}
		}
	case reflect.Slice:
		// Only a top-level byte slice can go without a tag. It is written
		// as-is.
		if t.Elem().Kind() != reflect.Uint8 {
			return invalidDefinition("%v must be a tagged structure field", t)
		}
		w.WriteBytes(v.Bytes())
	case reflect.Struct:
		return marshalStruct(w, v)
	case reflect.Pointer:
		if v.IsNil() {
			return unencodable(t.String(), "nil pointer")
		}
		return marshal(w, v.Elem())
	default:
		return invalidDefinition("%v is not marshallable", t)
	}
	return nil
}

func marshalUint(w *tpmutil.Writer, t reflect.Type, val uint64) error {
	if c, ok := enumOf(t); ok && !c.Contains(val) {
		return unencodable(c.Name(), "0x%x is not a member", val)
	}
	w.WriteUint(val, int(t.Size()))
	return nil
}

// Marshals the members of the struct, handling sized fields, lists and
// tagged unions.
func marshalStruct(w *tpmutil.Writer, v reflect.Value) error {
	t := v.Type()
	tags, err := structTags(t)
	if err != nil {
		return err
	}
	sels, err := unionSelectors(v, tags)
	if err != nil {
		return err
	}
	for i := 0; i < t.NumField(); i++ {
		if tags[i].skip {
			continue
		}
		if err := marshalField(w, v, i, tags[i], sels); err != nil {
			return fmt.Errorf("%s.%s: %w", t.Name(), t.Field(i).Name, err)
		}
	}
	return nil
}

// unionSelectors works out the value of every field that selects a union
// member. A zero selector field is filled in from the first union it
// selects that was set, unless zero is itself a member of the union family
// (TPM_CAP_ALGS, for one). Then zero is taken as written. If the selector
// field is set explicitly, every union it selects must agree with it.
func unionSelectors(v reflect.Value, tags []fieldTags) (map[string]uint64, error) {
	t := v.Type()
	var sels map[string]uint64
	for i, ft := range tags {
		if ft.tag == "" || ft.skip {
			continue
		}
		if sels == nil {
			sels = make(map[string]uint64)
		}
		if _, done := sels[ft.tag]; done {
			continue
		}
		sf, _ := t.FieldByName(ft.tag)
		idx := sf.Index[0]
		sel := v.Field(idx).Uint()
		zeroIsMember := false
		if sel == 0 {
			if _, err := v.Field(i).Interface().(Union).Family().PayloadType(0); err == nil {
				zeroIsMember = true
			}
		}
		if sel == 0 && !zeroIsMember {
			found := false
			for j := i; j < len(tags); j++ {
				if tags[j].tag != ft.tag {
					continue
				}
				if info := v.Field(j).Interface().(Union).tpmUnion(); info.set {
					sel, found = info.selector, true
					break
				}
			}
			if !found && tags[idx].nullable {
				sel = nullValue(sf.Type)
			}
		}
		sels[ft.tag] = sel
	}
	for i, ft := range tags {
		if ft.tag == "" || ft.skip {
			continue
		}
		sel := sels[ft.tag]
		u := v.Field(i).Interface().(Union)
		f := u.Family()
		name := t.Name() + "." + t.Field(i).Name
		if u.tpmUnion().set {
			got, err := f.DiscriminatorFor(u)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			if got != sel {
				return nil, unencodable(name, "%s is %s but the union holds %s",
					ft.tag, f.Discriminator().Format(sel), f.Discriminator().Format(got))
			}
			continue
		}
		if _, err := f.PayloadType(sel); err != nil {
			return nil, unencodable(name, "%s %s has no member in %s", ft.tag, f.Discriminator().Format(sel), f.Name())
		}
		if !f.isEmpty(sel) {
			return nil, unencodable(name, "%s %s requires contents but the union was never set",
				ft.tag, f.Discriminator().Format(sel))
		}
	}
	return sels, nil
}

func marshalField(w *tpmutil.Writer, v reflect.Value, i int, ft fieldTags, sels map[string]uint64) error {
	sf := v.Type().Field(i)
	fv := v.Field(i)
	if ft.check {
		if err := fv.Interface().(checker).Check(); err != nil {
			return unencodable(sf.Type.String(), "%v", err)
		}
	}
	switch {
	case ft.tag != "":
		return marshalUnion(w, fv.Interface().(Union), sels[ft.tag])
	case ft.list != 0:
		return marshalList(w, fv, ft.list)
	case ft.sized != 0:
		return marshalSized(w, fv, ft.sized)
	}
	if sel, ok := sels[sf.Name]; ok {
		return marshalUint(w, sf.Type, sel)
	}
	if ft.nullable && fv.IsZero() {
		w.WriteUint(nullValue(sf.Type), int(sf.Type.Size()))
		return nil
	}
	if fv.Kind() == reflect.Slice {
		return invalidDefinition("slice fields must be tagged list, sized or sized8")
	}
	return marshal(w, fv)
}

// Marshals the member of the union selected by sel. Empty members marshal
// nothing.
func marshalUnion(w *tpmutil.Writer, u Union, sel uint64) error {
	if u.Family().isEmpty(sel) {
		return nil
	}
	return marshal(w, reflect.ValueOf(u.tpmUnion().contents).Elem())
}

func marshalList(w *tpmutil.Writer, v reflect.Value, width int) error {
	if err := w.WriteCount(v.Len(), width); err != nil {
		return err
	}
	for i := 0; i < v.Len(); i++ {
		if err := marshal(w, v.Index(i)); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func marshalSized(w *tpmutil.Writer, v reflect.Value, width int) error {
	if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
		if width == 1 {
			return w.WriteSized8Bytes(v.Bytes())
		}
		return w.WriteSizedBytes(v.Bytes())
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return w.WriteCount(0, width)
	}
	w.BeginSized(width)
	if err := marshal(w, v); err != nil {
		return err
	}
	return w.EndSized()
}

// unmarshal deserializes into v, which must be settable.
func unmarshal(r *tpmutil.Reader, v reflect.Value) error {
	t := v.Type()
	if isSelfMarshaler(t) {
		return v.Addr().Interface().(tpmutil.SelfMarshaler).UnmarshalTPM(r)
	}
	if t.Implements(unionType) {
		return invalidDefinition("%v can only be decoded as a tagged structure field", t)
	}
	switch t.Kind() {
	case reflect.Bool:
		b, err := r.ReadU8()
		if err != nil {
			return err
		}
		if !yesNo.Contains(uint64(b)) {
			return &UnknownConstantError{Family: yesNo.Name(), Value: uint64(b)}
		}
		v.SetBool(b == 1)
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		x, err := r.ReadUint(int(t.Size()))
		if err != nil {
			return err
		}
		if c, ok := enumOf(t); ok && !c.Contains(x) {
			return &UnknownConstantError{Family: c.Name(), Value: x}
		}
		v.SetUint(x)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x, err := r.ReadUint(int(t.Size()))
		if err != nil {
			return err
		}
		v.SetInt(signExtend(x, int(t.Size())))
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := unmarshal(r, v.Index(i)); err != nil {
				return fmt.Errorf("element %d of %v: %w", i, t, err)
			}
		}
	case reflect.Slice:
		// Special case for top-level byte slices: read the entire rest of
		// the input.
		if t.Elem().Kind() != reflect.Uint8 {
			return invalidDefinition("%v must be a tagged structure field", t)
		}
		b, err := r.ReadBytes(r.Remaining())
		if err != nil {
			return err
		}
		v.SetBytes(b)
	case reflect.Struct:
		return unmarshalStruct(r, v)
	case reflect.Pointer:
		p := reflect.New(t.Elem())
		if err := unmarshal(r, p.Elem()); err != nil {
			return err
		}
		v.Set(p)
	default:
		return invalidDefinition("%v is not unmarshallable", t)
	}
	return nil
}

func signExtend(x uint64, width int) int64 {
	switch width {
	case 1:
		return int64(int8(x))
	case 2:
		return int64(int16(x))
	case 4:
		return int64(int32(x))
	}
	return int64(x)
}

func unmarshalStruct(r *tpmutil.Reader, v reflect.Value) error {
	t := v.Type()
	tags, err := structTags(t)
	if err != nil {
		return err
	}
	for i := 0; i < t.NumField(); i++ {
		if tags[i].skip {
			continue
		}
		if err := unmarshalField(r, v, i, tags[i]); err != nil {
			return fmt.Errorf("%s.%s: %w", t.Name(), t.Field(i).Name, err)
		}
	}
	return nil
}

func unmarshalField(r *tpmutil.Reader, v reflect.Value, i int, ft fieldTags) error {
	fv := v.Field(i)
	switch {
	case ft.tag != "":
		return unmarshalUnion(r, fv, v.FieldByName(ft.tag).Uint())
	case ft.list != 0:
		return unmarshalList(r, fv, ft.list)
	case ft.sized != 0:
		return unmarshalSized(r, fv, ft.sized)
	}
	if fv.Kind() == reflect.Slice {
		return invalidDefinition("slice fields must be tagged list, sized or sized8")
	}
	if err := unmarshal(r, fv); err != nil {
		return err
	}
	if ft.check {
		if err := fv.Interface().(checker).Check(); err != nil {
			return fmt.Errorf("%w: %v", ErrUnknownConstant, err)
		}
	}
	return nil
}

// Unmarshals the member of the union selected by sel, which was decoded
// earlier from the same structure.
func unmarshalUnion(r *tpmutil.Reader, v reflect.Value, sel uint64) error {
	f := reflect.Zero(v.Type()).Interface().(Union).Family()
	contents, err := f.Resolve(sel)
	if err != nil {
		return err
	}
	if contents != nil {
		if err := unmarshal(r, reflect.ValueOf(contents).Elem()); err != nil {
			return err
		}
	}
	v.Addr().Interface().(unionSetter).setUnion(sel, contents)
	return nil
}

func unmarshalList(r *tpmutil.Reader, v reflect.Value, width int) error {
	n, err := r.ReadCount(width, max(minSize(v.Type().Elem()), 1))
	if err != nil {
		return err
	}
	s := reflect.MakeSlice(v.Type(), n, n)
	for i := 0; i < n; i++ {
		if err := unmarshal(r, s.Index(i)); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	v.Set(s)
	return nil
}

func unmarshalSized(r *tpmutil.Reader, v reflect.Value, width int) error {
	if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
		var b []byte
		var err error
		if width == 1 {
			b, err = r.ReadSized8Bytes()
		} else {
			b, err = r.ReadSizedBytes()
		}
		if err != nil {
			return err
		}
		v.SetBytes(b)
		return nil
	}
	declared, err := r.ReadUint(width)
	if err != nil {
		return err
	}
	if declared == 0 {
		v.Set(reflect.Zero(v.Type()))
		return nil
	}
	r.PushSizeFrame(int(declared))
	if err := unmarshal(r, v); err != nil {
		return err
	}
	return r.PopSizeFrame()
}

// minSize returns the smallest number of bytes a value of type t can occupy
// on the wire. Lists use it to reject counts the input cannot hold.
func minSize(t reflect.Type) int {
	if isSelfMarshaler(t) {
		if m, ok := reflect.Zero(t).Interface().(minSizer); ok {
			return m.minEncodedSize()
		}
		return 0
	}
	if t.Implements(unionType) {
		return 0
	}
	switch t.Kind() {
	case reflect.Bool:
		return 1
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(t.Size())
	case reflect.Array:
		return t.Len() * minSize(t.Elem())
	case reflect.Pointer:
		return minSize(t.Elem())
	case reflect.Struct:
		n := 0
		for i := 0; i < t.NumField(); i++ {
			ft, err := parseTags(t.Field(i))
			if err != nil {
				return 0
			}
			switch {
			case ft.skip, ft.tag != "":
			case ft.list != 0:
				n += ft.list
			case ft.sized != 0:
				n += ft.sized
			default:
				n += minSize(t.Field(i).Type)
			}
		}
		return n
	}
	return 0
}
