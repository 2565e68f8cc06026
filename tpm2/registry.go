package tpm2

import (
	"fmt"
	"sort"
)

// Enum is implemented by every TPM constant type. The codec uses it to
// validate decoded values against their family.
type Enum interface {
	Constants() *Constants
}

// constant is one registration in a Constants table.
type constant struct {
	name  string
	value uint64
}

// Constants is the table of named wire values for one TPM constant family,
// such as TPM_ALG_ID or TPM_CC. Tables are built during package
// initialization and are read-only afterwards.
type Constants struct {
	name  string
	width int
	// names in registration order. The first name registered for a value is
	// its canonical name.
	members  []constant
	byValue  map[uint64]string
	byName   map[string]uint64
	reserved map[uint64]string
	// vendorBit marks values outside the table that are still valid, such
	// as vendor-specific command codes.
	vendorBit uint64
}

func newConstants(name string, width int, members ...constant) *Constants {
	c := &Constants{
		name:     name,
		width:    width,
		byValue:  make(map[uint64]string),
		byName:   make(map[string]uint64),
		reserved: make(map[uint64]string),
	}
	for _, m := range members {
		if _, ok := c.byName[m.name]; ok {
			panic(fmt.Sprintf("tpm2: %s registered twice in %s", m.name, name))
		}
		if m.value > maxForWidth(width) {
			panic(fmt.Sprintf("tpm2: %s=0x%x does not fit in %d bytes", m.name, m.value, width))
		}
		c.byName[m.name] = m.value
		if _, ok := c.byValue[m.value]; !ok {
			c.byValue[m.value] = m.name
		}
		c.members = append(c.members, m)
	}
	return c
}

// withReserved names values that appear in the TPM specification but are not
// valid on the wire for this family.
func (c *Constants) withReserved(reserved ...constant) *Constants {
	for _, r := range reserved {
		c.byName[r.name] = r.value
		if _, member := c.byValue[r.value]; !member {
			c.reserved[r.value] = r.name
		}
	}
	return c
}

func (c *Constants) withVendorBit(bit uint64) *Constants {
	c.vendorBit = bit
	return c
}

func maxForWidth(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}
	return 1<<(8*uint(width)) - 1
}

// Name returns the family name, e.g. "TPM_ALG_ID".
func (c *Constants) Name() string { return c.name }

// Width returns the size of a value of this family on the wire, in bytes.
func (c *Constants) Width() int { return c.width }

// Contains reports whether v is a valid wire value of this family.
func (c *Constants) Contains(v uint64) bool {
	if _, ok := c.byValue[v]; ok {
		return true
	}
	return c.isVendor(v)
}

func (c *Constants) isVendor(v uint64) bool {
	return c.vendorBit != 0 && v&c.vendorBit != 0 && v <= maxForWidth(c.width)
}

// FromValue returns the canonical name of v. When several names share a
// value, the one registered first is returned.
func (c *Constants) FromValue(v uint64) (string, error) {
	if name, ok := c.byValue[v]; ok {
		return name, nil
	}
	if c.isVendor(v) {
		return fmt.Sprintf("%s_VENDOR_0x%x", c.name, v), nil
	}
	return "", &UnknownConstantError{Family: c.name, Value: v}
}

// FromName returns the value registered under name. Reserved names such as
// TPM_ALG_ANY resolve too, although their values are not members.
func (c *Constants) FromName(name string) (uint64, error) {
	if v, ok := c.byName[name]; ok {
		return v, nil
	}
	return 0, &UnknownConstantError{Family: c.name, Name: name}
}

// Reserved returns the name of v if it is a reserved, non-member value.
func (c *Constants) Reserved(v uint64) (string, bool) {
	name, ok := c.reserved[v]
	return name, ok
}

// Names returns every member name in registration order, aliases included.
func (c *Constants) Names() []string {
	names := make([]string, 0, len(c.members))
	for _, m := range c.members {
		names = append(names, m.name)
	}
	return names
}

// Values returns the distinct member values in ascending order.
func (c *Constants) Values() []uint64 {
	vals := make([]uint64, 0, len(c.byValue))
	for v := range c.byValue {
		vals = append(vals, v)
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	return vals
}

// Format renders v as its canonical name, or as FAMILY(0x..) if it has none.
func (c *Constants) Format(v uint64) string {
	if name, err := c.FromValue(v); err == nil {
		return name
	}
	if name, ok := c.reserved[v]; ok {
		return name
	}
	return fmt.Sprintf("%s(0x%x)", c.name, v)
}

// registry of every constant family, keyed by family name.
var constantFamilies = map[string]*Constants{}

func registerConstants(cs ...*Constants) {
	for _, c := range cs {
		if _, ok := constantFamilies[c.name]; ok {
			panic(fmt.Sprintf("tpm2: constant family %s registered twice", c.name))
		}
		constantFamilies[c.name] = c
	}
}

// LookupConstants returns the constant family with the given name.
func LookupConstants(family string) (*Constants, bool) {
	c, ok := constantFamilies[family]
	return c, ok
}

// ConstantFamilies returns the names of all constant families, sorted.
func ConstantFamilies() []string {
	names := make([]string, 0, len(constantFamilies))
	for n := range constantFamilies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
