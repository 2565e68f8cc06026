package tpm2

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAliasDeterminism(t *testing.T) {
	name, err := algIDs.FromValue(0x0004)
	if err != nil {
		t.Fatalf("FromValue(0x0004) = %v", err)
	}
	if name != "TPM_ALG_SHA1" {
		t.Errorf("FromValue(0x0004) = %q, want TPM_ALG_SHA1", name)
	}
	for _, n := range []string{"TPM_ALG_SHA1", "TPM_ALG_SHA"} {
		v, err := algIDs.FromName(n)
		if err != nil {
			t.Fatalf("FromName(%q) = %v", n, err)
		}
		if v != 0x0004 {
			t.Errorf("FromName(%q) = 0x%x, want 0x4", n, v)
		}
	}
	if got := TPMAlgSHA.String(); got != "TPM_ALG_SHA1" {
		t.Errorf("TPMAlgSHA.String() = %q", got)
	}
}

func TestReservedConstants(t *testing.T) {
	tests := []struct {
		family *Constants
		name   string
		value  uint64
	}{
		{algIDs, "TPM_ALG_ANY", 0x7FFF},
		{algIDs, "TPM_ALG_ANY2", 0x7FFE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.family.Contains(tt.value) {
				t.Errorf("Contains(0x%x) = true for a reserved value", tt.value)
			}
			if _, err := tt.family.FromValue(tt.value); !errors.Is(err, ErrUnknownConstant) {
				t.Errorf("FromValue(0x%x) = %v, want ErrUnknownConstant", tt.value, err)
			}
			if v, err := tt.family.FromName(tt.name); err != nil || v != tt.value {
				t.Errorf("FromName(%q) = 0x%x, %v", tt.name, v, err)
			}
			if name, ok := tt.family.Reserved(tt.value); !ok || name != tt.name {
				t.Errorf("Reserved(0x%x) = %q, %v", tt.value, name, ok)
			}
			if got := tt.family.Format(tt.value); got != tt.name {
				t.Errorf("Format(0x%x) = %q, want %q", tt.value, got, tt.name)
			}
		})
	}
}

func TestGroupMarkersResolveByNameOnly(t *testing.T) {
	v, err := properties.FromName("PT_FIXED")
	if err != nil || v != 0x100 {
		t.Fatalf("FromName(PT_FIXED) = 0x%x, %v", v, err)
	}
	name, err := properties.FromValue(0x100)
	if err != nil {
		t.Fatalf("FromValue(0x100) = %v", err)
	}
	if name != "TPM_PT_FAMILY_INDICATOR" {
		t.Errorf("FromValue(0x100) = %q, want TPM_PT_FAMILY_INDICATOR", name)
	}
	if _, ok := properties.Reserved(0x100); ok {
		t.Errorf("Reserved(0x100) reported a marker that shadows a real property")
	}
}

func TestUnknownConstant(t *testing.T) {
	_, err := algIDs.FromValue(0x1234)
	var uce *UnknownConstantError
	if !errors.As(err, &uce) {
		t.Fatalf("FromValue(0x1234) = %v, want *UnknownConstantError", err)
	}
	if uce.Family != "TPM_ALG_ID" || uce.Value != 0x1234 {
		t.Errorf("got %+v", uce)
	}
	if _, err := algIDs.FromName("TPM_ALG_SHA1 "); !errors.Is(err, ErrUnknownConstant) {
		t.Errorf("FromName is not exact: %v", err)
	}
	if got, want := TPMAlgID(0x1234).String(), "TPM_ALG_ID(0x1234)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestVendorCommandCodes(t *testing.T) {
	vendor := uint64(1<<29 | 0x0001)
	if !commandCodes.Contains(vendor) {
		t.Errorf("Contains(0x%x) = false for a vendor command", vendor)
	}
	name, err := commandCodes.FromValue(vendor)
	if err != nil {
		t.Fatalf("FromValue(0x%x) = %v", vendor, err)
	}
	if name != "TPM_CC_VENDOR_0x20000001" {
		t.Errorf("FromValue(0x%x) = %q", vendor, name)
	}
	if commandCodes.Contains(0x0000FFFF) {
		t.Errorf("Contains(0xFFFF) = true")
	}
}

func TestConstantsWidths(t *testing.T) {
	tests := []struct {
		family string
		width  int
	}{
		{"TPM_ALG_ID", 2},
		{"TPM_ECC_CURVE", 2},
		{"TPM_CC", 4},
		{"TPM_ST", 2},
		{"TPM_SU", 2},
		{"TPM_SE", 1},
		{"TPM_CAP", 4},
		{"TPM_PT", 4},
		{"TPM_PT_PCR", 4},
		{"TPM_NT", 1},
		{"TPM_HT", 1},
		{"TPMI_YES_NO", 1},
	}
	for _, tt := range tests {
		c, ok := LookupConstants(tt.family)
		if !ok {
			t.Errorf("LookupConstants(%q) not found", tt.family)
			continue
		}
		if c.Width() != tt.width {
			t.Errorf("%s.Width() = %d, want %d", tt.family, c.Width(), tt.width)
		}
		for _, n := range c.Names() {
			v, err := c.FromName(n)
			if err != nil {
				t.Errorf("%s.FromName(%q) = %v", tt.family, n, err)
				continue
			}
			if v > maxForWidth(tt.width) {
				t.Errorf("%s: %s=0x%x overflows %d bytes", tt.family, n, v, tt.width)
			}
		}
	}
	var want []string
	for _, tt := range tests {
		want = append(want, tt.family)
	}
	if diff := cmp.Diff(want, ConstantFamilies(), cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("ConstantFamilies() (-want +got):\n%s", diff)
	}
}

func TestEveryValueHasCanonicalName(t *testing.T) {
	for _, family := range ConstantFamilies() {
		c, _ := LookupConstants(family)
		for _, v := range c.Values() {
			name, err := c.FromValue(v)
			if err != nil {
				t.Errorf("%s.FromValue(0x%x) = %v", family, v, err)
				continue
			}
			back, err := c.FromName(name)
			if err != nil || back != v {
				t.Errorf("%s: %q maps back to 0x%x, %v; want 0x%x", family, name, back, err, v)
			}
		}
	}
}

func TestHandleType(t *testing.T) {
	tests := []struct {
		h    TPMHandle
		want TPMHT
	}{
		{TPMRHOwner, TPMHTPermanent},
		{0x81000001, TPMHTPersistent},
		{0x80000000, TPMHTTransient},
		{0x01C00002, TPMHTNVIndex},
	}
	for _, tt := range tests {
		if got := tt.h.Type(); got != tt.want {
			t.Errorf("%v.Type() = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestHashAndCurve(t *testing.T) {
	if h, err := TPMAlgSHA384.Hash(); err != nil || h.Size() != 48 {
		t.Errorf("TPMAlgSHA384.Hash() = %v, %v", h, err)
	}
	if _, err := TPMAlgAES.Hash(); err == nil {
		t.Errorf("TPMAlgAES.Hash() succeeded")
	}
	c, err := TPMECCNistP256.Curve()
	if err != nil {
		t.Fatalf("Curve() = %v", err)
	}
	if c.Params().BitSize != 256 {
		t.Errorf("P256 bit size = %d", c.Params().BitSize)
	}
	if _, err := TPMECCBNP256.Curve(); err == nil {
		t.Errorf("BN curve unexpectedly supported")
	}
}

func TestGeneratedCheck(t *testing.T) {
	if err := TPMGeneratedValue.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}
	if err := TPMGenerated(0).Check(); err == nil {
		t.Errorf("Check() of zero succeeded")
	}
}
