package tpm2

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPCRSelection(t *testing.T) {
	tests := []struct {
		name string
		pcrs []int
		want []byte
	}{
		{"none", nil, []byte{0, 0, 0}},
		{"low", []int{0, 7}, []byte{0x81, 0, 0}},
		{"boot", []int{0, 1, 2, 3, 4, 5, 6, 7}, []byte{0xff, 0, 0}},
		{"last of minimum", []int{23}, []byte{0, 0, 0x80}},
		{"beyond minimum", []int{8, 31}, []byte{0, 1, 0, 0x80}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := NewPCRSelection(TPMAlgSHA256, tc.pcrs...)
			if err != nil {
				t.Fatalf("NewPCRSelection() = %v", err)
			}
			if diff := cmp.Diff(tc.want, sel.PCRSelect); diff != "" {
				t.Errorf("PCRSelect mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.pcrs, sel.PCRs()); diff != "" {
				t.Errorf("PCRs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewPCRSelectionEncoding(t *testing.T) {
	sel, err := NewPCRSelection(TPMAlgSHA1, 16)
	if err != nil {
		t.Fatalf("NewPCRSelection() = %v", err)
	}
	got, err := Marshal(TPMLPCRSelection{PCRSelections: []TPMSPCRSelection{sel}})
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	want := []byte{0, 0, 0, 1, 0x00, 0x04, 3, 0, 0, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("encoding mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPCRSelectionRejectsBadIndex(t *testing.T) {
	for _, pcr := range []int{-1, 8 * 255} {
		if _, err := NewPCRSelection(TPMAlgSHA256, pcr); !errors.Is(err, ErrUnencodableValue) {
			t.Errorf("NewPCRSelection(%d) = %v, want ErrUnencodableValue", pcr, err)
		}
	}
}
