package tpm2

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-tpm-wire/tpmutil"
)

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// roundTrip encodes v, checks the encoding against want (if given), decodes
// it and checks that re-encoding the result is byte-identical.
func roundTrip[T any](t *testing.T, v T, want []byte) *T {
	t.Helper()
	b, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal(%T) = %v", v, err)
	}
	if want != nil && !bytes.Equal(b, want) {
		t.Fatalf("Marshal(%T) = %x, want %x", v, b, want)
	}
	got, err := Unmarshal[T](b)
	if err != nil {
		t.Fatalf("Unmarshal[%T](%x) = %v", v, b, err)
	}
	again, err := Marshal(got)
	if err != nil {
		t.Fatalf("Marshal(decoded %T) = %v", v, err)
	}
	if !bytes.Equal(b, again) {
		t.Errorf("re-encoded %T = %x, want %x", v, again, b)
	}
	return got
}

func eccSignature() TPMTSignature {
	return TPMTSignature{
		SigAlg: TPMAlgECDSA,
		Signature: NewTPMUSignature(TPMAlgECDSA, &TPMSSignatureECC{
			Hash:       TPMAlgSHA256,
			SignatureR: TPM2BECCParameter{Buffer: []byte{0x01, 0x02}},
			SignatureS: TPM2BECCParameter{Buffer: []byte{0x03, 0x04, 0x05}},
		}),
	}
}

var eccSignatureBytes = []byte{
	0x00, 0x18, // TPM_ALG_ECDSA
	0x00, 0x0B, // TPM_ALG_SHA256
	0x00, 0x02, 0x01, 0x02,
	0x00, 0x03, 0x03, 0x04, 0x05,
}

func TestECDSASignature(t *testing.T) {
	sig := eccSignature()
	got := roundTrip(t, sig, eccSignatureBytes)
	if diff := cmp.Diff(&sig, got, exportAll); diff != "" {
		t.Errorf("Unmarshal() (-want +got):\n%s", diff)
	}
	ecc, err := got.Signature.ECDSA()
	if err != nil {
		t.Fatalf("ECDSA() = %v", err)
	}
	if ecc.Hash != TPMAlgSHA256 {
		t.Errorf("Hash = %v", ecc.Hash)
	}
}

func TestSelectorFilledFromUnion(t *testing.T) {
	sig := eccSignature()
	sig.SigAlg = 0
	b, err := Marshal(sig)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	if !bytes.Equal(b, eccSignatureBytes) {
		t.Errorf("Marshal() = %x, want %x", b, eccSignatureBytes)
	}

	bits := TPMKeyBits(128)
	sym := TPMTSymDef{
		KeyBits: NewTPMUSymKeyBits(TPMAlgAES, &bits),
		Mode:    NewTPMUSymMode(TPMAlgAES, TPMAlgCFB),
	}
	roundTrip(t, sym, []byte{0x00, 0x06, 0x00, 0x80, 0x00, 0x43})
}

func TestNullableSelectors(t *testing.T) {
	got := roundTrip(t, TPMTSignature{}, []byte{0x00, 0x10})
	if got.SigAlg != TPMAlgNull {
		t.Errorf("SigAlg = %v, want TPM_ALG_NULL", got.SigAlg)
	}
	if sel, set := got.Signature.Selector(); !set || sel != uint64(TPMAlgNull) {
		t.Errorf("Signature.Selector() = 0x%x, %v", sel, set)
	}

	roundTrip(t, TPMTSymDefObject{}, []byte{0x00, 0x10})
	roundTrip(t, TPMTTKAuth{Tag: TPMSTAuthSigned}, []byte{
		0x80, 0x25,
		0x40, 0x00, 0x00, 0x07, // TPM_RH_NULL
		0x00, 0x00,
	})
}

func TestUnionEncodeErrors(t *testing.T) {
	bits := TPMKeyBits(128)
	tests := []struct {
		name string
		v    interface{}
	}{
		{"selector disagrees with union", TPMTSignature{
			SigAlg:    TPMAlgRSASSA,
			Signature: eccSignature().Signature,
		}},
		{"unset union needs contents", TPMTSignature{SigAlg: TPMAlgECDSA}},
		{"unions disagree", TPMTSymDef{
			KeyBits: NewTPMUSymKeyBits(TPMAlgAES, &bits),
			Mode:    NewTPMUSymMode(TPMAlgSM4, TPMAlgCFB),
		}},
		{"unregistered selector", TPMTSignature{SigAlg: TPMAlgSHA256}},
		{"zero selector without member", TPMTPublic{}},
		{"zero selector is a member", TPMSCapabilityData{
			Capability: TPMCapAlgs,
			Data:       NewTPMUCapabilities(TPMCapHandles, &TPMLHandle{}),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Marshal(tt.v)
			if !errors.Is(err, ErrUnencodableValue) {
				t.Errorf("Marshal() = %v, want ErrUnencodableValue", err)
			}
		})
	}
}

// XOR and NULL have no mode, so the mode passed to NewTPMUSymMode is dropped.
func TestSymModeEmptyMembers(t *testing.T) {
	hash := TPMIAlgHash(TPMAlgSHA256)
	roundTrip(t, TPMTSymDef{
		Algorithm: TPMAlgXOR,
		KeyBits:   NewTPMUSymKeyBits(TPMAlgXOR, &hash),
		Mode:      NewTPMUSymMode(TPMAlgXOR, TPMAlgCFB),
		Details:   NewTPMUSymDetails(TPMAlgXOR),
	}, []byte{0x00, 0x0A, 0x00, 0x0B})
	roundTrip(t, TPMTSymDef{Mode: NewTPMUSymMode(TPMAlgNull, TPMAlgCFB)}, []byte{0x00, 0x10})

	if _, err := NewTPMUSymMode(TPMAlgXOR, TPMAlgCFB).AES(); err == nil {
		t.Errorf("AES() on an XOR mode succeeded")
	}
}

// TPM_CAP_ALGS is zero, so a zero Capability is not filled in from the union.
func TestZeroSelectorMember(t *testing.T) {
	roundTrip(t, TPMSCapabilityData{
		Data: NewTPMUCapabilities(TPMCapAlgs, &TPMLAlgProperty{}),
	}, []byte{0, 0, 0, 0, 0, 0, 0, 0})
}

func TestZeroLengthBuffers(t *testing.T) {
	got := roundTrip(t, TPM2BDigest{}, []byte{0x00, 0x00})
	if got.Buffer == nil || len(got.Buffer) != 0 {
		t.Errorf("Buffer = %#v, want empty and non-nil", got.Buffer)
	}
	roundTrip(t, TPM2BDigest{Buffer: []byte{}}, []byte{0x00, 0x00})

	l := roundTrip(t, TPMLDigest{}, []byte{0x00, 0x00, 0x00, 0x00})
	if len(l.Digests) != 0 {
		t.Errorf("Digests = %v", l.Digests)
	}
}

func TestExactEncodings(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want []byte
	}{
		{"pcr selection", TPMSPCRSelection{Hash: TPMAlgSHA256, PCRSelect: []byte{0x01, 0x02, 0x03}},
			[]byte{0x00, 0x0B, 0x03, 0x01, 0x02, 0x03}},
		{"tagged property", TPMSTaggedProperty{Property: TPMPTManufacturer, Value: 0x49424D00},
			[]byte{0x00, 0x00, 0x01, 0x05, 0x49, 0x42, 0x4D, 0x00}},
		{"clock info", TPMSClockInfo{Clock: 1, ResetCount: 2, RestartCount: 3, Safe: true},
			[]byte{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3, 1}},
		{"command header", TPMCmdHeader{Tag: TPMSTNoSessions, Length: 12, CommandCode: TPMCCStartup},
			[]byte{0x80, 0x01, 0x00, 0x00, 0x00, 0x0C, 0x00, 0x00, 0x01, 0x44}},
		{"handle list", TPMLHandle{Handle: []TPMHandle{0x81000001}},
			[]byte{0x00, 0x00, 0x00, 0x01, 0x81, 0x00, 0x00, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Marshal(tt.v)
			if err != nil {
				t.Fatalf("Marshal() = %v", err)
			}
			if diff := cmp.Diff(tt.want, b); diff != "" {
				t.Errorf("Marshal() (-want +got):\n%s", diff)
			}
			p := reflect.New(reflect.TypeOf(tt.v))
			r := tpmutil.NewReader(b)
			if err := UnmarshalFrom(r, p.Interface()); err != nil {
				t.Fatalf("UnmarshalFrom() = %v", err)
			}
			if err := r.Finish(); err != nil {
				t.Fatalf("Finish() = %v", err)
			}
			if diff := cmp.Diff(tt.v, p.Elem().Interface(), exportAll); diff != "" {
				t.Errorf("UnmarshalFrom() (-want +got):\n%s", diff)
			}
		})
	}
}

type sizedPoint struct {
	Point *TPMSECCPoint `gotpm:"sized"`
}

type sizedValue struct {
	Info TPMSClockInfo `gotpm:"sized"`
}

func TestSizedStructures(t *testing.T) {
	point := &TPMSECCPoint{
		X: TPM2BECCParameter{Buffer: []byte{0x01, 0x02}},
		Y: TPM2BECCParameter{Buffer: []byte{0x03}},
	}
	want := []byte{0x00, 0x07, 0x00, 0x02, 0x01, 0x02, 0x00, 0x01, 0x03}
	roundTrip(t, sizedPoint{Point: point}, want)

	got := roundTrip(t, sizedPoint{}, []byte{0x00, 0x00})
	if got.Point != nil {
		t.Errorf("Point = %+v, want nil", got.Point)
	}

	v := roundTrip(t, sizedValue{}, nil)
	if v.Info != (TPMSClockInfo{}) {
		t.Errorf("Info = %+v", v.Info)
	}
	b, _ := Marshal(sizedValue{Info: TPMSClockInfo{Clock: 5}})
	if b[0] != 0x00 || b[1] != 17 {
		t.Errorf("size prefix = %x, want 0011", b[:2])
	}

	box := roundTrip(t, NewTPM2B(point), want)
	if diff := cmp.Diff(want[2:], mustBytes(t, *box)); diff != "" {
		t.Errorf("Bytes() (-want +got):\n%s", diff)
	}
}

func mustBytes[T any](t *testing.T, b TPM2B[T]) []byte {
	t.Helper()
	out, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes() = %v", err)
	}
	return out
}

// A declared size one byte off in either direction is a size mismatch, not
// truncation.
func TestSizeOffByOne(t *testing.T) {
	good := []byte{0x00, 0x07, 0x00, 0x02, 0x01, 0x02, 0x00, 0x01, 0x03}
	for _, declared := range []byte{0x06, 0x08} {
		data := append([]byte(nil), good...)
		data[1] = declared
		t.Run(fmt.Sprintf("declared=%d", declared), func(t *testing.T) {
			checkMismatch := func(err error) {
				t.Helper()
				var sme *tpmutil.SizeMismatchError
				if !errors.As(err, &sme) {
					t.Fatalf("got %v, want *SizeMismatchError", err)
				}
				if sme.Declared != int(declared) || sme.Consumed != 7 {
					t.Errorf("got %+v", sme)
				}
				if !errors.Is(err, ErrSizeMismatch) {
					t.Errorf("errors.Is(%v, ErrSizeMismatch) = false", err)
				}
			}
			_, err := Unmarshal[sizedPoint](data)
			checkMismatch(err)
			_, err = Unmarshal[TPM2BECCPoint](data)
			checkMismatch(err)
		})
	}
}

func TestTruncatedInput(t *testing.T) {
	for i := 0; i < len(eccSignatureBytes); i++ {
		_, err := Unmarshal[TPMTSignature](eccSignatureBytes[:i])
		if !errors.Is(err, ErrTruncatedInput) {
			t.Errorf("Unmarshal(%x) = %v, want ErrTruncatedInput", eccSignatureBytes[:i], err)
		}
	}
	_, err := Unmarshal[TPMTSignature](eccSignatureBytes[:len(eccSignatureBytes)-1])
	if !strings.Contains(err.Error(), "TPMTSignature.Signature: TPMSSignatureECC.SignatureS") {
		t.Errorf("error %q does not name the field path", err)
	}
}

func TestTrailingBytes(t *testing.T) {
	data := append(append([]byte(nil), eccSignatureBytes...), 0xFF, 0xFF)
	_, err := Unmarshal[TPMTSignature](data)
	var tbe *tpmutil.TrailingBytesError
	if !errors.As(err, &tbe) {
		t.Fatalf("Unmarshal() = %v, want *TrailingBytesError", err)
	}
	if tbe.Remaining != 2 || tbe.Offset != len(eccSignatureBytes) {
		t.Errorf("got %+v", tbe)
	}

	// Streaming decode leaves the rest for the caller.
	r := tpmutil.NewReader(data)
	var sig TPMTSignature
	if err := UnmarshalFrom(r, &sig); err != nil {
		t.Fatalf("UnmarshalFrom() = %v", err)
	}
	if r.Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2", r.Remaining())
	}
}

func TestDecodeValidation(t *testing.T) {
	tests := []struct {
		name   string
		decode func([]byte) error
		data   []byte
		want   error
	}{
		{"unknown algorithm", decodeAs[TPMSAlgProperty], []byte{0x12, 0x34, 0, 0, 0, 0}, ErrUnknownConstant},
		{"unknown algorithm in list", decodeAs[TPMLAlg], []byte{0, 0, 0, 1, 0x12, 0x34}, ErrUnknownConstant},
		{"bad yes/no", decodeAs[TPMSClockInfo], []byte{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3, 2}, ErrUnknownConstant},
		{"unresolved signature", decodeAs[TPMTSignature], []byte{0x00, 0x0B, 0x00, 0x00}, ErrUnresolvedUnionVariant},
		{"unresolved attest", decodeAs[TPMSAttest], append([]byte{0xFF, 0x54, 0x43, 0x47, 0x80, 0x21}, make([]byte, 29)...), ErrUnresolvedUnionVariant},
		{"bad magic", decodeAs[TPMSAttest], []byte{0xFF, 0x54, 0x43, 0x00, 0x80, 0x18}, ErrUnknownConstant},
		{"huge list count", decodeAs[TPMLDigest], []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00}, ErrTruncatedInput},
		{"sized bytes past end", decodeAs[TPM2BDigest], []byte{0x00, 0x05, 0x01}, ErrTruncatedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.decode(tt.data); !errors.Is(err, tt.want) {
				t.Errorf("decode(%x) = %v, want %v", tt.data, err, tt.want)
			}
		})
	}
}

func decodeAs[T any](data []byte) error {
	_, err := Unmarshal[T](data)
	return err
}

func TestEncodeValidation(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want error
	}{
		{"unknown algorithm", TPMSAlgProperty{Alg: 0x1234}, ErrUnencodableValue},
		{"unknown capability", TPMSCapabilityData{Capability: 0x55}, ErrUnencodableValue},
		{"bad magic", TPMSAttest{Type: TPMSTAttestTime, Attested: NewTPMUAttest(TPMSTAttestTime, &TPMSTimeAttestInfo{})}, ErrUnencodableValue},
		{"sized8 too long", TPMSPCRSelection{Hash: TPMAlgSHA1, PCRSelect: make([]byte, 256)}, ErrValueTooLarge},
		{"sized too long", TPM2BDigest{Buffer: make([]byte, 0x10000)}, ErrValueTooLarge},
		{"nil pointer", (*TPMSClockInfo)(nil), ErrUnencodableValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Marshal(tt.v); !errors.Is(err, tt.want) {
				t.Errorf("Marshal() = %v, want %v", err, tt.want)
			}
		})
	}
}

type listWidths struct {
	Short []uint16 `gotpm:"list=2"`
	Tiny  []uint8  `gotpm:"list=1"`
}

type withSkip struct {
	A     uint8
	cache []int `gotpm:"skip"`
	B     int16
}

func TestListWidthsAndSkip(t *testing.T) {
	roundTrip(t, listWidths{Short: []uint16{1, 2}, Tiny: []uint8{9}},
		[]byte{0x00, 0x02, 0x00, 0x01, 0x00, 0x02, 0x01, 0x09})
	if _, err := Marshal(listWidths{Tiny: make([]uint8, 256)}); !errors.Is(err, ErrValueTooLarge) {
		t.Errorf("Marshal(256 items in list=1) = %v", err)
	}

	got := roundTrip(t, withSkip{A: 1, cache: []int{1}, B: -2}, []byte{0x01, 0xFF, 0xFE})
	if got.B != -2 || got.cache != nil {
		t.Errorf("got %+v", got)
	}
}

type (
	badListTag    struct{ X uint32 `gotpm:"list"` }
	badUnknownTag struct{ X uint8 `gotpm:"bogus"` }
	badListWidth  struct{ X []uint8 `gotpm:"list=3"` }
	badUnexported struct{ x uint8 }
	badUntagged   struct{ U TPMUHA }
	badSelector   struct {
		U TPMUHA `gotpm:"tag=Missing"`
	}
	badLateSelector struct {
		U   TPMUHA `gotpm:"tag=Alg"`
		Alg TPMAlgID
	}
	badSelectorType struct {
		Alg [2]byte
		U   TPMUHA `gotpm:"tag=Alg"`
	}
	badCheck    struct{ X uint32 `gotpm:"check"` }
	badSlice    struct{ X []byte }
	badTagOnInt struct {
		Alg TPMAlgID
		X   uint16 `gotpm:"tag=Alg"`
	}
)

func TestInvalidDefinitions(t *testing.T) {
	for _, v := range []interface{}{
		badListTag{}, badUnknownTag{}, badListWidth{}, badUnexported{}, badUntagged{},
		badSelector{}, badLateSelector{}, badSelectorType{}, badCheck{}, badSlice{},
		badTagOnInt{}, []uint16{1}, map[string]int{},
	} {
		t.Run(fmt.Sprintf("%T", v), func(t *testing.T) {
			if _, err := Marshal(v); !errors.Is(err, ErrInvalidDefinition) {
				t.Errorf("Marshal() = %v, want ErrInvalidDefinition", err)
			}
		})
	}
	if _, err := Marshal(TPMUHA{}); !errors.Is(err, ErrUnencodableValue) {
		t.Errorf("Marshal of an unset bare union = %v, want ErrUnencodableValue", err)
	}
	if err := decodeAs[badUntagged]([]byte{0}); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("decode = %v, want ErrInvalidDefinition", err)
	}
	if err := decodeAs[TPMUHA]([]byte{0}); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("decode of a bare union = %v, want ErrInvalidDefinition", err)
	}
	var sig TPMTSignature
	if err := UnmarshalFrom(tpmutil.NewReader(eccSignatureBytes), sig); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("UnmarshalFrom(non-pointer) = %v", err)
	}
	if _, err := Marshal(nil); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("Marshal(nil) = %v", err)
	}
}

func TestDecodedBytesDoNotAlias(t *testing.T) {
	data := []byte{0x00, 0x02, 0xAA, 0xBB}
	d, err := Unmarshal[TPM2BDigest](data)
	if err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	data[2] = 0
	if d.Buffer[0] != 0xAA {
		t.Errorf("decoded buffer aliases the input")
	}
}

func TestRawBytes(t *testing.T) {
	b, err := Marshal([]byte{1, 2, 3})
	if err != nil || !bytes.Equal(b, []byte{1, 2, 3}) {
		t.Errorf("Marshal([]byte) = %x, %v", b, err)
	}
	got, err := Unmarshal[[]byte]([]byte{4, 5})
	if err != nil || !bytes.Equal(*got, []byte{4, 5}) {
		t.Errorf("Unmarshal[[]byte]() = %x, %v", got, err)
	}
}

func TestMarshalToUnmarshalFrom(t *testing.T) {
	w := tpmutil.NewWriter()
	hdr := TPMRspHeader{Tag: TPMSTNoSessions, Length: 18, ResponseCode: TPMRCSuccess}
	handles := TPMLHandle{Handle: []TPMHandle{0x81000001}}
	if err := MarshalTo(w, hdr, handles); err != nil {
		t.Fatalf("MarshalTo() = %v", err)
	}
	if w.Len() != 18 {
		t.Fatalf("Len() = %d, want 18", w.Len())
	}

	var gotHdr TPMRspHeader
	var gotHandles TPMLHandle
	r := tpmutil.NewReader(w.Bytes())
	if err := UnmarshalFrom(r, &gotHdr, &gotHandles); err != nil {
		t.Fatalf("UnmarshalFrom() = %v", err)
	}
	if err := r.Finish(); err != nil {
		t.Fatalf("Finish() = %v", err)
	}
	if diff := cmp.Diff(hdr, gotHdr); diff != "" {
		t.Errorf("header (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(handles, gotHandles); diff != "" {
		t.Errorf("handles (-want +got):\n%s", diff)
	}
}

// A failed MarshalTo leaves nothing behind, not even the length placeholder
// of a sized field it had started.
func TestMarshalToRollsBack(t *testing.T) {
	w := tpmutil.NewWriter()
	w.WriteU16(0xBEEF)
	bad := NewTPM2B(&TPMTPublic{Type: TPMAlgECC, NameAlg: TPMAlgSHA256})
	err := MarshalTo(w, TPMSTNoSessions, &bad)
	if !errors.Is(err, ErrUnencodableValue) {
		t.Fatalf("MarshalTo() = %v, want ErrUnencodableValue", err)
	}
	if diff := cmp.Diff([]byte{0xBE, 0xEF}, w.Bytes()); diff != "" {
		t.Errorf("writer after failed MarshalTo (-want +got):\n%s", diff)
	}
	if w.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", w.Depth())
	}
}

func TestTPM2B(t *testing.T) {
	pub := eccPublic()
	fromStruct := NewTPM2B(&pub)
	encoded, err := Marshal(pub)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	fromBytes := TPM2BFromBytes[TPMTPublic](encoded)

	a, err := Marshal(&fromStruct)
	if err != nil {
		t.Fatalf("Marshal(struct box) = %v", err)
	}
	b, err := Marshal(&fromBytes)
	if err != nil {
		t.Fatalf("Marshal(bytes box) = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("boxes encode differently: %x vs %x", a, b)
	}
	if !fromStruct.Equal(fromBytes) {
		t.Errorf("Equal() = false")
	}

	decoded, err := Unmarshal[TPM2BPublic](a)
	if err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if diff := cmp.Diff(encoded, mustBytes(t, *decoded)); diff != "" {
		t.Errorf("decoded Bytes() (-want +got):\n%s", diff)
	}
	contents, err := decoded.Contents()
	if err != nil {
		t.Fatalf("Contents() = %v", err)
	}
	if contents.Type != TPMAlgECC {
		t.Errorf("Type = %v", contents.Type)
	}

	lazy, err := fromBytes.Contents()
	if err != nil || lazy.NameAlg != TPMAlgSHA256 {
		t.Errorf("Contents() from bytes = %+v, %v", lazy, err)
	}

	if _, err := TPM2BFromBytes[TPMTPublic]([]byte{0xFF}).Contents(); err == nil {
		t.Errorf("Contents() of garbage succeeded")
	}
}

func TestEmptyTPM2B(t *testing.T) {
	var empty TPM2BPublic
	if !empty.IsEmpty() {
		t.Errorf("IsEmpty() = false")
	}
	b, err := Marshal(&empty)
	if err != nil || !bytes.Equal(b, []byte{0x00, 0x00}) {
		t.Fatalf("Marshal() = %x, %v", b, err)
	}
	got, err := Unmarshal[TPM2BPublic](b)
	if err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if !got.IsEmpty() {
		t.Errorf("decoded box is not empty")
	}
	c, err := got.Contents()
	if c != nil || err != nil {
		t.Errorf("Contents() = %v, %v", c, err)
	}
	if raw := mustBytes(t, *got); raw == nil || len(raw) != 0 {
		t.Errorf("Bytes() = %#v, want empty and non-nil", raw)
	}
}

func TestCopy(t *testing.T) {
	pub := eccPublic()
	cp, err := Copy(&pub)
	if err != nil {
		t.Fatalf("Copy() = %v", err)
	}
	orig, _ := pub.Unique.ECC()
	dup, err := cp.Unique.ECC()
	if err != nil {
		t.Fatalf("ECC() = %v", err)
	}
	dup.X.Buffer[0] ^= 0xFF
	if orig.X.Buffer[0] == dup.X.Buffer[0] {
		t.Errorf("Copy() shares buffers with its source")
	}
}

func eccPublic() TPMTPublic {
	return TPMTPublic{
		Type:    TPMAlgECC,
		NameAlg: TPMAlgSHA256,
		ObjectAttributes: TPMAObjectFixedTPM | TPMAObjectFixedParent | TPMAObjectSensitiveDataOrigin |
			TPMAObjectUserWithAuth | TPMAObjectSignEncrypt,
		Parameters: NewTPMUPublicParms(TPMAlgECC, &TPMSECCParms{
			Scheme: TPMTECCScheme{
				Scheme:  TPMAlgECDSA,
				Details: NewTPMUAsymScheme(TPMAlgECDSA, &TPMSSigSchemeECDSA{HashAlg: TPMAlgSHA256}),
			},
			CurveID: TPMECCNistP256,
		}),
		Unique: NewTPMUPublicID(TPMAlgECC, &TPMSECCPoint{
			X: TPM2BECCParameter{Buffer: bytes.Repeat([]byte{0x11}, 32)},
			Y: TPM2BECCParameter{Buffer: bytes.Repeat([]byte{0x22}, 32)},
		}),
	}
}
