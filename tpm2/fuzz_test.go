package tpm2_test

import (
	"bytes"
	"testing"

	"github.com/google/go-tpm-wire/tpm2"
)

// fuzzDecode checks that decoding arbitrary input never panics, and that
// anything that does decode re-encodes to the same bytes.
func fuzzDecode[T any](t *testing.T, data []byte) {
	v, err := tpm2.Unmarshal[T](data)
	if err != nil {
		return
	}
	again, err := tpm2.Marshal(v)
	if err != nil {
		t.Fatalf("decoded %T does not re-encode: %v", v, err)
	}
	if !bytes.Equal(data, again) {
		t.Fatalf("re-encoded %T differs:\n got %x\nwant %x", v, again, data)
	}
}

func seed[T any](f *testing.F, vs ...T) {
	for _, v := range vs {
		b, err := tpm2.Marshal(v)
		if err != nil {
			f.Fatalf("Marshal(%T) = %v", v, err)
		}
		f.Add(b)
	}
}

func FuzzUnmarshalPublic(f *testing.F) {
	seed(f, tpm2.RSASRKTemplate, tpm2.ECCSRKTemplate, tpm2.RSAEKTemplate)
	f.Add([]byte{0x00, 0x23, 0x00, 0x0B})
	f.Fuzz(func(t *testing.T, data []byte) {
		fuzzDecode[tpm2.TPMTPublic](t, data)
	})
}

func FuzzUnmarshalAttest(f *testing.F) {
	seed(f, quoteAttest())
	f.Fuzz(func(t *testing.T, data []byte) {
		fuzzDecode[tpm2.TPMSAttest](t, data)
	})
}

func FuzzUnmarshalSignature(f *testing.F) {
	ha, err := tpm2.NewTPMTHA(tpm2.TPMAlgSHA256, make([]byte, 32))
	if err != nil {
		f.Fatalf("NewTPMTHA() = %v", err)
	}
	seed(f,
		tpm2.TPMTSignature{SigAlg: tpm2.TPMAlgNull},
		tpm2.TPMTSignature{Signature: tpm2.NewTPMUSignature(tpm2.TPMAlgHMAC, &ha)},
		tpm2.TPMTSignature{Signature: tpm2.NewTPMUSignature(tpm2.TPMAlgRSASSA, &tpm2.TPMSSignatureRSA{
			Hash: tpm2.TPMAlgSHA256,
			Sig:  tpm2.TPM2BPublicKeyRSA{Buffer: make([]byte, 256)},
		})},
	)
	f.Fuzz(func(t *testing.T, data []byte) {
		fuzzDecode[tpm2.TPMTSignature](t, data)
	})
}

func FuzzUnmarshalCapabilityData(f *testing.F) {
	seed(f, tpm2.TPMSCapabilityData{
		Capability: tpm2.TPMCapECCCurves,
		Data:       tpm2.NewTPMUCapabilities(tpm2.TPMCapECCCurves, &tpm2.TPMLECCCurve{ECCCurves: []tpm2.TPMECCCurve{tpm2.TPMECCNistP256}}),
	})
	f.Fuzz(func(t *testing.T, data []byte) {
		fuzzDecode[tpm2.TPMSCapabilityData](t, data)
	})
}
