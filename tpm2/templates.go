package tpm2

import (
	"fmt"
)

// ekPolicy is TPM2_PolicySecret(TPM_RH_ENDORSEMENT) under SHA-256.
var ekPolicy = []byte{
	0x83, 0x71, 0x97, 0x67, 0x44, 0x84, 0xB3, 0xF8,
	0x1A, 0x90, 0xCC, 0x8D, 0x46, 0xA5, 0xD7, 0x24,
	0xFD, 0x52, 0xD7, 0x6E, 0x06, 0x52, 0x0B, 0x64,
	0xF2, 0xA1, 0xDA, 0x1B, 0x33, 0x14, 0x69, 0xAA,
}

const (
	srkAttributes = TPMAObjectFixedTPM | TPMAObjectFixedParent | TPMAObjectSensitiveDataOrigin |
		TPMAObjectUserWithAuth | TPMAObjectNoDA | TPMAObjectRestricted | TPMAObjectDecrypt
	ekAttributes = TPMAObjectFixedTPM | TPMAObjectFixedParent | TPMAObjectSensitiveDataOrigin |
		TPMAObjectAdminWithPolicy | TPMAObjectRestricted | TPMAObjectDecrypt
)

func aes128CFB() TPMTSymDefObject {
	bits := TPMKeyBits(128)
	return TPMTSymDefObject{
		Algorithm: TPMAlgAES,
		KeyBits:   NewTPMUSymKeyBits(TPMAlgAES, &bits),
		Mode:      NewTPMUSymMode(TPMAlgAES, TPMAlgCFB),
		Details:   NewTPMUSymDetails(TPMAlgAES),
	}
}

func rsaTemplate(attrs TPMAObject, policy []byte) TPMTPublic {
	return TPMTPublic{
		Type:             TPMAlgRSA,
		NameAlg:          TPMAlgSHA256,
		ObjectAttributes: attrs,
		AuthPolicy:       TPM2BDigest{Buffer: policy},
		Parameters: NewTPMUPublicParms(TPMAlgRSA, &TPMSRSAParms{
			Symmetric: aes128CFB(),
			Scheme:    TPMTRSAScheme{Scheme: TPMAlgNull},
			KeyBits:   2048,
		}),
		Unique: NewTPMUPublicID(TPMAlgRSA, &TPM2BPublicKeyRSA{Buffer: make([]byte, 256)}),
	}
}

func eccTemplate(attrs TPMAObject, policy []byte) TPMTPublic {
	return TPMTPublic{
		Type:             TPMAlgECC,
		NameAlg:          TPMAlgSHA256,
		ObjectAttributes: attrs,
		AuthPolicy:       TPM2BDigest{Buffer: policy},
		Parameters: NewTPMUPublicParms(TPMAlgECC, &TPMSECCParms{
			Symmetric: aes128CFB(),
			Scheme:    TPMTECCScheme{Scheme: TPMAlgNull},
			CurveID:   TPMECCNistP256,
			KDF:       TPMTKDFScheme{Scheme: TPMAlgNull},
		}),
		Unique: NewTPMUPublicID(TPMAlgECC, &TPMSECCPoint{
			X: TPM2BECCParameter{Buffer: make([]byte, 32)},
			Y: TPM2BECCParameter{Buffer: make([]byte, 32)},
		}),
	}
}

var (
	// RSASRKTemplate contains the TCG reference RSA-2048 SRK template.
	// https://trustedcomputinggroup.org/wp-content/uploads/TCG-TPM-v2.0-Provisioning-Guidance-Published-v1r1.pdf
	RSASRKTemplate = rsaTemplate(srkAttributes, nil)
	// RSAEKTemplate contains the TCG reference RSA-2048 EK template.
	RSAEKTemplate = rsaTemplate(ekAttributes, ekPolicy)
	// ECCSRKTemplate contains the TCG reference ECC-P256 SRK template.
	// https://trustedcomputinggroup.org/wp-content/uploads/TCG-TPM-v2.0-Provisioning-Guidance-Published-v1r1.pdf
	ECCSRKTemplate = eccTemplate(srkAttributes, nil)
	// ECCEKTemplate contains the TCG reference ECC-P256 EK template.
	ECCEKTemplate = eccTemplate(ekAttributes, ekPolicy)
)

// RSAEKTemplateWithPublicKey returns a new TPMT_PUBLIC using the template for
// an RSA EK and the specified RSA public key.
func RSAEKTemplateWithPublicKey(pubKey TPM2BPublicKeyRSA) (*TPMTPublic, error) {
	ek, err := Copy(&RSAEKTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to copy rsa ek tpl: %w", err)
	}
	ek.Unique = NewTPMUPublicID(TPMAlgRSA, &pubKey)
	return ek, nil
}

// ECCEKTemplateWithPoint returns a new TPMT_PUBLIC using the template for an
// ECC EK and the specified ECC point.
func ECCEKTemplateWithPoint(point TPMSECCPoint) (*TPMTPublic, error) {
	ek, err := Copy(&ECCEKTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to copy ecc ek tpl: %w", err)
	}
	ek.Unique = NewTPMUPublicID(TPMAlgECC, &point)
	return ek, nil
}
