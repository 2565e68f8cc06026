package tpm2

import (
	"fmt"
	"reflect"
)

// TPMCmdHeader is the header structure in front of any TPM command.
// It is described in Part 1, Architecture.
type TPMCmdHeader struct {
	Tag         TPMISTCommandTag
	Length      uint32
	CommandCode TPMCC
}

// TPMRspHeader is the header structure in front of any TPM response.
// It is described in Part 1, Architecture.
type TPMRspHeader struct {
	Tag          TPMISTCommandTag
	Length       uint32
	ResponseCode TPMRC
}

// TPMIRSAKeyBits represents a TPMI_RSA_KEY_BITS.
// See definition in Part 2: Structures, section 11.2.4.6.
type TPMIRSAKeyBits = TPMKeyBits

// TPMTHA represents a TPMT_HA.
// See definition in Part 2: Structures, section 10.3.2.
type TPMTHA struct {
	HashAlg TPMIAlgHash `gotpm:"nullable"`
	Digest  TPMUHA      `gotpm:"tag=HashAlg"`
}

// NewTPMTHA builds a TPMTHA from a digest, which must have the size of alg.
func NewTPMTHA(alg TPMIAlgHash, digest []byte) (TPMTHA, error) {
	t, err := haUnion.PayloadType(uint64(alg))
	if err != nil {
		return TPMTHA{}, err
	}
	if t == nil {
		if len(digest) != 0 {
			return TPMTHA{}, unencodable("TPMT_HA", "%v carries no digest, got %d bytes", alg, len(digest))
		}
		return TPMTHA{HashAlg: alg, Digest: TPMUHA{newUnion(uint64(alg), nil)}}, nil
	}
	if t.Len() != len(digest) {
		return TPMTHA{}, unencodable("TPMT_HA", "%v digests are %d bytes, got %d", alg, t.Len(), len(digest))
	}
	p := reflect.New(t)
	reflect.Copy(p.Elem().Slice(0, t.Len()), reflect.ValueOf(digest))
	return TPMTHA{HashAlg: alg, Digest: TPMUHA{newUnion(uint64(alg), p.Interface())}}, nil
}

// DigestBytes returns the digest as a slice, or nil if there is none.
func (h TPMTHA) DigestBytes() []byte {
	c := h.Digest.tpmUnion().contents
	if c == nil {
		return nil
	}
	v := reflect.ValueOf(c).Elem()
	return v.Slice(0, v.Len()).Bytes()
}

// TPM2BData represents a TPM2B_DATA.
// See definition in Part 2: Structures, section 10.4.3.
type TPM2BData struct {
	Buffer []byte `gotpm:"sized"`
}

// TPM2BDigest represents a TPM2B_DIGEST.
// See definition in Part 2: Structures, section 10.4.2.
type TPM2BDigest TPM2BData

// TPM2BNonce represents a TPM2B_NONCE.
// See definition in Part 2: Structures, section 10.4.4.
type TPM2BNonce TPM2BDigest

// TPM2BAuth represents a TPM2B_AUTH.
// See definition in Part 2: Structures, section 10.4.5.
type TPM2BAuth TPM2BDigest

// TPM2BEvent represents a TPM2B_EVENT.
// See definition in Part 2: Structures, section 10.4.7.
type TPM2BEvent TPM2BData

// TPM2BMaxBuffer represents a TPM2B_MAX_BUFFER.
// See definition in Part 2: Structures, section 10.4.8.
type TPM2BMaxBuffer TPM2BData

// TPM2BMaxNVBuffer represents a TPM2B_MAX_NV_BUFFER.
// See definition in Part 2: Structures, section 10.4.9.
type TPM2BMaxNVBuffer TPM2BData

// TPM2BTimeout represents a TPM2B_TIMEOUT.
// See definition in Part 2: Structures, section 10.4.10.
type TPM2BTimeout TPM2BData

// TPM2BName represents a TPM2B_NAME.
// See definition in Part 2: Structures, section 10.5.3.
// TPMU_NAME has no selector on the wire, so names stay flat bytes.
type TPM2BName TPM2BData

// TPMSPCRSelection represents a TPMS_PCR_SELECTION.
// See definition in Part 2: Structures, section 10.6.2.
type TPMSPCRSelection struct {
	Hash      TPMIAlgHash
	PCRSelect []byte `gotpm:"sized8"`
}

// TPMTTKCreation represents a TPMT_TK_CREATION.
// See definition in Part 2: Structures, section 10.7.3.
type TPMTTKCreation struct {
	Tag       TPMST
	Hierarchy TPMIRHHierarchy
	// HMAC over the ticket contents keyed by the hierarchy proof.
	Digest TPM2BDigest
}

// TPMTTKVerified represents a TPMT_TK_VERIFIED.
// See definition in Part 2: Structures, section 10.7.4.
type TPMTTKVerified struct {
	Tag       TPMST
	Hierarchy TPMIRHHierarchy
	Digest    TPM2BDigest
}

// TPMTTKAuth represents a TPMT_TK_AUTH.
// See definition in Part 2: Structures, section 10.7.5.
type TPMTTKAuth struct {
	Tag       TPMST
	Hierarchy TPMIRHHierarchy `gotpm:"nullable"`
	// HMAC over the ticket contents keyed by the hierarchy proof.
	Digest TPM2BDigest
}

// TPMTTKHashCheck represents a TPMT_TK_HASHCHECK.
// See definition in Part 2: Structures, section 10.7.6.
type TPMTTKHashCheck struct {
	Tag       TPMST
	Hierarchy TPMIRHHierarchy
	Digest    TPM2BDigest
}

// TPMSAlgProperty represents a TPMS_ALG_PROPERTY.
// See definition in Part 2: Structures, section 10.8.1.
type TPMSAlgProperty struct {
	Alg           TPMAlgID
	AlgProperties TPMAAlgorithm
}

// TPMSTaggedProperty represents a TPMS_TAGGED_PROPERTY.
// See definition in Part 2: Structures, section 10.8.2.
type TPMSTaggedProperty struct {
	Property TPMPT
	Value    uint32
}

// TPMSTaggedPCRSelect represents a TPMS_TAGGED_PCR_SELECT.
// See definition in Part 2: Structures, section 10.8.3.
type TPMSTaggedPCRSelect struct {
	Tag       TPMPTPCR
	PCRSelect []byte `gotpm:"sized8"`
}

// TPMSTaggedPolicy represents a TPMS_TAGGED_POLICY.
// See definition in Part 2: Structures, section 10.8.4.
type TPMSTaggedPolicy struct {
	Handle     TPMHandle
	PolicyHash TPMTHA
}

// TPMSACTData represents a TPMS_ACT_DATA.
// See definition in Part 2: Structures, section 10.8.5.
type TPMSACTData struct {
	Handle     TPMHandle
	Timeout    uint32
	Attributes TPMAACT
}

// TPMLCC represents a TPML_CC.
// See definition in Part 2: Structures, section 10.9.1.
type TPMLCC struct {
	CommandCodes []TPMCC `gotpm:"list"`
}

// TPMLCCA represents a TPML_CCA.
// See definition in Part 2: Structures, section 10.9.2.
type TPMLCCA struct {
	CommandAttributes []TPMACC `gotpm:"list"`
}

// TPMLAlg represents a TPML_ALG.
// See definition in Part 2: Structures, section 10.9.3.
type TPMLAlg struct {
	Algorithms []TPMAlgID `gotpm:"list"`
}

// TPMLHandle represents a TPML_HANDLE.
// See definition in Part 2: Structures, section 10.9.4.
type TPMLHandle struct {
	Handle []TPMHandle `gotpm:"list"`
}

// TPMLDigest represents a TPML_DIGEST.
// See definition in Part 2: Structures, section 10.9.5.
type TPMLDigest struct {
	Digests []TPM2BDigest `gotpm:"list"`
}

// TPMLDigestValues represents a TPML_DIGEST_VALUES.
// See definition in Part 2: Structures, section 10.9.6.
type TPMLDigestValues struct {
	Digests []TPMTHA `gotpm:"list"`
}

// TPMLPCRSelection represents a TPML_PCR_SELECTION.
// See definition in Part 2: Structures, section 10.9.7.
type TPMLPCRSelection struct {
	PCRSelections []TPMSPCRSelection `gotpm:"list"`
}

// TPMLAlgProperty represents a TPML_ALG_PROPERTY.
// See definition in Part 2: Structures, section 10.9.8.
type TPMLAlgProperty struct {
	AlgProperties []TPMSAlgProperty `gotpm:"list"`
}

// TPMLTaggedTPMProperty represents a TPML_TAGGED_TPM_PROPERTY.
// See definition in Part 2: Structures, section 10.9.9.
type TPMLTaggedTPMProperty struct {
	TPMProperty []TPMSTaggedProperty `gotpm:"list"`
}

// TPMLTaggedPCRProperty represents a TPML_TAGGED_PCR_PROPERTY.
// See definition in Part 2: Structures, section 10.9.10.
type TPMLTaggedPCRProperty struct {
	PCRProperty []TPMSTaggedPCRSelect `gotpm:"list"`
}

// TPMLECCCurve represents a TPML_ECC_CURVE.
// See definition in Part 2: Structures, section 10.9.11.
type TPMLECCCurve struct {
	ECCCurves []TPMECCCurve `gotpm:"list"`
}

// TPMLTaggedPolicy represents a TPML_TAGGED_POLICY.
// See definition in Part 2: Structures, section 10.9.12.
type TPMLTaggedPolicy struct {
	Policies []TPMSTaggedPolicy `gotpm:"list"`
}

// TPMLACTData represents a TPML_ACT_DATA.
// See definition in Part 2: Structures, section 10.9.13.
type TPMLACTData struct {
	ACTData []TPMSACTData `gotpm:"list"`
}

// TPMLVendorProperty holds the opaque values returned for
// TPM_CAP_VENDOR_PROPERTY.
type TPMLVendorProperty struct {
	Properties []uint32 `gotpm:"list"`
}

// TPMSCapabilityData represents a TPMS_CAPABILITY_DATA.
// See definition in Part 2: Structures, section 10.10.2.
type TPMSCapabilityData struct {
	Capability TPMCap
	Data       TPMUCapabilities `gotpm:"tag=Capability"`
}

// TPMSClockInfo represents a TPMS_CLOCK_INFO.
// See definition in Part 2: Structures, section 10.11.1.
type TPMSClockInfo struct {
	Clock        uint64
	ResetCount   uint32
	RestartCount uint32
	// Clock has not been reported ahead of its current value.
	Safe TPMIYesNo
}

// TPMSTimeInfo represents a TPMS_TIME_INFO.
// See definition in Part 2: Structures, section 10.11.6.
type TPMSTimeInfo struct {
	Time      uint64
	ClockInfo TPMSClockInfo
}

// TPMSTimeAttestInfo represents a TPMS_TIME_ATTEST_INFO.
// See definition in Part 2: Structures, section 10.12.2.
type TPMSTimeAttestInfo struct {
	Time            TPMSTimeInfo
	FirmwareVersion uint64
}

// TPMSCertifyInfo represents a TPMS_CERTIFY_INFO.
// See definition in Part 2: Structures, section 10.12.3.
type TPMSCertifyInfo struct {
	Name          TPM2BName
	QualifiedName TPM2BName
}

// TPMSQuoteInfo represents a TPMS_QUOTE_INFO.
// See definition in Part 2: Structures, section 10.12.4.
type TPMSQuoteInfo struct {
	PCRSelect TPMLPCRSelection
	PCRDigest TPM2BDigest
}

// TPMSCommandAuditInfo represents a TPMS_COMMAND_AUDIT_INFO.
// See definition in Part 2: Structures, section 10.12.5.
type TPMSCommandAuditInfo struct {
	AuditCounter  uint64
	DigestAlg     TPMAlgID
	AuditDigest   TPM2BDigest
	CommandDigest TPM2BDigest
}

// TPMSSessionAuditInfo represents a TPMS_SESSION_AUDIT_INFO.
// See definition in Part 2: Structures, section 10.12.6.
type TPMSSessionAuditInfo struct {
	ExclusiveSession TPMIYesNo
	SessionDigest    TPM2BDigest
}

// TPMSCreationInfo represents a TPMS_CREATION_INFO.
// See definition in Part 2: Structures, section 10.12.7.
type TPMSCreationInfo struct {
	ObjectName   TPM2BName
	CreationHash TPM2BDigest
}

// TPMSNVCertifyInfo represents a TPMS_NV_CERTIFY_INFO.
// See definition in Part 2: Structures, section 10.12.8.
type TPMSNVCertifyInfo struct {
	IndexName  TPM2BName
	Offset     uint16
	NVContents TPM2BMaxNVBuffer
}

// TPMSNVDigestCertifyInfo represents a TPMS_NV_DIGEST_CERTIFY_INFO.
// See definition in Part 2: Structures, section 10.12.9.
type TPMSNVDigestCertifyInfo struct {
	IndexName TPM2BName
	NVDigest  TPM2BDigest
}

// TPMSAttest represents a TPMS_ATTEST.
// See definition in Part 2: Structures, section 10.12.12.
type TPMSAttest struct {
	// always TPM_GENERATED_VALUE
	Magic           TPMGenerated `gotpm:"check"`
	Type            TPMISTAttest
	QualifiedSigner TPM2BName
	ExtraData       TPM2BData
	ClockInfo       TPMSClockInfo
	FirmwareVersion uint64
	Attested        TPMUAttest `gotpm:"tag=Type"`
}

// TPM2BAttest represents a TPM2B_ATTEST.
// See definition in Part 2: Structures, section 10.12.13.
type TPM2BAttest = TPM2B[TPMSAttest]

// TPMSAuthCommand represents a TPMS_AUTH_COMMAND.
// See definition in Part 2: Structures, section 10.13.2.
type TPMSAuthCommand struct {
	Handle        TPMISHAuthSession
	Nonce         TPM2BNonce
	Attributes    TPMASession
	Authorization TPM2BAuth
}

// TPMSAuthResponse represents a TPMS_AUTH_RESPONSE.
// See definition in Part 2: Structures, section 10.13.3.
type TPMSAuthResponse struct {
	Nonce         TPM2BNonce
	Attributes    TPMASession
	Authorization TPM2BAuth
}

// TPMTSymDef represents a TPMT_SYM_DEF.
// See definition in Part 2: Structures, section 11.1.6.
type TPMTSymDef struct {
	Algorithm TPMIAlgSym     `gotpm:"nullable"`
	KeyBits   TPMUSymKeyBits `gotpm:"tag=Algorithm"`
	Mode      TPMUSymMode    `gotpm:"tag=Algorithm"`
	Details   TPMUSymDetails `gotpm:"tag=Algorithm"`
}

// TPMTSymDefObject represents a TPMT_SYM_DEF_OBJECT.
// See definition in Part 2: Structures, section 11.1.7.
type TPMTSymDefObject struct {
	Algorithm TPMIAlgSymObject `gotpm:"nullable"`
	KeyBits   TPMUSymKeyBits   `gotpm:"tag=Algorithm"`
	Mode      TPMUSymMode      `gotpm:"tag=Algorithm"`
	Details   TPMUSymDetails   `gotpm:"tag=Algorithm"`
}

// TPM2BSymKey represents a TPM2B_SYM_KEY.
// See definition in Part 2: Structures, section 11.1.8.
type TPM2BSymKey TPM2BData

// TPMSSymCipherParms represents a TPMS_SYMCIPHER_PARMS.
// See definition in Part 2: Structures, section 11.1.9.
type TPMSSymCipherParms struct {
	Sym TPMTSymDefObject
}

// TPM2BSensitiveData represents a TPM2B_SENSITIVE_DATA.
// See definition in Part 2: Structures, section 11.1.14.
type TPM2BSensitiveData TPM2BData

// TPMSSensitiveCreate represents a TPMS_SENSITIVE_CREATE.
// See definition in Part 2: Structures, section 11.1.15.
// TPMU_SENSITIVE_CREATE has no selector on the wire; both of its forms are a
// sized buffer, so Data holds the raw bytes.
type TPMSSensitiveCreate struct {
	UserAuth TPM2BAuth
	Data     TPM2BSensitiveData
}

// TPM2BSensitiveCreate represents a TPM2B_SENSITIVE_CREATE.
// See definition in Part 2: Structures, section 11.1.16.
type TPM2BSensitiveCreate = TPM2B[TPMSSensitiveCreate]

// TPMSSchemeHash represents a TPMS_SCHEME_HASH.
// See definition in Part 2: Structures, section 11.1.17.
type TPMSSchemeHash struct {
	HashAlg TPMIAlgHash
}

// TPMSSchemeECDAA represents a TPMS_SCHEME_ECDAA.
// See definition in Part 2: Structures, section 11.1.18.
type TPMSSchemeECDAA struct {
	HashAlg TPMIAlgHash
	// TPM2_Commit counter
	Count uint16
}

// TPMSSchemeHMAC represents a TPMS_SCHEME_HMAC.
// See definition in Part 2: Structures, section 11.1.20.
type TPMSSchemeHMAC TPMSSchemeHash

// TPMSSchemeXOR represents a TPMS_SCHEME_XOR.
// See definition in Part 2: Structures, section 11.1.21.
type TPMSSchemeXOR struct {
	HashAlg TPMIAlgHash
	KDF     TPMIAlgKDF
}

// TPMTKeyedHashScheme represents a TPMT_KEYEDHASH_SCHEME.
// See definition in Part 2: Structures, section 11.1.23.
type TPMTKeyedHashScheme struct {
	Scheme  TPMIAlgKeyedHashScheme `gotpm:"nullable"`
	Details TPMUSchemeKeyedHash    `gotpm:"tag=Scheme"`
}

// Signature schemes share the layout of the scheme they are named after.
// See definition in Part 2: Structures, section 11.2.1.2 and 11.2.1.3.
type (
	TPMSSigSchemeRSASSA    TPMSSchemeHash
	TPMSSigSchemeRSAPSS    TPMSSchemeHash
	TPMSSigSchemeECDSA     TPMSSchemeHash
	TPMSSigSchemeSM2       TPMSSchemeHash
	TPMSSigSchemeECSchnorr TPMSSchemeHash
	TPMSSigSchemeECDAA     TPMSSchemeECDAA
)

// TPMTSigScheme represents a TPMT_SIG_SCHEME.
// See definition in Part 2: Structures, section 11.2.1.5.
type TPMTSigScheme struct {
	Scheme  TPMIAlgSigScheme `gotpm:"nullable"`
	Details TPMUSigScheme    `gotpm:"tag=Scheme"`
}

// TPMSEncSchemeOAEP represents a TPMS_ENC_SCHEME_OAEP.
// See definition in Part 2: Structures, section 11.2.2.2.
type TPMSEncSchemeOAEP TPMSSchemeHash

// TPMSKeySchemeECDH represents a TPMS_KEY_SCHEME_ECDH.
// See definition in Part 2: Structures, section 11.2.2.3.
type TPMSKeySchemeECDH TPMSSchemeHash

// TPMSKeySchemeECMQV represents a TPMS_KEY_SCHEME_ECMQV.
// See definition in Part 2: Structures, section 11.2.2.3.
type TPMSKeySchemeECMQV TPMSSchemeHash

// Key derivation schemes.
// See definition in Part 2: Structures, section 11.2.3.1.
type (
	TPMSKDFSchemeMGF1         TPMSSchemeHash
	TPMSKDFSchemeKDF1SP80056A TPMSSchemeHash
	TPMSKDFSchemeKDF2         TPMSSchemeHash
	TPMSKDFSchemeKDF1SP800108 TPMSSchemeHash
)

// TPMTKDFScheme represents a TPMT_KDF_SCHEME.
// See definition in Part 2: Structures, section 11.2.3.3.
type TPMTKDFScheme struct {
	Scheme  TPMIAlgKDF    `gotpm:"nullable"`
	Details TPMUKDFScheme `gotpm:"tag=Scheme"`
}

// TPMTRSAScheme represents a TPMT_RSA_SCHEME.
// See definition in Part 2: Structures, section 11.2.4.2.
type TPMTRSAScheme struct {
	Scheme  TPMIAlgRSAScheme `gotpm:"nullable"`
	Details TPMUAsymScheme   `gotpm:"tag=Scheme"`
}

// TPM2BPublicKeyRSA represents a TPM2B_PUBLIC_KEY_RSA.
// See definition in Part 2: Structures, section 11.2.4.5.
type TPM2BPublicKeyRSA TPM2BData

// TPM2BPrivateKeyRSA represents a TPM2B_PRIVATE_KEY_RSA.
// See definition in Part 2: Structures, section 11.2.4.7.
type TPM2BPrivateKeyRSA TPM2BData

// TPM2BECCParameter represents a TPM2B_ECC_PARAMETER.
// See definition in Part 2: Structures, section 11.2.5.1.
type TPM2BECCParameter TPM2BData

// TPMSECCPoint represents a TPMS_ECC_POINT.
// See definition in Part 2: Structures, section 11.2.5.2.
type TPMSECCPoint struct {
	X TPM2BECCParameter
	Y TPM2BECCParameter
}

// TPM2BECCPoint represents a TPM2B_ECC_POINT.
// See definition in Part 2: Structures, section 11.2.5.3.
type TPM2BECCPoint = TPM2B[TPMSECCPoint]

// TPMTECCScheme represents a TPMT_ECC_SCHEME.
// See definition in Part 2: Structures, section 11.2.5.6.
type TPMTECCScheme struct {
	Scheme  TPMIAlgECCScheme `gotpm:"nullable"`
	Details TPMUAsymScheme   `gotpm:"tag=Scheme"`
}

// TPMSSignatureRSA represents a TPMS_SIGNATURE_RSA.
// See definition in Part 2: Structures, section 11.3.1.
type TPMSSignatureRSA struct {
	Hash TPMIAlgHash
	// as long as the public modulus
	Sig TPM2BPublicKeyRSA
}

// TPMSSignatureECC represents a TPMS_SIGNATURE_ECC.
// See definition in Part 2: Structures, section 11.3.2.
type TPMSSignatureECC struct {
	Hash       TPMIAlgHash
	SignatureR TPM2BECCParameter
	SignatureS TPM2BECCParameter
}

// TPMTSignature represents a TPMT_SIGNATURE.
// See definition in Part 2: Structures, section 11.3.4.
type TPMTSignature struct {
	SigAlg    TPMIAlgSigScheme `gotpm:"nullable"`
	Signature TPMUSignature    `gotpm:"tag=SigAlg"`
}

// TPM2BEncryptedSecret represents a TPM2B_ENCRYPTED_SECRET.
// See definition in Part 2: Structures, section 11.4.33.
type TPM2BEncryptedSecret TPM2BData

// TPMSKeyedHashParms represents a TPMS_KEYEDHASH_PARMS.
// See definition in Part 2: Structures, section 12.2.3.3.
type TPMSKeyedHashParms struct {
	Scheme TPMTKeyedHashScheme
}

// TPMSRSAParms represents a TPMS_RSA_PARMS.
// See definition in Part 2: Structures, section 12.2.3.5.
type TPMSRSAParms struct {
	Symmetric TPMTSymDefObject
	Scheme    TPMTRSAScheme
	KeyBits   TPMIRSAKeyBits
	// the public exponent; zero means the default of 2^16 + 1
	Exponent uint32
}

// TPMSECCParms represents a TPMS_ECC_PARMS.
// See definition in Part 2: Structures, section 12.2.3.6.
type TPMSECCParms struct {
	Symmetric TPMTSymDefObject
	Scheme    TPMTECCScheme
	CurveID   TPMIECCCurve
	KDF       TPMTKDFScheme
}

// TPMTPublic represents a TPMT_PUBLIC.
// See definition in Part 2: Structures, section 12.2.4.
type TPMTPublic struct {
	Type             TPMIAlgPublic
	NameAlg          TPMIAlgHash
	ObjectAttributes TPMAObject
	AuthPolicy       TPM2BDigest
	Parameters       TPMUPublicParms `gotpm:"tag=Type"`
	// the public key, for asymmetric objects
	Unique TPMUPublicID `gotpm:"tag=Type"`
}

// TPM2BPublic represents a TPM2B_PUBLIC.
// See definition in Part 2: Structures, section 12.2.5.
type TPM2BPublic = TPM2B[TPMTPublic]

// TPM2BPrivate represents a TPM2B_PRIVATE.
// See definition in Part 2: Structures, section 12.3.7.
type TPM2BPrivate TPM2BData

// TPMSNVPublic represents a TPMS_NV_PUBLIC.
// See definition in Part 2: Structures, section 13.5.
type TPMSNVPublic struct {
	NVIndex    TPMIRHNVIndex
	NameAlg    TPMIAlgHash
	Attributes TPMANV
	AuthPolicy TPM2BDigest
	DataSize   uint16
}

// TPM2BNVPublic represents a TPM2B_NV_PUBLIC.
// See definition in Part 2: Structures, section 13.6.
type TPM2BNVPublic = TPM2B[TPMSNVPublic]

// TPMSCreationData represents a TPMS_CREATION_DATA.
// See definition in Part 2: Structures, section 15.1.
type TPMSCreationData struct {
	PCRSelect           TPMLPCRSelection
	PCRDigest           TPM2BDigest
	Locality            TPMALocality
	ParentNameAlg       TPMAlgID
	ParentName          TPM2BName
	ParentQualifiedName TPM2BName
	OutsideInfo         TPM2BData
}

// TPM2BCreationData represents a TPM2B_CREATION_DATA.
// See definition in Part 2: Structures, section 15.2.
type TPM2BCreationData = TPM2B[TPMSCreationData]

// String renders the selector and digest of a TPMT_HA.
func (h TPMTHA) String() string {
	return fmt.Sprintf("%v:%x", h.HashAlg, h.DigestBytes())
}
