package tpm2

import (
	"reflect"
	"sort"
	"strings"

	"github.com/google/go-tpm-wire/tpmutil"
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// structureTypes maps the TPM name of every decodable structure to its Go
// type.
var structureTypes = map[string]reflect.Type{
	"TPM_CMD_HEADER":           typeOf[TPMCmdHeader](),
	"TPM_RSP_HEADER":           typeOf[TPMRspHeader](),
	"TPM2B_DATA":               typeOf[TPM2BData](),
	"TPM2B_DIGEST":             typeOf[TPM2BDigest](),
	"TPM2B_NONCE":              typeOf[TPM2BNonce](),
	"TPM2B_AUTH":               typeOf[TPM2BAuth](),
	"TPM2B_NAME":               typeOf[TPM2BName](),
	"TPM2B_MAX_BUFFER":         typeOf[TPM2BMaxBuffer](),
	"TPM2B_MAX_NV_BUFFER":      typeOf[TPM2BMaxNVBuffer](),
	"TPM2B_TIMEOUT":            typeOf[TPM2BTimeout](),
	"TPM2B_PUBLIC_KEY_RSA":     typeOf[TPM2BPublicKeyRSA](),
	"TPM2B_ECC_PARAMETER":      typeOf[TPM2BECCParameter](),
	"TPM2B_ECC_POINT":          typeOf[TPM2BECCPoint](),
	"TPM2B_SENSITIVE_DATA":     typeOf[TPM2BSensitiveData](),
	"TPM2B_SENSITIVE_CREATE":   typeOf[TPM2BSensitiveCreate](),
	"TPM2B_PRIVATE":            typeOf[TPM2BPrivate](),
	"TPM2B_ENCRYPTED_SECRET":   typeOf[TPM2BEncryptedSecret](),
	"TPM2B_PUBLIC":             typeOf[TPM2BPublic](),
	"TPM2B_CREATION_DATA":      typeOf[TPM2BCreationData](),
	"TPM2B_ATTEST":             typeOf[TPM2BAttest](),
	"TPM2B_NV_PUBLIC":          typeOf[TPM2BNVPublic](),
	"TPMT_HA":                  typeOf[TPMTHA](),
	"TPMS_PCR_SELECTION":       typeOf[TPMSPCRSelection](),
	"TPML_PCR_SELECTION":       typeOf[TPMLPCRSelection](),
	"TPML_DIGEST":              typeOf[TPMLDigest](),
	"TPML_DIGEST_VALUES":       typeOf[TPMLDigestValues](),
	"TPML_CC":                  typeOf[TPMLCC](),
	"TPML_CCA":                 typeOf[TPMLCCA](),
	"TPML_ALG":                 typeOf[TPMLAlg](),
	"TPML_HANDLE":              typeOf[TPMLHandle](),
	"TPML_ALG_PROPERTY":        typeOf[TPMLAlgProperty](),
	"TPML_TAGGED_TPM_PROPERTY": typeOf[TPMLTaggedTPMProperty](),
	"TPML_TAGGED_PCR_PROPERTY": typeOf[TPMLTaggedPCRProperty](),
	"TPML_ECC_CURVE":           typeOf[TPMLECCCurve](),
	"TPML_TAGGED_POLICY":       typeOf[TPMLTaggedPolicy](),
	"TPML_ACT_DATA":            typeOf[TPMLACTData](),
	"TPMS_CAPABILITY_DATA":     typeOf[TPMSCapabilityData](),
	"TPMS_CLOCK_INFO":          typeOf[TPMSClockInfo](),
	"TPMS_TIME_INFO":           typeOf[TPMSTimeInfo](),
	"TPMS_ATTEST":              typeOf[TPMSAttest](),
	"TPMS_AUTH_COMMAND":        typeOf[TPMSAuthCommand](),
	"TPMS_AUTH_RESPONSE":       typeOf[TPMSAuthResponse](),
	"TPMT_SYM_DEF":             typeOf[TPMTSymDef](),
	"TPMT_SYM_DEF_OBJECT":      typeOf[TPMTSymDefObject](),
	"TPMS_SENSITIVE_CREATE":    typeOf[TPMSSensitiveCreate](),
	"TPMT_KEYEDHASH_SCHEME":    typeOf[TPMTKeyedHashScheme](),
	"TPMT_SIG_SCHEME":          typeOf[TPMTSigScheme](),
	"TPMT_KDF_SCHEME":          typeOf[TPMTKDFScheme](),
	"TPMT_RSA_SCHEME":          typeOf[TPMTRSAScheme](),
	"TPMT_ECC_SCHEME":          typeOf[TPMTECCScheme](),
	"TPMS_ECC_POINT":           typeOf[TPMSECCPoint](),
	"TPMT_SIGNATURE":           typeOf[TPMTSignature](),
	"TPMS_RSA_PARMS":           typeOf[TPMSRSAParms](),
	"TPMS_ECC_PARMS":           typeOf[TPMSECCParms](),
	"TPMT_PUBLIC":              typeOf[TPMTPublic](),
	"TPMS_NV_PUBLIC":           typeOf[TPMSNVPublic](),
	"TPMS_CREATION_DATA":       typeOf[TPMSCreationData](),
	"TPMT_TK_CREATION":         typeOf[TPMTTKCreation](),
	"TPMT_TK_VERIFIED":         typeOf[TPMTTKVerified](),
	"TPMT_TK_AUTH":             typeOf[TPMTTKAuth](),
	"TPMT_TK_HASHCHECK":        typeOf[TPMTTKHashCheck](),
}

// typeIndex finds structures by either spelling: TPMT_PUBLIC or TPMTPublic.
var typeIndex = func() map[string]string {
	idx := make(map[string]string, len(structureTypes))
	for name := range structureTypes {
		idx[normalizeTypeName(name)] = name
	}
	return idx
}()

func normalizeTypeName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "_", ""))
}

// LookupType returns the Go type of the named structure and its canonical
// TPM name.
func LookupType(name string) (reflect.Type, string, bool) {
	canonical, ok := typeIndex[normalizeTypeName(name)]
	if !ok {
		return nil, "", false
	}
	return structureTypes[canonical], canonical, true
}

// TypeNames returns the TPM names of all decodable structures, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(structureTypes))
	for n := range structureTypes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// UnmarshalNamed decodes data as the named structure and returns a pointer
// to the result. Like Unmarshal, it fails on trailing bytes.
func UnmarshalNamed(name string, data []byte) (interface{}, error) {
	t, _, ok := LookupType(name)
	if !ok {
		return nil, &UnknownConstantError{Family: "structure", Name: name}
	}
	v := reflect.New(t)
	r := tpmutil.NewReader(data)
	if err := UnmarshalFrom(r, v.Interface()); err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return v.Interface(), nil
}
