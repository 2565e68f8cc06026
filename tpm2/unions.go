package tpm2

// Each TPMU type embeds a union carrier that records the selector it was
// built with. A union that was never set may still be encoded when the
// structure's selector picks an empty member, so empty members usually need
// no constructor.

var haUnion = newUnionFamily("TPMU_HA", algIDs,
	member[[20]byte](TPMAlgSHA1),
	member[[32]byte](TPMAlgSHA256),
	member[[48]byte](TPMAlgSHA384),
	member[[64]byte](TPMAlgSHA512),
	member[[32]byte](TPMAlgSM3256),
	member[[32]byte](TPMAlgSHA3256),
	member[[48]byte](TPMAlgSHA3384),
	member[[64]byte](TPMAlgSHA3512),
	empty(TPMAlgNull),
)

// TPMUHA represents a TPMU_HA.
// See definition in Part 2: Structures, section 10.3.1.
type TPMUHA struct{ union }

// Family implements Union.
func (TPMUHA) Family() *UnionFamily { return haUnion }

// HAContents is a type constraint representing the possible contents of
// TPMUHA.
type HAContents interface {
	*[20]byte | *[32]byte | *[48]byte | *[64]byte
}

// NewTPMUHA instantiates a TPMUHA with the given digest.
func NewTPMUHA[C HAContents](selector TPMIAlgHash, contents C) TPMUHA {
	return TPMUHA{newUnion(uint64(selector), contents)}
}

// SHA1 returns the SHA-1 digest.
func (u TPMUHA) SHA1() (*[20]byte, error) {
	return contentsOf[[20]byte](u.union, haUnion, uint64(TPMAlgSHA1))
}

// SHA256 returns the SHA-256 digest.
func (u TPMUHA) SHA256() (*[32]byte, error) {
	return contentsOf[[32]byte](u.union, haUnion, uint64(TPMAlgSHA256))
}

// SHA384 returns the SHA-384 digest.
func (u TPMUHA) SHA384() (*[48]byte, error) {
	return contentsOf[[48]byte](u.union, haUnion, uint64(TPMAlgSHA384))
}

// SHA512 returns the SHA-512 digest.
func (u TPMUHA) SHA512() (*[64]byte, error) {
	return contentsOf[[64]byte](u.union, haUnion, uint64(TPMAlgSHA512))
}

var capabilitiesUnion = newUnionFamily("TPMU_CAPABILITIES", capabilities,
	member[TPMLAlgProperty](TPMCapAlgs),
	member[TPMLHandle](TPMCapHandles),
	member[TPMLCCA](TPMCapCommands),
	member[TPMLCC](TPMCapPPCommands),
	member[TPMLCC](TPMCapAuditCommands),
	member[TPMLPCRSelection](TPMCapPCRs),
	member[TPMLTaggedTPMProperty](TPMCapTPMProperties),
	member[TPMLTaggedPCRProperty](TPMCapPCRProperties),
	member[TPMLECCCurve](TPMCapECCCurves),
	member[TPMLTaggedPolicy](TPMCapAuthPolicies),
	member[TPMLACTData](TPMCapACT),
	member[TPMLVendorProperty](TPMCapVendorProperty),
)

// TPMUCapabilities represents a TPMU_CAPABILITIES.
// See definition in Part 2: Structures, section 10.10.1.
type TPMUCapabilities struct{ union }

// Family implements Union.
func (TPMUCapabilities) Family() *UnionFamily { return capabilitiesUnion }

// CapabilitiesContents is a type constraint representing the possible
// contents of TPMUCapabilities.
type CapabilitiesContents interface {
	*TPMLAlgProperty | *TPMLHandle | *TPMLCCA | *TPMLCC | *TPMLPCRSelection |
		*TPMLTaggedTPMProperty | *TPMLTaggedPCRProperty | *TPMLECCCurve |
		*TPMLTaggedPolicy | *TPMLACTData | *TPMLVendorProperty
}

// NewTPMUCapabilities instantiates a TPMUCapabilities with the given contents.
func NewTPMUCapabilities[C CapabilitiesContents](selector TPMCap, contents C) TPMUCapabilities {
	return TPMUCapabilities{newUnion(uint64(selector), contents)}
}

// Algorithms returns the TPM_CAP_ALGS data.
func (u TPMUCapabilities) Algorithms() (*TPMLAlgProperty, error) {
	return contentsOf[TPMLAlgProperty](u.union, capabilitiesUnion, uint64(TPMCapAlgs))
}

// Handles returns the TPM_CAP_HANDLES data.
func (u TPMUCapabilities) Handles() (*TPMLHandle, error) {
	return contentsOf[TPMLHandle](u.union, capabilitiesUnion, uint64(TPMCapHandles))
}

// Command returns the TPM_CAP_COMMANDS data.
func (u TPMUCapabilities) Command() (*TPMLCCA, error) {
	return contentsOf[TPMLCCA](u.union, capabilitiesUnion, uint64(TPMCapCommands))
}

// PPCommands returns the TPM_CAP_PP_COMMANDS data.
func (u TPMUCapabilities) PPCommands() (*TPMLCC, error) {
	return contentsOf[TPMLCC](u.union, capabilitiesUnion, uint64(TPMCapPPCommands))
}

// AuditCommands returns the TPM_CAP_AUDIT_COMMANDS data.
func (u TPMUCapabilities) AuditCommands() (*TPMLCC, error) {
	return contentsOf[TPMLCC](u.union, capabilitiesUnion, uint64(TPMCapAuditCommands))
}

// AssignedPCR returns the TPM_CAP_PCRS data.
func (u TPMUCapabilities) AssignedPCR() (*TPMLPCRSelection, error) {
	return contentsOf[TPMLPCRSelection](u.union, capabilitiesUnion, uint64(TPMCapPCRs))
}

// TPMProperties returns the TPM_CAP_TPM_PROPERTIES data.
func (u TPMUCapabilities) TPMProperties() (*TPMLTaggedTPMProperty, error) {
	return contentsOf[TPMLTaggedTPMProperty](u.union, capabilitiesUnion, uint64(TPMCapTPMProperties))
}

// PCRProperties returns the TPM_CAP_PCR_PROPERTIES data.
func (u TPMUCapabilities) PCRProperties() (*TPMLTaggedPCRProperty, error) {
	return contentsOf[TPMLTaggedPCRProperty](u.union, capabilitiesUnion, uint64(TPMCapPCRProperties))
}

// ECCCurves returns the TPM_CAP_ECC_CURVES data.
func (u TPMUCapabilities) ECCCurves() (*TPMLECCCurve, error) {
	return contentsOf[TPMLECCCurve](u.union, capabilitiesUnion, uint64(TPMCapECCCurves))
}

// AuthPolicies returns the TPM_CAP_AUTH_POLICIES data.
func (u TPMUCapabilities) AuthPolicies() (*TPMLTaggedPolicy, error) {
	return contentsOf[TPMLTaggedPolicy](u.union, capabilitiesUnion, uint64(TPMCapAuthPolicies))
}

// ACTData returns the TPM_CAP_ACT data.
func (u TPMUCapabilities) ACTData() (*TPMLACTData, error) {
	return contentsOf[TPMLACTData](u.union, capabilitiesUnion, uint64(TPMCapACT))
}

var attestUnion = newUnionFamily("TPMU_ATTEST", structureTags,
	member[TPMSNVCertifyInfo](TPMSTAttestNV),
	member[TPMSCommandAuditInfo](TPMSTAttestCommandAudit),
	member[TPMSSessionAuditInfo](TPMSTAttestSessionAudit),
	member[TPMSCertifyInfo](TPMSTAttestCertify),
	member[TPMSQuoteInfo](TPMSTAttestQuote),
	member[TPMSTimeAttestInfo](TPMSTAttestTime),
	member[TPMSCreationInfo](TPMSTAttestCreation),
	member[TPMSNVDigestCertifyInfo](TPMSTAttestNVDigest),
)

// TPMUAttest represents a TPMU_ATTEST.
// See definition in Part 2: Structures, section 10.12.11.
type TPMUAttest struct{ union }

// Family implements Union.
func (TPMUAttest) Family() *UnionFamily { return attestUnion }

// AttestContents is a type constraint representing the possible contents of
// TPMUAttest.
type AttestContents interface {
	*TPMSNVCertifyInfo | *TPMSCommandAuditInfo | *TPMSSessionAuditInfo |
		*TPMSCertifyInfo | *TPMSQuoteInfo | *TPMSTimeAttestInfo |
		*TPMSCreationInfo | *TPMSNVDigestCertifyInfo
}

// NewTPMUAttest instantiates a TPMUAttest with the given contents.
func NewTPMUAttest[C AttestContents](selector TPMST, contents C) TPMUAttest {
	return TPMUAttest{newUnion(uint64(selector), contents)}
}

// NV returns the NV certification info.
func (u TPMUAttest) NV() (*TPMSNVCertifyInfo, error) {
	return contentsOf[TPMSNVCertifyInfo](u.union, attestUnion, uint64(TPMSTAttestNV))
}

// CommandAudit returns the command audit info.
func (u TPMUAttest) CommandAudit() (*TPMSCommandAuditInfo, error) {
	return contentsOf[TPMSCommandAuditInfo](u.union, attestUnion, uint64(TPMSTAttestCommandAudit))
}

// SessionAudit returns the session audit info.
func (u TPMUAttest) SessionAudit() (*TPMSSessionAuditInfo, error) {
	return contentsOf[TPMSSessionAuditInfo](u.union, attestUnion, uint64(TPMSTAttestSessionAudit))
}

// Certify returns the certification info.
func (u TPMUAttest) Certify() (*TPMSCertifyInfo, error) {
	return contentsOf[TPMSCertifyInfo](u.union, attestUnion, uint64(TPMSTAttestCertify))
}

// Quote returns the quote info.
func (u TPMUAttest) Quote() (*TPMSQuoteInfo, error) {
	return contentsOf[TPMSQuoteInfo](u.union, attestUnion, uint64(TPMSTAttestQuote))
}

// Time returns the time attestation info.
func (u TPMUAttest) Time() (*TPMSTimeAttestInfo, error) {
	return contentsOf[TPMSTimeAttestInfo](u.union, attestUnion, uint64(TPMSTAttestTime))
}

// Creation returns the creation info.
func (u TPMUAttest) Creation() (*TPMSCreationInfo, error) {
	return contentsOf[TPMSCreationInfo](u.union, attestUnion, uint64(TPMSTAttestCreation))
}

// NVDigest returns the NV digest certification info.
func (u TPMUAttest) NVDigest() (*TPMSNVDigestCertifyInfo, error) {
	return contentsOf[TPMSNVDigestCertifyInfo](u.union, attestUnion, uint64(TPMSTAttestNVDigest))
}

var signatureUnion = newUnionFamily("TPMU_SIGNATURE", algIDs,
	member[TPMSSignatureRSA](TPMAlgRSASSA),
	member[TPMSSignatureRSA](TPMAlgRSAPSS),
	member[TPMSSignatureECC](TPMAlgECDSA),
	member[TPMSSignatureECC](TPMAlgECDAA),
	member[TPMSSignatureECC](TPMAlgSM2),
	member[TPMSSignatureECC](TPMAlgECSchnorr),
	member[TPMTHA](TPMAlgHMAC),
	empty(TPMAlgNull),
)

// TPMUSignature represents a TPMU_SIGNATURE.
// See definition in Part 2: Structures, section 11.3.3.
type TPMUSignature struct{ union }

// Family implements Union.
func (TPMUSignature) Family() *UnionFamily { return signatureUnion }

// SignatureContents is a type constraint representing the possible contents
// of TPMUSignature.
type SignatureContents interface {
	*TPMTHA | *TPMSSignatureRSA | *TPMSSignatureECC
}

// NewTPMUSignature instantiates a TPMUSignature with the given contents.
func NewTPMUSignature[C SignatureContents](selector TPMIAlgSigScheme, contents C) TPMUSignature {
	return TPMUSignature{newUnion(uint64(selector), contents)}
}

// HMAC returns the HMAC signature.
func (u TPMUSignature) HMAC() (*TPMTHA, error) {
	return contentsOf[TPMTHA](u.union, signatureUnion, uint64(TPMAlgHMAC))
}

// RSASSA returns the RSASSA signature.
func (u TPMUSignature) RSASSA() (*TPMSSignatureRSA, error) {
	return contentsOf[TPMSSignatureRSA](u.union, signatureUnion, uint64(TPMAlgRSASSA))
}

// RSAPSS returns the RSAPSS signature.
func (u TPMUSignature) RSAPSS() (*TPMSSignatureRSA, error) {
	return contentsOf[TPMSSignatureRSA](u.union, signatureUnion, uint64(TPMAlgRSAPSS))
}

// ECDSA returns the ECDSA signature.
func (u TPMUSignature) ECDSA() (*TPMSSignatureECC, error) {
	return contentsOf[TPMSSignatureECC](u.union, signatureUnion, uint64(TPMAlgECDSA))
}

// ECDAA returns the ECDAA signature.
func (u TPMUSignature) ECDAA() (*TPMSSignatureECC, error) {
	return contentsOf[TPMSSignatureECC](u.union, signatureUnion, uint64(TPMAlgECDAA))
}

// SM2 returns the SM2 signature.
func (u TPMUSignature) SM2() (*TPMSSignatureECC, error) {
	return contentsOf[TPMSSignatureECC](u.union, signatureUnion, uint64(TPMAlgSM2))
}

// ECSchnorr returns the EC Schnorr signature.
func (u TPMUSignature) ECSchnorr() (*TPMSSignatureECC, error) {
	return contentsOf[TPMSSignatureECC](u.union, signatureUnion, uint64(TPMAlgECSchnorr))
}

var schemeKeyedHashUnion = newUnionFamily("TPMU_SCHEME_KEYEDHASH", algIDs,
	member[TPMSSchemeHMAC](TPMAlgHMAC),
	member[TPMSSchemeXOR](TPMAlgXOR),
	empty(TPMAlgNull),
)

// TPMUSchemeKeyedHash represents a TPMU_SCHEME_KEYEDHASH.
// See definition in Part 2: Structures, section 11.1.22.
type TPMUSchemeKeyedHash struct{ union }

// Family implements Union.
func (TPMUSchemeKeyedHash) Family() *UnionFamily { return schemeKeyedHashUnion }

// SchemeKeyedHashContents is a type constraint representing the possible
// contents of TPMUSchemeKeyedHash.
type SchemeKeyedHashContents interface {
	*TPMSSchemeHMAC | *TPMSSchemeXOR
}

// NewTPMUSchemeKeyedHash instantiates a TPMUSchemeKeyedHash with the given
// contents.
func NewTPMUSchemeKeyedHash[C SchemeKeyedHashContents](selector TPMIAlgKeyedHashScheme, contents C) TPMUSchemeKeyedHash {
	return TPMUSchemeKeyedHash{newUnion(uint64(selector), contents)}
}

// HMAC returns the HMAC scheme.
func (u TPMUSchemeKeyedHash) HMAC() (*TPMSSchemeHMAC, error) {
	return contentsOf[TPMSSchemeHMAC](u.union, schemeKeyedHashUnion, uint64(TPMAlgHMAC))
}

// XOR returns the XOR scheme.
func (u TPMUSchemeKeyedHash) XOR() (*TPMSSchemeXOR, error) {
	return contentsOf[TPMSSchemeXOR](u.union, schemeKeyedHashUnion, uint64(TPMAlgXOR))
}

var sigSchemeUnion = newUnionFamily("TPMU_SIG_SCHEME", algIDs,
	member[TPMSSchemeHMAC](TPMAlgHMAC),
	member[TPMSSigSchemeRSASSA](TPMAlgRSASSA),
	member[TPMSSigSchemeRSAPSS](TPMAlgRSAPSS),
	member[TPMSSigSchemeECDSA](TPMAlgECDSA),
	member[TPMSSigSchemeECDAA](TPMAlgECDAA),
	member[TPMSSigSchemeSM2](TPMAlgSM2),
	member[TPMSSigSchemeECSchnorr](TPMAlgECSchnorr),
	empty(TPMAlgNull),
)

// TPMUSigScheme represents a TPMU_SIG_SCHEME.
// See definition in Part 2: Structures, section 11.2.1.4.
type TPMUSigScheme struct{ union }

// Family implements Union.
func (TPMUSigScheme) Family() *UnionFamily { return sigSchemeUnion }

// SigSchemeContents is a type constraint representing the possible contents
// of TPMUSigScheme.
type SigSchemeContents interface {
	*TPMSSchemeHMAC | *TPMSSigSchemeRSASSA | *TPMSSigSchemeRSAPSS |
		*TPMSSigSchemeECDSA | *TPMSSigSchemeECDAA | *TPMSSigSchemeSM2 |
		*TPMSSigSchemeECSchnorr
}

// NewTPMUSigScheme instantiates a TPMUSigScheme with the given contents.
func NewTPMUSigScheme[C SigSchemeContents](selector TPMIAlgSigScheme, contents C) TPMUSigScheme {
	return TPMUSigScheme{newUnion(uint64(selector), contents)}
}

// HMAC returns the HMAC scheme.
func (u TPMUSigScheme) HMAC() (*TPMSSchemeHMAC, error) {
	return contentsOf[TPMSSchemeHMAC](u.union, sigSchemeUnion, uint64(TPMAlgHMAC))
}

// RSASSA returns the RSASSA scheme.
func (u TPMUSigScheme) RSASSA() (*TPMSSigSchemeRSASSA, error) {
	return contentsOf[TPMSSigSchemeRSASSA](u.union, sigSchemeUnion, uint64(TPMAlgRSASSA))
}

// RSAPSS returns the RSAPSS scheme.
func (u TPMUSigScheme) RSAPSS() (*TPMSSigSchemeRSAPSS, error) {
	return contentsOf[TPMSSigSchemeRSAPSS](u.union, sigSchemeUnion, uint64(TPMAlgRSAPSS))
}

// ECDSA returns the ECDSA scheme.
func (u TPMUSigScheme) ECDSA() (*TPMSSigSchemeECDSA, error) {
	return contentsOf[TPMSSigSchemeECDSA](u.union, sigSchemeUnion, uint64(TPMAlgECDSA))
}

// ECDAA returns the ECDAA scheme.
func (u TPMUSigScheme) ECDAA() (*TPMSSigSchemeECDAA, error) {
	return contentsOf[TPMSSigSchemeECDAA](u.union, sigSchemeUnion, uint64(TPMAlgECDAA))
}

var asymSchemeUnion = newUnionFamily("TPMU_ASYM_SCHEME", algIDs,
	member[TPMSSigSchemeRSASSA](TPMAlgRSASSA),
	empty(TPMAlgRSAES),
	member[TPMSSigSchemeRSAPSS](TPMAlgRSAPSS),
	member[TPMSEncSchemeOAEP](TPMAlgOAEP),
	member[TPMSSigSchemeECDSA](TPMAlgECDSA),
	member[TPMSKeySchemeECDH](TPMAlgECDH),
	member[TPMSSigSchemeECDAA](TPMAlgECDAA),
	member[TPMSSigSchemeSM2](TPMAlgSM2),
	member[TPMSSigSchemeECSchnorr](TPMAlgECSchnorr),
	member[TPMSKeySchemeECMQV](TPMAlgECMQV),
	empty(TPMAlgNull),
)

// TPMUAsymScheme represents a TPMU_ASYM_SCHEME.
// See definition in Part 2: Structures, section 11.2.3.5.
type TPMUAsymScheme struct{ union }

// Family implements Union.
func (TPMUAsymScheme) Family() *UnionFamily { return asymSchemeUnion }

// AsymSchemeContents is a type constraint representing the possible contents
// of TPMUAsymScheme.
type AsymSchemeContents interface {
	*TPMSSigSchemeRSASSA | *TPMSSigSchemeRSAPSS | *TPMSEncSchemeOAEP |
		*TPMSSigSchemeECDSA | *TPMSKeySchemeECDH | *TPMSSigSchemeECDAA |
		*TPMSSigSchemeSM2 | *TPMSSigSchemeECSchnorr | *TPMSKeySchemeECMQV
}

// NewTPMUAsymScheme instantiates a TPMUAsymScheme with the given contents.
func NewTPMUAsymScheme[C AsymSchemeContents](selector TPMAlgID, contents C) TPMUAsymScheme {
	return TPMUAsymScheme{newUnion(uint64(selector), contents)}
}

// RSASSA returns the RSASSA scheme.
func (u TPMUAsymScheme) RSASSA() (*TPMSSigSchemeRSASSA, error) {
	return contentsOf[TPMSSigSchemeRSASSA](u.union, asymSchemeUnion, uint64(TPMAlgRSASSA))
}

// RSAPSS returns the RSAPSS scheme.
func (u TPMUAsymScheme) RSAPSS() (*TPMSSigSchemeRSAPSS, error) {
	return contentsOf[TPMSSigSchemeRSAPSS](u.union, asymSchemeUnion, uint64(TPMAlgRSAPSS))
}

// OAEP returns the OAEP scheme.
func (u TPMUAsymScheme) OAEP() (*TPMSEncSchemeOAEP, error) {
	return contentsOf[TPMSEncSchemeOAEP](u.union, asymSchemeUnion, uint64(TPMAlgOAEP))
}

// ECDSA returns the ECDSA scheme.
func (u TPMUAsymScheme) ECDSA() (*TPMSSigSchemeECDSA, error) {
	return contentsOf[TPMSSigSchemeECDSA](u.union, asymSchemeUnion, uint64(TPMAlgECDSA))
}

// ECDH returns the ECDH scheme.
func (u TPMUAsymScheme) ECDH() (*TPMSKeySchemeECDH, error) {
	return contentsOf[TPMSKeySchemeECDH](u.union, asymSchemeUnion, uint64(TPMAlgECDH))
}

var kdfSchemeUnion = newUnionFamily("TPMU_KDF_SCHEME", algIDs,
	member[TPMSKDFSchemeMGF1](TPMAlgMGF1),
	member[TPMSKDFSchemeKDF1SP80056A](TPMAlgKDF1SP80056A),
	member[TPMSKDFSchemeKDF2](TPMAlgKDF2),
	member[TPMSKDFSchemeKDF1SP800108](TPMAlgKDF1SP800108),
	empty(TPMAlgNull),
)

// TPMUKDFScheme represents a TPMU_KDF_SCHEME.
// See definition in Part 2: Structures, section 11.2.3.2.
type TPMUKDFScheme struct{ union }

// Family implements Union.
func (TPMUKDFScheme) Family() *UnionFamily { return kdfSchemeUnion }

// KDFSchemeContents is a type constraint representing the possible contents
// of TPMUKDFScheme.
type KDFSchemeContents interface {
	*TPMSKDFSchemeMGF1 | *TPMSKDFSchemeKDF1SP80056A | *TPMSKDFSchemeKDF2 |
		*TPMSKDFSchemeKDF1SP800108
}

// NewTPMUKDFScheme instantiates a TPMUKDFScheme with the given contents.
func NewTPMUKDFScheme[C KDFSchemeContents](selector TPMIAlgKDF, contents C) TPMUKDFScheme {
	return TPMUKDFScheme{newUnion(uint64(selector), contents)}
}

// MGF1 returns the MGF1 scheme.
func (u TPMUKDFScheme) MGF1() (*TPMSKDFSchemeMGF1, error) {
	return contentsOf[TPMSKDFSchemeMGF1](u.union, kdfSchemeUnion, uint64(TPMAlgMGF1))
}

// KDF2 returns the KDF2 scheme.
func (u TPMUKDFScheme) KDF2() (*TPMSKDFSchemeKDF2, error) {
	return contentsOf[TPMSKDFSchemeKDF2](u.union, kdfSchemeUnion, uint64(TPMAlgKDF2))
}

var symKeyBitsUnion = newUnionFamily("TPMU_SYM_KEY_BITS", algIDs,
	member[TPMKeyBits](TPMAlgAES),
	member[TPMKeyBits](TPMAlgSM4),
	member[TPMKeyBits](TPMAlgCamellia),
	member[TPMIAlgHash](TPMAlgXOR),
	empty(TPMAlgNull),
)

// TPMUSymKeyBits represents a TPMU_SYM_KEY_BITS.
// See definition in Part 2: Structures, section 11.1.3.
type TPMUSymKeyBits struct{ union }

// Family implements Union.
func (TPMUSymKeyBits) Family() *UnionFamily { return symKeyBitsUnion }

// SymKeyBitsContents is a type constraint representing the possible contents
// of TPMUSymKeyBits.
type SymKeyBitsContents interface {
	*TPMKeyBits | *TPMIAlgHash
}

// NewTPMUSymKeyBits instantiates a TPMUSymKeyBits with the given contents.
func NewTPMUSymKeyBits[C SymKeyBitsContents](selector TPMIAlgSym, contents C) TPMUSymKeyBits {
	return TPMUSymKeyBits{newUnion(uint64(selector), contents)}
}

// AES returns the AES key size.
func (u TPMUSymKeyBits) AES() (*TPMKeyBits, error) {
	return contentsOf[TPMKeyBits](u.union, symKeyBitsUnion, uint64(TPMAlgAES))
}

// SM4 returns the SM4 key size.
func (u TPMUSymKeyBits) SM4() (*TPMKeyBits, error) {
	return contentsOf[TPMKeyBits](u.union, symKeyBitsUnion, uint64(TPMAlgSM4))
}

// Camellia returns the Camellia key size.
func (u TPMUSymKeyBits) Camellia() (*TPMKeyBits, error) {
	return contentsOf[TPMKeyBits](u.union, symKeyBitsUnion, uint64(TPMAlgCamellia))
}

// XOR returns the hash used by XOR obfuscation.
func (u TPMUSymKeyBits) XOR() (*TPMIAlgHash, error) {
	return contentsOf[TPMIAlgHash](u.union, symKeyBitsUnion, uint64(TPMAlgXOR))
}

var symModeUnion = newUnionFamily("TPMU_SYM_MODE", algIDs,
	member[TPMIAlgSymMode](TPMAlgAES),
	member[TPMIAlgSymMode](TPMAlgSM4),
	member[TPMIAlgSymMode](TPMAlgCamellia),
	empty(TPMAlgXOR),
	empty(TPMAlgNull),
)

// TPMUSymMode represents a TPMU_SYM_MODE.
// See definition in Part 2: Structures, section 11.1.4.
type TPMUSymMode struct{ union }

// Family implements Union.
func (TPMUSymMode) Family() *UnionFamily { return symModeUnion }

// NewTPMUSymMode instantiates a TPMUSymMode with the given mode. For XOR and
// NULL, which carry no mode, mode is ignored.
func NewTPMUSymMode(selector TPMIAlgSym, mode TPMIAlgSymMode) TPMUSymMode {
	if symModeUnion.isEmpty(uint64(selector)) {
		return TPMUSymMode{newUnion(uint64(selector), nil)}
	}
	return TPMUSymMode{newUnion(uint64(selector), &mode)}
}

// AES returns the AES block cipher mode.
func (u TPMUSymMode) AES() (*TPMIAlgSymMode, error) {
	return contentsOf[TPMIAlgSymMode](u.union, symModeUnion, uint64(TPMAlgAES))
}

// SM4 returns the SM4 block cipher mode.
func (u TPMUSymMode) SM4() (*TPMIAlgSymMode, error) {
	return contentsOf[TPMIAlgSymMode](u.union, symModeUnion, uint64(TPMAlgSM4))
}

// Camellia returns the Camellia block cipher mode.
func (u TPMUSymMode) Camellia() (*TPMIAlgSymMode, error) {
	return contentsOf[TPMIAlgSymMode](u.union, symModeUnion, uint64(TPMAlgCamellia))
}

// Every TPMU_SYM_DETAILS member is empty.
var symDetailsUnion = newUnionFamily("TPMU_SYM_DETAILS", algIDs,
	empty(TPMAlgAES),
	empty(TPMAlgSM4),
	empty(TPMAlgCamellia),
	empty(TPMAlgXOR),
	empty(TPMAlgNull),
)

// TPMUSymDetails represents a TPMU_SYM_DETAILS.
// See definition in Part 2: Structures, section 11.1.5.
type TPMUSymDetails struct{ union }

// Family implements Union.
func (TPMUSymDetails) Family() *UnionFamily { return symDetailsUnion }

// NewTPMUSymDetails instantiates a TPMUSymDetails. It has no contents.
func NewTPMUSymDetails(selector TPMIAlgSym) TPMUSymDetails {
	return TPMUSymDetails{newUnion(uint64(selector), nil)}
}

var publicParmsUnion = newUnionFamily("TPMU_PUBLIC_PARMS", algIDs,
	member[TPMSKeyedHashParms](TPMAlgKeyedHash),
	member[TPMSSymCipherParms](TPMAlgSymCipher),
	member[TPMSRSAParms](TPMAlgRSA),
	member[TPMSECCParms](TPMAlgECC),
)

// TPMUPublicParms represents a TPMU_PUBLIC_PARMS.
// See definition in Part 2: Structures, section 12.2.3.7.
type TPMUPublicParms struct{ union }

// Family implements Union.
func (TPMUPublicParms) Family() *UnionFamily { return publicParmsUnion }

// PublicParmsContents is a type constraint representing the possible
// contents of TPMUPublicParms.
type PublicParmsContents interface {
	*TPMSKeyedHashParms | *TPMSSymCipherParms | *TPMSRSAParms | *TPMSECCParms
}

// NewTPMUPublicParms instantiates a TPMUPublicParms with the given contents.
func NewTPMUPublicParms[C PublicParmsContents](selector TPMIAlgPublic, contents C) TPMUPublicParms {
	return TPMUPublicParms{newUnion(uint64(selector), contents)}
}

// KeyedHashDetail returns the keyed hash parameters.
func (u TPMUPublicParms) KeyedHashDetail() (*TPMSKeyedHashParms, error) {
	return contentsOf[TPMSKeyedHashParms](u.union, publicParmsUnion, uint64(TPMAlgKeyedHash))
}

// SymCipherDetail returns the symmetric cipher parameters.
func (u TPMUPublicParms) SymCipherDetail() (*TPMSSymCipherParms, error) {
	return contentsOf[TPMSSymCipherParms](u.union, publicParmsUnion, uint64(TPMAlgSymCipher))
}

// RSADetail returns the RSA parameters.
func (u TPMUPublicParms) RSADetail() (*TPMSRSAParms, error) {
	return contentsOf[TPMSRSAParms](u.union, publicParmsUnion, uint64(TPMAlgRSA))
}

// ECCDetail returns the ECC parameters.
func (u TPMUPublicParms) ECCDetail() (*TPMSECCParms, error) {
	return contentsOf[TPMSECCParms](u.union, publicParmsUnion, uint64(TPMAlgECC))
}

var publicIDUnion = newUnionFamily("TPMU_PUBLIC_ID", algIDs,
	member[TPM2BDigest](TPMAlgKeyedHash),
	member[TPM2BDigest](TPMAlgSymCipher),
	member[TPM2BPublicKeyRSA](TPMAlgRSA),
	member[TPMSECCPoint](TPMAlgECC),
)

// TPMUPublicID represents a TPMU_PUBLIC_ID.
// See definition in Part 2: Structures, section 12.2.3.2.
type TPMUPublicID struct{ union }

// Family implements Union.
func (TPMUPublicID) Family() *UnionFamily { return publicIDUnion }

// PublicIDContents is a type constraint representing the possible contents
// of TPMUPublicID.
type PublicIDContents interface {
	*TPM2BDigest | *TPM2BPublicKeyRSA | *TPMSECCPoint
}

// NewTPMUPublicID instantiates a TPMUPublicID with the given contents.
func NewTPMUPublicID[C PublicIDContents](selector TPMIAlgPublic, contents C) TPMUPublicID {
	return TPMUPublicID{newUnion(uint64(selector), contents)}
}

// KeyedHash returns the keyed hash unique identifier.
func (u TPMUPublicID) KeyedHash() (*TPM2BDigest, error) {
	return contentsOf[TPM2BDigest](u.union, publicIDUnion, uint64(TPMAlgKeyedHash))
}

// SymCipher returns the symmetric cipher unique identifier.
func (u TPMUPublicID) SymCipher() (*TPM2BDigest, error) {
	return contentsOf[TPM2BDigest](u.union, publicIDUnion, uint64(TPMAlgSymCipher))
}

// RSA returns the RSA public modulus.
func (u TPMUPublicID) RSA() (*TPM2BPublicKeyRSA, error) {
	return contentsOf[TPM2BPublicKeyRSA](u.union, publicIDUnion, uint64(TPMAlgRSA))
}

// ECC returns the ECC public point.
func (u TPMUPublicID) ECC() (*TPMSECCPoint, error) {
	return contentsOf[TPMSECCPoint](u.union, publicIDUnion, uint64(TPMAlgECC))
}
