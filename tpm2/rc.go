package tpm2

import (
	"fmt"
)

// TPMRC represents a TPM_RC.
// See definition in Part 2: Structures, section 6.6.
// Format-1 codes carry the number of the handle, parameter or session in
// error, so TPMRC is not validated against a table when decoded.
type TPMRC uint32

// TPMRC values come from Part 2: Structures, section 6.6.3.
const (
	TPMRCSuccess TPMRC = 0x00000000
	rcVer1       TPMRC = 0x00000100
	// FMT0 error codes
	TPMRCInitialize      TPMRC = rcVer1 + 0x000
	TPMRCFailure         TPMRC = rcVer1 + 0x001
	TPMRCSequence        TPMRC = rcVer1 + 0x003
	TPMRCDisabled        TPMRC = rcVer1 + 0x020
	TPMRCExclusive       TPMRC = rcVer1 + 0x021
	TPMRCAuthType        TPMRC = rcVer1 + 0x024
	TPMRCAuthMissing     TPMRC = rcVer1 + 0x025
	TPMRCPolicy          TPMRC = rcVer1 + 0x026
	TPMRCPCR             TPMRC = rcVer1 + 0x027
	TPMRCPCRChanged      TPMRC = rcVer1 + 0x028
	TPMRCUpgrade         TPMRC = rcVer1 + 0x02D
	TPMRCTooManyContexts TPMRC = rcVer1 + 0x02E
	TPMRCAuthUnavailable TPMRC = rcVer1 + 0x02F
	TPMRCReboot          TPMRC = rcVer1 + 0x030
	TPMRCUnbalanced      TPMRC = rcVer1 + 0x031
	TPMRCCommandSize     TPMRC = rcVer1 + 0x042
	TPMRCCommandCode     TPMRC = rcVer1 + 0x043
	TPMRCAuthSize        TPMRC = rcVer1 + 0x044
	TPMRCAuthContext     TPMRC = rcVer1 + 0x045
	TPMRCNVRange         TPMRC = rcVer1 + 0x046
	TPMRCNVSize          TPMRC = rcVer1 + 0x047
	TPMRCNVLocked        TPMRC = rcVer1 + 0x048
	TPMRCNVAuthorization TPMRC = rcVer1 + 0x049
	TPMRCNVUninitialized TPMRC = rcVer1 + 0x04A
	TPMRCNVSpace         TPMRC = rcVer1 + 0x04B
	TPMRCNVDefined       TPMRC = rcVer1 + 0x04C
	TPMRCBadContext      TPMRC = rcVer1 + 0x050
	TPMRCCPHash          TPMRC = rcVer1 + 0x051
	TPMRCParent          TPMRC = rcVer1 + 0x052
	TPMRCNeedsTest       TPMRC = rcVer1 + 0x053
	TPMRCNoResult        TPMRC = rcVer1 + 0x054
	TPMRCSensitive       TPMRC = rcVer1 + 0x055
	rcFmt1               TPMRC = 0x00000080
	// FMT1 error codes
	TPMRCAsymmetric   TPMRC = rcFmt1 + 0x001
	TPMRCAttributes   TPMRC = rcFmt1 + 0x002
	TPMRCHash         TPMRC = rcFmt1 + 0x003
	TPMRCValue        TPMRC = rcFmt1 + 0x004
	TPMRCHierarchy    TPMRC = rcFmt1 + 0x005
	TPMRCKeySize      TPMRC = rcFmt1 + 0x007
	TPMRCMGF          TPMRC = rcFmt1 + 0x008
	TPMRCMode         TPMRC = rcFmt1 + 0x009
	TPMRCType         TPMRC = rcFmt1 + 0x00A
	TPMRCHandle       TPMRC = rcFmt1 + 0x00B
	TPMRCKDF          TPMRC = rcFmt1 + 0x00C
	TPMRCRange        TPMRC = rcFmt1 + 0x00D
	TPMRCAuthFail     TPMRC = rcFmt1 + 0x00E
	TPMRCNonce        TPMRC = rcFmt1 + 0x00F
	TPMRCPP           TPMRC = rcFmt1 + 0x010
	TPMRCScheme       TPMRC = rcFmt1 + 0x012
	TPMRCSize         TPMRC = rcFmt1 + 0x015
	TPMRCSymmetric    TPMRC = rcFmt1 + 0x016
	TPMRCTag          TPMRC = rcFmt1 + 0x017
	TPMRCSelector     TPMRC = rcFmt1 + 0x018
	TPMRCInsufficient TPMRC = rcFmt1 + 0x01A
	TPMRCSignature    TPMRC = rcFmt1 + 0x01B
	TPMRCKey          TPMRC = rcFmt1 + 0x01C
	TPMRCPolicyFail   TPMRC = rcFmt1 + 0x01D
	TPMRCIntegrity    TPMRC = rcFmt1 + 0x01F
	TPMRCTicket       TPMRC = rcFmt1 + 0x020
	TPMRCReservedBits TPMRC = rcFmt1 + 0x021
	TPMRCBadAuth      TPMRC = rcFmt1 + 0x022
	TPMRCExpired      TPMRC = rcFmt1 + 0x023
	TPMRCPolicyCC     TPMRC = rcFmt1 + 0x024
	TPMRCBinding      TPMRC = rcFmt1 + 0x025
	TPMRCCurve        TPMRC = rcFmt1 + 0x026
	TPMRCECCPoint     TPMRC = rcFmt1 + 0x027
	// Warnings
	rcWarn              TPMRC = 0x00000900
	TPMRCContextGap     TPMRC = rcWarn + 0x001
	TPMRCObjectMemory   TPMRC = rcWarn + 0x002
	TPMRCSessionMemory  TPMRC = rcWarn + 0x003
	TPMRCMemory         TPMRC = rcWarn + 0x004
	TPMRCSessionHandles TPMRC = rcWarn + 0x005
	TPMRCObjectHandles  TPMRC = rcWarn + 0x006
	TPMRCLocality       TPMRC = rcWarn + 0x007
	TPMRCYielded        TPMRC = rcWarn + 0x008
	TPMRCCanceled       TPMRC = rcWarn + 0x009
	TPMRCTesting        TPMRC = rcWarn + 0x00A
	TPMRCNVRate         TPMRC = rcWarn + 0x020
	TPMRCLockout        TPMRC = rcWarn + 0x021
	TPMRCRetry          TPMRC = rcWarn + 0x022
	TPMRCNVUnavailable  TPMRC = rcWarn + 0x023
	rcP                 TPMRC = 0x00000040
	rcS                 TPMRC = 0x00000800
)

type rcDesc struct {
	name        string
	description string
}

var fmt0Descs = map[TPMRC]rcDesc{
	TPMRCInitialize:      {"TPM_RC_INITIALIZE", "TPM not initialized by TPM2_Startup or already initialized"},
	TPMRCFailure:         {"TPM_RC_FAILURE", "commands not being accepted because of a TPM failure"},
	TPMRCSequence:        {"TPM_RC_SEQUENCE", "improper use of a sequence handle"},
	TPMRCDisabled:        {"TPM_RC_DISABLED", "the command is disabled"},
	TPMRCExclusive:       {"TPM_RC_EXCLUSIVE", "command failed because audit sequence required exclusivity"},
	TPMRCAuthType:        {"TPM_RC_AUTH_TYPE", "authorization handle is not correct for command"},
	TPMRCAuthMissing:     {"TPM_RC_AUTH_MISSING", "command requires an authorization session for handle and it is not present"},
	TPMRCPolicy:          {"TPM_RC_POLICY", "policy failure in math operation or an invalid authPolicy value"},
	TPMRCPCR:             {"TPM_RC_PCR", "PCR check fail"},
	TPMRCPCRChanged:      {"TPM_RC_PCR_CHANGED", "PCR have changed since checked"},
	TPMRCUpgrade:         {"TPM_RC_UPGRADE", "the TPM is in field upgrade mode, or not in it for TPM2_FieldUpgradeData()"},
	TPMRCTooManyContexts: {"TPM_RC_TOO_MANY_CONTEXTS", "context ID counter is at maximum"},
	TPMRCAuthUnavailable: {"TPM_RC_AUTH_UNAVAILABLE", "authValue or authPolicy is not available for selected entity"},
	TPMRCReboot:          {"TPM_RC_REBOOT", "a _TPM_Init and Startup(CLEAR) is required before the TPM can resume operation"},
	TPMRCUnbalanced:      {"TPM_RC_UNBALANCED", "the protection algorithms (hash and symmetric) are not reasonably balanced"},
	TPMRCCommandSize:     {"TPM_RC_COMMAND_SIZE", "command commandSize value is inconsistent with contents of the command buffer"},
	TPMRCCommandCode:     {"TPM_RC_COMMAND_CODE", "command code not supported"},
	TPMRCAuthSize:        {"TPM_RC_AUTHSIZE", "the value of authorizationSize is out of range"},
	TPMRCAuthContext:     {"TPM_RC_AUTH_CONTEXT", "use of an authorization session with a command that cannot have one"},
	TPMRCNVRange:         {"TPM_RC_NV_RANGE", "NV offset+size is out of range"},
	TPMRCNVSize:          {"TPM_RC_NV_SIZE", "requested allocation size is larger than allowed"},
	TPMRCNVLocked:        {"TPM_RC_NV_LOCKED", "NV access locked"},
	TPMRCNVAuthorization: {"TPM_RC_NV_AUTHORIZATION", "NV access authorization fails in command actions"},
	TPMRCNVUninitialized: {"TPM_RC_NV_UNINITIALIZED", "an NV Index is used before being initialized"},
	TPMRCNVSpace:         {"TPM_RC_NV_SPACE", "insufficient space for NV allocation"},
	TPMRCNVDefined:       {"TPM_RC_NV_DEFINED", "NV Index or persistent object already defined"},
	TPMRCBadContext:      {"TPM_RC_BAD_CONTEXT", "context in TPM2_ContextLoad() is not valid"},
	TPMRCCPHash:          {"TPM_RC_CPHASH", "cpHash value already set or not correct for use"},
	TPMRCParent:          {"TPM_RC_PARENT", "handle for parent is not a valid parent"},
	TPMRCNeedsTest:       {"TPM_RC_NEEDS_TEST", "some function needs testing"},
	TPMRCNoResult:        {"TPM_RC_NO_RESULT", "an internal function cannot process a request due to an unspecified problem"},
	TPMRCSensitive:       {"TPM_RC_SENSITIVE", "the sensitive area did not unmarshal correctly after decryption"},
}

var fmt1Descs = map[TPMRC]rcDesc{
	TPMRCAsymmetric:   {"TPM_RC_ASYMMETRIC", "asymmetric algorithm not supported or not correct"},
	TPMRCAttributes:   {"TPM_RC_ATTRIBUTES", "inconsistent attributes"},
	TPMRCHash:         {"TPM_RC_HASH", "hash algorithm not supported or not appropriate"},
	TPMRCValue:        {"TPM_RC_VALUE", "value is out of range or is not correct for the context"},
	TPMRCHierarchy:    {"TPM_RC_HIERARCHY", "hierarchy is not enabled or is not correct for the use"},
	TPMRCKeySize:      {"TPM_RC_KEY_SIZE", "key size is not supported"},
	TPMRCMGF:          {"TPM_RC_MGF", "mask generation function not supported"},
	TPMRCMode:         {"TPM_RC_MODE", "mode of operation not supported"},
	TPMRCType:         {"TPM_RC_TYPE", "the type of the value is not appropriate for the use"},
	TPMRCHandle:       {"TPM_RC_HANDLE", "the handle is not correct for the use"},
	TPMRCKDF:          {"TPM_RC_KDF", "unsupported key derivation function or function not appropriate for use"},
	TPMRCRange:        {"TPM_RC_RANGE", "value was out of allowed range"},
	TPMRCAuthFail:     {"TPM_RC_AUTH_FAIL", "the authorization HMAC check failed and DA counter incremented"},
	TPMRCNonce:        {"TPM_RC_NONCE", "invalid nonce size or nonce value mismatch"},
	TPMRCPP:           {"TPM_RC_PP", "authorization requires assertion of PP"},
	TPMRCScheme:       {"TPM_RC_SCHEME", "unsupported or incompatible scheme"},
	TPMRCSize:         {"TPM_RC_SIZE", "structure is the wrong size"},
	TPMRCSymmetric:    {"TPM_RC_SYMMETRIC", "unsupported symmetric algorithm or key size, or not appropriate for instance"},
	TPMRCTag:          {"TPM_RC_TAG", "incorrect structure tag"},
	TPMRCSelector:     {"TPM_RC_SELECTOR", "union selector is incorrect"},
	TPMRCInsufficient: {"TPM_RC_INSUFFICIENT", "the TPM was unable to unmarshal a value because there were not enough octets in the input buffer"},
	TPMRCSignature:    {"TPM_RC_SIGNATURE", "the signature is not valid"},
	TPMRCKey:          {"TPM_RC_KEY", "key fields are not compatible with the selected use"},
	TPMRCPolicyFail:   {"TPM_RC_POLICY_FAIL", "a policy check failed"},
	TPMRCIntegrity:    {"TPM_RC_INTEGRITY", "integrity check failed"},
	TPMRCTicket:       {"TPM_RC_TICKET", "invalid ticket"},
	TPMRCReservedBits: {"TPM_RC_RESERVED_BITS", "reserved bits not set to zero as required"},
	TPMRCBadAuth:      {"TPM_RC_BAD_AUTH", "authorization failure without DA implications"},
	TPMRCExpired:      {"TPM_RC_EXPIRED", "the policy has expired"},
	TPMRCPolicyCC:     {"TPM_RC_POLICY_CC", "the commandCode in the policy is not the commandCode of the command"},
	TPMRCBinding:      {"TPM_RC_BINDING", "public and sensitive portions of an object are not cryptographically bound"},
	TPMRCCurve:        {"TPM_RC_CURVE", "curve not supported"},
	TPMRCECCPoint:     {"TPM_RC_ECC_POINT", "point is not on the required curve"},
}

var warnDescs = map[TPMRC]rcDesc{
	TPMRCContextGap:     {"TPM_RC_CONTEXT_GAP", "gap for context ID is too large"},
	TPMRCObjectMemory:   {"TPM_RC_OBJECT_MEMORY", "out of memory for object contexts"},
	TPMRCSessionMemory:  {"TPM_RC_SESSION_MEMORY", "out of memory for session contexts"},
	TPMRCMemory:         {"TPM_RC_MEMORY", "out of shared object/session memory or need space for internal operations"},
	TPMRCSessionHandles: {"TPM_RC_SESSION_HANDLES", "out of session handles"},
	TPMRCObjectHandles:  {"TPM_RC_OBJECT_HANDLES", "out of object handles"},
	TPMRCLocality:       {"TPM_RC_LOCALITY", "bad locality"},
	TPMRCYielded:        {"TPM_RC_YIELDED", "the TPM has suspended operation on the command"},
	TPMRCCanceled:       {"TPM_RC_CANCELED", "the command was canceled"},
	TPMRCTesting:        {"TPM_RC_TESTING", "TPM is performing self-tests"},
	TPMRCNVRate:         {"TPM_RC_NV_RATE", "the TPM is rate-limiting accesses to prevent wearout of NV"},
	TPMRCLockout:        {"TPM_RC_LOCKOUT", "authorizations for objects subject to DA protection are not allowed at this time"},
	TPMRCRetry:          {"TPM_RC_RETRY", "the TPM was not able to start the command"},
	TPMRCNVUnavailable:  {"TPM_RC_NV_UNAVAILABLE", "the command may require writing of NV and NV is not current accessible"},
}

// rcSubject is what a format-1 error code refers to.
type rcSubject int

const (
	rcHandle rcSubject = iota + 1
	rcParameter
	rcSession
)

func (s rcSubject) String() string {
	switch s {
	case rcHandle:
		return "handle"
	case rcParameter:
		return "parameter"
	case rcSession:
		return "session"
	default:
		return "unknown subject"
	}
}

// TPMFmt1Error represents a TPM 2.0 format-1 error, with additional information.
type TPMFmt1Error struct {
	// The canonical TPM error code, with handle/parameter/session info
	// stripped out.
	canonical TPMRC
	subject   rcSubject
	// Which handle, parameter, or session was in error
	index int
}

// Error returns the string representation of the error.
func (e TPMFmt1Error) Error() string {
	desc, ok := fmt1Descs[e.canonical]
	if !ok {
		return fmt.Sprintf("unknown format-1 error: %s %d (%x)", e.subject, e.index, uint32(e.canonical))
	}
	return fmt.Sprintf("%s (%v %d): %s", desc.name, e.subject, e.index, desc.description)
}

// Canonical returns the error code without the subject and index.
func (e TPMFmt1Error) Canonical() TPMRC { return e.canonical }

// Handle returns whether the error is handle-related and if so, which handle is
// in error.
func (e TPMFmt1Error) Handle() (bool, int) {
	return e.subject == rcHandle, e.indexIf(rcHandle)
}

// Parameter returns whether the error is parameter-related and if so, which
// parameter is in error.
func (e TPMFmt1Error) Parameter() (bool, int) {
	return e.subject == rcParameter, e.indexIf(rcParameter)
}

// Session returns whether the error is session-related and if so, which
// session is in error.
func (e TPMFmt1Error) Session() (bool, int) {
	return e.subject == rcSession, e.indexIf(rcSession)
}

func (e TPMFmt1Error) indexIf(s rcSubject) int {
	if e.subject != s {
		return 0
	}
	return e.index
}

func (r TPMRC) isFmt0Error() bool {
	return (r&rcVer1) == rcVer1 && (r&rcWarn) != rcWarn
}

// isFmt1Error returns true and a format-1 error structure if the error is a
// format-1 error.
func (r TPMRC) isFmt1Error() (bool, TPMFmt1Error) {
	if (r & rcFmt1) != rcFmt1 {
		return false, TPMFmt1Error{}
	}
	subj := rcHandle
	if (r & rcP) == rcP {
		subj = rcParameter
		r ^= rcP
	} else if (r & rcS) == rcS {
		subj = rcSession
		r ^= rcS
	}
	idx := int((r & 0xF00) >> 8)
	r &= 0xFFFFF0FF
	return true, TPMFmt1Error{
		canonical: r,
		subject:   subj,
		index:     idx,
	}
}

// IsWarning returns true if the error is a warning code.
// Retrying the command later may succeed.
func (r TPMRC) IsWarning() bool {
	if isFmt1, _ := r.isFmt1Error(); isFmt1 {
		return false
	}
	return (r&rcVer1) == rcVer1 && (r&rcWarn) == rcWarn
}

// Error produces a human-readable representation of the error, parsing
// format-1 errors as needed.
func (r TPMRC) Error() string {
	if r == TPMRCSuccess {
		return "TPM_RC_SUCCESS"
	}
	if isFmt1, fmt1 := r.isFmt1Error(); isFmt1 {
		return fmt1.Error()
	}
	if r.IsWarning() {
		if desc, ok := warnDescs[r]; ok {
			return fmt.Sprintf("%s: %s", desc.name, desc.description)
		}
		return fmt.Sprintf("unknown warning (0x%x)", uint32(r))
	}
	if r.isFmt0Error() {
		if desc, ok := fmt0Descs[r]; ok {
			return fmt.Sprintf("%s: %s", desc.name, desc.description)
		}
		return fmt.Sprintf("unknown format-0 error code (0x%x)", uint32(r))
	}
	return fmt.Sprintf("unrecognized error code (0x%x)", uint32(r))
}

// Is returns whether the TPMRC (which may be a FMT1 error) is equal to the
// given canonical error.
func (r TPMRC) Is(target error) bool {
	targetRC, ok := target.(TPMRC)
	if !ok {
		return false
	}
	if isFmt1, fmt1 := r.isFmt1Error(); isFmt1 {
		return fmt1.canonical == targetRC
	}
	return r == targetRC
}

// As returns whether the error can be assigned to the given interface type.
// If supported, it updates the value pointed at by target.
// Supports the TPMFmt1Error type.
func (r TPMRC) As(target interface{}) bool {
	pFmt1, ok := target.(*TPMFmt1Error)
	if !ok {
		return false
	}
	isFmt1, fmt1 := r.isFmt1Error()
	if !isFmt1 {
		return false
	}
	*pFmt1 = fmt1
	return true
}
