package tpm2

import (
	"crypto"
	"crypto/elliptic"
	"fmt"

	// Register the relevant hash implementations.
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

// TPMAlgID represents a TPM_ALG_ID.
// See definition in Part 2: Structures, section 6.3.
type TPMAlgID uint16

// TPMECCCurve represents a TPM_ECC_CURVE.
// See definition in Part 2: Structures, section 6.4.
type TPMECCCurve uint16

// TPMCC represents a TPM_CC.
// See definition in Part 2: Structures, section 6.5.2.
type TPMCC uint32

// TPMST represents a TPM_ST.
// See definition in Part 2: Structures, section 6.9.
type TPMST uint16

// TPMSU represents a TPM_SU.
// See definition in Part 2: Structures, section 6.10.
type TPMSU uint16

// TPMSE represents a TPM_SE.
// See definition in Part 2: Structures, section 6.11.
type TPMSE uint8

// TPMCap represents a TPM_CAP.
// See definition in Part 2: Structures, section 6.12.
type TPMCap uint32

// TPMPT represents a TPM_PT.
// See definition in Part 2: Structures, section 6.13.
type TPMPT uint32

// TPMPTPCR represents a TPM_PT_PCR.
// See definition in Part 2: Structures, section 6.14.
type TPMPTPCR uint32

// TPMNT represents a TPM_NT.
// See definition in Part 2: Structures, section 13.4.
type TPMNT uint8

// TPMHT represents a TPM_HT.
// See definition in Part 2: Structures, section 7.2.
type TPMHT uint8

// TPMHandle represents a TPM_HANDLE. Handles are not a closed set, so they
// are not validated against a table.
// See definition in Part 2: Structures, section 7.1.
type TPMHandle uint32

// TPMKeyBits represents a TPM_KEY_BITS.
// See definition in Part 2: Structures, section 5.3.
type TPMKeyBits uint16

// TPMGenerated represents a TPM_GENERATED.
// See definition in Part 2: Structures, section 6.2.
type TPMGenerated uint32

// TPMIYesNo represents a TPMI_YES_NO. It is a single byte on the wire that
// must be 0 or 1.
type TPMIYesNo = bool

// Interface types share the wire form of the type they restrict. Restrictions
// beyond family membership are left to the TPM.
type (
	TPMIAlgHash            = TPMAlgID
	TPMIAlgSym             = TPMAlgID
	TPMIAlgSymObject       = TPMAlgID
	TPMIAlgSymMode         = TPMAlgID
	TPMIAlgKDF             = TPMAlgID
	TPMIAlgSigScheme       = TPMAlgID
	TPMIAlgKeyedHashScheme = TPMAlgID
	TPMIAlgRSAScheme       = TPMAlgID
	TPMIAlgECCScheme       = TPMAlgID
	TPMIAlgPublic          = TPMAlgID
	TPMIECCCurve           = TPMECCCurve
	TPMISTAttest           = TPMST
	TPMISTCommandTag       = TPMST
	TPMIRHHierarchy        = TPMHandle
	TPMIRHNVIndex          = TPMHandle
	TPMISHAuthSession      = TPMHandle
	TPMIDHObject           = TPMHandle
)

// TPMGeneratedValue is the TPM_GENERATED_VALUE magic.
const TPMGeneratedValue TPMGenerated = 0xff544347

// Check verifies that a TPMGenerated value is correct, and returns an error
// otherwise.
func (g TPMGenerated) Check() error {
	if g != TPMGeneratedValue {
		return fmt.Errorf("TPM_GENERATED value should be 0x%x, was 0x%x", TPMGeneratedValue, uint32(g))
	}
	return nil
}

// TPMAlgID values come from Part 2: Structures, section 6.3.
const (
	TPMAlgError         TPMAlgID = 0x0000
	TPMAlgRSA           TPMAlgID = 0x0001
	TPMAlgTDES          TPMAlgID = 0x0003
	TPMAlgSHA1          TPMAlgID = 0x0004
	TPMAlgSHA                    = TPMAlgSHA1
	TPMAlgHMAC          TPMAlgID = 0x0005
	TPMAlgAES           TPMAlgID = 0x0006
	TPMAlgMGF1          TPMAlgID = 0x0007
	TPMAlgKeyedHash     TPMAlgID = 0x0008
	TPMAlgXOR           TPMAlgID = 0x000A
	TPMAlgSHA256        TPMAlgID = 0x000B
	TPMAlgSHA384        TPMAlgID = 0x000C
	TPMAlgSHA512        TPMAlgID = 0x000D
	TPMAlgNull          TPMAlgID = 0x0010
	TPMAlgSM3256        TPMAlgID = 0x0012
	TPMAlgSM4           TPMAlgID = 0x0013
	TPMAlgRSASSA        TPMAlgID = 0x0014
	TPMAlgRSAES         TPMAlgID = 0x0015
	TPMAlgRSAPSS        TPMAlgID = 0x0016
	TPMAlgOAEP          TPMAlgID = 0x0017
	TPMAlgECDSA         TPMAlgID = 0x0018
	TPMAlgECDH          TPMAlgID = 0x0019
	TPMAlgECDAA         TPMAlgID = 0x001A
	TPMAlgSM2           TPMAlgID = 0x001B
	TPMAlgECSchnorr     TPMAlgID = 0x001C
	TPMAlgECMQV         TPMAlgID = 0x001D
	TPMAlgKDF1SP80056A  TPMAlgID = 0x0020
	TPMAlgKDF2          TPMAlgID = 0x0021
	TPMAlgKDF1SP800108  TPMAlgID = 0x0022
	TPMAlgECC           TPMAlgID = 0x0023
	TPMAlgSymCipher     TPMAlgID = 0x0025
	TPMAlgCamellia      TPMAlgID = 0x0026
	TPMAlgSHA3256       TPMAlgID = 0x0027
	TPMAlgSHA3384       TPMAlgID = 0x0028
	TPMAlgSHA3512       TPMAlgID = 0x0029
	TPMAlgCMAC          TPMAlgID = 0x003F
	TPMAlgCTR           TPMAlgID = 0x0040
	TPMAlgOFB           TPMAlgID = 0x0041
	TPMAlgCBC           TPMAlgID = 0x0042
	TPMAlgCFB           TPMAlgID = 0x0043
	TPMAlgECB           TPMAlgID = 0x0044
	TPMAlgAny           TPMAlgID = 0x7FFF
	TPMAlgAny2          TPMAlgID = 0x7FFE
)

// TPM_ALG_SHA1 is registered before its alias TPM_ALG_SHA, so it is the name
// reported for 0x0004.
var algIDs = newConstants("TPM_ALG_ID", 2,
	constant{"TPM_ALG_ERROR", uint64(TPMAlgError)},
	constant{"TPM_ALG_RSA", uint64(TPMAlgRSA)},
	constant{"TPM_ALG_TDES", uint64(TPMAlgTDES)},
	constant{"TPM_ALG_SHA1", uint64(TPMAlgSHA1)},
	constant{"TPM_ALG_SHA", uint64(TPMAlgSHA)},
	constant{"TPM_ALG_HMAC", uint64(TPMAlgHMAC)},
	constant{"TPM_ALG_AES", uint64(TPMAlgAES)},
	constant{"TPM_ALG_MGF1", uint64(TPMAlgMGF1)},
	constant{"TPM_ALG_KEYEDHASH", uint64(TPMAlgKeyedHash)},
	constant{"TPM_ALG_XOR", uint64(TPMAlgXOR)},
	constant{"TPM_ALG_SHA256", uint64(TPMAlgSHA256)},
	constant{"TPM_ALG_SHA384", uint64(TPMAlgSHA384)},
	constant{"TPM_ALG_SHA512", uint64(TPMAlgSHA512)},
	constant{"TPM_ALG_NULL", uint64(TPMAlgNull)},
	constant{"TPM_ALG_SM3_256", uint64(TPMAlgSM3256)},
	constant{"TPM_ALG_SM4", uint64(TPMAlgSM4)},
	constant{"TPM_ALG_RSASSA", uint64(TPMAlgRSASSA)},
	constant{"TPM_ALG_RSAES", uint64(TPMAlgRSAES)},
	constant{"TPM_ALG_RSAPSS", uint64(TPMAlgRSAPSS)},
	constant{"TPM_ALG_OAEP", uint64(TPMAlgOAEP)},
	constant{"TPM_ALG_ECDSA", uint64(TPMAlgECDSA)},
	constant{"TPM_ALG_ECDH", uint64(TPMAlgECDH)},
	constant{"TPM_ALG_ECDAA", uint64(TPMAlgECDAA)},
	constant{"TPM_ALG_SM2", uint64(TPMAlgSM2)},
	constant{"TPM_ALG_ECSCHNORR", uint64(TPMAlgECSchnorr)},
	constant{"TPM_ALG_ECMQV", uint64(TPMAlgECMQV)},
	constant{"TPM_ALG_KDF1_SP800_56A", uint64(TPMAlgKDF1SP80056A)},
	constant{"TPM_ALG_KDF2", uint64(TPMAlgKDF2)},
	constant{"TPM_ALG_KDF1_SP800_108", uint64(TPMAlgKDF1SP800108)},
	constant{"TPM_ALG_ECC", uint64(TPMAlgECC)},
	constant{"TPM_ALG_SYMCIPHER", uint64(TPMAlgSymCipher)},
	constant{"TPM_ALG_CAMELLIA", uint64(TPMAlgCamellia)},
	constant{"TPM_ALG_SHA3_256", uint64(TPMAlgSHA3256)},
	constant{"TPM_ALG_SHA3_384", uint64(TPMAlgSHA3384)},
	constant{"TPM_ALG_SHA3_512", uint64(TPMAlgSHA3512)},
	constant{"TPM_ALG_CMAC", uint64(TPMAlgCMAC)},
	constant{"TPM_ALG_CTR", uint64(TPMAlgCTR)},
	constant{"TPM_ALG_OFB", uint64(TPMAlgOFB)},
	constant{"TPM_ALG_CBC", uint64(TPMAlgCBC)},
	constant{"TPM_ALG_CFB", uint64(TPMAlgCFB)},
	constant{"TPM_ALG_ECB", uint64(TPMAlgECB)},
).withReserved(
	constant{"TPM_ALG_ANY", uint64(TPMAlgAny)},
	constant{"TPM_ALG_ANY2", uint64(TPMAlgAny2)},
	constant{"TPM_ALG_FIRST", uint64(TPMAlgRSA)},
	constant{"TPM_ALG_LAST", uint64(TPMAlgECB)},
)

// TPMECCCurve values come from Part 2: Structures, section 6.4.
const (
	TPMECCNone     TPMECCCurve = 0x0000
	TPMECCNistP192 TPMECCCurve = 0x0001
	TPMECCNistP224 TPMECCCurve = 0x0002
	TPMECCNistP256 TPMECCCurve = 0x0003
	TPMECCNistP384 TPMECCCurve = 0x0004
	TPMECCNistP521 TPMECCCurve = 0x0005
	TPMECCBNP256   TPMECCCurve = 0x0010
	TPMECCBNP638   TPMECCCurve = 0x0011
	TPMECCSM2P256  TPMECCCurve = 0x0020
)

var eccCurves = newConstants("TPM_ECC_CURVE", 2,
	constant{"TPM_ECC_NONE", uint64(TPMECCNone)},
	constant{"TPM_ECC_NIST_P192", uint64(TPMECCNistP192)},
	constant{"TPM_ECC_NIST_P224", uint64(TPMECCNistP224)},
	constant{"TPM_ECC_NIST_P256", uint64(TPMECCNistP256)},
	constant{"TPM_ECC_NIST_P384", uint64(TPMECCNistP384)},
	constant{"TPM_ECC_NIST_P521", uint64(TPMECCNistP521)},
	constant{"TPM_ECC_BN_P256", uint64(TPMECCBNP256)},
	constant{"TPM_ECC_BN_P638", uint64(TPMECCBNP638)},
	constant{"TPM_ECC_SM2_P256", uint64(TPMECCSM2P256)},
)

// TPMCC values come from Part 2: Structures, section 6.5.2.
// Command codes with bit 29 set are vendor-specific and are accepted without
// being listed.
const (
	TPMCCNVUndefineSpaceSpecial     TPMCC = 0x0000011F
	TPMCCEvictControl               TPMCC = 0x00000120
	TPMCCHierarchyControl           TPMCC = 0x00000121
	TPMCCNVUndefineSpace            TPMCC = 0x00000122
	TPMCCChangeEPS                  TPMCC = 0x00000124
	TPMCCChangePPS                  TPMCC = 0x00000125
	TPMCCClear                      TPMCC = 0x00000126
	TPMCCClearControl               TPMCC = 0x00000127
	TPMCCClockSet                   TPMCC = 0x00000128
	TPMCCHierarchyChangeAuth        TPMCC = 0x00000129
	TPMCCNVDefineSpace              TPMCC = 0x0000012A
	TPMCCPCRAllocate                TPMCC = 0x0000012B
	TPMCCPCRSetAuthPolicy           TPMCC = 0x0000012C
	TPMCCPPCommands                 TPMCC = 0x0000012D
	TPMCCSetPrimaryPolicy           TPMCC = 0x0000012E
	TPMCCFieldUpgradeStart          TPMCC = 0x0000012F
	TPMCCClockRateAdjust            TPMCC = 0x00000130
	TPMCCCreatePrimary              TPMCC = 0x00000131
	TPMCCNVGlobalWriteLock          TPMCC = 0x00000132
	TPMCCGetCommandAuditDigest      TPMCC = 0x00000133
	TPMCCNVIncrement                TPMCC = 0x00000134
	TPMCCNVSetBits                  TPMCC = 0x00000135
	TPMCCNVExtend                   TPMCC = 0x00000136
	TPMCCNVWrite                    TPMCC = 0x00000137
	TPMCCNVWriteLock                TPMCC = 0x00000138
	TPMCCDictionaryAttackLockReset  TPMCC = 0x00000139
	TPMCCDictionaryAttackParameters TPMCC = 0x0000013A
	TPMCCNVChangeAuth               TPMCC = 0x0000013B
	TPMCCPCREvent                   TPMCC = 0x0000013C
	TPMCCPCRReset                   TPMCC = 0x0000013D
	TPMCCSequenceComplete           TPMCC = 0x0000013E
	TPMCCSetAlgorithmSet            TPMCC = 0x0000013F
	TPMCCSetCommandCodeAuditStatus  TPMCC = 0x00000140
	TPMCCFieldUpgradeData           TPMCC = 0x00000141
	TPMCCIncrementalSelfTest        TPMCC = 0x00000142
	TPMCCSelfTest                   TPMCC = 0x00000143
	TPMCCStartup                    TPMCC = 0x00000144
	TPMCCShutdown                   TPMCC = 0x00000145
	TPMCCStirRandom                 TPMCC = 0x00000146
	TPMCCActivateCredential         TPMCC = 0x00000147
	TPMCCCertify                    TPMCC = 0x00000148
	TPMCCPolicyNV                   TPMCC = 0x00000149
	TPMCCCertifyCreation            TPMCC = 0x0000014A
	TPMCCDuplicate                  TPMCC = 0x0000014B
	TPMCCGetTime                    TPMCC = 0x0000014C
	TPMCCGetSessionAuditDigest      TPMCC = 0x0000014D
	TPMCCNVRead                     TPMCC = 0x0000014E
	TPMCCNVReadLock                 TPMCC = 0x0000014F
	TPMCCObjectChangeAuth           TPMCC = 0x00000150
	TPMCCPolicySecret               TPMCC = 0x00000151
	TPMCCRewrap                     TPMCC = 0x00000152
	TPMCCCreate                     TPMCC = 0x00000153
	TPMCCECDHZGen                   TPMCC = 0x00000154
	TPMCCHMAC                       TPMCC = 0x00000155
	TPMCCMAC                        TPMCC = 0x00000155
	TPMCCImport                     TPMCC = 0x00000156
	TPMCCLoad                       TPMCC = 0x00000157
	TPMCCQuote                      TPMCC = 0x00000158
	TPMCCRSADecrypt                 TPMCC = 0x00000159
	TPMCCHMACStart                  TPMCC = 0x0000015B
	TPMCCMACStart                   TPMCC = 0x0000015B
	TPMCCSequenceUpdate             TPMCC = 0x0000015C
	TPMCCSign                       TPMCC = 0x0000015D
	TPMCCUnseal                     TPMCC = 0x0000015E
	TPMCCPolicySigned               TPMCC = 0x00000160
	TPMCCContextLoad                TPMCC = 0x00000161
	TPMCCContextSave                TPMCC = 0x00000162
	TPMCCECDHKeyGen                 TPMCC = 0x00000163
	TPMCCEncryptDecrypt             TPMCC = 0x00000164
	TPMCCFlushContext               TPMCC = 0x00000165
	TPMCCLoadExternal               TPMCC = 0x00000167
	TPMCCMakeCredential             TPMCC = 0x00000168
	TPMCCNVReadPublic               TPMCC = 0x00000169
	TPMCCPolicyAuthorize            TPMCC = 0x0000016A
	TPMCCPolicyAuthValue            TPMCC = 0x0000016B
	TPMCCPolicyCommandCode          TPMCC = 0x0000016C
	TPMCCPolicyCounterTimer         TPMCC = 0x0000016D
	TPMCCPolicyCpHash               TPMCC = 0x0000016E
	TPMCCPolicyLocality             TPMCC = 0x0000016F
	TPMCCPolicyNameHash             TPMCC = 0x00000170
	TPMCCPolicyOR                   TPMCC = 0x00000171
	TPMCCPolicyTicket               TPMCC = 0x00000172
	TPMCCReadPublic                 TPMCC = 0x00000173
	TPMCCRSAEncrypt                 TPMCC = 0x00000174
	TPMCCStartAuthSession           TPMCC = 0x00000176
	TPMCCVerifySignature            TPMCC = 0x00000177
	TPMCCECCParameters              TPMCC = 0x00000178
	TPMCCFirmwareRead               TPMCC = 0x00000179
	TPMCCGetCapability              TPMCC = 0x0000017A
	TPMCCGetRandom                  TPMCC = 0x0000017B
	TPMCCGetTestResult              TPMCC = 0x0000017C
	TPMCCHash                       TPMCC = 0x0000017D
	TPMCCPCRRead                    TPMCC = 0x0000017E
	TPMCCPolicyPCR                  TPMCC = 0x0000017F
	TPMCCPolicyRestart              TPMCC = 0x00000180
	TPMCCReadClock                  TPMCC = 0x00000181
	TPMCCPCRExtend                  TPMCC = 0x00000182
	TPMCCPCRSetAuthValue            TPMCC = 0x00000183
	TPMCCNVCertify                  TPMCC = 0x00000184
	TPMCCEventSequenceComplete      TPMCC = 0x00000185
	TPMCCHashSequenceStart          TPMCC = 0x00000186
	TPMCCPolicyPhysicalPresence     TPMCC = 0x00000187
	TPMCCPolicyDuplicationSelect    TPMCC = 0x00000188
	TPMCCPolicyGetDigest            TPMCC = 0x00000189
	TPMCCTestParms                  TPMCC = 0x0000018A
	TPMCCCommit                     TPMCC = 0x0000018B
	TPMCCPolicyPassword             TPMCC = 0x0000018C
	TPMCCZGen2Phase                 TPMCC = 0x0000018D
	TPMCCECEphemeral                TPMCC = 0x0000018E
	TPMCCPolicyNvWritten            TPMCC = 0x0000018F
	TPMCCPolicyTemplate             TPMCC = 0x00000190
	TPMCCCreateLoaded               TPMCC = 0x00000191
	TPMCCPolicyAuthorizeNV          TPMCC = 0x00000192
	TPMCCEncryptDecrypt2            TPMCC = 0x00000193
	TPMCCACGetCapability            TPMCC = 0x00000194
	TPMCCACSend                     TPMCC = 0x00000195
	TPMCCPolicyACSendSelect         TPMCC = 0x00000196
	TPMCCCertifyX509                TPMCC = 0x00000197
	TPMCCACTSetTimeout              TPMCC = 0x00000198
)

var commandCodes = newConstants("TPM_CC", 4,
	constant{"TPM_CC_NV_UndefineSpaceSpecial", uint64(TPMCCNVUndefineSpaceSpecial)},
	constant{"TPM_CC_EvictControl", uint64(TPMCCEvictControl)},
	constant{"TPM_CC_HierarchyControl", uint64(TPMCCHierarchyControl)},
	constant{"TPM_CC_NV_UndefineSpace", uint64(TPMCCNVUndefineSpace)},
	constant{"TPM_CC_ChangeEPS", uint64(TPMCCChangeEPS)},
	constant{"TPM_CC_ChangePPS", uint64(TPMCCChangePPS)},
	constant{"TPM_CC_Clear", uint64(TPMCCClear)},
	constant{"TPM_CC_ClearControl", uint64(TPMCCClearControl)},
	constant{"TPM_CC_ClockSet", uint64(TPMCCClockSet)},
	constant{"TPM_CC_HierarchyChangeAuth", uint64(TPMCCHierarchyChangeAuth)},
	constant{"TPM_CC_NV_DefineSpace", uint64(TPMCCNVDefineSpace)},
	constant{"TPM_CC_PCR_Allocate", uint64(TPMCCPCRAllocate)},
	constant{"TPM_CC_PCR_SetAuthPolicy", uint64(TPMCCPCRSetAuthPolicy)},
	constant{"TPM_CC_PP_Commands", uint64(TPMCCPPCommands)},
	constant{"TPM_CC_SetPrimaryPolicy", uint64(TPMCCSetPrimaryPolicy)},
	constant{"TPM_CC_FieldUpgradeStart", uint64(TPMCCFieldUpgradeStart)},
	constant{"TPM_CC_ClockRateAdjust", uint64(TPMCCClockRateAdjust)},
	constant{"TPM_CC_CreatePrimary", uint64(TPMCCCreatePrimary)},
	constant{"TPM_CC_NV_GlobalWriteLock", uint64(TPMCCNVGlobalWriteLock)},
	constant{"TPM_CC_GetCommandAuditDigest", uint64(TPMCCGetCommandAuditDigest)},
	constant{"TPM_CC_NV_Increment", uint64(TPMCCNVIncrement)},
	constant{"TPM_CC_NV_SetBits", uint64(TPMCCNVSetBits)},
	constant{"TPM_CC_NV_Extend", uint64(TPMCCNVExtend)},
	constant{"TPM_CC_NV_Write", uint64(TPMCCNVWrite)},
	constant{"TPM_CC_NV_WriteLock", uint64(TPMCCNVWriteLock)},
	constant{"TPM_CC_DictionaryAttackLockReset", uint64(TPMCCDictionaryAttackLockReset)},
	constant{"TPM_CC_DictionaryAttackParameters", uint64(TPMCCDictionaryAttackParameters)},
	constant{"TPM_CC_NV_ChangeAuth", uint64(TPMCCNVChangeAuth)},
	constant{"TPM_CC_PCR_Event", uint64(TPMCCPCREvent)},
	constant{"TPM_CC_PCR_Reset", uint64(TPMCCPCRReset)},
	constant{"TPM_CC_SequenceComplete", uint64(TPMCCSequenceComplete)},
	constant{"TPM_CC_SetAlgorithmSet", uint64(TPMCCSetAlgorithmSet)},
	constant{"TPM_CC_SetCommandCodeAuditStatus", uint64(TPMCCSetCommandCodeAuditStatus)},
	constant{"TPM_CC_FieldUpgradeData", uint64(TPMCCFieldUpgradeData)},
	constant{"TPM_CC_IncrementalSelfTest", uint64(TPMCCIncrementalSelfTest)},
	constant{"TPM_CC_SelfTest", uint64(TPMCCSelfTest)},
	constant{"TPM_CC_Startup", uint64(TPMCCStartup)},
	constant{"TPM_CC_Shutdown", uint64(TPMCCShutdown)},
	constant{"TPM_CC_StirRandom", uint64(TPMCCStirRandom)},
	constant{"TPM_CC_ActivateCredential", uint64(TPMCCActivateCredential)},
	constant{"TPM_CC_Certify", uint64(TPMCCCertify)},
	constant{"TPM_CC_PolicyNV", uint64(TPMCCPolicyNV)},
	constant{"TPM_CC_CertifyCreation", uint64(TPMCCCertifyCreation)},
	constant{"TPM_CC_Duplicate", uint64(TPMCCDuplicate)},
	constant{"TPM_CC_GetTime", uint64(TPMCCGetTime)},
	constant{"TPM_CC_GetSessionAuditDigest", uint64(TPMCCGetSessionAuditDigest)},
	constant{"TPM_CC_NV_Read", uint64(TPMCCNVRead)},
	constant{"TPM_CC_NV_ReadLock", uint64(TPMCCNVReadLock)},
	constant{"TPM_CC_ObjectChangeAuth", uint64(TPMCCObjectChangeAuth)},
	constant{"TPM_CC_PolicySecret", uint64(TPMCCPolicySecret)},
	constant{"TPM_CC_Rewrap", uint64(TPMCCRewrap)},
	constant{"TPM_CC_Create", uint64(TPMCCCreate)},
	constant{"TPM_CC_ECDH_ZGen", uint64(TPMCCECDHZGen)},
	constant{"TPM_CC_HMAC", uint64(TPMCCHMAC)},
	constant{"TPM_CC_MAC", uint64(TPMCCMAC)},
	constant{"TPM_CC_Import", uint64(TPMCCImport)},
	constant{"TPM_CC_Load", uint64(TPMCCLoad)},
	constant{"TPM_CC_Quote", uint64(TPMCCQuote)},
	constant{"TPM_CC_RSA_Decrypt", uint64(TPMCCRSADecrypt)},
	constant{"TPM_CC_HMAC_Start", uint64(TPMCCHMACStart)},
	constant{"TPM_CC_MAC_Start", uint64(TPMCCMACStart)},
	constant{"TPM_CC_SequenceUpdate", uint64(TPMCCSequenceUpdate)},
	constant{"TPM_CC_Sign", uint64(TPMCCSign)},
	constant{"TPM_CC_Unseal", uint64(TPMCCUnseal)},
	constant{"TPM_CC_PolicySigned", uint64(TPMCCPolicySigned)},
	constant{"TPM_CC_ContextLoad", uint64(TPMCCContextLoad)},
	constant{"TPM_CC_ContextSave", uint64(TPMCCContextSave)},
	constant{"TPM_CC_ECDH_KeyGen", uint64(TPMCCECDHKeyGen)},
	constant{"TPM_CC_EncryptDecrypt", uint64(TPMCCEncryptDecrypt)},
	constant{"TPM_CC_FlushContext", uint64(TPMCCFlushContext)},
	constant{"TPM_CC_LoadExternal", uint64(TPMCCLoadExternal)},
	constant{"TPM_CC_MakeCredential", uint64(TPMCCMakeCredential)},
	constant{"TPM_CC_NV_ReadPublic", uint64(TPMCCNVReadPublic)},
	constant{"TPM_CC_PolicyAuthorize", uint64(TPMCCPolicyAuthorize)},
	constant{"TPM_CC_PolicyAuthValue", uint64(TPMCCPolicyAuthValue)},
	constant{"TPM_CC_PolicyCommandCode", uint64(TPMCCPolicyCommandCode)},
	constant{"TPM_CC_PolicyCounterTimer", uint64(TPMCCPolicyCounterTimer)},
	constant{"TPM_CC_PolicyCpHash", uint64(TPMCCPolicyCpHash)},
	constant{"TPM_CC_PolicyLocality", uint64(TPMCCPolicyLocality)},
	constant{"TPM_CC_PolicyNameHash", uint64(TPMCCPolicyNameHash)},
	constant{"TPM_CC_PolicyOR", uint64(TPMCCPolicyOR)},
	constant{"TPM_CC_PolicyTicket", uint64(TPMCCPolicyTicket)},
	constant{"TPM_CC_ReadPublic", uint64(TPMCCReadPublic)},
	constant{"TPM_CC_RSA_Encrypt", uint64(TPMCCRSAEncrypt)},
	constant{"TPM_CC_StartAuthSession", uint64(TPMCCStartAuthSession)},
	constant{"TPM_CC_VerifySignature", uint64(TPMCCVerifySignature)},
	constant{"TPM_CC_ECC_Parameters", uint64(TPMCCECCParameters)},
	constant{"TPM_CC_FirmwareRead", uint64(TPMCCFirmwareRead)},
	constant{"TPM_CC_GetCapability", uint64(TPMCCGetCapability)},
	constant{"TPM_CC_GetRandom", uint64(TPMCCGetRandom)},
	constant{"TPM_CC_GetTestResult", uint64(TPMCCGetTestResult)},
	constant{"TPM_CC_Hash", uint64(TPMCCHash)},
	constant{"TPM_CC_PCR_Read", uint64(TPMCCPCRRead)},
	constant{"TPM_CC_PolicyPCR", uint64(TPMCCPolicyPCR)},
	constant{"TPM_CC_PolicyRestart", uint64(TPMCCPolicyRestart)},
	constant{"TPM_CC_ReadClock", uint64(TPMCCReadClock)},
	constant{"TPM_CC_PCR_Extend", uint64(TPMCCPCRExtend)},
	constant{"TPM_CC_PCR_SetAuthValue", uint64(TPMCCPCRSetAuthValue)},
	constant{"TPM_CC_NV_Certify", uint64(TPMCCNVCertify)},
	constant{"TPM_CC_EventSequenceComplete", uint64(TPMCCEventSequenceComplete)},
	constant{"TPM_CC_HashSequenceStart", uint64(TPMCCHashSequenceStart)},
	constant{"TPM_CC_PolicyPhysicalPresence", uint64(TPMCCPolicyPhysicalPresence)},
	constant{"TPM_CC_PolicyDuplicationSelect", uint64(TPMCCPolicyDuplicationSelect)},
	constant{"TPM_CC_PolicyGetDigest", uint64(TPMCCPolicyGetDigest)},
	constant{"TPM_CC_TestParms", uint64(TPMCCTestParms)},
	constant{"TPM_CC_Commit", uint64(TPMCCCommit)},
	constant{"TPM_CC_PolicyPassword", uint64(TPMCCPolicyPassword)},
	constant{"TPM_CC_ZGen_2Phase", uint64(TPMCCZGen2Phase)},
	constant{"TPM_CC_EC_Ephemeral", uint64(TPMCCECEphemeral)},
	constant{"TPM_CC_PolicyNvWritten", uint64(TPMCCPolicyNvWritten)},
	constant{"TPM_CC_PolicyTemplate", uint64(TPMCCPolicyTemplate)},
	constant{"TPM_CC_CreateLoaded", uint64(TPMCCCreateLoaded)},
	constant{"TPM_CC_PolicyAuthorizeNV", uint64(TPMCCPolicyAuthorizeNV)},
	constant{"TPM_CC_EncryptDecrypt2", uint64(TPMCCEncryptDecrypt2)},
	constant{"TPM_CC_AC_GetCapability", uint64(TPMCCACGetCapability)},
	constant{"TPM_CC_AC_Send", uint64(TPMCCACSend)},
	constant{"TPM_CC_Policy_AC_SendSelect", uint64(TPMCCPolicyACSendSelect)},
	constant{"TPM_CC_CertifyX509", uint64(TPMCCCertifyX509)},
	constant{"TPM_CC_ACT_SetTimeout", uint64(TPMCCACTSetTimeout)},
).withReserved(
	constant{"TPM_CC_FIRST", uint64(TPMCCNVUndefineSpaceSpecial)},
	constant{"TPM_CC_LAST", uint64(TPMCCACTSetTimeout)},
).withVendorBit(1 << 29)

// TPMST values come from Part 2: Structures, section 6.9.
const (
	TPMSTRspCommand         TPMST = 0x00C4
	TPMSTNull               TPMST = 0x8000
	TPMSTNoSessions         TPMST = 0x8001
	TPMSTSessions           TPMST = 0x8002
	TPMSTAttestNV           TPMST = 0x8014
	TPMSTAttestCommandAudit TPMST = 0x8015
	TPMSTAttestSessionAudit TPMST = 0x8016
	TPMSTAttestCertify      TPMST = 0x8017
	TPMSTAttestQuote        TPMST = 0x8018
	TPMSTAttestTime         TPMST = 0x8019
	TPMSTAttestCreation     TPMST = 0x801A
	TPMSTAttestNVDigest     TPMST = 0x801C
	TPMSTCreation           TPMST = 0x8021
	TPMSTVerified           TPMST = 0x8022
	TPMSTAuthSecret         TPMST = 0x8023
	TPMSTHashCheck          TPMST = 0x8024
	TPMSTAuthSigned         TPMST = 0x8025
	TPMSTFuManifest         TPMST = 0x8029
)

var structureTags = newConstants("TPM_ST", 2,
	constant{"TPM_ST_RSP_COMMAND", uint64(TPMSTRspCommand)},
	constant{"TPM_ST_NULL", uint64(TPMSTNull)},
	constant{"TPM_ST_NO_SESSIONS", uint64(TPMSTNoSessions)},
	constant{"TPM_ST_SESSIONS", uint64(TPMSTSessions)},
	constant{"TPM_ST_ATTEST_NV", uint64(TPMSTAttestNV)},
	constant{"TPM_ST_ATTEST_COMMAND_AUDIT", uint64(TPMSTAttestCommandAudit)},
	constant{"TPM_ST_ATTEST_SESSION_AUDIT", uint64(TPMSTAttestSessionAudit)},
	constant{"TPM_ST_ATTEST_CERTIFY", uint64(TPMSTAttestCertify)},
	constant{"TPM_ST_ATTEST_QUOTE", uint64(TPMSTAttestQuote)},
	constant{"TPM_ST_ATTEST_TIME", uint64(TPMSTAttestTime)},
	constant{"TPM_ST_ATTEST_CREATION", uint64(TPMSTAttestCreation)},
	constant{"TPM_ST_ATTEST_NV_DIGEST", uint64(TPMSTAttestNVDigest)},
	constant{"TPM_ST_CREATION", uint64(TPMSTCreation)},
	constant{"TPM_ST_VERIFIED", uint64(TPMSTVerified)},
	constant{"TPM_ST_AUTH_SECRET", uint64(TPMSTAuthSecret)},
	constant{"TPM_ST_HASHCHECK", uint64(TPMSTHashCheck)},
	constant{"TPM_ST_AUTH_SIGNED", uint64(TPMSTAuthSigned)},
	constant{"TPM_ST_FU_MANIFEST", uint64(TPMSTFuManifest)},
)

// TPMSU values come from Part 2: Structures, section 6.10.
const (
	TPMSUClear TPMSU = 0x0000
	TPMSUState TPMSU = 0x0001
)

var startupTypes = newConstants("TPM_SU", 2,
	constant{"TPM_SU_CLEAR", uint64(TPMSUClear)},
	constant{"TPM_SU_STATE", uint64(TPMSUState)},
)

// TPMSE values come from Part 2: Structures, section 6.11.
const (
	TPMSEHMAC   TPMSE = 0x00
	TPMSEPolicy TPMSE = 0x01
	TPMSETrial  TPMSE = 0x03
)

var sessionTypes = newConstants("TPM_SE", 1,
	constant{"TPM_SE_HMAC", uint64(TPMSEHMAC)},
	constant{"TPM_SE_POLICY", uint64(TPMSEPolicy)},
	constant{"TPM_SE_TRIAL", uint64(TPMSETrial)},
)

// TPMCap values come from Part 2: Structures, section 6.12.
const (
	TPMCapAlgs           TPMCap = 0x00000000
	TPMCapHandles        TPMCap = 0x00000001
	TPMCapCommands       TPMCap = 0x00000002
	TPMCapPPCommands     TPMCap = 0x00000003
	TPMCapAuditCommands  TPMCap = 0x00000004
	TPMCapPCRs           TPMCap = 0x00000005
	TPMCapTPMProperties  TPMCap = 0x00000006
	TPMCapPCRProperties  TPMCap = 0x00000007
	TPMCapECCCurves      TPMCap = 0x00000008
	TPMCapAuthPolicies   TPMCap = 0x00000009
	TPMCapACT            TPMCap = 0x0000000A
	TPMCapVendorProperty TPMCap = 0x00000100
)

var capabilities = newConstants("TPM_CAP", 4,
	constant{"TPM_CAP_ALGS", uint64(TPMCapAlgs)},
	constant{"TPM_CAP_HANDLES", uint64(TPMCapHandles)},
	constant{"TPM_CAP_COMMANDS", uint64(TPMCapCommands)},
	constant{"TPM_CAP_PP_COMMANDS", uint64(TPMCapPPCommands)},
	constant{"TPM_CAP_AUDIT_COMMANDS", uint64(TPMCapAuditCommands)},
	constant{"TPM_CAP_PCRS", uint64(TPMCapPCRs)},
	constant{"TPM_CAP_TPM_PROPERTIES", uint64(TPMCapTPMProperties)},
	constant{"TPM_CAP_PCR_PROPERTIES", uint64(TPMCapPCRProperties)},
	constant{"TPM_CAP_ECC_CURVES", uint64(TPMCapECCCurves)},
	constant{"TPM_CAP_AUTH_POLICIES", uint64(TPMCapAuthPolicies)},
	constant{"TPM_CAP_ACT", uint64(TPMCapACT)},
	constant{"TPM_CAP_VENDOR_PROPERTY", uint64(TPMCapVendorProperty)},
).withReserved(
	constant{"TPM_CAP_FIRST", uint64(TPMCapAlgs)},
	constant{"TPM_CAP_LAST", uint64(TPMCapACT)},
)

// TPMPT values come from Part 2: Structures, section 6.13. The group markers
// PT_FIXED and PT_VAR share values with real properties and are only
// resolvable by name.
const (
	TPMPTNone              TPMPT = 0x00000000
	TPMPTFamilyIndicator   TPMPT = 0x00000100
	TPMPTLevel             TPMPT = 0x00000101
	TPMPTRevision          TPMPT = 0x00000102
	TPMPTDayOfYear         TPMPT = 0x00000103
	TPMPTYear              TPMPT = 0x00000104
	TPMPTManufacturer      TPMPT = 0x00000105
	TPMPTVendorString1     TPMPT = 0x00000106
	TPMPTVendorString2     TPMPT = 0x00000107
	TPMPTVendorString3     TPMPT = 0x00000108
	TPMPTVendorString4     TPMPT = 0x00000109
	TPMPTVendorTPMType     TPMPT = 0x0000010A
	TPMPTFirmwareVersion1  TPMPT = 0x0000010B
	TPMPTFirmwareVersion2  TPMPT = 0x0000010C
	TPMPTInputBuffer       TPMPT = 0x0000010D
	TPMPTHRTransientMin    TPMPT = 0x0000010E
	TPMPTHRPersistentMin   TPMPT = 0x0000010F
	TPMPTHRLoadedMin       TPMPT = 0x00000110
	TPMPTActiveSessionsMax TPMPT = 0x00000111
	TPMPTPCRCount          TPMPT = 0x00000112
	TPMPTPCRSelectMin      TPMPT = 0x00000113
	TPMPTContextGapMax     TPMPT = 0x00000114
	TPMPTNVCountersMax     TPMPT = 0x00000116
	TPMPTNVIndexMax        TPMPT = 0x00000117
	TPMPTMemory            TPMPT = 0x00000118
	TPMPTClockUpdate       TPMPT = 0x00000119
	TPMPTContextHash       TPMPT = 0x0000011A
	TPMPTContextSym        TPMPT = 0x0000011B
	TPMPTContextSymSize    TPMPT = 0x0000011C
	TPMPTOrderlyCount      TPMPT = 0x0000011D
	TPMPTMaxCommandSize    TPMPT = 0x0000011E
	TPMPTMaxResponseSize   TPMPT = 0x0000011F
	TPMPTMaxDigest         TPMPT = 0x00000120
	TPMPTMaxObjectContext  TPMPT = 0x00000121
	TPMPTMaxSessionContext TPMPT = 0x00000122
	TPMPTPSFamilyIndicator TPMPT = 0x00000123
	TPMPTPSLevel           TPMPT = 0x00000124
	TPMPTPSRevision        TPMPT = 0x00000125
	TPMPTPSDayOfYear       TPMPT = 0x00000126
	TPMPTPSYear            TPMPT = 0x00000127
	TPMPTSplitMax          TPMPT = 0x00000128
	TPMPTTotalCommands     TPMPT = 0x00000129
	TPMPTLibraryCommands   TPMPT = 0x0000012A
	TPMPTVendorCommands    TPMPT = 0x0000012B
	TPMPTNVBufferMax       TPMPT = 0x0000012C
	TPMPTModes             TPMPT = 0x0000012D
	TPMPTMaxCapBuffer      TPMPT = 0x0000012E
	TPMPTPermanent         TPMPT = 0x00000200
	TPMPTStartupClear      TPMPT = 0x00000201
	TPMPTHRNVIndex         TPMPT = 0x00000202
	TPMPTHRLoaded          TPMPT = 0x00000203
	TPMPTHRLoadedAvail     TPMPT = 0x00000204
	TPMPTHRActive          TPMPT = 0x00000205
	TPMPTHRActiveAvail     TPMPT = 0x00000206
	TPMPTHRTransientAvail  TPMPT = 0x00000207
	TPMPTHRPersistent      TPMPT = 0x00000208
	TPMPTHRPersistentAvail TPMPT = 0x00000209
	TPMPTNVCounters        TPMPT = 0x0000020A
	TPMPTNVCountersAvail   TPMPT = 0x0000020B
	TPMPTAlgorithmSet      TPMPT = 0x0000020C
	TPMPTLoadedCurves      TPMPT = 0x0000020D
	TPMPTLockoutCounter    TPMPT = 0x0000020E
	TPMPTMaxAuthFail       TPMPT = 0x0000020F
	TPMPTLockoutInterval   TPMPT = 0x00000210
	TPMPTLockoutRecovery   TPMPT = 0x00000211
	TPMPTNVWriteRecovery   TPMPT = 0x00000212
	TPMPTAuditCounter0     TPMPT = 0x00000213
	TPMPTAuditCounter1     TPMPT = 0x00000214
)

var properties = newConstants("TPM_PT", 4,
	constant{"TPM_PT_NONE", uint64(TPMPTNone)},
	constant{"TPM_PT_FAMILY_INDICATOR", uint64(TPMPTFamilyIndicator)},
	constant{"TPM_PT_LEVEL", uint64(TPMPTLevel)},
	constant{"TPM_PT_REVISION", uint64(TPMPTRevision)},
	constant{"TPM_PT_DAY_OF_YEAR", uint64(TPMPTDayOfYear)},
	constant{"TPM_PT_YEAR", uint64(TPMPTYear)},
	constant{"TPM_PT_MANUFACTURER", uint64(TPMPTManufacturer)},
	constant{"TPM_PT_VENDOR_STRING_1", uint64(TPMPTVendorString1)},
	constant{"TPM_PT_VENDOR_STRING_2", uint64(TPMPTVendorString2)},
	constant{"TPM_PT_VENDOR_STRING_3", uint64(TPMPTVendorString3)},
	constant{"TPM_PT_VENDOR_STRING_4", uint64(TPMPTVendorString4)},
	constant{"TPM_PT_VENDOR_TPM_TYPE", uint64(TPMPTVendorTPMType)},
	constant{"TPM_PT_FIRMWARE_VERSION_1", uint64(TPMPTFirmwareVersion1)},
	constant{"TPM_PT_FIRMWARE_VERSION_2", uint64(TPMPTFirmwareVersion2)},
	constant{"TPM_PT_INPUT_BUFFER", uint64(TPMPTInputBuffer)},
	constant{"TPM_PT_HR_TRANSIENT_MIN", uint64(TPMPTHRTransientMin)},
	constant{"TPM_PT_HR_PERSISTENT_MIN", uint64(TPMPTHRPersistentMin)},
	constant{"TPM_PT_HR_LOADED_MIN", uint64(TPMPTHRLoadedMin)},
	constant{"TPM_PT_ACTIVE_SESSIONS_MAX", uint64(TPMPTActiveSessionsMax)},
	constant{"TPM_PT_PCR_COUNT", uint64(TPMPTPCRCount)},
	constant{"TPM_PT_PCR_SELECT_MIN", uint64(TPMPTPCRSelectMin)},
	constant{"TPM_PT_CONTEXT_GAP_MAX", uint64(TPMPTContextGapMax)},
	constant{"TPM_PT_NV_COUNTERS_MAX", uint64(TPMPTNVCountersMax)},
	constant{"TPM_PT_NV_INDEX_MAX", uint64(TPMPTNVIndexMax)},
	constant{"TPM_PT_MEMORY", uint64(TPMPTMemory)},
	constant{"TPM_PT_CLOCK_UPDATE", uint64(TPMPTClockUpdate)},
	constant{"TPM_PT_CONTEXT_HASH", uint64(TPMPTContextHash)},
	constant{"TPM_PT_CONTEXT_SYM", uint64(TPMPTContextSym)},
	constant{"TPM_PT_CONTEXT_SYM_SIZE", uint64(TPMPTContextSymSize)},
	constant{"TPM_PT_ORDERLY_COUNT", uint64(TPMPTOrderlyCount)},
	constant{"TPM_PT_MAX_COMMAND_SIZE", uint64(TPMPTMaxCommandSize)},
	constant{"TPM_PT_MAX_RESPONSE_SIZE", uint64(TPMPTMaxResponseSize)},
	constant{"TPM_PT_MAX_DIGEST", uint64(TPMPTMaxDigest)},
	constant{"TPM_PT_MAX_OBJECT_CONTEXT", uint64(TPMPTMaxObjectContext)},
	constant{"TPM_PT_MAX_SESSION_CONTEXT", uint64(TPMPTMaxSessionContext)},
	constant{"TPM_PT_PS_FAMILY_INDICATOR", uint64(TPMPTPSFamilyIndicator)},
	constant{"TPM_PT_PS_LEVEL", uint64(TPMPTPSLevel)},
	constant{"TPM_PT_PS_REVISION", uint64(TPMPTPSRevision)},
	constant{"TPM_PT_PS_DAY_OF_YEAR", uint64(TPMPTPSDayOfYear)},
	constant{"TPM_PT_PS_YEAR", uint64(TPMPTPSYear)},
	constant{"TPM_PT_SPLIT_MAX", uint64(TPMPTSplitMax)},
	constant{"TPM_PT_TOTAL_COMMANDS", uint64(TPMPTTotalCommands)},
	constant{"TPM_PT_LIBRARY_COMMANDS", uint64(TPMPTLibraryCommands)},
	constant{"TPM_PT_VENDOR_COMMANDS", uint64(TPMPTVendorCommands)},
	constant{"TPM_PT_NV_BUFFER_MAX", uint64(TPMPTNVBufferMax)},
	constant{"TPM_PT_MODES", uint64(TPMPTModes)},
	constant{"TPM_PT_MAX_CAP_BUFFER", uint64(TPMPTMaxCapBuffer)},
	constant{"TPM_PT_PERMANENT", uint64(TPMPTPermanent)},
	constant{"TPM_PT_STARTUP_CLEAR", uint64(TPMPTStartupClear)},
	constant{"TPM_PT_HR_NV_INDEX", uint64(TPMPTHRNVIndex)},
	constant{"TPM_PT_HR_LOADED", uint64(TPMPTHRLoaded)},
	constant{"TPM_PT_HR_LOADED_AVAIL", uint64(TPMPTHRLoadedAvail)},
	constant{"TPM_PT_HR_ACTIVE", uint64(TPMPTHRActive)},
	constant{"TPM_PT_HR_ACTIVE_AVAIL", uint64(TPMPTHRActiveAvail)},
	constant{"TPM_PT_HR_TRANSIENT_AVAIL", uint64(TPMPTHRTransientAvail)},
	constant{"TPM_PT_HR_PERSISTENT", uint64(TPMPTHRPersistent)},
	constant{"TPM_PT_HR_PERSISTENT_AVAIL", uint64(TPMPTHRPersistentAvail)},
	constant{"TPM_PT_NV_COUNTERS", uint64(TPMPTNVCounters)},
	constant{"TPM_PT_NV_COUNTERS_AVAIL", uint64(TPMPTNVCountersAvail)},
	constant{"TPM_PT_ALGORITHM_SET", uint64(TPMPTAlgorithmSet)},
	constant{"TPM_PT_LOADED_CURVES", uint64(TPMPTLoadedCurves)},
	constant{"TPM_PT_LOCKOUT_COUNTER", uint64(TPMPTLockoutCounter)},
	constant{"TPM_PT_MAX_AUTH_FAIL", uint64(TPMPTMaxAuthFail)},
	constant{"TPM_PT_LOCKOUT_INTERVAL", uint64(TPMPTLockoutInterval)},
	constant{"TPM_PT_LOCKOUT_RECOVERY", uint64(TPMPTLockoutRecovery)},
	constant{"TPM_PT_NV_WRITE_RECOVERY", uint64(TPMPTNVWriteRecovery)},
	constant{"TPM_PT_AUDIT_COUNTER_0", uint64(TPMPTAuditCounter0)},
	constant{"TPM_PT_AUDIT_COUNTER_1", uint64(TPMPTAuditCounter1)},
).withReserved(
	constant{"PT_GROUP", 0x100},
	constant{"PT_FIXED", 0x100},
	constant{"PT_VAR", 0x200},
)

// TPMPTPCR values come from Part 2: Structures, section 6.14.
const (
	TPMPTPCRSave        TPMPTPCR = 0x00000000
	TPMPTPCRExtendL0    TPMPTPCR = 0x00000001
	TPMPTPCRResetL0     TPMPTPCR = 0x00000002
	TPMPTPCRExtendL1    TPMPTPCR = 0x00000003
	TPMPTPCRResetL1     TPMPTPCR = 0x00000004
	TPMPTPCRExtendL2    TPMPTPCR = 0x00000005
	TPMPTPCRResetL2     TPMPTPCR = 0x00000006
	TPMPTPCRExtendL3    TPMPTPCR = 0x00000007
	TPMPTPCRResetL3     TPMPTPCR = 0x00000008
	TPMPTPCRExtendL4    TPMPTPCR = 0x00000009
	TPMPTPCRResetL4     TPMPTPCR = 0x0000000A
	TPMPTPCRNoIncrement TPMPTPCR = 0x00000011
	TPMPTPCRDRTMReset   TPMPTPCR = 0x00000012
	TPMPTPCRPolicy      TPMPTPCR = 0x00000013
	TPMPTPCRAuth        TPMPTPCR = 0x00000014
)

var pcrProperties = newConstants("TPM_PT_PCR", 4,
	constant{"TPM_PT_PCR_SAVE", uint64(TPMPTPCRSave)},
	constant{"TPM_PT_PCR_EXTEND_L0", uint64(TPMPTPCRExtendL0)},
	constant{"TPM_PT_PCR_RESET_L0", uint64(TPMPTPCRResetL0)},
	constant{"TPM_PT_PCR_EXTEND_L1", uint64(TPMPTPCRExtendL1)},
	constant{"TPM_PT_PCR_RESET_L1", uint64(TPMPTPCRResetL1)},
	constant{"TPM_PT_PCR_EXTEND_L2", uint64(TPMPTPCRExtendL2)},
	constant{"TPM_PT_PCR_RESET_L2", uint64(TPMPTPCRResetL2)},
	constant{"TPM_PT_PCR_EXTEND_L3", uint64(TPMPTPCRExtendL3)},
	constant{"TPM_PT_PCR_RESET_L3", uint64(TPMPTPCRResetL3)},
	constant{"TPM_PT_PCR_EXTEND_L4", uint64(TPMPTPCRExtendL4)},
	constant{"TPM_PT_PCR_RESET_L4", uint64(TPMPTPCRResetL4)},
	constant{"TPM_PT_PCR_NO_INCREMENT", uint64(TPMPTPCRNoIncrement)},
	constant{"TPM_PT_PCR_DRTM_RESET", uint64(TPMPTPCRDRTMReset)},
	constant{"TPM_PT_PCR_POLICY", uint64(TPMPTPCRPolicy)},
	constant{"TPM_PT_PCR_AUTH", uint64(TPMPTPCRAuth)},
).withReserved(
	constant{"TPM_PT_PCR_FIRST", uint64(TPMPTPCRSave)},
	constant{"TPM_PT_PCR_LAST", uint64(TPMPTPCRAuth)},
)

// TPMNT values come from Part 2: Structures, section 13.4.
const (
	TPMNTOrdinary TPMNT = 0x0
	TPMNTCounter  TPMNT = 0x1
	TPMNTBits     TPMNT = 0x2
	TPMNTExtend   TPMNT = 0x4
	TPMNTPinFail  TPMNT = 0x8
	TPMNTPinPass  TPMNT = 0x9
)

var nvTypes = newConstants("TPM_NT", 1,
	constant{"TPM_NT_ORDINARY", uint64(TPMNTOrdinary)},
	constant{"TPM_NT_COUNTER", uint64(TPMNTCounter)},
	constant{"TPM_NT_BITS", uint64(TPMNTBits)},
	constant{"TPM_NT_EXTEND", uint64(TPMNTExtend)},
	constant{"TPM_NT_PIN_FAIL", uint64(TPMNTPinFail)},
	constant{"TPM_NT_PIN_PASS", uint64(TPMNTPinPass)},
)

// TPMHT values come from Part 2: Structures, section 7.2.
const (
	TPMHTPCR           TPMHT = 0x00
	TPMHTNVIndex       TPMHT = 0x01
	TPMHTHMACSession   TPMHT = 0x02
	TPMHTPolicySession TPMHT = 0x03
	TPMHTPermanent     TPMHT = 0x40
	TPMHTTransient     TPMHT = 0x80
	TPMHTPersistent    TPMHT = 0x81
	TPMHTAC            TPMHT = 0x90
)

var handleTypes = newConstants("TPM_HT", 1,
	constant{"TPM_HT_PCR", uint64(TPMHTPCR)},
	constant{"TPM_HT_NV_INDEX", uint64(TPMHTNVIndex)},
	constant{"TPM_HT_HMAC_SESSION", uint64(TPMHTHMACSession)},
	constant{"TPM_HT_LOADED_SESSION", uint64(TPMHTHMACSession)},
	constant{"TPM_HT_POLICY_SESSION", uint64(TPMHTPolicySession)},
	constant{"TPM_HT_SAVED_SESSION", uint64(TPMHTPolicySession)},
	constant{"TPM_HT_PERMANENT", uint64(TPMHTPermanent)},
	constant{"TPM_HT_TRANSIENT", uint64(TPMHTTransient)},
	constant{"TPM_HT_PERSISTENT", uint64(TPMHTPersistent)},
	constant{"TPM_HT_AC", uint64(TPMHTAC)},
)

var yesNo = newConstants("TPMI_YES_NO", 1,
	constant{"NO", 0},
	constant{"YES", 1},
)

// Handle values come from Part 2: Structures, section 7.4.
const (
	TPMRHOwner       TPMHandle = 0x40000001
	TPMRHNull        TPMHandle = 0x40000007
	TPMRSPW          TPMHandle = 0x40000009
	TPMRHLockout     TPMHandle = 0x4000000A
	TPMRHEndorsement TPMHandle = 0x4000000B
	TPMRHPlatform    TPMHandle = 0x4000000C
	TPMRHPlatformNV  TPMHandle = 0x4000000D
)

func init() {
	registerConstants(algIDs, eccCurves, commandCodes, structureTags, startupTypes,
		sessionTypes, capabilities, properties, pcrProperties, nvTypes, handleTypes, yesNo)
}

// Constants implements Enum.
func (TPMAlgID) Constants() *Constants { return algIDs }

// String returns the TPM name of the algorithm.
func (a TPMAlgID) String() string { return algIDs.Format(uint64(a)) }

// Hash returns the crypto.Hash that corresponds to the given TPM hash
// algorithm.
func (a TPMAlgID) Hash() (crypto.Hash, error) {
	switch a {
	case TPMAlgSHA1:
		return crypto.SHA1, nil
	case TPMAlgSHA256:
		return crypto.SHA256, nil
	case TPMAlgSHA384:
		return crypto.SHA384, nil
	case TPMAlgSHA512:
		return crypto.SHA512, nil
	}
	return crypto.SHA256, fmt.Errorf("unsupported hash algorithm: %v", a)
}

// Constants implements Enum.
func (TPMECCCurve) Constants() *Constants { return eccCurves }

func (c TPMECCCurve) String() string { return eccCurves.Format(uint64(c)) }

// Curve returns the elliptic.Curve associated with a TPMECCCurve.
func (c TPMECCCurve) Curve() (elliptic.Curve, error) {
	switch c {
	case TPMECCNistP224:
		return elliptic.P224(), nil
	case TPMECCNistP256:
		return elliptic.P256(), nil
	case TPMECCNistP384:
		return elliptic.P384(), nil
	case TPMECCNistP521:
		return elliptic.P521(), nil
	}
	return nil, fmt.Errorf("unsupported ECC curve: %v", c)
}

// Constants implements Enum.
func (TPMCC) Constants() *Constants { return commandCodes }

func (c TPMCC) String() string { return commandCodes.Format(uint64(c)) }

// Constants implements Enum.
func (TPMST) Constants() *Constants { return structureTags }

func (s TPMST) String() string { return structureTags.Format(uint64(s)) }

// Constants implements Enum.
func (TPMSU) Constants() *Constants { return startupTypes }

func (s TPMSU) String() string { return startupTypes.Format(uint64(s)) }

// Constants implements Enum.
func (TPMSE) Constants() *Constants { return sessionTypes }

func (s TPMSE) String() string { return sessionTypes.Format(uint64(s)) }

// Constants implements Enum.
func (TPMCap) Constants() *Constants { return capabilities }

func (c TPMCap) String() string { return capabilities.Format(uint64(c)) }

// Constants implements Enum.
func (TPMPT) Constants() *Constants { return properties }

func (p TPMPT) String() string { return properties.Format(uint64(p)) }

// Constants implements Enum.
func (TPMPTPCR) Constants() *Constants { return pcrProperties }

func (p TPMPTPCR) String() string { return pcrProperties.Format(uint64(p)) }

// Constants implements Enum.
func (TPMNT) Constants() *Constants { return nvTypes }

func (n TPMNT) String() string { return nvTypes.Format(uint64(n)) }

// Constants implements Enum.
func (TPMHT) Constants() *Constants { return handleTypes }

func (h TPMHT) String() string { return handleTypes.Format(uint64(h)) }

// Type returns the handle type encoded in the most significant octet.
func (h TPMHandle) Type() TPMHT {
	return TPMHT(h >> 24)
}

func (h TPMHandle) String() string {
	switch h {
	case TPMRHOwner:
		return "TPM_RH_OWNER"
	case TPMRHNull:
		return "TPM_RH_NULL"
	case TPMRSPW:
		return "TPM_RS_PW"
	case TPMRHLockout:
		return "TPM_RH_LOCKOUT"
	case TPMRHEndorsement:
		return "TPM_RH_ENDORSEMENT"
	case TPMRHPlatform:
		return "TPM_RH_PLATFORM"
	case TPMRHPlatformNV:
		return "TPM_RH_PLATFORM_NV"
	}
	return fmt.Sprintf("0x%08x", uint32(h))
}
