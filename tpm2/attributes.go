package tpm2

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Attribute is implemented by every TPMA type.
type Attribute interface {
	Bitfield() *Bitfield
}

type bitDef struct {
	name string
	bit  uint
}

type fieldDef struct {
	name  string
	shift uint
	width uint
}

func (f fieldDef) mask() uint64 {
	return (uint64(1)<<f.width - 1) << f.shift
}

// Bitfield describes the named bits and multi-bit sub-fields of one TPMA
// attribute family. Like Constants, descriptors are built at package
// initialization and never modified.
//
// Attributes are open sets: bits that are not named still decode and
// re-encode unchanged.
type Bitfield struct {
	name   string
	width  int
	bits   []bitDef
	fields []fieldDef
}

func newBitfield(name string, width int, bits []bitDef, fields ...fieldDef) *Bitfield {
	b := &Bitfield{name: name, width: width, bits: bits, fields: fields}
	var used uint64
	for _, d := range bits {
		m := uint64(1) << d.bit
		if d.bit >= uint(8*width) || used&m != 0 {
			panic(fmt.Sprintf("tpm2: %s bit %s overlaps or overflows", name, d.name))
		}
		used |= m
	}
	for _, f := range fields {
		if f.shift+f.width > uint(8*width) || used&f.mask() != 0 {
			panic(fmt.Sprintf("tpm2: %s field %s overlaps or overflows", name, f.name))
		}
		used |= f.mask()
	}
	return b
}

// Name returns the family name, e.g. "TPMA_OBJECT".
func (b *Bitfield) Name() string { return b.name }

// Width returns the size of the attribute on the wire, in bytes.
func (b *Bitfield) Width() int { return b.width }

// BitNames returns the names of the single-bit attributes, lowest bit first.
func (b *Bitfield) BitNames() []string {
	names := make([]string, 0, len(b.bits))
	for _, d := range b.sorted() {
		names = append(names, d.name)
	}
	return names
}

// FieldNames returns the names of the multi-bit sub-fields.
func (b *Bitfield) FieldNames() []string {
	names := make([]string, 0, len(b.fields))
	for _, f := range b.fields {
		names = append(names, f.name)
	}
	return names
}

func (b *Bitfield) sorted() []bitDef {
	out := append([]bitDef(nil), b.bits...)
	sort.Slice(out, func(i, j int) bool { return out[i].bit < out[j].bit })
	return out
}

func (b *Bitfield) bit(name string) (bitDef, error) {
	for _, d := range b.bits {
		if d.name == name {
			return d, nil
		}
	}
	return bitDef{}, &UnknownConstantError{Family: b.name, Name: name}
}

func (b *Bitfield) field(name string) (fieldDef, error) {
	for _, f := range b.fields {
		if f.name == name {
			return f, nil
		}
	}
	return fieldDef{}, &UnknownConstantError{Family: b.name, Name: name}
}

// Has reports whether the named bit is set in v.
func (b *Bitfield) Has(v uint64, bit string) (bool, error) {
	d, err := b.bit(bit)
	if err != nil {
		return false, err
	}
	return v&(1<<d.bit) != 0, nil
}

// Combine returns the union of the given attribute values.
func (b *Bitfield) Combine(v uint64, more ...uint64) uint64 {
	for _, m := range more {
		v |= m
	}
	return v & maxForWidth(b.width)
}

// Mask extracts the value of the named sub-field from v.
func (b *Bitfield) Mask(v uint64, field string) (uint64, error) {
	f, err := b.field(field)
	if err != nil {
		return 0, err
	}
	return (v & f.mask()) >> f.shift, nil
}

// SetField returns v with the named sub-field replaced by x.
func (b *Bitfield) SetField(v uint64, field string, x uint64) (uint64, error) {
	f, err := b.field(field)
	if err != nil {
		return 0, err
	}
	if x > 1<<f.width-1 {
		return 0, fmt.Errorf("%w: %s.%s is %d bits wide, got %d", ErrValueTooLarge, b.name, field, f.width, x)
	}
	return v&^f.mask() | x<<f.shift, nil
}

// Format renders v as the names of its set bits, followed by its sub-field
// values and any unnamed bits in hex, separated by "|".
func (b *Bitfield) Format(v uint64) string {
	var parts []string
	known := uint64(0)
	for _, d := range b.sorted() {
		known |= 1 << d.bit
		if v&(1<<d.bit) != 0 {
			parts = append(parts, d.name)
		}
	}
	for _, f := range b.fields {
		known |= f.mask()
		if x := (v & f.mask()) >> f.shift; x != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", f.name, x))
		}
	}
	if rest := v &^ known; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", rest))
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}

// Parse is the inverse of Format. Each element is a bit name, a
// "field=value" assignment or a hex literal of unnamed bits.
func (b *Bitfield) Parse(names []string) (uint64, error) {
	var v uint64
	for _, n := range names {
		n = strings.TrimSpace(n)
		switch {
		case n == "" || n == "0":
			continue
		case strings.HasPrefix(n, "0x"):
			raw, err := strconv.ParseUint(n[2:], 16, 64)
			if err != nil || raw > maxForWidth(b.width) {
				return 0, &UnknownConstantError{Family: b.name, Name: n}
			}
			v |= raw
		case strings.Contains(n, "="):
			kv := strings.SplitN(n, "=", 2)
			x, err := strconv.ParseUint(kv[1], 0, 64)
			if err != nil {
				return 0, fmt.Errorf("%s: parsing %q: %w", b.name, n, err)
			}
			if v, err = b.SetField(v, kv[0], x); err != nil {
				return 0, err
			}
		default:
			d, err := b.bit(n)
			if err != nil {
				return 0, err
			}
			v |= 1 << d.bit
		}
	}
	return v, nil
}

// attributeType is satisfied by every TPMA type.
type attributeType interface {
	~uint8 | ~uint16 | ~uint32
	Attribute
}

// HasAttr reports whether the named bit is set.
func HasAttr[T attributeType](v T, bit string) (bool, error) {
	return v.Bitfield().Has(uint64(v), bit)
}

// FieldValue returns the value of the named sub-field.
func FieldValue[T attributeType](v T, field string) (uint64, error) {
	return v.Bitfield().Mask(uint64(v), field)
}

// WithField returns v with the named sub-field set to x. The result has the
// same type, and therefore the same width, as v.
func WithField[T attributeType](v T, field string, x uint64) (T, error) {
	r, err := v.Bitfield().SetField(uint64(v), field, x)
	if err != nil {
		return v, err
	}
	return T(r), nil
}

// TPMAAlgorithm represents a TPMA_ALGORITHM.
// See definition in Part 2: Structures, section 8.2.
type TPMAAlgorithm uint32

// TPMAAlgorithm bits.
const (
	TPMAAlgorithmAsymmetric TPMAAlgorithm = 1 << 0
	TPMAAlgorithmSymmetric  TPMAAlgorithm = 1 << 1
	TPMAAlgorithmHash       TPMAAlgorithm = 1 << 2
	TPMAAlgorithmObject     TPMAAlgorithm = 1 << 3
	TPMAAlgorithmSigning    TPMAAlgorithm = 1 << 8
	TPMAAlgorithmEncrypting TPMAAlgorithm = 1 << 9
	TPMAAlgorithmMethod     TPMAAlgorithm = 1 << 10
)

var algorithmAttributes = newBitfield("TPMA_ALGORITHM", 4, []bitDef{
	{"asymmetric", 0}, {"symmetric", 1}, {"hash", 2}, {"object", 3},
	{"signing", 8}, {"encrypting", 9}, {"method", 10},
})

// TPMAObject represents a TPMA_OBJECT.
// See definition in Part 2: Structures, section 8.3.2.
type TPMAObject uint32

// TPMAObject bits.
const (
	TPMAObjectFixedTPM             TPMAObject = 1 << 1
	TPMAObjectSTClear              TPMAObject = 1 << 2
	TPMAObjectFixedParent          TPMAObject = 1 << 4
	TPMAObjectSensitiveDataOrigin  TPMAObject = 1 << 5
	TPMAObjectUserWithAuth         TPMAObject = 1 << 6
	TPMAObjectAdminWithPolicy      TPMAObject = 1 << 7
	TPMAObjectNoDA                 TPMAObject = 1 << 10
	TPMAObjectEncryptedDuplication TPMAObject = 1 << 11
	TPMAObjectRestricted           TPMAObject = 1 << 16
	TPMAObjectDecrypt              TPMAObject = 1 << 17
	TPMAObjectSignEncrypt          TPMAObject = 1 << 18
	TPMAObjectX509Sign             TPMAObject = 1 << 19
)

var objectAttributes = newBitfield("TPMA_OBJECT", 4, []bitDef{
	{"fixedTPM", 1}, {"stClear", 2}, {"fixedParent", 4}, {"sensitiveDataOrigin", 5},
	{"userWithAuth", 6}, {"adminWithPolicy", 7}, {"noDA", 10}, {"encryptedDuplication", 11},
	{"restricted", 16}, {"decrypt", 17}, {"sign", 18}, {"x509sign", 19},
})

// TPMASession represents a TPMA_SESSION.
// See definition in Part 2: Structures, section 8.4.
type TPMASession uint8

// TPMASession bits.
const (
	TPMASessionContinueSession TPMASession = 1 << 0
	TPMASessionAuditExclusive  TPMASession = 1 << 1
	TPMASessionAuditReset      TPMASession = 1 << 2
	TPMASessionDecrypt         TPMASession = 1 << 5
	TPMASessionEncrypt         TPMASession = 1 << 6
	TPMASessionAudit           TPMASession = 1 << 7
)

var sessionAttributes = newBitfield("TPMA_SESSION", 1, []bitDef{
	{"continueSession", 0}, {"auditExclusive", 1}, {"auditReset", 2},
	{"decrypt", 5}, {"encrypt", 6}, {"audit", 7},
})

// TPMALocality represents a TPMA_LOCALITY. Values above 31 use the
// Extended sub-field for localities 32 to 255.
// See definition in Part 2: Structures, section 8.5.
type TPMALocality uint8

// TPMALocality bits.
const (
	TPMALocalityZero  TPMALocality = 1 << 0
	TPMALocalityOne   TPMALocality = 1 << 1
	TPMALocalityTwo   TPMALocality = 1 << 2
	TPMALocalityThree TPMALocality = 1 << 3
	TPMALocalityFour  TPMALocality = 1 << 4
)

var localityAttributes = newBitfield("TPMA_LOCALITY", 1, []bitDef{
	{"TPM_LOC_ZERO", 0}, {"TPM_LOC_ONE", 1}, {"TPM_LOC_TWO", 2},
	{"TPM_LOC_THREE", 3}, {"TPM_LOC_FOUR", 4},
}, fieldDef{"Extended", 5, 3})

// TPMACC represents a TPMA_CC.
// See definition in Part 2: Structures, section 8.9.
type TPMACC uint32

// TPMACC bits.
const (
	TPMACCNV        TPMACC = 1 << 22
	TPMACCExtensive TPMACC = 1 << 23
	TPMACCFlushed   TPMACC = 1 << 24
	TPMACCRHandle   TPMACC = 1 << 28
	TPMACCV         TPMACC = 1 << 29
)

var commandAttributes = newBitfield("TPMA_CC", 4, []bitDef{
	{"nv", 22}, {"extensive", 23}, {"flushed", 24}, {"rHandle", 28}, {"V", 29},
}, fieldDef{"commandIndex", 0, 16}, fieldDef{"cHandles", 25, 3})

// TPMANV represents a TPMA_NV.
// See definition in Part 2: Structures, section 13.4.
type TPMANV uint32

// TPMANV bits.
const (
	TPMANVPPWrite        TPMANV = 1 << 0
	TPMANVOwnerWrite     TPMANV = 1 << 1
	TPMANVAuthWrite      TPMANV = 1 << 2
	TPMANVPolicyWrite    TPMANV = 1 << 3
	TPMANVPolicyDelete   TPMANV = 1 << 10
	TPMANVWriteLocked    TPMANV = 1 << 11
	TPMANVWriteAll       TPMANV = 1 << 12
	TPMANVWriteDefine    TPMANV = 1 << 13
	TPMANVWriteSTClear   TPMANV = 1 << 14
	TPMANVGlobalLock     TPMANV = 1 << 15
	TPMANVPPRead         TPMANV = 1 << 16
	TPMANVOwnerRead      TPMANV = 1 << 17
	TPMANVAuthRead       TPMANV = 1 << 18
	TPMANVPolicyRead     TPMANV = 1 << 19
	TPMANVNoDA           TPMANV = 1 << 25
	TPMANVOrderly        TPMANV = 1 << 26
	TPMANVClearSTClear   TPMANV = 1 << 27
	TPMANVReadLocked     TPMANV = 1 << 28
	TPMANVWritten        TPMANV = 1 << 29
	TPMANVPlatformCreate TPMANV = 1 << 30
	TPMANVReadSTClear    TPMANV = 1 << 31
)

var nvAttributes = newBitfield("TPMA_NV", 4, []bitDef{
	{"PPWRITE", 0}, {"OWNERWRITE", 1}, {"AUTHWRITE", 2}, {"POLICYWRITE", 3},
	{"POLICY_DELETE", 10}, {"WRITELOCKED", 11}, {"WRITEALL", 12}, {"WRITEDEFINE", 13},
	{"WRITE_STCLEAR", 14}, {"GLOBALLOCK", 15}, {"PPREAD", 16}, {"OWNERREAD", 17},
	{"AUTHREAD", 18}, {"POLICYREAD", 19}, {"NO_DA", 25}, {"ORDERLY", 26},
	{"CLEAR_STCLEAR", 27}, {"READLOCKED", 28}, {"WRITTEN", 29}, {"PLATFORMCREATE", 30},
	{"READ_STCLEAR", 31},
}, fieldDef{"TPM_NT", 4, 4})

// NT returns the index type held in the TPM_NT sub-field.
func (a TPMANV) NT() TPMNT {
	return TPMNT((a >> 4) & 0xF)
}

// TPMAACT represents a TPMA_ACT.
// See definition in Part 2: Structures, section 8.12.
type TPMAACT uint32

// TPMAACT bits.
const (
	TPMAACTSignaled         TPMAACT = 1 << 0
	TPMAACTPreserveSignaled TPMAACT = 1 << 1
)

var actAttributes = newBitfield("TPMA_ACT", 4, []bitDef{
	{"signaled", 0}, {"preserveSignaled", 1},
})

// TPMAMemory represents a TPMA_MEMORY.
// See definition in Part 2: Structures, section 8.7.
type TPMAMemory uint32

var memoryAttributes = newBitfield("TPMA_MEMORY", 4, []bitDef{
	{"sharedRAM", 0}, {"sharedNV", 1}, {"objectCopiedToRam", 2},
})

// TPMAPermanent represents a TPMA_PERMANENT.
// See definition in Part 2: Structures, section 8.6.
type TPMAPermanent uint32

var permanentAttributes = newBitfield("TPMA_PERMANENT", 4, []bitDef{
	{"ownerAuthSet", 0}, {"endorsementAuthSet", 1}, {"lockoutAuthSet", 2},
	{"disableClear", 8}, {"inLockout", 9}, {"tpmGeneratedEPS", 10},
})

// TPMAStartupClear represents a TPMA_STARTUP_CLEAR.
// See definition in Part 2: Structures, section 8.7.
type TPMAStartupClear uint32

var startupClearAttributes = newBitfield("TPMA_STARTUP_CLEAR", 4, []bitDef{
	{"phEnable", 0}, {"shEnable", 1}, {"ehEnable", 2}, {"phEnableNV", 3}, {"orderly", 31},
})

// TPMAModes represents a TPMA_MODES.
type TPMAModes uint32

var modesAttributes = newBitfield("TPMA_MODES", 4, []bitDef{
	{"FIPS_140_2", 0},
})

func (TPMAAlgorithm) Bitfield() *Bitfield    { return algorithmAttributes }
func (TPMAObject) Bitfield() *Bitfield       { return objectAttributes }
func (TPMASession) Bitfield() *Bitfield      { return sessionAttributes }
func (TPMALocality) Bitfield() *Bitfield     { return localityAttributes }
func (TPMACC) Bitfield() *Bitfield           { return commandAttributes }
func (TPMANV) Bitfield() *Bitfield           { return nvAttributes }
func (TPMAACT) Bitfield() *Bitfield          { return actAttributes }
func (TPMAMemory) Bitfield() *Bitfield       { return memoryAttributes }
func (TPMAPermanent) Bitfield() *Bitfield    { return permanentAttributes }
func (TPMAStartupClear) Bitfield() *Bitfield { return startupClearAttributes }
func (TPMAModes) Bitfield() *Bitfield        { return modesAttributes }

func (a TPMAAlgorithm) String() string    { return algorithmAttributes.Format(uint64(a)) }
func (a TPMAObject) String() string       { return objectAttributes.Format(uint64(a)) }
func (a TPMASession) String() string      { return sessionAttributes.Format(uint64(a)) }
func (a TPMALocality) String() string     { return localityAttributes.Format(uint64(a)) }
func (a TPMACC) String() string           { return commandAttributes.Format(uint64(a)) }
func (a TPMANV) String() string           { return nvAttributes.Format(uint64(a)) }
func (a TPMAACT) String() string          { return actAttributes.Format(uint64(a)) }
func (a TPMAMemory) String() string       { return memoryAttributes.Format(uint64(a)) }
func (a TPMAPermanent) String() string    { return permanentAttributes.Format(uint64(a)) }
func (a TPMAStartupClear) String() string { return startupClearAttributes.Format(uint64(a)) }
func (a TPMAModes) String() string        { return modesAttributes.Format(uint64(a)) }

var attributeFamilies = map[string]*Bitfield{}

func init() {
	for _, b := range []*Bitfield{
		algorithmAttributes, objectAttributes, sessionAttributes, localityAttributes,
		commandAttributes, nvAttributes, actAttributes, memoryAttributes,
		permanentAttributes, startupClearAttributes, modesAttributes,
	} {
		attributeFamilies[b.name] = b
	}
}

// LookupBitfield returns the attribute family with the given name.
func LookupBitfield(family string) (*Bitfield, bool) {
	b, ok := attributeFamilies[family]
	return b, ok
}

// AttributeFamilies returns the names of all attribute families, sorted.
func AttributeFamilies() []string {
	names := make([]string, 0, len(attributeFamilies))
	for n := range attributeFamilies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
