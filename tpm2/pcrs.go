package tpm2

// PC Client TPMs implement at least 24 PCRs, and reject selections that are
// too short to cover all of them.
const pcClientMinimumPCRCount = 24

// NewPCRSelection builds a PC Client compatible selection of the given PCRs.
// The bitmap is at least 3 bytes long. PCR n is bit n%8 of byte n/8.
func NewPCRSelection(hash TPMIAlgHash, pcrs ...int) (TPMSPCRSelection, error) {
	maxPCR := 0
	for _, pcr := range pcrs {
		if pcr < 0 || pcr >= 8*255 {
			return TPMSPCRSelection{}, unencodable("TPMS_PCR_SELECTION", "invalid PCR index %d", pcr)
		}
		if pcr > maxPCR {
			maxPCR = pcr
		}
	}
	size := maxPCR/8 + 1
	if size < pcClientMinimumPCRCount/8 {
		size = pcClientMinimumPCRCount / 8
	}
	sel := make([]byte, size)
	for _, pcr := range pcrs {
		sel[pcr/8] |= 1 << (pcr % 8)
	}
	return TPMSPCRSelection{Hash: hash, PCRSelect: sel}, nil
}

// PCRs returns the selected PCR indices in ascending order.
func (s TPMSPCRSelection) PCRs() []int {
	var pcrs []int
	for i, b := range s.PCRSelect {
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) != 0 {
				pcrs = append(pcrs, 8*i+bit)
			}
		}
	}
	return pcrs
}
