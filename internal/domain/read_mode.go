package domain

// ReadMode is the consistency a caller asks for on a read path.
type ReadMode string

const (
	ReadModeStrong   ReadMode = "strong"
	ReadModeEventual ReadMode = "eventual"
	ReadModeWeak     ReadMode = "weak"
)

// ParseReadMode converts a query value to a ReadMode.
// Empty or unrecognized values fall back to def.
func ParseReadMode(value string, def ReadMode) ReadMode {
	switch ReadMode(value) {
	case ReadModeStrong, ReadModeEventual, ReadModeWeak:
		return ReadMode(value)
	default:
		return def
	}
}

// IsRelaxed returns true if the mode tolerates a stale copy.
func (m ReadMode) IsRelaxed() bool {
	return m == ReadModeEventual || m == ReadModeWeak
}
