package codec

// StatusT mirrors the result enumeration of the underlying decode
// primitives.  Values are returned to callers unchanged; only zero
// indicates success.
type StatusT int

const (
	StatusSuccess StatusT = iota
	StatusBadData
	StatusShortOutput
	StatusInsufficientSpace
)

func (s StatusT) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusBadData:
		return "bad data"
	case StatusShortOutput:
		return "short output"
	case StatusInsufficientSpace:
		return "insufficient space"
	}
	return "unknown"
}
