package seed

// Error is the error kind returned when decoding generator state.
type Error uint8

const (
	_              Error = iota // non-initialized err
	ErrInvalidSeed              // seed maps to an absorbing state
	ErrStateLength              // raw state has the wrong size
)

func (err Error) Error() string {
	switch err {
	case ErrInvalidSeed:
		return "invalid seed"
	case ErrStateLength:
		return "wrong state length"
	}
	return "seed: unknown error"
}
