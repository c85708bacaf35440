package inference

import "errors"

var (
	ErrDimensionMismatch = errors.New("feature vector dimension mismatch")
	ErrInvalidModel      = errors.New("invalid model file")
)
