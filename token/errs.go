package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrInvalidDigit    = errors.New("digit expected")
	ErrLeadingZero     = errors.New("leading zero")
	ErrNegativeZero    = errors.New("negative zero")
	ErrIntegerOverflow = errors.New("integer overflow")
)

// ScanError tags a lexical failure with the offset of first detection.
type ScanError struct {
	Err error
	Pos Pos
}

func NewScanError(e error, p *Pos) *ScanError {
	return &ScanError{Err: e, Pos: *p}
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewScanError(fmt.Errorf("%w: %s", ErrUnexpectedToken, what), p)
}
