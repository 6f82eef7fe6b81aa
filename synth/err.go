package synth

import (
	"github.com/ezrec/mipsvec/translate"
)

var f = translate.From

// ErrRandomSource indicates the entropy source could not be read.
type ErrRandomSource struct {
	Err error
}

func (err *ErrRandomSource) Error() string {
	return f("random source unavailable: %v", err.Err)
}

func (err *ErrRandomSource) Unwrap() error {
	return err.Err
}
