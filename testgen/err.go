package testgen

import (
	"errors"

	"github.com/ezrec/mipsvec/translate"
)

var f = translate.From

var (
	// Template errors
	ErrSynthesizerMissing = errors.New(f("no synthesizer for placeholder"))

	// Pool errors
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrPoolSize        = errors.New(f("pool size invalid"))

	// Configuration errors
	ErrSetMissing = errors.New(f("instruction set missing"))
	ErrLabelEmpty = errors.New(f("label empty"))
	ErrConfigType = errors.New(f("wrong type"))
)

// ErrTemplate names the template that could not be substituted.
type ErrTemplate struct {
	Template string
	Err      error
}

func (err *ErrTemplate) Error() string {
	return f("template '%v' %v", err.Template, err.Err)
}

func (err *ErrTemplate) Unwrap() error {
	return err.Err
}

// ErrSubsetSize indicates a permutation subset larger than its source.
type ErrSubsetSize struct {
	Subset    int
	Available int
}

func (err *ErrSubsetSize) Error() string {
	return f("subset size %d invalid for %d distinguishing templates", err.Subset, err.Available)
}

// ErrConfig locates an invalid configuration value.
type ErrConfig struct {
	Name string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("config %v: %v", err.Name, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
