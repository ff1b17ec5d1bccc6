package hexcmd

import (
	"errors"
	"fmt"

	"github.com/Pavel7004/goHidCmd/pkg/domain"
)

var (
	ErrNonHex        = errors.New("non-hex value encountered")
	ErrTooManyBytes  = errors.New("too many bytes for a single write")
	ErrReaderNotOpen = errors.New("token reader is not open")
)

// IOError reports that the input file could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read input: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ValidationError names the first non-hex token of the list. Invalid holds
// every rejected token in file order, Token included.
type ValidationError struct {
	Token   domain.Token
	Invalid domain.TokenList
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNonHex, e.Token.Text)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrNonHex
}
