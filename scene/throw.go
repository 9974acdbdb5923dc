package scene

import "github.com/pkg/errors"

// Scene files are parsed by a tree walk and a pile of small attribute helpers.
// Threading errors through all of them would bury the conversions, so the
// helpers panic with a ParseError and the public loaders recover it.

// ParseError is a problem with the contents of a scene file.
type ParseError struct {
	err error
}

func (e *ParseError) Error() string { return e.err.Error() }
func (e *ParseError) Unwrap() error { return e.err }
func (e *ParseError) Cause() error  { return e.err }

// Panic with a ParseError.
func fatalf(format string, args ...interface{}) {
	panic(&ParseError{errors.Errorf(format, args...)})
}

// Panic with a ParseError wrapping err.
func wrapf(err error, format string, args ...interface{}) {
	panic(&ParseError{errors.Wrapf(err, format, args...)})
}

// HandleParsePanicRecover converts a recovered ParseError back into an error.
// Any other panic is not ours, and is re-raised.
func HandleParsePanicRecover(r interface{}) error {
	if r != nil {
		if parseError, ok := r.(*ParseError); ok {
			return parseError
		}
		panic(r)
	}
	return nil
}
