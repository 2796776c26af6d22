package internal

import "github.com/pkg/errors"

// Threading write errors through every component emitter would add a lot of
// noise to the render walk. Instead, emitters panic, and the public render API
// recovers to convert to an error.

// Wraps the error carried by a render panic, so that runtime errors raised by
// genuine bugs are not mistaken for one.
type RenderError struct {
	Err error
}

// Panic with a RenderError.
func Fatalf(format string, args ...interface{}) {
	panic(RenderError{errors.Errorf(format, args...)})
}

// Panic with err, annotated with a message. Nil errors are ignored.
func Throw(err error, format string, args ...interface{}) {
	if err == nil {
		return
	}
	panic(RenderError{errors.Wrapf(err, format, args...)})
}

func HandleRenderPanicRecover(r interface{}) error {
	if r != nil {
		if renderError, ok := r.(RenderError); ok {
			return renderError.Err
		}
		panic(r)
	}
	return nil
}
