package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var errSink = errors.New("sink closed")

func TestHandleRenderPanicRecover(t *testing.T) {
	testFn := func(shouldThrow, shouldWrap, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleRenderPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			Fatalf("kaboom!")
		}

		if shouldWrap {
			Throw(errSink, "write %s", "text")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with wrapped error", func(t *testing.T) {
		err := testFn(false, true, false)
		assert.EqualError(t, err, "write text: sink closed")
		assert.True(t, errors.Is(err, errSink))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false, false)
		assert.NoError(t, err)
	})
}

func TestThrowNil(t *testing.T) {
	assert.NotPanics(t, func() {
		Throw(nil, "nothing to see")
	})
}

func TestRuntimeErrorIsNotRecovered(t *testing.T) {
	assert.Panics(t, func() {
		defer func() {
			_ = HandleRenderPanicRecover(recover())
		}()
		var m map[string]int
		m["boom"] = 1
	})
}
