package scene

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleParsePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleParsePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
		var parseError *ParseError
		assert.ErrorAs(t, err, &parseError)
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestWrapf(t *testing.T) {
	_, cause := strconv.ParseFloat("nope", 64)
	require.Error(t, cause)

	err := func() (err error) {
		defer func() {
			err = HandleParsePanicRecover(recover())
		}()
		wrapf(cause, "attribute %q", "cx")
		return nil
	}()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `attribute "cx"`)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Cause(err))
}
