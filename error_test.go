package punter_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/punter"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := punter.Errorf(punter.ENOTFOUND, "unit %q not found", "Engineer")

	assert.Equal(t, punter.ENOTFOUND, punter.ErrorCode(err))
	assert.Equal(t, "unit \"Engineer\" not found", punter.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, punter.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, punter.EINTERNAL, punter.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, punter.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", punter.ErrorMessage(errors.New("boom")))
}
