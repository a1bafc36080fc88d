package tabrip_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/tabrip"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := tabrip.Errorf(tabrip.ENOTFOUND, "tab %q not found", "test")

	assert.Equal(t, tabrip.ENOTFOUND, tabrip.ErrorCode(err))
	assert.Equal(t, "tab \"test\" not found", tabrip.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tabrip.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, tabrip.EINTERNAL, tabrip.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tabrip.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error", tabrip.ErrorMessage(errors.New("boom")))
}
