package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	assert.Equal(t, "product not found", NotFound("product not found").Error())

	wrapped := New(errors.New("boom"), http.StatusBadGateway, "upstream failed")
	assert.Equal(t, "upstream failed: boom", wrapped.Error())
}

func TestAppErrorUnwrapChain(t *testing.T) {
	base := errors.New("dial tcp")
	err := fmt.Errorf("publish: %w", WrapRedis(base))

	assert.ErrorIs(t, err, base)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, http.StatusConflict, Resolve(Conflict("out of stock")).Status)

	plain := Resolve(errors.New("unexpected"))
	assert.Equal(t, http.StatusInternalServerError, plain.Status)
	assert.Equal(t, SystemErrorMessage, plain.Message)
}

func TestWrapRedisNil(t *testing.T) {
	assert.NoError(t, WrapRedis(nil))
}
