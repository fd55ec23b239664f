package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcspirits/spirits-api/internal/errors"
)

func TestErrorString(t *testing.T) {
	err := errors.NotFound("monster not found")
	assert.Equal(t, "NOT_FOUND: monster not found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("dial tcp: refused"), "failed to load monster")
	assert.Equal(t, "INTERNAL: failed to load monster: dial tcp: refused", wrapped.Error())
}

func TestWrapPreservesCode(t *testing.T) {
	base := errors.NotFound("card not found").WithMeta("card_id", "card_1")
	wrapped := errors.Wrap(base, "failed to resolve card")

	assert.True(t, errors.IsNotFound(wrapped))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(wrapped))
	assert.Equal(t, "card_1", errors.GetMeta(wrapped)["card_id"])
}

func TestWrapWithCode(t *testing.T) {
	cause := fmt.Errorf("redis: nil")
	err := errors.WrapWithCode(cause, errors.CodeNotFound, "simulation not found")

	assert.True(t, errors.IsNotFound(err))
	assert.ErrorIs(t, err, cause)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
	assert.Nil(t, errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
}

func TestGetCodeOnForeignError(t *testing.T) {
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, errors.CodeNotFound.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, errors.CodeInvalidArgument.HTTPStatus())
	assert.Equal(t, http.StatusConflict, errors.CodeAlreadyExists.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, errors.Code("BOGUS").HTTPStatus())
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("Name").
		InvalidField("ShopSize", "must be positive").
		Build()

	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Name: is required")
	assert.Contains(t, err.Error(), "ShopSize")

	assert.NoError(t, errors.NewValidationBuilder().Build())
}
