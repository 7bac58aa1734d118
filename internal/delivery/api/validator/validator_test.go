package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Token    string `json:"token" validate:"required,min=10"`
	Platform string `json:"platform" validate:"required,oneof=android ios web"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Token: "0123456789", Platform: "web"}))

	err := v.Validate(&sampleRequest{Token: "short", Platform: "symbian"})
	require.Error(t, err)

	details := Details(err)
	require.Len(t, details, 2)
	assert.Equal(t, FieldError{Field: "token", Rule: "min", Param: "10"}, details[0])
	assert.Equal(t, FieldError{Field: "platform", Rule: "oneof", Param: "android ios web"}, details[1])
}

func TestDetails_NonValidationError(t *testing.T) {
	assert.Nil(t, Details(errors.New("boom")))
}
