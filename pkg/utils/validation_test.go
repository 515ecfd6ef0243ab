package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Seat  string `validate:"required,max=5"`
	Class string `validate:"omitempty,oneof=Economy Business First"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Email: "jordan@example.com", Seat: "12A"})
	assert.Nil(t, errs)

	errs = ValidateStruct(sampleRequest{Email: "not-an-email", Class: "Premium"})
	require.NotNil(t, errs)
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "This field is required", errs["Seat"])
	assert.Contains(t, errs["Class"], "Must be one of")
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 25, ParseInt("25", 1))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-3", 10))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}
