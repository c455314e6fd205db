package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	assert.True(t, Date("2024-05-01"))
	assert.False(t, Date("2024-5-1"))
	assert.False(t, Date("May 1, 2024"))
	assert.False(t, Date(""))
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("a@x.com"))
	assert.False(t, Email("not-an-email"))
}

func TestValidate_ReportsFieldTags(t *testing.T) {
	type req struct {
		Email string `validate:"required,email"`
	}
	errs := Validate(req{Email: "nope"})
	assert.Equal(t, map[string]string{"Email": "email"}, errs)
	assert.Nil(t, Validate(req{Email: "a@x.com"}))
}
