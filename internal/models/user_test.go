package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	u := &UserProfile{Email: "ana.garcia@test.io", Username: "ana"}
	assert.Equal(t, "ana", u.DisplayName())

	u.Username = ""
	assert.Equal(t, "ana.garcia", u.DisplayName())

	u.Email = "not-an-email"
	assert.Equal(t, "not-an-email", u.DisplayName())
}
