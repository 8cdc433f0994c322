package biometric

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNone(t *testing.T) {
	c := None()

	assert.False(t, c.HasHardware())
	assert.False(t, c.IsEnrolled())
	assert.ErrorIs(t, c.Authenticate(context.Background(), "Unlock"), ErrNotAvailable)
}

func TestTrusted(t *testing.T) {
	c := Trusted()

	assert.True(t, c.HasHardware())
	assert.True(t, c.IsEnrolled())
	assert.NoError(t, c.Authenticate(context.Background(), "Unlock"))
}
