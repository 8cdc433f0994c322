// Package biometric abstracts the device biometric capability the session
// layer consumes. The core never verifies a secret itself on the biometric
// path: it asks the platform "do I have hardware and enrolled biometrics,
// and does the holder pass?" and trusts the answer.
package biometric

import (
	"context"
	"errors"
)

var (
	ErrNotAvailable = errors.New("biometric hardware not available")
	ErrFailed       = errors.New("biometric authentication failed")
)

type Capability interface {
	// HasHardware reports whether the device has biometric hardware.
	HasHardware() bool
	// IsEnrolled reports whether the device holder has enrolled
	// biometrics.
	IsEnrolled() bool
	// Authenticate prompts the device holder and returns nil on a
	// successful match.
	Authenticate(ctx context.Context, prompt string) error
}

// None is the capability of a device without biometric hardware. Biometric
// login is simply unavailable.
func None() Capability {
	return noneCapability{}
}

type noneCapability struct{}

func (noneCapability) HasHardware() bool { return false }

func (noneCapability) IsEnrolled() bool { return false }

func (noneCapability) Authenticate(context.Context, string) error {
	return ErrNotAvailable
}

// Trusted always confirms the holder. It stands in for real hardware on
// development machines and is selected with BIOMETRIC_MODE=trusted.
func Trusted() Capability {
	return trustedCapability{}
}

type trustedCapability struct{}

func (trustedCapability) HasHardware() bool { return true }

func (trustedCapability) IsEnrolled() bool { return true }

func (trustedCapability) Authenticate(context.Context, string) error { return nil }
