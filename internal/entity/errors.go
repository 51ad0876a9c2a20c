package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrEmailTaken   = errors.New("email already in use")
)

var (
	ErrEmailInvalid          = errors.New("invalid email")
	ErrPINInvalid            = errors.New("invalid pin")
	ErrPhoneInvalid          = errors.New("invalid phone")
	ErrIdentificationInvalid = errors.New("invalid identification")
	ErrRoleInvalid           = errors.New("invalid role")
	ErrSectionInvalid        = errors.New("invalid section")
)

var (
	ErrSelfDelete        = errors.New("cannot delete current user")
	ErrRowPending        = errors.New("row has a pending change")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrEditFailed        = errors.New("edit failed")
	ErrDeleteFailed      = errors.New("delete failed")
	ErrCreateFailed      = errors.New("create failed")
	ErrProvisionFailed   = errors.New("provision failed")
)

var (
	ErrStateMismatch = errors.New("federated state mismatch")
	ErrNoSession     = errors.New("no session")
)

// RemoteError is a failure reported by the identity provider or a privileged function.
// Message is the remote text as received.
type RemoteError struct {
	Service string
	Status  string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s: %s: %s", e.Service, e.Status, e.Message)
	}

	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

// RemoteMessage returns the remote text carried by err, if any.
func RemoteMessage(err error) (string, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Message, true
	}

	return "", false
}
