package auth

import "errors"

// Validation-class errors are resolved entirely client-side and never reach
// the network; network-class errors deliberately collapse every cause into
// one generic message per flow so the UI leaks nothing about which part
// failed. Each message below is shown to the user as-is.
var (
	ErrMissingFields   = errors.New("please fill all the fields")
	ErrInvalidIdentity = errors.New("please enter a valid email address")
	ErrWeakSecret      = errors.New("password must be at least 8 characters and include at least one uppercase letter, one lowercase letter, one digit, and one special character")
	ErrSecretMismatch  = errors.New("passwords do not match")

	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrAccountCreationFailed = errors.New("something went wrong, please try again later")
)
