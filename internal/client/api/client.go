// Package api talks to the remote identity authority. It exposes a small
// Client interface so the submitter can be tested against fakes, plus the
// HTTP implementation used in production.
package api

import (
	"context"

	"github.com/dmitrijs2005/chatline/internal/client/session"
)

// SignUpRequest is the account-creation payload. ProfileImage carries the
// asset reference resolved by the uploader, verbatim.
type SignUpRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ProfileImage string `json:"profileImage"`
}

// Client is the authority boundary. Implementations return the sentinel
// errors from errors.go; collapsing them into the user-facing taxonomy is
// the submitter's job, so the underlying cause stays observable here.
type Client interface {
	SignIn(ctx context.Context, email, password string) (*session.Session, error)
	SignUp(ctx context.Context, req SignUpRequest) (*session.AccountRecord, error)
}
