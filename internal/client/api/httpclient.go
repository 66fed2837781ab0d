package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dmitrijs2005/chatline/internal/client/session"
	"github.com/dmitrijs2005/chatline/internal/logging"
)

const (
	signInPath = "/api/user/login"
	signUpPath = "/api/user"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HTTPClient is the resty-backed Client.
type HTTPClient struct {
	rc  *resty.Client
	log logging.Logger
}

// NewHTTPClient builds a client against baseURL. A zero timeout leaves the
// transport's own limits in effect.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	return &HTTPClient{rc: rc, log: log}
}

// SignIn exchanges credentials for a session. Exactly one request is issued
// per call; retrying is left to the user.
func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	var s session.Session

	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(&signInRequest{Email: email, Password: password}).
		SetResult(&s).
		Post(signInPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !resp.IsSuccess() {
		c.log.Debug(ctx, "sign-in rejected", "status", resp.StatusCode())
		return nil, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode())
	}
	if s.Token == "" {
		return nil, fmt.Errorf("%w: response carries no token", ErrMalformedResponse)
	}
	return &s, nil
}

// SignUp asks the authority to create an account and returns the account
// record from the response body.
func (c *HTTPClient) SignUp(ctx context.Context, req SignUpRequest) (*session.AccountRecord, error) {
	var rec session.AccountRecord

	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(&req).
		SetResult(&rec).
		Post(signUpPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !resp.IsSuccess() {
		c.log.Debug(ctx, "sign-up rejected", "status", resp.StatusCode())
		return nil, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode())
	}
	if rec.Email == "" {
		return nil, fmt.Errorf("%w: response carries no account record", ErrMalformedResponse)
	}
	return &rec, nil
}
