// Package auth orchestrates the sign-in and sign-up flows: it gathers form
// state, runs validation, waits for the asset upload during registration,
// talks to the identity authority, and persists the outcome. It is the only
// writer of the session store.
package auth

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/chatline/internal/client/api"
	"github.com/dmitrijs2005/chatline/internal/client/session"
	"github.com/dmitrijs2005/chatline/internal/client/validate"
	"github.com/dmitrijs2005/chatline/internal/logging"
)

// AssetResolver is the slice of the uploader the submitter needs: block
// until the current upload attempt settles, and drop state after a
// completed sign-up.
type AssetResolver interface {
	Resolve(ctx context.Context) (string, error)
	Reset()
}

// SignInForm carries the sign-in fields. Values are transient; the caller
// owns them and must not reuse the password after submission.
type SignInForm struct {
	Email    string
	Password string
}

// SignUpForm carries the sign-up fields. The asset reference is not part of
// the form; it is resolved through the uploader at submission time.
type SignUpForm struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

// Submitter runs the credential flows. Validation happens inside the
// submitter itself, so holding a reference to it is not enough to bypass
// the client-side gates.
type Submitter struct {
	api      api.Client
	uploader AssetResolver
	store    session.Store
	log      logging.Logger

	mu    sync.Mutex
	state State
}

func NewSubmitter(apiClient api.Client, uploader AssetResolver, store session.Store, log logging.Logger) *Submitter {
	return &Submitter{
		api:      apiClient,
		uploader: uploader,
		store:    store,
		log:      log,
		state:    StateIdle,
	}
}

// State reports the current flow state.
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reset returns the submitter to idle, e.g. when the form is torn down.
func (s *Submitter) Reset() {
	s.setState(StateIdle)
}

func (s *Submitter) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Submitter) fail(err error) error {
	s.setState(StateFailed)
	return err
}

// SignIn exchanges the form's credentials for a session and persists it.
// Empty fields fail fast with ErrMissingFields and no network call. Every
// authority failure, from wrong password to unreachable server, surfaces
// uniformly as ErrInvalidCredentials; the distinction is logged here but
// not shown to the user, so the flow does not reveal whether an account
// exists. A failed attempt leaves the submitter retryable with no lockout.
func (s *Submitter) SignIn(ctx context.Context, form SignInForm) (*session.Session, error) {
	s.setState(StateValidating)

	if form.Email == "" || form.Password == "" {
		return nil, s.fail(ErrMissingFields)
	}

	s.setState(StateSubmitting)

	sess, err := s.api.SignIn(ctx, form.Email, form.Password)
	if err != nil {
		s.log.Warn(ctx, "sign-in failed", "identity", form.Email, "cause", err)
		return nil, s.fail(ErrInvalidCredentials)
	}

	if err := s.store.Set(ctx, sess); err != nil {
		// The session is valid for this run even if it could not be
		// persisted; the next start will simply ask for credentials again.
		s.log.Error(ctx, "session not persisted", "cause", err)
	}

	s.log.Info(ctx, "signed in", "identity", sess.Email)
	s.setState(StateSucceeded)
	return sess, nil
}

// SignUp validates the form in a fixed order, waits for the asset upload to
// resolve, and asks the authority to create the account. The first failing
// check wins and nothing is transmitted before all checks pass. On success
// the returned account record is persisted, but no session is established:
// account creation and authentication stay separate, and the user signs in
// explicitly afterwards.
func (s *Submitter) SignUp(ctx context.Context, form SignUpForm) (*session.AccountRecord, error) {
	s.setState(StateValidating)

	if !validate.IsIdentityValid(form.Email) {
		return nil, s.fail(ErrInvalidIdentity)
	}
	if !validate.IsSecretValid(form.Password) {
		return nil, s.fail(ErrWeakSecret)
	}

	// The submission must never race ahead of an unresolved upload.
	s.setState(StateAwaitingAsset)
	ref, err := s.uploader.Resolve(ctx)
	if err != nil {
		s.log.Warn(ctx, "asset not resolved", "cause", err)
		return nil, s.fail(err)
	}

	if form.Name == "" || form.Email == "" || form.Password == "" ||
		form.PasswordConfirm == "" || ref == "" {
		return nil, s.fail(ErrMissingFields)
	}
	if form.Password != form.PasswordConfirm {
		return nil, s.fail(ErrSecretMismatch)
	}

	s.setState(StateSubmitting)

	rec, err := s.api.SignUp(ctx, api.SignUpRequest{
		Name:         form.Name,
		Email:        form.Email,
		Password:     form.Password,
		ProfileImage: ref,
	})
	if err != nil {
		s.log.Warn(ctx, "sign-up failed", "identity", form.Email, "cause", err)
		return nil, s.fail(ErrAccountCreationFailed)
	}

	if err := s.store.SetAccount(ctx, rec); err != nil {
		s.log.Error(ctx, "account record not persisted", "cause", err)
	}

	s.uploader.Reset()
	s.log.Info(ctx, "account created", "identity", rec.Email)
	s.setState(StateSucceeded)
	return rec, nil
}
