package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/chatline/internal/client/api"
	"github.com/dmitrijs2005/chatline/internal/client/auth"
	"github.com/dmitrijs2005/chatline/internal/client/bootstrap"
	"github.com/dmitrijs2005/chatline/internal/client/session"
	"github.com/dmitrijs2005/chatline/internal/client/upload"
	"github.com/dmitrijs2005/chatline/internal/logging"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func testLogger() logging.Logger {
	return logging.New(io.Discard, slog.LevelDebug)
}

// Full sign-in flow against an authority that rejects the credentials: the
// outcome is uniform, the store stays untouched, and bootstrap keeps the
// user on the authentication surface.
func TestFlow_SignInRejected(t *testing.T) {
	authority := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer authority.Close()

	log := testLogger()
	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"), log)
	require.NoError(t, err)

	uploader := upload.New("http://unused.invalid", "chatline", "chatline", 0, log)
	submitter := auth.NewSubmitter(api.NewHTTPClient(authority.URL, 0, log), uploader, store, log)
	router := bootstrap.NewRouter(store, log)
	ctx := context.Background()

	_, err = submitter.SignIn(ctx, auth.SignInForm{Email: "a@b.com", Password: "x"})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Equal(t, auth.StateFailed, submitter.State())

	sess, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess, "session store must be unchanged after a rejected sign-in")

	assert.Equal(t, bootstrap.SurfaceAuth, router.Route(ctx))
}

// Full sign-up flow: the image resolves through the hosting service before
// the account request goes out, the payload carries the resolved URL
// verbatim, an account record is persisted, and no session is established —
// the user still signs in explicitly afterwards.
func TestFlow_SignUpSucceeded(t *testing.T) {
	hosting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://host/img123.png"})
	}))
	defer hosting.Close()

	var gotSignUp map[string]string
	authority := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/user", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotSignUp))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"_id":          "u7",
			"name":         gotSignUp["name"],
			"email":        gotSignUp["email"],
			"profileImage": gotSignUp["profileImage"],
		})
	}))
	defer authority.Close()

	log := testLogger()
	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"), log)
	require.NoError(t, err)

	uploader := upload.New(hosting.URL, "chatline", "chatline", 0, log)
	submitter := auth.NewSubmitter(api.NewHTTPClient(authority.URL, 0, log), uploader, store, log)
	router := bootstrap.NewRouter(store, log)
	ctx := context.Background()

	require.NoError(t, uploader.Select(ctx, &upload.Asset{
		Name: "img123.png", MediaType: "image/png", Data: pngBytes,
	}))

	rec, err := submitter.SignUp(ctx, auth.SignUpForm{
		Name:            "Alice",
		Email:           "alice@example.com",
		Password:        "Str0ng&Secret",
		PasswordConfirm: "Str0ng&Secret",
	})
	require.NoError(t, err)
	assert.Equal(t, auth.StateSucceeded, submitter.State())
	assert.Equal(t, "https://host/img123.png", gotSignUp["profileImage"])
	assert.Equal(t, "https://host/img123.png", rec.ProfileImage)

	sess, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess, "account creation must not establish a session")

	persisted, err := store.GetAccount(ctx)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "alice@example.com", persisted.Email)

	assert.Equal(t, bootstrap.SurfaceAuth, router.Route(ctx),
		"after sign-up the user lands on the authentication surface")
}
