// Package bootstrap makes the one-time surface decision at application
// start: a stored session sends the user straight to the chat surface,
// anything else lands on the authentication entry surface.
package bootstrap

import (
	"context"
	"time"

	"github.com/dmitrijs2005/chatline/internal/client/session"
	"github.com/dmitrijs2005/chatline/internal/logging"
)

// Surface is an addressable view of the client.
type Surface string

const (
	SurfaceAuth Surface = "auth"
	SurfaceChat Surface = "chat"
)

// Router reads the session store once per activation. It never writes.
type Router struct {
	store session.Store
	log   logging.Logger
}

func NewRouter(store session.Store, log logging.Logger) *Router {
	return &Router{store: store, log: log}
}

// Route inspects the store and picks the surface to show. The check runs
// exactly once per call; a session revoked elsewhere is not noticed until
// the next activation. An expired token only produces a warning — routing
// is decided by presence alone.
func (r *Router) Route(ctx context.Context) Surface {
	sess, err := r.store.Get(ctx)
	if err != nil || sess == nil {
		return SurfaceAuth
	}

	if exp, ok := sess.TokenExpiry(); ok && time.Now().After(exp) {
		r.log.Warn(ctx, "stored session token is past its expiry", "identity", sess.Email, "expired_at", exp)
	}

	return SurfaceChat
}
