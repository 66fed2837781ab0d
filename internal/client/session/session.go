// Package session defines the locally persisted authentication state and the
// stores that hold it. At most one session exists at a time; sign-in is the
// only writer, everything else only reads.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the proof of a successful sign-in plus cached profile data, in
// the shape the identity authority returns it.
type Session struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
	Token        string `json:"token"`
}

// AccountRecord is what the authority returns from account creation. It is
// persisted for reference but deliberately does not establish a session;
// the user signs in explicitly afterwards.
type AccountRecord struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

// TokenExpiry returns the expiry claim carried by the session token, if the
// token is a JWT with one. The token is treated as opaque otherwise, and it
// is never verified client-side; the claim is advisory (used for a warning
// at bootstrap, never for routing).
func (s *Session) TokenExpiry() (time.Time, bool) {
	if s == nil || s.Token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
