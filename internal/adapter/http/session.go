package adapthttp

import (
	"net/http"

	"github.com/gorilla/securecookie"
)

const sessionCookie = "session"

// SessionManager binds a user id into a signed, client-held cookie. The
// payload is signed, not encrypted: it holds nothing confidential, only the
// id, and the signature makes it tamper-evident.
type SessionManager struct {
	codec *securecookie.SecureCookie
}

// NewSessionManager creates a SessionManager keyed with the given secret.
func NewSessionManager(secret []byte) *SessionManager {
	// nil block key disables encryption; the codec only signs.
	return &SessionManager{codec: securecookie.New(secret, nil)}
}

// Establish replaces any prior session with one holding exactly the given
// user id, so an identity switch never inherits earlier state.
func (m *SessionManager) Establish(w http.ResponseWriter, userID int64) error {
	encoded, err := m.codec.Encode(sessionCookie, userID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear removes the session cookie.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// UserID extracts the bound user id from the request. A missing, expired, or
// tampered cookie reads as no identity.
func (m *SessionManager) UserID(r *http.Request) (int64, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return 0, false
	}
	var id int64
	if err := m.codec.Decode(sessionCookie, cookie.Value, &id); err != nil {
		return 0, false
	}
	return id, true
}
