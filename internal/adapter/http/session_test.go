package adapthttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestSessionRoundtrip(t *testing.T) {
	m := NewSessionManager([]byte("test-secret"))

	rec := httptest.NewRecorder()
	require.NoError(t, m.Establish(rec, 42))
	cookie := sessionCookieFrom(t, rec)
	require.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	id, ok := m.UserID(req)
	require.True(t, ok)
	require.Equal(t, int64(42), id)
}

func TestSessionTamperRejected(t *testing.T) {
	m := NewSessionManager([]byte("test-secret"))

	rec := httptest.NewRecorder()
	require.NoError(t, m.Establish(rec, 42))
	cookie := sessionCookieFrom(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: cookie.Value + "x"})

	_, ok := m.UserID(req)
	require.False(t, ok)
}

func TestSessionForeignKeyRejected(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, NewSessionManager([]byte("key-one")).Establish(rec, 42))
	cookie := sessionCookieFrom(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	_, ok := NewSessionManager([]byte("key-two")).UserID(req)
	require.False(t, ok)
}

func TestSessionAbsent(t *testing.T) {
	m := NewSessionManager([]byte("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := m.UserID(req)
	require.False(t, ok)
}

func TestSessionClear(t *testing.T) {
	m := NewSessionManager([]byte("test-secret"))

	rec := httptest.NewRecorder()
	m.Clear(rec)
	cookie := sessionCookieFrom(t, rec)
	require.Equal(t, -1, cookie.MaxAge)
	require.Empty(t, cookie.Value)
}
