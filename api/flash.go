package api

import (
	"net/http"

	"github.com/gorilla/securecookie"
)

const flashCookieName = "portfolio_flash"

// flashStore keeps one-time messages in a signed cookie that is cleared on first read.
type flashStore struct {
	codec  *securecookie.SecureCookie
	secure bool
}

func newFlashStore(hashKey []byte, secure bool) flashStore {
	codec := securecookie.New(hashKey, nil)
	codec.MaxAge(300)
	return flashStore{codec: codec, secure: secure}
}

func (f flashStore) Set(w http.ResponseWriter, message string) error {
	encoded, err := f.codec.Encode(flashCookieName, message)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the pending message, if any, and expires the cookie.
// Tampered or expired cookies read as no message.
func (f flashStore) Pop(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	})

	var message string
	if err := f.codec.Decode(flashCookieName, cookie.Value, &message); err != nil {
		return ""
	}
	return message
}
