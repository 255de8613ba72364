package prefs

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	visitorCookie = "portfolio_visitor"
	visitorExpiry = 365 * 24 * time.Hour
)

// VisitorID returns the visitor's id from its cookie, issuing a new one if the
// cookie is absent or malformed.
func VisitorID(w http.ResponseWriter, r *http.Request) string {
	if ck, err := r.Cookie(visitorCookie); err == nil {
		if id, err := uuid.Parse(ck.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(visitorExpiry),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
