package handlers

import (
	"context"
	"net/http"

	"github.com/you/pathfinder/session"
)

// SessionCookie names the cookie carrying the session id
const SessionCookie = "pathfinder_session"

type sessionKey struct{}

// withSession attaches the caller's session to the request context,
// issuing a new one (and its cookie) when none is known
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(SessionCookie); err == nil {
			id = c.Value
		}

		sess, created := h.sessions.GetOrCreate(id)
		if created {
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			h.logger.Debug("session created", "session_id", sess.ID)
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(r *http.Request) *session.Session {
	return r.Context().Value(sessionKey{}).(*session.Session)
}
