package site

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mtmuztaba/portfolio/internal/session"
)

const (
	sessionCookie = "portfolio_session"
	sessionKey    = "session_id"
	sessionMaxAge = 3600 * 24 * 30
)

// sessionMiddleware makes sure every page request carries a session id.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || !session.ValidID(id) {
			id = session.NewID()
		}
		// refresh the expiry on every request
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		c.Set(sessionKey, id)
		c.Next()
	}
}

// updateState applies fn to the caller's UI state and saves it, serialized
// with every other request of the same session. On failure it has already
// written the error response.
func (s *Server) updateState(c *gin.Context, fn func(*session.State)) (*session.State, bool) {
	st, err := s.store.Update(c.Request.Context(), c.GetString(sessionKey), func(st *session.State) error {
		fn(st)
		return nil
	})
	if err != nil {
		log.Printf("Error updating session: %v", err)
		c.HTML(http.StatusInternalServerError, "error", gin.H{"error": "Something went wrong. Please reload the page."})
		return nil, false
	}
	return st, true
}

func (s *Server) saveState(c *gin.Context, st *session.State) bool {
	if err := s.store.Save(c.Request.Context(), c.GetString(sessionKey), st); err != nil {
		log.Printf("Error saving session: %v", err)
		c.HTML(http.StatusInternalServerError, "error", gin.H{"error": "Something went wrong. Please reload the page."})
		return false
	}
	return true
}
