package interfaces

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionKeyUID      = "uid"
	sessionKeyLoggedIn = "logged_in"
)

// RequireLogin gates a route on an established session. Anonymous requests
// are redirected to the login page without an error message.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		logged, _ := sess.Get(sessionKeyLoggedIn).(bool)
		if !logged {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if uid, ok := sess.Get(sessionKeyUID).(string); ok {
			c.Set(sessionKeyUID, uid)
		}
		c.Next()
	}
}
