package interfaces

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"resume-screener/auth"
)

// AuthHandler serves the public pages and the session login/logout endpoints.
type AuthHandler struct {
	verifier auth.TokenVerifier
}

func NewAuthHandler(router *gin.Engine, verifier auth.TokenVerifier) *AuthHandler {
	h := &AuthHandler{verifier: verifier}

	router.GET("/", h.Home)
	router.GET("/login", h.LoginPage)
	router.GET("/forgot-password", h.ForgotPasswordPage)
	router.GET("/logout", h.Logout)
	router.POST("/sessionLogin", h.SessionLogin)

	return h
}

func (h *AuthHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *AuthHandler) ForgotPasswordPage(c *gin.Context) {
	c.HTML(http.StatusOK, "forgot_password.html", nil)
}

// SessionLogin verifies the posted ID token and establishes the session.
func (h *AuthHandler) SessionLogin(c *gin.Context) {
	var req struct {
		IDToken string `json:"idToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": err.Error()})
		return
	}

	uid, err := h.verifier.Verify(c.Request.Context(), req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": err.Error()})
		return
	}

	sess := sessions.Default(c)
	sess.Set(sessionKeyUID, uid)
	sess.Set(sessionKeyLoggedIn, true)
	if err := sess.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to save session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
