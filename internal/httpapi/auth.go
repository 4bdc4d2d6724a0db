package httpapi

import (
	"net/http"

	userapp "github.com/dwikikusuma/shopfront/internal/user/app"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into dst. A decode failure is reported as
// invalid input on the body.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, apperr.Invalid("body", err.Error()))
		return false
	}
	return true
}

func (h *handler) register(c *gin.Context) {
	var in userapp.RegisterInput
	if !bindJSON(c, &in) {
		return
	}

	sess, err := h.users.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   sess.Token,
		"user":    sess.User,
	})
}

func (h *handler) login(c *gin.Context) {
	var in userapp.LoginInput
	if !bindJSON(c, &in) {
		return
	}

	sess, err := h.users.Login(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   sess.Token,
		"user":    sess.User,
	})
}

func (h *handler) logout(c *gin.Context) {
	if err := h.users.Logout(c.Request.Context(), userID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
