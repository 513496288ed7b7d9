package handlers

import (
	"net/http"
	"time"

	"go-flowershop/api/middleware"
	"go-flowershop/internal/metrics"
	"go-flowershop/internal/models"
	logx "go-flowershop/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	delay time.Duration
}

// NewAuthHandler holds login and signup responses for delay, giving clients a
// consistent feedback window.
func NewAuthHandler(delay time.Duration) *AuthHandler {
	return &AuthHandler{delay: delay}
}

// wait returns false when the client went away during the delay.
func (h *AuthHandler) wait(c *gin.Context) bool {
	if h.delay <= 0 {
		return true
	}

	timer := time.NewTimer(h.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-c.Request.Context().Done():
		return false
	}
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !h.wait(c) {
		c.Abort()
		return
	}

	session := middleware.App(c).Session
	ok := session.Login(req.Email, req.Password)
	metrics.RecordAuth("login", ok)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	user, _ := session.Current()
	logx.Info().Str("session", middleware.SessionID(c)).Str("user_id", user.ID).Str("role", string(user.Role)).Msg("signed in")

	c.JSON(http.StatusOK, gin.H{
		"data":     user,
		"is_admin": session.IsAdmin(),
	})
}

// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !h.wait(c) {
		c.Abort()
		return
	}

	session := middleware.App(c).Session
	ok := session.Signup(req.Name, req.Email, req.Password)
	metrics.RecordAuth("signup", ok)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and password are required"})
		return
	}

	user, _ := session.Current()
	c.JSON(http.StatusCreated, gin.H{
		"data": user,
	})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.App(c).Session.Logout()

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed out",
	})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	session := middleware.App(c).Session
	user, ok := session.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     user,
		"is_admin": session.IsAdmin(),
	})
}

// PATCH /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	session := middleware.App(c).Session
	if !session.IsLoggedIn() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}

	var req models.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	session.UpdateProfile(req)
	user, _ := session.Current()

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"data":    user,
	})
}
