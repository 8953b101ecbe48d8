package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/junsalon/salon-api/internal/config"
	"github.com/junsalon/salon-api/internal/httperr"
)

// Single-operator login: credentials come from configuration, not a user
// table. Account management stays out of scope.
type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if h.config.AdminPwdHash == "" || email != strings.ToLower(h.config.AdminEmail) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(h.config.AdminPwdHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	claims := jwt.MapClaims{
		"sub":  email,
		"role": "operator",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not generate token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed})
}
