package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const adminSubject = "admin"

// AuthHandler logs the single back-office user in against a bcrypt hash
// from configuration and issues HS256 tokens.
type AuthHandler struct {
	PasswordHash string
	Secret       string
	TTL          time.Duration

	now func() time.Time
}

func NewAuthHandler(passwordHash, secret string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{PasswordHash: passwordHash, Secret: secret, TTL: ttl, now: time.Now}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	if h.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(req.Password)) != nil {
		writeJSON(c, http.StatusUnauthorized, ApiResponse{Success: false, Message: "Invalid password"})
		return
	}

	now := h.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.TTL)),
	})
	signed, err := token.SignedString([]byte(h.Secret))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, "Login successful", gin.H{"token": signed})
}

// RequireAuth rejects requests without a valid Bearer token signed with secret.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ApiResponse{Success: false, Message: "authentication required"})
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, isHMAC := t.Method.(*jwt.SigningMethodHMAC); !isHMAC {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || claims.Subject != adminSubject {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ApiResponse{Success: false, Message: "invalid or expired token"})
			return
		}
		c.Next()
	}
}
