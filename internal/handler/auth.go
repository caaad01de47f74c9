package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-catalog/internal/config"
	"github.com/iliyamo/course-catalog/internal/store"
	"github.com/iliyamo/course-catalog/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Store store.Store
}

func NewAuthHandler(cfg config.Config, s store.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Store: s}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginData struct {
	Token string   `json:"token"`
	User  userPart `json:"user"`
}

type userPart struct {
	ID        uint64     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// Login verifies credentials and returns a signed session token. The token
// asserts {userId, username} and expires TokenTTL from now. A successful
// login also stamps the user's lastLogin.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return respondError(c, http.StatusBadRequest, "Username and password are required")
	}

	ctx := c.Request().Context()
	u, err := h.Store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return respondError(c, http.StatusUnauthorized, "Invalid credentials")
		}
		return respondError(c, http.StatusInternalServerError, "query failed")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return respondError(c, http.StatusUnauthorized, "Invalid credentials")
	}

	now := time.Now().UTC()
	if err := h.Store.TouchLastLogin(ctx, u.ID, now); err != nil {
		return respondError(c, http.StatusInternalServerError, "update login failed")
	}
	u.LastLogin = &now

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, u.Username, h.Cfg.TokenTTL)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "issue token failed")
	}

	return respondData(c, http.StatusOK, loginData{
		Token: tok.Token,
		User:  userPart{ID: u.ID, Username: u.Username, Email: u.Email, LastLogin: u.LastLogin},
	}, "Login successful")
}

// Logout acknowledges the request. Tokens are stateless and there is no
// revocation list, so the client discarding its copy is the whole operation.
func (h *AuthHandler) Logout(c echo.Context) error {
	return respondMessage(c, http.StatusOK, "Logged out successfully")
}
