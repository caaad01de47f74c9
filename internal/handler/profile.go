package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-catalog/internal/model"
	"github.com/iliyamo/course-catalog/internal/store"
)

// ProfileHandler serves the authenticated user's own record.
type ProfileHandler struct {
	Store store.Store
}

func NewProfileHandler(s store.Store) *ProfileHandler {
	return &ProfileHandler{Store: s}
}

// emailRe accepts the usual local@domain.tld shape. It is deliberately
// loose: one @, no whitespace, a dot in the domain part.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type profileReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Get handles GET /api/profile. CoursesCreated is counted from the course
// collection on every read.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "unauthorized")
	}
	ctx := c.Request().Context()
	u, err := h.Store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "User not found")
		}
		return respondError(c, http.StatusInternalServerError, "could not fetch profile")
	}
	count, err := h.Store.CountCoursesByUser(ctx, userID)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "could not count courses")
	}
	return respondData(c, http.StatusOK, model.Profile{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		LastLogin:      u.LastLogin,
		CoursesCreated: count,
	}, "")
}

// Update handles PUT /api/profile. Both fields are required; the username
// must not belong to a different user. On conflict nothing on the caller's
// record changes.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "unauthorized")
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" {
		return respondError(c, http.StatusBadRequest, "Username and email are required")
	}
	if !emailRe.MatchString(req.Email) {
		return respondError(c, http.StatusBadRequest, "Please provide a valid email address")
	}

	ctx := c.Request().Context()
	u, err := h.Store.UpdateUserProfile(ctx, userID, req.Username, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			return respondError(c, http.StatusConflict, "Username already taken")
		case errors.Is(err, store.ErrNotFound):
			return respondError(c, http.StatusNotFound, "User not found")
		default:
			return respondError(c, http.StatusInternalServerError, "could not update profile")
		}
	}
	count, err := h.Store.CountCoursesByUser(ctx, userID)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "could not count courses")
	}
	return respondData(c, http.StatusOK, model.Profile{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		LastLogin:      u.LastLogin,
		CoursesCreated: count,
	}, "Profile updated successfully")
}
