// Package store owns the user and course collections. All other components
// read and mutate records exclusively through the Store interface so that the
// backing implementation (in-memory seed data or MySQL) can be swapped without
// touching call sites. Sentinel errors let handlers distinguish failure
// scenarios: ErrNotFound maps to HTTP 404 and ErrUsernameTaken to HTTP 409.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/course-catalog/internal/model"
)

// ErrNotFound is returned when a lookup by id matches no record.
var ErrNotFound = errors.New("not found")

// ErrUsernameTaken is returned when a profile update requests a username
// already held by a different user.
var ErrUsernameTaken = errors.New("username already taken")

// Store is the single access point to the user and course collections.
// Implementations return copies of records; callers never receive a mutable
// reference into stored state.
type Store interface {
	// GetUserByUsername fetches a user by exact username.
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	// GetUserByID fetches a user by id.
	GetUserByID(ctx context.Context, id uint64) (model.User, error)
	// TouchLastLogin records a successful login time on the user.
	TouchLastLogin(ctx context.Context, id uint64, at time.Time) error
	// UpdateUserProfile overwrites username and email on the user. It fails
	// with ErrUsernameTaken when another user already holds the username.
	UpdateUserProfile(ctx context.Context, id uint64, username, email string) (model.User, error)

	// ListCourses returns the complete course collection, in insertion order.
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourse fetches a course by id.
	GetCourse(ctx context.Context, id uint64) (model.Course, error)
	// CreateCourse assigns a fresh id to c, appends it, and returns the
	// stored record.
	CreateCourse(ctx context.Context, c model.Course) (model.Course, error)
	// UpdateCourse replaces the record with the same id as c.
	UpdateCourse(ctx context.Context, c model.Course) (model.Course, error)
	// DeleteCourse removes a course by id.
	DeleteCourse(ctx context.Context, id uint64) error
	// CountCoursesByUser counts courses whose UserID equals userID.
	CountCoursesByUser(ctx context.Context, userID uint64) (int, error)
}
