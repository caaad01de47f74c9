package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/course-catalog/internal/model"
	"github.com/iliyamo/course-catalog/internal/utils"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	s, err := NewMemoryStore(DefaultSeedUsers(), DefaultSeedCourses(), 4)
	require.NoError(t, err)
	return s
}

func TestSeedUsersHaveHashedPasswords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.GetUserByUsername(ctx, "user")
	require.NoError(t, err)
	assert.NotEqual(t, "user123", u.PasswordHash)
	assert.True(t, utils.VerifyPassword(u.PasswordHash, "user123"))
	assert.Nil(t, u.LastLogin)
}

func TestGetUserByUsernameNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTouchLastLogin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	at := time.Now().UTC()

	require.NoError(t, s.TouchLastLogin(ctx, 2, at))
	u, err := s.GetUserByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, u.LastLogin)
	assert.Equal(t, at, *u.LastLogin)

	assert.ErrorIs(t, s.TouchLastLogin(ctx, 999, at), ErrNotFound)
}

func TestUpdateUserProfile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.UpdateUserProfile(ctx, 2, "renamed", "renamed@example.com")
	require.NoError(t, err)
	assert.Equal(t, "renamed", u.Username)
	assert.Equal(t, "renamed@example.com", u.Email)
}

func TestUpdateUserProfileConflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpdateUserProfile(ctx, 2, "admin", "whatever@example.com")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The requester's own record is unchanged after a conflict.
	u, err := s.GetUserByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "user", u.Username)
	assert.Equal(t, "user@example.com", u.Email)
}

func TestUpdateUserProfileKeepOwnUsername(t *testing.T) {
	s := newTestStore(t)
	// Re-submitting the caller's current username is not a conflict.
	u, err := s.UpdateUserProfile(context.Background(), 2, "user", "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", u.Email)
}

func TestCreateCourseAssignsFreshIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	existing, err := s.ListCourses(ctx)
	require.NoError(t, err)
	seen := map[uint64]bool{}
	for _, c := range existing {
		seen[c.ID] = true
	}

	now := time.Now().UTC()
	created, err := s.CreateCourse(ctx, model.Course{
		Title: "T", Description: "D", Category: "C",
		Level: model.LevelBeginner, Duration: 5,
		UserID: 2, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.False(t, seen[created.ID], "new id must differ from all prior ids")

	got, err := s.GetCourse(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestDeleteCourse(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	before, err := s.ListCourses(ctx)
	require.NoError(t, err)

	require.NoError(t, s.DeleteCourse(ctx, before[0].ID))
	_, err = s.GetCourse(ctx, before[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	after, err := s.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)
}

func TestDeleteCourseNotFoundLeavesCollection(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	before, err := s.ListCourses(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteCourse(ctx, 999), ErrNotFound)

	after, err := s.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateCourseNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.UpdateCourse(context.Background(), model.Course{ID: 999, Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCountCoursesByUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n, err := s.CountCoursesByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.CountCoursesByUser(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestListCoursesReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	list, err := s.ListCourses(ctx)
	require.NoError(t, err)
	list[0].Title = "mutated"

	fresh, err := s.ListCourses(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh[0].Title)
}
