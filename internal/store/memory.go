package store

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/course-catalog/internal/model"
	"github.com/iliyamo/course-catalog/internal/utils"
)

// SeedUser is a credential pair used to populate the memory store at startup.
// The password is hashed with bcrypt during seeding; the plaintext is dropped.
type SeedUser struct {
	Username string
	Email    string
	Password string
}

// DefaultSeedUsers are the accounts created when no explicit seed is given.
func DefaultSeedUsers() []SeedUser {
	return []SeedUser{
		{Username: "admin", Email: "admin@example.com", Password: "admin123"},
		{Username: "user", Email: "user@example.com", Password: "user123"},
		{Username: "jane", Email: "jane@example.com", Password: "jane123"},
	}
}

// MemoryStore keeps both collections in process memory. A single mutex
// serializes every operation so concurrent requests observe each write
// completely or not at all. Data does not survive a restart.
type MemoryStore struct {
	mu           sync.Mutex
	users        []model.User
	courses      []model.Course
	nextUserID   uint64
	nextCourseID uint64
}

// NewMemoryStore builds a store seeded with the given users and courses.
// Seed passwords are bcrypt-hashed with cost. IDs are assigned from
// monotonically increasing counters that start past the seed records.
func NewMemoryStore(seedUsers []SeedUser, seedCourses []model.Course, cost int) (*MemoryStore, error) {
	s := &MemoryStore{nextUserID: 1, nextCourseID: 1}
	for _, su := range seedUsers {
		hash, err := utils.HashPassword(su.Password, cost)
		if err != nil {
			return nil, err
		}
		s.users = append(s.users, model.User{
			ID:           s.nextUserID,
			Username:     su.Username,
			Email:        su.Email,
			PasswordHash: hash,
		})
		s.nextUserID++
	}
	for _, c := range seedCourses {
		c.ID = s.nextCourseID
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now().UTC()
		}
		if c.UpdatedAt.IsZero() {
			c.UpdatedAt = c.CreatedAt
		}
		s.courses = append(s.courses, c)
		s.nextCourseID++
	}
	return s, nil
}

// DefaultSeedCourses returns a small published/unpublished mix attributed to
// the seed users so the API serves data out of the box.
func DefaultSeedCourses() []model.Course {
	now := time.Now().UTC()
	return []model.Course{
		{
			Title:       "Introduction to Go",
			Description: "Syntax, tooling and the standard library from zero.",
			Category:    "programming",
			Level:       model.LevelBeginner,
			Duration:    12,
			Published:   true,
			UserID:      1,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Relational Database Design",
			Description: "Modeling, normalization and indexing for OLTP workloads.",
			Category:    "databases",
			Level:       model.LevelIntermediate,
			Duration:    20,
			Published:   true,
			UserID:      1,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Distributed Systems Patterns",
			Description: "Consensus, replication and failure handling in practice.",
			Category:    "programming",
			Level:       model.LevelAdvanced,
			Duration:    35,
			Published:   false,
			UserID:      2,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

func (s *MemoryStore) GetUserByID(_ context.Context, id uint64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

func (s *MemoryStore) TouchLastLogin(_ context.Context, id uint64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			t := at
			s.users[i].LastLogin = &t
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) UpdateUserProfile(_ context.Context, id uint64, username, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username && u.ID != id {
			return model.User{}, ErrUsernameTaken
		}
	}
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Username = username
			s.users[i].Email = email
			return s.users[i], nil
		}
	}
	return model.User{}, ErrNotFound
}

func (s *MemoryStore) ListCourses(_ context.Context) ([]model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Course, len(s.courses))
	copy(out, s.courses)
	return out, nil
}

func (s *MemoryStore) GetCourse(_ context.Context, id uint64) (model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Course{}, ErrNotFound
}

func (s *MemoryStore) CreateCourse(_ context.Context, c model.Course) (model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextCourseID
	s.nextCourseID++
	s.courses = append(s.courses, c)
	return c, nil
}

func (s *MemoryStore) UpdateCourse(_ context.Context, c model.Course) (model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.courses {
		if s.courses[i].ID == c.ID {
			s.courses[i] = c
			return c, nil
		}
	}
	return model.Course{}, ErrNotFound
}

func (s *MemoryStore) DeleteCourse(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.courses {
		if s.courses[i].ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) CountCoursesByUser(_ context.Context, userID uint64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.courses {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}
