package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/course-catalog/internal/model"
	"github.com/iliyamo/course-catalog/internal/utils"
)

// MySQLStore implements Store over a MySQL database. It exists so the service
// can be pointed at durable storage without touching any handler; the memory
// store remains the default.
type MySQLStore struct {
	DB *sql.DB
}

// NewMySQLStore wraps an open database handle.
func NewMySQLStore(db *sql.DB) *MySQLStore { return &MySQLStore{DB: db} }

// SeedUsers inserts the given users when the table is empty. Passwords are
// bcrypt-hashed with cost, matching the memory store's seeding behavior.
func (s *MySQLStore) SeedUsers(ctx context.Context, seed []SeedUser, cost int) error {
	var n int
	if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, su := range seed {
		hash, err := utils.HashPassword(su.Password, cost)
		if err != nil {
			return err
		}
		if _, err := s.DB.ExecContext(ctx,
			"INSERT INTO users (username, email, password_hash) VALUES (?,?,?)",
			su.Username, su.Email, hash); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStore) scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var last sql.NullTime
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &last)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	if last.Valid {
		t := last.Time
		u.LastLogin = &t
	}
	return u, nil
}

func (s *MySQLStore) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return s.scanUser(s.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password_hash,last_login FROM users WHERE username=? LIMIT 1",
		username))
}

func (s *MySQLStore) GetUserByID(ctx context.Context, id uint64) (model.User, error) {
	return s.scanUser(s.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password_hash,last_login FROM users WHERE id=? LIMIT 1", id))
}

func (s *MySQLStore) TouchLastLogin(ctx context.Context, id uint64, at time.Time) error {
	res, err := s.DB.ExecContext(ctx, "UPDATE users SET last_login=? WHERE id=?", at.UTC(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MySQLStore) UpdateUserProfile(ctx context.Context, id uint64, username, email string) (model.User, error) {
	_, err := s.DB.ExecContext(ctx, "UPDATE users SET username=?, email=? WHERE id=?", username, email, id)
	if err != nil {
		// 1062 is MySQL's duplicate-key error; the unique index is on username.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.User{}, ErrUsernameTaken
		}
		return model.User{}, err
	}
	return s.GetUserByID(ctx, id)
}

const courseColumns = "id,title,description,category,level,duration,published,user_id,created_at,updated_at"

func scanCourse(scan func(dest ...any) error) (model.Course, error) {
	var c model.Course
	err := scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.Level,
		&c.Duration, &c.Published, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *MySQLStore) ListCourses(ctx context.Context) ([]model.Course, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT "+courseColumns+" FROM courses ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Course
	for rows.Next() {
		c, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *MySQLStore) GetCourse(ctx context.Context, id uint64) (model.Course, error) {
	c, err := scanCourse(s.DB.QueryRowContext(ctx,
		"SELECT "+courseColumns+" FROM courses WHERE id=? LIMIT 1", id).Scan)
	if err == sql.ErrNoRows {
		return model.Course{}, ErrNotFound
	}
	if err != nil {
		return model.Course{}, err
	}
	return c, nil
}

func (s *MySQLStore) CreateCourse(ctx context.Context, c model.Course) (model.Course, error) {
	res, err := s.DB.ExecContext(ctx,
		"INSERT INTO courses (title,description,category,level,duration,published,user_id,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?,?)",
		c.Title, c.Description, c.Category, c.Level, c.Duration, c.Published,
		c.UserID, c.CreatedAt.UTC(), c.UpdatedAt.UTC())
	if err != nil {
		return model.Course{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Course{}, err
	}
	c.ID = uint64(id)
	return c, nil
}

func (s *MySQLStore) UpdateCourse(ctx context.Context, c model.Course) (model.Course, error) {
	res, err := s.DB.ExecContext(ctx,
		"UPDATE courses SET title=?, description=?, category=?, level=?, duration=?, published=?, updated_at=? WHERE id=?",
		c.Title, c.Description, c.Category, c.Level, c.Duration, c.Published,
		c.UpdatedAt.UTC(), c.ID)
	if err != nil {
		return model.Course{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also zero on a no-op update; confirm existence.
		if _, err := s.GetCourse(ctx, c.ID); err != nil {
			return model.Course{}, err
		}
	}
	return c, nil
}

func (s *MySQLStore) DeleteCourse(ctx context.Context, id uint64) error {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM courses WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MySQLStore) CountCoursesByUser(ctx context.Context, userID uint64) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM courses WHERE user_id=?", userID).Scan(&n)
	return n, err
}
