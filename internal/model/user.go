package model

import "time"

// User represents an account record in the user collection. Usernames are
// unique across the whole store. PasswordHash holds a bcrypt digest; the
// plaintext credential is never kept. Users are seeded at startup and are
// never deleted.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  Email        – contact email address.
//  PasswordHash – bcrypt hashed password.
//  LastLogin    – timestamp of the most recent login (nil if never).
type User struct {
	ID           uint64     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// Profile is the authenticated user's view of their own record.
// CoursesCreated counts the courses whose UserID matches this user;
// it is computed on read, not stored.
type Profile struct {
	ID             uint64     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	LastLogin      *time.Time `json:"lastLogin,omitempty"`
	CoursesCreated int        `json:"coursesCreated"`
}
