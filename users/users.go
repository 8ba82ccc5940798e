package users

import (
	"golang.org/x/crypto/bcrypt"
)

// AdminUserID is the id of the single built-in administrator.
const AdminUserID int64 = 1

type User struct {
	ID           int64  `json:"id"`       // Unique identifier for the user
	Username     string `json:"username"` // Unique username
	PasswordHash string `json:"-"`        // bcrypt hash, never serialized
}

// Summary is the part of a user exposed to clients and stored in a session.
type Summary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (u *User) Summary() Summary {
	return Summary{ID: u.ID, Username: u.Username}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidateHash reports whether hash is a well formed bcrypt hash.
func ValidateHash(hash string) error {
	_, err := bcrypt.Cost([]byte(hash))
	return err
}
