package users

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is an identity record. A user is created on registration and never
// deleted by this service; only the password hash is mutable.
type User struct {
	ID           string    `json:"id,omitempty"`    // Unique identifier for the user
	Name         string    `json:"name,omitempty"`  // Display name
	Email        string    `json:"email,omitempty"` // Unique email address
	PasswordHash string    `json:"-"`               // Hashed password - never serialize
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// HashPassword produces a one-way salted hash of the plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a plaintext password against a stored hash in
// constant time.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
