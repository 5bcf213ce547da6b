package model

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin = "admin"
	RoleMR    = "mr"
)

// User represents an authenticated account. Invariant: at most one row with
// role=admin, enforced at registration time.
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Role     string `gorm:"type:varchar(10);not null" json:"role" validate:"required,oneof=admin mr"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
