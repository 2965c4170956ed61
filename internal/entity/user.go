package entity

import "database/sql"

type User struct {
	Base
	Username string `gorm:"unique"`
	Email    string `gorm:"unique"`

	// PasswordHash is a salted bcrypt hash. Plaintext passwords are never
	// stored.
	PasswordHash string

	AboutMe  string `gorm:"type:text"`
	LastSeen sql.NullTime
}
