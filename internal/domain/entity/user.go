package entity

import "time"

// User is a staff account. Passwords are stored as bcrypt hashes in Password.
// Accounts are created at registration and never deleted; only the password
// is mutable after that.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	UserType  string    `json:"userType"` // "admin" for staff created via this CMS
	CreatedAt time.Time `json:"createdAt"`
}

// UserRef is the reduced projection exposed when a submission resolves its
// author (name and email only, never the credential hash).
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Ref() *UserRef {
	return &UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
