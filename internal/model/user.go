package model

import "time"

// User represents a registered account. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName    string    `json:"first_name" gorm:"size:30;not null"`
	LastName     string    `json:"last_name" gorm:"size:30;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Tasks []Task `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// PublicUser is the profile view of a User.
type PublicUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Identity is the subject of an identity token.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Public returns the fields of u that may be shown to its owner.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// Identity returns the token subject for u.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email}
}
