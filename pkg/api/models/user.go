package models

import (
	"fmt"

	"github.com/jinzhu/gorm"
)

//go:generate goqueryset -in user.go

// gen:qs
type User struct {
	gorm.Model

	Email string

	Name      string
	AvatarURL string
}

func (u User) GoString() string {
	return fmt.Sprintf("{ID: %d, Email: %s, Name: %s}", u.ID, u.Email, u.Name)
}
