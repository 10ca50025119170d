package models

import (
	"strings"

	"github.com/blogem/canvass-dashboard/workbook"
)

// Users worksheet columns
const (
	UserColUsername    = "Kullanici_Adi"
	UserColPassword    = "Sifre"
	UserColDisplayName = "Ad_Soyad"
)

// User is a canvasser allowed to log in
type User struct {
	Username    string `json:"username"`
	Password    string `json:"-"`
	DisplayName string `json:"display_name"`
}

// UserFromRecord maps a users worksheet record onto a User.
func UserFromRecord(rec workbook.Record) User {
	return User{
		Username:    strings.TrimSpace(rec.Get(UserColUsername)),
		Password:    rec.Get(UserColPassword),
		DisplayName: strings.TrimSpace(rec.Get(UserColDisplayName)),
	}
}

// Label returns the display name, falling back to the username.
func (u *User) Label() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
