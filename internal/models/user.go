package model

import (
	"strings"
	"time"
)

// DateFields contient les champs d'audit standard pour toutes les entités
type DateFields struct {
	CreatedBy *string   `json:"createdBy,omitempty"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`
	DeletedBy *string   `json:"deletedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type UserProfile struct {
	ID             string    `json:"id,omitempty"`
	Email          string    `json:"email"`
	Username       string    `json:"username,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	NativeLanguage string    `json:"nativeLanguage,omitempty"`
	TargetLanguage string    `json:"targetLanguage,omitempty"`
	Level          string    `json:"level,omitempty"`    // beginner, intermediate, advanced
	Provider       string    `json:"provider,omitempty"` // email, google, apple
	OAuthSubject   string    `json:"-"`
	Badges         []string  `json:"badges,omitempty"`
	JoinDate       time.Time `json:"joinDate,omitempty"`
	DateFields
}

// DisplayName retourne le nom affiché sur le classement : le username
// s'il existe, sinon la partie locale de l'email
func (u *UserProfile) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	if at := strings.IndexByte(u.Email, '@'); at > 0 {
		return u.Email[:at]
	}
	return u.Email
}
