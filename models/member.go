package models

import (
	"time"

	"github.com/divisapp/divisa/config"
)

type Member struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Level     int32     `json:"level" gorm:"default:0" validate:"min:0"`
	Role      string    `json:"role"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Member) GetProfile() *Profile {
	var profile *Profile

	config.DataBase.FirstOrCreate(&profile, Profile{MemberID: m.ID})

	return profile
}
