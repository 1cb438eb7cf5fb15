package models

import (
	"time"

	"github.com/volatiletech/null"
)

// Profile holds the auxiliary document fields owned by this application.
// Identity itself (email, password, verification) lives with the external
// auth provider; only the display document is stored here.
type Profile struct {
	ID            int64       `json:"id" gorm:"primaryKey"`
	MemberID      int64       `json:"member_id" gorm:"index"`
	DisplayName   null.String `json:"display_name"`
	Bio           null.String `json:"bio"`
	Phone         null.String `json:"phone"`
	Location      null.String `json:"location"`
	BirthDate     null.String `json:"birth_date"`
	PhotoURL      null.String `json:"photo_url"`
	TwitterLinked bool        `json:"twitter_linked" gorm:"default:false"`
	TwitterName   null.String `json:"twitter_username"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
