package entities

import (
	"github.com/volatiletech/null"

	"github.com/divisapp/divisa/models"
)

type ProfileEntity struct {
	Email         string      `json:"email"`
	DisplayName   null.String `json:"display_name"`
	Bio           null.String `json:"bio"`
	Phone         null.String `json:"phone"`
	Location      null.String `json:"location"`
	BirthDate     null.String `json:"birth_date"`
	PhotoURL      null.String `json:"photo_url"`
	TwitterLinked bool        `json:"twitter_linked"`
	TwitterName   null.String `json:"twitter_username"`
}

func ProfileToEntity(member *models.Member, profile *models.Profile) ProfileEntity {
	return ProfileEntity{
		Email:         member.Email,
		DisplayName:   profile.DisplayName,
		Bio:           profile.Bio,
		Phone:         profile.Phone,
		Location:      profile.Location,
		BirthDate:     profile.BirthDate,
		PhotoURL:      profile.PhotoURL,
		TwitterLinked: profile.TwitterLinked,
		TwitterName:   profile.TwitterName,
	}
}
