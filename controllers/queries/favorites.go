package queries

import (
	"github.com/divisapp/divisa/controllers/helpers"
	"github.com/divisapp/divisa/types"
)

type ToggleFavoriteParams struct {
	Category   types.Category `json:"category" form:"category" validate:"required|ValidateCategory"`
	Identifier string         `json:"identifier" form:"identifier" validate:"required"`
	Name       string         `json:"name" form:"name" validate:"required"`
}

func (p ToggleFavoriteParams) ValidateCategory(category types.Category) bool {
	return types.ValidCategory(category)
}

func (p ToggleFavoriteParams) Messages() map[string]string {
	return helpers.VaildateMessage("account.favorite")
}

func (p ToggleFavoriteParams) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}
