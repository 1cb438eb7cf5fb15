package entities

import (
	"github.com/shopspring/decimal"

	"github.com/divisapp/divisa/detail"
	"github.com/divisapp/divisa/types"
)

type CurrencyEntity struct {
	Identifier string         `json:"identifier"`
	Name       string         `json:"name"`
	Category   types.Category `json:"category"`
	Favorite   bool           `json:"favorite"`
}

func CurrencyToEntity(currency types.Currency, favorite bool) CurrencyEntity {
	return CurrencyEntity{
		Identifier: currency.Identifier,
		Name:       currency.Name,
		Category:   currency.Category,
		Favorite:   favorite,
	}
}

type DetailEntity struct {
	State    detail.State        `json:"state"`
	Currency *CurrencyEntity     `json:"currency"`
	Spot     decimal.NullDecimal `json:"spot"`
	Buy      decimal.NullDecimal `json:"buy"`
	Sell     decimal.NullDecimal `json:"sell"`
}
