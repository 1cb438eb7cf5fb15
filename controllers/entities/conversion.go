package entities

import (
	"github.com/shopspring/decimal"

	"github.com/divisapp/divisa/conversion"
	"github.com/divisapp/divisa/types"
)

type SelectionEntity struct {
	Bucket   types.Bucket    `json:"bucket"`
	Currency *CurrencyEntity `json:"currency"`
}

type SessionEntity struct {
	ID     string          `json:"id"`
	From   SelectionEntity `json:"from"`
	To     SelectionEntity `json:"to"`
	Amount string          `json:"amount"`
	Result decimal.Decimal `json:"result"`
}

func selectionToEntity(selection conversion.Selection) SelectionEntity {
	entity := SelectionEntity{Bucket: selection.Bucket}

	if selection.Currency != nil {
		currency := CurrencyToEntity(*selection.Currency, false)
		entity.Currency = &currency
	}

	return entity
}

func SessionToEntity(session *conversion.Session) SessionEntity {
	return SessionEntity{
		ID:     session.ID,
		From:   selectionToEntity(session.From()),
		To:     selectionToEntity(session.To()),
		Amount: session.Amount(),
		Result: session.Result(),
	}
}

type ConversionEntity struct {
	FromIdentifier string          `json:"from_identifier"`
	ToIdentifier   string          `json:"to_identifier"`
	Amount         string          `json:"amount"`
	Result         decimal.Decimal `json:"result"`
}
