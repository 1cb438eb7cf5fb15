package queries

import "github.com/divisapp/divisa/controllers/helpers"

type CurrencyFilters struct {
	Search string `query:"search"`
}

func (t CurrencyFilters) Messages() map[string]string {
	return helpers.VaildateMessage("public.currency")
}

func (t CurrencyFilters) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}
