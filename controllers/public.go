package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/controllers/auth"
	"github.com/divisapp/divisa/controllers/entities"
	"github.com/divisapp/divisa/controllers/helpers"
	"github.com/divisapp/divisa/controllers/queries"
	"github.com/divisapp/divisa/detail"
	"github.com/divisapp/divisa/listing"
	"github.com/divisapp/divisa/types"
)

func GetTimestamp(c *fiber.Ctx) error {

	c.Status(200).JSON(time.Now())

	return nil
}

// GetCurrencies serves the fiat list: freshly fetched, sorted by name,
// optionally filtered, with per-item favorite status when a session is
// present.
func GetCurrencies(c *fiber.Ctx) error {
	return getCurrencyList(c, types.CategoryFiat)
}

func GetCryptoCurrencies(c *fiber.Ctx) error {
	return getCurrencyList(c, types.CategoryCrypto)
}

func getCurrencyList(c *fiber.Ctx, category types.Category) error {
	params := new(queries.CurrencyFilters)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	var list []types.Currency
	var err error

	if category == types.CategoryFiat {
		list, err = Pricing.Currencies(c.UserContext())
	} else {
		list, err = Pricing.CryptoCurrencies(c.UserContext())
	}

	if err != nil {
		config.Logger.Errorf("Failed to fetch %s list: %v", category, err)

		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"public.currency.fetch_failed"},
		})
	}

	list = listing.Filter(listing.SortByName(list), params.Search)

	// favorite status is re-derived per item on every read
	uid := ""
	if CurrentUser := auth.GetCurrentUser(c); CurrentUser != nil {
		uid = CurrentUser.UID
	}

	currency_entities := make([]entities.CurrencyEntity, 0, len(list))
	for _, currency := range list {
		favorite := false
		if uid != "" {
			favorite = Favorites.IsFavorite(uid, category, currency)
		}

		currency_entities = append(currency_entities, entities.CurrencyToEntity(currency, favorite))
	}

	return c.Status(200).JSON(currency_entities)
}

// GetCurrencyDetail resolves one currency and its spot/buy/sell prices.
func GetCurrencyDetail(c *fiber.Ctx) error {
	category := c.Params("category")
	identifier := c.Params("id")

	loader := detail.NewLoader(Pricing, Pricing)
	result := loader.Load(c.UserContext(), category, identifier)

	switch result.State {
	case detail.StateInvalidCategory:
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"public.currency.invalid_category"},
		})
	case detail.StateNotFound:
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	favorite := false
	if CurrentUser := auth.GetCurrentUser(c); CurrentUser != nil && result.Currency != nil {
		favorite = Favorites.IsFavorite(CurrentUser.UID, category, *result.Currency)
	}

	entity := entities.DetailEntity{
		State: result.State,
		Spot:  result.Spot,
		Buy:   result.Buy,
		Sell:  result.Sell,
	}

	if result.Currency != nil {
		currency := entities.CurrencyToEntity(*result.Currency, favorite)
		entity.Currency = &currency
	}

	return c.Status(200).JSON(entity)
}
