package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/divisapp/divisa/controllers/auth"
	"github.com/divisapp/divisa/controllers/helpers"
	"github.com/divisapp/divisa/controllers/queries"
	"github.com/divisapp/divisa/types"
)

// GetFavorites returns the stored favorites, one bucket per category plus
// the merged view the notification stream also carries.
func GetFavorites(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	return c.Status(200).JSON(fiber.Map{
		"fiat":     Favorites.List(CurrentUser.UID, types.CategoryFiat),
		"crypto":   Favorites.List(CurrentUser.UID, types.CategoryCrypto),
		"combined": Favorites.Combined(CurrentUser.UID),
	})
}

// ToggleFavorite flips favorite status for one identifier+category pair and
// returns the new status plus the affected category's list.
func ToggleFavorite(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(queries.ToggleFavoriteParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	item := types.Currency{
		Identifier: params.Identifier,
		Name:       params.Name,
		Category:   params.Category,
	}

	Favorites.Toggle(CurrentUser.UID, params.Category, item)

	return c.Status(200).JSON(fiber.Map{
		"favorite": Favorites.IsFavorite(CurrentUser.UID, params.Category, item),
		"list":     Favorites.List(CurrentUser.UID, params.Category),
	})
}

func favoriteListFor(uid string, bucket types.Bucket) ([]types.Currency, bool) {
	if !types.IsFavoriteBucket(bucket) {
		return nil, false
	}

	return Favorites.List(uid, types.CategoryOf(bucket)), true
}
