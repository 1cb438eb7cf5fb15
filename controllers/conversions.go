package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/controllers/auth"
	"github.com/divisapp/divisa/controllers/entities"
	"github.com/divisapp/divisa/controllers/helpers"
	"github.com/divisapp/divisa/controllers/queries"
	"github.com/divisapp/divisa/conversion"
	"github.com/divisapp/divisa/listing"
	"github.com/divisapp/divisa/models"
	"github.com/divisapp/divisa/types"
)

// CreateConversion is the one-shot endpoint: amount text in, rounded result
// out. A non-numeric amount or a failed rate fetch degrades to a zero
// result, never an error response.
func CreateConversion(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(queries.CreateConversionParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	entity := entities.ConversionEntity{
		FromIdentifier: params.FromIdentifier,
		ToIdentifier:   params.ToIdentifier,
		Amount:         params.Amount,
		Result:         decimal.Zero,
	}

	parsed, ok := conversion.ParseAmount(params.Amount)
	if !ok {
		return c.Status(200).JSON(entity)
	}

	quote, err := Pricing.Quote(c.UserContext(), params.FromIdentifier, params.ToIdentifier)
	if err != nil {
		config.Logger.Errorf("Failed to fetch %s-%s rate: %v", params.FromIdentifier, params.ToIdentifier, err)

		return c.Status(200).JSON(entity)
	}

	entity.Result = parsed.Mul(quote.Rate).Round(conversion.ResultPrecision)

	recordConversion(CurrentUser, quote, parsed, entity.Result)

	return c.Status(200).JSON(entity)
}

// recordConversion writes the audit point, fire and forget.
func recordConversion(member *models.Member, quote types.ConversionQuote, amount decimal.Decimal, result decimal.Decimal) {
	if config.InfluxDB == nil {
		return
	}

	amountF, _ := amount.Float64()
	rateF, _ := quote.Rate.Float64()
	resultF, _ := result.Float64()

	config.InfluxDB.NewPoint(
		"conversions",
		map[string]string{"from": quote.FromIdentifier, "to": quote.ToIdentifier, "uid": member.UID},
		map[string]interface{}{"amount": amountF, "rate": rateF, "result": resultF},
	)
}

func CreateConversionSession(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	session := Sessions.Create(CurrentUser.UID)

	return c.Status(200).JSON(entities.SessionToEntity(session))
}

func findSession(c *fiber.Ctx) (*conversion.Session, error) {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return nil, c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	session, ok := Sessions.Find(c.Params("id"), CurrentUser.UID)
	if !ok {
		return nil, c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	return session, nil
}

func GetConversionSession(c *fiber.Ctx) error {
	session, err := findSession(c)
	if session == nil {
		return err
	}

	return c.Status(200).JSON(entities.SessionToEntity(session))
}

// SelectBucket opens a picker for one side of the conversion.
func SelectBucket(c *fiber.Ctx) error {
	session, err := findSession(c)
	if session == nil {
		return err
	}

	errs := new(helpers.Errors)
	params := new(queries.SelectionParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	session.SelectBucket(params.Side, params.Bucket)

	return c.Status(200).JSON(entities.SessionToEntity(session))
}

// GetPicker lists the candidate currencies for the chosen bucket of one
// side, sorted and search-filtered.
func GetPicker(c *fiber.Ctx) error {
	session, err := findSession(c)
	if session == nil {
		return err
	}

	params := new(queries.PickerFilters)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	list, errResp := pickerList(c, session, params.Side)
	if errResp != nil {
		return errResp
	}

	list = listing.Filter(listing.SortByName(list), params.Search)

	return c.Status(200).JSON(list)
}

func pickerList(c *fiber.Ctx, session *conversion.Session, side types.ConversionSide) ([]types.Currency, error) {
	selection := session.From()
	if side == types.SideTo {
		selection = session.To()
	}

	if selection.Bucket == "" {
		return nil, c.Status(422).JSON(helpers.Errors{
			Errors: []string{"account.conversion_session.no_bucket_selected"},
		})
	}

	if list, ok := favoriteListFor(session.MemberUID, selection.Bucket); ok {
		return list, nil
	}

	var list []types.Currency
	var err error

	if types.CategoryOf(selection.Bucket) == types.CategoryFiat {
		list, err = Pricing.Currencies(c.UserContext())
	} else {
		list, err = Pricing.CryptoCurrencies(c.UserContext())
	}

	if err != nil {
		config.Logger.Errorf("Failed to fetch picker list: %v", err)

		return nil, c.Status(422).JSON(helpers.Errors{
			Errors: []string{"public.currency.fetch_failed"},
		})
	}

	return list, nil
}

// PickCurrency resolves the picked identifier against its bucket's list and
// binds it to the session; conversion fires when inputs are complete.
func PickCurrency(c *fiber.Ctx) error {
	session, err := findSession(c)
	if session == nil {
		return err
	}

	errs := new(helpers.Errors)
	params := new(queries.PickParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	list, errResp := pickerList(c, session, params.Side)
	if errResp != nil {
		return errResp
	}

	var picked *types.Currency
	for i := range list {
		if list[i].Identifier == params.Identifier {
			picked = &list[i]
			break
		}
	}

	if picked == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	session.Pick(c.UserContext(), params.Side, *picked)

	return c.Status(200).JSON(entities.SessionToEntity(session))
}

func ClearSelection(c *fiber.Ctx) error {
	session, err := findSession(c)
	if session == nil {
		return err
	}

	errs := new(helpers.Errors)
	params := new(queries.ClearSelectionParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	session.ClearSelection(params.Side)

	return c.Status(200).JSON(entities.SessionToEntity(session))
}

// PressKey feeds one keypad key into the session.
func PressKey(c *fiber.Ctx) error {
	session, err := findSession(c)
	if session == nil {
		return err
	}

	errs := new(helpers.Errors)
	params := new(queries.KeyParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	session.Press(c.UserContext(), params.Key)

	return c.Status(200).JSON(entities.SessionToEntity(session))
}

func DeleteConversionSession(c *fiber.Ctx) error {
	session, err := findSession(c)
	if session == nil {
		return err
	}

	Sessions.Delete(session.ID)

	return c.Status(200).JSON(200)
}
