package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/controllers/auth"
	"github.com/divisapp/divisa/controllers/helpers"
	"github.com/divisapp/divisa/controllers/queries"
	"github.com/divisapp/divisa/conversion"
	"github.com/divisapp/divisa/receipt"
)

// CreateReceipt renders a session's current conversion as a PDF download.
// Sessions missing a side, an amount or a result are refused.
func CreateReceipt(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(queries.CreateReceiptParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	session, ok := Sessions.Find(params.SessionID, CurrentUser.UID)
	if !ok {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	doc := receipt.Receipt{
		Amount: decimal.Zero,
		Result: session.Result(),
	}

	if from := session.From().Currency; from != nil {
		doc.From = *from
	}
	if to := session.To().Currency; to != nil {
		doc.To = *to
	}

	if parsed, ok := conversion.ParseAmount(session.Amount()); ok {
		doc.Amount = parsed
	}

	rendered, err := doc.Render()
	if err != nil {
		if err == receipt.ErrIncomplete {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"account.receipt.incomplete"},
			})
		}

		config.Logger.Errorf("Failed to render receipt: %v", err)

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="comprobanteConversion.pdf"`)

	return c.Status(200).Send(rendered)
}
