package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/volatiletech/null"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/controllers/auth"
	"github.com/divisapp/divisa/controllers/entities"
	"github.com/divisapp/divisa/controllers/helpers"
	"github.com/divisapp/divisa/controllers/queries"
	"github.com/divisapp/divisa/identity"
)

func preferencesKey(uid string) string {
	return "divisa:preferences:" + uid + ":tab"
}

func GetProfile(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	profile := CurrentUser.GetProfile()

	return c.Status(200).JSON(entities.ProfileToEntity(CurrentUser, profile))
}

// UpdateProfile applies a partial update: absent fields keep their stored
// value, present-but-empty fields clear it.
func UpdateProfile(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	params := new(queries.UpdateProfileParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	profile := CurrentUser.GetProfile()

	if params.DisplayName != nil {
		profile.DisplayName = null.StringFrom(*params.DisplayName)
	}
	if params.Bio != nil {
		profile.Bio = null.StringFrom(*params.Bio)
	}
	if params.Phone != nil {
		profile.Phone = null.StringFrom(*params.Phone)
	}
	if params.Location != nil {
		profile.Location = null.StringFrom(*params.Location)
	}
	if params.BirthDate != nil {
		profile.BirthDate = null.StringFrom(*params.BirthDate)
	}
	if params.PhotoURL != nil {
		profile.PhotoURL = null.StringFrom(*params.PhotoURL)
	}

	if err := config.DataBase.Save(profile).Error; err != nil {
		config.Logger.Errorf("Failed to save profile for %s: %v", CurrentUser.UID, err)

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(entities.ProfileToEntity(CurrentUser, profile))
}

// UpdateEmail reauthenticates with the current password before asking the
// provider to switch the address.
func UpdateEmail(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	params := new(queries.UpdateEmailParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	if params.NewEmail == "" {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"resource.email.missing_new_email"},
		})
	}

	if !identity.ValidEmail(params.NewEmail) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"resource.email.invalid_new_email"},
		})
	}

	if params.CurrentPassword == "" {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"resource.email.missing_current_password"},
		})
	}

	if err := Identity.Reauthenticate(c.UserContext(), CurrentUser.Email, params.CurrentPassword); err != nil {
		return identityFailure(c, err, identity.SignInMessage)
	}

	token := c.Get("Authorization")
	if err := Identity.UpdateEmail(c.UserContext(), token, params.NewEmail); err != nil {
		return identityFailure(c, err, identity.SignUpMessage)
	}

	CurrentUser.Email = params.NewEmail
	config.DataBase.Save(CurrentUser)

	return c.Status(200).JSON(200)
}

// UpdatePassword reauthenticates, then sets the new password with the
// provider.
func UpdatePassword(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	params := new(queries.UpdatePasswordParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	if params.CurrentPassword == "" {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"resource.password.missing_current_password"},
		})
	}

	if params.NewPassword == "" {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"resource.password.missing_new_password"},
		})
	}

	if len(params.NewPassword) < minPasswordLength {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"resource.password.weak_password"},
		})
	}

	if err := Identity.Reauthenticate(c.UserContext(), CurrentUser.Email, params.CurrentPassword); err != nil {
		return identityFailure(c, err, identity.SignInMessage)
	}

	token := c.Get("Authorization")
	if err := Identity.UpdatePassword(c.UserContext(), token, params.NewPassword); err != nil {
		return identityFailure(c, err, identity.SignUpMessage)
	}

	return c.Status(200).JSON(200)
}

func SendEmailVerification(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	token := c.Get("Authorization")
	if err := Identity.SendEmailVerification(c.UserContext(), token); err != nil {
		return identityFailure(c, err, identity.SignUpMessage)
	}

	return c.Status(200).JSON(200)
}

func LinkTwitter(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(queries.LinkTwitterParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	token := c.Get("Authorization")
	username, err := Identity.LinkTwitter(c.UserContext(), token, params.OauthToken)
	if err != nil {
		return identityFailure(c, err, identity.SignInMessage)
	}

	profile := CurrentUser.GetProfile()
	profile.TwitterLinked = true
	profile.TwitterName = null.StringFrom(username)
	config.DataBase.Save(profile)

	return c.Status(200).JSON(entities.ProfileToEntity(CurrentUser, profile))
}

func UnlinkTwitter(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	token := c.Get("Authorization")
	if err := Identity.UnlinkTwitter(c.UserContext(), token); err != nil {
		return identityFailure(c, err, identity.SignInMessage)
	}

	profile := CurrentUser.GetProfile()
	profile.TwitterLinked = false
	profile.TwitterName = null.String{}
	config.DataBase.Save(profile)

	return c.Status(200).JSON(entities.ProfileToEntity(CurrentUser, profile))
}

// GetPreferences returns the remembered tab for the session restore flow.
func GetPreferences(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	lastTab := ""
	config.Redis.GetKey(preferencesKey(CurrentUser.UID), &lastTab)

	return c.Status(200).JSON(fiber.Map{
		"last_tab": lastTab,
	})
}

func UpdatePreferences(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(queries.PreferencesParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if err := config.Redis.SetKey(preferencesKey(CurrentUser.UID), params.LastTab, 0); err != nil {
		config.Logger.Errorf("Failed to save preferences for %s: %v", CurrentUser.UID, err)

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(fiber.Map{
		"last_tab": params.LastTab,
	})
}

// identityFailure maps a provider error to a 422 with its message key; other
// failures get the generic fallback.
func identityFailure(c *fiber.Ctx, err error, messageFor func(string) string) error {
	var providerErr *identity.ProviderError
	if errors.As(err, &providerErr) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{messageFor(providerErr.Code)},
		})
	}

	config.Logger.Errorf("Identity provider call failed: %v", err)

	return c.Status(422).JSON(helpers.Errors{
		Errors: []string{"identity.session.failed"},
	})
}
