package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/controllers/helpers"
	"github.com/divisapp/divisa/controllers/queries"
	"github.com/divisapp/divisa/identity"
)

const minPasswordLength = 6

func rememberedEmailKey(deviceID string) string {
	return "divisa:remembered_email:" + deviceID
}

// SignIn authenticates against the identity provider. Field checks run in a
// fixed order so the client always surfaces the first problem only.
func SignIn(c *fiber.Ctx) error {
	params := new(queries.SignInParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	if params.Email == "" {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.session.missing_email"},
		})
	}

	if !identity.ValidEmail(params.Email) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.session.invalid_email"},
		})
	}

	if params.Password == "" {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.session.missing_password"},
		})
	}

	credential, err := Identity.SignIn(c.UserContext(), params.Email, params.Password)
	if err != nil {
		var providerErr *identity.ProviderError
		if errors.As(err, &providerErr) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{identity.SignInMessage(providerErr.Code)},
			})
		}

		config.Logger.Errorf("Sign-in failed for %s: %v", params.Email, err)

		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.session.failed"},
		})
	}

	if params.DeviceID != "" {
		if params.Remember {
			config.Redis.SetKey(rememberedEmailKey(params.DeviceID), params.Email, 0)
		} else {
			config.Redis.DeleteKey(rememberedEmailKey(params.DeviceID))
		}
	}

	return c.Status(200).JSON(credential)
}

// SignUp registers a new account. The email existence pre-check gives a
// deterministic duplicate error even when the provider would accept the call.
func SignUp(c *fiber.Ctx) error {
	params := new(queries.SignUpParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	if params.Email == "" {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.user.missing_email"},
		})
	}

	if !identity.ValidEmail(params.Email) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.user.invalid_email"},
		})
	}

	if params.Password == "" {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.user.missing_password"},
		})
	}

	if len(params.Password) < minPasswordLength {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.user.weak_password"},
		})
	}

	if params.RepeatPassword == "" {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.user.missing_repeat_password"},
		})
	}

	if params.Password != params.RepeatPassword {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.user.passwords_mismatch"},
		})
	}

	if taken, err := Identity.EmailExists(c.UserContext(), params.Email); err == nil && taken {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.user.email_taken"},
		})
	}

	credential, err := Identity.SignUp(c.UserContext(), params.Email, params.Password)
	if err != nil {
		var providerErr *identity.ProviderError
		if errors.As(err, &providerErr) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{identity.SignUpMessage(providerErr.Code)},
			})
		}

		config.Logger.Errorf("Sign-up failed for %s: %v", params.Email, err)

		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.user.failed"},
		})
	}

	return c.Status(201).JSON(credential)
}

func SignOut(c *fiber.Ctx) error {
	token := c.Get("Authorization")

	if err := Identity.SignOut(c.UserContext(), token); err != nil {
		config.Logger.Errorf("Sign-out failed: %v", err)
	}

	return c.Status(200).JSON(200)
}

func SendPasswordReset(c *fiber.Ctx) error {
	params := new(queries.PasswordResetParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	if params.Email == "" {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.session.missing_email"},
		})
	}

	if !identity.ValidEmail(params.Email) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.session.invalid_email"},
		})
	}

	if err := Identity.SendPasswordReset(c.UserContext(), params.Email); err != nil {
		var providerErr *identity.ProviderError
		if errors.As(err, &providerErr) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{identity.SignInMessage(providerErr.Code)},
			})
		}

		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.session.failed"},
		})
	}

	return c.Status(200).JSON(200)
}

// GetRememberedEmail is public: the sign-in screen asks for it before any
// session exists. The lookup is keyed by the caller's device id.
func GetRememberedEmail(c *fiber.Ctx) error {
	deviceID := c.Query("device_id")

	if deviceID == "" {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"identity.session.missing_device_id"},
		})
	}

	email := ""
	config.Redis.GetKey(rememberedEmailKey(deviceID), &email)

	return c.Status(200).JSON(fiber.Map{
		"email": email,
	})
}
