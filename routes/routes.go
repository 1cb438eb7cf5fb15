package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/divisapp/divisa/controllers"
	"github.com/divisapp/divisa/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)
	app.Get("/api/v2/public/currencies", middlewares.OptionalAuthenticate, controllers.GetCurrencies)
	app.Get("/api/v2/public/currencies/crypto", middlewares.OptionalAuthenticate, controllers.GetCryptoCurrencies)
	app.Get("/api/v2/public/currencies/:category/:id", middlewares.OptionalAuthenticate, controllers.GetCurrencyDetail)
	app.Get("/api/v2/public/remembered_email", controllers.GetRememberedEmail)

	app.Post("/api/v2/identity/sessions", controllers.SignIn)
	app.Delete("/api/v2/identity/sessions", controllers.SignOut)
	app.Post("/api/v2/identity/users", controllers.SignUp)
	app.Post("/api/v2/identity/users/password/reset", controllers.SendPasswordReset)

	account := app.Group("/api/v2/account", middlewares.Authenticate)
	account.Get("/favorites", controllers.GetFavorites)
	account.Post("/favorites", controllers.ToggleFavorite)
	account.Post("/conversions", controllers.CreateConversion)
	account.Post("/conversion_sessions", controllers.CreateConversionSession)
	account.Get("/conversion_sessions/:id", controllers.GetConversionSession)
	account.Delete("/conversion_sessions/:id", controllers.DeleteConversionSession)
	account.Post("/conversion_sessions/:id/selection", controllers.SelectBucket)
	account.Delete("/conversion_sessions/:id/selection", controllers.ClearSelection)
	account.Get("/conversion_sessions/:id/picker", controllers.GetPicker)
	account.Post("/conversion_sessions/:id/pick", controllers.PickCurrency)
	account.Post("/conversion_sessions/:id/keys", controllers.PressKey)
	account.Post("/receipts", controllers.CreateReceipt)
	account.Get("/preferences", controllers.GetPreferences)
	account.Put("/preferences", controllers.UpdatePreferences)

	resource := app.Group("/api/v2/resource", middlewares.Authenticate)
	resource.Get("/profile", controllers.GetProfile)
	resource.Put("/profile", controllers.UpdateProfile)
	resource.Put("/profile/email", controllers.UpdateEmail)
	resource.Put("/profile/password", controllers.UpdatePassword)
	resource.Post("/profile/verification", controllers.SendEmailVerification)
	resource.Post("/profile/twitter", controllers.LinkTwitter)
	resource.Delete("/profile/twitter", controllers.UnlinkTwitter)

	return app
}
