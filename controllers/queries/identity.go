package queries

import "github.com/divisapp/divisa/controllers/helpers"

type SignInParams struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Remember bool   `json:"remember" form:"remember"`
	DeviceID string `json:"device_id" form:"device_id"`
}

type SignUpParams struct {
	Email          string `json:"email" form:"email"`
	Password       string `json:"password" form:"password"`
	RepeatPassword string `json:"repeat_password" form:"repeat_password"`
}

type PasswordResetParams struct {
	Email string `json:"email" form:"email"`
}

type UpdateEmailParams struct {
	NewEmail        string `json:"new_email" form:"new_email"`
	CurrentPassword string `json:"current_password" form:"current_password"`
}

type UpdatePasswordParams struct {
	NewPassword     string `json:"new_password" form:"new_password"`
	CurrentPassword string `json:"current_password" form:"current_password"`
}

type LinkTwitterParams struct {
	OauthToken string `json:"oauth_token" form:"oauth_token" validate:"required"`
}

func (p LinkTwitterParams) Messages() map[string]string {
	return helpers.VaildateMessage("resource.twitter")
}

func (p LinkTwitterParams) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}

type UpdateProfileParams struct {
	DisplayName *string `json:"display_name" form:"display_name"`
	Bio         *string `json:"bio" form:"bio"`
	Phone       *string `json:"phone" form:"phone"`
	Location    *string `json:"location" form:"location"`
	BirthDate   *string `json:"birth_date" form:"birth_date"`
	PhotoURL    *string `json:"photo_url" form:"photo_url"`
}

type PreferencesParams struct {
	LastTab string `json:"last_tab" form:"last_tab" validate:"required"`
}

func (p PreferencesParams) Messages() map[string]string {
	return helpers.VaildateMessage("account.preferences")
}

func (p PreferencesParams) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}
