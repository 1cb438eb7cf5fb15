package identity

// Provider error codes. The set is fixed; anything outside it falls back to
// a generic message key.
var (
	CodeInvalidCredential = "invalid-credential"
	CodeWrongPassword     = "wrong-password"
	CodeUserNotFound      = "user-not-found"
	CodeInvalidEmail      = "invalid-email"
	CodeTooManyRequests   = "too-many-requests"
	CodeUserDisabled      = "user-disabled"
	CodeNotAllowed        = "operation-not-allowed"
	CodeNetworkFailed     = "network-request-failed"
	CodeEmailTaken        = "email-already-in-use"
	CodeWeakPassword      = "weak-password"
)

// ProviderError carries the provider's error code through to the controller
// layer, where it is mapped to a message key.
type ProviderError struct {
	Code string
}

func (e *ProviderError) Error() string {
	return "identity: provider error " + e.Code
}

var signInMessages = map[string]string{
	CodeInvalidCredential: "identity.session.invalid_credentials",
	CodeWrongPassword:     "identity.session.invalid_credentials",
	CodeUserNotFound:      "identity.session.user_not_found",
	CodeInvalidEmail:      "identity.session.invalid_email",
	CodeTooManyRequests:   "identity.session.too_many_requests",
	CodeUserDisabled:      "identity.session.user_disabled",
	CodeNotAllowed:        "identity.session.disabled",
	CodeNetworkFailed:     "identity.session.network_failed",
}

var signUpMessages = map[string]string{
	CodeEmailTaken:        "identity.user.email_taken",
	CodeInvalidEmail:      "identity.user.invalid_email",
	CodeNotAllowed:        "identity.user.disabled",
	CodeWeakPassword:      "identity.user.weak_password",
	CodeNetworkFailed:     "identity.user.network_failed",
	CodeInvalidCredential: "identity.user.invalid_credential",
	CodeTooManyRequests:   "identity.user.too_many_requests",
}

// SignInMessage maps a provider error code to a sign-in message key, with a
// fallback for unmapped codes.
func SignInMessage(code string) string {
	if message, ok := signInMessages[code]; ok {
		return message
	}

	return "identity.session.failed"
}

// SignUpMessage maps a provider error code to a sign-up message key.
func SignUpMessage(code string) string {
	if message, ok := signUpMessages[code]; ok {
		return message
	}

	return "identity.user.failed"
}
