package middlewares

import (
	"encoding/base64"
	"os"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/models"
)

var (
	AuthzInvalidSession = "authz.invalid_session"
	JwtDecodeAndVerify  = "jwt.decode_and_verify"
	ServerInternalError = "server.internal_error"
)

// Auth struct represents parsed jwt information.
type Auth struct {
	UID      string   `json:"uid"`
	State    string   `json:"state"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Level    int32    `json:"level"`
	Audience []string `json:"aud,omitempty"`

	jwt.StandardClaims
}

func Authenticate(c *fiber.Ctx) error {
	token := c.Get("Authorization")

	if len(token) == 0 {
		return c.Status(401).JSON(fiber.Map{
			"errors": []string{AuthzInvalidSession},
		})
	}

	member, errKey, status := resolveMember(token)
	if member == nil {
		return c.Status(status).JSON(fiber.Map{
			"errors": []string{errKey},
		})
	}

	c.Locals("CurrentUser", member)

	return c.Next()
}

// OptionalAuthenticate binds the member when a valid token is present and
// passes anonymous requests through untouched. Listing endpoints use it to
// decorate favorite flags.
func OptionalAuthenticate(c *fiber.Ctx) error {
	token := c.Get("Authorization")

	if len(token) == 0 {
		return c.Next()
	}

	if member, _, _ := resolveMember(token); member != nil {
		c.Locals("CurrentUser", member)
	}

	return c.Next()
}

func resolveMember(token string) (*models.Member, string, int) {
	var auth Auth

	member := &models.Member{}

	token = strings.Replace(token, "Bearer ", "", -1)

	public_key_pem, err := base64.StdEncoding.DecodeString(os.Getenv("JWT_PUBLIC_KEY"))

	if err != nil {
		return nil, ServerInternalError, 500
	}

	public_key, err := jwt.ParseRSAPublicKeyFromPEM(public_key_pem)

	if err != nil {
		return nil, ServerInternalError, 500
	}

	_, err = jwt.ParseWithClaims(token, &auth, func(t *jwt.Token) (interface{}, error) {
		return public_key, nil
	})

	if err != nil {
		return nil, JwtDecodeAndVerify, 422
	}

	config.DataBase.Where("uid = ?", auth.UID).Assign(
		&models.Member{
			Email: auth.Email,
			Role:  auth.Role,
			State: auth.State,
			Level: auth.Level,
		},
	).FirstOrCreate(member)

	return member, "", 200
}
