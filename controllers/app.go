package controllers

import (
	"github.com/divisapp/divisa/conversion"
	"github.com/divisapp/divisa/favorites"
	"github.com/divisapp/divisa/identity"
	"github.com/divisapp/divisa/pricing"
)

var (
	Pricing   *pricing.Client
	Favorites *favorites.Store
	Sessions  *conversion.Registry
	Identity  *identity.Client
)

// InitializeServices wires the shared collaborators. Must run after
// config.InitializeConfig.
func InitializeServices() {
	Pricing = pricing.NewClient()
	Favorites = favorites.NewRedisStore()
	Sessions = conversion.NewRegistry(Pricing, conversion.DefaultSessionTTL)
	Identity = identity.NewClient()
}
