package detail

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/types"
)

type fakePricing struct {
	fiat      []types.Currency
	crypto    []types.Currency
	listErr   error
	prices    map[types.PriceSide]string
	priceErrs map[types.PriceSide]error
}

func (f *fakePricing) Currencies(ctx context.Context) ([]types.Currency, error) {
	return f.fiat, f.listErr
}

func (f *fakePricing) CryptoCurrencies(ctx context.Context) ([]types.Currency, error) {
	return f.crypto, f.listErr
}

func (f *fakePricing) Price(ctx context.Context, identifier string, side types.PriceSide) (decimal.Decimal, error) {
	if err := f.priceErrs[side]; err != nil {
		return decimal.Zero, err
	}

	return decimal.RequireFromString(f.prices[side]), nil
}

func TestMain(m *testing.M) {
	config.NewLoggerService()
	os.Exit(m.Run())
}

func newFakePricing() *fakePricing {
	return &fakePricing{
		fiat: []types.Currency{
			{Identifier: "USD", Name: "US Dollar", Category: types.CategoryFiat},
			{Identifier: "EUR", Name: "Euro", Category: types.CategoryFiat},
		},
		crypto: []types.Currency{
			{Identifier: "BTC", Name: "Bitcoin", Category: types.CategoryCrypto},
		},
		prices: map[types.PriceSide]string{
			types.SideSpot: "1.23456",
			types.SideBuy:  "1.25",
			types.SideSell: "1.2",
		},
		priceErrs: map[types.PriceSide]error{},
	}
}

func TestLoadInvalidCategory(t *testing.T) {
	pricing := newFakePricing()
	loader := NewLoader(pricing, pricing)

	detail := loader.Load(context.Background(), "stocks", "AAPL")

	assert.Equal(t, StateInvalidCategory, detail.State)
	assert.Nil(t, detail.Currency)
}

func TestLoadNotFound(t *testing.T) {
	pricing := newFakePricing()
	loader := NewLoader(pricing, pricing)

	detail := loader.Load(context.Background(), types.CategoryFiat, "XXX")

	assert.Equal(t, StateNotFound, detail.State)
}

func TestLoadFoundWithRoundedPrices(t *testing.T) {
	pricing := newFakePricing()
	loader := NewLoader(pricing, pricing)

	detail := loader.Load(context.Background(), types.CategoryFiat, "USD")

	assert.Equal(t, StateFound, detail.State)
	assert.Equal(t, "US Dollar", detail.Currency.Name)
	assert.True(t, detail.Spot.Valid)
	assert.Equal(t, "1.235", detail.Spot.Decimal.String())
	assert.True(t, detail.Buy.Valid)
	assert.True(t, detail.Sell.Valid)
}

func TestLoadCryptoUsesCryptoList(t *testing.T) {
	pricing := newFakePricing()
	loader := NewLoader(pricing, pricing)

	detail := loader.Load(context.Background(), types.CategoryCrypto, "BTC")

	assert.Equal(t, StateFound, detail.State)
	assert.Equal(t, "Bitcoin", detail.Currency.Name)
}

func TestPartialPriceFailure(t *testing.T) {
	pricing := newFakePricing()
	pricing.priceErrs[types.SideBuy] = errors.New("upstream down")

	loader := NewLoader(pricing, pricing)

	detail := loader.Load(context.Background(), types.CategoryFiat, "USD")

	assert.Equal(t, StateFound, detail.State)
	assert.True(t, detail.Spot.Valid)
	assert.False(t, detail.Buy.Valid)
	assert.True(t, detail.Sell.Valid)
}

func TestListFailureSurfacesNotFound(t *testing.T) {
	pricing := newFakePricing()
	pricing.listErr = errors.New("upstream down")

	loader := NewLoader(pricing, pricing)

	detail := loader.Load(context.Background(), types.CategoryFiat, "USD")

	assert.Equal(t, StateNotFound, detail.State)
}

func TestDisposedLoaderDiscardsResult(t *testing.T) {
	pricing := newFakePricing()
	loader := NewLoader(pricing, pricing)
	loader.Dispose()

	detail := loader.Load(context.Background(), types.CategoryFiat, "USD")

	assert.Equal(t, StateIdle, detail.State)
}
