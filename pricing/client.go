package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/types"
)

// Client issues read-only requests against the public pricing API. It is
// stateless, every call is independent and nothing is cached.
type Client struct {
	BaseURL           string
	ReferenceCurrency string
	HTTPClient        *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:           config.Pricing.BaseURL,
		ReferenceCurrency: config.Pricing.ReferenceCurrency,
		HTTPClient: &http.Client{
			Timeout: config.Pricing.Timeout(),
		},
	}
}

type currencyRecord struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Identifier returns whichever key field the category uses upstream.
func (r currencyRecord) Identifier() string {
	if r.ID != "" {
		return r.ID
	}

	return r.Code
}

type currencyListResponse struct {
	Data []currencyRecord `json:"data"`
}

type priceResponse struct {
	Data struct {
		Amount string `json:"amount"`
	} `json:"data"`
}

// Currencies fetches the fiat list from /v2/currencies.
func (c *Client) Currencies(ctx context.Context) ([]types.Currency, error) {
	return c.fetchList(ctx, "/v2/currencies", types.CategoryFiat)
}

// CryptoCurrencies fetches the crypto list from /v2/currencies/crypto.
func (c *Client) CryptoCurrencies(ctx context.Context) ([]types.Currency, error) {
	return c.fetchList(ctx, "/v2/currencies/crypto", types.CategoryCrypto)
}

func (c *Client) fetchList(ctx context.Context, path string, category types.Category) ([]types.Currency, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var payload currencyListResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	currencies := make([]types.Currency, 0, len(payload.Data))
	for _, record := range payload.Data {
		if record.Identifier() == "" || record.Name == "" {
			continue
		}

		currencies = append(currencies, types.Currency{
			Identifier: record.Identifier(),
			Name:       record.Name,
			Category:   category,
		})
	}

	return currencies, nil
}

// Price fetches the spot, buy or sell price of a currency against the
// reference currency.
func (c *Client) Price(ctx context.Context, identifier string, side types.PriceSide) (decimal.Decimal, error) {
	path := fmt.Sprintf("/v2/prices/%s-%s/%s", identifier, c.ReferenceCurrency, side)

	return c.fetchAmount(ctx, path)
}

func (c *Client) SpotPrice(ctx context.Context, identifier string) (decimal.Decimal, error) {
	return c.Price(ctx, identifier, types.SideSpot)
}

func (c *Client) BuyPrice(ctx context.Context, identifier string) (decimal.Decimal, error) {
	return c.Price(ctx, identifier, types.SideBuy)
}

func (c *Client) SellPrice(ctx context.Context, identifier string) (decimal.Decimal, error) {
	return c.Price(ctx, identifier, types.SideSell)
}

// ConversionRate fetches the spot rate for the from->to pair.
func (c *Client) ConversionRate(ctx context.Context, from string, to string) (decimal.Decimal, error) {
	path := fmt.Sprintf("/v2/prices/%s-%s/spot", from, to)

	return c.fetchAmount(ctx, path)
}

// Quote fetches the rate as a pair-tagged record.
func (c *Client) Quote(ctx context.Context, from string, to string) (types.ConversionQuote, error) {
	rate, err := c.ConversionRate(ctx, from, to)
	if err != nil {
		return types.ConversionQuote{}, err
	}

	return types.ConversionQuote{
		FromIdentifier: from,
		ToIdentifier:   to,
		Rate:           rate,
	}, nil
}

func (c *Client) fetchAmount(ctx context.Context, path string) (decimal.Decimal, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return decimal.Zero, err
	}

	var payload priceResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return decimal.Zero, err
	}

	if payload.Data.Amount == "" {
		return decimal.Zero, errors.New("pricing: empty amount in response")
	}

	amount, err := decimal.NewFromString(payload.Data.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("pricing: malformed amount %q", payload.Data.Amount)
	}

	return amount, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pricing: unexpected status code %d for %s", resp.StatusCode, path)
	}

	return ioutil.ReadAll(resp.Body)
}
