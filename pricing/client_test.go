package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/divisapp/divisa/types"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)

	client := &Client{
		BaseURL:           server.URL,
		ReferenceCurrency: "USD",
		HTTPClient:        &http.Client{Timeout: time.Second},
	}

	return client, server
}

func TestCurrencies(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/currencies", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":"USD","name":"US Dollar"},{"id":"EUR","name":"Euro"}]}`))
	}))
	defer server.Close()

	currencies, err := client.Currencies(context.Background())

	assert.NoError(t, err)
	assert.Len(t, currencies, 2)
	assert.Equal(t, "USD", currencies[0].Identifier)
	assert.Equal(t, types.CategoryFiat, currencies[0].Category)
}

func TestCryptoCurrenciesUsesCodeField(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/currencies/crypto", r.URL.Path)
		w.Write([]byte(`{"data":[{"code":"BTC","name":"Bitcoin"},{"code":"","name":"Broken"}]}`))
	}))
	defer server.Close()

	currencies, err := client.CryptoCurrencies(context.Background())

	assert.NoError(t, err)
	assert.Len(t, currencies, 1)
	assert.Equal(t, "BTC", currencies[0].Identifier)
	assert.Equal(t, types.CategoryCrypto, currencies[0].Category)
}

func TestSpotPrice(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/prices/BTC-USD/spot", r.URL.Path)
		w.Write([]byte(`{"data":{"amount":"64230.125"}}`))
	}))
	defer server.Close()

	price, err := client.SpotPrice(context.Background(), "BTC")

	assert.NoError(t, err)
	assert.Equal(t, "64230.125", price.String())
}

func TestConversionRate(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/prices/EUR-BTC/spot", r.URL.Path)
		w.Write([]byte(`{"data":{"amount":"0.0000171"}}`))
	}))
	defer server.Close()

	rate, err := client.ConversionRate(context.Background(), "EUR", "BTC")

	assert.NoError(t, err)
	assert.Equal(t, "0.0000171", rate.String())
}

func TestQuoteTagsThePair(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"amount":"0.92"}}`))
	}))
	defer server.Close()

	quote, err := client.Quote(context.Background(), "USD", "EUR")

	assert.NoError(t, err)
	assert.Equal(t, "USD", quote.FromIdentifier)
	assert.Equal(t, "EUR", quote.ToIdentifier)
	assert.Equal(t, "0.92", quote.Rate.String())
}

func TestMalformedAmount(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"amount":"not-a-number"}}`))
	}))
	defer server.Close()

	_, err := client.SpotPrice(context.Background(), "BTC")

	assert.Error(t, err)
}

func TestEmptyAmount(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	_, err := client.SpotPrice(context.Background(), "BTC")

	assert.Error(t, err)
}

func TestUpstreamFailureStatus(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := client.Currencies(context.Background())

	assert.Error(t, err)
}
