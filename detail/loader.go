package detail

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/types"
)

type State = string

var (
	StateIdle            State = "idle"
	StateLoading         State = "loading"
	StateFound           State = "found"
	StateNotFound        State = "not_found"
	StateInvalidCategory State = "invalid_category"
)

// Lister fetches the full currency list the identifier is resolved against.
type Lister interface {
	Currencies(ctx context.Context) ([]types.Currency, error)
	CryptoCurrencies(ctx context.Context) ([]types.Currency, error)
}

// PriceSource fetches one price side against the reference currency.
type PriceSource interface {
	Price(ctx context.Context, identifier string, side types.PriceSide) (decimal.Decimal, error)
}

// Detail is the resolved view: a tagged state instead of loose booleans, so
// "blank but loaded" cannot be represented. Prices stay null when their
// lookup failed.
type Detail struct {
	State    State               `json:"state"`
	Currency *types.Currency     `json:"currency"`
	Spot     decimal.NullDecimal `json:"spot"`
	Buy      decimal.NullDecimal `json:"buy"`
	Sell     decimal.NullDecimal `json:"sell"`
}

// Loader resolves one currency by category and identifier. Each Load
// re-fetches the full list, no list is cached across loads. Dispose drops
// price lookups that land afterwards.
type Loader struct {
	lists  Lister
	prices PriceSource

	mu       sync.Mutex
	disposed bool
}

func NewLoader(lists Lister, prices PriceSource) *Loader {
	return &Loader{
		lists:  lists,
		prices: prices,
	}
}

func (l *Loader) Load(ctx context.Context, category types.Category, identifier string) Detail {
	if !types.ValidCategory(category) {
		return Detail{State: StateInvalidCategory}
	}

	var list []types.Currency
	var err error

	if category == types.CategoryFiat {
		list, err = l.lists.Currencies(ctx)
	} else {
		list, err = l.lists.CryptoCurrencies(ctx)
	}

	if err != nil {
		config.Logger.Errorf("Failed to fetch %s list: %v", category, err)
		return Detail{State: StateNotFound}
	}

	var resolved *types.Currency
	for i := range list {
		if list[i].Identifier == identifier {
			resolved = &list[i]
			break
		}
	}

	if resolved == nil {
		return Detail{State: StateNotFound}
	}

	detail := Detail{
		State:    StateFound,
		Currency: resolved,
	}

	// spot, buy and sell are independent: one failing leaves only its own
	// field null
	var wg sync.WaitGroup
	targets := []struct {
		side  types.PriceSide
		value *decimal.NullDecimal
	}{
		{types.SideSpot, &detail.Spot},
		{types.SideBuy, &detail.Buy},
		{types.SideSell, &detail.Sell},
	}

	for _, target := range targets {
		wg.Add(1)

		go func(side types.PriceSide, value *decimal.NullDecimal) {
			defer wg.Done()

			price, err := l.prices.Price(ctx, identifier, side)
			if err != nil {
				config.Logger.Errorf("Failed to fetch %s %s price: %v", identifier, side, err)
				return
			}

			l.mu.Lock()
			defer l.mu.Unlock()

			if l.disposed {
				return
			}

			value.Decimal = price.Round(3)
			value.Valid = true
		}(target.side, target.value)
	}

	wg.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disposed {
		return Detail{State: StateIdle}
	}

	return detail
}

// Dispose marks the loader dead so late price responses are discarded.
func (l *Loader) Dispose() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.disposed = true
}
