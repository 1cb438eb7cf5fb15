package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/divisapp/divisa/types"
)

func currency(id string, name string) types.Currency {
	return types.Currency{Identifier: id, Name: name, Category: types.CategoryFiat}
}

func TestSortByName(t *testing.T) {
	list := []types.Currency{
		currency("USD", "US Dollar"),
		currency("EUR", "Euro"),
		currency("ARS", "Argentine Peso"),
	}

	sorted := SortByName(list)

	assert.Equal(t, "Argentine Peso", sorted[0].Name)
	assert.Equal(t, "Euro", sorted[1].Name)
	assert.Equal(t, "US Dollar", sorted[2].Name)

	// input list untouched
	assert.Equal(t, "US Dollar", list[0].Name)
}

func TestSortByNameIdempotent(t *testing.T) {
	list := []types.Currency{
		currency("EUR", "Euro"),
		currency("ARS", "Argentine Peso"),
		currency("USD", "US Dollar"),
	}

	once := SortByName(list)
	twice := SortByName(once)

	assert.Equal(t, once, twice)
}

func TestSortByNameStable(t *testing.T) {
	list := []types.Currency{
		currency("XOF", "CFA Franc"),
		currency("XAF", "CFA Franc"),
	}

	sorted := SortByName(list)

	assert.Equal(t, "XOF", sorted[0].Identifier)
	assert.Equal(t, "XAF", sorted[1].Identifier)
}

func TestFilterEmptyTermReturnsOriginal(t *testing.T) {
	list := []types.Currency{currency("USD", "US Dollar")}

	assert.Equal(t, list, Filter(list, ""))
}

func TestFilterMatchesNameAndIdentifier(t *testing.T) {
	list := []types.Currency{
		currency("USD", "US Dollar"),
		currency("EUR", "Euro"),
		currency("AUD", "Australian Dollar"),
	}

	byName := Filter(list, "dollar")
	assert.Len(t, byName, 2)

	byID := Filter(list, "eur")
	assert.Len(t, byID, 1)
	assert.Equal(t, "EUR", byID[0].Identifier)
}

func TestFilterCaseInsensitive(t *testing.T) {
	list := []types.Currency{currency("BTC", "Bitcoin")}

	assert.Len(t, Filter(list, "BITCOIN"), 1)
	assert.Len(t, Filter(list, "btc"), 1)
}

func TestFilterNoMatchReturnsEmpty(t *testing.T) {
	list := []types.Currency{currency("USD", "US Dollar")}

	filtered := Filter(list, "zzz")

	assert.NotNil(t, filtered)
	assert.Len(t, filtered, 0)
}
