package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/divisapp/divisa/types"
)

// SortByName returns a copy of the list ordered by display name using a
// locale-aware compare. The sort is stable, sorting twice is a no-op.
func SortByName(list []types.Currency) []types.Currency {
	// a Collator is not safe for concurrent use, so each sort gets its own
	collator := collate.New(language.Spanish, collate.Loose)

	sorted := make([]types.Currency, len(list))
	copy(sorted, list)

	sort.SliceStable(sorted, func(i, j int) bool {
		return collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})

	return sorted
}

// Filter applies a case-insensitive substring match against both name and
// identifier. An empty term returns the original list unchanged.
func Filter(list []types.Currency, term string) []types.Currency {
	if term == "" {
		return list
	}

	search := strings.ToLower(term)
	filtered := make([]types.Currency, 0, len(list))

	for _, currency := range list {
		nameMatch := strings.Contains(strings.ToLower(currency.Name), search)
		idMatch := strings.Contains(strings.ToLower(currency.Identifier), search)

		if nameMatch || idMatch {
			filtered = append(filtered, currency)
		}
	}

	return filtered
}
