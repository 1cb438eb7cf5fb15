package receipt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/divisapp/divisa/types"
)

func sample() Receipt {
	return Receipt{
		From:   types.Currency{Identifier: "USD", Name: "US Dollar", Category: types.CategoryFiat},
		To:     types.Currency{Identifier: "EUR", Name: "Euro", Category: types.CategoryFiat},
		Amount: decimal.RequireFromString("1.5"),
		Result: decimal.RequireFromString("1.388"),
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,5", FormatAmount(decimal.RequireFromString("1.5")))
	assert.Equal(t, "2", FormatAmount(decimal.RequireFromString("2")))
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "3,000", FormatResult(decimal.RequireFromString("3")))
	assert.Equal(t, "6,283", FormatResult(decimal.RequireFromString("6.283")))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, sample().Validate())

	missing := sample()
	missing.To = types.Currency{}
	assert.ErrorIs(t, missing.Validate(), ErrIncomplete)

	zero := sample()
	zero.Result = decimal.Zero
	assert.ErrorIs(t, zero.Validate(), ErrIncomplete)
}

func TestRender(t *testing.T) {
	buf, err := sample().Render()

	assert.NoError(t, err)
	assert.True(t, len(buf) > 0)
	assert.Equal(t, "%PDF", string(buf[:4]))
}

func TestRenderIncomplete(t *testing.T) {
	incomplete := sample()
	incomplete.Amount = decimal.Zero

	_, err := incomplete.Render()

	assert.ErrorIs(t, err, ErrIncomplete)
}
