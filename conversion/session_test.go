package conversion

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/types"
)

type fakeRates struct {
	rate  string
	err   error
	calls int
}

func (f *fakeRates) ConversionRate(ctx context.Context, from string, to string) (decimal.Decimal, error) {
	f.calls++

	if f.err != nil {
		return decimal.Zero, f.err
	}

	return decimal.RequireFromString(f.rate), nil
}

func TestMain(m *testing.M) {
	config.NewLoggerService()
	os.Exit(m.Run())
}

func usd() types.Currency {
	return types.Currency{Identifier: "USD", Name: "US Dollar", Category: types.CategoryFiat}
}

func eur() types.Currency {
	return types.Currency{Identifier: "EUR", Name: "Euro", Category: types.CategoryFiat}
}

func readySession(rates RateSource) *Session {
	session := NewSession("UID001", rates)
	session.SelectBucket(types.SideFrom, types.BucketFiat)
	session.Pick(context.Background(), types.SideFrom, usd())
	session.SelectBucket(types.SideTo, types.BucketFiat)
	session.Pick(context.Background(), types.SideTo, eur())

	return session
}

func TestParseAmount(t *testing.T) {
	parsed, ok := ParseAmount("1,5")
	assert.True(t, ok)
	assert.Equal(t, "1.5", parsed.String())

	parsed, ok = ParseAmount("0,")
	assert.True(t, ok)
	assert.True(t, parsed.IsZero())

	_, ok = ParseAmount("abc")
	assert.False(t, ok)

	_, ok = ParseAmount(",")
	assert.False(t, ok)
}

func TestConversionRounding(t *testing.T) {
	rates := &fakeRates{rate: "3.14159"}
	session := readySession(rates)

	session.SetAmount(context.Background(), "2")

	assert.Equal(t, "6.283", session.Result().String())
}

func TestConversionWithCommaAmount(t *testing.T) {
	rates := &fakeRates{rate: "2.000"}
	session := readySession(rates)

	session.SetAmount(context.Background(), "1,5")

	// 1.5 * 2.000 = 3, rendered without trailing zeros
	assert.Equal(t, "3", session.Result().String())
}

func TestNonNumericAmountSkipsNetwork(t *testing.T) {
	rates := &fakeRates{rate: "2"}
	session := readySession(rates)
	calls := rates.calls

	session.SetAmount(context.Background(), "12x4")

	assert.True(t, session.Result().IsZero())
	assert.Equal(t, calls, rates.calls)
}

func TestRateFailureResetsResultToZero(t *testing.T) {
	rates := &fakeRates{rate: "2"}
	session := readySession(rates)

	session.SetAmount(context.Background(), "4")
	assert.Equal(t, "8", session.Result().String())

	rates.err = errors.New("upstream down")
	session.SetAmount(context.Background(), "5")

	assert.True(t, session.Result().IsZero())
}

func TestDigitEntry(t *testing.T) {
	rates := &fakeRates{rate: "2"}
	session := readySession(rates)

	session.PressDigit(context.Background(), "1")
	session.PressDigit(context.Background(), "2")

	assert.Equal(t, "12", session.Amount())
	assert.Equal(t, "24", session.Result().String())
}

func TestRedundantLeadingZeroIsNoop(t *testing.T) {
	rates := &fakeRates{rate: "2"}
	session := readySession(rates)

	session.PressDigit(context.Background(), "0")
	session.PressDigit(context.Background(), "0")

	assert.Equal(t, "0", session.Amount())
}

func TestDigitReplacesLoneZero(t *testing.T) {
	rates := &fakeRates{rate: "2"}
	session := readySession(rates)

	session.PressDigit(context.Background(), "0")
	session.PressDigit(context.Background(), "7")

	assert.Equal(t, "7", session.Amount())
}

func TestSeparatorSemantics(t *testing.T) {
	rates := &fakeRates{rate: "2"}
	session := readySession(rates)

	session.PressSeparator(context.Background())
	assert.Equal(t, "0,", session.Amount())

	session.PressSeparator(context.Background())
	assert.Equal(t, "0,", session.Amount())

	session.PressDigit(context.Background(), "5")
	assert.Equal(t, "0,5", session.Amount())
	assert.Equal(t, "1", session.Result().String())
}

func TestClear(t *testing.T) {
	rates := &fakeRates{rate: "2"}
	session := readySession(rates)

	session.SetAmount(context.Background(), "3")
	session.Clear()

	assert.Equal(t, "", session.Amount())
	assert.True(t, session.Result().IsZero())
}

func TestBackspaceToEmptySkipsNetwork(t *testing.T) {
	rates := &fakeRates{rate: "2"}
	session := readySession(rates)

	session.SetAmount(context.Background(), "3")
	calls := rates.calls

	session.Backspace(context.Background())

	assert.Equal(t, "", session.Amount())
	assert.True(t, session.Result().IsZero())
	assert.Equal(t, calls, rates.calls)
}

func TestBackspaceRecomputes(t *testing.T) {
	rates := &fakeRates{rate: "2"}
	session := readySession(rates)

	session.SetAmount(context.Background(), "34")
	session.Backspace(context.Background())

	assert.Equal(t, "3", session.Amount())
	assert.Equal(t, "6", session.Result().String())
}

func TestPressDispatch(t *testing.T) {
	rates := &fakeRates{rate: "2"}
	session := readySession(rates)

	session.Press(context.Background(), "1")
	session.Press(context.Background(), ",")
	session.Press(context.Background(), "5")
	assert.Equal(t, "1,5", session.Amount())

	session.Press(context.Background(), "back")
	assert.Equal(t, "1,", session.Amount())

	session.Press(context.Background(), "C")
	assert.Equal(t, "", session.Amount())
}

func TestDisposedSessionDropsLateResult(t *testing.T) {
	rates := &fakeRates{rate: "2"}
	session := readySession(rates)

	session.SetAmount(context.Background(), "4")
	assert.Equal(t, "8", session.Result().String())

	session.Dispose()
	session.Convert(context.Background())

	// the late apply was dropped, result still the pre-dispose value
	assert.Equal(t, "8", session.Result().String())
}

func TestRegistryLifecycle(t *testing.T) {
	rates := &fakeRates{rate: "2"}
	registry := NewRegistry(rates, time.Minute)

	session := registry.Create("UID001")

	found, ok := registry.Find(session.ID, "UID001")
	assert.True(t, ok)
	assert.Equal(t, session.ID, found.ID)

	_, ok = registry.Find(session.ID, "UID002")
	assert.False(t, ok)

	registry.Delete(session.ID)
	_, ok = registry.Find(session.ID, "UID001")
	assert.False(t, ok)
}

func TestRegistrySweepIdle(t *testing.T) {
	rates := &fakeRates{rate: "2"}
	registry := NewRegistry(rates, time.Nanosecond)

	registry.Create("UID001")
	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, 1, registry.SweepIdle())
	assert.Equal(t, 0, registry.Size())
}
