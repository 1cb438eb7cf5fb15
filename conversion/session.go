package conversion

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/types"
)

// RateSource is the slice of the pricing client a conversion needs.
type RateSource interface {
	ConversionRate(ctx context.Context, from string, to string) (decimal.Decimal, error)
}

// DecimalMark is the locale decimal separator used for amount entry and
// receipt rendering.
const DecimalMark = ","

// ResultPrecision is the number of decimal places conversion results are
// rounded to.
const ResultPrecision = 3

type Selection struct {
	Bucket   types.Bucket    `json:"bucket"`
	Currency *types.Currency `json:"currency"`
}

// Session models one conversion screen: a from/to selection, the amount text
// entered through the keypad and the last computed result. Handlers run
// concurrently, so every mutation goes through the mutex; a generation
// counter drops rate responses that arrive after a newer mutation or after
// the session was disposed.
type Session struct {
	ID        string
	MemberUID string

	mu         sync.Mutex
	from       Selection
	to         Selection
	amount     string
	result     decimal.Decimal
	rates      RateSource
	generation uint64
	disposed   bool
	touchedAt  time.Time
}

func NewSession(uid string, rates RateSource) *Session {
	return &Session{
		ID:        uuid.New().String(),
		MemberUID: uid,
		rates:     rates,
		result:    decimal.Zero,
		touchedAt: time.Now(),
	}
}

// SelectBucket opens a picker for one side: the currency of that side is
// cleared until Pick resolves one.
func (s *Session) SelectBucket(side types.ConversionSide, bucket types.Bucket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if side == types.SideFrom {
		s.from = Selection{Bucket: bucket}
	} else {
		s.to = Selection{Bucket: bucket}
	}

	s.touchedAt = time.Now()
}

// Pick resolves a currency for one side and, when both sides and an amount
// are present, immediately triggers conversion.
func (s *Session) Pick(ctx context.Context, side types.ConversionSide, currency types.Currency) {
	s.mu.Lock()

	if side == types.SideFrom {
		s.from.Currency = &currency
	} else {
		s.to.Currency = &currency
	}

	s.touchedAt = time.Now()
	s.mu.Unlock()

	s.Convert(ctx)
}

// ClearSelection resets one side and zeroes the result.
func (s *Session) ClearSelection(side types.ConversionSide) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if side == types.SideFrom {
		s.from = Selection{}
	} else {
		s.to = Selection{}
	}

	s.result = decimal.Zero
	s.generation++
	s.touchedAt = time.Now()
}

// Press handles one keypad key: a digit, the decimal separator, "C" for
// clear or "back" for backspace.
func (s *Session) Press(ctx context.Context, key string) {
	switch key {
	case "C":
		s.Clear()
	case "back", "⌫":
		s.Backspace(ctx)
	case DecimalMark:
		s.PressSeparator(ctx)
	default:
		s.PressDigit(ctx, key)
	}
}

// PressDigit appends a digit, guarding against a redundant leading zero.
func (s *Session) PressDigit(ctx context.Context, digit string) {
	s.mu.Lock()

	if digit == "0" && s.amount == "0" {
		s.mu.Unlock()
		return
	}

	if s.amount == "0" {
		s.amount = digit
	} else {
		s.amount += digit
	}

	s.touchedAt = time.Now()
	s.mu.Unlock()

	s.Convert(ctx)
}

// PressSeparator appends the decimal mark once; on an empty amount it seeds
// "0," so the entry stays a valid number prefix.
func (s *Session) PressSeparator(ctx context.Context) {
	s.mu.Lock()

	if s.amount == "" {
		s.amount = "0" + DecimalMark
	} else if strings.Contains(s.amount, DecimalMark) {
		s.mu.Unlock()
		return
	} else {
		s.amount += DecimalMark
	}

	s.touchedAt = time.Now()
	s.mu.Unlock()

	s.Convert(ctx)
}

// Clear resets the amount and the result. No conversion is triggered.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.amount = ""
	s.result = decimal.Zero
	s.generation++
	s.touchedAt = time.Now()
}

// Backspace removes the last character; emptying the amount zeroes the
// result without a network call, otherwise the conversion is recomputed.
func (s *Session) Backspace(ctx context.Context) {
	s.mu.Lock()

	if s.amount != "" {
		runes := []rune(s.amount)
		s.amount = string(runes[:len(runes)-1])
	}

	if s.amount == "" {
		s.result = decimal.Zero
		s.generation++
		s.touchedAt = time.Now()
		s.mu.Unlock()
		return
	}

	s.touchedAt = time.Now()
	s.mu.Unlock()

	s.Convert(ctx)
}

// SetAmount replaces the whole amount text, as the one-shot conversion
// endpoint does.
func (s *Session) SetAmount(ctx context.Context, amount string) {
	s.mu.Lock()
	s.amount = amount
	s.touchedAt = time.Now()
	s.mu.Unlock()

	s.Convert(ctx)
}

// ParseAmount substitutes the decimal mark with a period and parses the
// result. The boolean is false for anything that is not a valid number.
func ParseAmount(amount string) (decimal.Decimal, bool) {
	normalized := strings.ReplaceAll(amount, DecimalMark, ".")

	// a trailing mark ("1,") still reads as a number, like parseFloat
	if len(normalized) > 1 && strings.HasSuffix(normalized, ".") {
		normalized += "0"
	}

	parsed, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, false
	}

	return parsed, true
}

// Convert recomputes the result from the current inputs. Incomplete or
// non-numeric input zeroes the result without touching the network. A failed
// or malformed rate response also resets the result to zero, a stale result
// must never survive a failed refresh.
func (s *Session) Convert(ctx context.Context) {
	s.mu.Lock()

	s.generation++
	generation := s.generation

	if s.from.Currency == nil || s.to.Currency == nil || s.amount == "" {
		s.result = decimal.Zero
		s.mu.Unlock()
		return
	}

	parsed, ok := ParseAmount(s.amount)
	if !ok {
		s.result = decimal.Zero
		s.mu.Unlock()
		return
	}

	from := s.from.Currency.Identifier
	to := s.to.Currency.Identifier
	s.mu.Unlock()

	if from == "" || to == "" {
		return
	}

	rate, err := s.rates.ConversionRate(ctx, from, to)

	s.mu.Lock()
	defer s.mu.Unlock()

	// a response for a superseded keypress or a disposed session is stale
	if s.disposed || s.generation != generation {
		return
	}

	if err != nil {
		config.Logger.Errorf("Failed to fetch %s-%s rate: %v", from, to, err)
		s.result = decimal.Zero
		return
	}

	s.result = parsed.Mul(rate).Round(ResultPrecision)
}

// Dispose marks the session dead; in-flight conversions are discarded when
// they land.
func (s *Session) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disposed = true
}

func (s *Session) Amount() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.amount
}

func (s *Session) Result() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.result
}

func (s *Session) From() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.from
}

func (s *Session) To() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.to
}

func (s *Session) TouchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.touchedAt
}
