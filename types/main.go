package types

import "github.com/shopspring/decimal"

type Category = string

var (
	CategoryFiat   Category = "fiat"
	CategoryCrypto Category = "crypto"
)

// ValidCategory reports whether the category discriminator is recognized.
func ValidCategory(category Category) bool {
	return category == CategoryFiat || category == CategoryCrypto
}

// Currency is the uniform shape for fiat and crypto entries. The upstream
// API keys fiat by "id" and crypto by "code"; Identifier carries whichever
// applies so both categories are handled the same way.
type Currency struct {
	Identifier string   `json:"identifier"`
	Name       string   `json:"name"`
	Category   Category `json:"category"`
}

type PriceSide = string

var (
	SideSpot PriceSide = "spot"
	SideBuy  PriceSide = "buy"
	SideSell PriceSide = "sell"
)

// ConversionQuote is ephemeral, fetched fresh per conversion and never cached.
type ConversionQuote struct {
	FromIdentifier string          `json:"from_identifier"`
	ToIdentifier   string          `json:"to_identifier"`
	Rate           decimal.Decimal `json:"rate"`
}

type Bucket = string

var (
	BucketFiat           Bucket = "fiat"
	BucketCrypto         Bucket = "crypto"
	BucketFavoriteFiat   Bucket = "favorite_fiat"
	BucketFavoriteCrypto Bucket = "favorite_crypto"
)

// CategoryOf maps a picker bucket to the category its currencies belong to.
func CategoryOf(bucket Bucket) Category {
	if bucket == BucketCrypto || bucket == BucketFavoriteCrypto {
		return CategoryCrypto
	}

	return CategoryFiat
}

func ValidBucket(bucket Bucket) bool {
	switch bucket {
	case BucketFiat, BucketCrypto, BucketFavoriteFiat, BucketFavoriteCrypto:
		return true
	}

	return false
}

func IsFavoriteBucket(bucket Bucket) bool {
	return bucket == BucketFavoriteFiat || bucket == BucketFavoriteCrypto
}

type ConversionSide = string

var (
	SideFrom ConversionSide = "from"
	SideTo   ConversionSide = "to"
)
