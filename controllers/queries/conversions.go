package queries

import (
	"github.com/divisapp/divisa/controllers/helpers"
	"github.com/divisapp/divisa/types"
)

type CreateConversionParams struct {
	FromIdentifier string `json:"from_identifier" form:"from_identifier" validate:"required"`
	ToIdentifier   string `json:"to_identifier" form:"to_identifier" validate:"required"`
	Amount         string `json:"amount" form:"amount" validate:"required"`
}

func (p CreateConversionParams) Messages() map[string]string {
	return helpers.VaildateMessage("account.conversion")
}

func (p CreateConversionParams) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}

type SelectionParams struct {
	Side   types.ConversionSide `json:"side" form:"side" validate:"required|ValidateSide"`
	Bucket types.Bucket         `json:"bucket" form:"bucket" validate:"required|ValidateBucket"`
}

func (p SelectionParams) ValidateSide(side types.ConversionSide) bool {
	return side == types.SideFrom || side == types.SideTo
}

func (p SelectionParams) ValidateBucket(bucket types.Bucket) bool {
	return types.ValidBucket(bucket)
}

func (p SelectionParams) Messages() map[string]string {
	return helpers.VaildateMessage("account.conversion_session")
}

func (p SelectionParams) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}

type PickParams struct {
	Side       types.ConversionSide `json:"side" form:"side" validate:"required|ValidateSide"`
	Identifier string               `json:"identifier" form:"identifier" validate:"required"`
}

func (p PickParams) ValidateSide(side types.ConversionSide) bool {
	return side == types.SideFrom || side == types.SideTo
}

func (p PickParams) Messages() map[string]string {
	return helpers.VaildateMessage("account.conversion_session")
}

func (p PickParams) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}

type KeyParams struct {
	Key string `json:"key" form:"key" validate:"required"`
}

func (p KeyParams) Messages() map[string]string {
	return helpers.VaildateMessage("account.conversion_session")
}

func (p KeyParams) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}

type ClearSelectionParams struct {
	Side types.ConversionSide `json:"side" form:"side" validate:"required|ValidateSide"`
}

func (p ClearSelectionParams) ValidateSide(side types.ConversionSide) bool {
	return side == types.SideFrom || side == types.SideTo
}

func (p ClearSelectionParams) Messages() map[string]string {
	return helpers.VaildateMessage("account.conversion_session")
}

func (p ClearSelectionParams) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}

type CreateReceiptParams struct {
	SessionID string `json:"session_id" form:"session_id" validate:"required"`
}

func (p CreateReceiptParams) Messages() map[string]string {
	return helpers.VaildateMessage("account.receipt")
}

func (p CreateReceiptParams) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}

type PickerFilters struct {
	Side   types.ConversionSide `query:"side"`
	Search string               `query:"search"`
}

func (t PickerFilters) Messages() map[string]string {
	return helpers.VaildateMessage("account.conversion_session")
}

func (t PickerFilters) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}
