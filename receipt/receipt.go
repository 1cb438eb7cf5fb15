package receipt

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/divisapp/divisa/types"
)

// Receipt is the fixed-field record of one completed conversion. The layout
// and the comma decimal formatting are the only contract the application
// owns; delivery (download vs. share sheet) belongs to the client.
type Receipt struct {
	From   types.Currency
	To     types.Currency
	Amount decimal.Decimal
	Result decimal.Decimal
}

var ErrIncomplete = errors.New("receipt: currencies, amount and a nonzero result are required")

func (r Receipt) Validate() error {
	if r.From.Identifier == "" || r.To.Identifier == "" {
		return ErrIncomplete
	}
	if r.Amount.IsZero() || r.Result.IsZero() {
		return ErrIncomplete
	}

	return nil
}

// FormatAmount renders a decimal with the comma separator used for input.
func FormatAmount(d decimal.Decimal) string {
	return strings.Replace(d.String(), ".", ",", 1)
}

// FormatResult renders a result with exactly three decimal places.
func FormatResult(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(3), ".", ",", 1)
}

// Render produces the receipt PDF.
func (r Receipt) Render() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: 600, Ht: 400},
	})
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	line := func(y float64, size float64, text string) {
		pdf.SetFont("Helvetica", "", size)
		pdf.Text(50, y, tr(text))
	}

	line(50, 18, "Comprobante de conversión")
	line(100, 12, fmt.Sprintf("De: %s - %s", r.From.Name, r.From.Identifier))
	line(150, 12, fmt.Sprintf("A: %s - %s", r.To.Name, r.To.Identifier))
	line(200, 12, fmt.Sprintf("Cantidad: $ %s %s - %s", FormatAmount(r.Amount), r.From.Name, r.From.Identifier))
	line(250, 12, fmt.Sprintf("Resultado: $ %s %s - %s", FormatResult(r.Result), r.To.Name, r.To.Identifier))
	line(350, 18, "¡Gracias por usar CryptoApp!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
