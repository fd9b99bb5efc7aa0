package pricing

import "fmt"

// Breakdown is the fully itemized result of a quote calculation. It is
// built once by a calculator and never mutated afterwards; the job
// creation flow persists its fields directly onto the job record.
//
// Subtotal already includes the platform fee; the platform margin is
// folded in and never shown as its own line. TotalAmount is always
// Subtotal + MobileMoneyFee + VAT.
type Breakdown struct {
	BasePrice           float64 `json:"base_price"`
	VegetationSurcharge float64 `json:"vegetation_surcharge"`
	GrowthSurcharge     float64 `json:"growth_surcharge"`
	TerrainSurcharge    float64 `json:"terrain_surcharge"`
	ServiceSurcharge    float64 `json:"service_surcharge"`
	DisposalFee         float64 `json:"disposal_fee"`
	TravelFee           float64 `json:"travel_fee"`
	UrgencyFee          float64 `json:"urgency_fee"`
	Subtotal            float64 `json:"subtotal"`
	MobileMoneyFee      float64 `json:"mobile_money_fee"`
	VAT                 float64 `json:"vat"`
	TotalAmount         float64 `json:"total_amount"`
	EstimatedHours      float64 `json:"estimated_hours"`
}

// LineItem is a single label/amount pair for display.
type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// LineItems returns the non-zero charges in presentation order. The
// service surcharge on tree felling quotes is informational (already
// folded into the base price) but is still listed so customers can see
// what the complex-location premium cost them.
func (b *Breakdown) LineItems() []LineItem {
	items := make([]LineItem, 0, 12)
	add := func(label string, amount float64) {
		if amount != 0 {
			items = append(items, LineItem{Label: label, Amount: amount})
		}
	}

	add("Base price", b.BasePrice)
	add("Vegetation surcharge", b.VegetationSurcharge)
	add("Growth surcharge", b.GrowthSurcharge)
	add("Terrain surcharge", b.TerrainSurcharge)
	add("Service surcharge", b.ServiceSurcharge)
	add("Disposal fee", b.DisposalFee)
	add("Travel fee", b.TravelFee)
	add("Urgency fee", b.UrgencyFee)
	add("Subtotal", b.Subtotal)
	add("Mobile money fee", b.MobileMoneyFee)
	add("VAT", b.VAT)
	add("Total", b.TotalAmount)

	return items
}

// FormatAmount renders a currency amount for display, e.g. "E 134.55".
// Rounding to two decimals happens here only; calculations keep full
// float precision throughout.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("E %.2f", amount)
}
