//go:build unit

package billing_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/billing"
	"hotelier/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	t.Run("basic breakdown", func(t *testing.T) {
		actual, err := builder.NewInvoiceBuilder().BuildDomain()
		require.NoError(t, err)

		// 36000 stay + 4000 services, 10% tax
		assert.Equal(t, int64(40000), actual.SubtotalCents())
		assert.Equal(t, int64(4000), actual.TaxCents())
		assert.Equal(t, int64(0), actual.DiscountCents())
		assert.Equal(t, int64(44000), actual.TotalCents())
		assert.Equal(t, billing.InvoiceStatusPending, actual.Status())
	})

	t.Run("tax rounds half up at the cent", func(t *testing.T) {
		cases := []struct {
			name     string
			subtotal int64
			rate     float64
			wantTax  int64
		}{
			{"exact", 10000, 10, 1000},
			{"rounds up from .5", 105, 10, 11},   // 10.5 -> 11
			{"rounds down below .5", 104, 10, 10}, // 10.4 -> 10
			{"fractional rate", 9999, 6.25, 625},  // 624.9375 -> 625
			{"zero rate", 9999, 0, 0},
			// rates whose basis-point product is not exactly representable
			// as a float64 must not lose a cent to truncation
			{"rate 4.35", 10000, 4.35, 435},
			{"rate 8.7", 10000, 8.7, 870},
			{"rate 16.9", 10000, 16.9, 1690},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := builder.NewInvoiceBuilder().With(func(b *builder.InvoiceBuilder) {
					b.StayPriceCents = tc.subtotal
					b.ServicesCents = 0
					b.TaxRatePercent = tc.rate
				}).BuildDomain()
				require.NoError(t, err)
				assert.Equal(t, tc.wantTax, actual.TaxCents())
			})
		}
	})

	t.Run("discount subtracts from total", func(t *testing.T) {
		actual, err := builder.NewInvoiceBuilder().With(func(b *builder.InvoiceBuilder) {
			b.DiscountCents = 4000
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(40000), actual.TotalCents())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.InvoiceBuilder)
			errIs  error
		}{
			{
				name:   "negative tax rate",
				mutate: func(b *builder.InvoiceBuilder) { b.TaxRatePercent = -1 },
				errIs:  billing.ErrInvalidTaxRate,
			},
			{
				name:   "tax rate above 100",
				mutate: func(b *builder.InvoiceBuilder) { b.TaxRatePercent = 101 },
				errIs:  billing.ErrInvalidTaxRate,
			},
			{
				name:   "negative discount",
				mutate: func(b *builder.InvoiceBuilder) { b.DiscountCents = -1 },
				errIs:  billing.ErrInvalidDiscount,
			},
			{
				name:   "discount exceeds subtotal plus tax",
				mutate: func(b *builder.InvoiceBuilder) { b.DiscountCents = 44001 },
				errIs:  billing.ErrInvalidDiscount,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewInvoiceBuilder().With(tc.mutate).BuildDomain()
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestValidatePayment(t *testing.T) {
	newInvoice := func(t *testing.T) *billing.Invoice {
		t.Helper()
		inv, err := builder.NewInvoiceBuilder().BuildDomain()
		require.NoError(t, err)
		return inv
	}

	t.Run("accepts partial payments up to the total", func(t *testing.T) {
		inv := newInvoice(t) // total 44000
		require.NoError(t, inv.ValidatePayment(20000, 0))
		require.NoError(t, inv.ValidatePayment(24000, 20000))
	})

	t.Run("rejects overpayment", func(t *testing.T) {
		inv := newInvoice(t)
		require.ErrorIs(t, inv.ValidatePayment(44001, 0), billing.ErrOverpayment)
		require.ErrorIs(t, inv.ValidatePayment(1, 44000), billing.ErrOverpayment)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		inv := newInvoice(t)
		require.ErrorIs(t, inv.ValidatePayment(0, 0), billing.ErrInvalidAmount)
		require.ErrorIs(t, inv.ValidatePayment(-100, 0), billing.ErrInvalidAmount)
	})

	t.Run("rejects payments against a voided invoice", func(t *testing.T) {
		inv := newInvoice(t)
		require.NoError(t, inv.Void())
		require.ErrorIs(t, inv.ValidatePayment(100, 0), billing.ErrVoided)
	})

	t.Run("settlement threshold", func(t *testing.T) {
		inv := newInvoice(t)
		assert.False(t, inv.SettledBy(43999))
		assert.True(t, inv.SettledBy(44000))
		assert.True(t, inv.SettledBy(44001))
	})
}

func TestVoid(t *testing.T) {
	inv, err := builder.NewInvoiceBuilder().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, inv.Void())
	assert.Equal(t, billing.InvoiceStatusVoided, inv.Status())

	// Voiding twice fails.
	require.Error(t, inv.Void())
}

func TestFormatInvoiceNumber(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV26080007", billing.FormatInvoiceNumber(now, 7))
}

func TestPaymentMethod(t *testing.T) {
	for _, valid := range []string{"cash", "card", "transfer"} {
		_, err := billing.NewPaymentMethod(valid)
		require.NoError(t, err, valid)
	}

	_, err := billing.NewPaymentMethod("cheque")
	require.Error(t, err)
}

func TestCardDetails(t *testing.T) {
	valid := billing.CardDetails{
		Number:     "4242 4242 4242 4242",
		HolderName: "ANA SILVA",
		ExpiryMM:   12,
		ExpiryYY:   28,
		CVV:        "123",
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*billing.CardDetails)
	}{
		{"short number", func(c *billing.CardDetails) { c.Number = "4242" }},
		{"letters in number", func(c *billing.CardDetails) { c.Number = "4242abcd42424242" }},
		{"blank holder", func(c *billing.CardDetails) { c.HolderName = "  " }},
		{"month zero", func(c *billing.CardDetails) { c.ExpiryMM = 0 }},
		{"month thirteen", func(c *billing.CardDetails) { c.ExpiryMM = 13 }},
		{"negative year", func(c *billing.CardDetails) { c.ExpiryYY = -1 }},
		{"three digit year", func(c *billing.CardDetails) { c.ExpiryYY = 100 }},
		{"short cvv", func(c *billing.CardDetails) { c.CVV = "12" }},
		{"long cvv", func(c *billing.CardDetails) { c.CVV = "12345" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card := valid
			tc.mutate(&card)
			require.ErrorIs(t, card.Validate(), billing.ErrInvalidCardDetails)
		})
	}
}
