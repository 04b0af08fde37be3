package booking

import (
	"testing"

	"stayhub/models"
)

func TestQuoteBreakdown(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProperty())

	// 2 nights at 10000 = 20000 subtotal, 2000 cleaning, 10% service fee
	// on the subtotal, 8% tax on subtotal plus fees.
	quote, err := engine.Quote("prop-1", "2026-03-01", "2026-03-03")
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}

	if quote.NumNights != 2 {
		t.Fatalf("expected 2 nights, got %d", quote.NumNights)
	}
	if quote.Subtotal != 20000 {
		t.Fatalf("expected subtotal 20000, got %d", quote.Subtotal)
	}
	if quote.CleaningFee != 2000 {
		t.Fatalf("expected cleaning fee 2000, got %d", quote.CleaningFee)
	}
	if quote.ServiceFee != 2000 {
		t.Fatalf("expected service fee 2000, got %d", quote.ServiceFee)
	}
	if quote.Taxes != 1920 {
		t.Fatalf("expected taxes 1920, got %d", quote.Taxes)
	}
	if quote.Total != 25920 {
		t.Fatalf("expected total 25920, got %d", quote.Total)
	}
	if quote.Currency != "USD" {
		t.Fatalf("expected currency USD, got %s", quote.Currency)
	}
}

func TestQuoteUsesCustomPrices(t *testing.T) {
	engine, _, avail, _ := newTestEngine(testProperty())
	avail.overrides["2026-03-02"] = models.AvailabilityDay{
		PropertyID:  "prop-1",
		Date:        "2026-03-02",
		IsAvailable: true,
		CustomPrice: int64Ptr(15000),
	}

	quote, err := engine.Quote("prop-1", "2026-03-01", "2026-03-03")
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if quote.Subtotal != 25000 {
		t.Fatalf("expected subtotal 25000 with custom price, got %d", quote.Subtotal)
	}
}

func TestQuoteIsDeterministic(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProperty())

	first, err := engine.Quote("prop-1", "2026-03-01", "2026-03-08")
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := engine.Quote("prop-1", "2026-03-01", "2026-03-08")
		if err != nil {
			t.Fatalf("Quote failed on repeat %d: %v", i, err)
		}
		if *again != *first {
			t.Fatalf("quote changed between identical calls: %+v vs %+v", again, first)
		}
	}
}

func TestQuoteBlockedDay(t *testing.T) {
	engine, _, avail, _ := newTestEngine(testProperty())
	avail.overrides["2026-03-02"] = models.AvailabilityDay{
		PropertyID: "prop-1",
		Date:       "2026-03-02",
	}

	_, err := engine.Quote("prop-1", "2026-03-01", "2026-03-03")
	if ErrCode(err) != CodeUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestQuoteFallsBackToDefaultServiceFee(t *testing.T) {
	prop := testProperty()
	prop.ServiceFeeBps = 0
	engine, _, _, _ := newTestEngine(prop)

	quote, err := engine.Quote("prop-1", "2026-03-01", "2026-03-03")
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	// DefaultServiceFeeBps is 1200 in the test engine.
	if quote.ServiceFee != 2400 {
		t.Fatalf("expected default service fee 2400, got %d", quote.ServiceFee)
	}
}

func TestFlatTaxPolicyRoundsDown(t *testing.T) {
	policy := FlatTaxPolicy{RateBps: 825}

	// 10001 * 825 / 10000 = 825.08..., integer division keeps it at 825.
	if got := policy.TaxAmount(10001, 0); got != 825 {
		t.Fatalf("expected 825, got %d", got)
	}
	if got := policy.TaxAmount(0, 0); got != 0 {
		t.Fatalf("expected 0 tax on zero amount, got %d", got)
	}
}
