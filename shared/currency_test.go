package shared_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"corebanking/shared"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestConvert_SameCurrency(t *testing.T) {
	amount := dec("123.45")
	got, err := shared.Convert(amount, shared.BGN, shared.BGN)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if !got.Equal(amount) {
		t.Errorf("expected %s unchanged, got %s", amount, got)
	}
}

func TestConvert_FromReference(t *testing.T) {
	got, err := shared.Convert(dec("100"), shared.EUR, shared.BGN)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if !got.Equal(dec("195.583")) {
		t.Errorf("expected 195.583, got %s", got)
	}
}

func TestConvert_ToReference(t *testing.T) {
	got, err := shared.Convert(dec("195.583"), shared.BGN, shared.EUR)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if !got.Equal(dec("100")) {
		t.Errorf("expected 100, got %s", got)
	}
}

func TestConvert_ThroughReference(t *testing.T) {
	// BGN and KM share the same rate, so converting between them must be
	// the identity up to division precision.
	got, err := shared.Convert(dec("50"), shared.BGN, shared.KM)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got.Sub(dec("50")).Abs().GreaterThan(dec("0.0000000001")) {
		t.Errorf("expected ~50, got %s", got)
	}
}

func TestConvert_RejectsNegative(t *testing.T) {
	if _, err := shared.Convert(dec("-1"), shared.EUR, shared.BGN); err == nil {
		t.Error("expected error for negative amount")
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	tolerance := dec("0.0000000001")
	amounts := []decimal.Decimal{decimal.Zero, dec("0.01"), dec("1"), dec("1234.56"), dec("99999.99")}
	for _, from := range shared.All() {
		for _, to := range shared.All() {
			for _, amount := range amounts {
				there, err := shared.Convert(amount, from, to)
				if err != nil {
					t.Fatalf("Convert(%s, %s, %s) failed: %v", amount, from, to, err)
				}
				back, err := shared.Convert(there, to, from)
				if err != nil {
					t.Fatalf("Convert(%s, %s, %s) failed: %v", there, to, from, err)
				}
				if back.Sub(amount).Abs().GreaterThan(tolerance) {
					t.Errorf("round trip %s %s->%s->%s drifted to %s", amount, from, to, from, back)
				}
			}
		}
	}
}

func TestRescale_PreservesSign(t *testing.T) {
	got := shared.Rescale(dec("-100"), shared.EUR, shared.BGN)
	if !got.Equal(dec("-195.583")) {
		t.Errorf("expected -195.583, got %s", got)
	}
}

func TestParse(t *testing.T) {
	c, err := shared.Parse("LTL")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c != shared.LTL {
		t.Errorf("expected LTL, got %s", c)
	}

	if _, err := shared.Parse("USD"); err == nil {
		t.Error("expected error for unsupported code")
	}
}

func TestRates_Positive(t *testing.T) {
	for _, c := range shared.All() {
		if !c.Rate().IsPositive() {
			t.Errorf("rate of %s must be positive, got %s", c, c.Rate())
		}
	}
	if !shared.Reference.Rate().Equal(decimal.NewFromInt(1)) {
		t.Errorf("reference currency must have rate 1, got %s", shared.Reference.Rate())
	}
}
