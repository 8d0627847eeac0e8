package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCostBreakdown(t *testing.T) {
	b := CostBreakdown{
		{Label: LabelBasePlatform, Amount: decimal.NewFromInt(750)},
		{Label: LabelSupport, Amount: decimal.NewFromInt(250)},
	}

	if got, ok := b.Get(LabelSupport); !ok || !got.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("unexpected support amount: %v %v", got, ok)
	}
	if _, ok := b.Get("Nope"); ok {
		t.Fatalf("expected missing label")
	}
	if labels := b.Labels(); len(labels) != 2 || labels[0] != LabelBasePlatform {
		t.Fatalf("unexpected labels: %v", labels)
	}
	if m := b.Map(); len(m) != 2 {
		t.Fatalf("unexpected map: %v", m)
	}

	share := b.Share(LabelBasePlatform, decimal.NewFromInt(1000))
	if !share.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("expected 75%%, got %s", share)
	}
	if !b.Share(LabelBasePlatform, decimal.Zero).IsZero() {
		t.Fatalf("expected zero share for zero total")
	}
}
