package entities

import (
	"math"
	"testing"
)

func TestComputeTotals(t *testing.T) {
	t.Run("single line", func(t *testing.T) {
		got := ComputeTotals([]LineItem{{Description: "Remplacement chauffe-eau", Quantity: 1, UnitPrice: 450}})
		if got.Subtotal != 450 {
			t.Fatalf("expected subtotal 450, got %v", got.Subtotal)
		}
		if math.Abs(got.Tax-67.3875) > 1e-9 {
			t.Fatalf("expected tax 67.3875, got %v", got.Tax)
		}
		if math.Abs(got.Total-517.3875) > 1e-9 {
			t.Fatalf("expected total 517.3875, got %v", got.Total)
		}
		if RoundCents(got.Total) != 517.39 {
			t.Fatalf("expected display total 517.39, got %v", RoundCents(got.Total))
		}
	})

	t.Run("multi line sums before taxing", func(t *testing.T) {
		items := []LineItem{
			{Quantity: 2, UnitPrice: 99.99},
			{Quantity: 3, UnitPrice: 12.5},
			{Quantity: 1, UnitPrice: 0.01},
		}
		got := ComputeTotals(items)
		sub := 2*99.99 + 3*12.5 + 0.01
		if math.Abs(got.Subtotal-sub) > 1e-9 {
			t.Fatalf("expected subtotal %v, got %v", sub, got.Subtotal)
		}
		want := sub + sub*TaxRateGST + sub*TaxRateQST
		if math.Abs(got.Total-want) > 1e-9 {
			t.Fatalf("expected total %v, got %v", want, got.Total)
		}
	})

	t.Run("tax is two rates summed within a cent", func(t *testing.T) {
		got := ComputeTotals([]LineItem{{Quantity: 7, UnitPrice: 123.45}})
		want := got.Subtotal + got.Subtotal*0.05 + got.Subtotal*0.09975
		if math.Abs(got.Total-want) > 0.01 {
			t.Fatalf("total %v deviates from %v by more than a cent", got.Total, want)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		got := ComputeTotals(nil)
		if got.Subtotal != 0 || got.Tax != 0 || got.Total != 0 {
			t.Fatalf("expected zero totals, got %+v", got)
		}
	})
}

func TestNormalizeLineItem(t *testing.T) {
	t.Run("missing quantity defaults to 1", func(t *testing.T) {
		it := NormalizeLineItem(LineItem{UnitPrice: 80})
		if it.Quantity != 1 || it.Total != 80 {
			t.Fatalf("unexpected item: %+v", it)
		}
	})

	t.Run("NaN price defaults to 0", func(t *testing.T) {
		it := NormalizeLineItem(LineItem{Quantity: 2, UnitPrice: math.NaN()})
		if it.UnitPrice != 0 || it.Total != 0 {
			t.Fatalf("unexpected item: %+v", it)
		}
	})

	t.Run("NaN quantity defaults to 1", func(t *testing.T) {
		it := NormalizeLineItem(LineItem{Quantity: math.NaN(), UnitPrice: 10})
		if it.Quantity != 1 || it.Total != 10 {
			t.Fatalf("unexpected item: %+v", it)
		}
	})

	t.Run("never propagates NaN", func(t *testing.T) {
		got := ComputeTotals([]LineItem{{Quantity: math.NaN(), UnitPrice: math.Inf(1)}})
		if math.IsNaN(got.Total) || math.IsInf(got.Total, 0) {
			t.Fatalf("expected finite total, got %v", got.Total)
		}
	})
}
