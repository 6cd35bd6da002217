package screener

import (
	"math"
	"testing"

	"github.com/wonny/divscreen/internal/contracts"
)

func TestFairValue(t *testing.T) {
	tests := []struct {
		name       string
		bvps       contracts.Metric
		eps        contracts.Metric
		override   float64
		wantValid  bool
		wantValue  float64
		wantManual bool
	}{
		{
			name:      "graham number",
			bvps:      contracts.Defined(1334),
			eps:       contracts.Defined(222),
			wantValid: true,
			wantValue: math.Sqrt(22.5 * 1334 * 222), // ~2581.3
		},
		{
			name:       "manual override wins",
			bvps:       contracts.Defined(8500),
			eps:        contracts.Defined(850),
			override:   12000,
			wantValid:  true,
			wantValue:  12000,
			wantManual: true,
		},
		{
			name:       "manual override wins even without fundamentals",
			override:   4500,
			wantValid:  true,
			wantValue:  4500,
			wantManual: true,
		},
		{
			name: "negative earnings has no fair value",
			bvps: contracts.Defined(1200),
			eps:  contracts.Defined(-50),
		},
		{
			name: "zero book value has no fair value",
			bvps: contracts.Defined(0),
			eps:  contracts.Defined(100),
		},
		{
			name: "missing bvps has no fair value",
			eps:  contracts.Defined(100),
		},
		{
			name: "missing eps has no fair value",
			bvps: contracts.Defined(1200),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fair, manual := FairValue(tt.bvps, tt.eps, tt.override)

			if fair.Valid != tt.wantValid {
				t.Fatalf("FairValue() valid = %v, want %v", fair.Valid, tt.wantValid)
			}
			if tt.wantValid && math.Abs(fair.Value-tt.wantValue) > 1e-9 {
				t.Errorf("FairValue() = %v, want %v", fair.Value, tt.wantValue)
			}
			if manual != tt.wantManual {
				t.Errorf("FairValue() manual = %v, want %v", manual, tt.wantManual)
			}
		})
	}
}

func TestFairValueScaling(t *testing.T) {
	// sqrt(22.5*b*e) scales by k when both inputs scale by k
	base, _ := FairValue(contracts.Defined(100), contracts.Defined(10), 0)
	scaled, _ := FairValue(contracts.Defined(400), contracts.Defined(40), 0)

	if math.Abs(scaled.Value-4*base.Value) > 1e-9 {
		t.Errorf("scaling inconsistent: 4x inputs gave %v, want %v", scaled.Value, 4*base.Value)
	}
}

func TestDiscountPct(t *testing.T) {
	tests := []struct {
		name      string
		fair      contracts.Metric
		price     contracts.Metric
		wantValid bool
		wantValue float64
	}{
		{
			name:      "undervalued",
			fair:      contracts.Defined(12000),
			price:     contracts.Defined(9000),
			wantValid: true,
			wantValue: 25,
		},
		{
			name:      "overvalued is negative",
			fair:      contracts.Defined(2581.3),
			price:     contracts.Defined(2700),
			wantValid: true,
			wantValue: (2581.3 - 2700) / 2581.3 * 100, // ~-4.6
		},
		{
			name:  "undefined fair value",
			price: contracts.Defined(2700),
		},
		{
			name: "undefined price",
			fair: contracts.Defined(2500),
		},
		{
			name:  "non-positive fair value",
			fair:  contracts.Defined(0),
			price: contracts.Defined(2700),
		},
		{
			name:  "zero price",
			fair:  contracts.Defined(100),
			price: contracts.Defined(0),
		},
		{
			name:  "negative price",
			fair:  contracts.Defined(100),
			price: contracts.Defined(-50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountPct(tt.fair, tt.price)
			if got.Valid != tt.wantValid {
				t.Fatalf("DiscountPct() valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if tt.wantValid && math.Abs(got.Value-tt.wantValue) > 1e-9 {
				t.Errorf("DiscountPct() = %v, want %v", got.Value, tt.wantValue)
			}
		})
	}
}

func TestDividendYieldPct(t *testing.T) {
	got := DividendYieldPct(contracts.Defined(450), contracts.Defined(9000))
	if !got.Valid || math.Abs(got.Value-5) > 1e-9 {
		t.Errorf("DividendYieldPct() = %+v, want defined 5", got)
	}

	if got := DividendYieldPct(contracts.Defined(450), contracts.Defined(0)); got.Valid {
		t.Errorf("DividendYieldPct() with zero price = %+v, want undefined", got)
	}
	if got := DividendYieldPct(contracts.Defined(450), contracts.Metric{}); got.Valid {
		t.Errorf("DividendYieldPct() with missing price = %+v, want undefined", got)
	}
	if got := DividendYieldPct(contracts.Metric{}, contracts.Defined(9000)); got.Valid {
		t.Errorf("DividendYieldPct() with missing dividend = %+v, want undefined", got)
	}
}
