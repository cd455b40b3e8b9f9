package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiPetDiscount(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  float64
	}{
		{name: "zero subscriptions", count: 0, want: 0},
		{name: "single subscription", count: 1, want: 0},
		{name: "two subscriptions", count: 2, want: -10},
		{name: "three subscriptions", count: 3, want: -15},
		{name: "many subscriptions", count: 8, want: -15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MultiPetDiscount(tt.count))
		})
	}
}

func TestApplyAdjustment(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
		pct       float64
		wantValue float64
		wantFinal float64
	}{
		{name: "no adjustment", basePrice: 50, pct: 0, wantValue: 0, wantFinal: 50},
		{name: "ten percent discount", basePrice: 50, pct: -10, wantValue: -5, wantFinal: 45},
		{name: "fifteen percent discount", basePrice: 100, pct: -15, wantValue: -15, wantFinal: 85},
		{name: "surcharge", basePrice: 80, pct: 25, wantValue: 20, wantFinal: 100},
		{name: "full discount", basePrice: 60, pct: -100, wantValue: -60, wantFinal: 0},
		{name: "zero base", basePrice: 0, pct: -50, wantValue: 0, wantFinal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, final := ApplyAdjustment(tt.basePrice, tt.pct)
			assert.InDelta(t, tt.wantValue, value, 1e-9)
			assert.InDelta(t, tt.wantFinal, final, 1e-9)
			assert.InDelta(t, final-tt.basePrice, value, 1e-9)
		})
	}
}

func TestClampPrice(t *testing.T) {
	assert.Equal(t, 0.0, ClampPrice(-12.5))
	assert.Equal(t, 0.0, ClampPrice(0))
	assert.Equal(t, 42.0, ClampPrice(42))
}

func TestExtractManualAdjustment(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		reason   string
		petCount int
		want     float64
	}{
		{name: "multi-pet reason backs out tier for two pets", total: -10, reason: ReasonMultiPetDiscount, petCount: 2, want: 0},
		{name: "multi-pet reason backs out tier for three pets", total: -20, reason: ReasonMultiPetDiscount, petCount: 3, want: -5},
		{name: "manual component preserved", total: -25, reason: ReasonMultiPetDiscount, petCount: 2, want: -15},
		{name: "other reason untouched", total: -25, reason: ReasonLoyaltyDiscount, petCount: 3, want: -25},
		{name: "empty reason untouched", total: 10, reason: "", petCount: 2, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExtractManualAdjustment(tt.total, tt.reason, tt.petCount), 1e-9)
		})
	}
}

func TestCalculateSubscriptionPricing(t *testing.T) {
	t.Run("first pet of two gets the tier discount", func(t *testing.T) {
		res := CalculateSubscriptionPricing(50, Input{}, 2, true)
		assert.InDelta(t, -10, res.AdjustmentPercentage, 1e-9)
		assert.InDelta(t, 45, res.FinalPrice, 1e-9)
		assert.Equal(t, ReasonMultiPetDiscount, res.AdjustmentReason)
	})

	t.Run("second pet of two stays at base price", func(t *testing.T) {
		res := CalculateSubscriptionPricing(50, Input{}, 2, false)
		assert.InDelta(t, 0, res.AdjustmentPercentage, 1e-9)
		assert.InDelta(t, 50, res.FinalPrice, 1e-9)
		assert.Empty(t, res.AdjustmentReason)
	})

	t.Run("manual adjustment composes with the automatic discount", func(t *testing.T) {
		res := CalculateSubscriptionPricing(100, Input{AdjustmentPercentage: -5, AdjustmentReason: ReasonLoyaltyDiscount}, 3, true)
		assert.InDelta(t, -20, res.AdjustmentPercentage, 1e-9)
		assert.InDelta(t, 80, res.FinalPrice, 1e-9)
		assert.Equal(t, ReasonMultiPetDiscount, res.AdjustmentReason)
	})

	t.Run("re-pricing a stored multi-pet discount does not compound", func(t *testing.T) {
		// Stored percentage -10 with the multi-pet reason means the whole
		// adjustment was automatic; recomputing for the same batch must keep it.
		res := CalculateSubscriptionPricing(50, Input{AdjustmentPercentage: -10, AdjustmentReason: ReasonMultiPetDiscount}, 2, true)
		assert.InDelta(t, -10, res.AdjustmentPercentage, 1e-9)
		assert.InDelta(t, 45, res.FinalPrice, 1e-9)
	})

	t.Run("single pet keeps only the manual adjustment", func(t *testing.T) {
		res := CalculateSubscriptionPricing(70, Input{AdjustmentPercentage: 10, AdjustmentReason: ReasonUrgencyFee}, 1, true)
		assert.InDelta(t, 10, res.AdjustmentPercentage, 1e-9)
		assert.InDelta(t, 77, res.FinalPrice, 1e-9)
		assert.Equal(t, ReasonOther, res.AdjustmentReason)
	})
}
