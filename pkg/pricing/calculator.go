package pricing

// Adjustment reasons stored on subscriptions and schedulings.
// Values match the persisted enum (pt-BR labels live in the frontend).
const (
	ReasonMultiPetDiscount    = "desconto_multiplos_pets"
	ReasonLoyaltyDiscount     = "desconto_fidelidade"
	ReasonTravelFee           = "taxa_deslocamento"
	ReasonUrgencyFee          = "taxa_urgencia"
	ReasonPromotionalDiscount = "desconto_promocional"
	ReasonDifficultySurcharge = "acrescimo_dificuldade"
	ReasonOther               = "outros"
)

// MultiPetDiscount returns the automatic discount percentage for a client
// holding the given number of active subscriptions. Tiers are coarse on
// purpose so pricing is reproducible from the pet count alone.
func MultiPetDiscount(subscriptionCount int) float64 {
	if subscriptionCount >= 3 {
		return -15
	}
	if subscriptionCount >= 2 {
		return -10
	}
	return 0
}

// ApplyAdjustment applies a signed percentage to a base price. The result is
// NOT clamped; callers exposing finalPrice externally must use ClampPrice.
func ApplyAdjustment(basePrice, adjustmentPercentage float64) (adjustmentValue, finalPrice float64) {
	adjustmentValue = basePrice * adjustmentPercentage / 100
	finalPrice = basePrice + adjustmentValue
	return adjustmentValue, finalPrice
}

// ClampPrice floors a price at zero.
func ClampPrice(price float64) float64 {
	if price < 0 {
		return 0
	}
	return price
}

// ExtractManualAdjustment recovers the manually entered portion of a stored
// adjustment percentage. When the stored reason is the multi-pet discount the
// automatic component (derived from petCount) is backed out; any other reason
// means the whole percentage was manual. petCount must be the real count of
// pets with subscriptions in the batch.
func ExtractManualAdjustment(totalPercentage float64, reason string, petCount int) float64 {
	if reason != ReasonMultiPetDiscount {
		return totalPercentage
	}
	return totalPercentage - MultiPetDiscount(petCount)
}

// Input carries the adjustment fields submitted with a subscription.
type Input struct {
	AdjustmentPercentage float64
	AdjustmentReason     string
}

// Result is the recomputed pricing for one subscription.
type Result struct {
	FinalPrice           float64
	AdjustmentValue      float64
	AdjustmentPercentage float64
	AdjustmentReason     string
}

// CalculateSubscriptionPricing recomposes manual and automatic adjustments for
// one subscription in a batch. The manual component is extracted first so an
// edit never compounds a previously applied multi-pet discount; the automatic
// discount is then re-added only for the batch discount target (isFirstPet),
// keeping the aggregate discount on a shared scheduling a single fixed amount.
func CalculateSubscriptionPricing(basePrice float64, in Input, totalPetsWithSubscription int, isFirstPet bool) Result {
	manual := ExtractManualAdjustment(in.AdjustmentPercentage, in.AdjustmentReason, totalPetsWithSubscription)

	finalPercentage := manual
	reason := ""
	if manual != 0 {
		reason = ReasonOther
	}

	if isFirstPet && totalPetsWithSubscription > 1 {
		discount := MultiPetDiscount(totalPetsWithSubscription)
		finalPercentage = manual + discount
		if discount < 0 {
			reason = ReasonMultiPetDiscount
		}
	}

	value, final := ApplyAdjustment(basePrice, finalPercentage)

	return Result{
		FinalPrice:           final,
		AdjustmentValue:      value,
		AdjustmentPercentage: finalPercentage,
		AdjustmentReason:     reason,
	}
}
