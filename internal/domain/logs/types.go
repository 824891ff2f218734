package logs

// FeedingType define cómo se alimentó al bebé.
// @Enum breast, bottle, formula, solids
type FeedingType string

const (
	FeedingBreast  FeedingType = "breast"
	FeedingBottle  FeedingType = "bottle"
	FeedingFormula FeedingType = "formula"
	FeedingSolids  FeedingType = "solids"
)

func ValidFeedingType(t string) bool {
	switch FeedingType(t) {
	case FeedingBreast, FeedingBottle, FeedingFormula, FeedingSolids:
		return true
	}
	return false
}

// Side aplica solo a lactancia.
// @Enum left, right, both
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideBoth  Side = "both"
)

func ValidSide(s string) bool {
	switch Side(s) {
	case SideLeft, SideRight, SideBoth:
		return true
	}
	return false
}

// DiaperType define el tipo de cambio de pañal.
// @Enum wet, dirty, both
type DiaperType string

const (
	DiaperWet   DiaperType = "wet"
	DiaperDirty DiaperType = "dirty"
	DiaperBoth  DiaperType = "both"
)

func ValidDiaperType(t string) bool {
	switch DiaperType(t) {
	case DiaperWet, DiaperDirty, DiaperBoth:
		return true
	}
	return false
}
