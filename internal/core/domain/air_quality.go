package domain

// AirQualityLevel is the categorical air quality rating. Levels are ordered
// by severity so the worst of several factors is a plain max; Unknown is the
// floor and only appears when no contributing factor is present.
type AirQualityLevel int

const (
	AirQualityUnknown AirQualityLevel = iota
	AirQualityExcellent
	AirQualityFair
	AirQualityPoor
)

func (l AirQualityLevel) String() string {
	switch l {
	case AirQualityExcellent:
		return "excellent"
	case AirQualityFair:
		return "fair"
	case AirQualityPoor:
		return "poor"
	default:
		return "unknown"
	}
}

// Worst returns the more severe of two levels.
func (l AirQualityLevel) Worst(other AirQualityLevel) AirQualityLevel {
	if other > l {
		return other
	}
	return l
}
