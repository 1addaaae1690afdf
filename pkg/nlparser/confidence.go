package nlparser

import "math"

func scoreConfidence(hasDate, hasTime, hasLocation bool, intent Intent) float64 {
	var score float64
	if hasDate {
		score += dateWeight
	}
	if hasTime {
		score += timeWeight
	}
	if hasLocation {
		score += locationWeight
	}
	if intent != IntentUnknown {
		score += intentWeight
	}

	score = math.Round(score*100) / 100
	return math.Min(score, maxConfidence)
}

// ConfidencePercent renders a confidence score as a whole percentage.
func ConfidencePercent(confidence float64) int {
	return int(math.Round(confidence * 100))
}
