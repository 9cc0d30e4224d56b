package prediction

// Confidence scoring policy: each historical cycle is worth 10 points
// up to 70 (reached at 7+ cycles), and every day of variability costs
// 5 points up to 30. The constants are product policy, not a fitted
// statistical model.
const (
	pointsPerCycle     = 10
	maxBaseScore       = 70
	penaltyPerDayOfMAD = 5
	maxPenalty         = 30

	highThreshold   = 70
	mediumThreshold = 40
)

// scoreConfidence maps cycle count and variability to a confidence
// band and percentage. More history raises the score, more spread
// lowers it; the score never goes below 0.
func scoreConfidence(cycleCount, variability int) (Confidence, int) {
	base := cycleCount * pointsPerCycle
	if base > maxBaseScore {
		base = maxBaseScore
	}

	penalty := variability * penaltyPerDayOfMAD
	if penalty > maxPenalty {
		penalty = maxPenalty
	}

	score := base - penalty
	if score < 0 {
		score = 0
	}

	switch {
	case score >= highThreshold:
		return ConfidenceHigh, score
	case score >= mediumThreshold:
		return ConfidenceMedium, score
	default:
		return ConfidenceLow, score
	}
}
