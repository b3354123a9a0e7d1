package matching

// ExperienceFit scores 1.0 when the candidate meets or exceeds the required
// years, otherwise a linear penalty down to 0. Zero requirement always fits.
func ExperienceFit(candidateYears, requiredYears int) float64 {
	if requiredYears <= 0 {
		return 1
	}
	if candidateYears >= requiredYears {
		return 1
	}
	gap := float64(requiredYears-candidateYears) / float64(requiredYears)
	return clamp01(1 - gap)
}

// LocationFit scores 1.0 when the two location strings share a normalized
// token (case-insensitive city/state match), 0.0 otherwise. There is no
// geocoding and no partial credit by distance.
func LocationFit(candidateLocation, jobLocation string) float64 {
	candTokens := Tokenize(candidateLocation)
	if len(candTokens) == 0 {
		return 0
	}
	jobTokens := Tokenize(jobLocation)
	if len(jobTokens) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(candTokens))
	for _, t := range candTokens {
		seen[t] = true
	}
	for _, t := range jobTokens {
		if seen[t] {
			return 1
		}
	}
	return 0
}

// AttributeScore combines the structured sub-scores by weighted average.
func AttributeScore(expFit, locFit, expWeight, locWeight float64) float64 {
	total := expWeight + locWeight
	if total <= 0 {
		return 0
	}
	return clamp01((expFit*expWeight + locFit*locWeight) / total)
}
