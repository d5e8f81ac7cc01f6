package recommend

import "airbnb-advisor/models"

// FilterCandidates returns the listings satisfying every populated preference
// field. Unset fields impose no constraint, so an empty PreferenceRecord
// returns the full dataset unchanged.
func FilterCandidates(listings []*models.Listing, prefs *models.PreferenceRecord) []*models.Listing {
	var candidates []*models.Listing
	for _, l := range listings {
		if matchesPreferences(l, prefs) {
			candidates = append(candidates, l)
		}
	}
	return candidates
}

// matchesPreferences checks one listing against all populated predicates
func matchesPreferences(l *models.Listing, prefs *models.PreferenceRecord) bool {
	if prefs.Budget != nil && l.Price > *prefs.Budget {
		return false
	}
	if prefs.Neighbourhood != nil && l.Neighbourhood != *prefs.Neighbourhood {
		return false
	}
	if prefs.RoomType != nil && l.RoomType != *prefs.RoomType {
		return false
	}
	if prefs.MinRating != nil && l.ReviewRateNumber < *prefs.MinRating {
		return false
	}
	if prefs.InstantBook && l.InstantBookable != "TRUE" {
		return false
	}
	return true
}
