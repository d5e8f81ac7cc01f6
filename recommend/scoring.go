package recommend

import (
	"sort"

	"airbnb-advisor/models"
)

// Score weights for the composite ranking.
const (
	reviewWeight       = 0.4
	priceWeight        = 0.4
	availabilityWeight = 0.2

	reviewCountCap = 100
)

// ScoreAndRank computes sub-scores and the weighted composite score for every
// candidate, then orders them by composite score descending. The sort is
// stable, so candidates with equal scores keep their original relative order
// and repeated calls on unchanged input are deterministic.
func ScoreAndRank(candidates []*models.Listing) []models.ScoredCandidate {
	if len(candidates) == 0 {
		return nil
	}

	minPrice, maxPrice := candidates[0].Price, candidates[0].Price
	for _, l := range candidates[1:] {
		if l.Price < minPrice {
			minPrice = l.Price
		}
		if l.Price > maxPrice {
			maxPrice = l.Price
		}
	}
	priceRange := maxPrice - minPrice

	scored := make([]models.ScoredCandidate, len(candidates))
	for i, l := range candidates {
		reviews := float64(l.NumberOfReviews)
		if reviews > reviewCountCap {
			reviews = reviewCountCap
		}
		reviewScore := l.ReviewRateNumber * reviews / reviewCountCap

		// Inverted min-max normalization within the candidate subset. When
		// every candidate shares one price the range is zero; all candidates
		// are then equally cheapest, so every price score is 1.
		priceScore := 1.0
		if priceRange > 0 {
			priceScore = 1 - (l.Price-minPrice)/priceRange
		}

		availabilityScore := float64(l.Availability365) / 365

		scored[i] = models.ScoredCandidate{
			Listing:           l,
			ReviewScore:       reviewScore,
			PriceScore:        priceScore,
			AvailabilityScore: availabilityScore,
			TotalScore: reviewWeight*reviewScore +
				priceWeight*priceScore +
				availabilityWeight*availabilityScore,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})
	return scored
}

// TopN returns the first n ranked candidates, or fewer if less are available
func TopN(scored []models.ScoredCandidate, n int) []models.ScoredCandidate {
	if n > len(scored) {
		n = len(scored)
	}
	return scored[:n]
}
