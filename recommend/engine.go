package recommend

import (
	"airbnb-advisor/models"
	"airbnb-advisor/utils"
)

// Engine ties the preference extractor, candidate filter, scoring and renderer
// together over one read-only dataset. Each call is a full recompute: one text
// input in, one text response out, with no state carried between turns.
type Engine struct {
	dataset   *models.Dataset
	extractor *Extractor
	topN      int
	logger    *utils.Logger
}

// NewEngine creates an Engine over a cleaned dataset. topN bounds the number
// of rendered candidates; values below 1 fall back to 3.
func NewEngine(dataset *models.Dataset, topN int, logger *utils.Logger) *Engine {
	if topN < 1 {
		topN = 3
	}
	return &Engine{
		dataset: dataset,
		extractor: NewExtractor(Vocabulary{
			Neighbourhoods: dataset.Neighbourhoods,
			RoomTypes:      dataset.RoomTypes,
		}),
		topN:   topN,
		logger: logger,
	}
}

// Respond processes one user turn: extract preferences, filter, score, rank
// and render. It returns the freshly extracted PreferenceRecord alongside the
// text response. An empty candidate subset is a terminal, non-error outcome
// producing the fallback message.
func (e *Engine) Respond(input string) (*models.PreferenceRecord, string) {
	prefs := e.extractor.Extract(input)
	result, ok := e.Recommend(prefs)
	if !ok {
		return prefs, FallbackMessage
	}
	return prefs, Render(result, e.dataset.MedianReviews)
}

// Recommend runs filter, scoring and aggregation for an already-built
// PreferenceRecord. ok is false when no listing satisfies the preferences.
func (e *Engine) Recommend(prefs *models.PreferenceRecord) (*models.RecommendationResult, bool) {
	candidates := FilterCandidates(e.dataset.Listings, prefs)
	if len(candidates) == 0 {
		e.logger.Debug("No candidates matched the extracted preferences")
		return nil, false
	}

	scored := ScoreAndRank(candidates)

	var totalPrice float64
	for _, l := range candidates {
		totalPrice += l.Price
	}

	result := &models.RecommendationResult{
		Top:          TopN(scored, e.topN),
		TotalMatches: len(candidates),
		AvgPrice:     totalPrice / float64(len(candidates)),
	}

	if prefs.Neighbourhood != nil {
		result.Neighbourhood = *prefs.Neighbourhood
		if avg, ok := e.dataset.NeighbourhoodAvgPrice(*prefs.Neighbourhood); ok {
			result.NeighbourhoodAvgPrice = &avg
		}
		if avg, ok := e.dataset.NeighbourhoodAvgRating(*prefs.Neighbourhood); ok {
			result.NeighbourhoodAvgRating = &avg
		}
	}

	return result, true
}
