package models

// PreferenceRecord holds the structured constraints parsed from one free-text
// query. A nil field imposes no constraint. Records are rebuilt from scratch
// for every query; they are never merged with a previous turn.
type PreferenceRecord struct {
	Budget        *float64 // upper bound on price
	Neighbourhood *string  // exact match
	RoomType      *string  // exact match
	MinRating     *float64 // lower bound on review rate
	InstantBook   bool     // presence implies true
}

// IsEmpty reports whether no constraint is set at all.
func (p *PreferenceRecord) IsEmpty() bool {
	return p.Budget == nil && p.Neighbourhood == nil && p.RoomType == nil &&
		p.MinRating == nil && !p.InstantBook
}
