package recommend

import (
	"regexp"
	"strconv"
	"strings"

	"airbnb-advisor/models"
)

var numberRegex = regexp.MustCompile(`\$?(\d+(?:\.\d+)?)`)

// Vocabulary holds the known neighbourhood and room-type names the extractor
// matches free text against. Names are expected in sorted order so substring
// matching is deterministic.
type Vocabulary struct {
	Neighbourhoods []string
	RoomTypes      []string
}

// Extractor parses free-text user input into a PreferenceRecord
type Extractor struct {
	vocab Vocabulary
}

// NewExtractor creates an Extractor bound to a vocabulary
func NewExtractor(vocab Vocabulary) *Extractor {
	return &Extractor{vocab: vocab}
}

// Extract builds a fresh PreferenceRecord from one input string. The five
// extraction rules run independently against the same lowercased text; a
// trigger without satisfying content leaves its field unset rather than
// failing. Nothing is carried over from previous calls.
func (e *Extractor) Extract(input string) *models.PreferenceRecord {
	text := strings.ToLower(input)
	prefs := &models.PreferenceRecord{}

	if strings.Contains(text, "budget") || strings.Contains(text, "$") || strings.Contains(text, "price") {
		if n, ok := firstNumber(text); ok {
			prefs.Budget = &n
		}
	}

	if strings.Contains(text, "neighborhood") || strings.Contains(text, "area") || strings.Contains(text, "location") {
		if name, ok := matchName(text, e.vocab.Neighbourhoods); ok {
			prefs.Neighbourhood = &name
		}
	}

	if strings.Contains(text, "room") || strings.Contains(text, "property") || strings.Contains(text, "place") {
		if name, ok := matchName(text, e.vocab.RoomTypes); ok {
			prefs.RoomType = &name
		}
	}

	// This scan is independent of the budget scan, so a sentence mentioning
	// both a price and a star count can attribute the same number to both.
	if strings.Contains(text, "rating") || strings.Contains(text, "star") || strings.Contains(text, "review") {
		if n, ok := firstNumber(text); ok {
			prefs.MinRating = &n
		}
	}

	if (strings.Contains(text, "instant") && strings.Contains(text, "book")) || strings.Contains(text, "quick") {
		prefs.InstantBook = true
	}

	return prefs
}

// firstNumber returns the first numeric token in the text
func firstNumber(text string) (float64, bool) {
	matches := numberRegex.FindStringSubmatch(text)
	if len(matches) < 2 {
		return 0, false
	}
	val, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// matchName returns the first known name whose lowercase form occurs as a
// substring of the lowercased input
func matchName(text string, names []string) (string, bool) {
	for _, name := range names {
		if name == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(name)) {
			return name, true
		}
	}
	return "", false
}
