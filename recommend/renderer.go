package recommend

import (
	"fmt"
	"strings"

	"airbnb-advisor/models"
)

// FallbackMessage is the terminal response for an empty candidate subset.
const FallbackMessage = "I couldn't find any properties matching your exact preferences. " +
	"Try adjusting your criteria - perhaps consider a different neighborhood or increasing your budget slightly."

// Render turns a RecommendationResult into the human-readable summary: per
// candidate a rank label, room type and neighbourhood, price with a relative
// comparison, rating, availability and conditional flags, followed by the
// remaining-match count and a market-insight line when a neighbourhood was
// requested. medianReviews is the dataset-wide review-count median used for
// the "Highly Reviewed" flag.
func Render(result *models.RecommendationResult, medianReviews float64) string {
	var b strings.Builder
	b.WriteString("Based on your preferences, here are the best matches:\n\n")

	for i, c := range result.Top {
		l := c.Listing
		fmt.Fprintf(&b, "Option %d:\n", i+1)
		fmt.Fprintf(&b, "🏠 %s in %s\n", l.RoomType, l.Neighbourhood)
		fmt.Fprintf(&b, "💰 $%.2f per night", l.Price)

		if result.NeighbourhoodAvgPrice != nil {
			avg := *result.NeighbourhoodAvgPrice
			diff := (l.Price - avg) / avg * 100
			if diff < 0 {
				fmt.Fprintf(&b, " (%.1f%% below %s average)\n", -diff, l.Neighbourhood)
			} else {
				fmt.Fprintf(&b, " (%.1f%% above %s average)\n", diff, l.Neighbourhood)
			}
		} else if l.Price < result.AvgPrice {
			fmt.Fprintf(&b, " ($%.2f below market average)\n", result.AvgPrice-l.Price)
		} else {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "⭐ %.1f/5 (%d reviews)", l.ReviewRateNumber, l.NumberOfReviews)
		if float64(l.NumberOfReviews) > medianReviews {
			b.WriteString(" - Highly Reviewed!\n")
		} else {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "📅 Available for %d days/year", l.Availability365)
		if l.Availability365 > 300 {
			b.WriteString(" - High Availability!\n")
		} else {
			b.WriteString("\n")
		}

		if l.InstantBookable == "TRUE" {
			b.WriteString("⚡ Instant Booking Available\n")
		}
		if l.HostIdentityVerified == "verified" {
			b.WriteString("✅ Verified Host\n")
		}

		b.WriteString("\n")
	}

	if remaining := result.TotalMatches - len(result.Top); remaining > 0 {
		fmt.Fprintf(&b, "\nI found %d more properties matching your criteria. ", remaining)
		b.WriteString("Would you like to see more options or refine your search?\n\n")
	}

	if result.NeighbourhoodAvgRating != nil {
		fmt.Fprintf(&b, "📊 Market Insight: %s has an average rating of %.1f/5",
			result.Neighbourhood, *result.NeighbourhoodAvgRating)
	}

	return b.String()
}
