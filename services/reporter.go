package services

import (
	"fmt"
	"sort"
	"strings"

	"airbnb-advisor/models"
)

// PrintInsightReport formats and prints the market report to terminal
func PrintInsightReport(report *models.InsightReport) {
	border := strings.Repeat("═", 55)
	thin := strings.Repeat("─", 55)

	fmt.Printf("\n╔%s╗\n", border)
	fmt.Printf("║%s║\n", center("NYC AIRBNB MARKET INSIGHTS ", 55))
	fmt.Printf("╚%s╝\n", border)

	fmt.Printf("\n OVERVIEW\n%s\n", thin)
	fmt.Printf("  Total Listings          : %d\n", report.TotalListings)
	fmt.Printf("  Average Price/Night     : $%.2f\n", report.AveragePrice)
	fmt.Printf("  Minimum Price/Night     : $%.2f\n", report.MinPrice)
	fmt.Printf("  Maximum Price/Night     : $%.2f\n", report.MaxPrice)
	fmt.Printf("  Median Review Count     : %.0f\n", report.MedianReviews)
	fmt.Printf("  Peak Season Premium     : %.1f%%\n", report.PeakSeasonPremium)
	fmt.Printf("  Seasonal Volatility     : %.1f%%\n", report.SeasonalVolatility)

	if len(report.RoomTypeStats) > 0 {
		fmt.Printf("\n ROOM TYPES\n%s\n", thin)
		for _, rt := range report.RoomTypeStats {
			fmt.Printf("  %-20s %6d listings  $%8.2f avg  %.2f★\n",
				rt.RoomType+":", rt.Count, rt.AvgPrice, rt.AvgRating)
		}
	}

	if len(report.NeighbourhoodStats) > 0 {
		fmt.Printf("\n LISTINGS PER NEIGHBOURHOOD\n%s\n", thin)
		// Sort a copy by count descending for display
		byCount := make([]models.NeighbourhoodStat, len(report.NeighbourhoodStats))
		copy(byCount, report.NeighbourhoodStats)
		sort.Slice(byCount, func(i, j int) bool {
			return byCount[i].Listings > byCount[j].Listings
		})
		for _, ns := range byCount {
			bar := strings.Repeat("▓", scaleBar(ns.Listings, byCount[0].Listings, 30))
			fmt.Printf("  %-25s %5d  %s\n", ns.Neighbourhood+":", ns.Listings, bar)
		}
	}

	if len(report.TopRated) > 0 {
		fmt.Printf("\n TOP %d HIGHEST RATED PROPERTIES\n%s\n", len(report.TopRated), thin)
		for i, l := range report.TopRated {
			fmt.Printf("  %d. %-35s %.2f \n", i+1, truncate(l.Name, 35), l.ReviewRateNumber)
		}
	}

	fmt.Printf("\n%s\n\n", border)
}

// scaleBar maps a count onto a bar of at most width characters
func scaleBar(count, max, width int) int {
	if max <= 0 {
		return 0
	}
	n := count * width / max
	if n < 1 && count > 0 {
		n = 1
	}
	return n
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
