// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"math"
	"sort"

	"github.com/danielhkuo/vote-service/models"
)

// TallyOptions counts how many voters picked each option. The percentage
// denominator is voters × voteCount, not the number of picks actually made,
// so in minimum/maximum sessions the percentages need not sum to 100.
// Sorted by votes descending; ties keep the session's option order.
func TallyOptions(session models.Session) []models.OptionTally {
	counts := make(map[string]int, len(session.Options))
	for _, vote := range session.Votes {
		for _, choice := range vote.Choices {
			counts[choice]++
		}
	}

	voters := len(session.Votes)
	tallies := make([]models.OptionTally, 0, len(session.Options))
	for _, option := range session.Options {
		tallies = append(tallies, models.OptionTally{
			Option:     option,
			Votes:      counts[option],
			Percentage: percent(counts[option], voters*session.VoteCount),
		})
	}

	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].Votes > tallies[j].Votes
	})
	return tallies
}

// TallyDates counts how many voters are available on each session date.
// Returns nil when the session does not collect dates.
func TallyDates(session models.Session) []models.DateTally {
	if !session.HasDates() {
		return nil
	}

	counts := make(map[string]int, len(session.Dates))
	for _, vote := range session.Votes {
		for _, date := range vote.Dates {
			counts[date]++
		}
	}

	voters := len(session.Votes)
	tallies := make([]models.DateTally, 0, len(session.Dates))
	for _, date := range session.Dates {
		tallies = append(tallies, models.DateTally{
			Date:       date,
			Votes:      counts[date],
			Percentage: percent(counts[date], voters),
		})
	}

	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].Votes > tallies[j].Votes
	})
	return tallies
}

// Summarize bundles both tallies for one session.
func Summarize(session models.Session) models.Results {
	return models.Results{
		SessionID:   session.ID,
		TotalVoters: len(session.Votes),
		Options:     TallyOptions(session),
		Dates:       TallyDates(session),
	}
}

func percent(n, denominator int) int {
	if denominator <= 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(denominator) * 100))
}
