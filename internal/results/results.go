// Package results aggregates a session's ratings into per-beer scores.
package results

import (
	"sort"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"github.com/brewkit/tapvote/internal/models"
)

// CriterionResult is one criterion's aggregate for one beer.
type CriterionResult struct {
	Criterion models.Criterion `json:"criterion"`
	Mean      float64          `json:"mean"`
	Median    float64          `json:"median"`
	StdDev    float64          `json:"std_dev"`
	Votes     int              `json:"votes"`
}

// BeerResult is the scoreboard line for one beer: the weighted combination
// of its criterion means plus the per-criterion breakdown.
type BeerResult struct {
	Beer          models.Beer       `json:"beer"`
	WeightedScore float64           `json:"weighted_score"`
	TotalVotes    int               `json:"total_votes"`
	Criteria      []CriterionResult `json:"criteria"`
}

// Compute builds the scoreboard. Beers with no ratings are left out —
// beers still waiting in the queue have nothing to show. The weighted
// score is the weight-normalized sum of criterion means, so criteria with
// weight 2 count double.
func Compute(beers []models.SessionBeer, criteria []models.Criterion, ratings []models.Rating) []BeerResult {
	// Bucket scores by beer then criterion.
	type bucket map[uuid.UUID][]float64
	byBeer := make(map[uuid.UUID]bucket)
	for _, r := range ratings {
		if byBeer[r.BeerID] == nil {
			byBeer[r.BeerID] = make(bucket)
		}
		byBeer[r.BeerID][r.CriterionID] = append(byBeer[r.BeerID][r.CriterionID], r.Score)
	}

	totalWeight := 0.0
	for _, c := range criteria {
		totalWeight += c.Weight
	}

	out := make([]BeerResult, 0, len(byBeer))
	for _, sb := range beers {
		scores, ok := byBeer[sb.BeerID]
		if !ok || sb.Beer == nil {
			continue
		}

		result := BeerResult{Beer: *sb.Beer}
		weightedSum := 0.0
		for _, c := range criteria {
			values := scores[c.ID]
			cr := CriterionResult{Criterion: c, Votes: len(values)}
			if len(values) > 0 {
				cr.Mean, _ = stats.Mean(values)
				cr.Median, _ = stats.Median(values)
				cr.StdDev, _ = stats.StdDevP(values)
				weightedSum += c.Weight * cr.Mean
			}
			result.TotalVotes += len(values)
			result.Criteria = append(result.Criteria, cr)
		}
		if totalWeight > 0 {
			result.WeightedScore = weightedSum / totalWeight
		}
		out = append(out, result)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WeightedScore > out[j].WeightedScore
	})
	return out
}
