package rotation

import (
	"github.com/brewkit/tapvote/internal/models"
)

// maxShuffleAttempts bounds the random search for a good tasting order.
// 200 attempts is plenty for realistic queue sizes — a dozen beers — and
// cheap enough that the worst case is not worth tuning.
const maxShuffleAttempts = 200

// varietyScore rates an ordering by how often adjacent beers differ:
// one point each for a different brewery, style, and contributor per
// adjacent pair. Higher is better; the ceiling is maxVarietyScore.
func varietyScore(beers []models.SessionBeer) int {
	score := 0
	for i := 1; i < len(beers); i++ {
		prev, cur := beers[i-1], beers[i]
		if prev.Beer.Brewery != cur.Beer.Brewery {
			score++
		}
		if prev.Beer.Style != cur.Beer.Style {
			score++
		}
		if prev.AddedByUserID != cur.AddedByUserID {
			score++
		}
	}
	return score
}

// maxVarietyScore is the theoretical ceiling for n beers: every adjacent
// pair differs on all three axes.
func maxVarietyScore(n int) int {
	if n < 2 {
		return 0
	}
	return 3 * (n - 1)
}

// bestOrdering runs the stochastic search: up to maxShuffleAttempts
// Fisher–Yates shuffles, keeping the best-scoring permutation seen and
// stopping early when one hits the ceiling. Ties keep the first-seen
// permutation. The result is not guaranteed optimal and two runs over the
// same input may disagree — only the score is predictable.
func (s *Service) bestOrdering(beers []models.SessionBeer) []models.SessionBeer {
	if len(beers) < 2 {
		return beers
	}

	best := make([]models.SessionBeer, len(beers))
	copy(best, beers)
	bestScore := varietyScore(best)

	ceiling := maxVarietyScore(len(beers))
	candidate := make([]models.SessionBeer, len(beers))
	copy(candidate, beers)

	for attempt := 0; attempt < maxShuffleAttempts && bestScore < ceiling; attempt++ {
		s.shuffleInPlace(candidate)
		if score := varietyScore(candidate); score > bestScore {
			bestScore = score
			copy(best, candidate)
		}
	}

	return best
}

// shuffleInPlace is a Fisher–Yates shuffle driven by the injected RNG.
// The RNG is guarded by a mutex because *rand.Rand is not goroutine-safe
// and shuffles for different sessions can run concurrently.
func (s *Service) shuffleInPlace(beers []models.SessionBeer) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	for i := len(beers) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		beers[i], beers[j] = beers[j], beers[i]
	}
}
