package results

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewkit/tapvote/internal/models"
)

func sessionBeer(beerID uuid.UUID, name string) models.SessionBeer {
	return models.SessionBeer{
		ID:     uuid.New(),
		BeerID: beerID,
		Beer:   &models.Beer{ID: beerID, Name: name},
	}
}

func rating(beerID, userID, criterionID uuid.UUID, score float64) models.Rating {
	return models.Rating{
		BeerID:      beerID,
		UserID:      userID,
		CriterionID: criterionID,
		Score:       score,
	}
}

func TestCompute_WeightedScore(t *testing.T) {
	taste := models.Criterion{ID: uuid.New(), Name: "taste", Weight: 2}
	look := models.Criterion{ID: uuid.New(), Name: "look", Weight: 1}
	criteria := []models.Criterion{taste, look}

	beerID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	ratings := []models.Rating{
		rating(beerID, alice, taste.ID, 8),
		rating(beerID, bob, taste.ID, 6),
		rating(beerID, alice, look.ID, 4),
		rating(beerID, bob, look.ID, 6),
	}

	out := Compute([]models.SessionBeer{sessionBeer(beerID, "Test IPA")}, criteria, ratings)
	require.Len(t, out, 1)

	// taste mean 7 at weight 2, look mean 5 at weight 1: (14 + 5) / 3.
	assert.InDelta(t, 19.0/3.0, out[0].WeightedScore, 0.0001)
	assert.Equal(t, 4, out[0].TotalVotes)

	require.Len(t, out[0].Criteria, 2)
	assert.InDelta(t, 7.0, out[0].Criteria[0].Mean, 0.0001)
	assert.InDelta(t, 7.0, out[0].Criteria[0].Median, 0.0001)
	assert.InDelta(t, 1.0, out[0].Criteria[0].StdDev, 0.0001)
	assert.Equal(t, 2, out[0].Criteria[0].Votes)
}

func TestCompute_SortsByWeightedScoreDescending(t *testing.T) {
	overall := models.Criterion{ID: uuid.New(), Name: "overall", Weight: 1}

	winner := uuid.New()
	loser := uuid.New()
	voter := uuid.New()

	beers := []models.SessionBeer{
		sessionBeer(loser, "Watery Lager"),
		sessionBeer(winner, "Barrel Aged Stout"),
	}
	ratings := []models.Rating{
		rating(loser, voter, overall.ID, 3),
		rating(winner, voter, overall.ID, 9),
	}

	out := Compute(beers, []models.Criterion{overall}, ratings)
	require.Len(t, out, 2)
	assert.Equal(t, "Barrel Aged Stout", out[0].Beer.Name)
	assert.Equal(t, "Watery Lager", out[1].Beer.Name)
}

func TestCompute_UnratedBeersExcluded(t *testing.T) {
	overall := models.Criterion{ID: uuid.New(), Name: "overall", Weight: 1}

	rated := uuid.New()
	waiting := uuid.New()
	voter := uuid.New()

	beers := []models.SessionBeer{
		sessionBeer(rated, "Tasted"),
		sessionBeer(waiting, "Still In Queue"),
	}
	ratings := []models.Rating{rating(rated, voter, overall.ID, 7)}

	out := Compute(beers, []models.Criterion{overall}, ratings)
	require.Len(t, out, 1)
	assert.Equal(t, "Tasted", out[0].Beer.Name)
}

func TestCompute_PartialCriterionCoverage(t *testing.T) {
	taste := models.Criterion{ID: uuid.New(), Name: "taste", Weight: 1}
	look := models.Criterion{ID: uuid.New(), Name: "look", Weight: 1}

	beerID := uuid.New()
	voter := uuid.New()

	// Only taste got scored. The look column shows zero votes and the
	// weighted score still normalizes by the full weight sum.
	ratings := []models.Rating{rating(beerID, voter, taste.ID, 8)}

	out := Compute([]models.SessionBeer{sessionBeer(beerID, "Half Rated")},
		[]models.Criterion{taste, look}, ratings)
	require.Len(t, out, 1)
	assert.InDelta(t, 4.0, out[0].WeightedScore, 0.0001)
	assert.Equal(t, 0, out[0].Criteria[1].Votes)
}

func TestCompute_Empty(t *testing.T) {
	out := Compute(nil, nil, nil)
	assert.Empty(t, out)

	// Beers but no ratings at all.
	out = Compute([]models.SessionBeer{sessionBeer(uuid.New(), "Lonely")},
		[]models.Criterion{{ID: uuid.New(), Name: "overall", Weight: 1}}, nil)
	assert.Empty(t, out)
}
