package rotation

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewkit/tapvote/internal/models"
)

func shuffleTestService(seed int64) *Service {
	return &Service{
		rng:   rand.New(rand.NewSource(seed)),
		locks: newKeyedMutex(),
	}
}

func beerRow(brewery, style string, addedBy uuid.UUID) models.SessionBeer {
	return models.SessionBeer{
		ID:            uuid.New(),
		BeerID:        uuid.New(),
		AddedByUserID: addedBy,
		Beer: &models.Beer{
			Brewery: brewery,
			Style:   style,
		},
	}
}

func TestVarietyScore(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	tests := []struct {
		name  string
		beers []models.SessionBeer
		want  int
	}{
		{
			name:  "empty",
			beers: nil,
			want:  0,
		},
		{
			name:  "single beer has no pairs",
			beers: []models.SessionBeer{beerRow("A", "IPA", alice)},
			want:  0,
		},
		{
			name: "identical pair scores zero",
			beers: []models.SessionBeer{
				beerRow("A", "IPA", alice),
				beerRow("A", "IPA", alice),
			},
			want: 0,
		},
		{
			name: "pair differing on all axes scores three",
			beers: []models.SessionBeer{
				beerRow("A", "IPA", alice),
				beerRow("B", "Stout", bob),
			},
			want: 3,
		},
		{
			name: "partial difference counts per axis",
			beers: []models.SessionBeer{
				beerRow("A", "IPA", alice),
				beerRow("A", "Stout", alice),
			},
			want: 1,
		},
		{
			name: "only adjacent pairs count",
			beers: []models.SessionBeer{
				beerRow("A", "IPA", alice),
				beerRow("B", "Stout", bob),
				beerRow("A", "IPA", alice),
			},
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, varietyScore(tt.beers))
		})
	}
}

func TestMaxVarietyScore(t *testing.T) {
	assert.Equal(t, 0, maxVarietyScore(0))
	assert.Equal(t, 0, maxVarietyScore(1))
	assert.Equal(t, 3, maxVarietyScore(2))
	assert.Equal(t, 27, maxVarietyScore(10))
}

func TestBestOrdering_NeverWorseThanInput(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	// Worst-case starting order: breweries clustered together.
	beers := []models.SessionBeer{
		beerRow("A", "IPA", alice),
		beerRow("A", "IPA", alice),
		beerRow("A", "Lager", alice),
		beerRow("B", "Stout", bob),
		beerRow("B", "Stout", bob),
		beerRow("B", "Porter", bob),
	}
	inputScore := varietyScore(beers)

	for seed := int64(0); seed < 10; seed++ {
		svc := shuffleTestService(seed)
		got := svc.bestOrdering(beers)

		require.Len(t, got, len(beers))
		assert.GreaterOrEqual(t, varietyScore(got), inputScore, "seed %d", seed)
		assert.LessOrEqual(t, varietyScore(got), maxVarietyScore(len(got)), "seed %d", seed)
	}
}

func TestBestOrdering_PreservesMembership(t *testing.T) {
	alice := uuid.New()
	beers := []models.SessionBeer{
		beerRow("A", "IPA", alice),
		beerRow("B", "Stout", alice),
		beerRow("C", "Lager", alice),
		beerRow("D", "Sour", alice),
	}

	svc := shuffleTestService(7)
	got := svc.bestOrdering(beers)

	require.Len(t, got, len(beers))
	seen := make(map[uuid.UUID]bool, len(got))
	for _, sb := range got {
		seen[sb.ID] = true
	}
	for _, sb := range beers {
		assert.True(t, seen[sb.ID], "beer %s missing after shuffle", sb.ID)
	}
}

func TestBestOrdering_FewerThanTwoBeersUntouched(t *testing.T) {
	svc := shuffleTestService(1)

	assert.Empty(t, svc.bestOrdering(nil))

	one := []models.SessionBeer{beerRow("A", "IPA", uuid.New())}
	got := svc.bestOrdering(one)
	require.Len(t, got, 1)
	assert.Equal(t, one[0].ID, got[0].ID)
}

func TestBestOrdering_AlternatesDistinctBreweries(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	// Two breweries, three beers each: a perfect-variety ordering exists
	// and 200 attempts over six elements find one essentially always.
	beers := []models.SessionBeer{
		beerRow("A", "IPA", alice),
		beerRow("A", "Stout", alice),
		beerRow("A", "Lager", alice),
		beerRow("B", "Sour", bob),
		beerRow("B", "Porter", bob),
		beerRow("B", "Pilsner", bob),
	}

	svc := shuffleTestService(3)
	got := svc.bestOrdering(beers)

	score := varietyScore(got)
	assert.Greater(t, score, varietyScore(beers))
}

func TestShuffleInPlace_IsDeterministicPerSeed(t *testing.T) {
	build := func() []models.SessionBeer {
		rows := make([]models.SessionBeer, 5)
		for i := range rows {
			rows[i] = models.SessionBeer{ID: uuid.MustParse(
				"00000000-0000-0000-0000-00000000000" + string(rune('1'+i)),
			)}
		}
		return rows
	}

	a := build()
	b := build()
	shuffleTestService(99).shuffleInPlace(a)
	shuffleTestService(99).shuffleInPlace(b)

	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}
