package untappd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPayload = `{
	"response": {
		"beers": {
			"items": [
				{
					"beer": {
						"bid": 4711,
						"beer_name": "Westvleteren 12",
						"beer_style": "Quadrupel",
						"beer_abv": 10.2,
						"beer_label": "https://example.com/westy12.png"
					},
					"brewery": {
						"brewery_name": "Westvleteren"
					}
				},
				{
					"beer": {
						"bid": 815,
						"beer_name": "Nameless",
						"beer_style": "",
						"beer_abv": 0,
						"beer_label": ""
					},
					"brewery": {
						"brewery_name": ""
					}
				}
			]
		}
	}
}`

func TestSearchBeer(t *testing.T) {
	var gotPath, gotQuery, gotClientID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotClientID = r.URL.Query().Get("client_id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-id", "test-secret", server.URL)
	descriptors, err := client.SearchBeer(context.Background(), "westvleteren")
	require.NoError(t, err)

	assert.Equal(t, "/search/beer", gotPath)
	assert.Equal(t, "westvleteren", gotQuery)
	assert.Equal(t, "test-id", gotClientID)

	require.Len(t, descriptors, 2)
	assert.Equal(t, int64(4711), descriptors[0].UntappdID)
	assert.Equal(t, "Westvleteren 12", descriptors[0].Name)
	assert.Equal(t, "Westvleteren", descriptors[0].Brewery)
	assert.Equal(t, "Quadrupel", descriptors[0].Style)
	assert.InDelta(t, 10.2, descriptors[0].ABV, 0.001)
	assert.Equal(t, "https://example.com/westy12.png", descriptors[0].LabelURL)
	assert.True(t, descriptors[0].Complete())

	// Sparse hits pass through unfiltered; the add path drops them later.
	assert.False(t, descriptors[1].Complete())
}

func TestSearchBeer_NoHits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": {"beers": {"items": []}}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("id", "secret", server.URL)
	descriptors, err := client.SearchBeer(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, descriptors)
}

func TestSearchBeer_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("id", "secret", server.URL)
	_, err := client.SearchBeer(context.Background(), "anything")
	assert.ErrorContains(t, err, "429")
}

func TestCheckin(t *testing.T) {
	var gotPath, gotToken, gotBID, gotRating string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		gotBID = r.URL.Query().Get("bid")
		gotRating = r.URL.Query().Get("rating")
		w.Write([]byte(`{"meta": {"code": 200}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("id", "secret", server.URL)
	err := client.Checkin(context.Background(), "user-token", 4711, "cheers", 4.25)
	require.NoError(t, err)

	assert.Equal(t, "/checkin/add", gotPath)
	assert.Equal(t, "user-token", gotToken)
	assert.Equal(t, "4711", gotBID)
	assert.Equal(t, "4.25", gotRating)
}

func TestCheckin_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("id", "secret", server.URL)
	err := client.Checkin(context.Background(), "bad-token", 4711, "", 0)
	assert.ErrorContains(t, err, "401")
}
