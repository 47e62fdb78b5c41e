// Package untappd is a thin client for the two Untappd v4 endpoints the
// app needs: beer search (feeding AddBeers descriptors) and check-ins.
// No retries — the UI resubmits on failure.
package untappd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/brewkit/tapvote/internal/models"
)

const defaultBaseURL = "https://api.untappd.com/v4"

type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		baseURL:      defaultBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// NewClientWithBaseURL exists for tests pointed at an httptest server.
func NewClientWithBaseURL(clientID, clientSecret, baseURL string) *Client {
	c := NewClient(clientID, clientSecret)
	c.baseURL = baseURL
	return c
}

// searchResponse mirrors just the slice of the Untappd search payload we
// read. Everything else in the (large) response is ignored.
type searchResponse struct {
	Response struct {
		Beers struct {
			Items []struct {
				Beer struct {
					BID   int64   `json:"bid"`
					Name  string  `json:"beer_name"`
					Style string  `json:"beer_style"`
					ABV   float64 `json:"beer_abv"`
					Label string  `json:"beer_label"`
				} `json:"beer"`
				Brewery struct {
					Name string `json:"brewery_name"`
				} `json:"brewery"`
			} `json:"items"`
		} `json:"beers"`
	} `json:"response"`
}

// SearchBeer queries the catalog and maps hits to beer descriptors. Hits
// missing required fields come back as-is; AddBeers filters them.
func (c *Client) SearchBeer(ctx context.Context, query string) ([]models.BeerDescriptor, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("client_id", c.clientID)
	params.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/beer?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search beer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search beer: unexpected status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	descriptors := make([]models.BeerDescriptor, 0, len(parsed.Response.Beers.Items))
	for _, item := range parsed.Response.Beers.Items {
		descriptors = append(descriptors, models.BeerDescriptor{
			UntappdID: item.Beer.BID,
			Name:      item.Beer.Name,
			Brewery:   item.Brewery.Name,
			Style:     item.Beer.Style,
			ABV:       item.Beer.ABV,
			LabelURL:  item.Beer.Label,
		})
	}
	return descriptors, nil
}

// Checkin posts a check-in on behalf of a user. accessToken is the user's
// own Untappd OAuth token; the app never checks in as itself.
func (c *Client) Checkin(ctx context.Context, accessToken string, untappdBeerID int64, comment string, rating float64) error {
	form := url.Values{}
	form.Set("access_token", accessToken)
	form.Set("bid", strconv.FormatInt(untappdBeerID, 10))
	if comment != "" {
		form.Set("shout", comment)
	}
	if rating > 0 {
		form.Set("rating", strconv.FormatFloat(rating, 'f', 2, 64))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkin/add", nil)
	if err != nil {
		return fmt.Errorf("build checkin request: %w", err)
	}
	req.URL.RawQuery = form.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("checkin: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("checkin: unexpected status %d", resp.StatusCode)
	}
	return nil
}
