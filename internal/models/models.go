package models

import (
	"time"

	"github.com/google/uuid"
)

// Session status values. A session is created empty, becomes active when the
// host starts it, and is finished either explicitly or by the idle reaper.
const (
	SessionStatusCreated  = "created"
	SessionStatusActive   = "active"
	SessionStatusFinished = "finished"
)

// SessionBeer status values. At most one beer per session is in "rating"
// at any time — that is the beer everyone is currently voting on.
const (
	BeerStatusWaiting = "waiting"
	BeerStatusRating  = "rating"
	BeerStatusRated   = "rated"
)

// User is a registered account. Accounts are global; session membership is
// tracked separately in SessionUser.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is a tasting event. The join code is a short human-enterable
// string, unique across all sessions, used to join without a link.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	JoinCode  string    `json:"join_code"`
	CreatorID uuid.UUID `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionState is the mutable half of a session, kept one-to-one with it.
// CurrentBeerID names the beer in "rating" status, or is nil when no beer
// is up (queue empty, or rotation exhausted). LastUpdatedAt is bumped on
// every session mutation and doubles as the idle-reaper heartbeat.
type SessionState struct {
	SessionID        uuid.UUID  `json:"session_id"`
	CurrentBeerID    *uuid.UUID `json:"current_beer_id"`
	CurrentBeerOrder *int       `json:"current_beer_order"`
	Status           string     `json:"status"`
	LastUpdatedAt    time.Time  `json:"last_updated_at"`
}

// Beer is a global catalog entry, shared across sessions. Rows are upserted
// by UntappdID so the same beer added in two sessions stays one row.
type Beer struct {
	ID        uuid.UUID `json:"id"`
	UntappdID int64     `json:"untappd_id"`
	Name      string    `json:"name"`
	Brewery   string    `json:"brewery"`
	Style     string    `json:"style"`
	ABV       float64   `json:"abv"`
	LabelURL  string    `json:"label_url"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionBeer links a beer into a session's queue. BeerOrder is a rank key:
// only the relative order among rows matters, and it stays nil between a
// multi-beer add and the reshuffle that follows it.
type SessionBeer struct {
	ID            uuid.UUID `json:"id"`
	SessionID     uuid.UUID `json:"session_id"`
	BeerID        uuid.UUID `json:"beer_id"`
	BeerOrder     *int      `json:"beer_order"`
	Status        string    `json:"status"`
	AddedByUserID uuid.UUID `json:"added_by_user_id"`
	Beer          *Beer     `json:"beer,omitempty"`
}

// SessionUser is a membership record. Leaving a session flips Active to
// false rather than deleting the row, so past votes keep their author.
type SessionUser struct {
	SessionID uuid.UUID `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
	Active    bool      `json:"active"`
	JoinedAt  time.Time `json:"joined_at"`
}

// Criterion is a named, weighted rating dimension (aroma, taste, ...).
// Criteria are attached to a session via the session_criteria join table.
type Criterion struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Weight float64   `json:"weight"`
}

// Rating is one user's score for one beer on one criterion within a
// session. The (session, beer, user, criterion) tuple is unique; submitting
// again overwrites the score.
type Rating struct {
	SessionID   uuid.UUID `json:"session_id"`
	BeerID      uuid.UUID `json:"beer_id"`
	UserID      uuid.UUID `json:"user_id"`
	CriterionID uuid.UUID `json:"criterion_id"`
	Score       float64   `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeerDescriptor is what callers hand to AddBeers: the catalog fields for
// one beer, typically straight out of an Untappd search result. Descriptors
// missing any required field are skipped, not rejected.
type BeerDescriptor struct {
	UntappdID int64   `json:"untappd_id"`
	Name      string  `json:"name"`
	Brewery   string  `json:"brewery"`
	Style     string  `json:"style"`
	ABV       float64 `json:"abv"`
	LabelURL  string  `json:"label_url"`
}

// Complete reports whether the descriptor carries every required catalog
// field. ABV is allowed to be zero — alcohol-free beers exist.
func (d BeerDescriptor) Complete() bool {
	return d.UntappdID != 0 && d.Name != "" && d.Brewery != "" && d.Style != "" && d.LabelURL != ""
}
