package models

import "time"

// LeaderboardEntry records a participant's score in an event. Entries are
// append-only through the API.
type LeaderboardEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Event string `json:"event"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

func (e LeaderboardEntry) Key() string { return e.ID }

type LeaderboardInput struct {
	Name  string `json:"name" validate:"required"`
	Event string `json:"event" validate:"required"`
	Score *int   `json:"score" validate:"required,min=0"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
}

// Build ignores at: leaderboard entries carry their own event date.
func (in LeaderboardInput) Build(id string, _ time.Time) LeaderboardEntry {
	var score int
	if in.Score != nil {
		score = *in.Score
	}
	return LeaderboardEntry{ID: id, Name: in.Name, Event: in.Event, Score: score, Date: in.Date}
}

// LeaderboardPatch exists to satisfy the repository; no route applies it.
type LeaderboardPatch struct {
	Name  *string
	Event *string
	Score *int
	Date  *string
}

func (p LeaderboardPatch) Apply(e LeaderboardEntry) LeaderboardEntry {
	set(&e.Name, p.Name)
	set(&e.Event, p.Event)
	set(&e.Score, p.Score)
	set(&e.Date, p.Date)
	return e
}
