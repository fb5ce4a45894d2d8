package store

import (
	"testing"

	"github.com/cyberhub/community-platform/backend/internal/models"
)

func TestSeed(t *testing.T) {
	s := New()
	Seed(s)

	counts := []struct {
		kind string
		got  int
		want int
	}{
		{"events", s.Events.Len(), 3},
		{"projects", s.Projects.Len(), 4},
		{"publications", s.Publications.Len(), 2},
		{"blogs", s.Blogs.Len(), 3},
		{"leaderboard", s.Leaderboard.Len(), 5},
		{"resources", s.Resources.Len(), 3},
		{"users", s.Users.Len(), 0},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s: Len() = %d, want %d", c.kind, c.got, c.want)
		}
	}

	top := s.Leaderboard.List()[0]
	if top.Name != "Alex Chen" || top.Score != 2847 {
		t.Errorf("leaderboard top = %s %d, want Alex Chen 2847", top.Name, top.Score)
	}
	if first := s.Events.List()[0]; first.Date != "2024-12-28" {
		t.Errorf("first event date = %q, want 2024-12-28", first.Date)
	}
	if got := s.ResourcesByType(models.ResourcePDFs); len(got) != 1 {
		t.Errorf("seeded pdfs = %d, want 1", len(got))
	}
	for _, p := range s.Projects.List() {
		if len(p.Technologies) == 0 {
			t.Errorf("project %q has no technologies", p.Title)
		}
	}
}

func TestSeededRecordsAreOrdinary(t *testing.T) {
	s := New()
	Seed(s)

	e := s.Events.List()[0]
	if e.ID == "" || e.CreatedAt.IsZero() {
		t.Fatalf("seeded event missing identity: %+v", e)
	}
	if !s.Events.Delete(e.ID) {
		t.Error("Delete(seeded) = false")
	}
}
