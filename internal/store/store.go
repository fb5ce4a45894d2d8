package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/cyberhub/community-platform/backend/internal/models"
)

// Store owns one repository per entity kind for the life of the process.
// Build it once at startup and hand it to whatever needs it.
type Store struct {
	Users        *Repo[models.User, models.NewUser, models.UserPatch]
	Events       *Repo[models.Event, models.EventInput, models.EventPatch]
	Projects     *Repo[models.Project, models.ProjectInput, models.ProjectPatch]
	Publications *Repo[models.Publication, models.PublicationInput, models.PublicationPatch]
	Blogs        *Repo[models.Blog, models.BlogInput, models.BlogPatch]
	Leaderboard  *Repo[models.LeaderboardEntry, models.LeaderboardInput, models.LeaderboardPatch]
	Resources    *Repo[models.Resource, models.ResourceInput, models.ResourcePatch]
}

type options struct {
	newID func() string
	now   func() time.Time
}

// Option customizes a Store.
type Option func(*options)

// WithIDFunc replaces the UUID generator.
func WithIDFunc(f func() string) Option {
	return func(o *options) { o.newID = f }
}

// WithClock replaces time.Now for creation timestamps.
func WithClock(f func() time.Time) Option {
	return func(o *options) { o.now = f }
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	o := options{
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		Users:        newRepo[models.User, models.NewUser, models.UserPatch](o.newID, o.now),
		Events:       newRepo[models.Event, models.EventInput, models.EventPatch](o.newID, o.now),
		Projects:     newRepo[models.Project, models.ProjectInput, models.ProjectPatch](o.newID, o.now),
		Publications: newRepo[models.Publication, models.PublicationInput, models.PublicationPatch](o.newID, o.now),
		Blogs:        newRepo[models.Blog, models.BlogInput, models.BlogPatch](o.newID, o.now),
		Leaderboard:  newRepo[models.LeaderboardEntry, models.LeaderboardInput, models.LeaderboardPatch](o.newID, o.now),
		Resources:    newRepo[models.Resource, models.ResourceInput, models.ResourcePatch](o.newID, o.now),
	}

	s.Users.keep = func(old, u models.User) models.User {
		u.ID, u.CreatedAt = old.ID, old.CreatedAt
		return u
	}
	s.Events.keep = func(old, e models.Event) models.Event {
		e.ID, e.CreatedAt = old.ID, old.CreatedAt
		return e
	}
	s.Projects.keep = func(old, p models.Project) models.Project {
		p.ID, p.CreatedAt = old.ID, old.CreatedAt
		return p
	}
	s.Publications.keep = func(old, p models.Publication) models.Publication {
		p.ID, p.CreatedAt = old.ID, old.CreatedAt
		return p
	}
	s.Blogs.keep = func(old, b models.Blog) models.Blog {
		b.ID, b.CreatedAt = old.ID, old.CreatedAt
		return b
	}
	s.Leaderboard.keep = func(old, e models.LeaderboardEntry) models.LeaderboardEntry {
		e.ID = old.ID
		return e
	}
	s.Resources.keep = func(old, r models.Resource) models.Resource {
		r.ID, r.CreatedAt = old.ID, old.CreatedAt
		return r
	}

	// Dates are YYYY-MM-DD, so string order is calendar order.
	s.Events.less = func(a, b models.Event) bool { return a.Date < b.Date }
	s.Leaderboard.less = func(a, b models.LeaderboardEntry) bool { return a.Score > b.Score }

	return s
}

// UserByUsername looks a user up by exact username.
func (s *Store) UserByUsername(username string) (models.User, bool) {
	return s.Users.Find(func(u models.User) bool { return u.Username == username })
}

// UserByEmail looks a user up by exact email.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	return s.Users.Find(func(u models.User) bool { return u.Email == email })
}

// ResourcesByType returns the resources whose type equals typ.
func (s *Store) ResourcesByType(typ string) []models.Resource {
	return s.Resources.Filter(func(r models.Resource) bool { return r.Type == typ })
}
