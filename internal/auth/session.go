package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	SessionTTL    = 24 * time.Hour
	SessionCookie = "session_id"
)

// SessionStore maps opaque session tokens to user ids. Get returns "" for an
// unknown or expired token.
type SessionStore interface {
	Create(ctx context.Context, userID string) (string, error)
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

type session struct {
	userID  string
	expires time.Time
}

// MemorySessions keeps sessions in process memory. A session expires after
// ttl without use; expired entries are dropped when looked up.
type MemorySessions struct {
	mu       sync.Mutex
	sessions map[string]session
	ttl      time.Duration
	now      func() time.Time
}

func NewMemorySessions(ttl time.Duration) *MemorySessions {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	return &MemorySessions{sessions: make(map[string]session), ttl: ttl, now: time.Now}
}

// Create stores a new session mapping sessionID -> userID.
func (s *MemorySessions) Create(_ context.Context, userID string) (string, error) {
	sid := uuid.NewString()
	s.mu.Lock()
	s.sessions[sid] = session{userID: userID, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return sid, nil
}

// Get returns the userID for a session and extends its lifetime.
func (s *MemorySessions) Get(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return "", nil
	}
	now := s.now()
	if !now.Before(sess.expires) {
		delete(s.sessions, sessionID)
		return "", nil
	}
	sess.expires = now.Add(s.ttl)
	s.sessions[sessionID] = sess
	return sess.userID, nil
}

// Delete removes a session. Unknown ids are ignored.
func (s *MemorySessions) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

// Len counts live and not-yet-swept sessions.
func (s *MemorySessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// RedisSessions wraps Redis for session management.
type RedisSessions struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessions(rdb *redis.Client, ttl time.Duration) *RedisSessions {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	return &RedisSessions{rdb: rdb, ttl: ttl}
}

// Create stores a new session mapping sessionID -> userID.
func (s *RedisSessions) Create(ctx context.Context, userID string) (string, error) {
	sid := uuid.NewString()
	err := s.rdb.Set(ctx, "session:"+sid, userID, s.ttl).Err()
	return sid, err
}

// Get returns the userID for a session, or "" if not found / expired, and
// slides the expiry forward.
func (s *RedisSessions) Get(ctx context.Context, sessionID string) (string, error) {
	val, err := s.rdb.GetEx(ctx, "session:"+sessionID, s.ttl).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// Delete removes a session.
func (s *RedisSessions) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, "session:"+sessionID).Err()
}
