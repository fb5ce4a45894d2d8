package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cyberhub/community-platform/backend/internal/auth"
	"github.com/cyberhub/community-platform/backend/internal/models"
	"github.com/cyberhub/community-platform/backend/internal/store"
)

const eventBody = `{
	"title": "Go Workshop",
	"description": "Intro to Go",
	"fullDescription": "A full day of Go",
	"date": "2025-03-01",
	"category": "Workshop",
	"image": "https://example.com/go.png",
	"instructor": "Gopher",
	"duration": "6 hours",
	"level": "Beginner"
}`

type testServer struct {
	*httptest.Server
	store *store.Store
}

func newTestServer(t *testing.T, seed bool) *testServer {
	t.Helper()
	st := store.New()
	if seed {
		store.Seed(st)
	}
	creds := auth.NewCredentials(st, auth.Hasher{Cost: bcrypt.MinCost})
	if _, err := creds.SeedAdmin("admin", "admin@cyberhub.com", "admin123"); err != nil {
		t.Fatalf("SeedAdmin() error: %v", err)
	}
	srv := httptest.NewServer(New(Deps{
		Store:          st,
		Sessions:       auth.NewMemorySessions(time.Hour),
		Credentials:    creds,
		Auth:           auth.HandlerConfig{SessionTTL: time.Hour},
		AllowedOrigins: []string{"http://localhost:5173"},
	}))
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, store: st}
}

// client returns an HTTP client with its own cookie jar, i.e. one browser.
func (ts *testServer) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Client{Jar: jar}
}

type response struct {
	status int
	body   []byte
	header http.Header
}

func (ts *testServer) do(t *testing.T, c *http.Client, method, path, body string) response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return response{status: resp.StatusCode, body: b, header: resp.Header}
}

func (ts *testServer) login(t *testing.T, c *http.Client, username, password string) {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	if r := ts.do(t, c, http.MethodPost, "/api/auth/login", body); r.status != http.StatusOK {
		t.Fatalf("login %s = %d %s", username, r.status, r.body)
	}
}

func (ts *testServer) register(t *testing.T, c *http.Client, username string) {
	t.Helper()
	body := `{"username":"` + username + `","email":"` + username + `@example.com","password":"secret1","confirmPassword":"secret1"}`
	if r := ts.do(t, c, http.MethodPost, "/api/auth/register", body); r.status != http.StatusCreated {
		t.Fatalf("register %s = %d %s", username, r.status, r.body)
	}
}

func decode[V any](t *testing.T, r response) V {
	t.Helper()
	var v V
	if err := json.Unmarshal(r.body, &v); err != nil {
		t.Fatalf("decode %q: %v", r.body, err)
	}
	return v
}

type errorBody struct {
	Message string `json:"message"`
	Field   string `json:"field"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, false)
	r := ts.do(t, ts.client(t), http.MethodGet, "/health", "")
	if r.status != http.StatusOK || !strings.Contains(string(r.body), `"ok"`) {
		t.Errorf("health = %d %s", r.status, r.body)
	}
}

func TestAdminGatedCreate(t *testing.T) {
	ts := newTestServer(t, false)

	anon := ts.client(t)
	if r := ts.do(t, anon, http.MethodPost, "/api/events", eventBody); r.status != http.StatusUnauthorized {
		t.Errorf("anonymous POST = %d, want 401", r.status)
	}

	member := ts.client(t)
	ts.register(t, member, "gopher")
	if r := ts.do(t, member, http.MethodPost, "/api/events", eventBody); r.status != http.StatusForbidden {
		t.Errorf("member POST = %d, want 403", r.status)
	}
	if ts.store.Events.Len() != 0 {
		t.Fatalf("events stored after rejected writes: %d", ts.store.Events.Len())
	}

	admin := ts.client(t)
	ts.login(t, admin, "admin", "admin123")
	r := ts.do(t, admin, http.MethodPost, "/api/events", eventBody)
	if r.status != http.StatusCreated {
		t.Fatalf("admin POST = %d %s", r.status, r.body)
	}
	created := decode[models.Event](t, r)

	list := decode[[]models.Event](t, ts.do(t, anon, http.MethodGet, "/api/events", ""))
	if len(list) != 1 || list[0].ID != created.ID {
		t.Errorf("public list = %+v, want the created event", list)
	}
}

func TestValidationFailure(t *testing.T) {
	ts := newTestServer(t, true)
	admin := ts.client(t)
	ts.login(t, admin, "admin", "admin123")
	before := ts.store.Events.Len()

	body := strings.Replace(eventBody, `"title": "Go Workshop",`, "", 1)
	r := ts.do(t, admin, http.MethodPost, "/api/events", body)
	if r.status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", r.status)
	}
	eb := decode[errorBody](t, r)
	if eb.Message != "Invalid event data" {
		t.Errorf("message = %q", eb.Message)
	}
	if !strings.Contains(string(r.body), "title") {
		t.Errorf("body %s does not mention title", r.body)
	}
	if ts.store.Events.Len() != before {
		t.Errorf("Len() = %d, want %d", ts.store.Events.Len(), before)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	ts := newTestServer(t, true)
	admin := ts.client(t)
	ts.login(t, admin, "admin", "admin123")

	target := ts.store.Blogs.List()[0]

	r := ts.do(t, admin, http.MethodPut, "/api/blogs/"+target.ID, `{"title":"Retitled","tags":"[\"a\",\"b\"]"}`)
	if r.status != http.StatusOK {
		t.Fatalf("PUT = %d %s", r.status, r.body)
	}
	updated := decode[map[string]any](t, r)
	if updated["title"] != "Retitled" || updated["author"] != target.Author {
		t.Errorf("updated = %v", updated)
	}
	if updated["tags"] != `["a","b"]` {
		t.Errorf("tags wire form = %#v, want encoded string", updated["tags"])
	}

	if r := ts.do(t, admin, http.MethodPut, "/api/blogs/missing", `{"title":"x"}`); r.status != http.StatusNotFound {
		t.Errorf("PUT missing = %d, want 404", r.status)
	}

	if r := ts.do(t, admin, http.MethodDelete, "/api/blogs/"+target.ID, ""); r.status != http.StatusNoContent {
		t.Fatalf("DELETE = %d", r.status)
	}
	r = ts.do(t, admin, http.MethodGet, "/api/blogs/"+target.ID, "")
	if r.status != http.StatusNotFound || decode[errorBody](t, r).Message != "Blog not found" {
		t.Errorf("GET deleted = %d %s", r.status, r.body)
	}
}

func TestLeaderboard(t *testing.T) {
	ts := newTestServer(t, false)
	anon := ts.client(t)

	for _, score := range []string{"10", "50", "30"} {
		body := `{"name":"p","event":"CTF","score":` + score + `,"date":"2025-01-01"}`
		if r := ts.do(t, anon, http.MethodPost, "/api/leaderboard", body); r.status != http.StatusCreated {
			t.Fatalf("POST score %s = %d %s", score, r.status, r.body)
		}
	}

	list := decode[[]models.LeaderboardEntry](t, ts.do(t, anon, http.MethodGet, "/api/leaderboard", ""))
	var scores []int
	for _, e := range list {
		scores = append(scores, e.Score)
	}
	if len(scores) != 3 || scores[0] != 50 || scores[1] != 30 || scores[2] != 10 {
		t.Errorf("scores = %v, want [50 30 10]", scores)
	}

	if r := ts.do(t, anon, http.MethodDelete, "/api/leaderboard/"+list[0].ID, ""); r.status != http.StatusMethodNotAllowed && r.status != http.StatusNotFound {
		t.Errorf("DELETE leaderboard = %d, want no route", r.status)
	}
}

func TestResourcesTypeFilter(t *testing.T) {
	ts := newTestServer(t, true)
	anon := ts.client(t)

	list := decode[[]models.Resource](t, ts.do(t, anon, http.MethodGet, "/api/resources?type=pdfs", ""))
	if len(list) != 1 {
		t.Fatalf("pdfs = %d, want 1", len(list))
	}
	if list[0].Type != models.ResourcePDFs {
		t.Errorf("Type = %q", list[0].Type)
	}
	all := decode[[]models.Resource](t, ts.do(t, anon, http.MethodGet, "/api/resources", ""))
	if len(all) != 3 {
		t.Errorf("all = %d, want 3", len(all))
	}
}

func TestRegisterSessionAndLogout(t *testing.T) {
	ts := newTestServer(t, false)
	c := ts.client(t)

	r := ts.do(t, c, http.MethodPost, "/api/auth/register",
		`{"username":"gopher","email":"g@example.com","password":"secret1","confirmPassword":"secret1"}`)
	if r.status != http.StatusCreated {
		t.Fatalf("register = %d %s", r.status, r.body)
	}
	if strings.Contains(string(r.body), "secret1") || strings.Contains(string(r.body), "password") {
		t.Errorf("register body leaks password: %s", r.body)
	}
	setCookie := r.header.Get("Set-Cookie")
	if !strings.Contains(setCookie, auth.SessionCookie+"=") || !strings.Contains(setCookie, "HttpOnly") {
		t.Errorf("Set-Cookie = %q", setCookie)
	}

	me := decode[models.UserSummary](t, ts.do(t, c, http.MethodGet, "/api/auth/user", ""))
	if me.Username != "gopher" || me.IsAdmin {
		t.Errorf("me = %+v", me)
	}

	r = ts.do(t, c, http.MethodPost, "/api/auth/logout", "")
	if r.status != http.StatusOK || decode[errorBody](t, r).Message != "Logged out successfully" {
		t.Fatalf("logout = %d %s", r.status, r.body)
	}
	if r := ts.do(t, c, http.MethodGet, "/api/auth/user", ""); r.status != http.StatusUnauthorized {
		t.Errorf("after logout = %d, want 401", r.status)
	}
}

func TestRegisterConflict(t *testing.T) {
	ts := newTestServer(t, false)
	c := ts.client(t)

	r := ts.do(t, c, http.MethodPost, "/api/auth/register",
		`{"username":"admin","email":"new@example.com","password":"secret1","confirmPassword":"secret1"}`)
	if r.status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", r.status)
	}
	eb := decode[errorBody](t, r)
	if eb.Message != "Username already exists" || eb.Field != "username" {
		t.Errorf("body = %+v", eb)
	}
	if ts.store.Users.Len() != 1 {
		t.Errorf("users = %d, want 1", ts.store.Users.Len())
	}
}

func TestLoginFailures(t *testing.T) {
	ts := newTestServer(t, false)
	c := ts.client(t)

	r := ts.do(t, c, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"nope"}`)
	if r.status != http.StatusUnauthorized || decode[errorBody](t, r).Message != "Invalid credentials" {
		t.Errorf("wrong password = %d %s", r.status, r.body)
	}
	if r.header.Get("Set-Cookie") != "" {
		t.Errorf("failed login set a cookie: %q", r.header.Get("Set-Cookie"))
	}

	r = ts.do(t, c, http.MethodPost, "/api/auth/login", `{"username":"admin"}`)
	if r.status != http.StatusBadRequest || decode[errorBody](t, r).Message != "Invalid login data" {
		t.Errorf("missing password = %d %s", r.status, r.body)
	}
}

func TestLoginRotatesSession(t *testing.T) {
	ts := newTestServer(t, false)
	c := ts.client(t)
	ts.login(t, c, "admin", "admin123")

	u := ts.URL + "/api/auth/user"
	req, _ := http.NewRequest(http.MethodGet, u, nil)
	first := c.Jar.Cookies(req.URL)

	ts.login(t, c, "admin", "admin123")
	second := c.Jar.Cookies(req.URL)
	if len(first) != 1 || len(second) != 1 || first[0].Value == second[0].Value {
		t.Fatalf("cookies = %v then %v, want a rotated session", first, second)
	}

	stale := &http.Client{}
	req.AddCookie(first[0])
	resp, err := stale.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("old session = %d, want 401", resp.StatusCode)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, false)
	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/events", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := resp.Header.Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials = %q", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, false)
	r := ts.do(t, ts.client(t), http.MethodGet, "/metrics", "")
	if r.status != http.StatusOK {
		t.Errorf("metrics = %d", r.status)
	}
}
