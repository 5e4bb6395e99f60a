package handler_test

// Shared fixtures for the handler tests: in-memory stores implementing
// the handler store interfaces, and a server constructor that wires them
// through the real router, Basic-auth middleware and error funnel so
// tests exercise the full request path.

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/course-catalog/internal/auth"
	"github.com/iliyamo/course-catalog/internal/config"
	"github.com/iliyamo/course-catalog/internal/handler"
	"github.com/iliyamo/course-catalog/internal/httperr"
	"github.com/iliyamo/course-catalog/internal/model"
	"github.com/iliyamo/course-catalog/internal/repository"
	"github.com/iliyamo/course-catalog/internal/router"
)

type fakeUserStore struct {
	mu      sync.Mutex
	nextID  uint64
	byEmail map[string]*model.User
	findErr error // when set, FindByEmail fails with it
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	email := strings.ToLower(strings.TrimSpace(u.EmailAddress))
	if _, ok := f.byEmail[email]; ok {
		return repository.ErrEmailExists
	}
	f.nextID++
	u.ID = f.nextID
	u.EmailAddress = email
	cp := *u
	f.byEmail[email] = &cp
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byEmail)
}

type fakeCourseStore struct {
	mu     sync.Mutex
	nextID uint64
	byID   map[uint64]*model.Course
	owners map[uint64]*model.User
}

func newFakeCourseStore(users *fakeUserStore) *fakeCourseStore {
	owners := make(map[uint64]*model.User)
	for _, u := range users.byEmail {
		owners[u.ID] = u
	}
	return &fakeCourseStore{byID: make(map[uint64]*model.Course), owners: owners}
}

func (f *fakeCourseStore) Create(_ context.Context, c *model.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCourseStore) FindByID(_ context.Context, id uint64) (*model.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrCourseNotFound
	}
	cp := *c
	if o, ok := f.owners[c.UserID]; ok {
		oc := *o
		cp.Owner = &oc
	}
	return &cp, nil
}

func (f *fakeCourseStore) List(_ context.Context) ([]*model.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]uint64, 0, len(f.byID))
	for id := range f.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*model.Course, 0, len(ids))
	for _, id := range ids {
		cp := *f.byID[id]
		if o, ok := f.owners[cp.UserID]; ok {
			oc := *o
			cp.Owner = &oc
		}
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCourseStore) ExistsByTitleDescription(_ context.Context, title, description string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.byID {
		if c.Title == title && c.Description == description {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseStore) Update(_ context.Context, c *model.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[c.ID]; !ok {
		return repository.ErrCourseNotFound
	}
	cp := *c
	cp.Owner = nil
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrCourseNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeCourseStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

// seedUser inserts a user with a MinCost bcrypt hash and returns it.
func seedUser(t *testing.T, users *fakeUserStore, email, password, first, last string) *model.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{FirstName: first, LastName: last, EmailAddress: email, PasswordHash: hash}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

// newServer wires fakes through the real routes and funnel.  The Redis
// client is nil, so the cache middleware passes through.
func newServer(users *fakeUserStore, courses *fakeCourseStore) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = httperr.ErrorHandler(false)
	a := auth.New(users)
	router.RegisterRoutes(e)
	router.RegisterUsers(e, handler.NewUserHandler(users, a, bcrypt.MinCost))
	router.RegisterCourses(e, handler.NewCourseHandler(courses, a, nil, config.CacheConfig{}), config.CacheConfig{}, nil)
	return e
}

type basicCreds struct{ email, password string }

// do performs a JSON request against the test server.
func do(t *testing.T, e *echo.Echo, method, path string, body any, creds *basicCreds) *httptest.ResponseRecorder {
	t.Helper()
	var payload *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(b)
	} else {
		payload = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, payload)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if creds != nil {
		req.SetBasicAuth(creds.email, creds.password)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
