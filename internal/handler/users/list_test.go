// File: internal/handler/users/list_test.go
package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pangkat-auth/internal/cache"
	"pangkat-auth/internal/database"
	"pangkat-auth/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	idx   int
	users []*model.User
	err   error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { r.idx++; return r.idx <= len(r.users) }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Scan(dest ...any) error {
	u := r.users[r.idx-1]
	*dest[0].(*int) = u.ID
	*dest[1].(*string) = u.Username
	*dest[2].(*string) = u.FullName
	*dest[3].(**string) = u.Email
	*dest[4].(**string) = u.Phone
	*dest[5].(*string) = u.Role
	*dest[6].(*bool) = u.IsActive
	*dest[7].(*time.Time) = u.CreatedAt
	*dest[8].(**time.Time) = u.LastLogin
	return nil
}

func newListCtx() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth?action=users", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListCacheHit(t *testing.T) {
	cached := `{"success":true,"users":[{"id":7,"username":"alice"}],"count":1}`
	store := &cache.FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			require.Equal(t, CacheKey, key)
			return redis.NewStringResult(cached, nil)
		},
	}
	// FakeDB 無 QueryFn：命中快取時碰到資料庫即 panic
	ctx, rec := newListCtx()
	require.NoError(t, List(ctx, &database.FakeDB{}, store))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"username":"alice"`)
	require.Contains(t, rec.Body.String(), `"count":1`)
}

func TestListCacheMiss(t *testing.T) {
	now := time.Now().UTC()
	users := []*model.User{
		{ID: 7, Username: "alice", FullName: "Alice A", Role: model.RoleMember, IsActive: true, CreatedAt: now},
		{ID: 8, Username: "bob", FullName: "Bob B", Role: model.RoleMember, IsActive: true, CreatedAt: now},
	}
	db := &database.FakeDB{
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{users: users}, nil
		},
	}
	var setKey string
	var setTTL time.Duration
	store := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
		SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
			setKey = key
			setTTL = ttl
			return redis.NewStatusResult("OK", nil)
		},
	}

	ctx, rec := newListCtx()
	require.NoError(t, List(ctx, db, store))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `"count":2`)
	require.Contains(t, body, `"username":"alice"`)
	require.NotContains(t, body, "password")
	require.Equal(t, CacheKey, setKey)
	require.Equal(t, cacheTTL, setTTL)
}

func TestListStorageError(t *testing.T) {
	db := &database.FakeDB{
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return nil, errors.New("boom")
		},
	}
	store := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
	}
	ctx, rec := newListCtx()
	require.NoError(t, List(ctx, db, store))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Failed to fetch users")
}

func TestListHandlerWrapper(t *testing.T) {
	store := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		},
	}
	db := &database.FakeDB{
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{}, nil
		},
	}
	ctx, rec := newListCtx()
	require.NoError(t, ListHandler(db, store)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"count":0`)
}
