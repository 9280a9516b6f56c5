package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/models"
	"github.com/BruksfildServices01/salon-backend/internal/session"
)

type brokenStore struct{ session.Stateless }

func (brokenStore) Active(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

// accountTable serves accounts from memory; ids listed in failing answer
// with a database error.
type accountTable struct {
	rows    map[uint]models.Account
	failing map[uint]bool
}

func (t accountTable) FindAccount(_ context.Context, id uint) (*models.Account, error) {
	if t.failing[id] {
		return nil, errors.New("connection refused")
	}
	acct, ok := t.rows[id]
	if !ok {
		return nil, fmt.Errorf("account: %w", httperr.ErrNotFound)
	}
	return &acct, nil
}

var testAccounts = accountTable{
	rows: map[uint]models.Account{
		5:  {ID: 5, IsActive: true, IsStaff: true},
		6:  {ID: 6, IsActive: true, IsSuperuser: true},
		7:  {ID: 7, IsActive: true, IsStaff: true},
		8:  {ID: 8, IsActive: true},
		9:  {ID: 9, IsActive: false, IsStaff: true},
		11: {ID: 11, IsActive: true, IsStaff: true},
	},
	failing: map[uint]bool{12: true},
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newAuthRouter(tokens *session.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(tokens, testAccounts, quietLogger()))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":        *AccountID(c),
			"staff":     c.GetBool(ContextStaff),
			"superuser": c.GetBool(ContextSuperuser),
		})
	})
	r.GET("/admin", RequireSuperuser(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	tokens := session.NewManager("secret", time.Hour, store)

	staff, err := tokens.Issue(ctx, &models.Account{ID: 5, IsStaff: true})
	require.NoError(t, err)
	admin, err := tokens.Issue(ctx, &models.Account{ID: 6, IsSuperuser: true})
	require.NoError(t, err)
	revoked, err := tokens.Issue(ctx, &models.Account{ID: 7, IsStaff: true})
	require.NoError(t, err)
	claims, err := tokens.Verify(ctx, revoked)
	require.NoError(t, err)
	require.NoError(t, tokens.Revoke(ctx, claims))

	inactive, err := tokens.Issue(ctx, &models.Account{ID: 9, IsStaff: true})
	require.NoError(t, err)
	deleted, err := tokens.Issue(ctx, &models.Account{ID: 10, IsStaff: true})
	require.NoError(t, err)
	demoted, err := tokens.Issue(ctx, &models.Account{ID: 11, IsSuperuser: true})
	require.NoError(t, err)
	unreadable, err := tokens.Issue(ctx, &models.Account{ID: 12, IsStaff: true})
	require.NoError(t, err)

	broken, err := session.NewManager("secret", time.Hour, brokenStore{}).
		Issue(ctx, &models.Account{ID: 8})
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		tokens *session.Manager
		status int
		body   string
	}{
		{"missing header", "/whoami", "", tokens, http.StatusUnauthorized, "missing_authorization_header"},
		{"wrong scheme", "/whoami", "Token " + staff, tokens, http.StatusUnauthorized, "invalid_authorization_header"},
		{"garbage token", "/whoami", "Bearer abc", tokens, http.StatusUnauthorized, "invalid_token"},
		{"revoked", "/whoami", "Bearer " + revoked, tokens, http.StatusUnauthorized, "token_revoked"},
		{"staff", "/whoami", "Bearer " + staff, tokens, http.StatusOK, `"id":5`},
		{"lowercase scheme", "/whoami", "bearer " + staff, tokens, http.StatusOK, `"staff":true`},
		{"store failure", "/whoami", "Bearer " + broken, session.NewManager("secret", time.Hour, brokenStore{}), http.StatusInternalServerError, "internal_error"},
		{"deactivated account", "/whoami", "Bearer " + inactive, tokens, http.StatusUnauthorized, "inactive_account"},
		{"deleted account", "/whoami", "Bearer " + deleted, tokens, http.StatusUnauthorized, "inactive_account"},
		{"flags come from the account row", "/admin", "Bearer " + demoted, tokens, http.StatusForbidden, "forbidden"},
		{"account lookup failure", "/whoami", "Bearer " + unreadable, tokens, http.StatusInternalServerError, "internal_error"},
		{"staff on admin route", "/admin", "Bearer " + staff, tokens, http.StatusForbidden, "forbidden"},
		{"superuser on admin route", "/admin", "Bearer " + admin, tokens, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			newAuthRouter(tt.tokens).ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestRequestLoggerEchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(quietLogger()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}
