package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/dto"
	"github.com/BruksfildServices01/salon-backend/internal/validators"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return gdb, mock
}

func newSkillRouter(gdb *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	binding.Validator = validators.Gin()

	r := gin.New()
	NewResourceHandler(gdb, "skill", salon.SkillFieldsOf, dto.Skill).Register(r.Group("/skills"))
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestResourceHandler_ListDatabaseFailure(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := newSkillRouter(gdb)

	mock.ExpectQuery(`SELECT \* FROM "skills" ORDER BY id ASC`).
		WillReturnError(errors.New("connection reset by peer"))

	w := serve(r, http.MethodGet, "/skills/", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error_code":"internal_error","message":"Internal error."}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceHandler_GetMissingRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := newSkillRouter(gdb)

	mock.ExpectQuery(`SELECT \* FROM "skills" WHERE "skills"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	w := serve(r, http.MethodGet, "/skills/7/", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":"not_found"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceHandler_DeleteMissingRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := newSkillRouter(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "skills" WHERE "skills"."id" = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w := serve(r, http.MethodDelete, "/skills/3/", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceHandler_CreateUniqueViolation(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := newSkillRouter(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "skills"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})
	mock.ExpectRollback()

	w := serve(r, http.MethodPost, "/skills/", `{"name":"Cut"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":"already_exists"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceHandler_InvalidBodyNeverReachesDatabase(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := newSkillRouter(gdb)

	w := serve(r, http.MethodPost, "/skills/", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error_code":"invalid_request","message":"Invalid data.","fields":{"name":"required"}}`, w.Body.String())

	w = serve(r, http.MethodPost, "/skills/", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, http.MethodGet, "/skills/0/", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
