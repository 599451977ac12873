package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestMiddleware_RecordsPattern(t *testing.T) {
	m := New()
	sm := http.NewServeMux()
	sm.HandleFunc("GET /api/books", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := m.Middleware(sm)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/books", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/books", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "GET /api/books", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestStudyRoomConflict(t *testing.T) {
	m := New()
	m.StudyRoomConflict()
	m.StudyRoomConflict()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.studyRoomConflict))
}

func TestHandler_ExposesDBStats(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "metrics.db"))
	require.NoError(t, err)
	defer db.Close()

	m := New()
	require.NoError(t, m.RegisterDB(db, "library"))

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.True(t, strings.Contains(body, `go_sql_max_open_connections{db_name="library"}`))
	assert.True(t, strings.Contains(body, "libadmin_study_room_conflicts_total"))
}
