package hc

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fox-one/pkg/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	database := db.MustOpen(db.SqliteInMemory())
	defer database.Close()

	h := Handle(database, "1.0.0-test")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1.0.0-test")
	assert.Contains(t, w.Body.String(), "uptime")
}
