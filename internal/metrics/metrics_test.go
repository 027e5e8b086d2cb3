package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorders(t *testing.T) {
	m := New()

	m.RecordRequest("projection", "200")
	m.RecordRequest("projection", "200")
	m.SetRosterSize(42)
	m.RecordAssignments("new_starting", "status", 3)
	m.RecordAssignments("switching", "date", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("projection", "200")))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.RosterSize))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.AssignmentsTotal.WithLabelValues("new_starting", "status")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AssignmentsTotal))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New()
	m.SetRosterSize(7)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "workstatus_roster_size 7"))
}
