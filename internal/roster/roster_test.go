package roster

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workstatus-engine/internal/model"
)

const rosterYAML = `members:
  - id: m-001
    name: Aoi
    status: working
    lastWorkStartDate: 2025-01-06
  - id: m-002
    name: Ren
    status: working
    lastWorkStartDate: 2025-01-09
    lastWorkEndDate: 2025-01-05
    contractEndDate: 2025-06-30
  - id: m-003
    name: Sora
    status: interview
    firstCounselingDate: "2025-01-03"
  - name: no id
    status: working
  - id: m-004
    name: Kai
    status: working
    lastWorkStartDate: early spring
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSource_YAML(t *testing.T) {
	src := NewFileSource(writeFile(t, "roster.yaml", rosterYAML), zerolog.Nop())

	members, err := src.Members(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 4)

	assert.Equal(t, "m-001", members[0].ID)
	assert.Equal(t, "2025-01-06", members[0].LastWorkStartDate.String())
	assert.True(t, members[0].LastWorkEndDate.IsAbsent())

	assert.Equal(t, "2025-01-05", members[1].LastWorkEndDate.String())
	assert.Equal(t, "2025-06-30", members[1].ContractEndDate.String())

	assert.Equal(t, model.StatusInterview, members[2].Status)
	assert.Equal(t, "2025-01-03", members[2].FirstCounselingDate.String())

	assert.Equal(t, "m-004", members[3].ID)
	assert.True(t, members[3].LastWorkStartDate.IsMalformed())
}

func TestFileSource_JSON(t *testing.T) {
	doc := `{"members":[{"id":"m-1","name":"Aoi","status":"hired","lastWorkStartDate":"2025-02-03","lastWorkEndDate":null}]}`
	src := NewFileSource(writeFile(t, "roster.json", doc), zerolog.Nop())

	members, err := src.Members(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, model.StatusHired, members[0].Status)
	assert.Equal(t, "2025-02-03", members[0].LastWorkStartDate.String())
	assert.True(t, members[0].LastWorkEndDate.IsAbsent())
}

func TestFileSource_Errors(t *testing.T) {
	missing := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml"), zerolog.Nop())
	_, err := missing.Members(context.Background())
	assert.True(t, errors.Is(err, ErrUnavailable))

	broken := NewFileSource(writeFile(t, "roster.json", "{not json"), zerolog.Nop())
	_, err = broken.Members(context.Background())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewFileSource(writeFile(t, "roster.yaml", rosterYAML), zerolog.Nop()).Members(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/members", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"members":[
			{"id":"m-1","name":"Aoi","status":"working","lastWorkStartDate":"2025-01-06"},
			{"id":"","name":"ghost","status":"working"},
			{"id":"m-2","name":"Ren","status":"interview","contractEndDate":"31/01/2025"}
		]}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/", time.Second, zerolog.Nop())
	members, err := src.Members(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "m-1", members[0].ID)
	assert.True(t, members[1].ContractEndDate.IsMalformed())
}

func TestHTTPSource_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, 0, zerolog.Nop()).Members(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url, 200*time.Millisecond, zerolog.Nop()).Members(context.Background())
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestValidateTableName(t *testing.T) {
	for _, ok := range []string{"members", "hr.members", "_roster_2025"} {
		assert.NoError(t, validateTableName(ok), ok)
	}
	for _, bad := range []string{"", "members; DROP TABLE x", "1members", "a.b.c", "hr-members"} {
		assert.Error(t, validateTableName(bad), bad)
	}
}

func TestNewPostgresSource_RejectsBadTable(t *testing.T) {
	_, err := NewPostgresSource("postgres://localhost/db", "members;--", zerolog.Nop())
	assert.Error(t, err)
}

func TestMemberRow(t *testing.T) {
	row := memberRow{
		id:          "m-1",
		name:        sql.NullString{String: "Aoi", Valid: true},
		status:      sql.NullString{String: "working", Valid: true},
		start:       sql.NullString{String: "2025-01-06T00:00:00Z", Valid: true},
		end:         sql.NullString{},
		contractEnd: sql.NullString{String: "bad", Valid: true},
	}
	m := row.member()

	assert.Equal(t, "m-1", m.ID)
	assert.Equal(t, model.StatusWorking, m.Status)
	assert.Equal(t, "2025-01-06", m.LastWorkStartDate.String())
	assert.True(t, m.LastWorkEndDate.IsAbsent())
	assert.True(t, m.ContractEndDate.IsMalformed())
	assert.True(t, m.FirstCounselingDate.IsAbsent())
}

func TestPostgresSource_Integration(t *testing.T) {
	url := os.Getenv("ROSTER_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("ROSTER_TEST_DATABASE_URL not set")
	}
	src, err := NewPostgresSource(url, "members", zerolog.Nop())
	require.NoError(t, err)
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, src.Ping(ctx))
	_, err = src.Members(ctx)
	assert.NoError(t, err)
}
