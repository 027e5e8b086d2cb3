package roster

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"workstatus-engine/internal/calendar"
	"workstatus-engine/internal/model"
)

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$`)

// PostgresSource reads the roster from a members table. Date columns may be
// DATE or TEXT; text that does not parse becomes a malformed date.
type PostgresSource struct {
	db     *sql.DB
	query  string
	logger zerolog.Logger
}

func NewPostgresSource(url, table string, logger zerolog.Logger) (*PostgresSource, error) {
	if err := validateTableName(table); err != nil {
		return nil, err
	}
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	return &PostgresSource{
		db:     db,
		query:  membersQuery(table),
		logger: logger.With().Str("component", "roster_postgres").Logger(),
	}, nil
}

func validateTableName(table string) error {
	if !tableNamePattern.MatchString(table) {
		return fmt.Errorf("invalid table name: %q", table)
	}
	return nil
}

func membersQuery(table string) string {
	return fmt.Sprintf(`SELECT id, name, status,
	last_work_start_date, last_work_end_date, contract_end_date, first_counseling_date
FROM %s
ORDER BY id`, table)
}

// Ping checks the database is reachable.
func (s *PostgresSource) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresSource) Close() error {
	return s.db.Close()
}

func (s *PostgresSource) Members(ctx context.Context) ([]model.Member, error) {
	rows, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("querying roster: %w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		var r memberRow
		if err := rows.Scan(&r.id, &r.name, &r.status, &r.start, &r.end, &r.contractEnd, &r.counseling); err != nil {
			return nil, fmt.Errorf("scanning roster row: %w", err)
		}
		members = append(members, r.member())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading roster rows: %w", err)
	}

	return sanitize(members, s.logger), nil
}

type memberRow struct {
	id          string
	name        sql.NullString
	status      sql.NullString
	start       sql.NullString
	end         sql.NullString
	contractEnd sql.NullString
	counseling  sql.NullString
}

func (r memberRow) member() model.Member {
	return model.Member{
		ID:                  r.id,
		Name:                r.name.String,
		Status:              model.Status(r.status.String),
		LastWorkStartDate:   nullDate(r.start),
		LastWorkEndDate:     nullDate(r.end),
		ContractEndDate:     nullDate(r.contractEnd),
		FirstCounselingDate: nullDate(r.counseling),
	}
}

func nullDate(s sql.NullString) calendar.Date {
	if !s.Valid {
		return calendar.Date{}
	}
	return calendar.Parse(s.String)
}
