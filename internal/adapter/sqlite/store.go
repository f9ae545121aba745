package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/couchcryptid/fire-weather-etl/internal/domain"
	"github.com/couchcryptid/fire-weather-etl/internal/observability"

	_ "modernc.org/sqlite"
)

// timeLayout keeps stored instants fixed-width so they compare lexically.
const timeLayout = "2006-01-02T15:04:05.000Z"

// Store archives index reports and the latest moisture state per station.
// It implements pipeline.BatchLoader.
type Store struct {
	db      *sql.DB
	logger  *slog.Logger
	metrics *observability.Metrics

	// maxRetry bounds how long a locked database is retried.
	maxRetry time.Duration
}

// New wraps an open database. Pass a nil metrics to disable instrumentation.
func New(db *sql.DB, logger *slog.Logger, metrics *observability.Metrics) *Store {
	return &Store{db: db, logger: logger, metrics: metrics, maxRetry: 5 * time.Second}
}

// Open opens the database at path, applies pragmas and migrations.
func Open(ctx context.Context, path string, logger *slog.Logger, metrics *observability.Metrics) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// SQLite serializes writers; a single connection also keeps ":memory:"
	// databases from splitting across the pool.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	s := New(db, logger, metrics)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadBatch archives the reports in one transaction. Valid reports also
// advance their station's moisture state unless a newer observation is
// already stored. A locked database is retried with exponential backoff.
func (s *Store) LoadBatch(ctx context.Context, reports []domain.IndexReport) error {
	if len(reports) == 0 {
		return nil
	}

	operation := func() error {
		err := s.writeBatch(ctx, reports)
		if err != nil && !isBusy(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = s.maxRetry
	err := backoff.Retry(operation, backoff.WithContext(bo, ctx))

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	if s.metrics != nil {
		s.metrics.ArchiveWrites.WithLabelValues(outcome).Inc()
	}
	if errors.Is(err, domain.ErrUnserializable) {
		return backoff.Permanent(fmt.Errorf("archive index reports: %w", err))
	}
	if err != nil {
		return fmt.Errorf("archive index reports: %w", err)
	}
	return nil
}

func (s *Store) writeBatch(ctx context.Context, reports []domain.IndexReport) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	now := formatTime(time.Now())
	for i := range reports {
		r := &reports[i]
		if err := insertReport(ctx, tx, r); err != nil {
			return err
		}
		if !r.Valid {
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO station_state (station_id, observed_at, report_id, ffmc, dmc, dc, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(station_id) DO UPDATE SET
				observed_at = excluded.observed_at,
				report_id = excluded.report_id,
				ffmc = excluded.ffmc,
				dmc = excluded.dmc,
				dc = excluded.dc,
				updated_at = excluded.updated_at
			WHERE excluded.observed_at >= station_state.observed_at
		`, r.StationID, formatTime(r.ObservedAt), r.ID, r.NextState.FFMC, r.NextState.DMC, r.NextState.DC, now); err != nil {
			return fmt.Errorf("upsert station state %s: %w", r.StationID, err)
		}
	}
	return tx.Commit()
}

func insertReport(ctx context.Context, tx *sql.Tx, r *domain.IndexReport) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report %s: %w: %w", r.ID, domain.ErrUnserializable, err)
	}
	violations, err := json.Marshal(r.Violations)
	if err != nil {
		return fmt.Errorf("marshal violations %s: %w: %w", r.ID, domain.ErrUnserializable, err)
	}

	var hourlyFFMC, hourlyISI, hourlyFWI sql.NullFloat64
	if h := r.Hourly; h != nil {
		hourlyFFMC = sql.NullFloat64{Float64: h.FFMC, Valid: true}
		hourlyISI = sql.NullFloat64{Float64: h.ISI, Valid: true}
		hourlyFWI = sql.NullFloat64{Float64: h.FWI, Valid: true}
	}

	d := r.Daily
	_, err = tx.ExecContext(ctx, `
		INSERT INTO index_reports (id, station_id, observed_at, processed_at, timezone, ffmc, dmc, dc, bui, isi, fwi, dsr, hourly_ffmc, hourly_isi, hourly_fwi, valid, violations, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			processed_at = excluded.processed_at,
			timezone = excluded.timezone,
			ffmc = excluded.ffmc,
			dmc = excluded.dmc,
			dc = excluded.dc,
			bui = excluded.bui,
			isi = excluded.isi,
			fwi = excluded.fwi,
			dsr = excluded.dsr,
			hourly_ffmc = excluded.hourly_ffmc,
			hourly_isi = excluded.hourly_isi,
			hourly_fwi = excluded.hourly_fwi,
			valid = excluded.valid,
			violations = excluded.violations,
			payload = excluded.payload
	`, r.ID, r.StationID, formatTime(r.ObservedAt), formatTime(r.ProcessedAt), r.Timezone,
		d.FFMC, d.DMC, d.DC, d.BUI, d.ISI, d.FWI, d.DSR,
		hourlyFFMC, hourlyISI, hourlyFWI,
		r.Valid, string(violations), string(payload))
	if err != nil {
		return fmt.Errorf("insert report %s: %w", r.ID, err)
	}
	return nil
}

// StationState returns the latest archived moisture state for a station, or
// domain.ErrStationNotFound.
func (s *Store) StationState(ctx context.Context, stationID string) (domain.StationState, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT station_id, observed_at, report_id, ffmc, dmc, dc, updated_at
		FROM station_state
		WHERE station_id = ?
	`, stationID)

	var st domain.StationState
	var observedAt, updatedAt string
	err := row.Scan(&st.StationID, &observedAt, &st.ReportID, &st.State.FFMC, &st.State.DMC, &st.State.DC, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.StationState{}, domain.ErrStationNotFound
	}
	if err != nil {
		return domain.StationState{}, fmt.Errorf("query station state %s: %w", stationID, err)
	}

	if st.ObservedAt, err = parseTime(observedAt); err != nil {
		return domain.StationState{}, err
	}
	if st.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.StationState{}, err
	}
	return st, nil
}

// RecentReports returns up to limit archived reports for a station, newest
// observation first.
func (s *Store) RecentReports(ctx context.Context, stationID string, limit int) ([]domain.IndexReport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT payload
		FROM index_reports
		WHERE station_id = ?
		ORDER BY observed_at DESC
		LIMIT ?
	`, stationID, limit)
	if err != nil {
		return nil, fmt.Errorf("query reports %s: %w", stationID, err)
	}
	defer rows.Close()

	var reports []domain.IndexReport
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var r domain.IndexReport
		if err := json.Unmarshal([]byte(payload), &r); err != nil {
			return nil, fmt.Errorf("decode archived report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// CheckReadiness pings the database.
func (s *Store) CheckReadiness(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func isBusy(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %w", s, err)
	}
	return t, nil
}
