package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"finratio/pkg/core/ratio"
)

// ReportStore persists computed ratio reports.
// Hybrid layout: DB (primary) with a file-system fallback so the service
// works without Postgres configured.
type ReportStore struct {
	pool    *pgxpool.Pool
	fileDir string
}

// StoredReport is the persisted envelope: the input record, the computed
// report, and when it was produced.
type StoredReport struct {
	ID        string                `json:"id"`
	Record    ratio.FinancialRecord `json:"record"`
	Report    *ratio.Report         `json:"report"`
	CreatedAt time.Time             `json:"created_at"`
}

// NewReportStore creates a store. If pool is nil, reports go to files under
// dir (default .cache/finratio/reports).
func NewReportStore(pool *pgxpool.Pool, dir string) *ReportStore {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "finratio", "reports")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check ReportStore dir: %v\n", err)
		}
	}
	return &ReportStore{pool: pool, fileDir: dir}
}

// Save persists a report and returns its id.
//
// Schema assumption (managed outside this package):
//
//	CREATE TABLE IF NOT EXISTS ratio_reports (
//	  id TEXT PRIMARY KEY,
//	  record_json JSONB,
//	  report_json JSONB,
//	  created_at TIMESTAMPTZ
//	);
func (s *ReportStore) Save(ctx context.Context, record ratio.FinancialRecord, report *ratio.Report) (string, error) {
	entry := StoredReport{
		ID:        uuid.NewString(),
		Record:    record,
		Report:    report,
		CreatedAt: time.Now(),
	}

	if s.pool != nil {
		recordJSON, err := json.Marshal(record)
		if err != nil {
			return "", fmt.Errorf("failed to marshal record: %w", err)
		}
		reportJSON, err := json.Marshal(report)
		if err != nil {
			return "", fmt.Errorf("failed to marshal report: %w", err)
		}

		query := `
			INSERT INTO ratio_reports (id, record_json, report_json, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id)
			DO UPDATE SET
				record_json = EXCLUDED.record_json,
				report_json = EXCLUDED.report_json,
				created_at = EXCLUDED.created_at;
		`
		if _, err := s.pool.Exec(ctx, query, entry.ID, recordJSON, reportJSON, entry.CreatedAt); err != nil {
			return "", fmt.Errorf("failed to save report: %w", err)
		}
		return entry.ID, nil
	}

	if s.fileDir != "" {
		fileBytes, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal report entry: %w", err)
		}
		if err := os.WriteFile(s.reportPath(entry.ID), fileBytes, 0644); err != nil {
			return "", fmt.Errorf("failed to save report file: %w", err)
		}
		return entry.ID, nil
	}

	return "", fmt.Errorf("report store has no backend configured")
}

// Get retrieves a stored report by id. Ids are server-generated UUIDs;
// anything else — in particular path-like strings — is rejected before it
// reaches the file tier.
func (s *ReportStore) Get(ctx context.Context, id string) (*StoredReport, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid report id %q", id)
	}

	if s.pool != nil {
		query := `SELECT record_json, report_json, created_at FROM ratio_reports WHERE id = $1`

		var recordJSON, reportJSON []byte
		entry := StoredReport{ID: id}
		err := s.pool.QueryRow(ctx, query, id).Scan(&recordJSON, &reportJSON, &entry.CreatedAt)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, fmt.Errorf("no report found for id %s", id)
			}
			return nil, fmt.Errorf("failed to load report: %w", err)
		}
		if err := json.Unmarshal(recordJSON, &entry.Record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		if err := json.Unmarshal(reportJSON, &entry.Report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
		return &entry, nil
	}

	if s.fileDir != "" {
		bytes, err := os.ReadFile(s.reportPath(id))
		if err != nil {
			return nil, fmt.Errorf("no report found for id %s", id)
		}
		var entry StoredReport
		if err := json.Unmarshal(bytes, &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report file: %w", err)
		}
		return &entry, nil
	}

	return nil, fmt.Errorf("report store has no backend configured")
}

func (s *ReportStore) reportPath(id string) string {
	return filepath.Join(s.fileDir, id+".json")
}
