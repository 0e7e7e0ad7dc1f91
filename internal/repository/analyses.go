package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourusername/cvlens-api/internal/model"
)

type AnalysisRepo struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepo(pool *pgxpool.Pool) *AnalysisRepo {
	return &AnalysisRepo{pool: pool}
}

// Create stores one completed analysis for the given user.
func (r *AnalysisRepo) Create(ctx context.Context, userUID, filename, resumeText string, report *model.AnalysisReport) (*model.AnalysisRecord, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}

	rec := model.AnalysisRecord{
		UserUID:    userUID,
		Filename:   filename,
		ResumeText: resumeText,
		Industry:   report.Classification.Industry,
		Level:      report.Classification.ExperienceLevel,
		TotalScore: report.ScoreReport.TotalScore,
		MatchScore: report.MatchScore,
		Report:     report,
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO analyses (user_uid, filename, resume_text, industry, level, total_score, match_score, report)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, userUID, filename, resumeText, rec.Industry, rec.Level, rec.TotalScore, rec.MatchScore, reportJSON,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("creating analysis: %w", err)
	}
	return &rec, nil
}

// ListByUser returns the user's analyses, newest first, without the full
// stored report payloads.
func (r *AnalysisRepo) ListByUser(ctx context.Context, userUID string, limit int) ([]*model.AnalysisRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_uid, filename, industry, level, total_score, match_score, created_at
		FROM analyses
		WHERE user_uid = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userUID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	var records []*model.AnalysisRecord
	for rows.Next() {
		var rec model.AnalysisRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserUID, &rec.Filename, &rec.Industry, &rec.Level,
			&rec.TotalScore, &rec.MatchScore, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning analysis row: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// FindByID returns one stored analysis with its full report, scoped to the
// owning user. Returns nil when no such record exists.
func (r *AnalysisRepo) FindByID(ctx context.Context, id uuid.UUID, userUID string) (*model.AnalysisRecord, error) {
	var (
		rec        model.AnalysisRecord
		reportJSON []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_uid, filename, resume_text, industry, level, total_score, match_score, report, created_at
		FROM analyses
		WHERE id = $1 AND user_uid = $2
	`, id, userUID).Scan(
		&rec.ID, &rec.UserUID, &rec.Filename, &rec.ResumeText, &rec.Industry,
		&rec.Level, &rec.TotalScore, &rec.MatchScore, &reportJSON, &rec.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding analysis by id: %w", err)
	}

	if len(reportJSON) > 0 {
		var report model.AnalysisReport
		if err := json.Unmarshal(reportJSON, &report); err != nil {
			return nil, fmt.Errorf("decoding stored report: %w", err)
		}
		rec.Report = &report
	}
	return &rec, nil
}

// Delete removes one stored analysis, scoped to the owning user.
func (r *AnalysisRepo) Delete(ctx context.Context, id uuid.UUID, userUID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM analyses WHERE id = $1 AND user_uid = $2
	`, id, userUID)
	if err != nil {
		return fmt.Errorf("deleting analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
