// Package db provides PostgreSQL persistence for parsed resumes, job
// postings, and tailored artifacts. Persistence is optional: callers that
// configure no database URL run fully in memory.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-tailor/internal/types"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL DEFAULT '',
			raw_text TEXT NOT NULL,
			document JSONB NOT NULL,
			parse_status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS job_postings (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS tailored_resumes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			job_id UUID NOT NULL REFERENCES job_postings(id) ON DELETE CASCADE,
			document JSONB NOT NULL,
			rendered_text TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (resume_id, job_id)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// ResumeRecord is a stored resume with its cached parse.
type ResumeRecord struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	RawText     string               `json:"raw_text"`
	Document    types.ResumeDocument `json:"document"`
	ParseStatus types.ParseStatus    `json:"parse_status"`
}

// SaveResume stores a resume with its cached parse and returns its ID.
func (db *DB) SaveResume(ctx context.Context, rawText string, result types.ParseResult) (uuid.UUID, error) {
	docJSON, err := json.Marshal(result.Document)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (name, raw_text, document, parse_status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		result.Document.PersonalInfo.Name, rawText, docJSON, string(result.Status),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume loads a stored resume, or nil if it does not exist.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*ResumeRecord, error) {
	var rec ResumeRecord
	var docJSON []byte
	var status string
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, raw_text, document, parse_status FROM resumes WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Name, &rec.RawText, &docJSON, &status)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	if err := json.Unmarshal(docJSON, &rec.Document); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached document: %w", err)
	}
	rec.ParseStatus = types.ParseStatus(status)
	return &rec, nil
}

// SaveJob stores a job posting and returns its ID.
func (db *DB) SaveJob(ctx context.Context, job types.JobPosting) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_postings (title, company, location, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		job.Title, job.Company, job.Location, job.Description,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job posting: %w", err)
	}
	return id, nil
}

// GetJob loads a stored job posting, or nil if it does not exist.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	var job types.JobPosting
	err := db.pool.QueryRow(ctx,
		`SELECT title, company, location, description FROM job_postings WHERE id = $1`,
		id,
	).Scan(&job.Title, &job.Company, &job.Location, &job.Description)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return &job, nil
}

// ListJobs returns all stored job postings with their IDs, newest first.
func (db *DB) ListJobs(ctx context.Context) (map[uuid.UUID]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, company, location, description FROM job_postings ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	jobs := make(map[uuid.UUID]types.JobPosting)
	for rows.Next() {
		var id uuid.UUID
		var job types.JobPosting
		if err := rows.Scan(&id, &job.Title, &job.Company, &job.Location, &job.Description); err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		jobs[id] = job
	}
	return jobs, rows.Err()
}

// SaveTailored stores (or replaces) the tailored artifact for a
// resume/job pair.
func (db *DB) SaveTailored(ctx context.Context, resumeID, jobID uuid.UUID, doc types.ResumeDocument, renderedText string) (uuid.UUID, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal tailored document: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO tailored_resumes (resume_id, job_id, document, rendered_text)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (resume_id, job_id)
		 DO UPDATE SET document = $3, rendered_text = $4, created_at = NOW()
		 RETURNING id`,
		resumeID, jobID, docJSON, renderedText,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save tailored resume: %w", err)
	}
	return id, nil
}

// GetTailoredText loads the rendered text of a stored tailored resume, or
// empty string if none exists for the pair.
func (db *DB) GetTailoredText(ctx context.Context, resumeID, jobID uuid.UUID) (string, error) {
	var text string
	err := db.pool.QueryRow(ctx,
		`SELECT rendered_text FROM tailored_resumes WHERE resume_id = $1 AND job_id = $2`,
		resumeID, jobID,
	).Scan(&text)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get tailored resume: %w", err)
	}
	return text, nil
}
