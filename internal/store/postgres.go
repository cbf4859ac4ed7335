package store

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CybrFarhvn06/Codex/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// PostgresStore handles student and research-log CRUD against PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the students and research_logs tables if they don't exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schemaSQL)
	return err
}

// UpsertStudent inserts a student keyed by email, refreshing the name and
// institution on repeat requests.
func (s *PostgresStore) UpsertStudent(ctx context.Context, name, email, institution string) (*models.Student, error) {
	var st models.Student
	err := s.pool.QueryRow(ctx,
		`INSERT INTO students (name, email, institution)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE
		 SET name = EXCLUDED.name, institution = EXCLUDED.institution
		 RETURNING id, name, email, institution, created_at`,
		name, email, institution,
	).Scan(&st.ID, &st.Name, &st.Email, &st.Institution, &st.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert student: %w", err)
	}
	return &st, nil
}

func (s *PostgresStore) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	var st models.Student
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, institution, created_at FROM students WHERE id = $1`, id,
	).Scan(&st.ID, &st.Name, &st.Email, &st.Institution, &st.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// InsertLog records one generated report. The caller supplies the research
// ID; created_at is read back from the database.
func (s *PostgresStore) InsertLog(ctx context.Context, log *models.ResearchLog) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO research_logs (id, student_id, topic, query, generator)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		log.ID, log.StudentID, log.Topic, log.Query, log.Generator,
	).Scan(&log.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert research log: %w", err)
	}
	return nil
}

// ListLogsByStudent returns a student's history, newest first.
func (s *PostgresStore) ListLogsByStudent(ctx context.Context, studentID string) ([]models.ResearchLog, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, student_id, topic, query, generator, created_at
		 FROM research_logs
		 WHERE student_id = $1
		 ORDER BY created_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.ResearchLog
	for rows.Next() {
		var l models.ResearchLog
		if err := rows.Scan(&l.ID, &l.StudentID, &l.Topic, &l.Query, &l.Generator, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *PostgresStore) DeleteLog(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM research_logs WHERE id = $1`, id)
	return err
}
