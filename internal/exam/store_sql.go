package exam

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutExam(ctx context.Context, e Exam) error {
	qj, err := json.Marshal(e.QuestionSources)
	if err != nil {
		return err
	}
	created := e.CreatedAt
	if created == 0 {
		created = time.Now().Unix()
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO exams (id,title,question_count,question_sources_json,seed,active,archive,collection,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, active=EXCLUDED.active, archive=EXCLUDED.archive`,
		e.ID, e.Title, e.QuestionCount, string(qj), e.Seed, e.Active, e.Archive, e.Collection, created)
	return err
}

func (s *SQLStore) GetExam(ctx context.Context, id string) (Exam, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,question_count,question_sources_json,seed,active,archive,collection,created_at
		FROM exams WHERE id=$1`, id)
	return scanExam(row)
}

func (s *SQLStore) DeleteExam(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM exams WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) ListExams(ctx context.Context, opts ListOpts) ([]Exam, error) {
	q := `SELECT id,title,question_count,question_sources_json,seed,active,archive,collection,created_at FROM exams WHERE 1=1`
	args := []any{}
	n := 0
	add := func(cond string, v any) {
		n++
		q += cond + placeholder(n)
		args = append(args, v)
	}
	if opts.Collection != "" {
		add(` AND collection=`, opts.Collection)
	}
	if opts.Active != nil {
		add(` AND active=`, *opts.Active)
	}
	if opts.Archive != nil {
		add(` AND archive=`, *opts.Archive)
	}
	q += ` ORDER BY created_at DESC, id`
	if opts.Limit > 0 {
		add(` LIMIT `, opts.Limit)
		add(` OFFSET `, opts.Offset)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Exam
	for rows.Next() {
		e, err := scanExam(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLStore) CopyExam(ctx context.Context, id, targetCollection string) (Exam, error) {
	return Exam{}, ErrNotImplemented
}

func (s *SQLStore) AppendLog(ctx context.Context, l ExamLog) error {
	created := l.CreatedAt
	if created == 0 {
		created = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO exam_logs (id,exam_id,user_id,closed,score,created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET closed=EXCLUDED.closed, score=EXCLUDED.score`,
		l.ID, l.ExamID, l.UserID, l.Closed, l.Score, created)
	return err
}

func (s *SQLStore) ListLogs(ctx context.Context, examID string) ([]ExamLog, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,exam_id,user_id,closed,score,created_at
		FROM exam_logs WHERE exam_id=$1 ORDER BY created_at DESC, id`, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ExamLog
	for rows.Next() {
		var l ExamLog
		if err := rows.Scan(&l.ID, &l.ExamID, &l.UserID, &l.Closed, &l.Score, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *SQLStore) ExamProgress(ctx context.Context, examID string) (Progress, error) {
	row := s.db.QueryRowContext(ctx, `SELECT
		COUNT(DISTINCT user_id),
		COUNT(DISTINCT CASE WHEN closed THEN user_id END)
		FROM exam_logs WHERE exam_id=$1`, examID)
	p := Progress{ExamID: examID}
	if err := row.Scan(&p.TotalLearners, &p.Completed); err != nil {
		return Progress{}, err
	}
	p.Started = p.TotalLearners - p.Completed
	return p, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanExam(row rowScanner) (Exam, error) {
	var e Exam
	var qjson string
	err := row.Scan(&e.ID, &e.Title, &e.QuestionCount, &qjson, &e.Seed, &e.Active, &e.Archive, &e.Collection, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Exam{}, ErrNotFound
		}
		return Exam{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &e.QuestionSources); err != nil {
		return Exam{}, err
	}
	return e, nil
}

// both pgx and modernc sqlite accept $N placeholders
func placeholder(n int) string { return fmt.Sprintf("$%d", n) }
