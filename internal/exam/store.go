package exam

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("exam not found")
	// ErrNotImplemented marks operations whose semantics are not yet
	// defined. CopyExam is a placeholder and stays one.
	ErrNotImplemented = errors.New("not implemented")
)

type ListOpts struct {
	Collection string // owning classroom id
	Active     *bool
	Archive    *bool
	Limit      int
	Offset     int
}

type Store interface {
	PutExam(ctx context.Context, e Exam) error
	GetExam(ctx context.Context, id string) (Exam, error)
	DeleteExam(ctx context.Context, id string) error
	ListExams(ctx context.Context, opts ListOpts) ([]Exam, error)

	// CopyExam duplicates an exam into another classroom. Placeholder:
	// always returns ErrNotImplemented.
	CopyExam(ctx context.Context, id, targetCollection string) (Exam, error)

	AppendLog(ctx context.Context, l ExamLog) error
	ListLogs(ctx context.Context, examID string) ([]ExamLog, error)
	ExamProgress(ctx context.Context, examID string) (Progress, error)
}
