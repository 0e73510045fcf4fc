package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openlearn/coach/internal/exam"
)

// ItemSource resolves an exercise's ordered assessment-item id list;
// report replay needs it to turn question slots into concrete items.
type ItemSource interface {
	FetchAssessmentItems(ctx context.Context, exerciseID string) ([]string, error)
}

// ReportRow is one line of the class report list page.
type ReportRow struct {
	Exam     exam.Exam     `json:"exam"`
	Progress exam.Progress `json:"progress"`
}

// GET /classes/{classID}/exams
func ClassReportHandler(store exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classID := chi.URLParam(r, "classID")
		exams, err := store.ListExams(r.Context(), exam.ListOpts{Collection: classID})
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		rows := make([]ReportRow, 0, len(exams))
		for _, e := range exams {
			p, err := store.ExamProgress(r.Context(), e.ID)
			if err != nil {
				http.Error(w, err.Error(), 500)
				return
			}
			rows = append(rows, ReportRow{Exam: e, Progress: p})
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// GET /exams/{examID}/report
func ExamReportHandler(store exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "examID")
		e, err := store.GetExam(r.Context(), id)
		if err != nil {
			writeExamErr(w, err)
			return
		}
		logs, err := store.ListLogs(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if logs == nil {
			logs = []exam.ExamLog{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"exam": e, "logs": logs})
	}
}

// ReplayedQuestion is one fully-resolved question slot: slot position,
// source exercise, and the concrete item the stored seed selects.
type ReplayedQuestion struct {
	Number          int    `json:"number"`
	ExerciseID      string `json:"exercise_id"`
	AssessmentIndex int    `json:"assessment_index"`
	ItemID          string `json:"item_id"`
}

// GET /exams/{examID}/questions
// Replays the whole question list from the stored (seed, sources) pair.
func QuestionListHandler(store exam.Store, items ItemSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := store.GetExam(r.Context(), chi.URLParam(r, "examID"))
		if err != nil {
			writeExamErr(w, err)
			return
		}
		out, err := replayAll(r.Context(), e, items)
		if err != nil {
			http.Error(w, "content service error", http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /exams/{examID}/questions/{n}
// Out-of-range n is a user error (bad navigation parameter), not a 500.
func QuestionHandler(store exam.Store, items ItemSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := store.GetExam(r.Context(), chi.URLParam(r, "examID"))
		if err != nil {
			writeExamErr(w, err)
			return
		}
		list := exam.CreateQuestionList(e.QuestionSources)
		n := parseIntDefault(chi.URLParam(r, "n"), -1)
		if n < 0 || n >= len(list) {
			http.Error(w, "question number out of range", http.StatusBadRequest)
			return
		}
		q := list[n]
		ids, err := items.FetchAssessmentItems(r.Context(), q.ExerciseID)
		if err != nil {
			http.Error(w, "content service error", http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, ReplayedQuestion{
			Number:          n,
			ExerciseID:      q.ExerciseID,
			AssessmentIndex: q.AssessmentIndex,
			ItemID:          exam.SelectQuestionFromExercise(q.AssessmentIndex, e.Seed, q.ExerciseID, ids),
		})
	}
}

func replayAll(ctx context.Context, e exam.Exam, items ItemSource) ([]ReplayedQuestion, error) {
	cache := map[string][]string{}
	list := exam.CreateQuestionList(e.QuestionSources)
	out := make([]ReplayedQuestion, 0, len(list))
	for i, q := range list {
		ids, ok := cache[q.ExerciseID]
		if !ok {
			var err error
			ids, err = items.FetchAssessmentItems(ctx, q.ExerciseID)
			if err != nil {
				return nil, err
			}
			cache[q.ExerciseID] = ids
		}
		out = append(out, ReplayedQuestion{
			Number:          i,
			ExerciseID:      q.ExerciseID,
			AssessmentIndex: q.AssessmentIndex,
			ItemID:          exam.SelectQuestionFromExercise(q.AssessmentIndex, e.Seed, q.ExerciseID, ids),
		})
	}
	return out, nil
}

// POST /exams/{examID}/logs  — learner completion reporting.
func AppendLogHandler(store exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var l exam.ExamLog
		if err := decodeJSON(r, &l); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		l.ExamID = chi.URLParam(r, "examID")
		if l.ID == "" || l.UserID == "" {
			http.Error(w, "id and user_id required", http.StatusBadRequest)
			return
		}
		// exam must exist; 404 otherwise
		if _, err := store.GetExam(r.Context(), l.ExamID); err != nil {
			writeExamErr(w, err)
			return
		}
		if err := store.AppendLog(r.Context(), l); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, http.StatusCreated, l)
	}
}
