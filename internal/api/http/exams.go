package http

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openlearn/coach/internal/exam"
)

// POST /exams
// Builds question sources server-side from the submitted selection so
// the stored record always satisfies the sum invariant.
func CreateExamHandler(store exam.Store, notify Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form exam.CreateForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if err := form.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		seed := rand.Intn(exam.MaxSeed)
		if form.Seed != nil {
			seed = *form.Seed
		}
		e := exam.Exam{
			ID:              uuid.NewString(),
			Title:           form.Title,
			QuestionCount:   form.QuestionCount,
			QuestionSources: exam.BuildQuestionSources(form.Exercises, form.QuestionCount),
			Seed:            seed,
			Active:          true,
			Collection:      form.Collection,
		}
		if err := store.PutExam(r.Context(), e); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		notify.Notify("Exam created: " + e.Title)
		writeJSON(w, http.StatusCreated, e)
	}
}

// GET /exams/{examID}
func GetExamHandler(store exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := store.GetExam(r.Context(), chi.URLParam(r, "examID"))
		if err != nil {
			writeExamErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

// GET /exams?collection=...&active=true&archive=false&limit=50&offset=0
func ListExamsHandler(store exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := exam.ListOpts{
			Collection: strings.TrimSpace(r.URL.Query().Get("collection")),
			Limit:      parseIntDefault(r.URL.Query().Get("limit"), 50),
			Offset:     parseIntDefault(r.URL.Query().Get("offset"), 0),
		}
		if v := r.URL.Query().Get("active"); v != "" {
			b := v == "true" || v == "1"
			opts.Active = &b
		}
		if v := r.URL.Query().Get("archive"); v != "" {
			b := v == "true" || v == "1"
			opts.Archive = &b
		}
		list, err := store.ListExams(r.Context(), opts)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if list == nil {
			list = []exam.Exam{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// PATCH /exams/{examID}
// Partial save: rename, activate, archive. Seed and question sources
// never change after creation.
func UpdateExamHandler(store exam.Store, notify Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form exam.UpdateForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if err := form.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		e, err := store.GetExam(r.Context(), chi.URLParam(r, "examID"))
		if err != nil {
			writeExamErr(w, err)
			return
		}
		if form.Title != nil {
			e.Title = *form.Title
		}
		if form.Active != nil {
			e.Active = *form.Active
		}
		if form.Archive != nil {
			e.Archive = *form.Archive
		}
		if err := store.PutExam(r.Context(), e); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		notify.Notify("Exam saved: " + e.Title)
		writeJSON(w, http.StatusOK, e)
	}
}

// DELETE /exams/{examID}
func DeleteExamHandler(store exam.Store, notify Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "examID")
		if err := store.DeleteExam(r.Context(), id); err != nil {
			writeExamErr(w, err)
			return
		}
		notify.Notify("Exam deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}

// POST /exams/{examID}/copy  { "collection": "..." }
// Placeholder: the copy-to-class operation has no defined semantics yet.
func CopyExamHandler(store exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Collection string `json:"collection"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		_, err := store.CopyExam(r.Context(), chi.URLParam(r, "examID"), req.Collection)
		writeExamErr(w, err)
	}
}

func writeExamErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, exam.ErrNotFound):
		http.Error(w, "exam not found", http.StatusNotFound)
	case errors.Is(err, exam.ErrNotImplemented):
		http.Error(w, "not implemented", http.StatusNotImplemented)
	default:
		http.Error(w, err.Error(), 500)
	}
}
