package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/openlearn/coach/internal/content"
	"github.com/openlearn/coach/internal/exam"
	"github.com/openlearn/coach/internal/rbac"
)

// Mount attaches the coach API to r. Callers wrap r with auth
// middleware first; route-level RBAC happens here.
func Mount(r chi.Router, store exam.Store, agg *content.Aggregator, items ItemSource, notify Notifier) {
	r.With(rbac.Require("content:browse")).
		Get("/content/tree", TreeHandler(agg))

	r.With(rbac.Require("exam:create")).
		Post("/exams", CreateExamHandler(store, notify))
	r.With(rbac.Require("exam:view")).
		Get("/exams", ListExamsHandler(store))
	r.With(rbac.Require("exam:view")).
		Get("/exams/{examID}", GetExamHandler(store))
	r.With(rbac.Require("exam:update")).
		Patch("/exams/{examID}", UpdateExamHandler(store, notify))
	r.With(rbac.Require("exam:delete")).
		Delete("/exams/{examID}", DeleteExamHandler(store, notify))
	r.With(rbac.Require("exam:create")).
		Post("/exams/{examID}/copy", CopyExamHandler(store))

	r.With(rbac.Require("report:view")).
		Get("/classes/{classID}/exams", ClassReportHandler(store))
	r.With(rbac.Require("report:view")).
		Get("/exams/{examID}/report", ExamReportHandler(store))
	r.With(rbac.RequireAny("report:view", "exam:view")).
		Get("/exams/{examID}/questions", QuestionListHandler(store, items))
	r.With(rbac.RequireAny("report:view", "exam:view")).
		Get("/exams/{examID}/questions/{n}", QuestionHandler(store, items))

	r.With(rbac.Require("examlog:append")).
		Post("/exams/{examID}/logs", AppendLogHandler(store))
}
