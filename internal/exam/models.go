package exam

// QuestionSource is one exercise contributing NumberOfQuestions
// questions to an exam. The JSON field names are the persisted wire
// contract shared with the report views; do not rename them.
type QuestionSource struct {
	ExerciseID        string `json:"exercise_id"`
	NumberOfQuestions int    `json:"number_of_questions"`
	Title             string `json:"title"`
}

type Exam struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	QuestionCount   int              `json:"question_count"`
	QuestionSources []QuestionSource `json:"question_sources"`
	// Seed drives deterministic item selection; with QuestionSources it
	// fully determines the rendered question list.
	Seed       int    `json:"seed"`
	Active     bool   `json:"active"`
	Archive    bool   `json:"archive"`
	Collection string `json:"collection"` // owning classroom id

	CreatedAt int64 `json:"created_at,omitempty"`
}

// Question is one slot of the expanded question list: the
// AssessmentIndex-th question drawn from ExerciseID for this exam's
// seed. Derived, never stored.
type Question struct {
	ExerciseID      string `json:"exercise_id"`
	AssessmentIndex int    `json:"assessment_index"`
}

// ExamLog records one learner's progress through an exam; report pages
// aggregate these.
type ExamLog struct {
	ID        string  `json:"id"`
	ExamID    string  `json:"exam_id"`
	UserID    string  `json:"user_id"`
	Closed    bool    `json:"closed"`
	Score     float64 `json:"score"`
	CreatedAt int64   `json:"created_at,omitempty"`
}

// Progress is the per-exam rollup shown on the report list page.
type Progress struct {
	ExamID        string `json:"exam_id"`
	TotalLearners int    `json:"total_learners"`
	Completed     int    `json:"completed"`
	Started       int    `json:"started"`
}
