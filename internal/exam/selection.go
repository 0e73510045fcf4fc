package exam

import (
	"math/rand"
	"sync"

	"github.com/openlearn/coach/internal/content"
)

// MaxSeed bounds the randomize operation: seeds are drawn uniformly
// from [0, MaxSeed). Kept small so seeds stay readable in stored
// records.
const MaxSeed = 1000

// MaxQuestions is the wizard's upper bound on an exam's question count.
const MaxQuestions = 50

// Selection is the wizard's ordered set of picked exercises. Order is
// meaningful: it drives round-robin assignment in BuildQuestionSources.
// Uniqueness by exercise id is enforced by Add, not by the type.
//
// Every mutation replaces the backing list with a fresh value, so a
// slice handed out by Exercises never changes under a reader. The mutex
// serializes mutation with source building for callers that are not on
// a single event loop.
type Selection struct {
	mu   sync.Mutex
	list []content.Exercise
	seed int
}

func NewSelection(seed int) *Selection { return &Selection{seed: seed} }

// Add appends ex unless an exercise with the same id is already
// selected. Reports whether the selection changed.
func (s *Selection) Add(ex content.Exercise) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.list {
		if e.ID == ex.ID {
			return false
		}
	}
	next := make([]content.Exercise, 0, len(s.list)+1)
	next = append(next, s.list...)
	next = append(next, ex)
	s.list = next
	return true
}

// Remove drops the exercise with the given id, preserving the order of
// the rest. Reports whether anything was removed.
func (s *Selection) Remove(exerciseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]content.Exercise, 0, len(s.list))
	for _, e := range s.list {
		if e.ID != exerciseID {
			next = append(next, e)
		}
	}
	if len(next) == len(s.list) {
		return false
	}
	s.list = next
	return true
}

// Shuffle is the wizard's "randomize" action: a fresh seed and a
// uniformly-random reorder of the selection. It is a start-over with
// new randomness, not a deterministic function of the old seed.
func (s *Selection) Shuffle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed = rand.Intn(MaxSeed)
	next := append([]content.Exercise{}, s.list...)
	rand.Shuffle(len(next), func(i, j int) { next[i], next[j] = next[j], next[i] })
	s.list = next
}

// Exercises returns the current ordered selection. The returned slice
// is never mutated afterwards.
func (s *Selection) Exercises() []content.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list
}

func (s *Selection) Seed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

// Build snapshots the selection and seed together and builds question
// sources from that snapshot, so a concurrent Add or Remove cannot
// interleave with the round-robin walk.
func (s *Selection) Build(totalQuestions int) ([]QuestionSource, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildQuestionSources(s.list, totalQuestions), s.seed
}

// TotalAssessments sums assessment counts across the selection; the
// wizard validates question_count against it.
func (s *Selection) TotalAssessments() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, e := range s.list {
		total += e.NumAssessments
	}
	return total
}
