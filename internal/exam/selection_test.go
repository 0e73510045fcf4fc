package exam_test

import (
	"testing"

	"github.com/openlearn/coach/internal/exam"
)

func TestSelection_AddDeduplicates(t *testing.T) {
	s := exam.NewSelection(7)
	if !s.Add(ex("e1", "A", 3)) {
		t.Fatal("first add should succeed")
	}
	if s.Add(ex("e1", "A again", 5)) {
		t.Fatal("duplicate id should be rejected")
	}
	if !s.Add(ex("e2", "B", 2)) {
		t.Fatal("distinct id should be accepted")
	}
	got := s.Exercises()
	if len(got) != 2 || got[0].ID != "e1" || got[1].ID != "e2" {
		t.Fatalf("unexpected selection %v", got)
	}
	if s.TotalAssessments() != 5 {
		t.Fatalf("total assessments = %d, want 5", s.TotalAssessments())
	}
}

func TestSelection_RemovePreservesOrder(t *testing.T) {
	s := exam.NewSelection(0)
	s.Add(ex("e1", "A", 1))
	s.Add(ex("e2", "B", 1))
	s.Add(ex("e3", "C", 1))
	if !s.Remove("e2") {
		t.Fatal("remove should report change")
	}
	if s.Remove("e2") {
		t.Fatal("second remove should be a no-op")
	}
	got := s.Exercises()
	if len(got) != 2 || got[0].ID != "e1" || got[1].ID != "e3" {
		t.Fatalf("unexpected selection %v", got)
	}
}

func TestSelection_MutationDoesNotAliasSnapshots(t *testing.T) {
	s := exam.NewSelection(0)
	s.Add(ex("e1", "A", 1))
	snap := s.Exercises()
	s.Add(ex("e2", "B", 1))
	s.Remove("e1")
	if len(snap) != 1 || snap[0].ID != "e1" {
		t.Fatalf("snapshot mutated: %v", snap)
	}
}

func TestSelection_ShuffleKeepsMembershipAndBoundsSeed(t *testing.T) {
	s := exam.NewSelection(0)
	ids := []string{"e1", "e2", "e3", "e4", "e5"}
	for _, id := range ids {
		s.Add(ex(id, id, 1))
	}
	s.Shuffle()

	seen := map[string]bool{}
	for _, e := range s.Exercises() {
		seen[e.ID] = true
	}
	for _, id := range ids {
		if !seen[id] {
			t.Fatalf("exercise %s lost in shuffle", id)
		}
	}
	if seed := s.Seed(); seed < 0 || seed >= exam.MaxSeed {
		t.Fatalf("seed %d outside [0,%d)", seed, exam.MaxSeed)
	}
}

func TestSelection_BuildSnapshotsSeedAndOrder(t *testing.T) {
	s := exam.NewSelection(11)
	s.Add(ex("e1", "B", 5))
	s.Add(ex("e2", "A", 5))
	sources, seed := s.Build(3)
	if seed != 11 {
		t.Fatalf("seed = %d, want 11", seed)
	}
	// e1 selected first, so it takes the extra question; output sorted by title
	if sources[0].ExerciseID != "e2" || sources[0].NumberOfQuestions != 1 {
		t.Fatalf("unexpected first source %+v", sources[0])
	}
	if sources[1].ExerciseID != "e1" || sources[1].NumberOfQuestions != 2 {
		t.Fatalf("unexpected second source %+v", sources[1])
	}
}
