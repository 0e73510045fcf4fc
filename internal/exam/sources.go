package exam

import (
	"hash/fnv"
	"math/rand"
	"sort"
	"strings"

	"github.com/openlearn/coach/internal/content"
)

// BuildQuestionSources partitions totalQuestions across the selected
// exercises round-robin in selection order: slot i goes to exercise
// i mod len(selected). The result is sorted by title, case-insensitive,
// so display order is stable regardless of selection order.
//
// Callers own the bounds: the wizard's validation layer guarantees
// totalQuestions is positive, at most 50, and covered by the selected
// exercises' assessment counts. No clamping happens here.
func BuildQuestionSources(selected []content.Exercise, totalQuestions int) []QuestionSource {
	if len(selected) == 0 {
		return nil
	}
	counts := make(map[string]int, len(selected))
	for i := 0; i < totalQuestions; i++ {
		counts[selected[i%len(selected)].ID]++
	}
	out := make([]QuestionSource, 0, len(selected))
	for _, ex := range selected {
		n := counts[ex.ID]
		if n == 0 {
			continue
		}
		out = append(out, QuestionSource{
			ExerciseID:        ex.ID,
			NumberOfQuestions: n,
			Title:             ex.Title,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	return out
}

// CreateQuestionList expands question sources into the flat ordered
// question list: sources in their stored (post-sort) order, exercise-
// local indices counting up from 0 within each block. Position N of the
// result is "question N" everywhere the exam is rendered.
func CreateQuestionList(sources []QuestionSource) []Question {
	var out []Question
	for _, s := range sources {
		for i := 0; i < s.NumberOfQuestions; i++ {
			out = append(out, Question{ExerciseID: s.ExerciseID, AssessmentIndex: i})
		}
	}
	return out
}

// SelectQuestionFromExercise resolves which assessment item occupies
// assessmentIndex for this seed: the seed (mixed with a hash of the
// exercise id, so sibling exercises permute independently) drives a
// permutation of itemIDs, and assessmentIndex indexes into it.
//
// Stable by construction: the same (assessmentIndex, seed, itemIDs)
// always yields the same item. Seeds persisted by other implementations
// of this contract are not expected to replay identically here.
func SelectQuestionFromExercise(assessmentIndex, seed int, exerciseID string, itemIDs []string) string {
	if len(itemIDs) == 0 || assessmentIndex < 0 {
		return ""
	}
	h := fnv.New64a()
	h.Write([]byte(exerciseID))
	rng := rand.New(rand.NewSource(int64(seed) ^ int64(h.Sum64())))
	perm := rng.Perm(len(itemIDs))
	return itemIDs[perm[assessmentIndex%len(itemIDs)]]
}
