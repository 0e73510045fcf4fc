package content

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// maxDepth bounds the subtopic recursion. Real content trees are a
// handful of levels deep; hitting this means the upstream data is
// cyclic or hostile.
const maxDepth = 32

var ErrTreeTooDeep = errors.New("content: topic tree exceeds maximum depth")

// Aggregator walks the content tree through a Source and shapes it into
// the picker view model.
type Aggregator struct {
	src Source
}

func NewAggregator(src Source) *Aggregator { return &Aggregator{src: src} }

// Aggregate builds the Tree for topicID. The topic, its ancestors, its
// subtopics and its exercises are fetched concurrently, then every
// subtopic's transitive exercise list is enumerated with one parallel
// recursion per subtopic. An empty topicID aggregates all channels
// under the synthetic all-channels root.
//
// Any fetch failure fails the whole call; partial results are never
// returned. Cancel ctx to abandon an in-flight aggregation.
func (a *Aggregator) Aggregate(ctx context.Context, topicID string) (Tree, error) {
	if err := ctx.Err(); err != nil {
		return Tree{}, err
	}
	if topicID == "" {
		return a.aggregateChannels(ctx)
	}

	var (
		topic     Topic
		ancestors []Crumb
		subtopics []Subtopic
		exercises []Exercise
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		topic, err = a.src.FetchTopic(gctx, topicID)
		return
	})
	g.Go(func() (err error) {
		ancestors, err = a.src.FetchAncestors(gctx, topicID)
		return
	})
	g.Go(func() (err error) {
		subtopics, err = a.src.FetchSubtopics(gctx, topicID)
		return
	})
	g.Go(func() (err error) {
		exercises, err = a.src.FetchExercises(gctx, topicID)
		return
	})
	if err := g.Wait(); err != nil {
		return Tree{}, err
	}

	crumbs := make([]Crumb, 0, len(ancestors)+2)
	crumbs = append(crumbs, Crumb{ID: "", Title: AllChannelsTitle})
	crumbs = append(crumbs, ancestors...)
	crumbs = append(crumbs, Crumb{ID: topic.ID, Title: topic.Title})
	topic.Breadcrumbs = crumbs

	if err := a.fillSubtopicExercises(ctx, subtopics); err != nil {
		return Tree{}, err
	}
	return Tree{Topic: topic, Subtopics: subtopics, Exercises: exercises}, nil
}

func (a *Aggregator) fillSubtopicExercises(ctx context.Context, subtopics []Subtopic) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range subtopics {
		i := i
		g.Go(func() error {
			exs, err := a.descendantExercises(gctx, subtopics[i].ID, 0)
			if err != nil {
				return err
			}
			subtopics[i].Exercises = exs
			return nil
		})
	}
	return g.Wait()
}

// descendantExercises returns the transitive exercise list under
// topicID: its direct exercises plus, recursively, those of every
// subtopic. Each level fans out one goroutine per subtopic and joins.
func (a *Aggregator) descendantExercises(ctx context.Context, topicID string, depth int) ([]Exercise, error) {
	if depth >= maxDepth {
		return nil, ErrTreeTooDeep
	}

	var (
		direct   []Exercise
		children []Subtopic
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		direct, err = a.src.FetchExercises(gctx, topicID)
		return
	})
	g.Go(func() (err error) {
		children, err = a.src.FetchSubtopics(gctx, topicID)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	nested := make([][]Exercise, len(children))
	g, gctx = errgroup.WithContext(ctx)
	for i := range children {
		i := i
		g.Go(func() (err error) {
			nested[i], err = a.descendantExercises(gctx, children[i].ID, depth+1)
			return
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := append([]Exercise{}, direct...)
	for _, exs := range nested {
		out = append(out, exs...)
	}
	return out, nil
}

// aggregateChannels synthesizes the all-channels pseudo-topic: every
// channel root becomes a subtopic carrying its whole subtree's
// exercises, and the pseudo-topic's exercise list is their
// concatenation.
func (a *Aggregator) aggregateChannels(ctx context.Context) (Tree, error) {
	channels, err := a.src.FetchChannels(ctx)
	if err != nil {
		return Tree{}, err
	}

	subtopics := make([]Subtopic, len(channels))
	g, gctx := errgroup.WithContext(ctx)
	for i, ch := range channels {
		i, ch := i, ch
		g.Go(func() error {
			exs, err := a.descendantExercises(gctx, ch.RootTopicID, 0)
			if err != nil {
				return err
			}
			subtopics[i] = Subtopic{ID: ch.RootTopicID, Title: ch.Title, Exercises: exs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Tree{}, err
	}

	var all []Exercise
	for _, st := range subtopics {
		all = append(all, st.Exercises...)
	}
	return Tree{
		Topic: Topic{
			ID:          "",
			Title:       AllChannelsTitle,
			Breadcrumbs: []Crumb{{ID: "", Title: AllChannelsTitle}},
		},
		Subtopics: subtopics,
		Exercises: all,
	}, nil
}
