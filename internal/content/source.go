package content

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by a Source when the requested node does not
// exist upstream.
var ErrNotFound = errors.New("content: not found")

// Source is the read-only contract against the remote content resource
// API. Implementations must be safe for concurrent use: Aggregate issues
// independent fetches in parallel.
type Source interface {
	// FetchTopic returns the topic record for id.
	FetchTopic(ctx context.Context, id string) (Topic, error)
	// FetchAncestors returns the ancestor chain of id in root-to-parent
	// order, excluding id itself.
	FetchAncestors(ctx context.Context, id string) ([]Crumb, error)
	// FetchSubtopics returns the direct child topics of id.
	FetchSubtopics(ctx context.Context, id string) ([]Subtopic, error)
	// FetchExercises returns the direct child exercises of id.
	FetchExercises(ctx context.Context, id string) ([]Exercise, error)
	// FetchChannels returns every available channel.
	FetchChannels(ctx context.Context) ([]Channel, error)
}

// APIError reports a non-2xx response from the upstream resource API.
type APIError struct {
	Status int
	URL    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("content api: %s returned %d", e.URL, e.Status)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == 404
}
