package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearn/coach/internal/content"
)

// treeSource is a two-level static content tree for the browse endpoint.
type treeSource struct{}

func newTreeSource() treeSource { return treeSource{} }

func (treeSource) FetchTopic(_ context.Context, id string) (content.Topic, error) {
	if id != "t1" && id != "t2" {
		return content.Topic{}, &content.APIError{Status: 404, URL: "/contentnode/" + id}
	}
	return content.Topic{ID: id, Title: "Topic " + id}, nil
}

func (treeSource) FetchAncestors(_ context.Context, id string) ([]content.Crumb, error) {
	if id == "t2" {
		return []content.Crumb{{ID: "t1", Title: "Topic t1"}}, nil
	}
	return nil, nil
}

func (treeSource) FetchSubtopics(_ context.Context, id string) ([]content.Subtopic, error) {
	if id == "t1" {
		return []content.Subtopic{{ID: "t2", Title: "Topic t2"}}, nil
	}
	return nil, nil
}

func (treeSource) FetchExercises(_ context.Context, id string) ([]content.Exercise, error) {
	if id == "t2" {
		return []content.Exercise{{ID: "ex1", Title: "Exercise", NumAssessments: 3}}, nil
	}
	return nil, nil
}

func (treeSource) FetchChannels(context.Context) ([]content.Channel, error) {
	return []content.Channel{{ID: "ch", Title: "Channel", RootTopicID: "t1"}}, nil
}

func TestTreeEndpoint(t *testing.T) {
	srv := newServer(newFakeStore(), fakeItems{})
	defer srv.Close()

	res, err := http.Get(srv.URL + "/content/tree?topic_id=t1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	tree := decode[content.Tree](t, res)
	assert.Equal(t, "t1", tree.Topic.ID)
	require.Len(t, tree.Topic.Breadcrumbs, 2)
	assert.Equal(t, content.AllChannelsTitle, tree.Topic.Breadcrumbs[0].Title)
	require.Len(t, tree.Subtopics, 1)
	assert.Len(t, tree.Subtopics[0].Exercises, 1)

	res2, err := http.Get(srv.URL + "/content/tree?topic_id=missing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res2.StatusCode)
	res2.Body.Close()
}
