// Package httpsource implements content.Source against the remote
// content resource API.
package httpsource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/openlearn/coach/internal/content"
)

type Client struct {
	base string
	http *http.Client
}

type Config struct {
	// BaseURL of the resource API, e.g. http://content:8008/api.
	BaseURL string
	Timeout time.Duration
}

func New(cfg Config) *Client {
	h := &http.Client{}
	if cfg.Timeout > 0 {
		h.Timeout = cfg.Timeout
	}
	return &Client{base: strings.TrimSuffix(cfg.BaseURL, "/"), http: h}
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode/100 != 2 {
		return &content.APIError{Status: res.StatusCode, URL: u}
	}
	return json.NewDecoder(res.Body).Decode(out)
}

type topicRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Kind     string `json:"kind"` // topic|exercise
	NumCoach int    `json:"num_coach_contents,omitempty"`
	Assess   int    `json:"assessment_item_count,omitempty"`
}

func (c *Client) FetchTopic(ctx context.Context, id string) (content.Topic, error) {
	var rec topicRecord
	if err := c.getJSON(ctx, "/contentnode/"+url.PathEscape(id), nil, &rec); err != nil {
		return content.Topic{}, err
	}
	return content.Topic{ID: rec.ID, Title: rec.Title}, nil
}

func (c *Client) FetchAncestors(ctx context.Context, id string) ([]content.Crumb, error) {
	var recs []topicRecord
	if err := c.getJSON(ctx, "/contentnode/"+url.PathEscape(id)+"/ancestors", nil, &recs); err != nil {
		return nil, err
	}
	out := make([]content.Crumb, 0, len(recs))
	for _, r := range recs {
		out = append(out, content.Crumb{ID: r.ID, Title: r.Title})
	}
	return out, nil
}

func (c *Client) FetchSubtopics(ctx context.Context, id string) ([]content.Subtopic, error) {
	recs, err := c.children(ctx, id, "topic")
	if err != nil {
		return nil, err
	}
	out := make([]content.Subtopic, 0, len(recs))
	for _, r := range recs {
		out = append(out, content.Subtopic{ID: r.ID, Title: r.Title})
	}
	return out, nil
}

func (c *Client) FetchExercises(ctx context.Context, id string) ([]content.Exercise, error) {
	recs, err := c.children(ctx, id, "exercise")
	if err != nil {
		return nil, err
	}
	out := make([]content.Exercise, 0, len(recs))
	for _, r := range recs {
		out = append(out, content.Exercise{ID: r.ID, Title: r.Title, NumAssessments: r.Assess})
	}
	return out, nil
}

func (c *Client) children(ctx context.Context, parent, kind string) ([]topicRecord, error) {
	q := url.Values{}
	q.Set("parent", parent)
	q.Set("kind", kind)
	var recs []topicRecord
	if err := c.getJSON(ctx, "/contentnode", q, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// FetchAssessmentItems returns the ordered assessment-item id list of
// an exercise. Used by report replay, not by aggregation.
func (c *Client) FetchAssessmentItems(ctx context.Context, exerciseID string) ([]string, error) {
	var recs []struct {
		ID string `json:"id"`
	}
	if err := c.getJSON(ctx, "/contentnode/"+url.PathEscape(exerciseID)+"/assessments", nil, &recs); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out, nil
}

func (c *Client) FetchChannels(ctx context.Context) ([]content.Channel, error) {
	var recs []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		RootID string `json:"root_id"`
	}
	if err := c.getJSON(ctx, "/channel", nil, &recs); err != nil {
		return nil, err
	}
	out := make([]content.Channel, 0, len(recs))
	for _, r := range recs {
		out = append(out, content.Channel{ID: r.ID, Title: r.Name, RootTopicID: r.RootID})
	}
	return out, nil
}

var _ content.Source = (*Client)(nil)
