package content

// AllChannelsTitle is the title of the synthetic pseudo-root that is
// prepended to every breadcrumb trail (and stands in for "no topic
// selected" at the top level). Its ID is the empty string.
const AllChannelsTitle = "All channels"

// Crumb is one entry of a breadcrumb trail. ID is "" for the synthetic
// all-channels root.
type Crumb struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Topic struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Breadcrumbs []Crumb `json:"breadcrumbs"`
}

// Exercise is a leaf content node summary. NumAssessments is the number
// of distinct assessable items the exercise contains; zero when the
// metadata does not report one.
type Exercise struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	NumAssessments int    `json:"num_assessments"`
}

// Subtopic is a direct child topic annotated with the full transitive
// list of exercises nested anywhere under it.
type Subtopic struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
}

// Tree is the view model produced by one aggregation: the topic itself
// (with breadcrumbs), its immediate subtopics (each with aggregated
// exercises), and its immediate exercises.
type Tree struct {
	Topic     Topic      `json:"topic"`
	Subtopics []Subtopic `json:"subtopics"`
	Exercises []Exercise `json:"exercises"`
}

type Channel struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	RootTopicID string `json:"root_topic_id"`
}
