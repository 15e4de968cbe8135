package domain

// Only the fields the automation reads are modelled; GitHub sends many more.

type Repository struct {
	FullName string `json:"full_name"`
}

type Commit struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// ShortID is the 7 character form of the commit sha used in comments.
func (c Commit) ShortID() string {
	if len(c.ID) <= 7 {
		return c.ID
	}
	return c.ID[:7]
}

type PushEvent struct {
	Ref        string     `json:"ref"`
	Commits    []Commit   `json:"commits"`
	Repository Repository `json:"repository"`
}

type PullRequest struct {
	Number int64  `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Merged bool   `json:"merged"`
	URL    string `json:"html_url"`
}

type PullRequestEvent struct {
	Action      string      `json:"action"`
	Number      int64       `json:"number"`
	PullRequest PullRequest `json:"pull_request"`
	Repository  Repository  `json:"repository"`
}

// IsMerge reports whether the event is a pull request being merged, the
// only pull request action the automation reacts to.
func (e PullRequestEvent) IsMerge() bool {
	return e.Action == "closed" && e.PullRequest.Merged
}

// PRNumber prefers pull_request.number and falls back to the top-level number.
func (e PullRequestEvent) PRNumber() int64 {
	if e.PullRequest.Number != 0 {
		return e.PullRequest.Number
	}
	return e.Number
}
