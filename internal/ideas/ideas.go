package ideas

import "encoding/json"

// Idea is a single generated campaign suggestion.
type Idea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DecodeIdeas maps a value returned by Normalize onto typed ideas.
// Best-effort only: the HTTP layer passes normalized JSON through verbatim,
// so a false here never fails a request. Used for the history log and mocks.
func DecodeIdeas(v any) ([]Idea, bool) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var out []Idea
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}
