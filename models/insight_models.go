package models

// GenerationState is the three-flag view state of one generation request:
// idle, loading, or settled with a result or a validation error.
type GenerationState struct {
	IsLoading bool    `json:"is_loading"`
	Result    *string `json:"result"`
	Error     *string `json:"error"`
}

// ActionRequest is the body of POST /api/blog/{slug}/actions/{action}.
type ActionRequest struct {
	// Item selects a content item (athlete name, benefit title, topic key).
	Item string `json:"item,omitempty"`
	// Input is free text typed by the reader.
	Input string `json:"input,omitempty"`
	// Choice is a selected option, such as an audience or a podcast topic.
	Choice string `json:"choice,omitempty"`
	// Context is the second free-text field of two-field actions.
	Context  string   `json:"context,omitempty"`
	Goals    []string `json:"goals,omitempty"`
	Duration string   `json:"duration,omitempty"`
}

// ActionResponse returns the settled state and the rendered result block.
type ActionResponse struct {
	BaseResponse
	Page   string          `json:"page"`
	Action string          `json:"action"`
	State  GenerationState `json:"state"`
	HTML   string          `json:"html,omitempty"`
}

// PageSummary is the JSON listing entry for a blog page.
type PageSummary struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Date       string   `json:"date"`
	Categories []string `json:"categories"`
	Actions    []string `json:"actions,omitempty"`
}

// Fallbacks are the page-authored sentences shown in place of a generated
// result when the AI endpoint call does not produce one.
type Fallbacks struct {
	// Status is shown when the endpoint answers with a non-2xx status.
	Status string `json:"status,omitempty" yaml:"status"`
	// Unexpected is shown when the success body lacks the generated text.
	Unexpected string `json:"unexpected,omitempty" yaml:"unexpected"`
	// Transport is shown for network failures and undecodable bodies.
	Transport string `json:"transport,omitempty" yaml:"transport"`
	// Blocked prefixes the block reason reported by the endpoint.
	Blocked string `json:"blocked,omitempty" yaml:"blocked"`
	// BlockedSuffix follows the block reason.
	BlockedSuffix string `json:"blocked_suffix,omitempty" yaml:"blocked_suffix"`
}

// Merge returns f with every empty field taken from def.
func (f Fallbacks) Merge(def Fallbacks) Fallbacks {
	if f.Status == "" {
		f.Status = def.Status
	}
	if f.Unexpected == "" {
		f.Unexpected = def.Unexpected
	}
	if f.Transport == "" {
		f.Transport = def.Transport
	}
	if f.Blocked == "" {
		f.Blocked = def.Blocked
	}
	if f.BlockedSuffix == "" {
		f.BlockedSuffix = def.BlockedSuffix
	}
	return f
}
