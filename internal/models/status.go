package models

// Status is a free-text ticket/request status. Label is what gets displayed:
// the canonical spelling when Key matched the known vocabulary, otherwise
// the server value verbatim.
type Status struct {
	Label string `json:"label"`
	Key   string `json:"key,omitempty"`
	Known bool   `json:"known"`
	Done  bool   `json:"done"`
}
