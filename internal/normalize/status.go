package normalize

import (
	"strings"

	"hostel-be-svc/internal/models"
)

// Default labels used when the backend sends no status
const (
	ComplaintDefaultStatus = "In Progress"
	LaundryDefaultStatus   = "Pending"
	ReceiptDefaultStatus   = "Pending"
)

type knownStatus struct {
	label string
	done  bool
}

// knownStatuses is the vocabulary observed so far. It is not closed: anything
// else is displayed exactly as the backend sent it.
var knownStatuses = map[string]knownStatus{
	"pending":     {label: "Pending"},
	"in progress": {label: "In Progress"},
	"rejected":    {label: "Rejected"},
	"resolved":    {label: "Resolved", done: true},
	"delivered":   {label: "Delivered", done: true},
	"completed":   {label: "Completed", done: true},
	"approved":    {label: "Approved", done: true},
}

// StatusKey folds case, '-' and '_' and repeated spaces
func StatusKey(raw string) string {
	folded := strings.ToLower(strings.TrimSpace(raw))
	folded = strings.NewReplacer("_", " ", "-", " ").Replace(folded)
	return strings.Join(strings.Fields(folded), " ")
}

// Status normalizes a free-text status. Empty input takes fallback.
func Status(raw, fallback string) models.Status {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}
	key := StatusKey(raw)
	if known, ok := knownStatuses[key]; ok {
		return models.Status{Label: known.label, Key: key, Known: true, Done: known.done}
	}
	return models.Status{Label: raw, Key: key}
}
