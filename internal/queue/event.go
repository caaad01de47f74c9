// Package queue defines message payloads exchanged over the message broker.
package queue

// Actions a CourseEvent may carry.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// CourseEvent is published whenever the course collection is mutated. It
// contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the catalog. For deletions only
// CourseID and ActorID are meaningful.
type CourseEvent struct {
	Action     string `json:"action"`
	CourseID   uint64 `json:"course_id"`
	Title      string `json:"title,omitempty"`
	Category   string `json:"category,omitempty"`
	Level      string `json:"level,omitempty"`
	ActorID    uint64 `json:"actor_id"`
	OccurredAt string `json:"occurred_at"`
}
