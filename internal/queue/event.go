// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// Course event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// CourseEvent is published whenever a course is created, updated or
// deleted.  It carries enough information for downstream consumers to log
// or trigger notifications without querying the primary database.
type CourseEvent struct {
	Action     string `json:"action"`
	CourseID   uint64 `json:"course_id"`
	Title      string `json:"title"`
	OwnerID    uint64 `json:"owner_id"`
	OccurredAt string `json:"occurred_at"`
}
