package model

import "time"

// Course represents a course record as stored in the `courses` table.
// Every course is owned by exactly one user; UserID is assigned at
// creation and never changes through the API.  EstimatedTime and
// MaterialsNeeded are optional columns and may be empty.
type Course struct {
	ID              uint64    // courses.id
	UserID          uint64    // courses.user_id (owner, references users.id)
	Title           string    // courses.title
	Description     string    // courses.description
	EstimatedTime   string    // courses.estimated_time (nullable)
	MaterialsNeeded string    // courses.materials_needed (nullable)
	CreatedAt       time.Time // courses.created_at
	UpdatedAt       time.Time // courses.updated_at

	// Owner is populated by queries that join the owning user.  Only
	// safe columns are selected into it.
	Owner *User
}
