package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/course-catalog/internal/model"
)

// CourseRepo encapsulates all database queries related to courses.  It
// depends on a sql.DB connection which is configured at startup.
type CourseRepo struct {
	db *sql.DB
}

// NewCourseRepo constructs a CourseRepo with the provided DB handle.
func NewCourseRepo(db *sql.DB) *CourseRepo {
	return &CourseRepo{db: db}
}

// Create inserts a new course.  On success the course's ID field is
// populated with the auto-generated value.  A duplicate-key collision is
// surfaced as ErrDuplicateCourse so a unique index on the natural key can
// be added to the schema without code changes.
func (r *CourseRepo) Create(ctx context.Context, c *model.Course) error {
	const q = `INSERT INTO courses (user_id, title, description, estimated_time, materials_needed)
	           VALUES (?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q,
		c.UserID, c.Title, c.Description, nullable(c.EstimatedTime), nullable(c.MaterialsNeeded))
	if err != nil {
		if isDuplicateErr(err) {
			return ErrDuplicateCourse
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// FindByID fetches a course by its ID with the owning user joined in.
// Only safe owner columns are selected; the password hash never leaves
// the users table on this path.  Returns ErrCourseNotFound when no row
// matches.
func (r *CourseRepo) FindByID(ctx context.Context, id uint64) (*model.Course, error) {
	const q = `SELECT c.id, c.user_id, c.title, c.description, c.estimated_time, c.materials_needed,
	                  u.id, u.first_name, u.last_name, u.email_address
	           FROM courses c
	           JOIN users u ON u.id = c.user_id
	           WHERE c.id = ?`
	c := &model.Course{Owner: &model.User{}}
	var estTime, materials sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&c.ID, &c.UserID, &c.Title, &c.Description, &estTime, &materials,
		&c.Owner.ID, &c.Owner.FirstName, &c.Owner.LastName, &c.Owner.EmailAddress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	c.EstimatedTime = estTime.String
	c.MaterialsNeeded = materials.String
	return c, nil
}

// List returns all courses ordered by id, each with its owner joined in.
func (r *CourseRepo) List(ctx context.Context) ([]*model.Course, error) {
	const q = `SELECT c.id, c.user_id, c.title, c.description, c.estimated_time, c.materials_needed,
	                  u.id, u.first_name, u.last_name, u.email_address
	           FROM courses c
	           JOIN users u ON u.id = c.user_id
	           ORDER BY c.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Course
	for rows.Next() {
		c := &model.Course{Owner: &model.User{}}
		var estTime, materials sql.NullString
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Title, &c.Description, &estTime, &materials,
			&c.Owner.ID, &c.Owner.FirstName, &c.Owner.LastName, &c.Owner.EmailAddress); err != nil {
			return nil, err
		}
		c.EstimatedTime = estTime.String
		c.MaterialsNeeded = materials.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ExistsByTitleDescription reports whether a course with the exact same
// title and description already exists.  This is a best-effort check run
// before insert; two concurrent creations can still both pass it, in
// which case the store's own constraints govern the outcome.
func (r *CourseRepo) ExistsByTitleDescription(ctx context.Context, title, description string) (bool, error) {
	const q = "SELECT 1 FROM courses WHERE title = ? AND description = ? LIMIT 1"
	var one int
	err := r.db.QueryRowContext(ctx, q, title, description).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Update rewrites the mutable fields of a course.  The owner (user_id) is
// immutable and deliberately absent from the SET list.  It returns
// ErrCourseNotFound when no row is affected.
func (r *CourseRepo) Update(ctx context.Context, c *model.Course) error {
	const q = `UPDATE courses
	           SET title = ?, description = ?, estimated_time = ?, materials_needed = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		c.Title, c.Description, nullable(c.EstimatedTime), nullable(c.MaterialsNeeded), c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCourseNotFound
	}
	return nil
}

// Delete removes a course by id.  The delete is hard; there is no
// tombstone.  Returns ErrCourseNotFound when no row is affected.
func (r *CourseRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM courses WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCourseNotFound
	}
	return nil
}

// nullable maps an empty string to NULL for optional columns.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
