package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/course-catalog/internal/auth"
	"github.com/iliyamo/course-catalog/internal/config"
	"github.com/iliyamo/course-catalog/internal/httperr"
	"github.com/iliyamo/course-catalog/internal/middleware"
	"github.com/iliyamo/course-catalog/internal/model"
	"github.com/iliyamo/course-catalog/internal/queue"
	"github.com/iliyamo/course-catalog/internal/repository"
	"github.com/iliyamo/course-catalog/internal/validate"
)

// CourseHandler bundles the dependencies of the course endpoints.  Cache
// and Publish are optional: a nil Redis client disables invalidation, a
// nil Publish disables event emission.
type CourseHandler struct {
	Courses  CourseStore
	Auth     *auth.Authenticator
	Cache    *redis.Client
	CacheCfg config.CacheConfig
	Publish  func(ctx context.Context, ev queue.CourseEvent) error
}

// NewCourseHandler constructs a CourseHandler and panics on nil
// dependencies.  Cache and Publish stay optional.
func NewCourseHandler(courses CourseStore, authn *auth.Authenticator, cache *redis.Client, cacheCfg config.CacheConfig) *CourseHandler {
	if courses == nil || authn == nil {
		panic("nil dependency passed to NewCourseHandler")
	}
	return &CourseHandler{Courses: courses, Auth: authn, Cache: cache, CacheCfg: cacheCfg}
}

type courseReq struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
}

type ownerResp struct {
	ID           uint64 `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

type courseResp struct {
	ID              uint64     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	EstimatedTime   string     `json:"estimatedTime,omitempty"`
	MaterialsNeeded string     `json:"materialsNeeded,omitempty"`
	UserID          uint64     `json:"userId"`
	Owner           *ownerResp `json:"owner,omitempty"`
}

func toCourseResp(c *model.Course) courseResp {
	out := courseResp{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
	}
	if c.Owner != nil {
		out.Owner = &ownerResp{
			ID:           c.Owner.ID,
			FirstName:    c.Owner.FirstName,
			LastName:     c.Owner.LastName,
			EmailAddress: c.Owner.EmailAddress,
		}
	}
	return out
}

var courseRules = []validate.Rule{
	{Field: "title", Checks: []validate.Check{validate.Required("title")}},
	{Field: "description", Checks: []validate.Check{validate.Required("description")}},
}

// List handles GET /api/courses.  No authentication; owners are embedded
// with safe columns only.
func (h *CourseHandler) List(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()

	items, err := h.Courses.List(ctx)
	if err != nil {
		return httperr.Internal(err)
	}
	out := make([]courseResp, 0, len(items))
	for _, item := range items {
		out = append(out, toCourseResp(item))
	}
	return c.JSON(http.StatusOK, echo.Map{"courses": out})
}

// Get handles GET /api/courses/:id.
func (h *CourseHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	course, err := h.Courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return httperr.NotFound("Course not found")
		}
		return httperr.Internal(err)
	}
	return c.JSON(http.StatusOK, toCourseResp(course))
}

// Create handles POST /api/courses.  The authenticated user becomes the
// owner.  Creation is idempotent by content: an existing course with the
// same title and description yields 409 instead of a duplicate row.  The
// pre-insert check is best-effort; a concurrent duplicate that slips past
// it is caught only if the schema carries a unique key.
func (h *CourseHandler) Create(c echo.Context) error {
	var req courseReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest("invalid request body")
	}

	msgs := validate.Run(map[string]string{
		"title":       req.Title,
		"description": req.Description,
	}, courseRules)
	if len(msgs) > 0 {
		return httperr.Validation(msgs)
	}

	u, err := authenticate(c, h.Auth)
	if err != nil {
		return err
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	exists, err := h.Courses.ExistsByTitleDescription(ctx, req.Title, req.Description)
	if err != nil {
		return httperr.Internal(err)
	}
	if exists {
		return httperr.Conflict("A course with this title and description already exists")
	}

	course := &model.Course{
		UserID:          u.ID,
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	}
	if err := h.Courses.Create(ctx, course); err != nil {
		if errors.Is(err, repository.ErrDuplicateCourse) {
			return httperr.Conflict("A course with this title and description already exists")
		}
		return httperr.Internal(err)
	}

	h.afterMutation(queue.CourseEvent{
		Action:   queue.ActionCreated,
		CourseID: course.ID,
		Title:    course.Title,
		OwnerID:  course.UserID,
	})

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/courses/%d", course.ID))
	return c.NoContent(http.StatusCreated)
}

// Update handles PUT /api/courses/:id.  Only the owner may update, and
// ownership is decided by user id, never by email.
func (h *CourseHandler) Update(c echo.Context) error {
	var req courseReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest("invalid request body")
	}

	msgs := validate.Run(map[string]string{
		"title":       req.Title,
		"description": req.Description,
	}, courseRules)
	if len(msgs) > 0 {
		return httperr.Validation(msgs)
	}

	u, err := authenticate(c, h.Auth)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	course, err := h.Courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return httperr.NotFound("Course not found")
		}
		return httperr.Internal(err)
	}
	if course.UserID != u.ID {
		return httperr.Forbidden("You do not own this course")
	}

	course.Title = req.Title
	course.Description = req.Description
	course.EstimatedTime = req.EstimatedTime
	course.MaterialsNeeded = req.MaterialsNeeded
	if err := h.Courses.Update(ctx, course); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return httperr.NotFound("Course not found")
		}
		return httperr.Internal(err)
	}

	h.afterMutation(queue.CourseEvent{
		Action:   queue.ActionUpdated,
		CourseID: course.ID,
		Title:    course.Title,
		OwnerID:  course.UserID,
	})

	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/courses/:id.  The delete is hard.
func (h *CourseHandler) Delete(c echo.Context) error {
	u, err := authenticate(c, h.Auth)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	course, err := h.Courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return httperr.NotFound("Course not found")
		}
		return httperr.Internal(err)
	}
	if course.UserID != u.ID {
		return httperr.Forbidden("You do not own this course")
	}

	if err := h.Courses.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return httperr.NotFound("Course not found")
		}
		return httperr.Internal(err)
	}

	h.afterMutation(queue.CourseEvent{
		Action:   queue.ActionDeleted,
		CourseID: course.ID,
		Title:    course.Title,
		OwnerID:  course.UserID,
	})

	return c.NoContent(http.StatusNoContent)
}

// afterMutation invalidates the public course cache and emits the event.
// Both are best-effort side effects that never fail the request; the
// publisher logs its own errors.
func (h *CourseHandler) afterMutation(ev queue.CourseEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	middleware.InvalidateCache(ctx, h.Cache, h.CacheCfg.Prefix)

	if h.Publish != nil {
		ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
		_ = h.Publish(ctx, ev)
	}
}
