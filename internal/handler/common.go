// Package handler defines the HTTP handlers for the users and courses
// resources.  Mutating handlers step through validation, authentication,
// ownership check and persistence in that order, returning tagged httperr
// values that the error funnel serializes.
package handler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-catalog/internal/auth"
	"github.com/iliyamo/course-catalog/internal/httperr"
	"github.com/iliyamo/course-catalog/internal/model"
)

// dbTimeout bounds every store call made from a handler.
const dbTimeout = 5 * time.Second

// currentUserKey is the context key the authenticated user is bound
// under for the rest of the request.
const currentUserKey = "current_user"

// UserStore is the slice of the user repository the handlers need.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// CourseStore is the slice of the course repository the handlers need.
type CourseStore interface {
	Create(ctx context.Context, c *model.Course) error
	FindByID(ctx context.Context, id uint64) (*model.Course, error)
	List(ctx context.Context) ([]*model.Course, error)
	ExistsByTitleDescription(ctx context.Context, title, description string) (bool, error)
	Update(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, id uint64) error
}

// authenticate runs the shared Authenticator against the request and
// binds the resolved user to the request scope.  The failure reason is
// logged server-side only; every credential failure maps to the same
// generic 401 so callers cannot enumerate registered emails.  A failing
// user store is not a credential failure and propagates to the error
// funnel instead.
func authenticate(c echo.Context, a *auth.Authenticator) (*model.User, error) {
	if u, ok := c.Get(currentUserKey).(*model.User); ok && u != nil {
		return u, nil
	}
	u, err := a.Authenticate(c.Request().Context(), c.Request())
	if err != nil {
		if !auth.IsCredentialFailure(err) {
			return nil, fmt.Errorf("authenticate: %w", err)
		}
		log.Printf("auth: failure: %v", err)
		return nil, httperr.Unauthorized()
	}
	log.Printf("auth: success for username: %s", u.EmailAddress)
	c.Set(currentUserKey, u)
	return u, nil
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, httperr.BadRequest("invalid id")
	}
	return id, nil
}

// storeCtx derives the bounded context used for store calls.
func storeCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}
