package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-catalog/internal/auth"
	"github.com/iliyamo/course-catalog/internal/httperr"
	"github.com/iliyamo/course-catalog/internal/model"
	"github.com/iliyamo/course-catalog/internal/repository"
	"github.com/iliyamo/course-catalog/internal/validate"
)

// UserHandler bundles the dependencies of the user endpoints.
type UserHandler struct {
	Users      UserStore
	Auth       *auth.Authenticator
	BcryptCost int
}

// NewUserHandler constructs a UserHandler and panics on nil dependencies.
func NewUserHandler(users UserStore, authn *auth.Authenticator, bcryptCost int) *UserHandler {
	if users == nil || authn == nil {
		panic("nil dependency passed to NewUserHandler")
	}
	return &UserHandler{Users: users, Auth: authn, BcryptCost: bcryptCost}
}

type createUserReq struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

var userRules = []validate.Rule{
	{Field: "firstName", Checks: []validate.Check{validate.Required("firstName")}},
	{Field: "lastName", Checks: []validate.Check{validate.Required("lastName")}},
	{Field: "emailAddress", Checks: []validate.Check{validate.Required("emailAddress"), validate.Email()}},
	{Field: "password", Checks: []validate.Check{validate.Required("password"), validate.MinLength("password", 8)}},
}

// Create handles POST /api/users.  It validates the payload, hashes the
// password and inserts the user.  A taken email yields 409.  On success
// the response is 201 with Location "/" and an empty body.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest("invalid request body")
	}

	msgs := validate.Run(map[string]string{
		"firstName":    req.FirstName,
		"lastName":     req.LastName,
		"emailAddress": req.EmailAddress,
		"password":     req.Password,
	}, userRules)
	if len(msgs) > 0 {
		return httperr.Validation(msgs)
	}

	hash, err := auth.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		return httperr.Internal(err)
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	u := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		PasswordHash: hash,
	}
	if err := h.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return httperr.Conflict("There is a user associated to this email address!")
		}
		return httperr.Internal(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/")
	return c.NoContent(http.StatusCreated)
}

// Me handles GET /api/users.  It returns the authenticated user's public
// profile.  The password hash is never part of the response shape.
func (h *UserHandler) Me(c echo.Context) error {
	u, err := authenticate(c, h.Auth)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"username":  u.EmailAddress,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
	})
}
