// Package http provides HTTP transport for the auth surface
package http

import (
	stdhttp "net/http"

	"timeclock/internal/modkit/httpkit"
	"timeclock/internal/platform/net/middleware"
	"timeclock/internal/platform/tokens"
	"timeclock/internal/services/api/auth/domain"
	rosterdom "timeclock/internal/services/roster/domain"
)

// Deps carries the collaborators the handlers need
type Deps struct {
	Accounts rosterdom.AccountsPort
	Codec    *tokens.Codec
	Auth     middleware.AuthPort
}

// Register mounts the account endpoints
// register and login stay public; the profile routes require a bearer token
func Register(r httpkit.Router, d Deps) {
	h := &handlers{accounts: d.Accounts, codec: d.Codec}

	httpkit.PostJSON[domain.RegisterInput](r, "/register", h.register)
	httpkit.PostJSON[domain.LoginInput](r, "/login", h.login)

	httpkit.Protected(r, d.Auth, func(pr httpkit.Router) {
		httpkit.Get(pr, "/me", h.me)
		httpkit.PatchJSON[domain.ProfilePatchInput](pr, "/me", h.patchMe)
	})
}

type handlers struct {
	accounts rosterdom.AccountsPort
	codec    *tokens.Codec
}

// swagger:route POST /auth/register Auth authRegister
// @Summary Create an employee account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.RegisterInput true "Account"
// @Success 201 {object} domain.UserDTO "created"
// @Failure 409 {object} httpkit.Envelope "email already registered"
// @Router /auth/register [post]
func (h *handlers) register(r *stdhttp.Request, in domain.RegisterInput) (any, error) {
	u, err := h.accounts.Register(r.Context(), in.NewUser())
	if err != nil {
		return nil, err
	}
	return httpkit.Created(domain.UserView(u)), nil
}

// swagger:route POST /auth/login Auth authLogin
// @Summary Exchange credentials for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.LoginInput true "Credentials"
// @Success 200 {object} domain.TokenResponse "ok"
// @Failure 401 {object} httpkit.Envelope "invalid credentials"
// @Router /auth/login [post]
func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) (any, error) {
	u, err := h.accounts.Authenticate(r.Context(), in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	tok, err := h.codec.Mint(u.UID, string(u.Role))
	if err != nil {
		return nil, err
	}
	return domain.TokenResponse{Token: tok, User: domain.UserView(u)}, nil
}

// swagger:route GET /auth/me Auth authMe
// @Summary Current caller profile
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.UserDTO "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	u, err := h.accounts.Get(r.Context(), httpkit.MustUser(r))
	if err != nil {
		return nil, err
	}
	return domain.UserView(u), nil
}

// swagger:route PATCH /auth/me Auth authPatchMe
// @Summary Update caller display fields
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.ProfilePatchInput true "Patch"
// @Success 200 {object} domain.UserDTO "ok"
// @Failure 400 {object} httpkit.Envelope "no fields to update"
// @Security BearerAuth
// @Router /auth/me [patch]
func (h *handlers) patchMe(r *stdhttp.Request, in domain.ProfilePatchInput) (any, error) {
	u, err := h.accounts.UpdateProfile(r.Context(), httpkit.MustUser(r), in.Patch())
	if err != nil {
		return nil, err
	}
	return domain.UserView(u), nil
}
