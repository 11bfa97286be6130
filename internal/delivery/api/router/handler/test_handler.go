package handler

import (
	"time"

	"envelope/internal/delivery/api/middleware"
	"envelope/internal/delivery/api/response"
	"envelope/internal/domain/entity"
	"envelope/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	TokenSvc service.TokenService
}

// TestHandler handles endpoints that exercise the middleware chain in non-production setups
type TestHandler struct {
	tokenSvc service.TokenService
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{tokenSvc: params.TokenSvc}
}

// IssueTokenRequest names the identity to mint a token for
type IssueTokenRequest struct {
	UserID string   `json:"userId" validate:"required,uuid"`
	Roles  []string `json:"roles" validate:"dive,oneof=user admin"`
}

// IssuedToken is the body of a successful token request
type IssuedToken struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// IssueToken mints an access token for the supplied identity
func (h *TestHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Malformed request body")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	roles := entity.ParseRoles(req.Roles)
	if len(roles) == 0 {
		roles = entity.Roles{entity.RoleUser}
	}

	// validated above
	userID := uuid.MustParse(req.UserID)

	token, expiresAt, err := h.tokenSvc.GenerateAccessToken(userID, roles.Strings())
	if err != nil {
		return err
	}

	return response.Created(c, IssuedToken{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}

// Identity is the caller as seen by the auth middleware
type Identity struct {
	UserID uuid.UUID `json:"userId"`
	Roles  []string  `json:"roles"`
}

// WhoAmI echoes the authenticated caller
func (h *TestHandler) WhoAmI(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	roles, _ := middleware.GetRoles(c)

	return response.Success(c, Identity{UserID: userID, Roles: roles.Strings()})
}

// Panic fails hard so the recover path can be observed
func (h *TestHandler) Panic(_ echo.Context) error {
	panic("test panic")
}
