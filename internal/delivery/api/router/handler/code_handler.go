package handler

import (
	"envelope/config"
	"envelope/internal/delivery/api/response"
	"envelope/internal/domain/code"
	domainerrors "envelope/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CodeHandlerParams holds dependencies for CodeHandler, injected by Fx.
type CodeHandlerParams struct {
	fx.In

	Config *config.Config
}

// CodeHandler publishes the status-code table so clients can map codes to names
type CodeHandler struct {
	pagination *config.PaginationConfig
}

// NewCodeHandler is the constructor for CodeHandler
func NewCodeHandler(params CodeHandlerParams) *CodeHandler {
	return &CodeHandler{pagination: params.Config.Pagination}
}

// ListCodes returns one page of the code table, optionally filtered by group
func (h *CodeHandler) ListCodes(c echo.Context) error {
	q, err := parsePageQuery(c, h.pagination)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	defs := code.Definitions()
	if raw := c.QueryParam("group"); raw != "" {
		group, ok := code.ParseGroup(raw)
		if !ok {
			return domainerrors.NewParamError("group", "group must be one of [http success business]")
		}

		filtered := defs[:0]
		for _, def := range defs {
			if def.Group == group {
				filtered = append(filtered, def)
			}
		}
		defs = filtered
	}

	info := response.NewPaginationInfo(q.Page, q.PageSize, int64(len(defs)))

	return response.Paginated(c, response.Paginate(defs, info), info)
}

// GetCode returns the definition registered under :name
func (h *CodeHandler) GetCode(c echo.Context) error {
	def, ok := code.Describe(c.Param("name"))
	if !ok {
		return domainerrors.ErrResourceNotFound.WithMessage("Unknown status code name")
	}

	return response.Success(c, def)
}
