package handler

import (
	"log/slog"

	"envelope/config"
	"envelope/internal/delivery/api/middleware"
	"envelope/internal/delivery/api/response"
	domainerrors "envelope/internal/domain/errors"
	"envelope/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NoteHandlerParams holds dependencies for NoteHandler, injected by Fx.
type NoteHandlerParams struct {
	fx.In

	NoteUC usecase.NoteUsecase
	Config *config.Config
	Logger *slog.Logger
}

// NoteHandler holds dependencies for note-related handlers
type NoteHandler struct {
	noteUC     usecase.NoteUsecase
	pagination *config.PaginationConfig
	logger     *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler
func NewNoteHandler(params NoteHandlerParams) *NoteHandler {
	return &NoteHandler{
		noteUC:     params.NoteUC,
		pagination: params.Config.Pagination,
		logger:     params.Logger,
	}
}

// NoteRequest represents the request body for creating or replacing a note
type NoteRequest = usecase.NoteInput

// Request parsing failures are rendered in place with response.HandleAppError;
// use case errors go to the central error handler, which also logs 5xx.

// CreateNote handles note creation
func (h *NoteHandler) CreateNote(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	req, err := bindNote(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	note, err := h.noteUC.CreateNote(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}

	return response.Created(c, note)
}

// ListNotes returns one page of the caller's notes
func (h *NoteHandler) ListNotes(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	q, err := parsePageQuery(c, h.pagination)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.noteUC.ListNotes(c.Request().Context(), userID, q.offset(), q.PageSize)
	if err != nil {
		return err
	}

	return response.Paginated(c, page.Notes, response.NewPaginationInfo(q.Page, q.PageSize, page.Total))
}

// GetNote returns one of the caller's notes
func (h *NoteHandler) GetNote(c echo.Context) error {
	userID, noteID, err := noteTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	note, err := h.noteUC.GetNote(c.Request().Context(), userID, noteID)
	if err != nil {
		return err
	}

	return response.Success(c, note)
}

// UpdateNote replaces the writable fields of one of the caller's notes
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	userID, noteID, err := noteTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	req, err := bindNote(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	note, err := h.noteUC.UpdateNote(c.Request().Context(), userID, noteID, req)
	if err != nil {
		return err
	}

	return response.Success(c, note)
}

// DeleteNote removes one of the caller's notes
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	userID, noteID, err := noteTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.noteUC.DeleteNote(c.Request().Context(), userID, noteID); err != nil {
		return err
	}

	return response.SuccessMessage(c, "Note deleted")
}

// PublishNote queues a note event; delivery happens asynchronously
func (h *NoteHandler) PublishNote(c echo.Context) error {
	userID, noteID, err := noteTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.noteUC.PublishNote(c.Request().Context(), userID, noteID); err != nil {
		return err
	}

	return response.Accepted(c, "Note queued for publishing")
}

// Stats returns service-wide note counts
func (h *NoteHandler) Stats(c echo.Context) error {
	stats, err := h.noteUC.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, stats)
}

func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

func noteTarget(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := currentUser(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.NewParamError("id", "id must be a valid UUID")
	}

	return userID, noteID, nil
}

func bindNote(c echo.Context) (*NoteRequest, error) {
	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrBadRequest.WithMessage("Malformed request body").WithDetails(err.Error())
	}

	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &req, nil
}
