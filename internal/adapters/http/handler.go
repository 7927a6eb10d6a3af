package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/message"

	"github.com/randomtoy/cardstats-go/internal/app"
	"github.com/randomtoy/cardstats-go/internal/domain"
)

var errUnknownAction = errors.New("unknown action type")

type Handler struct {
	svc     *app.CardStatsService
	printer *message.Printer
	logger  *slog.Logger
}

// NewHandler formats numbers in headlines and chart labels with printer.
func NewHandler(svc *app.CardStatsService, printer *message.Printer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, printer: printer, logger: logger}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	v1 := e.Group("/v1")
	v1.GET("/stacks", h.ListStacks)
	v1.POST("/sessions", h.StartSession)
	v1.GET("/sessions/:id", h.GetSession)
	v1.POST("/sessions/:id/actions", h.PostAction)
	v1.DELETE("/sessions/:id", h.EndSession)
	v1.GET("/sessions/:id/stream", h.Stream)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListStacks(c echo.Context) error {
	stacks, err := h.svc.Stacks(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}
	resp := StacksResponse{Stacks: make([]StackResponse, len(stacks))}
	for i, st := range stacks {
		resp.Stacks[i] = StackResponse{ID: st.ID, Name: st.Name}
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) StartSession(c echo.Context) error {
	var req StartSessionRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		}
	}

	view, err := h.svc.StartSession(c.Request().Context(), req.Stack)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusCreated, h.toResponse(view, requestID(c)))
}

func (h *Handler) GetSession(c echo.Context) error {
	view, err := h.svc.View(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, h.toResponse(view, requestID(c)))
}

// PostAction applies one action. An action that lands on the loading page
// is held until the page settles, so the response is the results page.
func (h *Handler) PostAction(c echo.Context) error {
	var req ActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	ctx := c.Request().Context()
	id := c.Param("id")

	view, err := h.apply(ctx, id, req)
	if err != nil {
		return h.mapError(c, err)
	}
	if view.Page == domain.PageLoading {
		view, err = h.svc.Settle(ctx, id)
		if err != nil {
			return h.mapError(c, err)
		}
	}
	return c.JSON(http.StatusOK, h.toResponse(view, requestID(c)))
}

func (h *Handler) EndSession(c echo.Context) error {
	if err := h.svc.EndSession(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) apply(ctx context.Context, id string, req ActionRequest) (app.PageView, error) {
	typ, ok := domain.ParseEventType(req.Type)
	// loaded is driven by the server's own delay, never by clients.
	if !ok || typ == domain.EventLoaded {
		return app.PageView{}, fmt.Errorf("%w: %q", errUnknownAction, req.Type)
	}
	return h.svc.Dispatch(ctx, id, domain.Event{Type: typ, Value: req.Value})
}

func requestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	return id
}

// classify maps an error to its status code and client-facing message.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrStackNotFound):
		return http.StatusNotFound, unwrapSentinel(err)
	case errors.Is(err, errUnknownAction), errors.Is(err, domain.ErrInvalidSelection):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrCardNotInStack):
		return http.StatusInternalServerError, "invalid card selection"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "request cancelled"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func unwrapSentinel(err error) string {
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.ErrSessionNotFound.Error()
	}
	return domain.ErrStackNotFound.Error()
}

func (h *Handler) mapError(c echo.Context, err error) error {
	status, msg := classify(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "request_id", requestID(c), "status", status, "error", err)
	}
	return c.JSON(status, ErrorResponse{Error: msg})
}
