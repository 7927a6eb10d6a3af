package http

import (
	"errors"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/randomtoy/cardstats-go/internal/domain"
)

const (
	streamReadLimit   = 4096
	streamIdleTimeout = 5 * time.Minute
	streamWriteWait   = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// Stream runs one session over a WebSocket. The client sends ActionRequest
// frames; the server answers each with the new page, and when an action lands
// on the loading page it pushes the loading page first and the results page
// once the delay has passed.
func (h *Handler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	view, err := h.svc.View(ctx, id)
	if err != nil {
		return h.mapError(c, err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.Warn("stream upgrade failed", "session_id", id, "error", err)
		return nil
	}
	defer conn.Close()

	conn.SetReadLimit(streamReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(streamIdleTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamIdleTimeout))
	})

	reqID := requestID(c)
	send := func(v any) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := conn.WriteJSON(v); err != nil {
			h.logger.Debug("stream write failed", "session_id", id, "error", err)
			return false
		}
		return true
	}

	if !send(h.toResponse(view, reqID)) {
		return nil
	}

	for {
		var req ActionRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("stream read failed", "session_id", id, "error", err)
			}
			return nil
		}
		_ = conn.SetReadDeadline(time.Now().Add(streamIdleTimeout))

		view, err := h.apply(ctx, id, req)
		if err != nil {
			if !h.sendError(send, id, err) {
				return nil
			}
			continue
		}
		if !send(h.toResponse(view, reqID)) {
			return nil
		}

		if view.Page != domain.PageLoading {
			continue
		}
		view, err = h.svc.Settle(ctx, id)
		if err != nil {
			if !h.sendError(send, id, err) {
				return nil
			}
			continue
		}
		if !send(h.toResponse(view, reqID)) {
			return nil
		}
	}
}

// sendError reports err to the client. It returns false when the stream
// should end.
func (h *Handler) sendError(send func(any) bool, id string, err error) bool {
	status, msg := classify(err)
	if status >= 500 {
		h.logger.Error("stream action failed", "session_id", id, "error", err)
	}
	if !send(ErrorResponse{Error: msg}) {
		return false
	}
	return !errors.Is(err, domain.ErrSessionNotFound)
}
