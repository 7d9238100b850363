package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const noEventsSentinel = "No economic events found for today."

type CalendarService interface {
	GetCalendar(ctx context.Context, now time.Time) (string, error)
}

type Relay interface {
	Deliver(ctx context.Context, text string) error
}

type CalendarHandler struct {
	service CalendarService
	relay   Relay // nil when no relay is configured
	sources int
	now     func() time.Time
}

func NewCalendarHandler(service CalendarService, relay Relay, sources int) *CalendarHandler {
	return &CalendarHandler{
		service: service,
		relay:   relay,
		sources: sources,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (h *CalendarHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Status:  "success",
		Message: "Economic Calendar Service is running",
	})
}

func (h *CalendarHandler) GetTest(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Status:  "success",
		Message: "Test endpoint working",
	})
}

func (h *CalendarHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"sources": h.sources,
		"relay":   h.relay != nil,
	})
}

func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	text, err := h.service.GetCalendar(c.Request.Context(), h.now())
	if err != nil {
		slog.Error("error building calendar", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Detail: err.Error(),
			Type:   "pipeline_error",
		})
		return
	}

	if text == "" {
		text = noEventsSentinel
	}

	c.JSON(http.StatusOK, CalendarResponse{
		Status: "success",
		Events: []string{text},
	})
}

func (h *CalendarHandler) PostNotify(c *gin.Context) {
	if h.relay == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Detail: "no relay configured",
			Type:   "relay_unconfigured",
		})
		return
	}

	text, err := h.service.GetCalendar(c.Request.Context(), h.now())
	if err != nil {
		slog.Error("error building calendar", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Detail: err.Error(),
			Type:   "pipeline_error",
		})
		return
	}

	if text == "" {
		text = noEventsSentinel
	}

	// Delivery failure is reported, but the computed calendar stands.
	delivered := true
	if err := h.relay.Deliver(c.Request.Context(), text); err != nil {
		slog.Error("error delivering calendar", "error", err)
		delivered = false
	}

	c.JSON(http.StatusOK, NotifyResponse{
		Status:    "success",
		Delivered: delivered,
	})
}
