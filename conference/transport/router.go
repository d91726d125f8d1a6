package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/imtaco/xms-confctl/conference"
	"github.com/imtaco/xms-confctl/conference/control"
	"github.com/imtaco/xms-confctl/conference/session"
	"github.com/imtaco/xms-confctl/internal/log"
	"github.com/imtaco/xms-confctl/internal/validation"
)

// Queue is the part of the reactor the router needs.
type Queue interface {
	Enqueue(ctx context.Context, ev *conference.Event) error
	Submit(ctx context.Context, name string, action control.Action) error
}

type Router struct {
	queue  Queue
	engine *gin.Engine
	logger *log.Logger
}

func NewRouter(queue Queue, logger *log.Logger) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(otelgin.Middleware("xms-confctl"))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r := &Router{
		queue:  queue,
		engine: engine,
		logger: logger,
	}

	r.setupRoutes()
	return r
}

func (r *Router) Handler() http.Handler {
	return r.engine
}

func (r *Router) setupRoutes() {
	r.engine.GET("/conference", r.getConference)
	r.engine.POST("/conference/reset", r.resetConference)
	r.engine.POST("/events", r.injectEvent)
	r.engine.POST("/calls/:callId/dtmf", r.pressKey)

	r.engine.GET("/health", r.healthCheck)
}

func (r *Router) getConference(c *gin.Context) {
	var snap session.Snapshot
	err := r.queue.Submit(c.Request.Context(), "snapshot", func(_ context.Context, ctrl *session.Controller) error {
		snap = ctrl.Snapshot()
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to read conference", log.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (r *Router) resetConference(c *gin.Context) {
	err := r.queue.Submit(c.Request.Context(), "reset", func(ctx context.Context, ctrl *session.Controller) error {
		ctrl.Reset(ctx)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to reset conference", log.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	r.logger.Info("Conference reset by operator")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (r *Router) injectEvent(c *gin.Context) {
	var body InjectEventBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"details": validation.FormatValidationError(err),
		})
		return
	}

	r.enqueue(c, conference.NewEvent(body.Type, body.Data))
}

func (r *Router) pressKey(c *gin.Context) {
	var uri CallURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"details": validation.FormatValidationError(err),
		})
		return
	}

	var body KeypadBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"details": validation.FormatValidationError(err),
		})
		return
	}

	r.enqueue(c, conference.NewEvent(conference.EventDTMF, map[string]string{
		conference.FieldResourceID: uri.CallID,
		conference.FieldDigits:     body.Digits,
	}))
}

func (r *Router) enqueue(c *gin.Context, ev *conference.Event) {
	if err := r.queue.Enqueue(c.Request.Context(), ev); err != nil {
		r.logger.Error("Failed to queue event", log.EventType(ev.Type), log.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	r.logger.Debug("Event queued", log.EventType(ev.Type), log.CallID(ev.CallID()))
	c.JSON(http.StatusAccepted, gin.H{"success": true})
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}
