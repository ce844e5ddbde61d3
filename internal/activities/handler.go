package activities

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mergington/activities/internal/models"
	"github.com/mergington/activities/internal/observability"
	"github.com/mergington/activities/internal/roster"
	"github.com/mergington/activities/pkg/response"
)

// LandingPage is where GET / redirects.
const LandingPage = "/static/index.html"

// Handler handles activity HTTP endpoints.
type Handler struct {
	repo      *Repository
	publisher roster.Publisher
	logger    *zap.Logger
}

// NewHandler creates an activities handler. A nil publisher disables roster events.
func NewHandler(repo *Repository, publisher roster.Publisher, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if publisher == nil {
		publisher = roster.NopPublisher{}
	}
	return &Handler{repo: repo, publisher: publisher, logger: logger}
}

// Root handles GET /.
func (h *Handler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, LandingPage)
}

// List handles GET /activities. Returns activity name -> serialized activity.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list activities failed", zap.Error(err))
		response.Internal(c)
		return
	}
	out := make(map[string]models.ActivityView, len(list))
	for i := range list {
		out[list[i].Name] = list[i].View()
	}
	response.OK(c, out)
}

// Signup handles POST /activities/:name/signup?email=.
func (h *Handler) Signup(c *gin.Context) {
	name := c.Param("name")
	email, ok := emailParam(c)
	if !ok {
		return
	}

	err := h.repo.Signup(c.Request.Context(), name, email)
	switch {
	case errors.Is(err, ErrActivityNotFound):
		response.NotFound(c, "Activity not found")
		return
	case errors.Is(err, ErrAlreadySignedUp):
		response.BadRequest(c, "Student is already signed up")
		return
	case err != nil:
		h.logger.Error("signup failed", zap.Error(err), zap.String("activity", name))
		response.Internal(c)
		return
	}

	h.publish(c, roster.EventSignedUp, name, email)
	response.OKMessage(c, "Signed up "+email+" for "+name)
}

// Unregister handles DELETE /activities/:name/unregister?email=.
func (h *Handler) Unregister(c *gin.Context) {
	name := c.Param("name")
	email, ok := emailParam(c)
	if !ok {
		return
	}

	err := h.repo.Unregister(c.Request.Context(), name, email)
	switch {
	case errors.Is(err, ErrActivityNotFound):
		response.NotFound(c, "Activity not found")
		return
	case errors.Is(err, ErrNotSignedUp):
		response.BadRequest(c, "Student is not signed up for this activity")
		return
	case err != nil:
		h.logger.Error("unregister failed", zap.Error(err), zap.String("activity", name))
		response.Internal(c)
		return
	}

	h.publish(c, roster.EventUnregistered, name, email)
	response.OKMessage(c, "Unregistered "+email+" from "+name)
}

// publish runs after commit; a failed publish is logged and does not fail the request.
func (h *Handler) publish(c *gin.Context, event, activity, email string) {
	observability.RecordRosterChange(event)
	ev := roster.Event{Type: event, Activity: activity, Email: email, At: time.Now().UTC()}
	if err := h.publisher.Publish(c.Request.Context(), ev); err != nil {
		h.logger.Warn("publish roster event failed", zap.Error(err), zap.String("event", event), zap.String("activity", activity))
	}
}

func emailParam(c *gin.Context) (string, bool) {
	email := c.Query("email")
	if strings.TrimSpace(email) == "" {
		response.Unprocessable(c, "email query parameter is required")
		return "", false
	}
	return email, true
}
