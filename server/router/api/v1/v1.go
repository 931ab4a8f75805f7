// Package v1 exposes the REST API. Handlers resolve the calling user,
// delegate to the domain services, and map coded errors to HTTP statuses.
package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/agendapilot/agendapilot/internal/profile"
	"github.com/agendapilot/agendapilot/plugin/ai"
	"github.com/agendapilot/agendapilot/plugin/chat"
	"github.com/agendapilot/agendapilot/plugin/docsource"
	apperrors "github.com/agendapilot/agendapilot/server/internal/errors"
	"github.com/agendapilot/agendapilot/server/middleware"
	"github.com/agendapilot/agendapilot/server/service/agenda"
	"github.com/agendapilot/agendapilot/server/service/agent"
	"github.com/agendapilot/agendapilot/server/service/knowledge"
	"github.com/agendapilot/agendapilot/server/service/meeting"
	"github.com/agendapilot/agendapilot/server/service/transcript"
	"github.com/agendapilot/agendapilot/store"
)

// userIDHeader identifies the calling user. There is no session layer; the
// deployment fronts the API with its own authentication proxy.
const userIDHeader = "X-User-ID"

const userIDContextKey = "user-id"

type APIV1Service struct {
	Profile *profile.Profile
	Store   *store.Store

	MeetingService    *meeting.Service
	TranscriptService *transcript.Service
	AgentService      *agent.Service
	KnowledgeService  *knowledge.Service
	AgendaService     *agenda.Service

	rateLimiter *middleware.RateLimiter
}

// NewAPIV1Service wires the domain services. The document source, chat
// client and generator come from the caller so the integrations stay
// swappable; chatClient may be nil.
func NewAPIV1Service(profile *profile.Profile, store *store.Store, source docsource.Source, chatClient chat.Client, generator ai.Generator) *APIV1Service {
	return &APIV1Service{
		Profile: profile,
		Store:   store,

		MeetingService:    meeting.NewService(store),
		TranscriptService: transcript.NewService(store, source),
		AgentService:      agent.NewService(store),
		KnowledgeService:  knowledge.NewService(store),
		AgendaService:     agenda.NewService(store, chatClient, generator),

		rateLimiter: middleware.NewRateLimiter(),
	}
}

// RegisterRoutes registers all v1 routes on the given Echo instance.
func (s *APIV1Service) RegisterRoutes(echoServer *echo.Echo) {
	g := echoServer.Group("/api/v1", s.resolveUser)

	g.POST("/calendar/sync", s.SyncCalendar, s.syncRateLimit)
	g.GET("/meetings", s.ListMeetings)
	g.GET("/meetings/:id", s.GetMeeting)
	g.POST("/meetings/:id/link", s.LinkMeetingAgent)
	g.POST("/meetings/:id/unlink", s.UnlinkMeetingAgent)

	g.POST("/transcripts/sync", s.SyncTranscripts, s.syncRateLimit)
	g.GET("/transcripts", s.ListTranscripts)
	g.GET("/transcripts/pending", s.ListPendingTranscripts)
	g.POST("/transcripts/:id/link", s.LinkTranscript)

	g.POST("/agents", s.CreateAgent)
	g.GET("/agents", s.ListAgents)
	g.GET("/agents/:id", s.GetAgent)
	g.PATCH("/agents/:id", s.UpdateAgent)
	g.DELETE("/agents/:id", s.DeleteAgent)

	g.POST("/agents/:id/knowledge", s.UploadKnowledge)
	g.GET("/agents/:id/knowledge", s.ListKnowledge)
	g.DELETE("/knowledge/:id", s.DeleteKnowledge)

	g.POST("/glossary", s.CreateGlossaryEntry)
	g.GET("/glossary", s.ListGlossaryEntries)
	g.DELETE("/glossary/:id", s.DeleteGlossaryEntry)

	g.POST("/agendas/generate", s.GenerateAgenda)
	g.GET("/agendas", s.ListAgendas)
}

// resolveUser reads the calling user id from the request header and stores
// it on the request context.
func (s *APIV1Service) resolveUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(userIDHeader)
		if raw == "" {
			return c.JSON(http.StatusUnauthorized, errorResponse{
				Code:    string(apperrors.ErrCodeInvalidArgument),
				Message: fmt.Sprintf("missing %s header", userIDHeader),
			})
		}
		userID, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || userID <= 0 {
			return c.JSON(http.StatusUnauthorized, errorResponse{
				Code:    string(apperrors.ErrCodeInvalidArgument),
				Message: fmt.Sprintf("invalid %s header", userIDHeader),
			})
		}
		c.Set(userIDContextKey, int32(userID))
		return next(c)
	}
}

// syncRateLimit throttles the sync endpoints per user.
func (s *APIV1Service) syncRateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := fmt.Sprintf("user:%d", s.userID(c))
		if !s.rateLimiter.Allow(key) {
			return c.JSON(http.StatusTooManyRequests, errorResponse{
				Code:    string(apperrors.ErrCodeRateLimited),
				Message: "too many sync requests, slow down",
			})
		}
		return next(c)
	}
}

func (s *APIV1Service) userID(c echo.Context) int32 {
	userID, _ := c.Get(userIDContextKey).(int32)
	return userID
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// replyError maps a coded error to its HTTP status. Unclassified errors
// report as internal without leaking the cause.
func replyError(c echo.Context, err error) error {
	code := apperrors.GetCodeFromError(err, apperrors.ErrCodeInternal)
	message := err.Error()

	var status int
	switch code {
	case apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeInvalidArgument:
		status = http.StatusBadRequest
	case apperrors.ErrCodeRateLimited:
		status = http.StatusTooManyRequests
	case apperrors.ErrCodeTransientSource, apperrors.ErrCodeLLMUnavailable, apperrors.ErrCodeChannelNotJoined:
		status = http.StatusBadGateway
	case apperrors.ErrCodeGenerationTimeout:
		status = http.StatusGatewayTimeout
	default:
		status = http.StatusInternalServerError
		message = "internal server error"
	}
	return c.JSON(status, errorResponse{Code: string(code), Message: message})
}

func pathID(c echo.Context) (int32, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, apperrors.InvalidArgument("invalid id in path")
	}
	return int32(id), nil
}
