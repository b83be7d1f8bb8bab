package recommender

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arshavi-03/Finergize-recommend/internal/recommend"
	"github.com/Arshavi-03/Finergize-recommend/internal/shared/server/middleware"
	"github.com/Arshavi-03/Finergize-recommend/internal/shared/server/respond"
	"github.com/Arshavi-03/Finergize-recommend/internal/survey"
)

// Handler wires HTTP handlers to the recommender service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommender routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/survey", h.getSurvey)
	rg.POST("/recommend", h.recommend)
	rg.GET("/features", h.getFeatures)
}

func (h *Handler) getSurvey(c *gin.Context) {
	ctx := survey.UserContext{
		Location:      c.DefaultQuery("location", "Delhi NCR"),
		AgeGroup:      c.DefaultQuery("age", "25-34"),
		Interest:      c.DefaultQuery("interest", "General"),
		LiteracyLevel: c.DefaultQuery("literacy_level", "moderate"),
	}

	respond.OK(c, gin.H{"survey": h.Svc.GenerateSurvey(ctx)})
}

type recommendRequest struct {
	Responses recommend.Responses `json:"responses"`
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Request body is required")
		return
	}
	if req.Responses == nil {
		respond.Error(c, http.StatusBadRequest, "Survey responses are required")
		return
	}

	result := h.Svc.Recommend(c.Request.Context(), middleware.RequestIDFromContext(c), req.Responses)
	respond.OK(c, gin.H{"recommendations": result})
}

func (h *Handler) getFeatures(c *gin.Context) {
	respond.OK(c, gin.H{"features": h.Svc.Features()})
}
