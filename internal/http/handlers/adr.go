package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adrforge/adrforge-backend/internal/http/response"
	"github.com/adrforge/adrforge-backend/internal/pkg/logger"
	"github.com/adrforge/adrforge-backend/internal/platform/apierr"
	"github.com/adrforge/adrforge-backend/internal/services"
)

type AdrHandler struct {
	log        *logger.Logger
	adrService services.AdrService
}

func NewAdrHandler(log *logger.Logger, adrService services.AdrService) *AdrHandler {
	return &AdrHandler{
		log:        log.With("handler", "AdrHandler"),
		adrService: adrService,
	}
}

type generateAdrRequest struct {
	Prompt     string `json:"prompt"`
	Model      string `json:"model"`
	TemplateID string `json:"templateId"`
}

type generateAdrResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type feedbackRequest struct {
	Feedback string `json:"feedback"`
	Model    string `json:"model"`
}

type feedbackResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	OriginalAdrID int64  `json:"originalAdrId"`
}

func (h *AdrHandler) Generate(c *gin.Context) {
	var req generateAdrRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, err)
		return
	}

	adr, err := h.adrService.Generate(c.Request.Context(), services.GenerateRequest{
		Prompt:     req.Prompt,
		Model:      req.Model,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		h.respondServiceError(c, "Generate", err)
		return
	}

	response.RespondOK(c, generateAdrResponse{
		ID:      adr.ID,
		Title:   adr.Title,
		Content: adr.Content,
	})
}

func (h *AdrHandler) List(c *gin.Context) {
	adrs, err := h.adrService.ListRoots(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "List", err)
		return
	}
	response.RespondOK(c, adrs)
}

func (h *AdrHandler) Get(c *gin.Context) {
	id, ok := h.adrID(c)
	if !ok {
		return
	}

	adr, err := h.adrService.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "Get", err)
		return
	}
	response.RespondOK(c, adr)
}

func (h *AdrHandler) ListRefinements(c *gin.Context) {
	id, ok := h.adrID(c)
	if !ok {
		return
	}

	adrs, err := h.adrService.ListRefinements(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "ListRefinements", err)
		return
	}
	response.RespondOK(c, adrs)
}

func (h *AdrHandler) Feedback(c *gin.Context) {
	id, ok := h.adrID(c)
	if !ok {
		return
	}

	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, err)
		return
	}

	adr, err := h.adrService.Refine(c.Request.Context(), services.FeedbackRequest{
		AdrID:    id,
		Feedback: req.Feedback,
		Model:    req.Model,
	})
	if err != nil {
		h.respondServiceError(c, "Feedback", err)
		return
	}

	response.RespondOK(c, feedbackResponse{
		ID:            adr.ID,
		Title:         adr.Title,
		Content:       adr.Content,
		OriginalAdrID: *adr.OriginalAdrID,
	})
}

func (h *AdrHandler) adrID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidRequest, errors.New("id must be numeric"))
		return 0, false
	}
	return id, true
}

func (h *AdrHandler) respondServiceError(c *gin.Context, op string, err error) {
	ae := apierr.From(err)
	if ae.Status >= 500 {
		h.log.Error(op+" failed", "error", err)
	}
	response.RespondError(c, ae.Status, ae.Code, ae)
}
