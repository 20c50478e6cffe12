package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/services"
)

type GuidelineHandler struct {
	guidelineService *services.GuidelineService
}

func NewGuidelineHandler(guidelineService *services.GuidelineService) *GuidelineHandler {
	return &GuidelineHandler{guidelineService: guidelineService}
}

// GetDraft returns the working guideline form
// @Summary Get the guideline draft
// @Description In edit mode this returns the selected match's guideline instead of the durable draft
// @Tags guidelines
// @Produce json
// @Success 200 {object} models.TournamentInfoFormData
// @Router /guidelines/draft [get]
func (h *GuidelineHandler) GetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, h.guidelineService.Draft())
}

// SaveDraft persists the in-progress form
// @Summary Save the guideline draft
// @Description Inert while a match is selected for editing
// @Tags guidelines
// @Accept json
// @Produce json
// @Param guideline body models.SaveGuidelineRequest true "Guideline form"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /guidelines/draft [put]
func (h *GuidelineHandler) SaveDraft(c *gin.Context) {
	var req models.SaveGuidelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.guidelineService.SaveDraft(req.Guideline); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "draft saved"})
}

// ResetDraft clears the durable draft slot
// @Summary Reset the guideline draft
// @Tags guidelines
// @Produce json
// @Success 200 {object} map[string]string
// @Router /guidelines/draft [delete]
func (h *GuidelineHandler) ResetDraft(c *gin.Context) {
	if err := h.guidelineService.ResetDraft(); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "draft cleared"})
}

// CopyFrom returns another match's guideline to seed a new form
// @Summary Copy a past guideline
// @Tags guidelines
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.TournamentInfoFormData
// @Failure 404 {object} map[string]string
// @Router /guidelines/copy/{id} [get]
func (h *GuidelineHandler) CopyFrom(c *gin.Context) {
	form, err := h.guidelineService.CopyFrom(c.Param("id"))
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, form)
}

// Preview renders the standalone HTML guideline document
// @Summary Preview a guideline
// @Description Appends the referenced match's bracket/league fixtures when match_id is set
// @Tags guidelines
// @Accept json
// @Produce html
// @Param guideline body models.PreviewGuidelineRequest true "Guideline form"
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} map[string]string
// @Router /guidelines/preview [post]
func (h *GuidelineHandler) Preview(c *gin.Context) {
	var req models.PreviewGuidelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.guidelineService.Preview(req.Guideline, req.MatchID)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

// Share posts a guideline digest into a chat thread
// @Summary Share a guideline in chat
// @Tags guidelines
// @Accept json
// @Produce json
// @Param share body models.ShareGuidelineRequest true "Share request"
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /guidelines/share [post]
func (h *GuidelineHandler) Share(c *gin.Context) {
	var req models.ShareGuidelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.guidelineService.Share(req)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}
