package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docgen-server/internal/models"
)

// --- Refinement ---

func (h *APIHandler) refineSection(c *gin.Context) {
	h.refineUnit(c, models.UnitSection, "section_id")
}

func (h *APIHandler) refineSlide(c *gin.Context) {
	h.refineUnit(c, models.UnitSlide, "slide_id")
}

func (h *APIHandler) refineUnit(c *gin.Context, unitType models.ContentUnitType, param string) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	unitID, ok := pathUUID(c, param)
	if !ok {
		return
	}

	var req refineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	result, err := h.contentService.RefineUnit(c.Request.Context(), unitType, unitID, userID, req.Prompt)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	refinementsTotal.Inc()
	if result.Section != nil {
		c.JSON(http.StatusOK, result.Section)
		return
	}
	c.JSON(http.StatusOK, result.Slide)
}

func (h *APIHandler) sectionRefinementHistory(c *gin.Context) {
	h.refinementHistory(c, models.UnitSection, "section_id")
}

func (h *APIHandler) slideRefinementHistory(c *gin.Context) {
	h.refinementHistory(c, models.UnitSlide, "slide_id")
}

func (h *APIHandler) refinementHistory(c *gin.Context, unitType models.ContentUnitType, param string) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	unitID, ok := pathUUID(c, param)
	if !ok {
		return
	}

	history, err := h.contentService.GetRefinementHistory(c.Request.Context(), unitType, unitID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if history == nil {
		history = []models.Refinement{}
	}
	c.JSON(http.StatusOK, history)
}

// --- Feedback ---

func (h *APIHandler) sectionFeedback(c *gin.Context) {
	h.setFeedback(c, models.UnitSection, "section_id")
}

func (h *APIHandler) slideFeedback(c *gin.Context) {
	h.setFeedback(c, models.UnitSlide, "slide_id")
}

func (h *APIHandler) setFeedback(c *gin.Context, unitType models.ContentUnitType, param string) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	unitID, ok := pathUUID(c, param)
	if !ok {
		return
	}

	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	feedback, err := h.feedbackService.SetFeedback(c.Request.Context(), unitType, unitID, userID, req.Kind)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

func (h *APIHandler) listSectionFeedback(c *gin.Context) {
	h.listFeedback(c, models.UnitSection, "section_id")
}

func (h *APIHandler) listSlideFeedback(c *gin.Context) {
	h.listFeedback(c, models.UnitSlide, "slide_id")
}

func (h *APIHandler) listFeedback(c *gin.Context, unitType models.ContentUnitType, param string) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	unitID, ok := pathUUID(c, param)
	if !ok {
		return
	}

	feedback, err := h.feedbackService.ListFeedback(c.Request.Context(), unitType, unitID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if feedback == nil {
		feedback = []models.Feedback{}
	}
	c.JSON(http.StatusOK, feedback)
}

// --- Comments ---

func (h *APIHandler) addSectionComment(c *gin.Context) {
	h.addComment(c, models.UnitSection, "section_id")
}

func (h *APIHandler) addSlideComment(c *gin.Context) {
	h.addComment(c, models.UnitSlide, "slide_id")
}

func (h *APIHandler) addComment(c *gin.Context, unitType models.ContentUnitType, param string) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	unitID, ok := pathUUID(c, param)
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), unitType, unitID, userID, req.Text)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *APIHandler) listSectionComments(c *gin.Context) {
	h.listComments(c, models.UnitSection, "section_id")
}

func (h *APIHandler) listSlideComments(c *gin.Context) {
	h.listComments(c, models.UnitSlide, "slide_id")
}

func (h *APIHandler) listComments(c *gin.Context, unitType models.ContentUnitType, param string) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	unitID, ok := pathUUID(c, param)
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), unitType, unitID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	c.JSON(http.StatusOK, comments)
}

func (h *APIHandler) updateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	commentID, ok := pathUUID(c, "comment_id")
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), commentID, userID, req.Text)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *APIHandler) deleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	commentID, ok := pathUUID(c, "comment_id")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Comment deleted successfully"})
}
