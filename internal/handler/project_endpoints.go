package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"docgen-server/internal/models"
	"docgen-server/internal/service"
)

func (h *APIHandler) createProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}
	if msg, ok := validateProjectFields(req.Name, req.Topic); !ok {
		badRequest(c, msg)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), userID, strings.TrimSpace(req.Name), req.Type, strings.TrimSpace(req.Topic))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newProjectResponse(project))
}

func (h *APIHandler) listProjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	out := make([]projectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, newProjectResponse(&projects[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *APIHandler) getProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProjectResponse(project))
}

func (h *APIHandler) updateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}
	if msg, ok := validateProjectFields(req.Name, req.Topic); !ok {
		badRequest(c, msg)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, userID, strings.TrimSpace(req.Name), strings.TrimSpace(req.Topic))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProjectResponse(project))
}

func (h *APIHandler) deleteProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Project deleted successfully"})
}

func (h *APIHandler) saveConfiguration(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	var req configurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}
	kind, items, err := req.payload()
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	project, err := h.contentService.SaveConfiguration(c.Request.Context(), projectID, userID, kind, items)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProjectResponse(project))
}

func (h *APIHandler) generateContent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	outcome, err := h.contentService.GenerateContent(c.Request.Context(), projectID, userID)
	if err != nil {
		generationRunsTotal.WithLabelValues("failure").Inc()
		handleServiceError(c, err)
		return
	}

	generationRunsTotal.WithLabelValues(outcome.Status).Inc()
	c.JSON(http.StatusOK, outcome)
}

func (h *APIHandler) generateTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	items, err := h.contentService.GenerateTemplate(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, templateResponse{Items: items})
}

func (h *APIHandler) acceptTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	var req templateAcceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	project, err := h.contentService.AcceptTemplate(c.Request.Context(), projectID, userID, req.Items)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProjectResponse(project))
}

func (h *APIHandler) exportProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	// Render into memory first so a late failure cannot corrupt an already
	// started download.
	var body bytes.Buffer
	filename, contentType, err := h.exportService.ExportProject(c.Request.Context(), projectID, userID, c.Query("theme"), &body)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	format := "docx"
	if contentType == service.PptxContentType {
		format = "pptx"
	}
	exportsTotal.WithLabelValues(format).Inc()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, body.Bytes())
}

// validateProjectFields enforces the shared name and topic rules.
func validateProjectFields(name, topic string) (string, bool) {
	name = strings.TrimSpace(name)
	topic = strings.TrimSpace(topic)
	if name == "" {
		return "Project name must not be blank", false
	}
	if len(name) > maxProjectNameLength {
		return fmt.Sprintf("Project name must not exceed %d characters", maxProjectNameLength), false
	}
	if strings.ContainsAny(name, projectNameForbiddenChars) {
		return `Project name must not contain any of < > : " / \ | ? *`, false
	}
	if topic == "" {
		return "Project topic must not be blank", false
	}
	if len(topic) > maxTopicLength {
		return fmt.Sprintf("Project topic must not exceed %d characters", maxTopicLength), false
	}
	return "", true
}
