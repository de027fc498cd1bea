package handler

import (
	"github.com/gin-gonic/gin"

	"docgen-server/internal/config"
	"docgen-server/internal/service"
)

// APIHandler owns the HTTP surface of the server.
type APIHandler struct {
	authService     service.AuthService
	projectService  service.ProjectService
	contentService  service.ContentService
	commentService  service.CommentService
	feedbackService service.FeedbackService
	exportService   service.ExportService
	cfg             *config.Config
}

func NewAPIHandler(
	authService service.AuthService,
	projectService service.ProjectService,
	contentService service.ContentService,
	commentService service.CommentService,
	feedbackService service.FeedbackService,
	exportService service.ExportService,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		authService:     authService,
		projectService:  projectService,
		contentService:  contentService,
		commentService:  commentService,
		feedbackService: feedbackService,
		exportService:   exportService,
		cfg:             cfg,
	}
}

// RegisterRoutes wires all endpoints onto the router. The rate limiter is
// applied to the unauthenticated auth endpoints only.
func (h *APIHandler) RegisterRoutes(router *gin.Engine, rateLimit gin.HandlerFunc) {
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", rateLimit, h.register)
		authGroup.POST("/login", rateLimit, h.login)
		authGroup.POST("/logout", h.AuthMiddleware(), h.logout)
		authGroup.GET("/me", h.AuthMiddleware(), h.getMe)
	}

	api := router.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		projects := api.Group("/projects")
		{
			projects.POST("", h.createProject)
			projects.GET("", h.listProjects)
			projects.GET("/:project_id", h.getProject)
			projects.PUT("/:project_id", h.updateProject)
			projects.DELETE("/:project_id", h.deleteProject)
			projects.PUT("/:project_id/configuration", h.saveConfiguration)
			projects.POST("/:project_id/generate", h.generateContent)
			projects.POST("/:project_id/generate-template", h.generateTemplate)
			projects.POST("/:project_id/accept-template", h.acceptTemplate)
			projects.GET("/:project_id/export", h.exportProject)
		}

		sections := api.Group("/sections")
		{
			sections.POST("/:section_id/refine", h.refineSection)
			sections.GET("/:section_id/refinement-history", h.sectionRefinementHistory)
			sections.POST("/:section_id/feedback", h.sectionFeedback)
			sections.GET("/:section_id/feedback", h.listSectionFeedback)
			sections.POST("/:section_id/comments", h.addSectionComment)
			sections.GET("/:section_id/comments", h.listSectionComments)
		}

		slides := api.Group("/slides")
		{
			slides.POST("/:slide_id/refine", h.refineSlide)
			slides.GET("/:slide_id/refinement-history", h.slideRefinementHistory)
			slides.POST("/:slide_id/feedback", h.slideFeedback)
			slides.GET("/:slide_id/feedback", h.listSlideFeedback)
			slides.POST("/:slide_id/comments", h.addSlideComment)
			slides.GET("/:slide_id/comments", h.listSlideComments)
		}

		comments := api.Group("/comments")
		{
			comments.PUT("/:comment_id", h.updateComment)
			comments.DELETE("/:comment_id", h.deleteComment)
		}
	}
}
