package http

import (
	"errors"
	"mime/multipart"

	authhttp "givehub-admin/internal/auth/adapter/http"
	authModel "givehub-admin/internal/auth/domain/model"
	"givehub-admin/internal/dashboard/domain/model"
	"givehub-admin/internal/dashboard/usecase"
	apperrors "givehub-admin/internal/shared/errors"
	"givehub-admin/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// DashboardHTTPHandler exposes the dashboard operations over HTTP. Every
// route sits behind the session middleware; admin-only routes additionally
// require the Admin role.
type DashboardHTTPHandler struct {
	usecase usecase.DashboardUsecaseInterface
	log     logger.Logger
}

// NewDashboardHTTPHandler creates a new dashboard HTTP handler
func NewDashboardHTTPHandler(uc usecase.DashboardUsecaseInterface, log logger.Logger) *DashboardHTTPHandler {
	return &DashboardHTTPHandler{
		usecase: uc,
		log:     log.WithComponent("dashboard_http"),
	}
}

// SetupDashboardRoutes sets up dashboard routes with middleware
func (h *DashboardHTTPHandler) SetupDashboardRoutes(router fiber.Router, middleware *authhttp.SessionMiddleware) {
	protected := router.Group("/", middleware.RequireSession())

	protected.Get("/dashboard/projects", h.ProjectOverview)
	protected.Get("/categories", h.ListCategories)

	protected.Get("/projects", h.ListProjects)
	protected.Post("/projects", h.CreateProject)
	protected.Get("/projects/:projectId", h.GetProject)
	protected.Put("/projects/:projectId", h.UpdateProject)
	protected.Delete("/projects/:projectId", h.DeleteProject)
	protected.Post("/projects/:projectId/media", h.AttachProjectMedia)
	protected.Delete("/projects/:projectId/media/:mediaId", h.RemoveProjectMedia)

	protected.Put("/profile", h.UpdateProfile)
	protected.Get("/bank-details", h.GetBankDetails)
	protected.Put("/bank-details", h.SaveBankDetails)

	admin := router.Group("/", middleware.RequireRole(authModel.RoleAdmin))
	admin.Patch("/projects/:projectId/approval", h.SetProjectApproval)
	admin.Get("/users", h.ListUsers)
	admin.Patch("/users/:userId/role", h.ChangeUserRole)
	admin.Get("/audit", h.ListAuditEvents)
}

// ProjectOverview returns all projects across every category, newest first
func (h *DashboardHTTPHandler) ProjectOverview(c *fiber.Ctx) error {
	projects, err := h.usecase.ProjectOverview(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"projects": projects,
		"total":    len(projects),
	})
}

// ListCategories returns the platform's project categories
func (h *DashboardHTTPHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.usecase.ListCategories(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"categories": categories,
	})
}

// ListProjects returns projects, optionally scoped to one category via the
// categoryId query parameter
func (h *DashboardHTTPHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.usecase.ListProjects(c.UserContext(), c.Query("categoryId"))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"projects": projects,
	})
}

// GetProject returns a single project by id
func (h *DashboardHTTPHandler) GetProject(c *fiber.Ctx) error {
	project, err := h.usecase.GetProject(c.UserContext(), c.Params("projectId"))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(project)
}

// CreateProject creates a new project on the platform
func (h *DashboardHTTPHandler) CreateProject(c *fiber.Ctx) error {
	var req model.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	project, err := h.usecase.CreateProject(c.UserContext(), req)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject updates an existing project on the platform
func (h *DashboardHTTPHandler) UpdateProject(c *fiber.Ctx) error {
	var req model.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	project, err := h.usecase.UpdateProject(c.UserContext(), c.Params("projectId"), req)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(project)
}

// DeleteProject removes a project from the platform
func (h *DashboardHTTPHandler) DeleteProject(c *fiber.Ctx) error {
	if err := h.usecase.DeleteProject(c.UserContext(), c.Params("projectId")); err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Project deleted successfully",
	})
}

// SetProjectApproval flips a project's approval flag
func (h *DashboardHTTPHandler) SetProjectApproval(c *fiber.Ctx) error {
	var req struct {
		IsApproved *bool `json:"isApproved"`
	}
	if err := c.BodyParser(&req); err != nil || req.IsApproved == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Request body must carry an isApproved flag",
		})
	}

	if err := h.usecase.SetProjectApproval(c.UserContext(), c.Params("projectId"), *req.IsApproved); err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Project approval updated",
		"isApproved": *req.IsApproved,
	})
}

// AttachProjectMedia uploads one or more media files to a project. The
// request is multipart; every file rides in the "files" field.
func (h *DashboardHTTPHandler) AttachProjectMedia(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Request must be multipart form data",
		})
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files to attach",
		})
	}

	files, closeFiles, err := openUploads(headers)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not read the uploaded files",
		})
	}
	defer closeFiles()

	project, err := h.usecase.AttachProjectMedia(c.UserContext(), c.Params("projectId"), files)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(project)
}

// RemoveProjectMedia detaches one media item from a project
func (h *DashboardHTTPHandler) RemoveProjectMedia(c *fiber.Ctx) error {
	if err := h.usecase.RemoveProjectMedia(c.UserContext(), c.Params("projectId"), c.Params("mediaId")); err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Media removed successfully",
	})
}

// ListUsers returns the platform's user directory
func (h *DashboardHTTPHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.usecase.ListUsers(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": len(users),
	})
}

// ChangeUserRole assigns a new role to a platform user
func (h *DashboardHTTPHandler) ChangeUserRole(c *fiber.Ctx) error {
	var req model.RoleChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.usecase.ChangeUserRole(c.UserContext(), c.Params("userId"), req.Role); err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Role updated successfully",
	})
}

// UpdateProfile updates the signed-in user's own profile. Text fields come
// from the body (JSON or form); the optional avatar rides as a multipart
// file part named "avatar".
func (h *DashboardHTTPHandler) UpdateProfile(c *fiber.Ctx) error {
	var req model.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if header, err := c.FormFile("avatar"); err == nil && header != nil {
		files, closeFiles, err := openUploads([]*multipart.FileHeader{header})
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Could not read the uploaded avatar",
			})
		}
		defer closeFiles()
		req.Avatar = &files[0]
	}

	user, err := h.usecase.UpdateProfile(c.UserContext(), req)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}

// GetBankDetails returns the signed-in user's stored bank details. A user
// with no stored record gets an empty one, never a 404.
func (h *DashboardHTTPHandler) GetBankDetails(c *fiber.Ctx) error {
	details, err := h.usecase.GetBankDetails(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(details)
}

// SaveBankDetails overwrites the signed-in user's stored bank details
func (h *DashboardHTTPHandler) SaveBankDetails(c *fiber.Ctx) error {
	var details model.BankDetails
	if err := c.BodyParser(&details); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.usecase.SaveBankDetails(c.UserContext(), details); err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Bank details saved successfully",
	})
}

// ListAuditEvents returns the most recent dashboard audit entries
func (h *DashboardHTTPHandler) ListAuditEvents(c *fiber.Ctx) error {
	events, err := h.usecase.ListAuditEvents(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"events": events,
		"total":  len(events),
	})
}

// respondError translates a usecase failure into an HTTP response. Platform
// API errors keep the status and message the normalization layer assigned;
// everything else maps by error category.
func (h *DashboardHTTPHandler) respondError(c *fiber.Ctx, err error) error {
	if apiErr, ok := apperrors.AsAPIError(err); ok {
		return c.Status(apiErr.HTTPStatus()).JSON(fiber.Map{
			"error": apiErr.UserMessage(),
		})
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode != 0 {
		return c.Status(appErr.HTTPCode).JSON(fiber.Map{
			"error": appErr.Message,
		})
	}

	switch {
	case apperrors.IsAuthentication(err):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	case apperrors.IsAuthorization(err):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient permissions",
		})
	case apperrors.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, apperrors.ErrUnknownRole), apperrors.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		h.log.WithContext(c.UserContext()).Errorf("Dashboard request failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Something went wrong. Please try again.",
		})
	}
}

// openUploads opens every multipart file header for streaming. The returned
// cleanup closes whatever was opened, including on partial failure.
func openUploads(headers []*multipart.FileHeader) ([]model.FileUpload, func(), error) {
	files := make([]model.FileUpload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	closeFiles := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeFiles()
			return nil, func() {}, err
		}
		opened = append(opened, file)
		files = append(files, model.FileUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		})
	}

	return files, closeFiles, nil
}
