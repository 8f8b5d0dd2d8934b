package handlers

import (
	"time"

	"github.com/deboeng/careers-backend/internal/dto"
	"github.com/deboeng/careers-backend/internal/principal"
	"github.com/deboeng/careers-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	admin        *services.AdminService
	applications *services.ApplicationService
	dashboard    *services.DashboardService
}

func NewAdminHandler(admin *services.AdminService, applications *services.ApplicationService, dashboard *services.DashboardService) *AdminHandler {
	return &AdminHandler{admin: admin, applications: applications, dashboard: dashboard}
}

func (h *AdminHandler) ListApplications(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	filters := dto.AdminApplicationFilters{
		Status:         c.Query("status"),
		DeveloperLevel: c.Query("developer_level"),
		Page:           c.QueryInt("page", 1),
		Limit:          c.QueryInt("limit", 10),
	}
	if raw := c.Query("job_id"); raw != "" {
		jobID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid job ID"))
		}
		filters.JobPostingID = &jobID
	}
	if raw := c.Query("start_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid start_date, expected YYYY-MM-DD"))
		}
		filters.StartDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid end_date, expected YYYY-MM-DD"))
		}
		filters.EndDate = &t
	}

	apps, pagination, err := h.applications.ListAll(p, &filters)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("Applications retrieved successfully", fiber.Map{
		"applications": apps,
		"pagination":   pagination,
	}))
}

func (h *AdminHandler) ListJobApplications(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid job ID"))
	}

	filters := dto.ApplicationFilters{
		Status: c.Query("status"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
	}

	apps, pagination, err := h.applications.ListForJob(p, jobID, &filters)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("Applications retrieved successfully", fiber.Map{
		"applications": apps,
		"pagination":   pagination,
	}))
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	filters := dto.UserFilters{
		Role:           c.Query("role"),
		DeveloperLevel: c.Query("developer_level"),
		Search:         c.Query("search"),
		Page:           c.QueryInt("page", 1),
		Limit:          c.QueryInt("limit", 10),
	}

	users, pagination, err := h.admin.ListUsers(p, &filters)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("Users retrieved successfully", fiber.Map{
		"users":      users,
		"pagination": pagination,
	}))
}

func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid user ID"))
	}

	detail, err := h.admin.GetUser(p, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("User retrieved successfully", detail))
}

func (h *AdminHandler) SetUserRole(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid user ID"))
	}

	var req dto.SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Role is required"))
	}

	if err := h.admin.SetUserRole(p, id, req.Role); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("User role updated to "+req.Role+" successfully", fiber.Map{
		"userId":  id,
		"newRole": req.Role,
	}))
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid user ID"))
	}

	if err := h.admin.DeleteUser(p, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("User deleted successfully", fiber.Map{"deletedUserId": id}))
}

func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	stats, err := h.dashboard.Stats(p)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("Dashboard stats retrieved successfully", stats))
}
