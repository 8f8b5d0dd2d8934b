package handlers

import (
	"github.com/deboeng/careers-backend/internal/dto"
	"github.com/deboeng/careers-backend/internal/principal"
	"github.com/deboeng/careers-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	applications *services.ApplicationService
	reviews      *services.ReviewService
}

func NewApplicationHandler(applications *services.ApplicationService, reviews *services.ReviewService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, reviews: reviews}
}

func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Job posting ID is required"))
	}

	app, err := h.applications.Submit(p, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(dto.OK("Application submitted successfully", fiber.Map{"application": app}))
}

func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	filters := dto.ApplicationFilters{
		Status: c.Query("status"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
	}

	apps, pagination, err := h.applications.ListForUser(p, &filters)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("Applications retrieved successfully", fiber.Map{
		"applications": apps,
		"pagination":   pagination,
	}))
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid application ID"))
	}

	app, err := h.applications.Get(p, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("Application retrieved successfully", fiber.Map{"application": app}))
}

func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid application ID"))
	}

	if err := h.applications.Withdraw(p, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("Application withdrawn successfully", nil))
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid application ID"))
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Status is required"))
	}

	app, err := h.reviews.UpdateStatus(p, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("Application status updated successfully", fiber.Map{"application": app}))
}

func (h *ApplicationHandler) History(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid application ID"))
	}

	entries, err := h.reviews.History(p, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("Application history retrieved successfully", fiber.Map{"history": entries}))
}
