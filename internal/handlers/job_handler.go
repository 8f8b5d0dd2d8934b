package handlers

import (
	"github.com/deboeng/careers-backend/internal/dto"
	"github.com/deboeng/careers-backend/internal/principal"
	"github.com/deboeng/careers-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type JobHandler struct {
	jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	filters := dto.JobFilters{
		OnlyOpen:        c.QueryBool("open", true),
		JobType:         c.Query("job_type"),
		ExperienceLevel: c.Query("experience_level"),
		Page:            c.QueryInt("page", 1),
		Limit:           c.QueryInt("limit", 10),
	}

	jobs, pagination, err := h.jobs.List(&filters)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("Jobs retrieved successfully", fiber.Map{
		"jobs":       jobs,
		"pagination": pagination,
	}))
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid job ID"))
	}

	job, err := h.jobs.Get(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("Job retrieved successfully", fiber.Map{"job": job}))
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Title, description, experience level, and job type are required"))
	}

	job, err := h.jobs.Create(p, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK("Job created successfully", fiber.Map{"job": job}))
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	p, ok := principal.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid job ID"))
	}

	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	job, err := h.jobs.Update(p, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK("Job updated successfully", fiber.Map{"job": job}))
}
