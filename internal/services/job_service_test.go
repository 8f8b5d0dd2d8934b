package services

import (
	"testing"
	"time"

	"github.com/deboeng/careers-backend/internal/dto"
	"github.com/deboeng/careers-backend/internal/models"
	"github.com/deboeng/careers-backend/internal/policy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	admin := seedUser(t, db, policy.RoleAdmin)
	applicant := seedUser(t, db, policy.RoleApplicant)

	deadline := time.Now().UTC().AddDate(0, 1, 0)
	job, err := svc.Create(asPrincipal(admin), &dto.CreateJobRequest{
		Title:               "Platform Engineer",
		Description:         "Own the deployment pipeline.",
		RequiredSkills:      "Go, Kubernetes",
		ExperienceLevel:     models.LevelSenior,
		JobType:             models.JobTypeFullTime,
		ApplicationDeadline: &deadline,
	})
	require.NoError(t, err)
	assert.True(t, job.IsActive, "new postings start active")
	require.NotNil(t, job.CreatedBy)
	assert.Equal(t, admin.ID, *job.CreatedBy)

	_, err = svc.Create(asPrincipal(applicant), &dto.CreateJobRequest{
		Title:           "X",
		Description:     "Y",
		ExperienceLevel: models.LevelJunior,
		JobType:         models.JobTypeFullTime,
	})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Create(asPrincipal(admin), &dto.CreateJobRequest{
		Title:           "X",
		Description:     "Y",
		ExperienceLevel: "Wizard",
		JobType:         models.JobTypeFullTime,
	})
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = svc.Create(asPrincipal(admin), &dto.CreateJobRequest{
		Title:           "X",
		Description:     "Y",
		ExperienceLevel: models.LevelJunior,
		JobType:         "Gig",
	})
	assert.ErrorIs(t, err, ErrInvalidJobType)
}

func TestListJobsOnlyOpen(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	open := seedJob(t, db)
	seedJob(t, db, func(j *models.JobPosting) { j.IsActive = false })
	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	seedJob(t, db, func(j *models.JobPosting) { j.ApplicationDeadline = &yesterday })
	today := time.Now().UTC()
	deadlineToday := seedJob(t, db, func(j *models.JobPosting) { j.ApplicationDeadline = &today })

	jobs, pg, err := svc.List(&dto.JobFilters{OnlyOpen: true})
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.EqualValues(t, 2, pg.Total)
	ids := map[uuid.UUID]bool{}
	for _, j := range jobs {
		ids[j.ID] = true
	}
	assert.True(t, ids[open.ID])
	assert.True(t, ids[deadlineToday.ID], "a posting stays listed through its deadline date")

	jobs, _, err = svc.List(&dto.JobFilters{OnlyOpen: false})
	require.NoError(t, err)
	assert.Len(t, jobs, 4)
}

func TestListJobsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	intern := seedJob(t, db, func(j *models.JobPosting) {
		j.JobType = models.JobTypeInternship
		j.ExperienceLevel = models.LevelBeginner
	})
	seedJob(t, db)

	jobs, _, err := svc.List(&dto.JobFilters{OnlyOpen: true, JobType: models.JobTypeInternship})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, intern.ID, jobs[0].ID)

	jobs, _, err = svc.List(&dto.JobFilters{OnlyOpen: true, ExperienceLevel: models.LevelBeginner})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, intern.ID, jobs[0].ID)
}

func TestGetJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	job := seedJob(t, db)
	got, err := svc.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.Title, got.Title)

	_, err = svc.Get(uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestUpdateJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	admin := seedUser(t, db, policy.RoleAdmin)
	applicant := seedUser(t, db, policy.RoleApplicant)
	job := seedJob(t, db)
	p := asPrincipal(admin)

	title := "Staff Engineer"
	inactive := false
	updated, err := svc.Update(p, job.ID, &dto.UpdateJobRequest{
		Title:    &title,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.Title)

	var stored models.JobPosting
	require.NoError(t, db.First(&stored, "id = ?", job.ID).Error)
	assert.Equal(t, "Staff Engineer", stored.Title)
	assert.False(t, stored.IsActive)
	assert.Equal(t, job.Description, stored.Description, "untouched fields keep their values")

	badLevel := "Wizard"
	_, err = svc.Update(p, job.ID, &dto.UpdateJobRequest{ExperienceLevel: &badLevel})
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = svc.Update(asPrincipal(applicant), job.ID, &dto.UpdateJobRequest{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(p, uuid.New(), &dto.UpdateJobRequest{Title: &title})
	assert.ErrorIs(t, err, ErrJobNotFound)
}
