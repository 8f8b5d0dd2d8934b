package services

import (
	"testing"

	"github.com/deboeng/careers-backend/internal/dto"
	"github.com/deboeng/careers-backend/internal/models"
	"github.com/deboeng/careers-backend/internal/policy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteUserCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	admin := seedUser(t, db, policy.RoleAdmin)
	target := seedUser(t, db, policy.RoleApplicant)
	bystander := seedUser(t, db, policy.RoleApplicant)
	seedProfile(t, db, target.ID, "Tolesa", models.LevelJunior)
	seedProfile(t, db, bystander.ID, "Bikila", models.LevelSenior)

	job := seedJob(t, db)
	targetApp := seedApplication(t, db, target.ID, job.ID, models.StatusUnderReview)
	seedApplication(t, db, bystander.ID, job.ID, models.StatusSubmitted)
	require.NoError(t, db.Create(&models.ApplicationHistory{
		ID:            uuid.New(),
		ApplicationID: targetApp.ID,
		NewStatus:     models.StatusUnderReview,
		Notes:         "Status changed to: Under Review. Notes: None",
	}).Error)

	require.NoError(t, svc.DeleteUser(asPrincipal(admin), target.ID))

	var users, profiles, apps, histories int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", target.ID).Count(&users).Error)
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", target.ID).Count(&profiles).Error)
	require.NoError(t, db.Model(&models.Application{}).Where("user_id = ?", target.ID).Count(&apps).Error)
	require.NoError(t, db.Model(&models.ApplicationHistory{}).Count(&histories).Error)
	assert.EqualValues(t, 0, users)
	assert.EqualValues(t, 0, profiles)
	assert.EqualValues(t, 0, apps)
	assert.EqualValues(t, 0, histories)

	// The bystander's data is untouched.
	var remaining int64
	require.NoError(t, db.Model(&models.Application{}).Where("user_id = ?", bystander.ID).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)
}

func TestDeleteUserGuards(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	admin := seedUser(t, db, policy.RoleAdmin)
	super := seedUser(t, db, policy.RoleSuperAdmin)
	applicant := seedUser(t, db, policy.RoleApplicant)

	err := svc.DeleteUser(asPrincipal(applicant), admin.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.DeleteUser(asPrincipal(admin), admin.ID)
	assert.ErrorIs(t, err, ErrSelfDelete)

	err = svc.DeleteUser(asPrincipal(admin), super.ID)
	assert.ErrorIs(t, err, ErrSuperAdminDelete)

	err = svc.DeleteUser(asPrincipal(admin), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetUserRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	super := seedUser(t, db, policy.RoleSuperAdmin)
	target := seedUser(t, db, policy.RoleApplicant)
	p := asPrincipal(super)

	require.NoError(t, svc.SetUserRole(p, target.ID, "admin"))

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", target.ID).Error)
	assert.Equal(t, "admin", stored.Role)

	err := svc.SetUserRole(p, target.ID, "overlord")
	assert.ErrorIs(t, err, ErrInvalidRole)

	err = svc.SetUserRole(p, uuid.New(), "admin")
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = svc.SetUserRole(asPrincipal(target), super.ID, "applicant")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListUsersFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	admin := seedUser(t, db, policy.RoleAdmin)
	junior := seedUser(t, db, policy.RoleApplicant)
	seedProfile(t, db, junior.ID, "Gemechu", models.LevelJunior)
	senior := seedUser(t, db, policy.RoleApplicant)
	p := seedProfile(t, db, senior.ID, "Hana", models.LevelSenior)
	require.NoError(t, db.Model(&p).Update("skills", "Go, PostgreSQL").Error)

	caller := asPrincipal(admin)

	users, pg, err := svc.ListUsers(caller, &dto.UserFilters{})
	require.NoError(t, err)
	assert.Len(t, users, 3)
	assert.EqualValues(t, 3, pg.Total)

	users, _, err = svc.ListUsers(caller, &dto.UserFilters{Role: "applicant"})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, _, err = svc.ListUsers(caller, &dto.UserFilters{DeveloperLevel: models.LevelSenior})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, senior.ID, users[0].ID)
	require.NotNil(t, users[0].Profile)
	assert.Equal(t, "Hana", users[0].Profile.FirstName)

	users, _, err = svc.ListUsers(caller, &dto.UserFilters{Search: "PostgreSQL"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, senior.ID, users[0].ID)

	users, _, err = svc.ListUsers(caller, &dto.UserFilters{Search: "Gemechu"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, junior.ID, users[0].ID)

	_, _, err = svc.ListUsers(asPrincipal(junior), &dto.UserFilters{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetUserDetail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	admin := seedUser(t, db, policy.RoleAdmin)
	target := seedUser(t, db, policy.RoleApplicant)
	seedProfile(t, db, target.ID, "Lensa", models.LevelMidLevel)

	jobs := []models.JobPosting{seedJob(t, db), seedJob(t, db), seedJob(t, db), seedJob(t, db)}
	seedApplication(t, db, target.ID, jobs[0].ID, models.StatusAccepted)
	seedApplication(t, db, target.ID, jobs[1].ID, models.StatusRejected)
	seedApplication(t, db, target.ID, jobs[2].ID, models.StatusRejected)
	seedApplication(t, db, target.ID, jobs[3].ID, models.StatusSubmitted)

	detail, err := svc.GetUser(asPrincipal(admin), target.ID)
	require.NoError(t, err)

	assert.Equal(t, target.ID, detail.User.ID)
	require.NotNil(t, detail.User.Profile)
	assert.Equal(t, "Lensa", detail.User.Profile.FirstName)
	assert.Len(t, detail.Applications, 4)
	assert.EqualValues(t, 4, detail.TotalApplications)
	assert.EqualValues(t, 1, detail.AcceptedApplications)
	assert.EqualValues(t, 2, detail.RejectedApplications)

	_, err = svc.GetUser(asPrincipal(admin), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetUser(asPrincipal(target), target.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}
