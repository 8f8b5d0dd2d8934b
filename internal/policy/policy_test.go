package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermits(t *testing.T) {
	tests := []struct {
		name string
		role Role
		op   Operation
		want bool
	}{
		{"applicant can submit", RoleApplicant, OpSubmitApplication, true},
		{"applicant can list own", RoleApplicant, OpListOwnApplications, true},
		{"applicant can withdraw own", RoleApplicant, OpWithdrawApplication, true},
		{"applicant cannot list all", RoleApplicant, OpListAllApplications, false},
		{"applicant cannot change status", RoleApplicant, OpChangeApplicationStatus, false},
		{"applicant cannot view dashboard", RoleApplicant, OpViewDashboard, false},
		{"applicant cannot manage users", RoleApplicant, OpDeleteUser, false},
		{"admin can change status", RoleAdmin, OpChangeApplicationStatus, true},
		{"admin can view dashboard", RoleAdmin, OpViewDashboard, true},
		{"admin can manage jobs", RoleAdmin, OpManageJobPostings, true},
		{"admin keeps applicant capabilities", RoleAdmin, OpSubmitApplication, true},
		{"super admin can delete users", RoleSuperAdmin, OpDeleteUser, true},
		{"super admin can change roles", RoleSuperAdmin, OpChangeUserRole, true},
		{"unknown role holds nothing", Role("ghost"), OpSubmitApplication, false},
		{"empty role holds nothing", Role(""), OpViewDashboard, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Permits(tt.role, tt.op))
		})
	}
}

func TestCapabilitiesAdminSupersetOfApplicant(t *testing.T) {
	applicant := Capabilities(RoleApplicant)
	admin := Capabilities(RoleAdmin)
	super := Capabilities(RoleSuperAdmin)

	for op := range applicant {
		assert.True(t, admin[op], "admin missing applicant capability %s", op)
	}
	for op := range admin {
		assert.True(t, super[op], "super_admin missing admin capability %s", op)
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("applicant"))
	assert.True(t, ValidRole("admin"))
	assert.True(t, ValidRole("super_admin"))
	assert.False(t, ValidRole("superadmin"))
	assert.False(t, ValidRole(""))
}
