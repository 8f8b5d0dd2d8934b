// Package policy maps roles to the operations they may perform. It is a pure
// predicate layer: no storage, no side effects, evaluated fresh on every call.
package policy

type Role string

const (
	RoleApplicant  Role = "applicant"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

var Roles = []Role{RoleApplicant, RoleAdmin, RoleSuperAdmin}

func ValidRole(role string) bool {
	for _, r := range Roles {
		if string(r) == role {
			return true
		}
	}
	return false
}

type Operation string

const (
	OpSubmitApplication       Operation = "application:submit"
	OpListOwnApplications     Operation = "application:list_own"
	OpViewOwnApplication      Operation = "application:view_own"
	OpWithdrawApplication     Operation = "application:withdraw_own"
	OpListAllApplications     Operation = "application:list_all"
	OpViewAnyApplication      Operation = "application:view_any"
	OpChangeApplicationStatus Operation = "application:change_status"
	OpListUsers               Operation = "user:list"
	OpViewUserDetail          Operation = "user:view"
	OpDeleteUser              Operation = "user:delete"
	OpChangeUserRole          Operation = "user:change_role"
	OpViewDashboard           Operation = "dashboard:view"
	OpManageJobPostings       Operation = "job:manage"
)

var applicantOps = []Operation{
	OpSubmitApplication,
	OpListOwnApplications,
	OpViewOwnApplication,
	OpWithdrawApplication,
}

var adminOps = []Operation{
	OpListAllApplications,
	OpViewAnyApplication,
	OpChangeApplicationStatus,
	OpListUsers,
	OpViewUserDetail,
	OpDeleteUser,
	OpChangeUserRole,
	OpViewDashboard,
	OpManageJobPostings,
}

// Capabilities derives the permitted-operation set for a role. Admins hold
// every applicant capability as well; super_admin is a superset of admin.
func Capabilities(role Role) map[Operation]bool {
	caps := make(map[Operation]bool, len(applicantOps)+len(adminOps))
	switch role {
	case RoleApplicant:
		for _, op := range applicantOps {
			caps[op] = true
		}
	case RoleAdmin, RoleSuperAdmin:
		for _, op := range applicantOps {
			caps[op] = true
		}
		for _, op := range adminOps {
			caps[op] = true
		}
	}
	return caps
}

// Permits reports whether the role may perform the operation. Unknown roles
// hold no capabilities at all.
func Permits(role Role, op Operation) bool {
	return Capabilities(role)[op]
}
