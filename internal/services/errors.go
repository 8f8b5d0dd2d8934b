package services

import "errors"

// Sentinel errors surfaced to the HTTP layer. Handlers map them to status
// codes: not-found 404, conflict 409, forbidden 403, validation 400. Anything
// else is treated as a store failure and hidden behind a generic 500.
var (
	ErrJobNotOpen          = errors.New("job posting not found, inactive, or past its deadline")
	ErrJobNotFound         = errors.New("job posting not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrUserNotFound        = errors.New("user not found")

	ErrAlreadyApplied = errors.New("an application for this job already exists")

	ErrForbidden        = errors.New("operation not permitted")
	ErrSuperAdminDelete = errors.New("super admin accounts cannot be deleted")

	ErrSelfDelete           = errors.New("cannot delete your own account")
	ErrInvalidStatus        = errors.New("unrecognized application status")
	ErrInvalidLevel         = errors.New("unrecognized experience level")
	ErrInvalidOfferType     = errors.New("unrecognized offer type")
	ErrInvalidJobType       = errors.New("unrecognized job type")
	ErrInvalidRole          = errors.New("role must be applicant, admin, or super_admin")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)
