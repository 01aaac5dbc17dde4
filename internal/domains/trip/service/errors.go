package service

import "tourdesk/shared/failure"

var (
	ErrUserNotFound        = failure.BadRequestFromString("user does not exist")
	ErrUserInactive        = failure.BadRequestFromString("user is inactive")
	ErrUserNotGuide        = failure.BadRequestFromString("user is not a guide")
	ErrInstanceNotFound    = failure.BadRequestFromString("tour instance does not exist")
	ErrInstanceCancelled   = failure.Conflict("tour instance is cancelled")
	ErrAlreadyAssigned     = failure.Conflict("guide is already assigned to this tour instance")
	ErrGuideBusy           = failure.Conflict("guide has another trip in the same dates")
	ErrInvalidTransition   = failure.Conflict("assignment status transition is not allowed")
	ErrAssignmentNotFound  = failure.BadRequestFromString("trip assignment does not exist")
	ErrAssignmentCancelled = failure.Conflict("trip assignment is cancelled")
	ErrUnknownPassenger    = failure.BadRequestFromString("passenger is not on this tour instance")
	ErrDuplicatePassenger  = failure.BadRequestFromString("passenger appears more than once")
)
