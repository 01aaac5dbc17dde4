package dto

import "tourdesk/shared/failure"

var (
	ErrInvalidDate           = failure.BadRequestFromString("dates must use the YYYY-MM-DD format")
	ErrReturnBeforeDeparture = failure.BadRequestFromString("return_date must not be before departure_date")
)
