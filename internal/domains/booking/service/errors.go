package service

import "tourdesk/shared/failure"

var (
	ErrInstanceNotFound   = failure.BadRequestFromString("tour instance does not exist")
	ErrInstanceNotOpen    = failure.Conflict("tour instance is not open for booking")
	ErrInstanceFull       = failure.Conflict("tour instance is full")
	ErrNoPrice            = failure.BadRequestFromString("tour instance has no adult price, final_price is required")
	ErrInvalidTransition  = failure.Conflict("booking status transition is not allowed")
	ErrBookingClosed      = failure.Conflict("booking is closed for changes")
	ErrBookingCancelled   = failure.Conflict("booking is cancelled")
	ErrOverpayment        = failure.Conflict("payment exceeds the outstanding amount")
	ErrPassengerSeatsFull = failure.Conflict("booking has no free passenger slot, raise the booking counts instead")
	ErrPassengerKind      = failure.Conflict("moving a passenger between adult and child seats goes through the booking counts")
)
