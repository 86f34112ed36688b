package errs

import "errors"

var (
	ErrDatabase        = errors.New("E0001: database error")
	ErrInvalidID       = errors.New("E0002: invalid ID")
	ErrEmailRequired   = errors.New("E0003: email is required")
	ErrInvalidBody     = errors.New("E0004: invalid request body")
	ErrUnauthorized    = errors.New("E0005: unauthorized")
	ErrNotAdmin        = errors.New("E0006: not admin")
	ErrJWT             = errors.New("E0007: JWT failure")
	ErrTokenExpired    = errors.New("E0008: token expired")
	ErrInvalidPrice    = errors.New("E0009: invalid price")
	ErrPaymentProvider = errors.New("E0010: payment provider error")
	ErrAnswerIndices   = errors.New("E0011: answer file indices must start at zero and be unique and contiguous")
)
