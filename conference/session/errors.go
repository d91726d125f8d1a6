package session

import "github.com/imtaco/xms-confctl/internal/errors"

// Rejection reasons. Handlers return these; none of them stops the reactor.
const (
	ErrNotFound           errors.Code = "not found"
	ErrCapacityExceeded   errors.Code = "capacity exceeded"
	ErrResourceExhausted  errors.Code = "resource exhausted"
	ErrPreconditionFailed errors.Code = "precondition failed"
	ErrUnauthorized       errors.Code = "unauthorized"
	ErrTransportFailure   errors.Code = "transport failure"
)
