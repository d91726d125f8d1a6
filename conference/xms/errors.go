package xms

import "github.com/imtaco/xms-confctl/internal/errors"

const (
	ErrFailedRequest       errors.Code = "fail to make request"
	ErrInvalidPayload      errors.Code = "invalid payload"
	ErrInvalidResponse     errors.Code = "invalid response"
	ErrNoneSuccessResponse errors.Code = "none success response"
	ErrEmptyResult         errors.Code = "empty result"
	ErrStreamClosed        errors.Code = "event stream closed"
)
