package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Third-Party Delivery Errors
var (
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrDeliveryFailed     = errors.New("delivery failed")
)

// Configuration & Environment Errors
var (
	ErrConfigMissing = errors.New("configuration missing")
	ErrConfigInvalid = errors.New("configuration invalid")
)

// File & Media Errors
var (
	ErrFileMissing = errors.New("file missing")
)

func NewDeliveryError(channel string, statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrDeliveryFailed,
		Details:    fmt.Sprintf("%s delivery failed (status %d): %s", channel, statusCode, message),
		Field:      channel,
	}
}

func NewServiceUnreachableError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrServiceUnavailable,
		Details:    fmt.Sprintf("Unable to reach %s", service),
		Cause:      cause,
		Field:      service,
	}
}

func NewConfigMissingError(varName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("%s environment variable is required", varName),
		Field:      varName,
	}
}

func NewConfigInvalidError(varName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigInvalid,
		Details:    fmt.Sprintf("%s has an invalid value", varName),
		Cause:      cause,
		Field:      varName,
	}
}

func NewFileMissingError(path string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrFileMissing,
		Details:    fmt.Sprintf("'%s' not found", path),
		Field:      "path",
	}
}

func IsDeliveryError(err error) bool {
	return errors.Is(err, ErrDeliveryFailed)
}

func IsConfigMissingError(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}

func IsFileMissingError(err error) bool {
	return errors.Is(err, ErrFileMissing)
}
