package models

// AppError is a structured application error with HTTP status code.
type AppError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *AppError) Error() string { return e.Message }

// Error constructors covering the daemon's error taxonomy.
var (
	ErrProfile = func(msg string) *AppError {
		return &AppError{Code: "PROFILE_ERROR", Message: msg, Status: 422}
	}
	ErrMonitorNotFound = func(name string) *AppError {
		return &AppError{Code: "MONITOR_NOT_FOUND", Message: "monitor not found: " + name, Status: 404}
	}
	ErrHdrNotSupported = &AppError{Code: "HDR_NOT_SUPPORTED", Message: "HDR not supported", Status: 409}
	ErrNotFound        = func(msg string) *AppError {
		return &AppError{Code: "NOT_FOUND", Message: msg, Status: 404}
	}
	ErrBadRequest = func(msg string) *AppError {
		return &AppError{Code: "BAD_REQUEST", Message: msg, Status: 400}
	}
	ErrConfigParse = func(msg string) *AppError {
		return &AppError{Code: "CONFIG_PARSE", Message: msg, Status: 422}
	}
	ErrIO = func(msg string) *AppError {
		return &AppError{Code: "IO", Message: msg, Status: 500}
	}
	ErrInternal = func(msg string) *AppError {
		return &AppError{Code: "INTERNAL", Message: msg, Status: 500}
	}
)
