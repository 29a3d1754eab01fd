package pkg

import "fmt"

// AppError is the HTTP-facing error envelope. Handlers map usecase sentinel
// errors into one of these; the wrapped cause never reaches the response
// body.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the JSON body returned to clients.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
