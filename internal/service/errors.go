package service

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации или некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

func ErrUnauthorized(msg string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: msg,
		Status:  http.StatusUnauthorized,
	}
}

// ErrForbidden — пользователь не является участником или владельцем команды.
func ErrForbidden(msg string) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: msg,
		Status:  http.StatusForbidden,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов (USER_EXISTS, ALREADY_MEMBER).
func ErrDomain(code, msg string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusConflict,
	}
}

func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// AsAppError достаёт AppError из цепочки; всё остальное считается внутренней ошибкой.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal("internal error", err)
}
