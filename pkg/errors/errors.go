package errors

import (
	"errors"
	"fmt"
)

var (
	// Общие
	ErrNotFound   = errors.New("запись не найдена")
	ErrBadRequest = errors.New("неверный запрос")
	ErrConflict   = errors.New("запись с такими данными уже существует")

	// Валидация бизнес-правил
	ErrValidation           = errors.New("ошибка валидации")
	ErrEmptyCatalog         = errors.New("справочник пуст, выбор невозможен")
	ErrReferenceNotFound    = errors.New("ссылка на несуществующую запись")
	ErrConfirmationRequired = errors.New("операция требует подтверждения")
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

// Is позволяет проверять InvalidInputError через errors.Is(err, ErrValidation).
func (e *InvalidInputError) Is(target error) bool { return target == ErrValidation }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError - ошибка, которая уже знает свой HTTP-код и сообщение для клиента.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func (e *HttpError) WithDetails(details interface{}) *HttpError {
	e.Details = details
	return e
}
