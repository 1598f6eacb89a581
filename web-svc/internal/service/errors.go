package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrIllegalTransition  = errors.New("illegal order state transition")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrSubmissionInFlight = errors.New("order submission already in progress")
	ErrAlreadySubmitted   = errors.New("order already submitted")
	ErrReviewLocked       = errors.New("review is not unlocked yet")
	ErrUnknownItem        = errors.New("menu item not found")
	ErrFlowAbandoned      = errors.New("order flow was abandoned")
	ErrNoOrderNumber      = errors.New("failed to create order: no order number returned")
)

type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...interface{}) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err was raised before any network call was made.
func IsValidation(err error) bool {
	var target *validationError
	return errors.As(err, &target)
}

var validate = validator.New()

// validateStruct turns validator field errors into one readable validation error.
func validateStruct(v interface{}, messages map[string]string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return newValidationError("%v", err)
	}

	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if msg, ok := messages[fe.Field()]; ok {
			parts = append(parts, msg)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
	}
	return newValidationError("%s", strings.Join(parts, "; "))
}
