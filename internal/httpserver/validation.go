package httpserver

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"quickcheck/internal/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// registerValidators adds the "productstatus" tag to gin's validator.
func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("httpserver: unexpected binding validator engine")
			return
		}
		registerErr = v.RegisterValidation("productstatus", func(fl validator.FieldLevel) bool {
			return domain.Status(fl.Field().String()).Valid()
		})
	})
	return registerErr
}

// bindingMessage turns binding failures into client-facing messages.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "productstatus":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, statusList()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

func statusList() string {
	states := domain.Statuses()
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
