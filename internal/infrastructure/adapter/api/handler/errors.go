package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	domainerr "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const msgNotString = "Not a valid string."

var registerTagNames sync.Once

// useJSONFieldNames makes binding errors report the JSON field name
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindingFieldErrors converts decode and binding-tag failures into field
// errors. ok is false when err is not field-specific (for example a syntax
// error in the body). body is re-read on a type error so every mistyped
// field is reported, not only the first.
func bindingFieldErrors(err error, body []byte) (*domainerr.ValidationError, bool) {
	verr := domainerr.NewValidationError()

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), tagMessage(fe))
		}
		return verr, true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		verr.Add(typeErr.Field, msgNotString)
		for _, field := range dto.NonStringFields(body) {
			if field != typeErr.Field {
				verr.Add(field, msgNotString)
			}
		}
		return verr, true
	}

	return nil, false
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}

// isEmptyBody reports whether binding failed only because the body was empty
func isEmptyBody(err error) bool {
	return errors.Is(err, io.EOF)
}

// respondError writes the HTTP response for a use case error
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	if verr, ok := domainerr.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, dto.FieldErrors(verr.Fields))
		return
	}

	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"status": status,
			"error":  err.Error(),
		})
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

func statusFor(err error) (int, string) {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound, "Not found."
	case errors.Is(err, domainerr.ErrTooManyRequests):
		return http.StatusTooManyRequests, "Request was throttled."
	case domainerr.IsUpstreamServiceError(err):
		return http.StatusBadGateway, "Balance service unavailable."
	case errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest, "Invalid request."
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
