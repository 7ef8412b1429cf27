package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/SscSPs/forex_widget/internal/apperrors"
	"github.com/SscSPs/forex_widget/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Binding errors name fields the way clients send them.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindError turns a request decoding or binding failure into a FieldError.
func bindError(err error) *apperrors.FieldError {
	var fe *apperrors.FieldError
	if errors.As(err, &fe) {
		return fe
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			return apperrors.NewFieldError("", "Invalid request body")
		}
		return apperrors.NewFieldError(field, field+" must be a "+expectedType(typeErr.Type))
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		v := verrs[0]
		switch v.Tag() {
		case "required":
			return apperrors.NewFieldError(v.Field(), v.Field()+" is required")
		case "oneof":
			return apperrors.NewFieldError(v.Field(), v.Field()+" must be one of: "+strings.ReplaceAll(v.Param(), " ", ", "))
		default:
			return apperrors.NewFieldError(v.Field(), v.Field()+" is invalid")
		}
	}

	if errors.Is(err, io.EOF) {
		return apperrors.NewFieldError("", "Request body is required")
	}
	return apperrors.NewFieldError("", "Invalid request body")
}

func expectedType(t reflect.Type) string {
	if t == nil {
		return "valid value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "whole number"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	default:
		return "valid value"
	}
}

// respondError writes the client-facing error for err. Upstream and internal
// failures get internalMsg; provider details only reach the log.
func respondError(c *gin.Context, logger *slog.Logger, err error, notFoundMsg, internalMsg string) {
	var fe *apperrors.FieldError
	switch {
	case errors.As(err, &fe):
		logger.Warn("Validation error", slog.String("field", fe.Field), slog.String("error", fe.Message))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fe.Message, Field: fe.Field})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: notFoundMsg})
	case errors.Is(err, apperrors.ErrUpstream):
		logger.Error("Forex provider failure", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: internalMsg})
	default:
		logger.Error("Internal error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: internalMsg})
	}
}
