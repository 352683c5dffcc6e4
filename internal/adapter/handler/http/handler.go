package http

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	domainErrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/errors"
	apperrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/pkg/errors"
)

// RequestValidator implements echo.Validator with go-playground/validator,
// reporting fields by their JSON names.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return echo.NewHTTPError(http.StatusBadRequest, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be formatted as YYYY-MM-DD", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}

// bind decodes the request body into req and validates it.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}

// fail maps err onto an HTTP error; server-side failures are logged here.
func fail(logger *zap.Logger, c echo.Context, err error, msg string, fields ...zap.Field) error {
	he := apperrors.ToHTTPError(err)
	fields = append(fields, zap.String("path", c.Path()), zap.Error(err))
	if he.Code >= http.StatusInternalServerError {
		logger.Error(msg, fields...)
	} else {
		logger.Debug(msg, fields...)
	}
	return he
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.InvalidArgument("invalid id")
	}
	return uint(id), nil
}

// parseOrgID reads the optional org_id query parameter.
func parseOrgID(c echo.Context) (*uint, error) {
	raw := c.QueryParam("org_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, apperrors.InvalidArgument("org_id must be a positive integer")
	}
	v := uint(id)
	return &v, nil
}

// parseDays reads the days query parameter, defaulting to the standard window.
func parseDays(c echo.Context) (int, error) {
	raw := c.QueryParam("days")
	if raw == "" {
		return entity.DefaultWindowDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0, domainErrors.ErrInvalidDays
	}
	return days, nil
}

func parseOptionalInt(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.InvalidArgument(name + " must be an integer")
	}
	return &v, nil
}

func parseBool(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperrors.InvalidArgument(name + " must be true or false")
	}
	return v, nil
}

// parseOptionalTime accepts RFC 3339 timestamps or plain dates.
func parseOptionalTime(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return nil, apperrors.InvalidArgument(name + " must be an RFC 3339 timestamp or YYYY-MM-DD")
	}
	return &t, nil
}

func deleted(c echo.Context, what string) error {
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: what + " deleted successfully"})
}

// createdOrOK answers 201 for a new row and 200 for a replaced one.
func createdOrOK(c echo.Context, created bool, body interface{}) error {
	if created {
		return c.JSON(http.StatusCreated, body)
	}
	return c.JSON(http.StatusOK, body)
}
