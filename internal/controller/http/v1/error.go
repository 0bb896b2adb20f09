package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/STEVENBOBER/LegacyBridge/internal/usecase/peoplesoft"
)

type response struct {
	Error string `json:"error,omitempty" example:"message"`
}

// BadRequestError covers malformed or incomplete caller input. It is local
// to the HTTP surface and never reaches the adapter.
type BadRequestError struct {
	Reason string
}

func (e BadRequestError) Error() string {
	return e.Reason
}

// UnauthenticatedError is raised by the session gate when the Authorization
// header is absent or does not use the bearer scheme.
type UnauthenticatedError struct{}

func (UnauthenticatedError) Error() string {
	return "Missing or invalid Authorization header"
}

// InvalidTokenError is raised by the session gate when the bearer value does
// not carry the token marker.
type InvalidTokenError struct{}

func (InvalidTokenError) Error() string {
	return "Invalid or expired token"
}

// ErrorResponse is the single place a failure kind becomes a status code and
// an externally visible message. Anything outside the known set falls
// through to a generic 500; callers log the original error with full detail
// before handing it here.
func ErrorResponse(c *gin.Context, err error) {
	var (
		badRequestErr  BadRequestError
		validatorErr   validator.ValidationErrors
		unauthErr      UnauthenticatedError
		tokenErr       InvalidTokenError
		credentialsErr peoplesoft.InvalidCredentialsError
		nfErr          peoplesoft.NotFoundError
		upstreamErr    peoplesoft.UpstreamError
		unreachableErr peoplesoft.UnreachableError
	)

	switch {
	case errors.As(err, &badRequestErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: badRequestErr.Reason})
	case errors.As(err, &validatorErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: "malformed request body"})
	case errors.As(err, &unauthErr):
		c.AbortWithStatusJSON(http.StatusUnauthorized, response{Error: unauthErr.Error()})
	case errors.As(err, &tokenErr):
		c.AbortWithStatusJSON(http.StatusUnauthorized, response{Error: tokenErr.Error()})
	case errors.As(err, &credentialsErr):
		c.AbortWithStatusJSON(http.StatusUnauthorized, response{Error: "Invalid PeopleSoft credentials"})
	case errors.As(err, &nfErr):
		c.AbortWithStatusJSON(http.StatusNotFound, response{Error: "Employee not found"})
	case errors.As(err, &upstreamErr):
		c.AbortWithStatusJSON(http.StatusBadGateway, response{Error: "PeopleSoft upstream failure"})
	case errors.As(err, &unreachableErr):
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, response{Error: "PeopleSoft unreachable"})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, response{Error: "Internal Server Error"})
	}
}
