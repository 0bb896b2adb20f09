// Package v1 implements the v1 HTTP surface of the bridge. Handlers
// translate adapter outcomes into responses; no business logic lives here.
package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/STEVENBOBER/LegacyBridge/internal/entity/dto/v1"
	"github.com/STEVENBOBER/LegacyBridge/internal/usecase/peoplesoft"
	"github.com/STEVENBOBER/LegacyBridge/pkg/logger"
)

type peopleSoftRoutes struct {
	t peoplesoft.Feature
	l logger.Interface
}

// NewPeopleSoftRoutes -.
func NewPeopleSoftRoutes(handler *gin.RouterGroup, t peoplesoft.Feature, l logger.Interface) {
	r := &peopleSoftRoutes{t, l}

	h := handler.Group("/peoplesoft")
	{
		h.GET("/ping", r.ping)
		h.POST("/login", r.login)

		protected := h.Group("/employees", RequireSessionToken())
		protected.GET("/:id", r.getEmployeeByID)
	}
}

func (r *peopleSoftRoutes) ping(c *gin.Context) {
	result, err := r.t.Ping(c.Request.Context())
	if err != nil {
		r.l.Error(err, "http - v1 - ping")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.PingResponse{
		Message:       result.Message,
		PeopleSoftURL: result.PeopleSoftURL,
		TimeStamp:     result.TimeStamp.Format(time.RFC3339),
	})
}

func (r *peopleSoftRoutes) login(c *gin.Context) {
	var body dto.LoginRequest

	// Both fields must be present before any credential comparison happens.
	if err := c.ShouldBindJSON(&body); err != nil {
		r.l.Warn("http - v1 - login: " + err.Error())
		ErrorResponse(c, BadRequestError{Reason: "username and password are required"})

		return
	}

	session, err := r.t.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		r.l.Error(err, "http - v1 - login")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:   "PeopleSoft login successful",
		Token:     session.Token,
		ExpiresIn: session.ExpiresIn,
		IssuedAt:  session.IssuedAt.Format(time.RFC3339),
	})
}

func (r *peopleSoftRoutes) getEmployeeByID(c *gin.Context) {
	id := c.Param("id")
	token := c.GetString(tokenContextKey)

	employee, err := r.t.GetEmployeeByID(c.Request.Context(), id, token)
	if err != nil {
		r.l.Error(err, "http - v1 - getEmployeeByID")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.EmployeeResponse{
		Employee:    employee,
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
		UsedToken:   token,
	})
}
