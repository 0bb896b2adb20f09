// Package dto defines the request/response payloads of the v1 HTTP surface.
package dto

import "github.com/STEVENBOBER/LegacyBridge/internal/entity"

// LoginRequest -.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"psadmin"`
	Password string `json:"password" binding:"required" example:"changeme"`
}

// LoginResponse -.
type LoginResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
	IssuedAt  string `json:"issuedAt"`
}

// PingResponse -.
type PingResponse struct {
	Message       string `json:"message"`
	PeopleSoftURL string `json:"peoplesoftUrl"`
	TimeStamp     string `json:"timeStamp"`
}

// EmployeeResponse echoes the token that was used for traceability.
type EmployeeResponse struct {
	entity.Employee

	RequestedAt string `json:"requestedAt"`
	UsedToken   string `json:"usedtoken"`
}

// HealthResponse -.
type HealthResponse struct {
	Status    string  `json:"status"`
	Service   string  `json:"service"`
	Uptime    float64 `json:"uptime"`
	TimeStamp string  `json:"timeStamp"`
}
