package peoplesoft

import (
	"context"
	"time"

	"github.com/STEVENBOBER/LegacyBridge/config"
	"github.com/STEVENBOBER/LegacyBridge/internal/entity"
	"github.com/STEVENBOBER/LegacyBridge/pkg/logger"
)

// Simulated fakes the PeopleSoft boundary in-process. It holds the contract
// a live client has to satisfy later: same operations, same failure kinds,
// same token shape.
type Simulated struct {
	baseURL  string
	username string
	password string
	log      logger.Interface
}

var _ Feature = (*Simulated)(nil)

// NewSimulated -.
func NewSimulated(cfg config.PeopleSoft, log logger.Interface) *Simulated {
	log.Info("peoplesoft - simulated adapter initialized with baseUrl=" + cfg.BaseURL)

	return &Simulated{
		baseURL:  cfg.BaseURL,
		username: cfg.Username,
		password: cfg.Password,
		log:      log,
	}
}

// Ping never fails in simulated mode.
func (s *Simulated) Ping(_ context.Context) (ConnectivityResult, error) {
	s.log.Debug("peoplesoft - simulated - Ping called")

	result := ConnectivityResult{
		Message:       "Mock PeopleSoft API reachable",
		PeopleSoftURL: s.baseURL,
		TimeStamp:     time.Now().UTC(),
	}

	s.log.Debug("peoplesoft - simulated - Ping returning message=" + result.Message)

	return result, nil
}

// Login compares against the single configured service credential by exact
// equality and mints a fresh token on match.
func (s *Simulated) Login(_ context.Context, username, password string) (SessionToken, error) {
	s.log.Info("peoplesoft - simulated - Login called for username=" + username)

	if username != s.username || password != s.password {
		s.log.Warn("peoplesoft - simulated - Login failed for username=" + username)
		loginAttempts.WithLabelValues("invalid_credentials").Inc()

		return SessionToken{}, InvalidCredentialsError{Username: username}
	}

	token := newSessionToken(time.Now().UTC())

	s.log.Info("peoplesoft - simulated - Login succeeded for username=" + username)
	s.log.Debug("peoplesoft - simulated - issued token=" + token.Token)
	loginAttempts.WithLabelValues("success").Inc()

	return token, nil
}

// GetEmployeeByID synthesizes a record whose identifier echoes the input.
// The token is unused here; a live backend needs it to scope the call.
func (s *Simulated) GetEmployeeByID(_ context.Context, id, token string) (entity.Employee, error) {
	s.log.Debug("peoplesoft - simulated - GetEmployeeByID called for id=" + id + ", token=" + token)

	employee := entity.Employee{
		EmployeeID:   id,
		FirstName:    "Jane",
		LastName:     "Doe",
		Department:   "FIN_AP",
		JobTitle:     "Accounts Payable Analyst",
		Status:       entity.StatusActive,
		SourceSystem: entity.SourceSystem,
		Mocked:       true,
	}

	s.log.Debug("peoplesoft - simulated - GetEmployeeByID returning id=" + employee.EmployeeID)
	employeeLookups.WithLabelValues("simulated").Inc()

	return employee, nil
}
