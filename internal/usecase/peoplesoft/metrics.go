package peoplesoft

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peoplesoft_login_attempts_total",
			Help: "Credential exchanges against the PeopleSoft adapter (per outcome)",
		},
		[]string{"outcome"},
	)

	employeeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peoplesoft_employee_lookups_total",
			Help: "Employee lookups served through the adapter (per variant)",
		},
		[]string{"variant"},
	)
)
