// Package entity defines the domain types served by the bridge.
package entity

// SourceSystem tags every record with the legacy system it came from.
const SourceSystem = "PeopleSoft"

// StatusActive is the only status the simulated backend emits; a live
// backend may return other legacy-defined codes.
const StatusActive = "ACTIVE"

// Employee represents one legacy-system employee as seen through the bridge.
// Constructed fresh per lookup, never persisted, immutable once returned.
// Mocked is true when the record was synthesized rather than fetched from a
// live backend.
type Employee struct {
	EmployeeID   string `json:"employeeId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Department   string `json:"department"`
	JobTitle     string `json:"jobTitle"`
	Status       string `json:"status"`
	SourceSystem string `json:"sourceSystem"`
	Mocked       bool   `json:"mocked"`
}
