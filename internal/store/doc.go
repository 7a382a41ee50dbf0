// Package store defines the persistence contract for classrooms and the
// errors every implementation reports. Business rules in the service layer
// depend only on these interfaces, never on a concrete backend.
package store
