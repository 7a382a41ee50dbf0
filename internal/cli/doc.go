// Package cli implements the interactive menu of the classroom manager.
// It only collects and checks input, calls the classroom service and
// presents the outcome; all state lives behind the service.
package cli
