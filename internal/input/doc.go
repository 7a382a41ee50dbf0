// Package input validates the raw strings collected by the interactive shell
// before they reach the classroom service. Each operation has a request type
// whose struct tags describe its rules.
package input
