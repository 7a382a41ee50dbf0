// Package events provides the audit events emitted by the classroom service
// and the interfaces used to publish and consume them.
//
// Services emit events without knowing which handlers will process them.
// The primary components are:
// - AuditEvent: a record of one successful change to the classroom store
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
// - LogHandler: writes every event to the audit log
package events
