// Package service contains the classroom use cases. ClassroomService is the
// operation dispatcher of the application: it runs each named operation
// against a store.ClassroomStore, logs the outcome and emits an audit event
// for every successful change.
//
// Error handling principles:
//  1. Store errors are returned wrapped, so callers use errors.Is with the
//     store sentinels (store.ErrClassroomNotFound, ...) and errors.As with
//     *store.StoreError to recover the user-facing message.
//  2. Expected domain failures are logged at debug level; anything else at
//     error level.
//  3. Audit events are best effort: a failing handler is logged, never
//     returned to the caller.
package service
