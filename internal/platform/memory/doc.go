// Package memory provides an in-memory implementation of the storage
// interfaces defined in the internal/store package. State lives for the
// lifetime of the process; nothing is written to disk.
package memory
