// Package domain contains the core entities of the classroom manager:
// classrooms, the students enrolled in them and the assignments scheduled
// for them. It is independent of any storage or delivery mechanism.
package domain
