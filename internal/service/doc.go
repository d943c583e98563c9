// Package service contains the application's business logic, sitting
// between the HTTP handlers and the persistence layer: the memory
// collection operations and the export pipeline orchestration.
package service
