// Package ports defines the interfaces that connect the radix session to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [HistoryRepository]: loads, saves and removes the durable history record
//   - [HistoryWatcher]: optional, reports external changes to the record
//   - [Clock]: supplies the wall-clock time stamped on each record
//
// The session (pkg/radix) depends only on these interfaces. Adapters in
// internal/adapters implement them with concrete storage (a JSON file, SQLite).
package ports
