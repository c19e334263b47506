// Package domain contains the core value types of radix.
//
// This package is the innermost layer. It has no dependencies on storage,
// logging or presentation and holds only the rules every other layer relies on.
//
// # Types
//
//   - [Base]: one of the supported radices (2, 8, 10, 16)
//   - [ConversionRecord]: one successful conversion, as persisted
//   - [History]: most-recent-first log of records, capped at [MaxHistory]
//   - [Locale]: layouts used to render a record's time of day and date
//
// # Design Principles
//
// Domain values are:
//   - Immutable after construction (History.Record returns a new slice)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
