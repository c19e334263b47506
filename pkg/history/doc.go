// Package history persists the bounded log of past conversions.
//
// The history is one durable record holding at most ten entries, most recent
// first. It is loaded once at startup and rewritten whole on every change:
//
//	store := history.NewStore(history.NewFileRepository(dir), logger)
//
//	h := store.Load(ctx)          // never fails; corrupt data loads as empty
//	h = store.Record(h, rec)      // pure: prepend and cap
//	if err := store.Persist(ctx, h); err != nil {
//	    // *StorageError; h is still valid in memory
//	}
//
//	_ = store.Clear(ctx)          // removes the record itself
//
// Two backends are provided: a JSON file ([NewFileRepository]) and a SQLite
// key/value table ([OpenSQLiteRepository]).
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package history
