// Package radix provides an embeddable numeral-base converter that keeps a
// persisted history of its last ten conversions.
//
// A presentation layer (a CLI, a TUI, an HTTP handler) owns a [Session], feeds
// it the strings the user typed, and renders what comes back.
//
// # Basic Usage
//
//	s, err := radix.New(radix.Config{HistoryDir: "/var/lib/radix"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	s.Load(ctx) // once, at startup
//
//	rec, err := s.Convert(ctx, "FF", radix.Hexadecimal, radix.Binary)
//	var se *radix.StorageError
//	switch {
//	case errors.As(err, &se):
//	    // rec.Output is valid; it just could not be saved
//	case err != nil:
//	    // ErrEmptyInput, *InvalidDigitsError, ErrOverflow, ...
//	}
//
// # Configuration
//
// [Config] selects the history directory, the storage backend ("file" or
// "sqlite") and the locale used to stamp records. [WithRepository] replaces
// the backend entirely.
//
// # Event Handling
//
// Implement [EventHandler] (embed [BaseEventHandler] for defaults) and pass it
// with [WithEventHandler] to observe conversions, failures and history changes.
// Events are delivered synchronously on the calling goroutine.
//
// # Concurrency
//
// A Session is meant to be driven by one caller issuing one action at a time.
// Calls are serialised internally, so concurrent use is safe but not useful.
package radix
