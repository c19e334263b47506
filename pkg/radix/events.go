package radix

// EventHandler receives session events. Callbacks run synchronously on the
// goroutine that triggered them and must not call back into the Session.
type EventHandler interface {
	// OnConversion is called after a successful conversion has been recorded
	// in memory, whether or not it could be saved.
	OnConversion(event ConversionEvent)

	// OnConversionError is called when input is rejected.
	OnConversionError(event ConversionErrorEvent)

	// OnStorageError is called when saving or clearing the history fails.
	OnStorageError(event StorageErrorEvent)

	// OnHistoryChanged is called when the in-memory history is replaced
	// by a load, a clear or an external change.
	OnHistoryChanged(event HistoryChangedEvent)
}

// ConversionEvent describes a successful conversion.
type ConversionEvent struct {
	Record      ConversionRecord
	HistorySize int
	Saved       bool
}

// ConversionErrorEvent describes a rejected conversion.
type ConversionErrorEvent struct {
	Input string
	From  Base
	To    Base
	Err   error
}

// StorageErrorEvent describes a failed save or clear.
type StorageErrorEvent struct {
	Op  string
	Err error
}

// HistoryChangedEvent describes a replacement of the in-memory history.
type HistoryChangedEvent struct {
	// Reason is "loaded", "cleared" or "reloaded".
	Reason string
	Size   int
}

// BaseEventHandler implements EventHandler with no-ops. Embed it to handle
// only the events you need.
type BaseEventHandler struct{}

func (BaseEventHandler) OnConversion(ConversionEvent)           {}
func (BaseEventHandler) OnConversionError(ConversionErrorEvent) {}
func (BaseEventHandler) OnStorageError(StorageErrorEvent)       {}
func (BaseEventHandler) OnHistoryChanged(HistoryChangedEvent)   {}

var _ EventHandler = BaseEventHandler{}
