package rule2hook

// Observer receives progress notifications emitted while a batch of
// rules is converted. Notifications are fire-and-forget: the converter
// calls them synchronously per rule but never depends on their outcome,
// so implementations must not block and must not panic.
type Observer interface {
	// Info reports normal per-rule progress.
	Info(message string)

	// Warning reports a recoverable problem, such as a rule that could
	// not be converted.
	Warning(message string)

	// Progress reports how far through the batch the conversion is.
	Progress(current, total int, message string)
}

// nopObserver discards every notification.
type nopObserver struct{}

func (nopObserver) Info(string)               {}
func (nopObserver) Warning(string)            {}
func (nopObserver) Progress(int, int, string) {}

// NopObserver returns an Observer that drops every notification.
func NopObserver() Observer {
	return nopObserver{}
}
