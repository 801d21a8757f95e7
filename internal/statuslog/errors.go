package statuslog

// Error is returned by Logger.Errorf after the record has been emitted. The
// message matches the fully rendered record text.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
