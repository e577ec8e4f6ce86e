package log

// discard drops every message.
type discard struct{}

func (discard) Infof(string, ...interface{})  {}
func (discard) Errorf(string, ...interface{}) {}
func (discard) Debugf(string, ...interface{}) {}

// NewNullLogger returns a Logger that drops every message. It is the
// default of every component until a logger is given.
func NewNullLogger() Logger {
	return discard{}
}
