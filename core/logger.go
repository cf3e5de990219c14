package core

// Logger is any service that can record application events.
// args may contain errors, map[string]interface{} extras and RequestMeta.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// RequestMeta identifies the HTTP request an event happened in.
type RequestMeta struct {
	ID     string
	Method string
	Path   string
}
