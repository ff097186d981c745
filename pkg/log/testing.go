package log

import (
	"bytes"
)

// NewTestProvider returns a provider writing to an in-memory buffer, for
// verifying log output in tests.
//
//	provider, buf := log.NewTestProvider()
//	log.SetProvider(provider)
//	// ... exercise code under test ...
//	if !strings.Contains(buf.String(), "binned feature matrix") { ... }
func NewTestProvider() (LoggerProvider, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	p := newZerologProviderTo(buf)
	p.SetLevel(LevelDebug)
	return p, buf
}
