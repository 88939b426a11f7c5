package locator

import "go.uber.org/zap"

// Option configures a Device.
type Option func(*Device)

// WithLogger sets the logger used for build and query diagnostics.
// A nil logger leaves the default no-op logger in place.
func WithLogger(l *zap.Logger) Option {
	return func(d *Device) {
		if l != nil {
			d.log = l
		}
	}
}
