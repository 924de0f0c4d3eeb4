package differ

// Option is a functional option for configuring Differ
type Option func(*differ)

// WithRenames enables or disables reporting display-name changes.
func WithRenames(enabled bool) Option {
	return func(d *differ) {
		d.renames = enabled
	}
}
