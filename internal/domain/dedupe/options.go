package dedupe

// Option applies a configuration option to the key folder.
type Option func(*folder)

// WithPolicy overrides the duplicate-resolution policy.
func WithPolicy(p Policy) Option {
	return func(f *folder) {
		f.policy = p
	}
}
