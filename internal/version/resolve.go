package version

// Resolver produces a value from one source. An empty result or a non-nil
// error means the source is unavailable.
type Resolver func() (string, error)

// FirstOf tries resolvers in order and returns the first usable value.
// Nil resolvers are skipped.
func FirstOf(resolvers ...Resolver) (string, bool) {
	for _, r := range resolvers {
		if r == nil {
			continue
		}
		if v, err := r(); err == nil && v != "" {
			return v, true
		}
	}
	return "", false
}
