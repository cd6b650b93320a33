package javascript

// Options configures one render run.
type Options struct {
	// RuntimeTypecheck controls whether the artifact verifies results at
	// runtime. When false the validator and declaration table are not
	// emitted at all and deserializers are pass-through parses with no
	// structural guarantee.
	RuntimeTypecheck bool
}

// DefaultOptions enables runtime typechecking.
func DefaultOptions() Options {
	return Options{RuntimeTypecheck: true}
}
