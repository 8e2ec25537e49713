package core

// NewTopEnvironment builds the REPL's top-level environment with the
// built-in library installed, but without the prelude (see
// pkg/core/prelude.go) or *ARGV* (bound by cmd/mal).
func NewTopEnvironment() *Environment {
	env := NewEnv(nil)
	installArithmetic(env)
	installPredicates(env)
	installCollections(env)
	installIO(env)
	installMeta(env)
	installControl(env)
	return env
}
