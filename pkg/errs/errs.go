// Package errs defines the error taxonomy shared across the engine.
// Every package wraps one of these sentinels with fmt.Errorf's %w verb
// instead of defining its own exception types, following the teacher's
// convention of package-prefixed, wrapped errors (see pkg/rlm/engine.go
// and pkg/vector/store.go in the reference corpus).
package errs

import "errors"

var (
	// Syntax marks malformed .cpt source: unknown arguments, unterminated
	// keywords, an unrecognized leading character at an argument position.
	Syntax = errors.New("syntax error")
	// Semantic marks source that parsed but violates an arity or type
	// constraint (Seq missing its leading range, ConceptFilter with the
	// wrong argument count, and so on).
	Semantic = errors.New("semantic error")
	// Resolve marks a ConceptArg whose name has no registered Concept at
	// match time.
	Resolve = errors.New("resolve error")
	// Config marks an unrecognized word_level, language or range unit.
	Config = errors.New("config error")
	// IO marks a missing rule directory or unreadable .cpt file.
	IO = errors.New("io error")
)
