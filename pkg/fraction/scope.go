package fraction

import "strings"

// Scope is a dependency scope. The zero value is not valid; use [ParseScope]
// or one of the constants.
type Scope string

// The fixed set of recognized scopes.
const (
	ScopeCompile  Scope = "compile"
	ScopeTest     Scope = "test"
	ScopeRuntime  Scope = "runtime"
	ScopeProvided Scope = "provided"
	ScopeSystem   Scope = "system"
	ScopeImport   Scope = "import"
)

var scopes = map[string]Scope{
	"compile":  ScopeCompile,
	"test":     ScopeTest,
	"runtime":  ScopeRuntime,
	"provided": ScopeProvided,
	"system":   ScopeSystem,
	"import":   ScopeImport,
}

// ParseScope normalizes a scope string. Unrecognized or empty input yields
// [ScopeCompile]; absence of a scope is common and benign, so this never
// fails.
func ParseScope(s string) Scope {
	if scope, ok := scopes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return scope
	}
	return ScopeCompile
}

// IsDefault reports whether the scope is the default (compile) scope, which
// is elided when serializing.
func (s Scope) IsDefault() bool {
	return s == ScopeCompile
}

// String returns the lowercase scope name.
func (s Scope) String() string {
	return string(s)
}
