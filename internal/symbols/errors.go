package symbols

import "errors"

var (
	// ErrScopeUnderflow is raised (as a panic value) when a pop is requested
	// while the cursor sits on the global scope.
	ErrScopeUnderflow = errors.New("scope underflow: no scope above the global scope")
	// ErrNameUnderflow is raised (as a panic value) when PopName would
	// remove the local-scope marker at the bottom of the name stack.
	ErrNameUnderflow = errors.New("name stack underflow: only the local marker is left")
	// ErrUnsupportedType is raised (as a panic value) when built-in field
	// expansion is requested for a type without a built-in kind.
	ErrUnsupportedType = errors.New("unsupported built-in type")
)
