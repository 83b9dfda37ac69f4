// Package symbols keeps the scope tree and symbol table that a FEEL parser
// consults while it reads an expression.
//
// A Resolver owns a cursor into the Table. The parser pushes and pops
// scopes as it enters contexts, for-loops, quantifiers and filters, defines
// the variables those constructs introduce, and asks the resolver whether a
// name fragment can continue a multi-word variable name. Names bound to
// composite or built-in types expose their members through RecoverScope.
// Values of unknown type switch on dynamic resolution, under which any
// well-formed fragment is accepted and no unknown-variable error is raised.
package symbols
