package symbols

import "feelscope/internal/token"

// EnableDynamicResolution makes every valid name fragment acceptable until
// the matching DisableDynamicResolution.
func (r *Resolver) EnableDynamicResolution() {
	r.dynamic++
	r.tracePoint("dynamic-on", r.CurrentName())
}

// DisableDynamicResolution undoes one EnableDynamicResolution. The counter
// never drops below zero.
func (r *Resolver) DisableDynamicResolution() {
	if r.dynamic > 0 {
		r.dynamic--
		r.tracePoint("dynamic-off", r.CurrentName())
	}
}

// IsDynamicResolution reports whether dynamic resolution is on.
func (r *Resolver) IsDynamicResolution() bool { return r.dynamic > 0 }

// DynamicDepth returns the nesting level of dynamic resolution.
func (r *Resolver) DynamicDepth() int { return r.dynamic }

// IsVariableNamePartValid reports whether fragment may continue a variable
// name in the current scope. Reusable keywords only count when some visible
// name continues with them.
func (r *Resolver) IsVariableNamePartValid(fragment string) bool {
	if token.Classify(fragment) == token.Digits {
		return true
	}
	if token.IsReusableKeyword(fragment) {
		return r.scopeFollowUp(fragment, true)
	}
	return token.IsNamePartValid(fragment)
}
