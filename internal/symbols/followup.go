package symbols

// StartVariable resets the name matchers of the current scope and its
// ancestors to the first fragment of a new name.
func (r *Resolver) StartVariable(fragment string) {
	for id := r.current; id.IsValid(); {
		s := r.table.Scopes.Get(id)
		if s == nil {
			return
		}
		if s.tokens != nil {
			s.tokens.Start(fragment)
		}
		id = s.Parent
	}
}

// PredictFollowUp reports whether fragment can continue the name being
// read, without moving any matcher.
func (r *Resolver) PredictFollowUp(fragment string) bool {
	if r.IsDynamicResolution() && r.IsVariableNamePartValid(fragment) {
		return true
	}
	return r.scopeFollowUp(fragment, true)
}

// CommitFollowUp is PredictFollowUp that also advances the matchers. The
// matchers advance even when dynamic resolution decided the answer.
func (r *Resolver) CommitFollowUp(fragment string) bool {
	dynamic := r.IsDynamicResolution() && r.IsVariableNamePartValid(fragment)
	matched := r.scopeFollowUp(fragment, false)
	return dynamic || matched
}

// scopeFollowUp asks the current scope, then its ancestors, whether
// fragment continues a defined name. A prediction stops at the first match;
// a commit advances every matcher so none is left behind.
func (r *Resolver) scopeFollowUp(fragment string, predict bool) bool {
	matched := false
	for id := r.current; id.IsValid(); {
		s := r.table.Scopes.Get(id)
		if s == nil {
			break
		}
		if s.tokens != nil && s.tokens.FollowUp(fragment, predict) {
			matched = true
			if predict {
				return true
			}
		}
		id = s.Parent
	}
	return matched
}
