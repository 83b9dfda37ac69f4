package symbols

// TokenTree is a prefix matcher over the name fragments of the symbols
// defined in one scope. It remembers how far the current name has matched.
type TokenTree struct {
	root *tokenNode
	cur  *tokenNode
}

type tokenNode struct {
	children map[string]*tokenNode
	terminal bool
}

func newTokenNode() *tokenNode {
	return &tokenNode{children: make(map[string]*tokenNode)}
}

// NewTokenTree creates an empty matcher.
func NewTokenTree() *TokenTree {
	root := newTokenNode()
	return &TokenTree{root: root, cur: root}
}

// AddName registers the fragment sequence of one symbol name.
func (t *TokenTree) AddName(fragments []string) {
	if len(fragments) == 0 {
		return
	}
	node := t.root
	for _, f := range fragments {
		next, ok := node.children[f]
		if !ok {
			next = newTokenNode()
			node.children[f] = next
		}
		node = next
	}
	node.terminal = true
}

// Start begins a new name at fragment. A fragment that starts no defined
// name leaves the matcher empty, so nothing continues it.
func (t *TokenTree) Start(fragment string) {
	t.cur = t.root.children[fragment]
}

// FollowUp reports whether fragment continues the current match. When
// predict is false the cursor moves to the match, or is cleared on a miss.
func (t *TokenTree) FollowUp(fragment string, predict bool) bool {
	if t.cur == nil {
		return false
	}
	next, ok := t.cur.children[fragment]
	if !predict {
		t.cur = next
	}
	return ok
}

// AtName reports whether the cursor sits at the end of a complete name.
func (t *TokenTree) AtName() bool { return t.cur != nil && t.cur.terminal }
