package ast

// ExprID addresses a node in the expression arena.
type ExprID uint32

const NoExprID ExprID = 0

func (id ExprID) IsValid() bool { return id != NoExprID }
