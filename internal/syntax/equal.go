package syntax

// Equal reports whether a and b are syntactically equal: same tag,
// same immediate scalar fields, and recursively equal children. It
// ignores positions entirely — two trees parsed from different
// sources can still be syntactically equal, per spec.md §8.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Tag() != b.Tag() {
		return false
	}

	switch x := a.(type) {
	case *DefProgram:
		y := b.(*DefProgram)
		return Equal(x.Body, y.Body)
	case *DefProcedure:
		y := b.(*DefProcedure)
		return x.Name == y.Name && equalStrings(x.Params, y.Params) && Equal(x.Body, y.Body)
	case *DefFunction:
		y := b.(*DefFunction)
		return x.Name == y.Name && equalStrings(x.Params, y.Params) && Equal(x.Body, y.Body)

	case *StmtBlock:
		y := b.(*StmtBlock)
		return equalStmts(x.Stmts, y.Stmts)
	case *StmtReturn:
		y := b.(*StmtReturn)
		return Equal(x.Expr, y.Expr)
	case *StmtIf:
		y := b.(*StmtIf)
		if !Equal(x.Cond, y.Cond) || !Equal(x.Then, y.Then) {
			return false
		}
		if (x.Else == nil) != (y.Else == nil) {
			return false
		}
		if x.Else == nil {
			return true
		}
		return Equal(x.Else, y.Else)
	case *StmtRepeat:
		y := b.(*StmtRepeat)
		return Equal(x.Times, y.Times) && Equal(x.Body, y.Body)
	case *StmtForeach:
		y := b.(*StmtForeach)
		return x.Index == y.Index && Equal(x.Iterable, y.Iterable) && Equal(x.Body, y.Body)
	case *StmtWhile:
		y := b.(*StmtWhile)
		return Equal(x.Cond, y.Cond) && Equal(x.Body, y.Body)
	case *StmtSwitch:
		y := b.(*StmtSwitch)
		if !Equal(x.Subject, y.Subject) || len(x.Branches) != len(y.Branches) {
			return false
		}
		for i := range x.Branches {
			if !Equal(x.Branches[i], y.Branches[i]) {
				return false
			}
		}
		return true
	case *StmtAssignVariable:
		y := b.(*StmtAssignVariable)
		return x.Name == y.Name && Equal(x.Value, y.Value)
	case *StmtAssignTuple:
		y := b.(*StmtAssignTuple)
		return equalStrings(x.Names, y.Names) && Equal(x.Value, y.Value)
	case *StmtProcedureCall:
		y := b.(*StmtProcedureCall)
		return x.Name == y.Name && equalExprs(x.Args, y.Args)

	case *PatternWildcard:
		return true
	case *PatternConstructor:
		y := b.(*PatternConstructor)
		return x.Ctor == y.Ctor && equalStrings(x.Params, y.Params)
	case *PatternTuple:
		y := b.(*PatternTuple)
		return equalStrings(x.Params, y.Params)

	case *ExprVariable:
		y := b.(*ExprVariable)
		return x.Name == y.Name
	case *ExprConstantNumber:
		y := b.(*ExprConstantNumber)
		return x.Tok == y.Tok
	case *ExprConstantString:
		y := b.(*ExprConstantString)
		return x.Tok == y.Tok
	case *ExprList:
		y := b.(*ExprList)
		return equalExprs(x.Elems, y.Elems)
	case *ExprRange:
		y := b.(*ExprRange)
		return Equal(x.First, y.First) && Equal(x.Second, y.Second) && Equal(x.Last, y.Last)
	case *ExprTuple:
		y := b.(*ExprTuple)
		return equalExprs(x.Elems, y.Elems)
	case *ExprConstructor:
		y := b.(*ExprConstructor)
		return x.Ctor == y.Ctor && equalFieldValues(x.FieldValues, y.FieldValues)
	case *ExprConstructorUpdate:
		y := b.(*ExprConstructorUpdate)
		return x.Ctor == y.Ctor && Equal(x.Original, y.Original) && equalFieldValues(x.FieldValues, y.FieldValues)
	case *ExprAnd:
		y := b.(*ExprAnd)
		return Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *ExprOr:
		y := b.(*ExprOr)
		return Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *ExprFunctionCall:
		y := b.(*ExprFunctionCall)
		return x.Name == y.Name && equalExprs(x.Args, y.Args)

	case *SwitchBranch:
		y := b.(*SwitchBranch)
		return Equal(x.Pattern, y.Pattern) && Equal(x.Body, y.Body)
	case *FieldValue:
		y := b.(*FieldValue)
		return x.Name == y.Name && Equal(x.Expr, y.Expr)
	}
	return false
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStmts(a, b []Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalExprs(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalFieldValues(a, b []*FieldValue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
