package syntax

// Parser is a recursive-descent, one-token-lookahead translator from
// a Lexer's token stream to the AST. It owns exactly one piece of
// mutable state, the current-token cell (spec.md §5); every parsing
// method reads p.tok and calls p.advance to move past it.
//
// There is no error recovery: the first SyntaxError returned aborts
// the whole parse (spec.md §7, "first error wins").
type Parser struct {
	lex       *Lexer
	translate Translator
	tok       Token
}

// NewParser builds a parser over files and reads its first token.
func NewParser(files []FileSource, translate Translator) (*Parser, error) {
	p := &Parser{lex: NewLexer(files, translate), translate: translate}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Warnings returns the lexer's accumulated warnings. Meaningful once
// parsing has finished.
func (p *Parser) Warnings() []Warning {
	return p.lex.Warnings()
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) got(tag Tag) bool { return p.tok.Tag == tag }

// expect consumes the current token, requiring it to carry tag; on
// mismatch it raises errmsg:expected-but-found.
func (p *Parser) expect(tag Tag) (Token, error) {
	if p.tok.Tag != tag {
		return Token{}, p.errExpected(describeTag(tag))
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func (p *Parser) errExpected(expected string) *SyntaxError {
	return newError(p.translate, p.tok.StartPos, KeyExpectedButFound, expected, describeFound(p.tok))
}

// ParseProgram parses an ordered file list into the program's
// top-level definitions, plus any warnings accumulated along the way.
func ParseProgram(files []FileSource, translate Translator) ([]Def, []Warning, error) {
	p, err := NewParser(files, translate)
	if err != nil {
		return nil, nil, err
	}
	if p.got(EOF) {
		return nil, p.Warnings(), newError(translate, p.tok.StartPos, KeyEmptySource)
	}
	var defs []Def
	for !p.got(EOF) {
		d, err := p.parseDefinition()
		if err != nil {
			return nil, p.Warnings(), err
		}
		defs = append(defs, d)
	}
	return defs, p.Warnings(), nil
}

// Parse is ParseProgram over a single anonymous source string.
func Parse(source string, translate Translator) ([]Def, []Warning, error) {
	return ParseProgram(SourcesFromString(source), translate)
}

// ----------------------------------------------------------------------------
// Definitions

func (p *Parser) parseDefinition() (Def, error) {
	switch p.tok.Tag {
	case PROGRAM:
		return p.parseDefProgram()
	case PROCEDURE:
		return p.parseDefProcedure()
	case FUNCTION:
		return p.parseDefFunction()
	case INTERACTIVE, TYPE:
		return nil, newError(p.translate, p.tok.StartPos, KeyDefinitionNotYetSupported, p.tok.Tag.String())
	default:
		return nil, p.errExpected("definition")
	}
}

func (p *Parser) parseDefProgram() (Def, error) {
	start := p.tok.StartPos
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &DefProgram{def: def{newSpan(start, body.EndPos())}, Body: body}, nil
}

func (p *Parser) parseDefProcedure() (Def, error) {
	start := p.tok.StartPos
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expect(UPPERID)
	if err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &DefProcedure{def: def{newSpan(start, body.EndPos())}, Name: name.Value, Params: params, Body: body}, nil
}

func (p *Parser) parseDefFunction() (Def, error) {
	start := p.tok.StartPos
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expect(LOWERID)
	if err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &DefFunction{def: def{newSpan(start, body.EndPos())}, Name: name.Value, Params: params, Body: body}, nil
}

// parseParamList parses "( LOWERID (, LOWERID)* )" with no trailing
// comma: after a comma, the next token must be a parameter name, not
// the closing paren.
func (p *Parser) parseParamList() ([]string, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	if _, ok, err := p.optional(RPAREN); err != nil {
		return nil, err
	} else if ok {
		return nil, nil
	}
	var params []string
	for {
		tok, err := p.expect(LOWERID)
		if err != nil {
			return nil, err
		}
		params = append(params, tok.Value)
		if _, ok, err := p.optional(COMMA); err != nil {
			return nil, err
		} else if ok {
			continue
		}
		break
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// optional consumes the current token if it matches tag.
func (p *Parser) optional(tag Tag) (Token, bool, error) {
	if p.tok.Tag != tag {
		return Token{}, false, nil
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return Token{}, false, err
	}
	return tok, true, nil
}

// ----------------------------------------------------------------------------
// Statements

func (p *Parser) parseBlock() (*StmtBlock, error) {
	start := p.tok.StartPos
	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}
	var stmts []Stmt
	for !p.got(RBRACE) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
		if _, _, err := p.optional(SEMICOLON); err != nil {
			return nil, err
		}
	}
	end := p.tok.StartPos
	if _, err := p.expect(RBRACE); err != nil {
		return nil, err
	}
	return &StmtBlock{stmt: stmt{newSpan(start, end)}, Stmts: stmts}, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	switch p.tok.Tag {
	case RETURN:
		return p.parseStmtReturn()
	case IF:
		return p.parseStmtIf()
	case REPEAT:
		return p.parseStmtRepeat()
	case FOREACH:
		return p.parseStmtForeach()
	case WHILE:
		return p.parseStmtWhile()
	case SWITCH:
		return p.parseStmtSwitch()
	case LET:
		return p.parseStmtLet()
	case LBRACE:
		return p.parseBlock()
	case LOWERID:
		return p.parseStmtAssignVariable()
	case UPPERID:
		return p.parseStmtProcedureCall()
	default:
		return nil, newError(p.translate, p.tok.StartPos, KeyExpectedButFound, "statement", describeFound(p.tok))
	}
}

func (p *Parser) parseStmtReturn() (Stmt, error) {
	start := p.tok.StartPos
	if err := p.advance(); err != nil {
		return nil, err
	}
	lp, err := p.expect(LPAREN)
	if err != nil {
		return nil, err
	}
	var elems []Expr
	if !p.got(RPAREN) {
		for {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if _, ok, err := p.optional(COMMA); err != nil {
				return nil, err
			} else if ok {
				continue
			}
			break
		}
	}
	rp, err := p.expect(RPAREN)
	if err != nil {
		return nil, err
	}
	value := tupleOrUnwrap(elems, lp.StartPos, rp.StartPos)
	return &StmtReturn{stmt: stmt{newSpan(start, rp.StartPos)}, Expr: value}, nil
}

// tupleOrUnwrap implements "empty = 0-tuple, singleton = expression,
// >=2 = ExprTuple" (spec.md §4.4, RETURN).
func tupleOrUnwrap(elems []Expr, open, close Position) Expr {
	if len(elems) == 1 {
		return elems[0]
	}
	return &ExprTuple{expr: expr{newSpan(open, close)}, Elems: elems}
}

func (p *Parser) parseStmtIf() (Stmt, error) {
	start := p.tok.StartPos
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	if _, _, err := p.optional(THEN); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end := then.EndPos()
	var elseBlock *StmtBlock
	if p.got(ELSE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
		end = elseBlock.EndPos()
	}
	return &StmtIf{stmt: stmt{newSpan(start, end)}, Cond: cond, Then: then, Else: elseBlock}, nil
}

func (p *Parser) parseStmtRepeat() (Stmt, error) {
	start := p.tok.StartPos
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	times, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &StmtRepeat{stmt: stmt{newSpan(start, body.EndPos())}, Times: times, Body: body}, nil
}

func (p *Parser) parseStmtForeach() (Stmt, error) {
	start := p.tok.StartPos
	if err := p.advance(); err != nil {
		return nil, err
	}
	idx, err := p.expect(LOWERID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(IN); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &StmtForeach{stmt: stmt{newSpan(start, body.EndPos())}, Index: idx.Value, Iterable: iterable, Body: body}, nil
}

func (p *Parser) parseStmtWhile() (Stmt, error) {
	start := p.tok.StartPos
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &StmtWhile{stmt: stmt{newSpan(start, body.EndPos())}, Cond: cond, Body: body}, nil
}

func (p *Parser) parseStmtSwitch() (Stmt, error) {
	start := p.tok.StartPos
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	subject, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	if _, _, err := p.optional(TO); err != nil {
		return nil, err
	}
	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}
	var branches []*SwitchBranch
	for !p.got(RBRACE) {
		br, err := p.parseSwitchBranch()
		if err != nil {
			return nil, err
		}
		branches = append(branches, br)
	}
	end := p.tok.StartPos
	if _, err := p.expect(RBRACE); err != nil {
		return nil, err
	}
	return &StmtSwitch{stmt: stmt{newSpan(start, end)}, Subject: subject, Branches: branches}, nil
}

func (p *Parser) parseSwitchBranch() (*SwitchBranch, error) {
	pat, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ARROW); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &SwitchBranch{span: newSpan(pat.StartPos(), body.EndPos()), Pattern: pat, Body: body}, nil
}

func (p *Parser) parseStmtLet() (Stmt, error) {
	start := p.tok.StartPos
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.got(LOWERID) {
		nameTok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(ASSIGN); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &StmtAssignVariable{stmt: stmt{newSpan(start, val.EndPos())}, Name: nameTok.Value, Value: val}, nil
	}

	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	var names []string
	for {
		n, err := p.expect(LOWERID)
		if err != nil {
			return nil, err
		}
		names = append(names, n.Value)
		if _, ok, err := p.optional(COMMA); err != nil {
			return nil, err
		} else if ok {
			continue
		}
		break
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	if len(names) == 1 {
		return nil, newError(p.translate, start, KeyAssignmentTupleSingleton)
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &StmtAssignTuple{stmt: stmt{newSpan(start, val.EndPos())}, Names: names, Value: val}, nil
}

func (p *Parser) parseStmtAssignVariable() (Stmt, error) {
	tok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &StmtAssignVariable{stmt: stmt{newSpan(tok.StartPos, val.EndPos())}, Name: tok.Value, Value: val}, nil
}

func (p *Parser) parseStmtProcedureCall() (Stmt, error) {
	tok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	args, rparenStart, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	return &StmtProcedureCall{stmt: stmt{newSpan(tok.StartPos, rparenStart)}, Name: tok.Value, Args: args}, nil
}

// parseArgList parses "( expr (, expr)* )" (or "()"), returning the
// arguments and the closing paren's start position.
func (p *Parser) parseArgList() ([]Expr, Position, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, Position{}, err
	}
	var args []Expr
	if !p.got(RPAREN) {
		for {
			e, err := p.parseExpr()
			if err != nil {
				return nil, Position{}, err
			}
			args = append(args, e)
			if _, ok, err := p.optional(COMMA); err != nil {
				return nil, Position{}, err
			} else if ok {
				continue
			}
			break
		}
	}
	rp, err := p.expect(RPAREN)
	if err != nil {
		return nil, Position{}, err
	}
	return args, rp.StartPos, nil
}

// ----------------------------------------------------------------------------
// Patterns

func (p *Parser) parsePattern() (Pattern, error) {
	switch p.tok.Tag {
	case UNDERSCORE:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &PatternWildcard{pattern: pattern{newSpan(tok.StartPos, tok.EndPos)}}, nil
	case UPPERID:
		return p.parsePatternConstructor()
	case LPAREN:
		return p.parsePatternTuple()
	case LOWERID:
		return nil, newError(p.translate, p.tok.StartPos, KeyExpectedButFound, "pattern", describeTag(LOWERID))
	default:
		return nil, newError(p.translate, p.tok.StartPos, KeyExpectedButFound, "pattern", describeFound(p.tok))
	}
}

func (p *Parser) parsePatternConstructor() (Pattern, error) {
	tok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	if !p.got(LPAREN) {
		return &PatternConstructor{pattern: pattern{newSpan(tok.StartPos, tok.EndPos)}, Ctor: tok.Value}, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var params []string
	if !p.got(RPAREN) {
		for {
			pn, err := p.expect(LOWERID)
			if err != nil {
				return nil, err
			}
			params = append(params, pn.Value)
			if _, ok, err := p.optional(COMMA); err != nil {
				return nil, err
			} else if ok {
				continue
			}
			break
		}
	}
	rp, err := p.expect(RPAREN)
	if err != nil {
		return nil, err
	}
	return &PatternConstructor{pattern: pattern{newSpan(tok.StartPos, rp.StartPos)}, Ctor: tok.Value, Params: params}, nil
}

// parsePatternTuple enforces "length 0 or >= 2" and rejects nested
// tuple patterns, per spec.md §4.4.
func (p *Parser) parsePatternTuple() (Pattern, error) {
	lp := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.got(RPAREN) {
		rp := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &PatternTuple{pattern: pattern{newSpan(lp.StartPos, rp.StartPos)}}, nil
	}
	var params []string
	for {
		if p.got(LPAREN) {
			return nil, newError(p.translate, p.tok.StartPos, KeyExpectedButFound, describeTag(LOWERID), describeTag(LPAREN))
		}
		pn, err := p.expect(LOWERID)
		if err != nil {
			return nil, err
		}
		params = append(params, pn.Value)
		if _, ok, err := p.optional(COMMA); err != nil {
			return nil, err
		} else if ok {
			continue
		}
		break
	}
	rp, err := p.expect(RPAREN)
	if err != nil {
		return nil, err
	}
	if len(params) == 1 {
		return nil, newError(p.translate, lp.StartPos, KeyPatternTupleSingleton)
	}
	return &PatternTuple{pattern: pattern{newSpan(lp.StartPos, rp.StartPos)}, Params: params}, nil
}

// ----------------------------------------------------------------------------
// Expressions — precedence climbing over the table in spec.md §4.4.

func (p *Parser) parseExpr() (Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.got(OR) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		return &ExprOr{expr: expr{newSpan(left.StartPos(), right.EndPos())}, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	if p.got(AND) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		return &ExprAnd{expr: expr{newSpan(left.StartPos(), right.EndPos())}, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseNot() (Expr, error) {
	if p.got(NOT) {
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		return &ExprFunctionCall{expr: expr{newSpan(tok.StartPos, operand.EndPos())}, Name: "not", Args: []Expr{operand}}, nil
	}
	return p.parseComparison()
}

var comparisonOps = map[Tag]bool{EQ: true, NE: true, LE: true, GE: true, LT: true, GT: true}

// parseComparison is non-associative: at most one comparison per
// expression, per the precedence table's "non-assoc" fixity.
func (p *Parser) parseComparison() (Expr, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	if comparisonOps[p.tok.Tag] {
		op := p.tok.Tag
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		return &ExprFunctionCall{expr: expr{newSpan(left.StartPos(), right.EndPos())}, Name: op.String(), Args: []Expr{left, right}}, nil
	}
	return left, nil
}

func (p *Parser) parseConcat() (Expr, error) {
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	for p.got(CONCAT) {
		op := p.tok.Tag
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		left = &ExprFunctionCall{expr: expr{newSpan(left.StartPos(), right.EndPos())}, Name: op.String(), Args: []Expr{left, right}}
	}
	return left, nil
}

func (p *Parser) parseAddSub() (Expr, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for p.got(PLUS) || p.got(MINUS) {
		op := p.tok.Tag
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = &ExprFunctionCall{expr: expr{newSpan(left.StartPos(), right.EndPos())}, Name: op.String(), Args: []Expr{left, right}}
	}
	return left, nil
}

func (p *Parser) parseMul() (Expr, error) {
	left, err := p.parseDivMod()
	if err != nil {
		return nil, err
	}
	for p.got(TIMES) {
		op := p.tok.Tag
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseDivMod()
		if err != nil {
			return nil, err
		}
		left = &ExprFunctionCall{expr: expr{newSpan(left.StartPos(), right.EndPos())}, Name: op.String(), Args: []Expr{left, right}}
	}
	return left, nil
}

func (p *Parser) parseDivMod() (Expr, error) {
	left, err := p.parsePow()
	if err != nil {
		return nil, err
	}
	for p.got(DIV) || p.got(MOD) {
		op := p.tok.Tag
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parsePow()
		if err != nil {
			return nil, err
		}
		left = &ExprFunctionCall{expr: expr{newSpan(left.StartPos(), right.EndPos())}, Name: op.String(), Args: []Expr{left, right}}
	}
	return left, nil
}

func (p *Parser) parsePow() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.got(POW) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parsePow()
		if err != nil {
			return nil, err
		}
		return &ExprFunctionCall{expr: expr{newSpan(left.StartPos(), right.EndPos())}, Name: "^", Args: []Expr{left, right}}, nil
	}
	return left, nil
}

func (p *Parser) parseUnary() (Expr, error) {
	if p.got(MINUS) {
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ExprFunctionCall{expr: expr{newSpan(tok.StartPos, operand.EndPos())}, Name: "-(unary)", Args: []Expr{operand}}, nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (Expr, error) {
	switch p.tok.Tag {
	case LOWERID:
		return p.parseAtomLowerID()
	case NUM:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ExprConstantNumber{expr: expr{newSpan(tok.StartPos, tok.EndPos)}, Tok: tok.Value}, nil
	case STRING:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ExprConstantString{expr: expr{newSpan(tok.StartPos, tok.EndPos)}, Tok: tok.Value}, nil
	case UPPERID:
		return p.parseCtorExpr()
	case LPAREN:
		return p.parseParenExpr()
	case LBRACK:
		return p.parseListOrRange()
	default:
		return nil, p.errExpected("expression")
	}
}

func (p *Parser) parseAtomLowerID() (Expr, error) {
	tok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	if !p.got(LPAREN) {
		return &ExprVariable{expr: expr{newSpan(tok.StartPos, tok.EndPos)}, Name: tok.Value}, nil
	}
	args, rparenStart, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	return &ExprFunctionCall{expr: expr{newSpan(tok.StartPos, rparenStart)}, Name: tok.Value, Args: args}, nil
}

// parseCtorExpr implements the constructor/update disambiguation of
// spec.md §4.4.1: one token of lookahead is not enough, so it parses
// a full expression after "(" and then branches on what follows it.
func (p *Parser) parseCtorExpr() (Expr, error) {
	tok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	if !p.got(LPAREN) {
		return &ExprConstructor{expr: expr{newSpan(tok.StartPos, tok.EndPos)}, Ctor: tok.Value}, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.got(RPAREN) {
		rp := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ExprConstructor{expr: expr{newSpan(tok.StartPos, rp.StartPos)}, Ctor: tok.Value}, nil
	}

	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	switch p.tok.Tag {
	case GETS:
		variable, ok := e.(*ExprVariable)
		if !ok {
			return nil, newError(p.translate, tok.StartPos, KeyExpectedButFound, describeTag(PIPE), describeTag(GETS))
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		firstVal, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		fieldValues := []*FieldValue{{span: newSpan(variable.StartPos(), firstVal.EndPos()), Name: variable.Name, Expr: firstVal}}
		for p.got(COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			fv, err := p.parseFieldValue()
			if err != nil {
				return nil, err
			}
			fieldValues = append(fieldValues, fv)
		}
		rp, err := p.expect(RPAREN)
		if err != nil {
			return nil, err
		}
		return &ExprConstructor{expr: expr{newSpan(tok.StartPos, rp.StartPos)}, Ctor: tok.Value, FieldValues: fieldValues}, nil

	case PIPE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var fieldValues []*FieldValue
		if !p.got(RPAREN) {
			for {
				fv, err := p.parseFieldValue()
				if err != nil {
					return nil, err
				}
				fieldValues = append(fieldValues, fv)
				if _, ok, err := p.optional(COMMA); err != nil {
					return nil, err
				} else if ok {
					continue
				}
				break
			}
		}
		rp, err := p.expect(RPAREN)
		if err != nil {
			return nil, err
		}
		return &ExprConstructorUpdate{expr: expr{newSpan(tok.StartPos, rp.StartPos)}, Ctor: tok.Value, Original: e, FieldValues: fieldValues}, nil

	case COMMA, RPAREN:
		return nil, newError(p.translate, tok.StartPos, KeyExpectedButFound, "expression", "procedure call")

	default:
		var expected string
		if _, ok := e.(*ExprVariable); ok {
			expected = Alternatives(describeTag(GETS), describeTag(PIPE))
		} else {
			expected = describeTag(PIPE)
		}
		return nil, newError(p.translate, tok.StartPos, KeyExpectedButFound, expected, describeFound(p.tok))
	}
}

func (p *Parser) parseFieldValue() (*FieldValue, error) {
	nameTok, err := p.expect(LOWERID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(GETS); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &FieldValue{span: newSpan(nameTok.StartPos, val.EndPos()), Name: nameTok.Value, Expr: val}, nil
}

// parseParenExpr implements the tuple/parenthesized-expression atom:
// "()" and 2+ elements become ExprTuple; exactly one element is
// unwrapped to the bare expression.
func (p *Parser) parseParenExpr() (Expr, error) {
	lp := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.got(RPAREN) {
		rp := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ExprTuple{expr: expr{newSpan(lp.StartPos, rp.StartPos)}}, nil
	}
	var elems []Expr
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if _, ok, err := p.optional(COMMA); err != nil {
			return nil, err
		} else if ok {
			continue
		}
		break
	}
	rp, err := p.expect(RPAREN)
	if err != nil {
		return nil, err
	}
	if len(elems) == 1 {
		return elems[0], nil
	}
	return &ExprTuple{expr: expr{newSpan(lp.StartPos, rp.StartPos)}, Elems: elems}, nil
}

var listContinuationAlternatives = Alternatives(describeTag(COMMA), describeTag(RANGE), describeTag(RBRACK))

// parseListOrRange implements spec.md §4.4.2's list/range grammar.
func (p *Parser) parseListOrRange() (Expr, error) {
	lb := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.got(RBRACK) {
		rb := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ExprList{expr: expr{newSpan(lb.StartPos, rb.StartPos)}}, nil
	}

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	switch p.tok.Tag {
	case RBRACK:
		rb := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ExprList{expr: expr{newSpan(lb.StartPos, rb.StartPos)}, Elems: []Expr{first}}, nil

	case RANGE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		last, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		rb, err := p.expect(RBRACK)
		if err != nil {
			return nil, err
		}
		return &ExprRange{expr: expr{newSpan(lb.StartPos, rb.StartPos)}, First: first, Last: last}, nil

	case COMMA:
		if err := p.advance(); err != nil {
			return nil, err
		}
		second, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		switch p.tok.Tag {
		case RBRACK, COMMA:
			elems := []Expr{first, second}
			for p.got(COMMA) {
				if err := p.advance(); err != nil {
					return nil, err
				}
				e, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				elems = append(elems, e)
			}
			rb, err := p.expect(RBRACK)
			if err != nil {
				return nil, err
			}
			return &ExprList{expr: expr{newSpan(lb.StartPos, rb.StartPos)}, Elems: elems}, nil
		case RANGE:
			if err := p.advance(); err != nil {
				return nil, err
			}
			last, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			rb, err := p.expect(RBRACK)
			if err != nil {
				return nil, err
			}
			return &ExprRange{expr: expr{newSpan(lb.StartPos, rb.StartPos)}, First: first, Second: second, Last: last}, nil
		default:
			return nil, newError(p.translate, p.tok.StartPos, KeyExpectedButFound, listContinuationAlternatives, describeFound(p.tok))
		}

	default:
		return nil, newError(p.translate, p.tok.StartPos, KeyExpectedButFound, listContinuationAlternatives, describeFound(p.tok))
	}
}
