package syntax

import "encoding/json"

// posJSON is the wire shape of a Position in AST dumps.
type posJSON struct {
	File   string `json:"file"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
	Region string `json:"region"`
}

func toPosJSON(p Position) posJSON {
	return posJSON{File: p.File, Line: p.Line, Column: p.Column, Region: p.Region}
}

// NodeToMap renders n as a generic JSON-friendly tree: every node
// becomes a map with "tag", "start", "end", and the node's own scalar
// and child fields spelled out by name. Used by cmd/gbsc's
// -ast-format=json output (via MarshalProgram).
func NodeToMap(n Node) interface{} {
	if n == nil {
		return nil
	}
	m := map[string]interface{}{
		"tag":   n.Tag(),
		"start": toPosJSON(n.StartPos()),
		"end":   toPosJSON(n.EndPos()),
	}
	switch x := n.(type) {
	case *DefProgram:
		m["body"] = NodeToMap(x.Body)
	case *DefProcedure:
		m["name"] = x.Name
		m["params"] = x.Params
		m["body"] = NodeToMap(x.Body)
	case *DefFunction:
		m["name"] = x.Name
		m["params"] = x.Params
		m["body"] = NodeToMap(x.Body)

	case *StmtBlock:
		m["stmts"] = nodeList(stmtsToNodes(x.Stmts))
	case *StmtReturn:
		m["expr"] = NodeToMap(x.Expr)
	case *StmtIf:
		m["cond"] = NodeToMap(x.Cond)
		m["then"] = NodeToMap(x.Then)
		if x.Else != nil {
			m["else"] = NodeToMap(x.Else)
		} else {
			m["else"] = nil
		}
	case *StmtRepeat:
		m["times"] = NodeToMap(x.Times)
		m["body"] = NodeToMap(x.Body)
	case *StmtForeach:
		m["index"] = x.Index
		m["iterable"] = NodeToMap(x.Iterable)
		m["body"] = NodeToMap(x.Body)
	case *StmtWhile:
		m["cond"] = NodeToMap(x.Cond)
		m["body"] = NodeToMap(x.Body)
	case *StmtSwitch:
		m["subject"] = NodeToMap(x.Subject)
		branches := make([]interface{}, len(x.Branches))
		for i, br := range x.Branches {
			branches[i] = NodeToMap(br)
		}
		m["branches"] = branches
	case *StmtAssignVariable:
		m["name"] = x.Name
		m["value"] = NodeToMap(x.Value)
	case *StmtAssignTuple:
		m["names"] = x.Names
		m["value"] = NodeToMap(x.Value)
	case *StmtProcedureCall:
		m["name"] = x.Name
		m["args"] = nodeList(exprsToNodes(x.Args))

	case *PatternWildcard:
		// no extra fields
	case *PatternConstructor:
		m["ctor"] = x.Ctor
		m["params"] = x.Params
	case *PatternTuple:
		m["params"] = x.Params

	case *ExprVariable:
		m["name"] = x.Name
	case *ExprConstantNumber:
		m["tok"] = x.Tok
	case *ExprConstantString:
		m["tok"] = x.Tok
	case *ExprList:
		m["elems"] = nodeList(exprsToNodes(x.Elems))
	case *ExprRange:
		m["first"] = NodeToMap(x.First)
		if x.Second != nil {
			m["second"] = NodeToMap(x.Second)
		} else {
			m["second"] = nil
		}
		m["last"] = NodeToMap(x.Last)
	case *ExprTuple:
		m["elems"] = nodeList(exprsToNodes(x.Elems))
	case *ExprConstructor:
		m["ctor"] = x.Ctor
		fvs := make([]interface{}, len(x.FieldValues))
		for i, fv := range x.FieldValues {
			fvs[i] = NodeToMap(fv)
		}
		m["fieldValues"] = fvs
	case *ExprConstructorUpdate:
		m["ctor"] = x.Ctor
		m["original"] = NodeToMap(x.Original)
		fvs := make([]interface{}, len(x.FieldValues))
		for i, fv := range x.FieldValues {
			fvs[i] = NodeToMap(fv)
		}
		m["fieldValues"] = fvs
	case *ExprAnd:
		m["left"] = NodeToMap(x.Left)
		m["right"] = NodeToMap(x.Right)
	case *ExprOr:
		m["left"] = NodeToMap(x.Left)
		m["right"] = NodeToMap(x.Right)
	case *ExprFunctionCall:
		m["name"] = x.Name
		m["args"] = nodeList(exprsToNodes(x.Args))

	case *SwitchBranch:
		m["pattern"] = NodeToMap(x.Pattern)
		m["body"] = NodeToMap(x.Body)
	case *FieldValue:
		m["name"] = x.Name
		m["expr"] = NodeToMap(x.Expr)
	}
	return m
}

func stmtsToNodes(s []Stmt) []Node {
	out := make([]Node, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

func exprsToNodes(e []Expr) []Node {
	out := make([]Node, len(e))
	for i, v := range e {
		out[i] = v
	}
	return out
}

func nodeList(ns []Node) []interface{} {
	out := make([]interface{}, len(ns))
	for i, n := range ns {
		out[i] = NodeToMap(n)
	}
	return out
}

// MarshalProgram renders a parsed program (the top-level definition
// list) as indented JSON.
func MarshalProgram(defs []Def) ([]byte, error) {
	list := make([]interface{}, len(defs))
	for i, d := range defs {
		list[i] = NodeToMap(d)
	}
	return json.MarshalIndent(list, "", "  ")
}
