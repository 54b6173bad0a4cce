package ast

import (
	"strings"

	"github.com/wdamron/tlc/types"
)

// Arena resolves term handles to terms.
type Arena interface {
	Term(id types.TermId) Term
}

func TermString(arena Arena, id types.TermId) string {
	var sb strings.Builder
	termString(&sb, arena, false, id)
	return sb.String()
}

func termString(sb *strings.Builder, arena Arena, simple bool, id types.TermId) {
	if id == types.NoTerm {
		sb.WriteString("_")
		return
	}
	switch et := arena.Term(id).(type) {
	case *Ident:
		sb.WriteString(et.Name)

	case *Value:
		sb.WriteString(et.Text)

	case *Project:
		sb.WriteByte('.')
		sb.WriteString(et.Index.String())

	case *Arrow:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fn ")
		termString(sb, arena, true, et.LHS)
		if et.Type != nil {
			sb.WriteString(": ")
			sb.WriteString(et.Type.String())
		}
		sb.WriteString(" -> ")
		termString(sb, arena, false, et.RHS)
		if simple {
			sb.WriteByte(')')
		}

	case *App:
		if p, ok := arena.Term(et.Func).(*Project); ok {
			termString(sb, arena, true, et.Arg)
			sb.WriteByte('.')
			sb.WriteString(p.Index.String())
			return
		}
		termString(sb, arena, true, et.Func)
		if _, ok := arena.Term(et.Arg).(*Tuple); ok {
			termString(sb, arena, false, et.Arg)
			return
		}
		sb.WriteByte('(')
		termString(sb, arena, false, et.Arg)
		sb.WriteByte(')')

	case *Let:
		if simple {
			sb.WriteByte('(')
		}
		if et.IsExtern {
			sb.WriteString("extern ")
		}
		sb.WriteString("let ")
		sb.WriteString(et.Name)
		for _, group := range et.Parameters {
			sb.WriteByte('(')
			for i, p := range group {
				if i > 0 {
					sb.WriteString(", ")
				}
				name := p.Name
				if name == "" {
					name = "_"
				}
				sb.WriteString(name)
				if p.Type != nil {
					sb.WriteString(": ")
					sb.WriteString(p.Type.String())
				}
			}
			sb.WriteByte(')')
		}
		if et.ReturnType != nil {
			sb.WriteString(": ")
			sb.WriteString(et.ReturnType.String())
		}
		if et.Body != types.NoTerm {
			sb.WriteString(" = ")
			termString(sb, arena, false, et.Body)
		}
		if simple {
			sb.WriteByte(')')
		}

	case *Tuple:
		sb.WriteByte('(')
		for i, e := range et.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			termString(sb, arena, false, e)
		}
		sb.WriteByte(')')

	case *Block:
		sb.WriteByte('{')
		for i, e := range et.Stmts {
			if i > 0 {
				sb.WriteString("; ")
			}
			termString(sb, arena, false, e)
		}
		sb.WriteByte('}')

	case *Ascript:
		if simple {
			sb.WriteByte('(')
		}
		termString(sb, arena, true, et.Term)
		sb.WriteString(": ")
		sb.WriteString(et.Type.String())
		if simple {
			sb.WriteByte(')')
		}

	case *As:
		if simple {
			sb.WriteByte('(')
		}
		termString(sb, arena, true, et.Term)
		sb.WriteString(" as ")
		sb.WriteString(et.Type.String())
		if simple {
			sb.WriteByte(')')
		}

	case *Constructor:
		sb.WriteString(et.Name)
		if len(et.Fields) == 0 {
			return
		}
		sb.WriteByte('{')
		for i, f := range et.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteString(" = ")
			termString(sb, arena, false, f.Term)
		}
		sb.WriteByte('}')

	case *RuleApplication:
		sb.WriteByte('@')
		sb.WriteString(et.Rule)
		sb.WriteByte(' ')
		termString(sb, arena, true, et.Term)

	case *Match:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("match ")
		termString(sb, arena, true, et.Scrutinee)
		sb.WriteString(" {")
		for i, arm := range et.Arms {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteByte(' ')
			termString(sb, arena, false, arm.LHS)
			sb.WriteString(" => ")
			termString(sb, arena, false, arm.RHS)
		}
		sb.WriteString(" }")
		if simple {
			sb.WriteByte(')')
		}

	case *Fail:
		sb.WriteString("fail")

	case *Literal:
		for _, p := range et.Parts {
			sb.WriteString(p.String())
		}

	default:
		panic("unknown term type: " + et.TermName())
	}
}
