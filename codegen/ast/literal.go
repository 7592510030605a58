package ast

import (
	"strconv"
	"strings"
)

func (s *LiteralExpr) Generate(builder *Builder) error {
	return builder.WriteIndentedString(s.Literal)
}

//NewQuotedLiteral returns a single quoted string literal
func NewQuotedLiteral(text string) *LiteralExpr {
	quoted := strconv.Quote(text)
	quoted = strings.ReplaceAll(quoted[1:len(quoted)-1], `\"`, `"`)
	quoted = strings.ReplaceAll(quoted, "'", `\'`)
	return &LiteralExpr{"'" + quoted + "'"}
}

func NewLiteral(text string) *LiteralExpr {
	return &LiteralExpr{text}
}
