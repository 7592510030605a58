package ast

import "fmt"

type Condition struct {
	If        Expression
	IFBlock   Block
	ElseBlock Block
}

func (s *Condition) Generate(builder *Builder) (err error) {
	switch builder.Lang {
	case LangTS:
		if err = builder.WriteString("if ("); err != nil {
			return err
		}
		if err = s.If.Generate(builder); err != nil {
			return err
		}
		if err = builder.WriteString(") {"); err != nil {
			return err
		}
		bodyBuilder := builder.IncIndent(builder.Indent)
		if err = s.generateBody(bodyBuilder, s.IFBlock); err != nil {
			return err
		}
		if err = builder.WriteIndentedString("\n}"); err != nil {
			return err
		}
		if s.ElseBlock == nil {
			return nil
		}
		if err = builder.WriteString(" else {"); err != nil {
			return err
		}
		if err = s.generateBody(bodyBuilder, s.ElseBlock); err != nil {
			return err
		}
		return builder.WriteIndentedString("\n}")
	}
	return fmt.Errorf("unsupported option %T %v\n", s, builder.Lang)
}

func (s *Condition) generateBody(builder *Builder, block Block) error {
	if err := builder.WriteIndentedString("\n"); err != nil {
		return err
	}
	return block.Generate(builder)
}

func NewCondition(ifExpr Expression, ifBlock, elseBlock Block) *Condition {
	return &Condition{If: ifExpr, IFBlock: ifBlock, ElseBlock: elseBlock}
}
