package ast

func NewCallExpr(receiver Expression, name string, args ...Expression) *CallExpr {
	return &CallExpr{
		Receiver: receiver,
		Name:     name,
		Args:     args,
	}
}

func (e *CallExpr) Generate(builder *Builder) (err error) {
	if e.Receiver != nil {
		if err = e.Receiver.Generate(builder); err != nil {
			return err
		}
		if err = builder.WriteString("."); err != nil {
			return err
		}
	}
	if err = builder.WriteString(e.Name + "("); err != nil {
		return err
	}
	if err = generateList(builder, e.Args); err != nil {
		return err
	}
	return builder.WriteString(")")
}

func (s *StatementExpression) Generate(builder *Builder) (err error) {
	if err = s.Expression.Generate(builder); err != nil {
		return err
	}
	return builder.WriteString(";")
}

//NewStatementExpression return new statement expr
func NewStatementExpression(expr Expression) *StatementExpression {
	return &StatementExpression{Expression: expr}
}

func (e *BinaryExpr) Generate(builder *Builder) (err error) {
	if err = e.X.Generate(builder); err != nil {
		return err
	}
	if err = builder.WriteString(" " + e.Op + " "); err != nil {
		return err
	}
	return e.Y.Generate(builder)
}

func NewBinaryExpr(x Expression, op string, y Expression) *BinaryExpr {
	return &BinaryExpr{X: x, Op: op, Y: y}
}

func (e *UnaryExpr) Generate(builder *Builder) (err error) {
	if err = builder.WriteString(e.Op); err != nil {
		return err
	}
	return e.X.Generate(builder)
}

func NewNot(x Expression) *UnaryExpr {
	return &UnaryExpr{Op: "!", X: x}
}

func NewAwait(x Expression) *UnaryExpr {
	return &UnaryExpr{Op: "await ", X: x}
}

func (e *ObjectExpr) Generate(builder *Builder) (err error) {
	if len(e.Fields) == 0 {
		return builder.WriteString("{}")
	}
	if err = builder.WriteString("{ "); err != nil {
		return err
	}
	if err = generateList(builder, e.Fields); err != nil {
		return err
	}
	return builder.WriteString(" }")
}

func NewObjectExpr(fields ...Expression) *ObjectExpr {
	return &ObjectExpr{Fields: fields}
}

func (e *SpreadExpr) Generate(builder *Builder) (err error) {
	if err = builder.WriteString("..."); err != nil {
		return err
	}
	return e.X.Generate(builder)
}

func NewSpreadExpr(x Expression) *SpreadExpr {
	return &SpreadExpr{X: x}
}

func generateList(builder *Builder, items []Expression) (err error) {
	for i, item := range items {
		if i > 0 {
			if err = builder.WriteString(", "); err != nil {
				return err
			}
		}
		if err = item.Generate(builder); err != nil {
			return err
		}
	}
	return nil
}
