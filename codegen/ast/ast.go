package ast

type (
	Node interface {
		Generate(builder *Builder) error
	}
	Statement interface {
		Node
	}

	Expression interface {
		Node
	} //can be BinaryExpr, UnaryExpr, CallExpr, ObjectExpr or LiteralExpr

	Block []Statement
	Ident struct {
		Name string
	}

	Assign struct {
		Holder     Expression
		Expression Expression
	}

	CallExpr struct {
		Receiver Expression
		Name     string
		Args     []Expression
	}

	StatementExpression struct {
		Expression
	}

	BinaryExpr struct {
		X  Expression
		Op string
		Y  Expression
	}

	UnaryExpr struct {
		Op string
		X  Expression
	}

	ObjectExpr struct {
		Fields []Expression
	}

	SpreadExpr struct {
		X Expression
	}

	LiteralExpr struct {
		Literal string
	}

	Options struct {
		Lang   string
		Indent string
	}
)

const LangTS = "ts"

func (b *Block) Append(statement Statement) {
	*b = append(*b, statement)
}

func (b Block) Generate(builder *Builder) error {
	for i, stmt := range b {
		if i > 0 {
			if err := builder.WriteIndentedString("\n"); err != nil {
				return err
			}
		}
		if err := stmt.Generate(builder); err != nil {
			return err
		}
	}
	return nil
}

func (e Ident) Generate(builder *Builder) (err error) {
	return builder.WriteString(e.Name)
}

func NewIdent(name string) *Ident {
	return &Ident{Name: name}
}
