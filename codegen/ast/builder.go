package ast

import "strings"

//Builder accumulates generated code, builders derived with IncIndent share the same buffer
type Builder struct {
	Options
	buffer *strings.Builder
	indent string
}

func (b *Builder) WriteString(s string) error {
	_, err := b.buffer.WriteString(s)
	return err
}

//WriteIndentedString writes s with every line break followed by the builder indent
func (b *Builder) WriteIndentedString(s string) error {
	if b.indent != "" {
		s = strings.ReplaceAll(s, "\n", "\n"+b.indent)
	}
	return b.WriteString(s)
}

func (b *Builder) IncIndent(indent string) *Builder {
	return &Builder{Options: b.Options, buffer: b.buffer, indent: b.indent + indent}
}

func (b *Builder) String() string {
	return b.buffer.String()
}

func NewBuilder(options Options) *Builder {
	if options.Lang == "" {
		options.Lang = LangTS
	}
	return &Builder{Options: options, buffer: &strings.Builder{}}
}

//Generate renders node with a new builder
func Generate(node Node, options Options) (string, error) {
	builder := NewBuilder(options)
	if err := node.Generate(builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
