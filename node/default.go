package node

import "fmt"

type (
	//DefaultValue is an expression computing an instruction input that the caller did not provide
	DefaultValue interface {
		Node
		defaultValue()
	}

	AccountValue struct {
		Name string `yaml:"name"`
	}

	ArgumentValue struct {
		Name string `yaml:"name"`
	}

	ProgramIdValue struct{}

	ProgramLink struct {
		Name string `yaml:"name"`
	}

	IdentityValue struct{}

	PayerValue struct{}

	//PdaReference is either an inline *Pda or a *PdaLink
	PdaReference interface {
		Node
		pdaReference()
	}

	PdaLink struct {
		Name    string
		Program *ProgramLink
	}

	PdaValue struct {
		Pda   PdaReference
		Seeds []*PdaSeedValue
		//ProgramID optionally overrides the derivation program, either *AccountValue or *ArgumentValue
		ProgramID DefaultValue
	}

	PdaSeedValue struct {
		Name  string
		Value DefaultValue
	}

	AccountBumpValue struct {
		Name string `yaml:"name"`
	}

	ResolverValue struct {
		Name      string
		DependsOn []DefaultValue
	}

	//ConditionalValue selects IfTrue or IfFalse; Condition is an *AccountValue, *ArgumentValue or *ResolverValue
	//and Value, when set, is compared with the condition
	ConditionalValue struct {
		Condition DefaultValue
		Value     Value
		IfTrue    DefaultValue
		IfFalse   DefaultValue
	}

	//DefaultValueVisitor handles every default value variant
	DefaultValueVisitor[T any] interface {
		VisitAccountValue(value *AccountValue) (T, error)
		VisitArgumentValue(value *ArgumentValue) (T, error)
		VisitValue(value Value) (T, error)
		VisitProgramIdValue(value *ProgramIdValue) (T, error)
		VisitProgramLink(value *ProgramLink) (T, error)
		VisitIdentityValue(value *IdentityValue) (T, error)
		VisitPayerValue(value *PayerValue) (T, error)
		VisitPdaValue(value *PdaValue) (T, error)
		VisitAccountBumpValue(value *AccountBumpValue) (T, error)
		VisitResolverValue(value *ResolverValue) (T, error)
		VisitConditionalValue(value *ConditionalValue) (T, error)
	}
)

func (n *AccountValue) Kind() string     { return KindAccountValue }
func (n *ArgumentValue) Kind() string    { return KindArgumentValue }
func (n *ProgramIdValue) Kind() string   { return KindProgramIdValue }
func (n *ProgramLink) Kind() string      { return KindProgramLink }
func (n *IdentityValue) Kind() string    { return KindIdentityValue }
func (n *PayerValue) Kind() string       { return KindPayerValue }
func (n *PdaLink) Kind() string          { return KindPdaLink }
func (n *PdaValue) Kind() string         { return KindPdaValue }
func (n *PdaSeedValue) Kind() string     { return KindPdaSeedValue }
func (n *AccountBumpValue) Kind() string { return KindAccountBumpValue }
func (n *ResolverValue) Kind() string    { return KindResolverValue }
func (n *ConditionalValue) Kind() string { return KindConditionalValue }

func (n *AccountValue) defaultValue()     {}
func (n *ArgumentValue) defaultValue()    {}
func (n *ProgramIdValue) defaultValue()   {}
func (n *ProgramLink) defaultValue()      {}
func (n *IdentityValue) defaultValue()    {}
func (n *PayerValue) defaultValue()       {}
func (n *PdaValue) defaultValue()         {}
func (n *AccountBumpValue) defaultValue() {}
func (n *ResolverValue) defaultValue()    {}
func (n *ConditionalValue) defaultValue() {}

func (n *PdaLink) pdaReference() {}
func (n *Pda) pdaReference()     {}

func (n *ProgramLink) LinkName() string   { return n.Name }
func (n *PdaLink) LinkName() string       { return n.Name }
func (n *ResolverValue) LinkName() string { return n.Name }

//PdaName returns the name of the referenced derived address
func (n *PdaValue) PdaName() string {
	switch actual := n.Pda.(type) {
	case *PdaLink:
		return actual.Name
	case *Pda:
		return actual.Name
	}
	return ""
}

//Seed returns a seed value by name or nil
func (n *PdaValue) Seed(name string) *PdaSeedValue {
	for _, seed := range n.Seeds {
		if seed.Name == name {
			return seed
		}
	}
	return nil
}

//VisitDefaultValue dispatches value to the matching visitor handler
func VisitDefaultValue[T any](value DefaultValue, visitor DefaultValueVisitor[T]) (T, error) {
	switch actual := value.(type) {
	case *AccountValue:
		return visitor.VisitAccountValue(actual)
	case *ArgumentValue:
		return visitor.VisitArgumentValue(actual)
	case *ProgramIdValue:
		return visitor.VisitProgramIdValue(actual)
	case *ProgramLink:
		return visitor.VisitProgramLink(actual)
	case *IdentityValue:
		return visitor.VisitIdentityValue(actual)
	case *PayerValue:
		return visitor.VisitPayerValue(actual)
	case *PdaValue:
		return visitor.VisitPdaValue(actual)
	case *AccountBumpValue:
		return visitor.VisitAccountBumpValue(actual)
	case *ResolverValue:
		return visitor.VisitResolverValue(actual)
	case *ConditionalValue:
		return visitor.VisitConditionalValue(actual)
	case Value:
		return visitor.VisitValue(actual)
	}
	var zero T
	return zero, fmt.Errorf("unsupported default value: %T", value)
}
