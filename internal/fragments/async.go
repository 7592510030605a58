package fragments

import "github.com/viant/kitgen/node"

//IsAsyncDefaultValue returns true if computing value requires awaiting in generated code
func (s *Scope) IsAsyncDefaultValue(value node.DefaultValue) bool {
	switch actual := value.(type) {
	case *node.PdaValue:
		return true
	case *node.ResolverValue:
		return s.IsAsyncResolver(actual.Name)
	case *node.ConditionalValue:
		for _, nested := range []node.DefaultValue{actual.Condition, actual.IfTrue, actual.IfFalse} {
			if nested != nil && s.IsAsyncDefaultValue(nested) {
				return true
			}
		}
	}
	return false
}

//HasAsyncDefaultValues returns true if any input default value is async
func (s *Scope) HasAsyncDefaultValues(inputs []*node.ResolvedInput) bool {
	for _, input := range inputs {
		if input.DefaultValue != nil && s.IsAsyncDefaultValue(input.DefaultValue) {
			return true
		}
	}
	return false
}

//HasAsyncFunction returns true if an async variant of the instruction builder is needed
func (s *Scope) HasAsyncFunction(instruction *node.Instruction) (bool, error) {
	inputs, err := node.ResolveInstructionInputs(instruction)
	if err != nil {
		return false, err
	}
	return s.HasAsyncDefaultValues(inputs) || s.hasAsyncResolver(instruction), nil
}

//hasAsyncResolver returns true if a byte delta or remaining accounts resolver is async
func (s *Scope) hasAsyncResolver(instruction *node.Instruction) bool {
	for _, delta := range instruction.ByteDeltas {
		if resolver, ok := delta.Value.(*node.ResolverValue); ok && s.IsAsyncResolver(resolver.Name) {
			return true
		}
	}
	for _, remaining := range instruction.RemainingAccounts {
		if resolver, ok := remaining.Value.(*node.ResolverValue); ok && s.IsAsyncResolver(resolver.Name) {
			return true
		}
	}
	return false
}
