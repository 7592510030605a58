package node

import (
	"github.com/pkg/errors"
)

const (
	InputAccount  = "account"
	InputArgument = "argument"
)

//ErrCyclicDependency is returned when default values of instruction inputs depend on each other
var ErrCyclicDependency = errors.New("cyclic dependency between instruction inputs")

type (
	//ResolvedInput is an instruction account or argument with its resolved signer and optional status
	ResolvedInput struct {
		InputKind          string
		Name               string
		DefaultValue       DefaultValue
		IsSigner           SignerStatus
		ResolvedIsSigner   SignerStatus
		IsOptional         bool
		ResolvedIsOptional bool
		DependsOn          []DefaultValue
		Account            *InstructionAccount
		Argument           *InstructionArgument
	}

	inputResolver struct {
		instruction *Instruction
		resolved    []*ResolvedInput
		visited     map[string]*ResolvedInput
		stack       map[string]bool
	}
)

func (r *ResolvedInput) IsAccount() bool {
	return r.InputKind == InputAccount
}

//WithDefaultValue returns a copy of the input with another default value
func (r *ResolvedInput) WithDefaultValue(value DefaultValue) *ResolvedInput {
	result := *r
	result.DefaultValue = value
	return &result
}

//ResolveInstructionInputs returns accounts and defaulted arguments ordered so that
//every input follows the inputs its default value depends on
func ResolveInstructionInputs(instruction *Instruction) ([]*ResolvedInput, error) {
	resolver := &inputResolver{
		instruction: instruction,
		visited:     map[string]*ResolvedInput{},
		stack:       map[string]bool{},
	}
	for _, account := range instruction.Accounts {
		if _, err := resolver.resolveAccount(account); err != nil {
			return nil, err
		}
	}
	for _, argument := range instruction.Arguments {
		if argument.DefaultValue == nil {
			continue
		}
		if _, err := resolver.resolveArgument(argument); err != nil {
			return nil, err
		}
	}
	return resolver.resolved, nil
}

func (r *inputResolver) resolveAccount(account *InstructionAccount) (*ResolvedInput, error) {
	input := &ResolvedInput{
		InputKind:          InputAccount,
		Name:               account.Name,
		DefaultValue:       account.DefaultValue,
		IsSigner:           account.IsSigner,
		ResolvedIsSigner:   account.IsSigner,
		IsOptional:         account.IsOptional,
		ResolvedIsOptional: account.IsOptional,
		Account:            account,
	}
	return r.resolve(input)
}

func (r *inputResolver) resolveArgument(argument *InstructionArgument) (*ResolvedInput, error) {
	input := &ResolvedInput{
		InputKind:    InputArgument,
		Name:         argument.Name,
		DefaultValue: argument.DefaultValue,
		Argument:     argument,
	}
	return r.resolve(input)
}

func (r *inputResolver) resolve(input *ResolvedInput) (*ResolvedInput, error) {
	key := input.InputKind + ":" + input.Name
	if resolved, ok := r.visited[key]; ok {
		return resolved, nil
	}
	if r.stack[key] {
		return nil, errors.Wrapf(ErrCyclicDependency, "instruction %v, input %v", r.instruction.Name, input.Name)
	}
	r.stack[key] = true
	defer delete(r.stack, key)

	input.DependsOn = Dependencies(input.DefaultValue)
	for _, dependency := range input.DependsOn {
		resolvedDependency, err := r.resolveDependency(dependency)
		if err != nil {
			return nil, err
		}
		if resolvedDependency == nil || !input.IsAccount() {
			continue
		}
		if _, ok := input.DefaultValue.(*AccountValue); !ok {
			continue
		}
		if input.IsSigner == SignerFalse && resolvedDependency.ResolvedIsSigner != SignerFalse {
			input.ResolvedIsSigner = resolvedDependency.ResolvedIsSigner
		}
		if input.IsOptional {
			input.ResolvedIsOptional = resolvedDependency.ResolvedIsOptional
		}
	}
	r.visited[key] = input
	r.resolved = append(r.resolved, input)
	return input, nil
}

func (r *inputResolver) resolveDependency(dependency DefaultValue) (*ResolvedInput, error) {
	switch actual := dependency.(type) {
	case *AccountValue:
		account := r.instruction.Account(actual.Name)
		if account == nil {
			return nil, errors.Errorf("instruction %v: unknown account %v", r.instruction.Name, actual.Name)
		}
		return r.resolveAccount(account)
	case *ArgumentValue:
		argument := r.instruction.Argument(actual.Name)
		if argument == nil || argument.DefaultValue == nil {
			return nil, nil
		}
		return r.resolveArgument(argument)
	}
	return nil, nil
}

//Dependencies returns account and argument values referenced by a default value
func Dependencies(value DefaultValue) []DefaultValue {
	var result []DefaultValue
	switch actual := value.(type) {
	case *AccountValue, *ArgumentValue:
		result = append(result, actual)
	case *AccountBumpValue:
		result = append(result, &AccountValue{Name: actual.Name})
	case *PdaValue:
		if actual.ProgramID != nil {
			result = append(result, Dependencies(actual.ProgramID)...)
		}
		for _, seed := range actual.Seeds {
			result = append(result, Dependencies(seed.Value)...)
		}
	case *ResolverValue:
		for _, dependency := range actual.DependsOn {
			result = append(result, Dependencies(dependency)...)
		}
	case *ConditionalValue:
		for _, nested := range []DefaultValue{actual.Condition, actual.IfTrue, actual.IfFalse} {
			if nested != nil {
				result = append(result, Dependencies(nested)...)
			}
		}
	}
	return result
}
