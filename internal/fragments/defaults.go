package fragments

import (
	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/naming"
	"github.com/viant/kitgen/node"
)

const resolverScopeDeclaration = "const resolverScope = { programAddress, accounts, args };"

//InstructionDefaults renders a function filling missing instruction inputs from their default values,
//nil when no input has a default to render
func (s *Scope) InstructionDefaults(instruction *node.Instruction, useAsync bool) (*codegen.Fragment, error) {
	inputs, err := node.ResolveInstructionInputs(instruction)
	if err != nil {
		return nil, err
	}
	var statements []*codegen.Fragment
	for _, input := range inputs {
		fragment, err := InstructionInputDefault(s.ForInput(input, instruction.Strategy(), useAsync))
		if err != nil {
			return nil, err
		}
		if fragment == nil {
			continue
		}
		guard := "if (!args." + naming.Camel(input.Name) + ") {\n"
		if input.IsAccount() {
			guard = "if (!accounts." + naming.Camel(input.Name) + ".value) {\n"
		}
		statements = append(statements, fragment.MapContent(func(content string) string {
			return guard + content + "\n}"
		}))
	}
	body := codegen.MergeFragments(statements, codegen.Join("\n"))
	if body == nil {
		return nil, nil
	}
	if body.Has(FeatureResolverScope) {
		body = body.MapContent(func(content string) string {
			return resolverScopeDeclaration + "\n" + content
		})
	}
	function, modifier, result := s.Naming.ProgramDefaultsFunction(instruction.Name), "", "void"
	if useAsync {
		function, modifier, result = s.Naming.ProgramDefaultsAsyncFunction(instruction.Name), "async ", "Promise<void>"
	}
	return codegen.Fragmentf(`export %vfunction %v(programAddress: %v, accounts: Record<string, %v>, args: Record<string, any>): %v {
%v
}`, modifier, function,
		codegen.Use("type Address", codegen.ModuleSolanaAddresses),
		codegen.Use("type ResolvedAccount", codegen.ModuleShared),
		result, body), nil
}

//InstructionPage renders the sync defaults function and, when some default needs awaiting, the async one
func (s *Scope) InstructionPage(instruction *node.Instruction) (*codegen.Fragment, error) {
	syncDefaults, err := s.InstructionDefaults(instruction, false)
	if err != nil {
		return nil, err
	}
	isAsync, err := s.HasAsyncFunction(instruction)
	if err != nil {
		return nil, err
	}
	var asyncDefaults *codegen.Fragment
	if isAsync {
		if asyncDefaults, err = s.InstructionDefaults(instruction, true); err != nil {
			return nil, err
		}
	}
	return codegen.MergeFragments([]*codegen.Fragment{syncDefaults, asyncDefaults}, codegen.Join("\n\n")), nil
}
