package fragments

import (
	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/node"
)

//ProgramConstant renders the program address constant
func (s *Scope) ProgramConstant(program *node.Program) *codegen.Fragment {
	return codegen.Fragmentf("export const %v = %v;", s.Naming.ProgramAddressConstant(program.Name), addressLiteral(program.PublicKey))
}

//ProgramPage renders the program address, accounts, instructions and plugin of program
func (s *Scope) ProgramPage(program *node.Program) (*codegen.Fragment, error) {
	accounts, err := s.ProgramAccounts(program)
	if err != nil {
		return nil, err
	}
	instructions, err := s.ProgramInstructions(program)
	if err != nil {
		return nil, err
	}
	plugin, err := s.ProgramPlugin(program)
	if err != nil {
		return nil, err
	}
	parts := []*codegen.Fragment{s.ProgramConstant(program), accounts, instructions, plugin}
	return codegen.MergeFragments(parts, codegen.Join("\n\n")), nil
}
