package fragments

import (
	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/node"
)

//ProgramInstructions renders the instructions enum, identify function, parsed union type and parse function,
//nil when the program has no instructions
func (s *Scope) ProgramInstructions(program *node.Program) (*codegen.Fragment, error) {
	if len(program.Instructions) == 0 {
		return nil, nil
	}
	instructions := program.AllInstructions(!s.RenderParentInstructions)
	enum := s.Naming.ProgramInstructionsEnum(program.Name)
	var variants []string
	var conditions []*codegen.Fragment
	for _, instruction := range instructions {
		variant := s.Naming.ProgramInstructionsEnumVariant(instruction.Name)
		variants = append(variants, variant)
		if len(instruction.Discriminators) == 0 {
			continue
		}
		condition, err := s.DiscriminatorCondition("data", instruction.Discriminators, instruction.ArgumentsStruct(), "return "+enum+"."+variant+";")
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, condition)
	}

	var parts = []*codegen.Fragment{enumDeclaration(enum, variants)}
	if len(conditions) > 0 {
		parts = append(parts, identifyFunction(identifier{
			function:    s.Naming.ProgramInstructionsIdentifierFunction(program.Name),
			argument:    "instruction",
			enum:        enum,
			errorCode:   "SOLANA_ERROR__PROGRAM_CLIENTS__FAILED_TO_IDENTIFY_INSTRUCTION",
			dataKey:     "instructionData",
			programName: program.Name,
		}, conditions))
	}
	parts = append(parts, s.parsedInstructionUnion(program, instructions))
	if len(conditions) > 0 {
		parts = append(parts, s.parseInstructionFunction(program, instructions))
	}
	return codegen.MergeFragments(parts, codegen.Join("\n\n")), nil
}

func (s *Scope) parsedInstructionUnion(program *node.Program, instructions []*node.Instruction) *codegen.Fragment {
	enum := s.Naming.ProgramInstructionsEnum(program.Name)
	var lines = []*codegen.Fragment{
		codegen.Fragmentf("export type %v<TProgram extends string = '%v'> =", s.Naming.ProgramInstructionsParsedUnionType(program.Name), program.PublicKey),
	}
	for _, instruction := range instructions {
		parsedType := codegen.Use("type "+s.Naming.InstructionParsedType(instruction.Name), s.ImportFrom(instruction))
		variant := s.Naming.ProgramInstructionsEnumVariant(instruction.Name)
		lines = append(lines, codegen.Fragmentf("| { instructionType: %v.%v } & %v<TProgram>", enum, variant, parsedType))
	}
	return codegen.MergeFragments(lines, codegen.Join("\n"))
}

func (s *Scope) parseInstructionFunction(program *node.Program, instructions []*node.Instruction) *codegen.Fragment {
	enum := s.Naming.ProgramInstructionsEnum(program.Name)
	var cases []*codegen.Fragment
	for _, instruction := range instructions {
		variant := s.Naming.ProgramInstructionsEnumVariant(instruction.Name)
		parse := codegen.Use(s.Naming.InstructionParseFunction(instruction.Name), s.ImportFrom(instruction))
		var assertion *codegen.Fragment
		if len(instruction.Accounts) > 0 {
			assertion = codegen.Fragmentf("%v(instruction);\n", codegen.Use("assertIsInstructionWithAccounts", codegen.ModuleSolanaInstructions))
		}
		cases = append(cases, codegen.Fragmentf("case %v.%v: { %vreturn { instructionType: %v.%v, ...%v(instruction) }; }",
			enum, variant, assertion, enum, variant, parse))
	}
	return codegen.Fragmentf(`export function %v<TProgram extends string>(
    instruction: %v<TProgram> & %v<%v>
): %v<TProgram> {
    const instructionType = %v(instruction);
    switch (instructionType) {
        %v
        default: throw new %v(%v, { instructionType: instructionType as string, programName: "%v" });
    }
}`,
		s.Naming.ProgramInstructionsParseFunction(program.Name),
		codegen.Use("type Instruction", codegen.ModuleSolanaInstructions),
		codegen.Use("type InstructionWithData", codegen.ModuleSolanaInstructions),
		codegen.Use("type ReadonlyUint8Array", codegen.ModuleSolanaCodecsCore),
		s.Naming.ProgramInstructionsParsedUnionType(program.Name),
		s.Naming.ProgramInstructionsIdentifierFunction(program.Name),
		codegen.MergeFragments(cases, codegen.Join("\n")),
		codegen.Use("SolanaError", codegen.ModuleSolanaErrors),
		codegen.Use("SOLANA_ERROR__PROGRAM_CLIENTS__UNRECOGNIZED_INSTRUCTION_TYPE", codegen.ModuleSolanaErrors),
		program.Name)
}
