package fragments

import (
	"strings"

	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/node"
)

type identifier struct {
	function    string
	argument    string
	enum        string
	errorCode   string
	dataKey     string
	programName string
}

//ProgramAccounts renders the accounts enum and identify function, nil when the program has no accounts
func (s *Scope) ProgramAccounts(program *node.Program) (*codegen.Fragment, error) {
	if len(program.Accounts) == 0 {
		return nil, nil
	}
	enum := s.Naming.ProgramAccountsEnum(program.Name)
	var variants []string
	var conditions []*codegen.Fragment
	for _, account := range program.Accounts {
		variant := s.Naming.ProgramAccountsEnumVariant(account.Name)
		variants = append(variants, variant)
		if len(account.Discriminators) == 0 {
			continue
		}
		condition, err := s.DiscriminatorCondition("data", account.Discriminators, account.Data, "return "+enum+"."+variant+";")
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, condition)
	}
	enumFragment := enumDeclaration(enum, variants)
	if len(conditions) == 0 {
		return enumFragment, nil
	}
	identify := identifyFunction(identifier{
		function:    s.Naming.ProgramAccountsIdentifierFunction(program.Name),
		argument:    "account",
		enum:        enum,
		errorCode:   "SOLANA_ERROR__PROGRAM_CLIENTS__FAILED_TO_IDENTIFY_ACCOUNT",
		dataKey:     "accountData",
		programName: program.Name,
	}, conditions)
	return codegen.MergeFragments([]*codegen.Fragment{enumFragment, identify}, codegen.Join("\n\n")), nil
}

func enumDeclaration(name string, variants []string) *codegen.Fragment {
	return codegen.Fragmentf("export enum %v { %v }", name, strings.Join(variants, ", "))
}

func identifyFunction(id identifier, conditions []*codegen.Fragment) *codegen.Fragment {
	readonlyUint8Array := codegen.Use("type ReadonlyUint8Array", codegen.ModuleSolanaCodecsCore)
	solanaError := codegen.Use("SolanaError", codegen.ModuleSolanaErrors)
	errorCode := codegen.Use(id.errorCode, codegen.ModuleSolanaErrors)
	body := codegen.MergeFragments(conditions, codegen.Join("\n"))
	return codegen.Fragmentf(`export function %v(%v: { data: %v } | %v): %v {
    const data = 'data' in %v ? %v.data : %v;
    %v
    throw new %v(%v, { %v: data, programName: "%v" });
}`, id.function, id.argument, readonlyUint8Array, readonlyUint8Array, id.enum,
		id.argument, id.argument, id.argument,
		body,
		solanaError, errorCode, id.dataKey, id.programName)
}
