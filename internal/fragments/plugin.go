package fragments

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/naming"
	"github.com/viant/kitgen/node"
)

//ErrDuplicatedArguments is returned when an instruction declares the same argument twice
var ErrDuplicatedArguments = errors.New("duplicated instruction arguments")

const makeOptionalHelper = "type MakeOptional<T, K extends keyof T> = Omit<T, K> & Partial<Pick<T, K>>;"

type (
	payerInput struct {
		name   string
		signer bool
	}

	pluginBuilder struct {
		*Scope
		program *node.Program
		async   map[string]bool
		payers  map[string][]*payerInput
	}
)

//RenamedArgs returns argument names, extra arguments included, colliding with account names mapped to their generated field name
func RenamedArgs(instruction *node.Instruction) (map[string]string, error) {
	var seen = map[string]bool{}
	var duplicated []string
	for _, arguments := range [][]*node.InstructionArgument{instruction.Arguments, instruction.ExtraArguments} {
		for _, argument := range arguments {
			name := naming.Camel(argument.Name)
			if seen[name] {
				duplicated = append(duplicated, name)
			}
			seen[name] = true
		}
	}
	if len(duplicated) > 0 {
		return nil, errors.Wrapf(ErrDuplicatedArguments, "[%v] in instruction %v", strings.Join(duplicated, ", "), instruction.Name)
	}
	var result = map[string]string{}
	for _, account := range instruction.Accounts {
		name := naming.Camel(account.Name)
		if seen[name] {
			result[name] = name + "Arg"
		}
	}
	return result, nil
}

//ProgramPlugin renders the program plugin types and function, nil when the program has no accounts and no instructions
func (s *Scope) ProgramPlugin(program *node.Program) (*codegen.Fragment, error) {
	if len(program.Accounts) == 0 && len(program.Instructions) == 0 {
		return nil, nil
	}
	builder := &pluginBuilder{Scope: s, program: program, async: map[string]bool{}, payers: map[string][]*payerInput{}}
	if err := builder.init(); err != nil {
		return nil, err
	}
	return codegen.MergeFragments([]*codegen.Fragment{
		builder.pluginType(),
		builder.accountsType(),
		builder.instructionsType(),
		builder.requirementsType(),
		builder.pluginFunction(),
		builder.makeOptionalType(),
	}, codegen.Join("\n\n")), nil
}

func (b *pluginBuilder) init() error {
	for _, instruction := range b.program.Instructions {
		isAsync, err := b.HasAsyncFunction(instruction)
		if err != nil {
			return err
		}
		b.async[instruction.Name] = isAsync
		payers, err := payerInputs(instruction)
		if err != nil {
			return err
		}
		b.payers[instruction.Name] = payers
	}
	return nil
}

//payerInputs returns non optional inputs defaulting to the payer, accounts first
func payerInputs(instruction *node.Instruction) ([]*payerInput, error) {
	var result []*payerInput
	for _, account := range instruction.Accounts {
		if _, ok := account.DefaultValue.(*node.PayerValue); ok && !account.IsOptional {
			result = append(result, &payerInput{name: naming.Camel(account.Name), signer: account.IsSigner != node.SignerFalse})
		}
	}
	var renamed map[string]string
	for _, argument := range instruction.Arguments {
		if _, ok := argument.DefaultValue.(*node.PayerValue); !ok {
			continue
		}
		if renamed == nil {
			var err error
			if renamed, err = RenamedArgs(instruction); err != nil {
				return nil, err
			}
		}
		name := naming.Camel(argument.Name)
		if rename, ok := renamed[name]; ok {
			name = rename
		}
		result = append(result, &payerInput{name: name})
	}
	return result, nil
}

func (b *pluginBuilder) hasPayers() bool {
	for _, payers := range b.payers {
		if len(payers) > 0 {
			return true
		}
	}
	return false
}

func (b *pluginBuilder) pluginType() *codegen.Fragment {
	var fields []string
	if len(b.program.Accounts) > 0 {
		fields = append(fields, "accounts: "+b.Naming.ProgramPluginAccountsType(b.program.Name)+";")
	}
	if len(b.program.Instructions) > 0 {
		fields = append(fields, "instructions: "+b.Naming.ProgramPluginInstructionsType(b.program.Name)+";")
	}
	return codegen.Fragmentf("export type %v = { %v }", b.Naming.ProgramPluginType(b.program.Name), strings.Join(fields, " "))
}

func (b *pluginBuilder) accountsType() *codegen.Fragment {
	if len(b.program.Accounts) == 0 {
		return nil
	}
	selfFetch := codegen.Use("type SelfFetchFunctions", codegen.ModuleSolanaProgramClientCore)
	var fields []*codegen.Fragment
	for _, account := range b.program.Accounts {
		module := b.ImportFrom(account)
		fields = append(fields, codegen.Fragmentf("%v: ReturnType<typeof %v> & %v<%v, %v>;",
			b.Naming.ProgramPluginAccountKey(account.Name),
			codegen.Use("type "+b.Naming.CodecFunction(account.Name), module),
			selfFetch,
			codegen.Use("type "+b.Naming.DataArgsType(account.Name), module),
			codegen.Use("type "+b.Naming.DataType(account.Name), module)))
	}
	return codegen.Fragmentf("export type %v = { %v }", b.Naming.ProgramPluginAccountsType(b.program.Name), codegen.MergeFragments(fields, codegen.Join(" ")))
}

func (b *pluginBuilder) inputType(instruction *node.Instruction) *codegen.Fragment {
	if b.async[instruction.Name] {
		return codegen.Use("type "+b.Naming.InstructionAsyncInputType(instruction.Name), b.ImportFrom(instruction))
	}
	return codegen.Use("type "+b.Naming.InstructionSyncInputType(instruction.Name), b.ImportFrom(instruction))
}

func (b *pluginBuilder) instructionsType() *codegen.Fragment {
	if len(b.program.Instructions) == 0 {
		return nil
	}
	selfPlanAndSend := codegen.Use("type SelfPlanAndSendFunctions", codegen.ModuleSolanaProgramClientCore)
	var fields []*codegen.Fragment
	for _, instruction := range b.program.Instructions {
		instructionType := codegen.Use("type "+b.Naming.InstructionType(instruction.Name), b.ImportFrom(instruction))
		if b.async[instruction.Name] {
			instructionType = codegen.Fragmentf("Promise<%v>", instructionType)
		}
		fields = append(fields, codegen.Fragmentf("%v: (input: %v) => %v & %v;",
			b.Naming.ProgramPluginInstructionKey(instruction.Name), b.inputType(instruction), instructionType, selfPlanAndSend))
	}
	return codegen.Fragmentf("export type %v = { %v }", b.Naming.ProgramPluginInstructionsType(b.program.Name), codegen.MergeFragments(fields, codegen.Join(" ")))
}

func (b *pluginBuilder) requirementsType() *codegen.Fragment {
	var requirements []*codegen.Fragment
	if len(b.program.Accounts) > 0 {
		requirements = append(requirements, codegen.Fragmentf("%v<%v & %v>",
			codegen.Use("type ClientWithRpc", codegen.ModuleSolanaPluginInterfaces),
			codegen.Use("type GetAccountInfoApi", codegen.ModuleSolanaRpcApi),
			codegen.Use("type GetMultipleAccountsApi", codegen.ModuleSolanaRpcApi)))
	}
	if b.hasPayers() {
		requirements = append(requirements, codegen.Use("type ClientWithPayer", codegen.ModuleSolanaPluginInterfaces))
	}
	if len(b.program.Instructions) > 0 {
		requirements = append(requirements,
			codegen.Use("type ClientWithTransactionPlanning", codegen.ModuleSolanaPluginInterfaces),
			codegen.Use("type ClientWithTransactionSending", codegen.ModuleSolanaPluginInterfaces))
	}
	return codegen.Fragmentf("export type %v = %v", b.Naming.ProgramPluginRequirementsType(b.program.Name), codegen.MergeFragments(requirements, codegen.Join(" & ")))
}

func (b *pluginBuilder) pluginFunction() *codegen.Fragment {
	fields := codegen.MergeFragments([]*codegen.Fragment{b.accountsObject(), b.instructionsObject()}, codegen.Join(", "))
	return codegen.Fragmentf(`export function %v() {
    return <T extends %v>(client: T) => {
        return { ...client, %v: { %v} as %v };
    };
}`, b.Naming.ProgramPluginFunction(b.program.Name), b.Naming.ProgramPluginRequirementsType(b.program.Name),
		b.Naming.ProgramPluginKey(b.program.Name), fields, b.Naming.ProgramPluginType(b.program.Name))
}

func (b *pluginBuilder) accountsObject() *codegen.Fragment {
	if len(b.program.Accounts) == 0 {
		return nil
	}
	var fields []*codegen.Fragment
	for _, account := range b.program.Accounts {
		fields = append(fields, codegen.Fragmentf("%v: %v(client, %v())",
			b.Naming.ProgramPluginAccountKey(account.Name),
			codegen.Use("addSelfFetchFunctions", codegen.ModuleSolanaProgramClientCore),
			codegen.Use(b.Naming.CodecFunction(account.Name), b.ImportFrom(account))))
	}
	return codegen.Fragmentf("accounts: { %v }", codegen.MergeFragments(fields, codegen.Join(", ")))
}

func (b *pluginBuilder) instructionsObject() *codegen.Fragment {
	if len(b.program.Instructions) == 0 {
		return nil
	}
	addSelfPlanAndSend := codegen.Use("addSelfPlanAndSendFunctions", codegen.ModuleSolanaProgramClientCore)
	var fields []*codegen.Fragment
	for _, instruction := range b.program.Instructions {
		name := b.Naming.ProgramPluginInstructionKey(instruction.Name)
		function := codegen.Use(b.Naming.InstructionSyncFunction(instruction.Name), b.ImportFrom(instruction))
		if b.async[instruction.Name] {
			function = codegen.Use(b.Naming.InstructionAsyncFunction(instruction.Name), b.ImportFrom(instruction))
		}
		payers := b.payers[instruction.Name]
		if len(payers) == 0 {
			fields = append(fields, codegen.Fragmentf("%v: (input: %v) => %v(client, %v(input))", name, b.inputType(instruction), addSelfPlanAndSend, function))
			continue
		}
		var union, overrides []string
		for _, payer := range payers {
			union = append(union, `"`+payer.name+`"`)
			payerValue := "client.payer.address"
			if payer.signer {
				payerValue = "client.payer"
			}
			overrides = append(overrides, payer.name+": input."+payer.name+" ?? "+payerValue)
		}
		fields = append(fields, codegen.Fragmentf("%v: (input: MakeOptional<%v, %v>) => %v(client, %v({ ...input, %v }))",
			name, b.inputType(instruction), strings.Join(union, " | "), addSelfPlanAndSend, function, strings.Join(overrides, ", ")))
	}
	return codegen.Fragmentf("instructions: { %v }", codegen.MergeFragments(fields, codegen.Join(", ")))
}

func (b *pluginBuilder) makeOptionalType() *codegen.Fragment {
	if !b.hasPayers() {
		return nil
	}
	return codegen.NewFragment(makeOptionalHelper)
}
