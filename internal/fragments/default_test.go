package fragments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/node"
)

func accountInput(name string, value node.DefaultValue) *node.ResolvedInput {
	return &node.ResolvedInput{InputKind: node.InputAccount, Name: name, DefaultValue: value}
}

func argumentInput(name string, value node.DefaultValue) *node.ResolvedInput {
	return &node.ResolvedInput{InputKind: node.InputArgument, Name: name, DefaultValue: value}
}

func TestInstructionInputDefault(t *testing.T) {
	var testCases = []struct {
		description string
		input       *node.ResolvedInput
		useAsync    bool
		expect      string
		imports     [][2]string
		feature     bool
	}{
		{
			description: "account resolved as signer",
			input:       &node.ResolvedInput{InputKind: node.InputAccount, Name: "authority", DefaultValue: &node.AccountValue{Name: "owner"}, ResolvedIsSigner: node.SignerTrue},
			expect:      "accounts.authority.value = expectTransactionSigner(accounts.owner.value).address;",
			imports:     [][2]string{{codegen.ModuleShared, "expectTransactionSigner"}},
		},
		{
			description: "account from account",
			input:       accountInput("source", &node.AccountValue{Name: "owner"}),
			expect:      "accounts.source.value = expectSome(accounts.owner.value);",
			imports:     [][2]string{{codegen.ModuleShared, "expectSome"}},
		},
		{
			description: "argument from account",
			input:       argumentInput("owner", &node.AccountValue{Name: "owner"}),
			expect:      "args.owner = expectAddress(accounts.owner.value);",
			imports:     [][2]string{{codegen.ModuleShared, "expectAddress"}},
		},
		{
			description: "argument from argument",
			input:       argumentInput("amount", &node.ArgumentValue{Name: "total"}),
			expect:      "args.amount = expectSome(args.total);",
		},
		{
			description: "literal",
			input:       argumentInput("amount", &node.NumberValue{Number: 42}),
			expect:      "args.amount = 42;",
		},
		{
			description: "public key",
			input:       accountInput("systemProgram", &node.PublicKeyValue{PublicKey: "11111111111111111111111111111111"}),
			expect:      "accounts.systemProgram.value = '11111111111111111111111111111111' as Address<'11111111111111111111111111111111'>;",
			imports:     [][2]string{{codegen.ModuleSolanaAddresses, "Address"}},
		},
		{
			description: "program link",
			input:       accountInput("tokenProgram", &node.ProgramLink{Name: "splToken"}),
			expect:      "accounts.tokenProgram.value = SPL_TOKEN_PROGRAM_ADDRESS;\naccounts.tokenProgram.isWritable = false;",
			imports:     [][2]string{{codegen.ModuleGeneratedPrograms, "SPL_TOKEN_PROGRAM_ADDRESS"}},
		},
		{
			description: "program id on optional account",
			input:       &node.ResolvedInput{InputKind: node.InputAccount, Name: "program", DefaultValue: &node.ProgramIdValue{}, IsOptional: true},
		},
		{
			description: "program id",
			input:       accountInput("program", &node.ProgramIdValue{}),
			expect:      "accounts.program.value = programAddress;\naccounts.program.isWritable = false;",
		},
		{
			description: "identity",
			input:       accountInput("authority", &node.IdentityValue{}),
		},
		{
			description: "payer",
			input:       accountInput("payer", &node.PayerValue{}),
		},
		{
			description: "account bump",
			input:       argumentInput("bump", &node.AccountBumpValue{Name: "metadata"}),
			expect:      "args.bump = expectProgramDerivedAddress(accounts.metadata.value)[1];",
		},
		{
			description: "resolver on account",
			input:       accountInput("authority", &node.ResolverValue{Name: "resolveAuthority"}),
			expect:      "accounts.authority = { ...accounts.authority, ...resolveAuthority(resolverScope) };",
			imports:     [][2]string{{codegen.ModuleHooked, "resolveAuthority"}},
			feature:     true,
		},
		{
			description: "async resolver",
			input:       argumentInput("amount", &node.ResolverValue{Name: "resolveAmount"}),
			useAsync:    true,
			expect:      "args.amount = await resolveAmount(resolverScope);",
			feature:     true,
		},
		{
			description: "async resolver in sync builder",
			input:       argumentInput("amount", &node.ResolverValue{Name: "resolveAmount"}),
		},
		{
			description: "linked pda",
			input: accountInput("metadata", &node.PdaValue{Pda: &node.PdaLink{Name: "metadata"}, Seeds: []*node.PdaSeedValue{
				{Name: "mint", Value: &node.AccountValue{Name: "mint"}},
				{Name: "edition", Value: &node.ArgumentValue{Name: "edition"}},
				{Name: "version", Value: &node.NumberValue{Number: 1}},
			}}),
			useAsync: true,
			expect:   "accounts.metadata.value = await findMetadataPda({ mint: expectAddress(accounts.mint.value), edition: expectSome(args.edition), version: 1 });",
			imports:  [][2]string{{codegen.ModuleGeneratedPdas, "findMetadataPda"}, {codegen.ModuleShared, "expectSome"}},
		},
		{
			description: "linked pda with snake case names",
			input: accountInput("meta_data", &node.PdaValue{Pda: &node.PdaLink{Name: "meta_data"}, Seeds: []*node.PdaSeedValue{
				{Name: "mint_account", Value: &node.AccountValue{Name: "mint_account"}},
				{Name: "edition_number", Value: &node.ArgumentValue{Name: "edition_number"}},
				{Name: "seed_version", Value: &node.NumberValue{Number: 1}},
			}}),
			useAsync: true,
			expect:   "accounts.metaData.value = await findMetaDataPda({ mintAccount: expectAddress(accounts.mintAccount.value), editionNumber: expectSome(args.editionNumber), seedVersion: 1 });",
		},
		{
			description: "linked pda with program override",
			input:       accountInput("config", &node.PdaValue{Pda: &node.PdaLink{Name: "config"}, ProgramID: &node.AccountValue{Name: "program"}}),
			useAsync:    true,
			expect:      "accounts.config.value = await findConfigPda({ programAddress: expectAddress(accounts.program.value) });",
		},
		{
			description: "inline pda",
			input: accountInput("vault", &node.PdaValue{
				Pda: &node.Pda{Name: "vault", Seeds: []node.PdaSeed{
					&node.ConstantPdaSeed{Type: &node.StringType{Encoding: "utf8"}, Value: &node.StringValue{String: "vault"}},
					&node.ConstantPdaSeed{Type: &node.PublicKeyType{}, Value: &node.ProgramIdValue{}},
					&node.VariablePdaSeed{Name: "owner", Type: &node.PublicKeyType{}},
					&node.VariablePdaSeed{Name: "missing", Type: &node.PublicKeyType{}},
				}},
				Seeds: []*node.PdaSeedValue{{Name: "owner", Value: &node.AccountValue{Name: "owner"}}},
			}),
			useAsync: true,
			expect:   `accounts.vault.value = await getProgramDerivedAddress({ programAddress, seeds: [getUtf8Encoder().encode("vault"), getAddressEncoder().encode(programAddress), getAddressEncoder().encode(expectAddress(accounts.owner.value))] });`,
			imports:  [][2]string{{codegen.ModuleSolanaAddresses, "getProgramDerivedAddress"}, {codegen.ModuleSolanaCodecsStrings, "getUtf8Encoder"}},
		},
		{
			description: "inline pda of another program",
			input:       accountInput("vault", &node.PdaValue{Pda: &node.Pda{Name: "vault", ProgramID: "Prog111"}}),
			useAsync:    true,
			expect:      "accounts.vault.value = await getProgramDerivedAddress({ programAddress: 'Prog111' as Address<'Prog111'>, seeds: [] });",
		},
		{
			description: "pda in sync builder",
			input:       accountInput("vault", &node.PdaValue{Pda: &node.PdaLink{Name: "vault"}}),
		},
		{
			description: "conditional with both branches",
			input: accountInput("tokenProgram", &node.ConditionalValue{
				Condition: &node.AccountValue{Name: "mint"},
				IfTrue:    &node.ProgramLink{Name: "splToken"},
				IfFalse:   &node.PublicKeyValue{PublicKey: "pk"},
			}),
			expect:  "if (accounts.mint.value) {\naccounts.tokenProgram.value = SPL_TOKEN_PROGRAM_ADDRESS;\naccounts.tokenProgram.isWritable = false;\n} else {\naccounts.tokenProgram.value = 'pk' as Address<'pk'>;\n}",
			imports: [][2]string{{codegen.ModuleGeneratedPrograms, "SPL_TOKEN_PROGRAM_ADDRESS"}, {codegen.ModuleSolanaAddresses, "Address"}},
		},
		{
			description: "conditional with only false branch and compared value",
			input: argumentInput("amount", &node.ConditionalValue{
				Condition: &node.ArgumentValue{Name: "kind"},
				Value:     &node.SomeValue{Value: &node.NumberValue{Number: 1}},
				IfFalse:   &node.ArgumentValue{Name: "other"},
			}),
			expect:  "if (args.kind !== some(1)) {\nargs.amount = expectSome(args.other);\n}",
			imports: [][2]string{{codegen.ModuleSolanaOptions, "some"}},
		},
		{
			description: "conditional with only true branch",
			input: argumentInput("amount", &node.ConditionalValue{
				Condition: &node.ArgumentValue{Name: "kind"},
				IfTrue:    &node.NumberValue{Number: 5},
			}),
			expect: "if (args.kind) {\nargs.amount = 5;\n}",
		},
		{
			description: "negated async resolver condition",
			input: accountInput("program", &node.ConditionalValue{
				Condition: &node.ResolverValue{Name: "resolveAmount"},
				IfFalse:   &node.ProgramIdValue{},
			}),
			useAsync: true,
			expect:   "if (!await resolveAmount(resolverScope)) {\naccounts.program.value = programAddress;\naccounts.program.isWritable = false;\n}",
			imports:  [][2]string{{codegen.ModuleHooked, "resolveAmount"}},
			feature:  true,
		},
		{
			description: "conditional without branches to render",
			input: accountInput("authority", &node.ConditionalValue{
				Condition: &node.AccountValue{Name: "mint"},
				IfTrue:    &node.IdentityValue{},
				IfFalse:   &node.PayerValue{},
			}),
		},
	}

	scope := NewScope(WithAsyncResolvers("resolveAmount"))
	for _, testCase := range testCases {
		actual, err := InstructionInputDefault(scope.ForInput(testCase.input, node.OptionalAccountStrategyProgramID, testCase.useAsync))
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		if testCase.expect == "" {
			assert.Nil(t, actual, testCase.description)
			continue
		}
		if !assert.NotNil(t, actual, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual.Content, testCase.description)
		for _, expected := range testCase.imports {
			assert.True(t, actual.Imports.Has(expected[0], expected[1]), testCase.description+": "+expected[1])
		}
		assert.EqualValues(t, testCase.feature, actual.Has(FeatureResolverScope), testCase.description)
	}
}

func TestInstructionInputDefault_LinkOverrides(t *testing.T) {
	scope := NewScope(WithLinkOverrides(&LinkOverrides{
		Pdas:      map[string]string{"metadata": "mplTokenMetadata"},
		Resolvers: map[string]string{"resolveAuthority": "customResolvers"},
	}))
	pda, err := InstructionInputDefault(scope.ForInput(accountInput("metadata", &node.PdaValue{Pda: &node.PdaLink{Name: "metadata"}}), "", true))
	assert.Nil(t, err)
	assert.True(t, pda.Imports.Has("mplTokenMetadata", "findMetadataPda"))

	resolver, err := InstructionInputDefault(scope.ForInput(argumentInput("authority", &node.ResolverValue{Name: "resolveAuthority"}), "", false))
	assert.Nil(t, err)
	assert.True(t, resolver.Imports.Has("customResolvers", "resolveAuthority"))
}

func TestScope_IsAsyncDefaultValue(t *testing.T) {
	scope := NewScope(WithAsyncResolvers("fetchRemote"))
	var testCases = []struct {
		description string
		value       node.DefaultValue
		expect      bool
	}{
		{description: "pda", value: &node.PdaValue{Pda: &node.PdaLink{Name: "x"}}, expect: true},
		{description: "async resolver", value: &node.ResolverValue{Name: "fetchRemote"}, expect: true},
		{description: "sync resolver", value: &node.ResolverValue{Name: "local"}},
		{description: "literal", value: &node.NumberValue{Number: 1}},
		{description: "async condition", value: &node.ConditionalValue{Condition: &node.ResolverValue{Name: "fetchRemote"}, IfTrue: &node.ProgramIdValue{}}, expect: true},
		{description: "async false branch", value: &node.ConditionalValue{Condition: &node.AccountValue{Name: "a"}, IfFalse: &node.PdaValue{Pda: &node.PdaLink{Name: "x"}}}, expect: true},
		{description: "sync conditional", value: &node.ConditionalValue{Condition: &node.AccountValue{Name: "a"}, IfTrue: &node.ResolverValue{Name: "local"}}},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, scope.IsAsyncDefaultValue(testCase.value), testCase.description)
	}

	asyncInstruction := &node.Instruction{Name: "create", Arguments: []*node.InstructionArgument{
		{Name: "amount", Type: node.NewNumberType("u64"), DefaultValue: &node.ConditionalValue{
			Condition: &node.ArgumentValue{Name: "kind"},
			IfTrue:    &node.ResolverValue{Name: "fetchRemote"},
		}},
	}}
	actual, err := scope.HasAsyncFunction(asyncInstruction)
	assert.Nil(t, err)
	assert.True(t, actual)

	syncInstruction := &node.Instruction{Name: "close", Accounts: []*node.InstructionAccount{{Name: "program", DefaultValue: &node.ProgramIdValue{}}}}
	actual, err = scope.HasAsyncFunction(syncInstruction)
	assert.Nil(t, err)
	assert.False(t, actual)
}

func TestScope_HasAsyncFunction(t *testing.T) {
	scope := NewScope(WithAsyncResolvers("fetchRemote"))
	var testCases = []struct {
		description string
		instruction *node.Instruction
		expect      bool
	}{
		{
			description: "async byte delta resolver",
			instruction: &node.Instruction{Name: "resize", ByteDeltas: []*node.ByteDelta{{Value: &node.ResolverValue{Name: "fetchRemote"}}}},
			expect:      true,
		},
		{
			description: "sync byte delta resolver",
			instruction: &node.Instruction{Name: "resize", ByteDeltas: []*node.ByteDelta{{Value: &node.ResolverValue{Name: "local"}}, {AccountLink: "vault"}}},
		},
		{
			description: "async remaining accounts resolver",
			instruction: &node.Instruction{Name: "transfer", RemainingAccounts: []*node.RemainingAccounts{{Value: &node.ResolverValue{Name: "fetchRemote"}}}},
			expect:      true,
		},
		{
			description: "remaining accounts from argument",
			instruction: &node.Instruction{Name: "transfer", RemainingAccounts: []*node.RemainingAccounts{{Value: &node.ArgumentValue{Name: "signers"}}}},
		},
	}
	for _, testCase := range testCases {
		actual, err := scope.HasAsyncFunction(testCase.instruction)
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
