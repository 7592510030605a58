package fragments

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/node"
)

func createMetadataInstruction() *node.Instruction {
	return &node.Instruction{
		Name: "createMetadata",
		Accounts: []*node.InstructionAccount{
			{Name: "metadata", IsWritable: true, DefaultValue: &node.PdaValue{
				Pda:   &node.PdaLink{Name: "metadata"},
				Seeds: []*node.PdaSeedValue{{Name: "mint", Value: &node.AccountValue{Name: "mint"}}},
			}},
			{Name: "mint"},
			{Name: "authority", IsSigner: node.SignerTrue, DefaultValue: &node.ResolverValue{Name: "resolveAuthority"}},
			{Name: "systemProgram", DefaultValue: &node.PublicKeyValue{PublicKey: "11111111111111111111111111111111"}},
		},
		Arguments: []*node.InstructionArgument{
			{Name: "amount", Type: node.NewNumberType("u64"), DefaultValue: &node.NumberValue{Number: 1}},
			{Name: "name", Type: &node.StringType{}},
		},
	}
}

func TestScope_InstructionDefaults(t *testing.T) {
	syncBody := strings.Join([]string{
		"const resolverScope = { programAddress, accounts, args };",
		"if (!accounts.authority.value) {\naccounts.authority = { ...accounts.authority, ...resolveAuthority(resolverScope) };\n}",
		"if (!accounts.systemProgram.value) {\naccounts.systemProgram.value = '11111111111111111111111111111111' as Address<'11111111111111111111111111111111'>;\n}",
		"if (!args.amount) {\nargs.amount = 1;\n}",
	}, "\n")
	asyncBody := strings.Join([]string{
		"const resolverScope = { programAddress, accounts, args };",
		"if (!accounts.metadata.value) {\naccounts.metadata.value = await findMetadataPda({ mint: expectAddress(accounts.mint.value) });\n}",
		"if (!accounts.authority.value) {\naccounts.authority = { ...accounts.authority, ...resolveAuthority(resolverScope) };\n}",
		"if (!accounts.systemProgram.value) {\naccounts.systemProgram.value = '11111111111111111111111111111111' as Address<'11111111111111111111111111111111'>;\n}",
		"if (!args.amount) {\nargs.amount = 1;\n}",
	}, "\n")
	var testCases = []struct {
		description string
		useAsync    bool
		expect      string
	}{
		{
			description: "sync",
			expect:      "export function resolveCreateMetadataDefaults(programAddress: Address, accounts: Record<string, ResolvedAccount>, args: Record<string, any>): void {\n" + syncBody + "\n}",
		},
		{
			description: "async",
			useAsync:    true,
			expect:      "export async function resolveCreateMetadataDefaultsAsync(programAddress: Address, accounts: Record<string, ResolvedAccount>, args: Record<string, any>): Promise<void> {\n" + asyncBody + "\n}",
		},
	}
	scope := NewScope()
	for _, testCase := range testCases {
		actual, err := scope.InstructionDefaults(createMetadataInstruction(), testCase.useAsync)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual.Content, testCase.description)
		assert.True(t, actual.Imports.Has(codegen.ModuleShared, "ResolvedAccount"), testCase.description)
		assert.True(t, actual.Imports.Has(codegen.ModuleHooked, "resolveAuthority"), testCase.description)
	}
}

func TestScope_InstructionPage(t *testing.T) {
	scope := NewScope()
	page, err := scope.InstructionPage(createMetadataInstruction())
	require.Nil(t, err)
	parts := strings.Split(page.Content, "\n\n")
	require.Len(t, parts, 2)
	assert.True(t, strings.HasPrefix(parts[0], "export function resolveCreateMetadataDefaults("))
	assert.True(t, strings.HasPrefix(parts[1], "export async function resolveCreateMetadataDefaultsAsync("))

	syncOnly, err := scope.InstructionPage(&node.Instruction{Name: "close", Accounts: []*node.InstructionAccount{
		{Name: "program", DefaultValue: &node.ProgramIdValue{}},
	}})
	require.Nil(t, err)
	assert.False(t, strings.Contains(syncOnly.Content, "async"))
	assert.False(t, strings.Contains(syncOnly.Content, "resolverScope"))
	assert.Contains(t, syncOnly.Content, "accounts.program.value = programAddress;\naccounts.program.isWritable = false;")

	empty, err := scope.InstructionPage(&node.Instruction{Name: "noop", Arguments: []*node.InstructionArgument{{Name: "memo", Type: &node.StringType{}}}})
	assert.Nil(t, err)
	assert.Nil(t, empty)

	_, err = scope.InstructionPage(&node.Instruction{Name: "broken", Accounts: []*node.InstructionAccount{
		{Name: "a", DefaultValue: &node.AccountValue{Name: "b"}},
		{Name: "b", DefaultValue: &node.AccountValue{Name: "a"}},
	}})
	assert.NotNil(t, err)
}
