package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/kitgen/internal/fragments"
	"github.com/viant/kitgen/node"
	"github.com/viant/kitgen/shared/logging"
)

func counterRoot() *node.Root {
	return &node.Root{
		Program: &node.Program{
			Name:      "counter",
			PublicKey: "Counter111111111111111111111111111111111111",
			Instructions: []*node.Instruction{
				{
					Name: "increment",
					Accounts: []*node.InstructionAccount{
						{Name: "counter", IsWritable: true},
						{Name: "systemProgram", DefaultValue: &node.ProgramIdValue{}},
					},
				},
				{Name: "reset", Accounts: []*node.InstructionAccount{{Name: "counter", IsWritable: true}}},
			},
		},
		AdditionalPrograms: []*node.Program{
			{Name: "system_program", PublicKey: "11111111111111111111111111111111"},
		},
	}
}

func newTestService(t *testing.T, options *Options, buffer *bytes.Buffer) *Service {
	srv, err := New(options, WithFS(afs.New()), WithLogger(logging.New(logging.WARN, buffer)))
	require.Nil(t, err)
	return srv
}

func TestService_RenderMap(t *testing.T) {
	srv := newTestService(t, &Options{}, &bytes.Buffer{})
	renderMap, err := srv.RenderMap(context.Background(), counterRoot())
	require.Nil(t, err)
	assert.EqualValues(t, []string{
		"index.ts",
		"instructions/increment.ts",
		"instructions/index.ts",
		"programs/counter.ts",
		"programs/index.ts",
		"programs/systemProgram.ts",
	}, renderMap.Paths())

	pages := renderMap.Render(srv.aliases)
	assert.EqualValues(t, "export * from './instructions';\nexport * from './programs';\n", pages["index.ts"])
	assert.EqualValues(t, "export * from './counter';\nexport * from './systemProgram';\n", pages["programs/index.ts"])
	assert.EqualValues(t, "export * from './increment';\n", pages["instructions/index.ts"])
	assert.EqualValues(t, "import { type Address } from '@solana/kit';\n\nexport const SYSTEM_PROGRAM_PROGRAM_ADDRESS = '11111111111111111111111111111111' as Address<'11111111111111111111111111111111'>;\n", pages["programs/systemProgram.ts"])
	assert.True(t, strings.HasPrefix(pages["programs/counter.ts"], "import { "))
	assert.Contains(t, pages["programs/counter.ts"], "';\n\nexport const COUNTER_PROGRAM_ADDRESS = ")
	assert.Contains(t, pages["programs/counter.ts"], "from '../instructions';")
	assert.True(t, strings.HasPrefix(pages["instructions/increment.ts"], "import { type Address } from '@solana/kit';\nimport { type ResolvedAccount } from '../shared';\n\n"))
	assert.Contains(t, pages["instructions/increment.ts"], "accounts.systemProgram.value = programAddress;\naccounts.systemProgram.isWritable = false;")
}

func TestService_RenderMap_Error(t *testing.T) {
	srv := newTestService(t, &Options{}, &bytes.Buffer{})
	root := counterRoot()
	root.AdditionalPrograms[0].Instructions = []*node.Instruction{
		{Name: "broken", Discriminators: []node.Discriminator{&node.FieldDiscriminator{Name: "kind"}}},
	}
	_, err := srv.RenderMap(context.Background(), root)
	assert.True(t, errors.Is(err, fragments.ErrFieldDiscriminator))
}

func TestService_RenderMap_DuplicatedPage(t *testing.T) {
	var testCases = []struct {
		description string
		program     *node.Program
	}{
		{
			description: "instruction declared by two programs",
			program:     &node.Program{Name: "counterV2", Instructions: []*node.Instruction{{Name: "reset"}}},
		},
		{
			description: "instruction names with the same file name",
			program:     &node.Program{Name: "token", Instructions: []*node.Instruction{{Name: "Increment"}}},
		},
		{
			description: "program names with the same file name",
			program:     &node.Program{Name: "systemProgram"},
		},
	}
	srv := newTestService(t, &Options{}, &bytes.Buffer{})
	for _, testCase := range testCases {
		root := counterRoot()
		root.AdditionalPrograms = append(root.AdditionalPrograms, testCase.program)
		_, err := srv.RenderMap(context.Background(), root)
		assert.True(t, errors.Is(err, ErrDuplicatedPage), testCase.description)
	}
}

func TestService_Render(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	disabled := false
	var testCases = []struct {
		description       string
		baseURL           string
		options           *Options
		packageJSON       string
		expectStale       bool
		expectPackageJSON []string
		expectLog         []string
	}{
		{
			description:       "create package.json",
			baseURL:           "mem://localhost/kitgen/render/case001",
			options:           &Options{SyncPackageJSON: true},
			expectPackageJSON: []string{`"name": "js-client"`, `"peerDependencies": {`, `"@solana/kit": "^5.0.0"`},
		},
		{
			description:       "update package.json keeping folder",
			baseURL:           "mem://localhost/kitgen/render/case002",
			options:           &Options{SyncPackageJSON: true, DeleteFolderBeforeRendering: &disabled},
			packageJSON:       `{"name": "counter-client", "dependencies": {"@solana/kit": "^4.0.0"}}`,
			expectStale:       true,
			expectPackageJSON: []string{`"name": "counter-client"`, `"dependencies": {`, `"@solana/kit": "^5.0.0"`},
		},
		{
			description:       "check only",
			baseURL:           "mem://localhost/kitgen/render/case003",
			options:           &Options{},
			packageJSON:       `{"name": "counter-client"}`,
			expectPackageJSON: []string{`{"name": "counter-client"}`},
			expectLog:         []string{"out-of-date or missing", "- @solana/kit missing: ^5.0.0"},
		},
		{
			description: "sync without package folder",
			baseURL:     "mem://localhost/kitgen/render/case004",
			options:     &Options{SyncPackageJSON: true},
			expectLog:   []string{"cannot sync package.json without PackageFolder option"},
		},
	}

	for _, testCase := range testCases {
		outputURL := testCase.baseURL + "/src/generated"
		if len(testCase.expectPackageJSON) > 0 || testCase.packageJSON != "" {
			testCase.options.PackageFolder = testCase.baseURL
		}
		if testCase.packageJSON != "" {
			require.Nil(t, fs.Upload(ctx, testCase.baseURL+"/package.json", file.DefaultFileOsMode, strings.NewReader(testCase.packageJSON)))
		}
		require.Nil(t, fs.Upload(ctx, outputURL+"/stale.ts", file.DefaultFileOsMode, strings.NewReader("export {};")))

		buffer := &bytes.Buffer{}
		srv := newTestService(t, testCase.options, buffer)
		err := srv.Render(ctx, counterRoot(), outputURL)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}

		page, err := fs.DownloadWithURL(ctx, outputURL+"/programs/counter.ts")
		if assert.Nil(t, err, testCase.description) {
			assert.Contains(t, string(page), "export const COUNTER_PROGRAM_ADDRESS", testCase.description)
		}
		stale, _ := fs.Exists(ctx, outputURL+"/stale.ts")
		assert.EqualValues(t, testCase.expectStale, stale, testCase.description)

		if len(testCase.expectPackageJSON) > 0 {
			data, err := fs.DownloadWithURL(ctx, testCase.baseURL+"/package.json")
			if assert.Nil(t, err, testCase.description) {
				for _, fragment := range testCase.expectPackageJSON {
					assert.Contains(t, string(data), fragment, testCase.description)
				}
			}
		}
		for _, fragment := range testCase.expectLog {
			assert.Contains(t, buffer.String(), fragment, testCase.description)
		}
	}
}
