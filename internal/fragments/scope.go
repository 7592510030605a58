package fragments

import (
	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/internal/manifest"
	"github.com/viant/kitgen/naming"
	"github.com/viant/kitgen/node"
)

type (
	//LinkOverrides maps linked node names to the module they are imported from
	LinkOverrides struct {
		Accounts     map[string]string `yaml:"accounts,omitempty"`
		DefinedTypes map[string]string `yaml:"definedTypes,omitempty"`
		Instructions map[string]string `yaml:"instructions,omitempty"`
		Pdas         map[string]string `yaml:"pdas,omitempty"`
		Programs     map[string]string `yaml:"programs,omitempty"`
		Resolvers    map[string]string `yaml:"resolvers,omitempty"`
	}

	//Scope carries rendering settings shared by all fragments of a run
	Scope struct {
		Naming                   *naming.API
		Manifest                 *manifest.Manifest
		AsyncResolvers           []string
		RenderParentInstructions bool
		LinkOverrides            *LinkOverrides
	}

	Option func(s *Scope)

	//DefaultScope is the context of a single instruction input default value
	DefaultScope struct {
		*Scope
		Input                   *node.ResolvedInput
		OptionalAccountStrategy string
		UseAsync                bool
	}
)

//ImportFrom returns the module a linked node is imported from
func (s *Scope) ImportFrom(link node.Link) string {
	overrides := s.LinkOverrides
	if overrides == nil {
		overrides = &LinkOverrides{}
	}
	name := link.LinkName()
	switch link.Kind() {
	case node.KindAccount:
		return lookup(overrides.Accounts, name, codegen.ModuleGeneratedAccounts)
	case node.KindDefinedTypeLink:
		return lookup(overrides.DefinedTypes, name, codegen.ModuleGeneratedTypes)
	case node.KindInstruction:
		return lookup(overrides.Instructions, name, codegen.ModuleGeneratedInstructions)
	case node.KindPda, node.KindPdaLink:
		return lookup(overrides.Pdas, name, codegen.ModuleGeneratedPdas)
	case node.KindProgram, node.KindProgramLink:
		return lookup(overrides.Programs, name, codegen.ModuleGeneratedPrograms)
	case node.KindResolverValue:
		return lookup(overrides.Resolvers, name, codegen.ModuleHooked)
	}
	return codegen.ModuleGenerated
}

//IsAsyncResolver returns true if the named resolver returns a promise
func (s *Scope) IsAsyncResolver(name string) bool {
	for _, candidate := range s.AsyncResolvers {
		if candidate == name {
			return true
		}
	}
	return false
}

//ForInput returns a default value scope of input
func (s *Scope) ForInput(input *node.ResolvedInput, optionalAccountStrategy string, useAsync bool) *DefaultScope {
	return &DefaultScope{Scope: s, Input: input, OptionalAccountStrategy: optionalAccountStrategy, UseAsync: useAsync}
}

//WithDefaultValue returns a copy of the scope whose input uses value as default
func (s *DefaultScope) WithDefaultValue(value node.DefaultValue) *DefaultScope {
	result := *s
	result.Input = s.Input.WithDefaultValue(value)
	return &result
}

func lookup(overrides map[string]string, name string, defaultModule string) string {
	if module, ok := overrides[name]; ok && module != "" {
		return module
	}
	return defaultModule
}

func WithAsyncResolvers(names ...string) Option {
	return func(s *Scope) {
		s.AsyncResolvers = append(s.AsyncResolvers, names...)
	}
}

func WithLinkOverrides(overrides *LinkOverrides) Option {
	return func(s *Scope) {
		s.LinkOverrides = overrides
	}
}

func WithRenderParentInstructions(flag bool) Option {
	return func(s *Scope) {
		s.RenderParentInstructions = flag
	}
}

func WithNaming(api *naming.API) Option {
	return func(s *Scope) {
		s.Naming = api
	}
}

//NewScope creates a scope with default naming conventions
func NewScope(opts ...Option) *Scope {
	ret := &Scope{Naming: naming.Default()}
	for _, opt := range opts {
		opt(ret)
	}
	ret.Manifest = manifest.New(ret.Naming, ret.ImportFrom)
	return ret
}
