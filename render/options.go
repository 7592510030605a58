package render

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/internal/fragments"
	"github.com/viant/kitgen/internal/setter"
	"github.com/viant/kitgen/shared/logging"
	"github.com/viant/toolbox"
	"gopkg.in/yaml.v3"
)

//Options represents rendering options
type Options struct {
	AsyncResolvers              []string
	DependencyMap               map[string]string //logical module or package name to the module imported in generated code
	DependencyVersions          map[string]string //package name to npm version range
	KitImportStrategy           string
	LinkOverrides               *fragments.LinkOverrides
	RenderParentInstructions    bool
	DeleteFolderBeforeRendering *bool
	SyncPackageJSON             bool
	PackageFolder               string
	LogLevel                    string
}

func (o *Options) Init() {
	setter.SetStringIfEmpty(&o.KitImportStrategy, string(codegen.DefaultKitImportStrategy))
	setter.SetStringIfEmpty(&o.LogLevel, logging.INFO)
	setter.SetBoolPtrIfNil(&o.DeleteFolderBeforeRendering, true)
	setter.SetMapIfNil(&o.DependencyMap)
	setter.SetMapIfNil(&o.DependencyVersions)
}

func (o *Options) Validate() error {
	if _, err := codegen.ParseKitImportStrategy(o.KitImportStrategy); err != nil {
		return err
	}
	for name, version := range o.DependencyVersions {
		if _, err := parseRange(version); err != nil {
			return errors.Wrapf(err, "invalid %v version range", name)
		}
	}
	return nil
}

//DeleteFolder returns true if output folder is removed before writing pages
func (o *Options) DeleteFolder() bool {
	return o.DeleteFolderBeforeRendering == nil || *o.DeleteFolderBeforeRendering
}

//Aliases returns module aliases for the configured import strategy and dependency map
func (o *Options) Aliases() (map[string]string, error) {
	strategy, err := codegen.ParseKitImportStrategy(o.KitImportStrategy)
	if err != nil {
		return nil, err
	}
	return codegen.ModuleAliases(strategy, o.DependencyMap), nil
}

//Scope returns fragments scope reflecting options
func (o *Options) Scope() *fragments.Scope {
	return fragments.NewScope(
		fragments.WithAsyncResolvers(o.AsyncResolvers...),
		fragments.WithLinkOverrides(o.LinkOverrides),
		fragments.WithRenderParentInstructions(o.RenderParentInstructions),
	)
}

//NewOptionsFromURL loads options from YAML or JSON resource
func NewOptionsFromURL(ctx context.Context, URL string) (*Options, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load options %v", logging.RedactURL(URL))
	}
	aMap := map[string]interface{}{}
	if strings.HasSuffix(URL, "yaml") || strings.HasSuffix(URL, "yml") {
		if err := yaml.Unmarshal(data, &aMap); err != nil {
			return nil, err
		}
	} else {
		if err := json.Unmarshal(data, &aMap); err != nil {
			return nil, err
		}
	}
	options := &Options{}
	if err = toolbox.DefaultConverter.AssignConverted(options, aMap); err != nil {
		return nil, fmt.Errorf("invalid options %v: %w", logging.RedactURL(URL), err)
	}
	options.Init()
	return options, options.Validate()
}
