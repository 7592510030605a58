package options

import (
	"context"
	"fmt"

	"github.com/viant/kitgen/render"
)

//Options represents kitgen command line options
type Options struct {
	IDLURL            string   `short:"i" long:"idl" description:"program description (rootNode or programNode, JSON or YAML) URL"`
	OutputURL         string   `short:"o" long:"output" description:"generated client destination" default:"src/generated"`
	ConfigURL         string   `short:"c" long:"config" description:"render options URL (.yaml or .json)"`
	PackageFolder     string   `short:"p" long:"pkg" description:"folder of package.json to check or sync"`
	SyncPackageJSON   bool     `short:"s" long:"sync" description:"create or update package.json dependencies"`
	AsyncResolvers    []string `short:"a" long:"async" description:"resolver function returning a promise"`
	KitImportStrategy string   `short:"k" long:"kit" description:"kit import strategy" choice:"granular" choice:"preferRoot" choice:"rootOnly"`
	KeepOutput        bool     `short:"K" long:"keep" description:"keep existing output folder content"`
	LogLevel          string   `short:"l" long:"log" description:"log level" choice:"DEBUG" choice:"INFO" choice:"WARN" choice:"ERROR"`
	Version           bool     `short:"v" long:"version" description:"print version"`
}

func (o *Options) Init() error {
	if o.Version {
		return nil
	}
	if o.IDLURL == "" {
		return fmt.Errorf("idl URL was empty")
	}
	o.IDLURL = ensureAbsPath(o.IDLURL)
	o.OutputURL = ensureAbsPath(o.OutputURL)
	o.ConfigURL = ensureAbsPath(o.ConfigURL)
	o.PackageFolder = ensureAbsPath(o.PackageFolder)
	return nil
}

//RenderOptions loads render options from ConfigURL, command line flags take precedence
func (o *Options) RenderOptions(ctx context.Context) (*render.Options, error) {
	ret := &render.Options{}
	if o.ConfigURL != "" {
		var err error
		if ret, err = render.NewOptionsFromURL(ctx, o.ConfigURL); err != nil {
			return nil, err
		}
	}
	if o.PackageFolder != "" {
		ret.PackageFolder = o.PackageFolder
	}
	if o.SyncPackageJSON {
		ret.SyncPackageJSON = true
	}
	if o.KitImportStrategy != "" {
		ret.KitImportStrategy = o.KitImportStrategy
	}
	if o.LogLevel != "" {
		ret.LogLevel = o.LogLevel
	}
	if o.KeepOutput {
		flag := false
		ret.DeleteFolderBeforeRendering = &flag
	}
	ret.AsyncResolvers = append(ret.AsyncResolvers, o.AsyncResolvers...)
	ret.Init()
	return ret, ret.Validate()
}
