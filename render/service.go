package render

import (
	"context"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/kitgen/codegen"
	"github.com/viant/kitgen/internal/fragments"
	"github.com/viant/kitgen/node"
	"github.com/viant/kitgen/shared/logging"
	"golang.org/x/sync/errgroup"
)

const (
	programsFolder     = "programs"
	instructionsFolder = "instructions"
	indexPage          = "index.ts"
)

//ErrDuplicatedPage is returned when two programs render to the same page
var ErrDuplicatedPage = errors.New("duplicated page")

type (
	//Service renders program client pages
	Service struct {
		options *Options
		scope   *fragments.Scope
		aliases map[string]string
		writer  *writer
		logger  logging.Logger
	}

	Option func(s *Service)
)

func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.writer.fs = fs
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

//RenderMap renders pages of all programs, each program is rendered concurrently
func (s *Service) RenderMap(ctx context.Context, root *node.Root) (*Map, error) {
	programs := root.Programs()
	if err := s.checkPagePaths(programs); err != nil {
		return nil, err
	}
	renderMap := NewMap()
	group, groupCtx := errgroup.WithContext(ctx)
	for _, program := range programs {
		program := program
		group.Go(func() error {
			return s.renderProgram(logging.WithProgram(groupCtx, program.Name), renderMap, program)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	var programNames, instructionNames []string
	for _, program := range programs {
		programNames = append(programNames, program.Name)
		for _, instruction := range program.AllInstructions(!s.options.RenderParentInstructions) {
			if _, ok := renderMap.Get(s.pagePath(instructionsFolder, instruction.Name)); ok {
				instructionNames = append(instructionNames, instruction.Name)
			}
		}
	}
	var folders []string
	if len(instructionNames) > 0 {
		folders = append(folders, instructionsFolder)
		renderMap.Add(path.Join(instructionsFolder, indexPage), fragments.IndexPage(instructionNames))
	}
	if len(programNames) > 0 {
		folders = append(folders, programsFolder)
		renderMap.Add(path.Join(programsFolder, indexPage), fragments.IndexPage(programNames))
	}
	renderMap.Add(indexPage, fragments.IndexPage(folders))
	return renderMap, nil
}

//checkPagePaths returns an error when pages of different programs or instructions share a path
func (s *Service) checkPagePaths(programs []*node.Program) error {
	owners := map[string]string{}
	claim := func(pagePath, owner string) error {
		if previous, ok := owners[pagePath]; ok {
			return errors.Wrapf(ErrDuplicatedPage, "%v rendered by %v and %v", pagePath, previous, owner)
		}
		owners[pagePath] = owner
		return nil
	}
	for _, program := range programs {
		if err := claim(s.pagePath(programsFolder, program.Name), program.Name); err != nil {
			return err
		}
		for _, instruction := range program.AllInstructions(!s.options.RenderParentInstructions) {
			if err := claim(s.pagePath(instructionsFolder, instruction.Name), program.Name+"."+instruction.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Service) renderProgram(ctx context.Context, renderMap *Map, program *node.Program) error {
	page, err := s.scope.ProgramPage(program)
	if err != nil {
		return errors.Wrapf(err, "failed to render program %v", program.Name)
	}
	s.addPage(ctx, renderMap, s.pagePath(programsFolder, program.Name), page)
	for _, instruction := range program.AllInstructions(!s.options.RenderParentInstructions) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		page, err := s.scope.InstructionPage(instruction)
		if err != nil {
			return errors.Wrapf(err, "failed to render instruction %v.%v", program.Name, instruction.Name)
		}
		s.addPage(ctx, renderMap, s.pagePath(instructionsFolder, instruction.Name), page)
	}
	return nil
}

func (s *Service) addPage(ctx context.Context, renderMap *Map, pagePath string, page *codegen.Fragment) {
	if page == nil {
		return
	}
	renderMap.Add(pagePath, page)
	if s.logger.IsDebugEnabled() {
		s.logger.Debugc(logging.WithPage(ctx, pagePath), "rendered page", "imports", page.Imports.Len())
	}
}

func (s *Service) pagePath(folder, name string) string {
	return path.Join(folder, s.scope.Naming.FileName(name)+".ts")
}

//Render renders root programs into outputURL, deleting the previous output first unless disabled
func (s *Service) Render(ctx context.Context, root *node.Root, outputURL string) error {
	if s.options.DeleteFolder() {
		if err := s.writer.Delete(ctx, outputURL); err != nil {
			return err
		}
	}
	renderMap, err := s.RenderMap(ctx, root)
	if err != nil {
		return err
	}
	if err = s.SyncPackageJSON(ctx, renderMap); err != nil {
		return err
	}
	pages := renderMap.Render(s.aliases)
	if err = s.writer.Write(ctx, outputURL, pages); err != nil {
		return err
	}
	s.logger.Infoc(ctx, "rendered program clients", "pages", len(pages), "output", logging.RedactURL(outputURL))
	return nil
}

//SyncPackageJSON creates or updates package.json dependencies of PackageFolder; when syncing is disabled
//an existing package.json is only checked and out-of-date dependencies are reported
func (s *Service) SyncPackageJSON(ctx context.Context, renderMap *Map) error {
	folder := s.options.PackageFolder
	if folder == "" {
		if s.options.SyncPackageJSON {
			s.logger.Warnc(ctx, "cannot sync package.json without PackageFolder option")
		}
		return nil
	}
	URL := url.Join(folder, packageJSONFile)
	versions, err := UsedDependencyVersions(renderMap.Imports(), s.aliases, s.options.DependencyVersions)
	if err != nil {
		return err
	}
	data, err := s.writer.Load(ctx, URL)
	if err != nil {
		return err
	}
	if !s.options.SyncPackageJSON {
		if data == nil {
			return nil
		}
		packageJSON, err := DecodePackageJSON(data)
		if err != nil {
			return err
		}
		lines, err := packageJSON.Outdated(s.logger, versions)
		if err != nil {
			return err
		}
		if len(lines) > 0 {
			s.logger.Warnc(ctx, "the following package.json dependencies are out-of-date or missing:\n"+strings.Join(lines, "\n"), "url", logging.RedactURL(URL))
		}
		return nil
	}
	var packageJSON *PackageJSON
	if data == nil {
		packageJSON, err = CreatePackageJSON(s.logger, versions)
	} else if packageJSON, err = DecodePackageJSON(data); err == nil {
		err = packageJSON.Update(s.logger, versions)
	}
	if err != nil {
		return err
	}
	if data, err = packageJSON.Marshal(); err != nil {
		return err
	}
	return s.writer.Upload(ctx, URL, data)
}

//New creates a render service
func New(options *Options, opts ...Option) (*Service, error) {
	if options == nil {
		options = &Options{}
	}
	options.Init()
	if err := options.Validate(); err != nil {
		return nil, err
	}
	aliases, err := options.Aliases()
	if err != nil {
		return nil, err
	}
	ret := &Service{options: options, scope: options.Scope(), aliases: aliases, writer: &writer{fs: afs.New()}}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = logging.New(options.LogLevel, nil)
	}
	return ret, nil
}
