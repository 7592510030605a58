package command

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/kitgen/cmd/options"
	"github.com/viant/kitgen/node"
	"github.com/viant/kitgen/render"
	"github.com/viant/kitgen/shared/logging"
)

type Service struct {
	fs        afs.Service
	logWriter io.Writer
}

//Exec renders program clients described by opts
func (s *Service) Exec(ctx context.Context, opts *options.Options) error {
	renderOptions, err := opts.RenderOptions(ctx)
	if err != nil {
		return err
	}
	logger := logging.New(renderOptions.LogLevel, s.logWriter)
	root, err := s.loadRoot(ctx, opts.IDLURL)
	if err != nil {
		return err
	}
	logger.Debug("loaded program description", "idl", logging.RedactURL(opts.IDLURL), "programs", len(root.Programs()))
	srv, err := render.New(renderOptions, render.WithFS(s.fs), render.WithLogger(logger))
	if err != nil {
		return err
	}
	return srv.Render(ctx, root, opts.OutputURL)
}

func (s *Service) loadRoot(ctx context.Context, URL string) (*node.Root, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load program description %v", logging.RedactURL(URL))
	}
	root, err := node.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid program description %v", logging.RedactURL(URL))
	}
	return root, nil
}

func New(logWriter io.Writer) *Service {
	if logWriter == nil {
		logWriter = os.Stdout
	}
	return &Service{
		fs:        afs.New(),
		logWriter: logWriter,
	}
}
