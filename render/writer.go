package render

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

//writer stores rendered pages on any afs supported storage
type writer struct {
	fs afs.Service
}

//Delete removes folder if it exists
func (w *writer) Delete(ctx context.Context, URL string) error {
	exists, err := w.fs.Exists(ctx, URL)
	if err != nil || !exists {
		return err
	}
	if err = w.fs.Delete(ctx, URL); err != nil {
		return errors.Wrapf(err, "failed to delete %v", URL)
	}
	return nil
}

//Write uploads pages under baseURL
func (w *writer) Write(ctx context.Context, baseURL string, pages map[string]string) error {
	for _, path := range sortedKeys(pages) {
		if err := w.Upload(ctx, url.Join(baseURL, path), []byte(pages[path])); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) Upload(ctx context.Context, URL string, data []byte) error {
	if err := w.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return errors.Wrapf(err, "failed to upload %v", URL)
	}
	return nil
}

//Load returns resource content, nil when it does not exist
func (w *writer) Load(ctx context.Context, URL string) ([]byte, error) {
	exists, err := w.fs.Exists(ctx, URL)
	if err != nil || !exists {
		return nil, err
	}
	data, err := w.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download %v", URL)
	}
	return data, nil
}
