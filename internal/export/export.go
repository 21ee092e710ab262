// Package export serialises a navigation document for static-site tools.
package export

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/navconfig/internal/config"
	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
	"git.home.luguber.info/inful/navconfig/internal/site"
)

type options struct {
	logger *slog.Logger
}

// Option customises an export.
type Option func(*options)

// WithLogger sets the logger that receives export warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Render serialises doc in the given format.
func Render(doc *site.Document, format config.OutputFormat, opts ...Option) ([]byte, error) {
	if doc == nil {
		return nil, ferrors.InternalError("nil document").Build()
	}
	var (
		data []byte
		err  error
	)
	switch format {
	case config.OutputJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case config.OutputYAML:
		data, err = marshalYAML(doc.Definition())
	case config.OutputHugo:
		data, err = marshalYAML(Hugo(doc, opts...))
	default:
		return nil, ferrors.ExportError("unsupported output format").
			WithContext("format", string(format)).Build()
	}
	if err != nil {
		return nil, ferrors.ExportError("failed to render document").
			WithCause(err).WithContext("format", string(format)).Build()
	}
	return data, nil
}

// WriteFile renders doc and replaces path atomically.
func WriteFile(doc *site.Document, format config.OutputFormat, path string, opts ...Option) error {
	data, err := Render(doc, format, opts...)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ferrors.FileSystemError("failed to create output directory").
			WithCause(err).WithContext("path", dir).Build()
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return ferrors.FileSystemError("failed to create staging file").WithCause(err).Build()
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return ferrors.FileSystemError("failed to write staging file").WithCause(err).Build()
	}
	if err := tmp.Close(); err != nil {
		return ferrors.FileSystemError("failed to close staging file").WithCause(err).Build()
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return ferrors.FileSystemError("failed to set output permissions").WithCause(err).Build()
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return ferrors.FileSystemError("failed to move output into place").
			WithCause(err).WithContext("path", path).Build()
	}
	return nil
}

func marshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
