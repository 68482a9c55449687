package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/build50/build50/internal/domain/catalog"
	"github.com/build50/build50/internal/ports"
	siteerrors "github.com/build50/build50/pkg/errors"
)

// CatalogLoader resolves the content catalog: the embedded default, or an
// override file named by catalog.path.
type CatalogLoader struct {
	logger ports.Logger
}

func NewCatalogLoader(logger ports.Logger) *CatalogLoader {
	return &CatalogLoader{logger: logger}
}

// Load returns the embedded catalog when path is empty and the parsed
// override otherwise.
func (l *CatalogLoader) Load(ctx context.Context, path string) (*catalog.Catalog, error) {
	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	if path == "" {
		l.logDebug(ctx, "using embedded catalog", map[string]interface{}{"path": catalog.EmbeddedPath})
		return catalog.Default(), nil
	}

	if err := l.Validate(ctx, path); err != nil {
		return nil, err
	}

	l.logDebug(ctx, "loading catalog override", map[string]interface{}{"path": path})
	c, err := catalog.Load(path)
	if err != nil {
		l.logError(ctx, "failed to load catalog", err, map[string]interface{}{"path": path})
		return nil, err
	}

	l.logInfo(ctx, "catalog loaded", map[string]interface{}{
		"path":     path,
		"packages": len(c.Packages()),
	})
	return c, nil
}

// Validate checks that path names a readable YAML file without parsing it.
func (l *CatalogLoader) Validate(ctx context.Context, path string) error {
	if err := contextCheck(ctx); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		l.logError(ctx, "catalog path stat failed", err, map[string]interface{}{"path": path})
		return siteerrors.NewParseError(path, 0, err)
	}
	if info.IsDir() {
		return siteerrors.NewValidationError("catalog.path", "catalog path is a directory", nil)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return nil
	default:
		return siteerrors.NewValidationError("catalog.path",
			fmt.Sprintf("unsupported catalog file extension %q", ext), nil)
	}
}

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("catalog load cancelled: %w", err)
	}
	return nil
}

func (l *CatalogLoader) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *CatalogLoader) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (l *CatalogLoader) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
