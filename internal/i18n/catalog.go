// Package i18n holds the localized prompts of the bot.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"relaybot/internal/domain"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Catalog resolves (interface language, key) pairs to prompt text
type Catalog struct {
	bundle   *i18n.Bundle
	fallback language.Tag
	logger   *zap.Logger
}

// NewCatalog loads the embedded prompt files
func NewCatalog(logger *zap.Logger) (*Catalog, error) {
	return NewCatalogFS(localeFS, logger)
}

// NewCatalogFS loads every active.<lang>.toml file found at the root of fsys
func NewCatalogFS(fsys fs.FS, logger *zap.Logger) (*Catalog, error) {
	fallback := language.Make(string(domain.DefaultInterfaceLanguage))
	bundle := i18n.NewBundle(fallback)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(fsys, "active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to list prompt files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no prompt files found")
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		logger.Debug("Prompt file loaded", zap.String("file", file))
	}

	return &Catalog{
		bundle:   bundle,
		fallback: fallback,
		logger:   logger,
	}, nil
}

// Get renders key in lang. Keys missing from lang fall back to English,
// and keys missing everywhere render as the key itself.
func (c *Catalog) Get(lang domain.InterfaceLanguage, key string, data map[string]any) string {
	cfg := &i18n.LocalizeConfig{MessageID: key, TemplateData: data}

	localizer := i18n.NewLocalizer(c.bundle, string(lang.OrDefault()), c.fallback.String())
	msg, err := localizer.Localize(cfg)
	if err == nil {
		return msg
	}

	c.logger.Warn("Prompt missing, falling back",
		zap.String("key", key),
		zap.String("lang", string(lang)),
		zap.Error(err),
	)

	msg, err = i18n.NewLocalizer(c.bundle, c.fallback.String()).Localize(cfg)
	if err == nil {
		return msg
	}
	return key
}

// Picker returns the interface language prompt in every supported language,
// so a user who has not chosen yet can read it whatever they speak
func (c *Catalog) Picker() string {
	parts := make([]string, 0, len(domain.InterfaceLanguages))
	for _, lang := range domain.InterfaceLanguages {
		parts = append(parts, c.Get(lang, KeyChooseInterfaceLang, nil))
	}
	return strings.Join(parts, "\n\n")
}
