package scss

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/ufpeltheme/internal/files"
	"github.com/jmylchreest/ufpeltheme/internal/settings"
)

// LoginBackgroundPlaceholder is replaced in the compiled CSS with the login
// background image.
const LoginBackgroundPlaceholder = "[[setting:loginbackgroundimage]]"

// Processor post-processes compiled CSS.
type Processor struct {
	store  settings.Store
	urls   files.URLs
	logger hclog.Logger
}

// NewProcessor creates a Processor. urls may be nil, in which case the login
// background always resolves to none.
func NewProcessor(store settings.Store, urls files.URLs) *Processor {
	return &Processor{
		store:  store,
		urls:   urls,
		logger: hclog.NewNullLogger(),
	}
}

// WithLogger sets the logger.
func (p *Processor) WithLogger(logger hclog.Logger) *Processor {
	p.logger = logger
	return p
}

// Process prepends custom font imports, substitutes the login background
// placeholder and appends custom CSS.
func (p *Processor) Process(ctx context.Context, css string) (string, error) {
	snap, err := p.store.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load theme settings: %w", err)
	}

	if fonts := strings.TrimSpace(snap.Value(settings.CustomFonts)); strings.HasPrefix(fonts, "@import") {
		css = fonts + "\n" + css
	}

	if strings.Contains(css, LoginBackgroundPlaceholder) {
		css = strings.ReplaceAll(css, LoginBackgroundPlaceholder, p.loginBackground(ctx, snap))
	}

	if custom := snap.Value(settings.CustomCSS); custom != "" {
		css += "\n" + custom
	}
	return css, nil
}

func (p *Processor) loginBackground(ctx context.Context, snap settings.Snapshot) (value string) {
	value = "none"
	if p.urls == nil || !snap.Has(settings.LoginBackgroundImage) {
		return value
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Debug("login background resolution panicked", "panic", r)
			value = "none"
		}
	}()

	u, err := p.urls.SettingFileURL(ctx, settings.LoginBackgroundImage, files.AreaLoginBackground)
	if err != nil {
		p.logger.Debug("failed to resolve login background image", "error", err)
		return value
	}
	if u == "" {
		return value
	}
	return "url('" + strings.ReplaceAll(u, "'", `\'`) + "')"
}
