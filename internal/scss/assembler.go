package scss

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/ufpeltheme/internal/colour"
	"github.com/jmylchreest/ufpeltheme/internal/settings"
)

// Variable is one line of the generated variable block.
type Variable struct {
	Name  string
	Value string
}

// Variables returns the SCSS variables derived from snap, in emission order.
// Invalid or missing colours are replaced by their defaults; valid values
// are passed through unchanged.
func Variables(snap settings.Snapshot) []Variable {
	primary := snap.Value(settings.PrimaryColor)
	if primary == "" {
		primary = snap.Value(settings.BrandColor)
	}
	primary = colour.OrDefault(primary, settings.DefaultPrimaryColor)
	secondary := colour.OrDefault(snap.Value(settings.SecondaryColor), settings.DefaultSecondaryColor)

	return []Variable{
		{Name: "primarycolor", Value: primary},
		{Name: "brandcolor", Value: primary},
		{Name: "secondarycolor", Value: secondary},
		{Name: "ufpel-secondary", Value: secondary},
		{Name: "backgroundcolor", Value: colour.OrDefault(snap.Value(settings.BackgroundColor), settings.DefaultBackgroundColor)},
		{Name: "highlightcolor", Value: colour.OrDefault(snap.Value(settings.HighlightColor), settings.DefaultHighlightColor)},
		{Name: "contenttextcolor", Value: colour.OrDefault(snap.Value(settings.ContentTextColor), settings.DefaultContentTextColor)},
		{Name: "highlighttextcolor", Value: colour.OrDefault(snap.Value(settings.HighlightTextColor), settings.DefaultHighlightTextColor)},
		{Name: "ufpel-primary", Value: primary},
	}
}

// Assembler builds the SCSS source handed to the host compiler.
type Assembler struct {
	store   settings.Store
	presets *PresetLoader
	logger  hclog.Logger
}

// NewAssembler creates an Assembler reading settings from store and presets
// from loader.
func NewAssembler(store settings.Store, loader *PresetLoader) *Assembler {
	return &Assembler{
		store:   store,
		presets: loader,
		logger:  hclog.NewNullLogger(),
	}
}

// WithLogger sets the logger.
func (a *Assembler) WithLogger(logger hclog.Logger) *Assembler {
	a.logger = logger
	a.presets.WithLogger(logger.Named("preset"))
	return a
}

// Assemble returns the complete stylesheet source: preset, variables, raw
// initial SCSS, the bundled supplementary fragment and raw SCSS.
func (a *Assembler) Assemble(ctx context.Context) (string, error) {
	snap, err := a.store.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load theme settings: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(a.preset(ctx, snap))
	sb.WriteString(a.pre(snap))
	sb.WriteString(postSCSS())
	sb.WriteString(extra(snap))
	return sb.String(), nil
}

// MainSCSS returns the preset followed by the supplementary fragment.
func (a *Assembler) MainSCSS(ctx context.Context) (string, error) {
	snap, err := a.store.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load theme settings: %w", err)
	}
	return a.preset(ctx, snap) + postSCSS(), nil
}

// PreSCSS returns the variable block followed by the raw initial SCSS.
func (a *Assembler) PreSCSS(ctx context.Context) (string, error) {
	snap, err := a.store.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load theme settings: %w", err)
	}
	return a.pre(snap), nil
}

// ExtraSCSS returns the raw SCSS appended after everything else.
func (a *Assembler) ExtraSCSS(ctx context.Context) (string, error) {
	snap, err := a.store.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load theme settings: %w", err)
	}
	return extra(snap), nil
}

func (a *Assembler) preset(ctx context.Context, snap settings.Snapshot) string {
	content, source := a.presets.Load(ctx, snap.Value(settings.Preset))
	a.logger.Trace("loaded preset", "source", source)
	return content
}

func (a *Assembler) pre(snap settings.Snapshot) string {
	vars := Variables(snap)
	a.checkContrast(vars)

	var sb strings.Builder
	if err := preTemplate.Execute(&sb, vars); err != nil {
		// The template only ranges over strings.
		a.logger.Error("failed to render variable block", "error", err)
	}
	if raw := snap.Value(settings.RawSCSSPre); raw != "" {
		sb.WriteString("\n" + raw + "\n")
	}
	return sb.String()
}

func extra(snap settings.Snapshot) string {
	if raw := snap.Value(settings.RawSCSS); raw != "" {
		return "\n" + raw
	}
	return ""
}

func (a *Assembler) checkContrast(vars []Variable) {
	var fg, bg string
	for _, v := range vars {
		switch v.Name {
		case "contenttextcolor":
			fg = v.Value
		case "backgroundcolor":
			bg = v.Value
		}
	}
	ratio, err := colour.HexContrast(fg, bg)
	if err != nil {
		return
	}
	if ratio < colour.MinContrastAA {
		a.logger.Warn("content text colour has low contrast against background",
			"foreground", fg, "background", bg, "ratio", fmt.Sprintf("%.2f", ratio))
	}
}
