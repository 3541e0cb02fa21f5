package render

import "shaqyrtu-backend/models"

// Renderer assembles a complete, self-contained HTML document for one
// invite. Every stage is a total function over the document string; an
// invite that is half-filled still renders.
type Renderer struct {
	Registry *Registry
	URLs     Normalizer
}

func NewRenderer(reg *Registry, urls Normalizer) *Renderer {
	return &Renderer{Registry: reg, URLs: urls}
}

type Options struct {
	Mode       Mode
	InviteID   string // RSVP binding target; empty disables the form wiring
	Lang       string
	EnableRSVP bool
	Version    int64
}

// BuildDocument runs the injector pipeline in its fixed order:
// palette, content, RSVP, autoplay, live bridge, then localization.
func (r *Renderer) BuildDocument(inv *models.Invite, opts Options) (string, Config) {
	cfg := BuildConfig(inv, opts.Mode, r.URLs)
	cfg.Version = opts.Version

	tpl := r.Registry.Resolve(inv.Template)
	html := tpl.HTML
	html = ApplyPalette(html, PaletteFor(tpl))
	html = InjectContent(html, cfg)
	if opts.EnableRSVP {
		html = InjectRSVP(html, opts.InviteID, cfg.MaxGuests)
	}
	html = InjectAutoplay(html, opts.Mode == ModeView)
	html = InjectLiveBridge(html)
	html = Localize(html, opts.Lang)
	return html, cfg
}
