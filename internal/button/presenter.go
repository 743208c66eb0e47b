package button

// Render maps a configuration to its render tree. It is pure, never fails,
// and treats every field as pass-through presentation data: a negative corner
// radius renders a malformed box, not an error.
func Render(cfg Config) ContainerNode {
	children := make([]Node, 0, 3)

	if cfg.Icon != "" {
		children = append(children, IconNode{
			Glyph: cfg.Icon,
			Color: cfg.Foreground,
			Size:  cfg.FontSize,
		})
	}

	if cfg.Loading {
		children = append(children, ProgressNode{
			Tint:  cfg.ProgressTint,
			Scale: ProgressScale,
		})
	}

	children = append(children, LabelNode{
		Text:   cfg.Label,
		Color:  cfg.Foreground,
		Size:   cfg.FontSize,
		Weight: cfg.FontWeight,
	})

	opacity := FullOpacity
	if !cfg.Enabled {
		opacity = DisabledOpacity
	}

	shadow := 0
	if cfg.Shadow {
		shadow = DropShadowRadius
	}

	return ContainerNode{
		Background:   ResolveBackground(cfg),
		Border:       ResolveBorder(cfg),
		Padding:      cfg.Padding,
		CornerRadius: cfg.CornerRadius,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Opacity:      opacity,
		ShadowRadius: shadow,
		Spacing:      ItemSpacing,
		Children:     children,
	}
}

// Button binds a configuration to an activation callback. It holds no mutable
// state: a new visual state is a new Config and a new Button. The callback is
// invoked synchronously, at most once per Activate call, and only while the
// configuration is enabled.
type Button struct {
	cfg        Config
	onActivate func()
}

// NewButton creates a presenter for the given configuration and callback.
// A nil callback is allowed and makes Activate a no-op.
func NewButton(cfg Config, onActivate func()) *Button {
	return &Button{cfg: cfg, onActivate: onActivate}
}

// Simple creates a presenter from the label+icon shorthand with all other
// fields defaulted.
func Simple(label, icon string, onActivate func()) *Button {
	return NewButton(New(label, icon), onActivate)
}

// Config returns the configuration this presenter renders.
func (b *Button) Config() Config {
	return b.cfg
}

// Node emits the render tree for the bound configuration.
func (b *Button) Node() ContainerNode {
	return Render(b.cfg)
}

// Activate delivers a user activation gesture. The callback runs only when
// the configuration is enabled.
func (b *Button) Activate() {
	if !b.cfg.Enabled || b.onActivate == nil {
		return
	}
	b.onActivate()
}
