package button

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderChildOrder(t *testing.T) {
	cfg := New("Submit", "✓").WithLoading(true)

	node := Render(cfg)

	require.Len(t, node.Children, 3)
	icon, ok := node.Children[0].(IconNode)
	require.True(t, ok)
	assert.Equal(t, "✓", icon.Glyph)
	assert.Equal(t, cfg.Foreground, icon.Color)

	progress, ok := node.Children[1].(ProgressNode)
	require.True(t, ok)
	assert.Equal(t, cfg.ProgressTint, progress.Tint)
	assert.InDelta(t, 0.8, progress.Scale, 1e-9)

	label, ok := node.Children[2].(LabelNode)
	require.True(t, ok)
	assert.Equal(t, "Submit", label.Text)
	assert.Equal(t, cfg.FontWeight, label.Weight)

	assert.Equal(t, ItemSpacing, node.Spacing)
}

func TestRenderProgressNodeOnlyWhileLoading(t *testing.T) {
	loading := Render(New("Test", "").WithLoading(true))
	idle := Render(New("Test", ""))

	assert.True(t, hasProgressNode(loading))
	assert.False(t, hasProgressNode(idle))
}

func TestRenderOmitsIconWhenAbsent(t *testing.T) {
	node := Render(New("Test", ""))

	require.Len(t, node.Children, 1)
	_, ok := node.Children[0].(LabelNode)
	assert.True(t, ok)
}

func TestRenderOpacityFollowsEnabled(t *testing.T) {
	enabled := Render(New("Test", ""))
	disabled := Render(New("Test", "").WithEnabled(false))

	assert.InDelta(t, 1.0, enabled.Opacity, 1e-9)
	assert.InDelta(t, 0.6, disabled.Opacity, 1e-9)
}

func TestRenderShadowRadiusIndependentOfVariant(t *testing.T) {
	for _, variant := range Variants() {
		with := Render(New("Test", "").WithVariant(variant).WithShadow(true))
		without := Render(New("Test", "").WithVariant(variant))

		assert.Equal(t, DropShadowRadius, with.ShadowRadius, "variant %s", variant)
		assert.Zero(t, without.ShadowRadius, "variant %s", variant)
	}
}

func TestRenderModifiersApplyIndependently(t *testing.T) {
	cfg := New("Test", "").
		WithVariant(VariantNeumorphic).
		WithEnabled(false).
		WithLoading(true).
		WithShadow(true)

	node := Render(cfg)

	assert.Equal(t, BackgroundNeumorphic, node.Background.Kind)
	assert.InDelta(t, DisabledOpacity, node.Opacity, 1e-9)
	assert.True(t, hasProgressNode(node))
	assert.Equal(t, DropShadowRadius, node.ShadowRadius)
}

func TestRenderPassesThroughLayoutFields(t *testing.T) {
	cfg := New("Test", "")
	cfg.Padding = -3
	cfg.CornerRadius = -1
	cfg.Width = 240
	cfg.Height = 44

	node := Render(cfg)

	assert.Equal(t, -3, node.Padding)
	assert.Equal(t, -1, node.CornerRadius)
	assert.Equal(t, 240, node.Width)
	assert.Equal(t, 44, node.Height)
}

func TestActivateSuppressedWhileDisabled(t *testing.T) {
	calls := 0
	b := NewButton(New("Test", "").WithEnabled(false), func() { calls++ })

	for i := 0; i < 25; i++ {
		b.Activate()
	}

	assert.Zero(t, calls)
}

func TestActivateInvokesCallbackOncePerGesture(t *testing.T) {
	calls := 0
	b := NewButton(New("Test", ""), func() { calls++ })

	b.Activate()
	assert.Equal(t, 1, calls)

	b.Activate()
	b.Activate()
	assert.Equal(t, 3, calls)
}

func TestActivateWithNilCallback(t *testing.T) {
	b := NewButton(New("Test", ""), nil)

	assert.NotPanics(t, func() { b.Activate() })
}

func TestSimpleShorthandPresenter(t *testing.T) {
	b := Simple("Plain Button", "", nil)

	cfg := b.Config()
	assert.Equal(t, "Plain Button", cfg.Label)
	assert.Equal(t, VariantFilled, cfg.Variant)
	assert.Equal(t, ColorWhite, cfg.Foreground)
	assert.Equal(t, ColorBlue, cfg.Background)
}

func hasProgressNode(node ContainerNode) bool {
	for _, child := range node.Children {
		if _, ok := child.(ProgressNode); ok {
			return true
		}
	}
	return false
}
