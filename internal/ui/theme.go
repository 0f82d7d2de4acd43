package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ScalerTheme is the default Fyne theme with tighter spacing for the single-window form
type ScalerTheme struct {
	base fyne.Theme
}

// NewScalerTheme creates the application theme
func NewScalerTheme() fyne.Theme {
	return &ScalerTheme{base: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *ScalerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		// progress bar and Run button
		return color.NRGBA{R: 0, G: 121, B: 107, A: 255}
	}
	return t.base.Color(name, variant)
}

// Font returns theme fonts
func (t *ScalerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon returns theme icons
func (t *ScalerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns theme sizes
func (t *ScalerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 3
	}
	return t.base.Size(name)
}
