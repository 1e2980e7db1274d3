// Package components provides a declarative, theme-aware component library for terminal views.
//
// # Overview
//
// Components are built on lipgloss and compose into a retained view tree. Every container
// exposes its children, so a tree can be inspected with ui.Walk and ui.Outline as well as drawn.
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	theme := components.DarkTheme()
//	ctx := components.DefaultContext().WithTheme(theme).WithParentSize(60, 40)
//	output := component.ViewWithContext(ctx)
//
// View() renders with the default theme and no size hints.
//
// # Core Components
//
// Primitives:
//   - Text: styled text content
//   - Icon: a glyph tinted by variant (filled or unfilled)
//   - Image: text art scaled to fill a cell box and centre-cropped
//
// Layout:
//   - Stack: vertical or horizontal arrangement with gaps and cross alignment
//   - Container: padding and borders around a stack
//   - Align: places a child inside the full available width
//   - Gradient: paints a vertical background gradient over the parent box
//
// # Style Modifiers
//
//	title := NewText("Deadpool").WithAppliers(
//		Typography(TypographyVariantTitle),
//		Foreground(PaletteAccent),
//	)
//
// # Determinism
//
// Rendering reads nothing but the tree and the RenderContext. The same tree rendered with
// the same context always produces byte-identical output.
package components
