package render

// Surface is a presentation target: it rasterizes commands and overlays text
// Command coordinates are surface pixels; text coordinates are character cells
type Surface interface {
	// Size returns the pixel dimensions commands are laid out against
	Size() (width, height int)
	// TextSize returns the text grid dimensions
	TextSize() (cols, rows int)
	Render(cmds []Command)
	Text(col, row int, s string, fg RGB)
	Show()
}
