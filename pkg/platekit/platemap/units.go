package platemap

// Excel measures column widths in characters of the default font and row
// heights in points.
const (
	// wellColumnWidth keeps body cells wide enough for short codes.
	wellColumnWidth = 6.0
	// headerColumnWidth fits single row letters.
	headerColumnWidth = 4.0
	// wellRowHeight roughly squares the body cells against wellColumnWidth.
	wellRowHeight = 18.0
)
