package layout

// PageLayout holds calculated dimensions for the portfolio page.
type PageLayout struct {
	Width  int
	Height int

	Columns   int
	CardWidth int
	Gutter    int

	ContentHeight int // height minus nav bar and status bar
}

const (
	navBarHeight    = 3
	statusBarHeight = 1
	gutter          = 1
	minCardWidth    = 24
	pagePadding     = 2
)

// Calculate computes the page layout from terminal dimensions.
func Calculate(width, height int) PageLayout {
	l := PageLayout{
		Width:         width,
		Height:        height,
		Gutter:        gutter,
		ContentHeight: height - navBarHeight - statusBarHeight,
	}

	if l.ContentHeight < 1 {
		l.ContentHeight = 1
	}

	// Responsive breakpoints, same steps as a one/two/three column grid.
	switch {
	case width < 70:
		l.Columns = 1
	case width < 110:
		l.Columns = 2
	default:
		l.Columns = 3
	}

	inner := width - 2*pagePadding
	l.CardWidth = (inner - (l.Columns-1)*gutter) / l.Columns
	if l.CardWidth < minCardWidth {
		l.CardWidth = minCardWidth
	}

	return l
}

// InnerWidth is the usable page width inside the padding.
func (l PageLayout) InnerWidth() int {
	w := l.Width - 2*pagePadding
	if w < minCardWidth {
		return minCardWidth
	}
	return w
}

// Padding is the left and right page margin.
func (l PageLayout) Padding() int {
	return pagePadding
}
