package webui

// The table abstraction every list and report tab renders through: column
// headers plus pre-formatted display cells. Handlers map domain slices to
// cells so templates stay free of formatting logic.

type (
	Column struct {
		Title string
	}

	// Cell is one display cell; when Badge is set, the cell renders as a
	// colored pill instead of plain text, and when Actions is set it
	// renders the row's edit/delete controls.
	Cell struct {
		Text    string
		Badge   bool
		Color   string
		Actions *RowActions
	}

	// RowActions holds a row's control targets; an empty EditURL renders
	// the delete control alone.
	RowActions struct {
		EditURL   string
		DeleteURL string
	}

	Table struct {
		Columns []Column
		Rows    [][]Cell
		// Empty is the single-row message shown when Rows is empty.
		Empty string
	}
)

func TextCell(text string) Cell {
	return Cell{Text: text}
}

func BadgeCell(label, color string) Cell {
	return Cell{Text: label, Badge: true, Color: color}
}

func ActionCell(editURL, deleteURL string) Cell {
	return Cell{Actions: &RowActions{EditURL: editURL, DeleteURL: deleteURL}}
}

// page is the data every full page template receives.
type page struct {
	Title  string
	Active string // nav item to highlight
	Flash  *Flash
	// Alert is an inline (non-flash) banner, e.g. a failed list load.
	Alert *Flash
	Data  interface{}
}
