package templates

// ConsolePage is everything the experiment console renders.
type ConsolePage struct {
	Table  ExperimentTable
	Name   string // pending experiment name
	Toasts []Toast
}

// ExperimentTable is the experiment list laid out as rows of cells.
type ExperimentTable struct {
	Columns []string
	Rows    [][]string
}

type Toast struct {
	Title string
	Body  string
	Class string // toast-success, toast-info, toast-warning, toast-error
}
