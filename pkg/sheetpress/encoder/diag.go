package encoder

import "fmt"

// Diagnostic records a recovered per-cell fault. Faults never abort a
// sheet; they accumulate here and are surfaced alongside the document.
type Diagnostic struct {
	Sheet string
	Cell  string
	Stage string
	Err   error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("sheet %q cell %s (%s): %v", d.Sheet, d.Cell, d.Stage, d.Err)
}

// Diagnostics accumulates recovered faults across pipeline stages.
type Diagnostics struct {
	entries []Diagnostic
}

// Record appends one fault.
func (d *Diagnostics) Record(sheet, cell, stage string, err error) {
	d.entries = append(d.entries, Diagnostic{Sheet: sheet, Cell: cell, Stage: stage, Err: err})
}

// Entries returns the accumulated faults in record order.
func (d *Diagnostics) Entries() []Diagnostic {
	return d.entries
}
