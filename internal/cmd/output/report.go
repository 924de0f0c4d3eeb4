package output

import (
	"io"
	"strconv"

	"github.com/agentstation/teammap/pkg/build"
	"github.com/agentstation/teammap/pkg/differ"
)

// BuildReport is the printable outcome of a build or update.
type BuildReport struct {
	*build.Result
}

// Table lists every slug change, then the run totals.
func (r BuildReport) Table() Data {
	data := Data{
		Headers:         []string{"Change", "ID", "From", "To"},
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft},
	}
	if cs := r.Changeset; cs != nil {
		data.Rows = append(data.Rows, ChangeRows(cs)...)
	}
	data.Rows = append(data.Rows,
		[]string{"contributors", strconv.Itoa(r.Contributors), "", ""},
		[]string{"anonymous", strconv.Itoa(r.Anonymous), "", ""},
		[]string{"redirects", strconv.Itoa(len(r.Redirects)), "", ""},
		[]string{"pages", strconv.Itoa(r.PagesRendered), "", strconv.Itoa(r.PagesWritten) + " written"},
	)
	return data
}

// ChangeRows returns one row per entry of cs.
func ChangeRows(cs *differ.Changeset) [][]string {
	var rows [][]string
	for _, id := range cs.Added {
		rows = append(rows, []string{"added", id, "", ""})
	}
	for _, m := range cs.Moved {
		rows = append(rows, []string{"moved", m.ID, m.FromSlug, m.ToSlug})
	}
	for _, rn := range cs.Renamed {
		rows = append(rows, []string{"renamed", rn.ID, rn.From, rn.To})
	}
	for _, id := range cs.Removed {
		rows = append(rows, []string{"removed", id, "", ""})
	}
	return rows
}

// ClaimReport is the printable outcome of a claim check.
type ClaimReport struct {
	*build.ClaimResult
}

// Table renders the claim as a property list.
func (r ClaimReport) Table() Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", r.ID},
			{"Valid", strconv.FormatBool(r.Valid)},
			{"Reason", r.Reason},
		},
	}
}

// Print writes raw in the given format. Table output uses t's layout.
func Print(w io.Writer, format string, raw any, t Tabular) error {
	f := DetectFormat(format)
	if f == FormatTable {
		return NewFormatter(f).Format(w, t)
	}
	return NewFormatter(f).Format(w, raw)
}
