package display

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/backmassage/batchrename/internal/host"
)

// RenderObjects writes the objects of a scene as a table. order maps an
// object ID to its 1-based selection position; unselected objects have none.
func RenderObjects(w io.Writer, objects []host.Object, order map[string]int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Type", "Selected", "ID"})

	for _, o := range objects {
		sel := ""
		if n, ok := order[o.ID]; ok {
			sel = strconv.Itoa(n)
		}
		t.AppendRow(table.Row{o.Name, o.Type, sel, o.ID})
	}
	t.AppendFooter(table.Row{"", "", "", strconv.Itoa(len(objects)) + " objects"})
	t.Render()
}

// SelectionOrder maps each ID to its 1-based position in ids.
func SelectionOrder(ids []string) map[string]int {
	order := make(map[string]int, len(ids))
	for i, id := range ids {
		order[id] = i + 1
	}
	return order
}
