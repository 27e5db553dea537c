package snapshot

import (
	"fmt"
	"strings"
)

// FormatForLLM flattens a State into a stable prose form: fixed section
// headers, lines in the order State's slices already carry them (insertion
// order for rooms, walls, adjacencies and circulation; openings are ordered
// by opening ID, not by creation; never map iteration). Grounded on
// Artifact.RenderText (dshills-dungo pkg/dungeon/text.go)'s
// strings.Builder/fixed-header shape, without that renderer's emoji or
// optional sections — every section here always prints, even when empty,
// so the heading set itself never varies between calls.
func FormatForLLM(st State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== FLOOR PLAN: %s / %s / %s ===\n\n", st.Context.ProjectName, st.Context.BuildingName, st.Context.LevelName)

	b.WriteString("ROOMS\n")
	if len(st.Floorplan.Rooms) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, r := range st.Floorplan.Rooms {
		fmt.Fprintf(&b, "  - %s (%s): %.1f x %.1f ft, %.1f ft², center (%.1f, %.1f)\n",
			r.Name, r.Type, r.Width, r.Depth, r.Area, r.Center.X, r.Center.Y)
	}
	b.WriteString("\n")

	b.WriteString("WALLS\n")
	if len(st.Floorplan.Walls) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, w := range st.Floorplan.Walls {
		fmt.Fprintf(&b, "  - %.1f ft, facing %s, height %.1f ft%s%s\n",
			w.Length, w.Facing, w.Height, boolTag(w.IsStructural, "structural"), boolTag(w.IsExterior, "exterior"))
	}
	b.WriteString("\n")

	b.WriteString("OPENINGS\n")
	if len(st.Floorplan.Openings) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, o := range st.Floorplan.Openings {
		fmt.Fprintf(&b, "  - %s, %.1f ft wide, %.1f ft tall\n", o.Type, o.Width, o.Height)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "LAYOUT\n  total area: %.1f ft²\n  bounds: (%.1f, %.1f) to (%.1f, %.1f)\n",
		st.Layout.TotalArea, st.Layout.Bounds.MinX, st.Layout.Bounds.MinY, st.Layout.Bounds.MaxX, st.Layout.Bounds.MaxY)
	b.WriteString("\n")

	b.WriteString("ADJACENCIES\n")
	if len(st.Layout.Adjacencies) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, a := range st.Layout.Adjacencies {
		fmt.Fprintf(&b, "  - %s\n", a)
	}
	b.WriteString("\n")

	b.WriteString("CIRCULATION\n")
	if len(st.Layout.Circulation) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, c := range st.Layout.Circulation {
		fmt.Fprintf(&b, "  - %s\n", c)
	}
	b.WriteString("\n")

	b.WriteString("CONSTRAINTS\n")
	writeConstraintLines(&b, "satisfied", st.Constraints.Satisfied)
	writeConstraintLines(&b, "violated", st.Constraints.Violated)
	writeConstraintLines(&b, "warnings", st.Constraints.Warnings)
	b.WriteString("\n")

	b.WriteString("LAST ACTION\n")
	if st.LastAction == nil {
		b.WriteString("  (none)\n")
	} else {
		fmt.Fprintf(&b, "  %s: %s", st.LastAction.Tool, st.LastAction.Result)
		if st.LastAction.Message != "" {
			fmt.Fprintf(&b, " — %s", st.LastAction.Message)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeConstraintLines(b *strings.Builder, label string, lines []string) {
	if len(lines) == 0 {
		fmt.Fprintf(b, "  %s: (none)\n", label)
		return
	}
	fmt.Fprintf(b, "  %s:\n", label)
	for _, l := range lines {
		fmt.Fprintf(b, "    - %s\n", l)
	}
}

func boolTag(v bool, name string) string {
	if v {
		return ", " + name
	}
	return ""
}
