package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/fileinfo"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// ReportPrinter renders permission reports as right-aligned label lines:
//
//	File notes.txt
//	   Path: /home/me/notes.txt
//	   Read: Yes
//	  Write: Yes
//	Execute: No
type ReportPrinter struct {
	palette Palette
}

// NewReportPrinter creates a ReportPrinter using the given palette.
func NewReportPrinter(palette Palette) ports.ReportRenderer {
	return &ReportPrinter{palette: palette}
}

// Render writes the report to w: a single line for a missing path, the field
// block otherwise.
func (p *ReportPrinter) Render(w io.Writer, r fileinfo.Report) {
	if !r.Exists {
		fmt.Fprintln(w, p.palette.Missing(fmt.Sprintf("File %s does not exist.", r.Path)))
		return
	}
	fmt.Fprintln(w, p.palette.Header("File "+r.Path))
	p.field(w, "Path", r.AbsPath)
	p.flag(w, "Read", r.Read)
	p.flag(w, "Write", r.Write)
	p.flag(w, "Execute", r.Execute)
	if r.HasSize {
		p.field(w, "Size", fmt.Sprintf("%d", r.Size))
	}
	if r.HasContents {
		fmt.Fprintln(w, p.palette.Label("Contents:"))
		fmt.Fprint(w, r.Contents)
		if r.Contents != "" && !strings.HasSuffix(r.Contents, "\n") {
			fmt.Fprintln(w)
		}
	}
}

// field pads labels so the colons line up under "Execute:".
func (p *ReportPrinter) field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", p.palette.Label(fmt.Sprintf("%8s", label+":")), value)
}

func (p *ReportPrinter) flag(w io.Writer, label string, set bool) {
	value := p.palette.No("No")
	if set {
		value = p.palette.Yes("Yes")
	}
	p.field(w, label, value)
}
