package ports

import (
	"io"

	"github.com/AntonioJCosta/minish/internal/core/domain/fileinfo"
)

// ReportRenderer writes a permission report in its user-facing form.
type ReportRenderer interface {
	Render(w io.Writer, report fileinfo.Report)
}
