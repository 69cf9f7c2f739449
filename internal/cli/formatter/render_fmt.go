package formatter

import (
	"fmt"

	"github.com/alexanderramin/compactgantt/internal/domain"
)

// FormatRenderSummary reports a finished render on one line.
func FormatRenderSummary(p *domain.Project, format, path string, instructions int) string {
	return Success(fmt.Sprintf("Rendered %s to %s %s %s",
		Bold(p.DisplayID()), path, FormatBadge(format),
		Dim(fmt.Sprintf("(%s)", Plural(instructions, "instruction", "instructions")))))
}

// FormatImportSummary reports a stored snapshot.
func FormatImportSummary(p *domain.Project, created bool) string {
	verb := "Updated"
	if created {
		verb = "Imported"
	}
	return Success(fmt.Sprintf("%s %s [%s] %s", verb, p.Name, Bold(p.ShortID), Dim(fmt.Sprintf("revision %d", p.Revision))))
}
