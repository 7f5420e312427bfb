package app

import (
	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/report"
)

// ReportData collects what the admin report shows.
func (a *App) ReportData() report.Data {
	return report.Data{
		Brand:    a.Brand().Name,
		Courses:  a.catalog.Courses(),
		Progress: a.progress.State(),
		Tokens:   a.registry.List(),
		Now:      a.now(),
	}
}

// ExportReport writes the admin workbook to path. The workbook lists every
// issued token, so it takes the same guard as content edits.
func (a *App) ExportReport(path string) error {
	if !a.router.CanMutate() {
		return common.ErrForbidden
	}
	return report.Save(path, a.ReportData())
}
