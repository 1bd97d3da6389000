package views

import (
	"errors"
	"html/template"
	"io"
	"io/fs"

	"climabrasil-server/internal/modules/clima/types"
)

var reportTmpl *template.Template

// loadTemplatesFromFS loads report templates from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	reportTmpl, err = template.ParseFS(sub, "*.html")
	if err != nil {
		return err
	}
	return nil
}

// LoadTemplates loads embedded report templates. Call during startup before
// serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// RenderDailyReport executes the daily extremes report into w.
func RenderDailyReport(w io.Writer, data types.DailyReport) error {
	if reportTmpl == nil {
		return errors.New("report template not loaded: call views.LoadTemplates during startup")
	}
	return reportTmpl.ExecuteTemplate(w, "report.html", data)
}
