package pdf

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"doctrack/internal/core/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("paperwork").
	Funcs(template.FuncMap{
		"date": func(t time.Time) string { return t.Format("2 Jan 2006") },
	}).
	ParseFS(templateFS, "templates/*.html"))

type sheetPage struct {
	Title    string
	ShowFeri bool
	Lines    []ports.ShipmentLine
	Sheet    any
}

func transportRequestHTML(sheet ports.TransportRequestSheet) (string, error) {
	return execute("transport_request.html", sheetPage{
		Title: "Transport request " + sheet.Number,
		Lines: sheet.Lines,
		Sheet: sheet,
	})
}

// manifestHTML adds the FERI column, which the border agent needs for DRC
// bound cargo.
func manifestHTML(sheet ports.ManifestSheet) (string, error) {
	return execute("manifest.html", sheetPage{
		Title:    "Manifest " + sheet.Number,
		ShowFeri: true,
		Lines:    sheet.Lines,
		Sheet:    sheet,
	})
}

func execute(name string, data sheetPage) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
