package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/zzpboek/zzptax/internal/domain"
)

// HTMLFormatter produces a standalone HTML page of the report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"hours": FormatHours,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("html: empty report")
	}
	var buf bytes.Buffer
	data := struct {
		*domain.TaxReport
		Lines []lineItem
	}{report, reportLines(report.Result)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
