package output

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zzpboek/zzptax/internal/domain"
)

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.HasPrefix(content, "FY2024 draft\n") {
		t.Fatalf("unexpected heading: %s", content)
	}
	if !strings.Contains(content, "Estimated tax:  € 18.525,00") {
		t.Fatalf("expected estimated tax line, got: %s", content)
	}
	// 72499.25 - 50108.25
	if !strings.Contains(content, "Deductions:     € 22.391,00") {
		t.Fatalf("expected deductions line, got: %s", content)
	}
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"INCOME TAX ESTIMATE  FISCAL YEAR 2024  (DRAFT)",
		"Hours worked: 1400 (hours criterion met)",
		"ENTREPRENEUR DEDUCTIONS",
		"€ 72.499,25",
		"Old-age reserve (FOR)",
		"DEPRECIATION SCHEDULES",
		"camera rig (linear)",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in console output:\n%s", want, content)
		}
	}

	// section order follows the calculation
	if strings.Index(content, "REVENUE") > strings.Index(content, "EXPENSES") ||
		strings.Index(content, "EXPENSES") > strings.Index(content, "TAX\n") {
		t.Fatalf("sections out of order:\n%s", content)
	}
}

func TestConsoleVerboseFormatterWithoutSchedules(t *testing.T) {
	report := buildTestReport()
	report.Schedules = nil
	out, err := ConsoleVerboseFormatter{}.Format(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "DEPRECIATION SCHEDULES") {
		t.Fatalf("schedules section rendered without schedules")
	}
}

func TestFormattersRejectEmptyReport(t *testing.T) {
	for _, f := range []Formatter{ConsoleVerboseFormatter{}, ConsoleFormatter{}, CSVLineItems{}, HTMLFormatter{}} {
		if _, err := f.Format(&domain.TaxReport{FiscalYear: 2024}); err == nil {
			t.Fatalf("%s: expected error for report without result", f.Name())
		}
	}
}

func TestCSVLineItems(t *testing.T) {
	out, err := CSVLineItems{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	values := make(map[string]string, len(rows))
	for _, r := range rows {
		values[r[0]] = r[1]
	}
	checks := map[string]string{
		"line":                    "value",
		"fiscal_year":             "2024",
		"status":                  "draft",
		"meets_hours_criterion":   "true",
		"credit_notes_total":      "2000.00",
		"expenses_office":         "3000.50",
		"expenses_other":          "0.00",
		"for_reservation":         "6025.00",
		"estimated_tax_box1":      "18525.00",
		"profit_before_exemption": "57801.25",
	}
	for k, want := range checks {
		if values[k] != want {
			t.Fatalf("%s = %q, want %q", k, values[k], want)
		}
	}
	if rows[len(rows)-1][0] != "estimated_tax_box1" {
		t.Fatalf("last row should be the tax estimate, got %v", rows[len(rows)-1])
	}
}

func TestCSVScheduleExporter(t *testing.T) {
	out, err := CSVScheduleExporter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (header+2 rows), got %d", len(lines))
	}
	if lines[1] != "camera rig,linear,2024,12000.00,1000.00,11000.00" {
		t.Fatalf("unexpected first row: %s", lines[1])
	}

	empty, err := CSVScheduleExporter{}.Format(&domain.TaxReport{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(string(empty), "\n") != 1 {
		t.Fatalf("expected header only, got %q", empty)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded domain.TaxReport
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("json does not decode: %v", err)
	}
	if decoded.Status != domain.StatusDraft || !decoded.Result.TaxableProfit.Equal(dec("50108.25")) {
		t.Fatalf("unexpected decoded report: %+v", decoded.Result)
	}
	if !strings.Contains(string(out), `"estimated_tax_box1": "18525"`) {
		t.Fatalf("expected snake_case field names in json:\n%s", out)
	}
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded domain.TaxReport
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("yaml does not decode: %v", err)
	}
	if decoded.FiscalYear != 2024 || !decoded.Result.EstimatedTaxBox1.Equal(dec("18525")) {
		t.Fatalf("unexpected decoded report: %+v", decoded)
	}
	if len(decoded.Schedules) != 1 || len(decoded.Schedules[0].Entries) != 2 {
		t.Fatalf("schedules lost in yaml round trip")
	}
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"Income tax estimate 2024",
		"Taxable profit",
		"€ 50.108,25",
		"<h3>camera rig (linear)</h3>",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in html output", want)
		}
	}
}

func TestFormatterAliasResolution(t *testing.T) {
	tests := map[string]string{
		"console-verbose": "console",
		"SUMMARY":         "console-lite",
		" yml ":           "yaml",
		"csv-schedule":    "schedule-csv",
		"json":            "json",
	}
	for alias, want := range tests {
		f := GetFormatterByName(alias)
		if f == nil {
			t.Fatalf("alias %q did not resolve to a formatter", alias)
		}
		if f.Name() != want {
			t.Fatalf("alias %q resolved to %q, want %q", alias, f.Name(), want)
		}
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := LookupFormatter("definitely-not-a-format")
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "unsupported report format") || !strings.Contains(msg, "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}
}

func TestAvailableFormatterNamesSorted(t *testing.T) {
	names := AvailableFormatterNames()
	want := []string{"console", "console-lite", "csv", "html", "json", "schedule-csv", "yaml"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("AvailableFormatterNames = %v, want %v", names, want)
	}
}

func TestWriteFormatted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	written, err := WriteFormatted(JSONFormatter{}, buildTestReport(), path)
	if err != nil {
		t.Fatalf("WriteFormatted error: %v", err)
	}
	if written != path {
		t.Fatalf("written to %s, want %s", written, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !json.Valid(data) {
		t.Fatalf("written file is not json")
	}
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2025, 3, 1, 14, 5, 9, 0, time.UTC)
	got := DefaultFilename(CSVScheduleExporter{}, buildTestReport(), now)
	if got != "tax_report_2024_draft_20250301_140509.csv" {
		t.Fatalf("DefaultFilename = %q", got)
	}
}
