package models

// AnalyzeRequest holds the form fields accompanying the uploaded workbook on
// POST /api/v1/analyze. The workbook itself arrives as the "file" part.
type AnalyzeRequest struct {
	// SheetName selects the worksheet to read. Defaults to the configured
	// sheet when empty.
	SheetName string `form:"sheet_name"`

	// IncludeRows echoes the per-threshold rows in the JSON response in
	// addition to the stored CSV artifact.
	IncludeRows bool `form:"include_rows"`
}
