package types

// SourceFormat identifies the Gray Book rendering being parsed.
type SourceFormat string

const (
	// FormatAuto picks the format from the input file extension.
	FormatAuto SourceFormat = "auto"
	// FormatHTML is the table-based HTML rendering.
	FormatHTML SourceFormat = "html"
	// FormatDOCX is the WordprocessingML container.
	FormatDOCX SourceFormat = "docx"
)

// ClassifierConfig selects the title-classification ruleset.
type ClassifierConfig struct {
	// Ruleset names a built-in ruleset: "standard" (the HTML-path rules,
	// canonical) or "legacy" (the DOCX-path rules). The two differ in how
	// INSTR titles are typed; the choice is deliberately configuration,
	// not hardcoded.
	Ruleset string `json:"ruleset" yaml:"ruleset"`

	// RulesetFile optionally loads the rule tables from a YAML file,
	// overriding Ruleset. Useful when a new Gray Book revision needs
	// hand-tuned keywords.
	RulesetFile string `json:"ruleset_file,omitempty" yaml:"ruleset_file,omitempty"`
}

// FetchConfig holds settings for the fetch stage.
type FetchConfig struct {
	// URL is the published Gray Book document to download.
	URL string `json:"url" yaml:"url"`

	// OutputPath is the local file the document is saved to.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// ParseConfig holds settings for the parse stage.
type ParseConfig struct {
	ClassifierConfig `yaml:",inline"`

	// InputPath is the Gray Book document to read.
	InputPath string `json:"input_path" yaml:"input_path"`

	// Format selects the extraction front-end.
	Format SourceFormat `json:"format" yaml:"format"`

	// DepartmentCode and DepartmentName identify the department section,
	// e.g. "434" and "Siebel School Comp & Data Sci". The DOCX front-end
	// requires both; the HTML front-end matches either the code prefix or
	// a name fragment against section headings.
	DepartmentCode string `json:"department_code" yaml:"department_code"`
	DepartmentName string `json:"department_name" yaml:"department_name"`

	// OutputPath is the intermediate JSON dataset written for the analyze
	// stage.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// CSVPath, when set, also writes the flat one-row-per-person CSV.
	CSVPath string `json:"csv_path,omitempty" yaml:"csv_path,omitempty"`

	// DBPath, when set, also indexes the dataset into a SQLite database.
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// AnalyzeConfig holds settings for the parity analysis stage.
type AnalyzeConfig struct {
	// InputPath is the intermediate JSON dataset from the parse stage.
	InputPath string `json:"input_path" yaml:"input_path"`

	// FacultyClasses whitelists the employment classes considered faculty
	// appointments; positions in other classes (staff) are ignored.
	FacultyClasses []string `json:"faculty_classes" yaml:"faculty_classes"`

	// TopTenure caps the tenure-track listing at the end of the report.
	TopTenure int `json:"top_tenure" yaml:"top_tenure"`
}

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// InputPath is the intermediate JSON dataset from the parse stage.
	InputPath string `json:"input_path" yaml:"input_path"`

	// Format selects the rendering: csv, xlsx, or yaml.
	Format string `json:"format" yaml:"format"`

	// OutputPath is the file to write.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
	Parse   ParseConfig   `json:"parse" yaml:"parse"`
	Analyze AnalyzeConfig `json:"analyze" yaml:"analyze"`
	Export  ExportConfig  `json:"export" yaml:"export"`
}

// DefaultFacultyClasses is the employment-class whitelist for academic
// appointments; everything else in the Gray Book is staff.
func DefaultFacultyClasses() []string {
	return []string{"AA", "AB", "AL", "AM"}
}
