package entity

type ToolName string

const (
	ToolGetPDFText ToolName = "get_pdf_text_from_artifact"
	ToolSaveCSV    ToolName = "save_csv_artifact"
)

func (t ToolName) String() string {
	return string(t)
}
