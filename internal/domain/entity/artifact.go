package entity

const (
	MimeTypePDF         = "application/pdf"
	MimeTypeOctetStream = "application/octet-stream"
	MimeTypeCSV         = "text/csv"
)

// Artifact is a named, typed byte blob scoped to a session.
// Saving under an existing name creates a new version; older versions are
// never modified.
type Artifact struct {
	Name     string
	MimeType string
	Data     []byte
	Version  int
}

// ArtifactInfo is a listing entry without the payload.
type ArtifactInfo struct {
	Name     string
	MimeType string
	Version  int
}

const DefaultCSVFilename = "extracted_charges.csv"
