package models

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

type MediaType string

const (
	MediaTypePDF  MediaType = "pdf"
	MediaTypeDOCX MediaType = "docx"
)

// Document is an uploaded file held in memory for the duration of one request.
type Document struct {
	Filename  string
	MediaType MediaType
	Data      []byte
}

// MediaTypeFromMime maps a declared content type to a supported media type.
func MediaTypeFromMime(mime string) (MediaType, bool) {
	switch mime {
	case MimePDF:
		return MediaTypePDF, true
	case MimeDOCX:
		return MediaTypeDOCX, true
	default:
		return "", false
	}
}
