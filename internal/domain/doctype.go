package domain

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DocType classifies an attachment for the backend.
type DocType string

const (
	DocTypePDF     DocType = "pdf"
	DocTypeDoc     DocType = "doc"
	DocTypeXls     DocType = "xls"
	DocTypeUnknown DocType = "unknown"
)

var extDocTypes = map[string]DocType{
	".pdf":  DocTypePDF,
	".doc":  DocTypeDoc,
	".docx": DocTypeDoc,
	".txt":  DocTypeDoc,
	".md":   DocTypeDoc,
	".xls":  DocTypeXls,
	".xlsx": DocTypeXls,
	".csv":  DocTypeXls,
}

// InferDocType classifies a file by extension, falling back to content
// sniffing when the extension is unrecognized. It is total: every input maps
// to some DocType, DocTypeUnknown as the last resort.
func InferDocType(name string, data []byte) DocType {
	if dt, ok := extDocTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return dt
	}
	if len(data) == 0 {
		return DocTypeUnknown
	}
	mt := mimetype.Detect(data)
	switch {
	case mt.Is("application/pdf"):
		return DocTypePDF
	case mt.Is("application/msword"),
		mt.Is("application/vnd.openxmlformats-officedocument.wordprocessingml.document"),
		strings.HasPrefix(mt.String(), "text/"):
		return DocTypeDoc
	case mt.Is("application/vnd.ms-excel"),
		mt.Is("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"):
		return DocTypeXls
	}
	return DocTypeUnknown
}
