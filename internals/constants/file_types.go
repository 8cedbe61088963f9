package constants

import (
	"path/filepath"
	"strings"
)

type FileType int

const (
	FileUnknown FileType = iota
	FileImage
	FilePDF
	FileDocument
	FileSpreadsheet
)

// DetectFileTypeFromExt classifies an attachment by its extension.
func DetectFileTypeFromExt(filename string) FileType {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileImage
	case ".pdf":
		return FilePDF
	case ".doc", ".docx":
		return FileDocument
	case ".xls", ".xlsx", ".csv":
		return FileSpreadsheet
	default:
		return FileUnknown // tidak diterima
	}
}
