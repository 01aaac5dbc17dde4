package dto

import "tourdesk/shared/constant"

// File is a rendered document ready to be streamed to the client.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

func NewPDF(name string, content []byte) File {
	return File{Name: name, ContentType: constant.ContentTypePDF, Content: content}
}
