package helpers

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const DefaultContentType = "application/octet-stream"

// UploadedFile is a multipart file part read fully into memory.
type UploadedFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReadUploadedFile buffers the whole part. There is no size cap here; the
// store's document size limit is the only bound.
func ReadUploadedFile(fh *multipart.FileHeader) (UploadedFile, error) {
	if fh == nil {
		return UploadedFile{}, fmt.Errorf("no file part")
	}
	f, err := fh.Open()
	if err != nil {
		return UploadedFile{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return UploadedFile{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return UploadedFile{
		Filename:    fh.Filename,
		ContentType: ResolveContentType(fh.Header.Get("Content-Type"), content),
		Content:     content,
	}, nil
}

// ResolveContentType returns the declared type verbatim, even when it does not
// parse as a media type. The bytes are sniffed only when nothing was declared.
func ResolveContentType(declared string, content []byte) string {
	if strings.TrimSpace(declared) != "" {
		return declared
	}
	if len(content) == 0 {
		return DefaultContentType
	}
	return mimetype.Detect(content).String()
}
