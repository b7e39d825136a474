package helpers

import (
	"Packlist/internal/models"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var ErrEmptyAttachment = errors.New("attachment is empty")

func GetFileType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext != "" {
		if mimeType := mime.TypeByExtension(ext); mimeType != "" {
			return mimeType
		}
	}
	return "application/octet-stream"
}

// ReadAttachment encodes an uploaded file the way the ERP expects it:
// base64 payload plus its sha256 checksum.
func ReadAttachment(fileHeader *multipart.FileHeader) (models.Attachment, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return models.Attachment{}, err
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return models.Attachment{}, err
	}
	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = GetFileType(fileHeader.Filename)
	}
	return NewAttachment(fileHeader.Filename, mimeType, content)
}

func NewAttachment(name, mimeType string, content []byte) (models.Attachment, error) {
	if len(content) == 0 {
		return models.Attachment{}, fmt.Errorf("%s: %w", name, ErrEmptyAttachment)
	}
	sum := sha256.Sum256(content)
	return models.Attachment{
		Name:     filepath.Base(name),
		Type:     mimeType,
		Data:     base64.StdEncoding.EncodeToString(content),
		Checksum: hex.EncodeToString(sum[:]),
	}, nil
}

func ReadAttachments(fileHeaders []*multipart.FileHeader) ([]models.Attachment, error) {
	attachments := make([]models.Attachment, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		attachment, err := ReadAttachment(fileHeader)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, attachment)
	}
	return attachments, nil
}
