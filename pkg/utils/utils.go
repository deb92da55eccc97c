package utils

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateImageFile(file *multipart.FileHeader) error
	ConvertFileToBase64(file multipart.File) (string, error)
	DecodeImagePayload(payload string) ([]byte, error)
	ReencodeAsJPEG(imageData []byte, quality int) []byte
}

type utils struct {
	maxFileSize int64
}

func New() IUtils {
	return &utils{
		maxFileSize: 10 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) ValidateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return errors.New("no file uploaded")
	}

	if file.Size > u.maxFileSize {
		return errors.New("file size exceeds limit")
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return errors.New("uploaded file is not an image")
	}

	return nil
}

func (u *utils) ConvertFileToBase64(file multipart.File) (string, error) {
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	base64Encoded := base64.StdEncoding.EncodeToString(fileBytes)
	return base64Encoded, nil
}

// DecodeImagePayload decodes a base64 image string into raw bytes. Browser
// clients tend to send the full canvas data URL, so a leading
// "data:image/...;base64," prefix is stripped before decoding.
func (u *utils) DecodeImagePayload(payload string) ([]byte, error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return nil, errors.New("empty image payload")
	}

	if strings.HasPrefix(trimmed, "data:") {
		idx := strings.Index(trimmed, "base64,")
		if idx == -1 {
			return nil, errors.New("data URL payload is not base64 encoded")
		}
		trimmed = trimmed[idx+len("base64,"):]
	}

	imageData, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, errors.New("invalid base64 image data")
	}

	return imageData, nil
}

// ReencodeAsJPEG normalizes an uploaded image (PNG uploads included) to
// JPEG before it is attached to the model request. Undecodable input is
// returned untouched and left to the upstream model to reject.
func (u *utils) ReencodeAsJPEG(imageData []byte, quality int) []byte {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return imageData
	}

	if format == "jpeg" {
		return imageData
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return imageData
	}

	return buf.Bytes()
}
