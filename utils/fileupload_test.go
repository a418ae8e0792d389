package utils

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestFileHeader creates a mock multipart.FileHeader for testing
func createTestFileHeader(filename string, size int64, content []byte) *multipart.FileHeader {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", "image/png")
	part, _ := writer.CreatePart(h)
	part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, _ := reader.ReadForm(int64(len(content)) + 1024)
	defer form.RemoveAll()

	if len(form.File["image"]) > 0 {
		fileHeader := form.File["image"][0]
		// Override size for testing purposes
		fileHeader.Size = size
		return fileHeader
	}

	return nil
}

func TestValidateImageFile_Success(t *testing.T) {
	content := []byte("fake png content")
	fileHeader := createTestFileHeader("centerpiece.png", int64(len(content)), content)
	require.NotNil(t, fileHeader)

	assert.NoError(t, ValidateImageFile(fileHeader))
}

func TestValidateImageFile_CaseInsensitive(t *testing.T) {
	content := []byte("fake png content")
	fileHeader := createTestFileHeader("centerpiece.PNG", int64(len(content)), content)
	require.NotNil(t, fileHeader)

	assert.NoError(t, ValidateImageFile(fileHeader), "Validation should be case-insensitive")
}

func TestValidateImageFile_FileTooLarge(t *testing.T) {
	content := []byte("fake png content")
	fileHeader := createTestFileHeader("large.png", 11*1024*1024, content)
	require.NotNil(t, fileHeader)

	err := ValidateImageFile(fileHeader)
	require.Error(t, err)

	fileErr, ok := err.(*FileUploadError)
	require.True(t, ok, "Error should be of type FileUploadError")
	assert.Equal(t, "FILE_TOO_LARGE", fileErr.Code)
	assert.Contains(t, fileErr.Message, "File size exceeds maximum allowed size")
}

func TestValidateImageFile_InvalidFormat(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"jpg", "balloons.jpg"},
		{"jpeg", "balloons.jpeg"},
		{"gif", "balloons.gif"},
		{"no extension", "balloons"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte("fake content")
			fileHeader := createTestFileHeader(tt.filename, int64(len(content)), content)
			require.NotNil(t, fileHeader)

			err := ValidateImageFile(fileHeader)
			require.Error(t, err)

			fileErr, ok := err.(*FileUploadError)
			require.True(t, ok, "Error should be of type FileUploadError")
			assert.Equal(t, "INVALID_FILE_FORMAT", fileErr.Code)
			assert.Contains(t, fileErr.Message, "Only .png files are allowed")
		})
	}
}

func TestValidateImageFile_Missing(t *testing.T) {
	err := ValidateImageFile(nil)
	require.Error(t, err)

	fileErr, ok := err.(*FileUploadError)
	require.True(t, ok)
	assert.Equal(t, "MISSING_FILE", fileErr.Code)
}

func TestFileUploadError_Error(t *testing.T) {
	err := &FileUploadError{
		Code:    "TEST_CODE",
		Message: "Test error message",
	}

	assert.Equal(t, "Test error message", err.Error())
}

func TestObjectKey(t *testing.T) {
	now := time.Unix(1700000000, 0)

	assert.Equal(t, "products/1700000000_rose.png", ObjectKey("products", "rose.png", now))
	assert.Equal(t, "products/1700000000_rose.png", ObjectKey("/products/", "../../rose.png", now))
	assert.Equal(t, "uploads/1700000000_rose.png", ObjectKey("", "rose.png", now))
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw    string
		want   uint
		wantOK bool
	}{
		{"1", 1, true},
		{" 42 ", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseID(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
