package service

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// baseDir is the statics root every generated or uploaded asset lives under.
// The file controller serves it at /media.
const baseDir = "statics"

func InArray[T comparable](val T, array []T) bool {
	for _, v := range array {
		if val == v {
			return true
		}
	}
	return false
}

var allowedUploadTypes = []string{
	"image/jpeg",
	"image/png",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.ms-excel",
}

// Upload stores a multipart file under statics/<folder> and returns its path.
// The stored name is prefixed with the upload time so repeated imports of the
// same workbook never collide.
func Upload(file *multipart.FileHeader, folder string) (path string, err error) {
	if file == nil {
		return "", nil
	}

	contentType := file.Header.Get("Content-Type")
	if !InArray(contentType, allowedUploadTypes) {
		return "", fmt.Errorf("invalid file type, expected: %v, got: %s", allowedUploadTypes, contentType)
	}

	targetDir := filepath.Join(baseDir, folder)
	if err = os.MkdirAll(targetDir, os.ModePerm); err != nil {
		return "", err
	}

	// Strip any path components a client may have smuggled into the name.
	name := filepath.Base(strings.ReplaceAll(file.Filename, "\\", "/"))
	dest := filepath.Join(targetDir, time.Now().Format(time.RFC3339)+"-"+name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			log.Println("file upload src.Close() error:", closeErr)
		}
	}()

	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			log.Println("file upload out.Close() error:", closeErr)
		}
	}()

	if _, err = io.Copy(out, src); err != nil {
		return "", err
	}

	return dest, nil
}
