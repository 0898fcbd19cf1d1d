package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"teamfolio/internal/services"

	"github.com/gin-gonic/gin"
)

// formFile reads an optional multipart file field. An absent or empty file
// returns nil; a malformed body propagates so the handler can reject it.
func formFile(c *gin.Context, field string) (*services.FileUpload, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if header.Size == 0 {
		return nil, nil
	}
	return readUpload(header)
}

func readUpload(header *multipart.FileHeader) (*services.FileUpload, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &services.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
