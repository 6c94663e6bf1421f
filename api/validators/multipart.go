package validators

import (
	"errors"
	"io"
	"net/http"
	"strings"

	pkgerrors "github.com/bintangpramudya/kasirpay-backend/pkg/errors"
	"github.com/gabriel-vasile/mimetype"
)

var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
}

// ImageFile is a fully-read multipart image upload with its sniffed MIME type.
type ImageFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ParseImageFile reads the named multipart file field and verifies it holds an
// image by sniffing the content, not trusting the client header. A missing
// field is a validation error so samples without an image fail fast.
func ParseImageFile(r *http.Request, field string, maxBytes int64) (*ImageFile, error) {
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form")
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Image is required")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "reading uploaded file")
	}
	defer func() { _ = file.Close() }()

	if maxBytes > 0 && header.Size > maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "uploaded file is too large").
			WithDetails(map[string]any{"max_bytes": maxBytes})
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "reading uploaded file")
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "uploaded file is too large").
			WithDetails(map[string]any{"max_bytes": maxBytes})
	}
	if len(data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Image is required")
	}

	detected := mimetype.Detect(data)
	if !isAllowedImageType(detected.String()) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "uploaded file must be an image").
			WithDetails(map[string]any{"detected": detected.String()})
	}

	return &ImageFile{
		Filename:    header.Filename,
		ContentType: detected.String(),
		Data:        data,
	}, nil
}

func isAllowedImageType(mime string) bool {
	for _, allowed := range allowedImageTypes {
		if strings.EqualFold(mime, allowed) {
			return true
		}
	}
	return false
}
