package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	// MaxImageSize is the maximum decoded image size, 10MB
	MaxImageSize = 10 * 1024 * 1024
)

// ImageError represents an image payload validation error
type ImageError struct {
	Code    string
	Message string
}

func (e *ImageError) Error() string {
	return e.Message
}

// DecodeCarPhoto validates and decodes a base64 image payload. A data-URL
// prefix ("data:image/...;base64,") is tolerated and stripped.
func DecodeCarPhoto(payload string) ([]byte, error) {
	if payload == "" {
		return nil, &ImageError{
			Code:    "EMPTY_IMAGE",
			Message: "Image payload is empty",
		}
	}

	if idx := strings.Index(payload, ";base64,"); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+len(";base64,"):]
	}

	// Cheap size check before decoding: base64 inflates by 4/3
	if len(payload) > MaxImageSize*4/3+4 {
		return nil, &ImageError{
			Code:    "IMAGE_TOO_LARGE",
			Message: fmt.Sprintf("Image exceeds maximum allowed size of %d MB", MaxImageSize/(1024*1024)),
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &ImageError{
			Code:    "INVALID_IMAGE_ENCODING",
			Message: "Image payload is not valid base64",
		}
	}

	if len(data) > MaxImageSize {
		return nil, &ImageError{
			Code:    "IMAGE_TOO_LARGE",
			Message: fmt.Sprintf("Image exceeds maximum allowed size of %d MB", MaxImageSize/(1024*1024)),
		}
	}

	return data, nil
}
