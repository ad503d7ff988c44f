package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeCarPhoto(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	data, err := DecodeCarPhoto(payload)
	assert.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), data)
}

func TestDecodeCarPhotoWithDataURLPrefix(t *testing.T) {
	payload := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))

	data, err := DecodeCarPhoto(payload)
	assert.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)
}

func TestDecodeCarPhotoRejectsEmpty(t *testing.T) {
	_, err := DecodeCarPhoto("")
	assert.Error(t, err)

	imgErr, ok := err.(*ImageError)
	assert.True(t, ok)
	assert.Equal(t, "EMPTY_IMAGE", imgErr.Code)
}

func TestDecodeCarPhotoRejectsInvalidBase64(t *testing.T) {
	_, err := DecodeCarPhoto("not valid base64!!!")
	assert.Error(t, err)

	imgErr, ok := err.(*ImageError)
	assert.True(t, ok)
	assert.Equal(t, "INVALID_IMAGE_ENCODING", imgErr.Code)
}

func TestDecodeCarPhotoRejectsOversizedPayload(t *testing.T) {
	// 4/3 inflation means this base64 string exceeds the decoded cap
	huge := make([]byte, MaxImageSize*4/3+100)
	for i := range huge {
		huge[i] = 'A'
	}

	_, err := DecodeCarPhoto(string(huge))
	assert.Error(t, err)

	imgErr, ok := err.(*ImageError)
	assert.True(t, ok)
	assert.Equal(t, "IMAGE_TOO_LARGE", imgErr.Code)
}
