// internal/models/images_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeImagesPlainArray(t *testing.T) {
	images := NormalizeImages([]byte(`["a.jpg","b.jpg"]`))
	assert.Equal(t, ImageList{"a.jpg", "b.jpg"}, images)
}

func TestNormalizeImagesNestedJSONString(t *testing.T) {
	// Some legacy rows stored the array serialized twice.
	images := NormalizeImages([]byte(`"[\"a.jpg\",\"b.jpg\"]"`))
	assert.Equal(t, ImageList{"a.jpg", "b.jpg"}, images)
}

func TestNormalizeImagesUnparsable(t *testing.T) {
	images := NormalizeImages([]byte(`{broken`))
	assert.NotNil(t, images)
	assert.Empty(t, images)
}

func TestNormalizeImagesEmpty(t *testing.T) {
	assert.Empty(t, NormalizeImages(nil))
	assert.Empty(t, NormalizeImages([]byte("")))
	assert.Empty(t, NormalizeImages([]byte("null")))
}

func TestImageListFirst(t *testing.T) {
	assert.Equal(t, "a.jpg", ImageList{"a.jpg", "b.jpg"}.First())
	assert.Equal(t, "/placeholder.svg", ImageList{}.First())
	assert.Equal(t, "/placeholder.svg", ImageList(nil).First())
}

func TestImageListScanRoundTrip(t *testing.T) {
	var images ImageList
	err := images.Scan([]byte(`["x.png"]`))
	assert.NoError(t, err)
	assert.Equal(t, ImageList{"x.png"}, images)

	value, err := images.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `["x.png"]`, string(value.([]byte)))
}
