// internal/models/images.go
package models

import (
	"database/sql/driver"
	"encoding/json"
)

// ImageList is an ordered list of image URLs. Rows written by older clients
// sometimes hold a JSON-encoded string instead of a native array, so every
// decode path normalizes through the same tolerant routine: a real array is
// kept, a string is parsed as a nested array, and anything unparsable comes
// back as an empty list.
type ImageList []string

// NormalizeImages decodes raw JSON that may be either an array of strings or
// a string containing a JSON array. Parse failures yield an empty list.
func NormalizeImages(raw []byte) ImageList {
	if len(raw) == 0 {
		return ImageList{}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			return ImageList{}
		}
		return ImageList(list)
	}

	var nested string
	if err := json.Unmarshal(raw, &nested); err == nil {
		if err := json.Unmarshal([]byte(nested), &list); err == nil && list != nil {
			return ImageList(list)
		}
	}

	return ImageList{}
}

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(ImageList{})
	}
	return json.Marshal([]string(l))
}

func (l *ImageList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		*l = NormalizeImages(v)
	case string:
		*l = NormalizeImages([]byte(v))
	default:
		*l = ImageList{}
	}
	return nil
}

func (l *ImageList) UnmarshalJSON(data []byte) error {
	*l = NormalizeImages(data)
	return nil
}

// First returns the leading image or the placeholder used across the store.
func (l ImageList) First() string {
	if len(l) > 0 {
		return l[0]
	}
	return "/placeholder.svg"
}
