package storage

import (
	"bytes"
	"fmt"
	"image"

	_ "image/jpeg"
	_ "image/png"
)

// ImageValidator rejects uploads that are not real JPEG/PNG images or
// exceed the size cap.
type ImageValidator struct {
	MaxSize int64 // bytes
}

func NewImageValidator() *ImageValidator {
	return &ImageValidator{MaxSize: 5 * 1024 * 1024} // 5MB
}

func (v *ImageValidator) Validate(data []byte) error {
	if int64(len(data)) > v.MaxSize {
		return fmt.Errorf("image exceeds %dMB", v.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
}
