// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package image

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"image/png"

	"google.golang.org/genai"
)

// FileWriter writes a file and returns its URL.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, contentType string, data []byte) (string, error)
}

type Writer struct {
	io FileWriter
}

func NewWriter(io FileWriter) *Writer {
	return &Writer{
		io: io,
	}
}

// WriteGenAIImage writes a generated image to path as a JPEG.
func (w *Writer) WriteGenAIImage(ctx context.Context, path string, blob *genai.Blob) (string, error) {
	image, err := ToJPEG(blob.MIMEType, blob.Data)
	if err != nil {
		return "", err
	}

	url, err := w.io.WriteFile(ctx, path, "image/jpeg", image)
	if err != nil {
		return "", fmt.Errorf("image: writing image to file io: %w", err)
	}
	return url, nil
}

// ToJPEG returns data encoded as JPEG. Only PNG and JPEG input is supported.
func ToJPEG(mimeType string, data []byte) ([]byte, error) {
	switch mimeType {
	case "image/jpeg":
		return data, nil
	case "image/png":
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("image: decoding png image: %w", err)
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, nil); err != nil {
			return nil, fmt.Errorf("image: encoding png to jpeg: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("image: unsupported mime type %s", mimeType)
	}
}
