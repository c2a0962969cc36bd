// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package util

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DataURLImage is an image decoded from a data URL.
type DataURLImage struct {
	// ContentType is the MIME type of the image, e.g. image/png.
	ContentType string

	// Ext is the file extension for the image, e.g. png.
	Ext string

	// Data is the image content.
	Data []byte
}

// DecodeImageDataURL decodes a base64 image data URL such as data:image/png;base64,....
func DecodeImageDataURL(dataURL string) (DataURLImage, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return DataURLImage{}, fmt.Errorf("util: invalid data URL %q", truncate(dataURL))
	}
	ct, contents, ok := strings.Cut(rest, ";")
	if !ok {
		return DataURLImage{}, fmt.Errorf("util: invalid data URL %q", truncate(dataURL))
	}

	ext, ok := strings.CutPrefix(ct, "image/")
	if !ok || ext == "" {
		return DataURLImage{}, fmt.Errorf("util: only image data URLs supported, got %q", ct)
	}
	if ext == "jpeg" {
		ext = "jpg"
	}

	b64, ok := strings.CutPrefix(contents, "base64,")
	if !ok {
		return DataURLImage{}, fmt.Errorf("util: only base64 data URL supported, got %q", truncate(dataURL))
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return DataURLImage{}, fmt.Errorf("util: decoding base64 data URL: %w", err)
	}
	return DataURLImage{
		ContentType: ct,
		Ext:         ext,
		Data:        data,
	}, nil
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
