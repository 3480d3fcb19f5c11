// Package source reads the markdown file the viewer displays. Reload
// re-reads through the same path, so BOM handling stays consistent between
// startup and reload.
package source

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
)

type bomEncoding int

const (
	encodingNone bomEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// ReadFile reads path and normalizes BOM-marked content to plain UTF-8.
// UTF-16 files (with BOM) are transcoded; everything else is returned as-is
// and validated later by the parser.
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Normalize(content)
}

// Normalize strips a UTF-8 BOM and transcodes UTF-16 BOM content to UTF-8.
func Normalize(content []byte) ([]byte, error) {
	switch detectBOM(content) {
	case encodingUTF8BOM:
		return content[3:], nil
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return content, nil
	}
}

func detectBOM(content []byte) bomEncoding {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(content) >= 2 {
		switch {
		case content[0] == 0xFF && content[1] == 0xFE:
			return encodingUTF16LE
		case content[0] == 0xFE && content[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingNone
}

func decodeUTF16(content []byte, endian unicode.Endianness) ([]byte, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return nil, fmt.Errorf("decode utf-16: %w", err)
	}
	return out, nil
}
