package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// zipPart is one named entry of the output package.
type zipPart struct {
	name string
	data []byte
}

// buildPackage zips the parts into the final package bytes.
func buildPackage(parts []zipPart) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create package entry %s: %w", p.name, err)
		}
		if _, err := w.Write(p.data); err != nil {
			return nil, fmt.Errorf("write package entry %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize package: %w", err)
	}
	return buf.Bytes(), nil
}
