package values

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"time"
)

// ContentType marks stored payloads as opaque binary.
const ContentType = "application/octet-stream"

// magic prefixes every encoded payload so the decoder can tell its own
// output from foreign or corrupt data. The encoding carries no further
// schema or version information; whatever encodes a value is the only
// thing that can decode it.
const magic = "objv1\n"

// ErrForeignPayload is returned when a payload does not carry the expected
// format marker.
var ErrForeignPayload = errors.New("payload is not a recognized value encoding")

func init() {
	// Concrete types that may appear behind interface values, e.g. in
	// documents decoded from JSON.
	gob.Register(map[string]any{})
	gob.Register([]any{})
	gob.Register(time.Time{})
	gob.Register("")
	gob.Register(float64(0))
	gob.Register(int(0))
	gob.Register(bool(false))
}

// Encode writes value to w behind the format marker.
func Encode(w io.Writer, value any) error {
	if _, err := io.WriteString(w, magic); err != nil {
		return fmt.Errorf("failed to write payload marker: %w", err)
	}
	if err := gob.NewEncoder(w).Encode(value); err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	return nil
}

// Decode reads a value previously written by Encode into out, which must
// be a non-nil pointer. Payloads without the format marker are rejected
// with ErrForeignPayload.
func Decode(r io.Reader, out any) error {
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return fmt.Errorf("%w: %v", ErrForeignPayload, err)
	}
	if string(header) != magic {
		return ErrForeignPayload
	}
	if err := gob.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("failed to decode value: %w", err)
	}
	return nil
}
