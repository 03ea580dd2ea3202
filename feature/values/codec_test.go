package values_test

import (
	"bytes"
	"strings"
	"testing"

	"object-manager/feature/values"

	"github.com/stretchr/testify/assert"
)

type report struct {
	Title string
	Pages int
	Tags  []string
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Run("Struct", func(t *testing.T) {
		in := report{Title: "Q1", Pages: 12, Tags: []string{"finance", "quarterly"}}

		var buf bytes.Buffer
		assert.NoError(t, values.Encode(&buf, in))

		var out report
		assert.NoError(t, values.Decode(&buf, &out))
		assert.Equal(t, in, out)
	})

	t.Run("Document", func(t *testing.T) {
		in := map[string]any{
			"title":     "Q1",
			"published": true,
			"revision":  float64(3),
		}

		var buf bytes.Buffer
		assert.NoError(t, values.Encode(&buf, in))

		var out map[string]any
		assert.NoError(t, values.Decode(&buf, &out))
		assert.Equal(t, in, out)
	})
}

func TestCodec_RejectsForeignPayload(t *testing.T) {
	t.Run("WrongMarker", func(t *testing.T) {
		var out report
		err := values.Decode(strings.NewReader("PK\x03\x04 not ours at all"), &out)
		assert.ErrorIs(t, err, values.ErrForeignPayload)
	})

	t.Run("Truncated", func(t *testing.T) {
		var out report
		err := values.Decode(strings.NewReader("ob"), &out)
		assert.ErrorIs(t, err, values.ErrForeignPayload)
	})

	t.Run("Empty", func(t *testing.T) {
		var out report
		err := values.Decode(strings.NewReader(""), &out)
		assert.ErrorIs(t, err, values.ErrForeignPayload)
	})
}
