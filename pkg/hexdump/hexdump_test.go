package hexdump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump_SingleFullRow(t *testing.T) {
	data := []byte("0123456789ABCDEF")

	got := Dump("my_str", data)
	want := "my_str\n" +
		"  0000  30 31 32 33 34 35 36 37 38 39 41 42 43 44 45 46  0123456789ABCDEF\n"

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDump_PartialRowPadding(t *testing.T) {
	data := []byte{0x00, 0x41, 0x7F}

	got := Dump("", data)
	want := "  0000  00 41 7F" + strings.Repeat("   ", 13) + "  .A.\n"

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDump_MultiRow(t *testing.T) {
	// 17 bytes forces a second row with a single byte.
	data := make([]byte, 17)
	for i := range data {
		data[i] = byte(i)
	}

	got := Dump("", data)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.True(t, strings.HasPrefix(lines[0], "  0000 "), "first row offset")
	assert.True(t, strings.HasPrefix(lines[1], "  0010 "), "second row offset")
	// Bytes 0x00..0x0F are all non-printable.
	assert.True(t, strings.HasSuffix(lines[0], "  ................"), "ascii column: %q", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "  ."), "ascii column: %q", lines[1])
}

func TestDump_PrintableBoundaries(t *testing.T) {
	// 0x1F and 0x7F are outside the printable range; 0x20 and 0x7E inside.
	got := Dump("", []byte{0x1F, 0x20, 0x7E, 0x7F})
	assert.True(t, strings.HasSuffix(got, "  . ~.\n"), "got: %q", got)
}

func TestDump_Empty(t *testing.T) {
	assert.Equal(t, "label\n", Dump("label", nil))
	assert.Equal(t, "", Dump("", nil))
}

func TestFdump_Writer(t *testing.T) {
	var buf bytes.Buffer
	err := Fdump(&buf, "snap", []byte{0xDE, 0xAD})
	require.NoError(t, err)

	assert.Equal(t, Dump("snap", []byte{0xDE, 0xAD}), buf.String())
}
