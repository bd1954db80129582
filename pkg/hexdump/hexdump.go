// Package hexdump renders raw memory snapshots as formatted hex listings.
//
// The output pairs hex bytes, grouped in rows of 16 with a leading offset
// column, with a parallel ASCII column where bytes outside the printable
// range render as '.'. It is purely diagnostic: a pure function of its
// input with no side effects on the data being dumped.
//
// Example output for a short string:
//
//	my_str
//	  0000  61 20 63 68 61 72 20 73 74 72 69 6E 67 20 67 72  a char string gr
//	  0010  65 61 74 65 72 00                                eater.
package hexdump

import (
	"fmt"
	"io"
	"strings"
)

// bytesPerRow is the number of bytes rendered per output line.
const bytesPerRow = 16

// Dump returns a formatted hex+ASCII listing of data. If desc is non-empty
// it is emitted as a heading line before the listing. Empty data yields
// just the heading (if any).
func Dump(desc string, data []byte) string {
	var sb strings.Builder
	// Fdump on a strings.Builder cannot fail.
	_ = Fdump(&sb, desc, data)
	return sb.String()
}

// Fdump writes a formatted hex+ASCII listing of data to w. If desc is
// non-empty it is emitted as a heading line before the listing.
func Fdump(w io.Writer, desc string, data []byte) error {
	if desc != "" {
		if _, err := fmt.Fprintf(w, "%s\n", desc); err != nil {
			return err
		}
	}
	if len(data) == 0 {
		return nil
	}

	ascii := make([]byte, 0, bytesPerRow)

	for i, b := range data {
		if i%bytesPerRow == 0 {
			// Close the previous row's ASCII column before starting
			// a new offset line.
			if i != 0 {
				if _, err := fmt.Fprintf(w, "  %s\n", ascii); err != nil {
					return err
				}
				ascii = ascii[:0]
			}
			if _, err := fmt.Fprintf(w, "  %04X ", i); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, " %02X", b); err != nil {
			return err
		}

		if b < 0x20 || b > 0x7e {
			ascii = append(ascii, '.')
		} else {
			ascii = append(ascii, b)
		}
	}

	// Pad the final row so the ASCII column lines up.
	for i := len(data); i%bytesPerRow != 0; i++ {
		if _, err := io.WriteString(w, "   "); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  %s\n", ascii)
	return err
}
