// Package embed generates C source that carries a file's content as a
// static array. The output is meant to be included with EMBED_NAME
// defined to the desired variable name:
//
//	#define EMBED_NAME my_asset
//	#include "my_asset.h"
package embed

import (
	"bufio"
	"fmt"
	"io"
)

// Kind selects the generated representation.
type Kind int

const (
	// KindString renders the file as a const char* array, one line per
	// element with the line terminator dropped.
	KindString Kind = iota

	// KindBytes renders the file as an unsigned char array.
	KindBytes
)

// Write renders r as a C array into w. path is only used for the header
// comment identifying the embedded file.
func Write(w io.Writer, r io.Reader, path string, kind Kind) error {
	bw := bufio.NewWriter(w)
	br := bufio.NewReader(r)

	if _, err := fmt.Fprintf(bw, "/* %s */\n", path); err != nil {
		return err
	}

	var err error
	if kind == KindString {
		err = writeStringArray(bw, br)
	} else {
		err = writeByteArray(bw, br)
	}
	if err != nil {
		return err
	}

	return bw.Flush()
}

func writeStringArray(w *bufio.Writer, r *bufio.Reader) error {
	if _, err := w.WriteString("static const char *EMBED_NAME[] = {\n\t\""); err != nil {
		return err
	}

	for {
		ch, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch ch {
		case '\t':
			_, err = w.WriteString(`\t`)
		case '\r':
			_, err = w.WriteString(`\r`)
		case '\v':
			_, err = w.WriteString(`\v`)
		case '\f':
			_, err = w.WriteString(`\f`)
		case '\b':
			_, err = w.WriteString(`\b`)
		case 0:
			_, err = w.WriteString(`\0`)
		case '"':
			_, err = w.WriteString(`\"`)
		case '\\':
			_, err = w.WriteString(`\\`)
		case '\n':
			// A line break closes the current element and opens the
			// next, unless the file ends here. The terminator itself is
			// not part of any element.
			if _, peekErr := r.Peek(1); peekErr == nil {
				_, err = w.WriteString("\",\n\t\"")
			}
		default:
			if ch >= ' ' && ch <= '~' {
				err = w.WriteByte(ch)
			} else {
				_, err = fmt.Fprintf(w, `\x%02X`, ch)
			}
		}
		if err != nil {
			return err
		}
	}

	_, err := w.WriteString("\",\n};\n#undef EMBED_NAME\n")
	return err
}

const bytesPerLine = 10

func writeByteArray(w *bufio.Writer, r *bufio.Reader) error {
	if _, err := w.WriteString("static unsigned char EMBED_NAME[] = {\n"); err != nil {
		return err
	}

	for i := 0; ; i++ {
		ch, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if i%bytesPerLine == 0 {
			if i > 0 {
				if err := w.WriteByte('\n'); err != nil {
					return err
				}
			}
			if err := w.WriteByte('\t'); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "0x%02X, ", ch); err != nil {
			return err
		}
	}

	_, err := w.WriteString("\n};\n#undef EMBED_NAME\n")
	return err
}
