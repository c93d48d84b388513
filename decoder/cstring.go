package decoder

import (
	"bufio"
	"io"

	"github.com/althonos/nafcodec/errs"
)

// readCString reads bytes up to and including a terminating 0x00 byte from
// r, returning the string without the terminator.
func readCString(r *bufio.Reader) (string, error) {
	s, err := r.ReadString(0)
	if err != nil {
		if err == io.EOF {
			return "", errs.ErrTruncated
		}

		return "", err
	}

	return s[:len(s)-1], nil
}
