// Package loader reads pre-assembled programs as whitespace-separated
// unsigned octal words, the format the simulator consumes on stdin
// and the assembler emits.
package loader

import (
	"bufio"
	"io"
	"strconv"
)

// Load reads octal words from r until end of stream or the first
// token that is not a 16-bit octal number. A malformed token stops
// loading silently; it is not an error. The returned words belong at
// memory word index 0.
func Load(r io.Reader) ([]uint16, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var words []uint16
	for sc.Scan() {
		v, err := strconv.ParseUint(sc.Text(), 8, 16)
		if err != nil {
			break
		}
		words = append(words, uint16(v))
	}
	return words, sc.Err()
}
