package term

import "io"

// Key is a decoded logical key event. Printable characters and control
// bytes carry their literal code; arrow up/down use negated codes so they
// can't collide with literal input.
type Key int

const (
	KeyUp   Key = -65
	KeyDown Key = -66

	KeyTab       Key = 9
	KeyEnter     Key = 10
	KeyReturn    Key = 13
	KeyBackspace Key = 8
	KeyDelete    Key = 127
)

// Decoder turns raw terminal bytes into logical key events. Each call
// issues a single read of up to three bytes, enough for one ESC [ A/B/C/D
// arrow sequence. Escape sequences split across reads are not
// reassembled, and non-up/down sequences fold to their final byte, so
// arrow right/left are indistinguishable from typed 'C'/'D'.
type Decoder struct {
	r   io.Reader
	buf [3]byte
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey blocks until at least one byte arrives and returns the decoded
// key. A read error is fatal to the session and is returned as-is.
func (d *Decoder) ReadKey() (Key, error) {
	for {
		n, err := d.r.Read(d.buf[:])
		if err != nil {
			return 0, err
		}
		switch n {
		case 0:
			continue
		case 3:
			// Third byte discriminates the escape sequence. Only up and
			// down get negated codes; everything else falls back to the
			// literal last byte.
			k := Key(d.buf[2])
			if k == 65 || k == 66 {
				return -k, nil
			}
			return k, nil
		case 1:
			return Key(d.buf[0]), nil
		default:
			return Key(d.buf[n-1]), nil
		}
	}
}
