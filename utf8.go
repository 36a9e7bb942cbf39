package rope

import "github.com/pkg/errors"

// codepointLen returns the byte length of the codepoint whose leading byte
// is b. The table mirrors the reference C implementation's codepoint_size:
// the standard one-to-four-byte UTF-8 forms plus the legacy five- and
// six-byte forms it still recognized. Continuation bytes (0x80-0xbf) and the
// two bytes that can never lead a codepoint (0xfe, 0xff) are rejected
// outright, which the C table left implicit.
func codepointLen(b byte) (int, error) {
	switch {
	case b <= 0x7f:
		return 1, nil
	case b <= 0xbf:
		return 0, errors.WithStack(ErrInvalidUTF8)
	case b <= 0xdf:
		return 2, nil
	case b <= 0xef:
		return 3, nil
	case b <= 0xf7:
		return 4, nil
	case b <= 0xfb:
		return 5, nil
	case b <= 0xfd:
		return 6, nil
	default:
		return 0, errors.WithStack(ErrInvalidUTF8)
	}
}

// countChars scans b as a sequence of codepoints and returns how many there
// are. b is assumed to start on a codepoint boundary.
func countChars(b []byte) (int, error) {
	n := 0
	off := 0
	for off < len(b) {
		step, err := codepointLen(b[off])
		if err != nil {
			return 0, err
		}
		off += step
		n++
	}
	return n, nil
}

// byteOffsetForChar scans n codepoints into b and returns the resulting byte
// offset. n must not exceed the number of codepoints in b.
func byteOffsetForChar(b []byte, n uint64) (int, error) {
	off := 0
	for i := uint64(0); i < n; i++ {
		step, err := codepointLen(b[off])
		if err != nil {
			return 0, err
		}
		off += step
	}
	return off, nil
}

// nextChunk returns the byte and character length of the longest prefix of
// data that fits within leafCap bytes without splitting a codepoint. If even
// the first codepoint does not fit, it is returned anyway so callers always
// make forward progress.
func nextChunk(data []byte, leafCap int) (int, int, error) {
	nBytes := 0
	nChars := 0
	for nBytes < len(data) {
		step, err := codepointLen(data[nBytes])
		if err != nil {
			return 0, 0, err
		}
		if nBytes+step > leafCap {
			break
		}
		nBytes += step
		nChars++
	}
	if nBytes == 0 && len(data) > 0 {
		step, err := codepointLen(data[0])
		if err != nil {
			return 0, 0, err
		}
		nBytes = step
		nChars = 1
	}
	return nBytes, nChars, nil
}

// Validator checks a byte stream for UTF-8 validity across arbitrary chunk
// boundaries, the way a reader fed in fixed-size buffers needs to. Use it
// when payload bytes arrive incrementally instead of as one slice.
type Validator struct {
	remaining int // continuation bytes still owed to the in-flight codepoint
}

// NewValidator returns a Validator ready to check the start of a new byte
// stream.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateBytes feeds the next chunk of the stream to v. It returns false as
// soon as the stream is provably invalid; once it has returned false, v must
// not be reused.
func (v *Validator) ValidateBytes(data []byte) bool {
	for _, b := range data {
		if v.remaining > 0 {
			if b < 0x80 || b > 0xbf {
				return false
			}
			v.remaining--
			continue
		}
		n, err := codepointLen(b)
		if err != nil {
			return false
		}
		v.remaining = n - 1
	}
	return true
}

// ValidateEnd reports whether the stream ended on a codepoint boundary. Call
// it once after the final ValidateBytes call.
func (v *Validator) ValidateEnd() bool {
	return v.remaining == 0
}

// validateUTF8 checks data in one shot and returns ErrInvalidUTF8 if it is
// not a complete, valid UTF-8 byte sequence.
func validateUTF8(data []byte) error {
	v := NewValidator()
	if !v.ValidateBytes(data) || !v.ValidateEnd() {
		return errors.WithStack(ErrInvalidUTF8)
	}
	return nil
}
