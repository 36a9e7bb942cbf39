package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsEmpty(t *testing.T) {
	r := New()
	assert.Equal(t, uint64(0), r.CharCount())
	assert.Equal(t, uint64(0), r.ByteCount())
	assert.Equal(t, "", r.String())
	require.NoError(t, r.CheckInvariants())
}

func TestClose(t *testing.T) {
	r := New()
	require.NoError(t, r.Insert(0, []byte("hi")))
	r.Close()
	assert.Equal(t, uint64(0), r.CharCount())
	assert.Equal(t, "", r.String())
}

func TestUnicodeRoundTrip(t *testing.T) {
	r := newTestRope(t, DefaultLeafCap, 9)
	text := "hello, 世界! café résumé"
	require.NoError(t, r.Insert(0, []byte(text)))
	assert.Equal(t, text, r.String())

	wantChars, err := countChars([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, uint64(wantChars), r.CharCount())
	assert.Equal(t, uint64(len(text)), r.ByteCount())
	require.NoError(t, r.CheckInvariants())
}
