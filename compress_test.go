package bitflag

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	assertion "github.com/stretchr/testify/assert"
)

func TestSnappy(t *testing.T) {
	assert := assertion.New(t)
	in := bytes.Repeat([]byte("flagflagflag"), 20)
	c, err := SnappyCompress(in)
	assert.NoError(err)
	assert.True(len(c) < len(in))
	out, err := SnappyDeCompress(c)
	assert.NoError(err)
	assert.Equal(in, out)
}

func TestLz4(t *testing.T) {
	assert := assertion.New(t)
	in := bytes.Repeat([]byte("flagflagflag"), 20)
	c, err := Lz4Compress(in)
	assert.NoError(err)
	t.Log(len(c), len(in))
	out, err := Lz4DeCompress(c)
	assert.NoError(err)
	assert.Equal(in, out)
}

func TestParseCompressAlgorithm(t *testing.T) {
	assert := assertion.New(t)
	for _, a := range []CompressAlgorithm{CompSnappy, CompNone, CompLz4} {
		got, err := ParseCompressAlgorithm(a.String())
		assert.NoError(err)
		assert.Equal(a, got)
	}
	_, err := ParseCompressAlgorithm("zstd")
	assert.True(errors.Is(err, ErrInvalidArgument))
	assert.Nil(CompNone.compressor())
}
