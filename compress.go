package bitflag

import (
	"bytes"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4"
	"github.com/pkg/errors"
)

type CompressAlgorithm uint8

const (
	CompSnappy CompressAlgorithm = iota // default
	CompNone
	CompLz4
)

func (a CompressAlgorithm) String() string {
	switch a {
	case CompSnappy:
		return "snappy"
	case CompNone:
		return "none"
	case CompLz4:
		return "lz4"
	}
	return "unknown"
}

// ParseCompressAlgorithm is the inverse of CompressAlgorithm.String.
func ParseCompressAlgorithm(name string) (CompressAlgorithm, error) {
	for _, a := range []CompressAlgorithm{CompSnappy, CompNone, CompLz4} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown compression %q", name)
}

type Compressor func([]byte) ([]byte, error)
type DeCompressor func([]byte) ([]byte, error)

var (
	SnappyCompress Compressor = func(in []byte) ([]byte, error) {
		return snappy.Encode(nil, in), nil
	}
	SnappyDeCompress DeCompressor = func(in []byte) ([]byte, error) {
		return snappy.Decode(nil, in)
	}
)

var (
	Lz4Compress Compressor = func(in []byte) ([]byte, error) {
		buf := &bytes.Buffer{}
		writer := lz4.NewWriter(buf)
		writer.NoChecksum = true
		if _, err := writer.Write(in); err != nil {
			return nil, errors.Wrap(err, "lz4 write")
		}
		// Close writes the end mark, the frame is incomplete without it.
		if err := writer.Close(); err != nil {
			return nil, errors.Wrap(err, "lz4 close")
		}
		return buf.Bytes(), nil
	}

	Lz4DeCompress DeCompressor = func(in []byte) ([]byte, error) {
		buf := &bytes.Buffer{}
		reader := lz4.NewReader(bytes.NewReader(in))
		_, err := buf.ReadFrom(reader)
		return buf.Bytes(), err
	}
)

// compressor returns nil for CompNone.
func (a CompressAlgorithm) compressor() Compressor {
	switch a {
	case CompSnappy:
		return SnappyCompress
	case CompLz4:
		return Lz4Compress
	}
	return nil
}
