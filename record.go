package bitflag

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// RecordFlag describes how the name block of a record is stored.
type RecordFlag uint8

const (
	RecordNamesSnappy RecordFlag = 1 << iota
	RecordNamesLz4
)

// minRecordSize = flag + width + value + blockLen + count = 1 + 1 + 1 + 1 + 1 = 5
const minRecordSize = 5

// record layout:
//   flag(1) | width(1) | uvarint value | uvarint blockLen | block
// block:
//   uvarint count | (uvarint nameLen | name) * count

// MarshalBinary encodes the names and the value of the set into one
// self-describing record.
func (s *flagSet) MarshalBinary() ([]byte, error) {
	block := marshalNames(s.names)

	var flag RecordFlag
	algo := s.opts().Compression
	if compress := algo.compressor(); compress != nil {
		c, err := compress(block)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compress names with %s", algo)
		}
		if len(c) < len(block) {
			block = c
			if algo == CompLz4 {
				flag |= RecordNamesLz4
			} else {
				flag |= RecordNamesSnappy
			}
		}
	}

	buf := bytes.NewBuffer(nil)
	buf.Write([]byte{byte(flag), byte(s.width)})
	writeUvarint(buf, uint64(s.value))
	writeUvarint(buf, uint64(len(block)))
	buf.Write(block)
	return buf.Bytes(), nil
}

// Decode reads a record written by MarshalBinary and returns a set of the
// width it was written with.
func Decode(data []byte, options *Options) (Container, error) {
	if len(data) < 2 {
		return nil, errors.Wrap(ErrMalformedRecord, "record too short")
	}
	var c interface {
		Container
		UnmarshalBinary(data []byte) error
	}
	var base *flagSet
	switch width := Width(data[1]); width {
	case Width8:
		f := &Flags8{}
		c, base = f, &f.flagSet
	case Width16:
		f := &Flags16{}
		c, base = f, &f.flagSet
	case Width32:
		f := &Flags32{}
		c, base = f, &f.flagSet
	default:
		return nil, errors.Wrapf(ErrMalformedRecord, "unsupported width %d", width)
	}
	base.options = options
	if err := c.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *flagSet) decodeBinary(kind string, width Width, data []byte) error {
	if err := s.checkUnset(kind); err != nil {
		return err
	}
	if len(data) < minRecordSize {
		return errors.Wrapf(ErrMalformedRecord, "record shorter than %d bytes", minRecordSize)
	}
	reader := bytes.NewReader(data)
	_flag, _ := reader.ReadByte()
	flag := RecordFlag(_flag)
	if flag&^(RecordNamesSnappy|RecordNamesLz4) != 0 {
		return errors.Wrapf(ErrMalformedRecord, "unknown record flags %#x", _flag)
	}
	if flag&RecordNamesSnappy != 0 && flag&RecordNamesLz4 != 0 {
		return errors.Wrap(ErrMalformedRecord, "names compressed twice")
	}
	_width, _ := reader.ReadByte()
	if Width(_width) != width {
		return errors.Wrapf(ErrMalformedRecord, "record holds a %d bit set, want %d", _width, width)
	}
	value, err := binary.ReadUvarint(reader)
	if err != nil {
		return errors.Wrap(ErrMalformedRecord, "failed to read value")
	}
	if value > uint64(width.Max()) {
		return errors.Wrapf(ErrMalformedRecord, "value %d exceeds %d bits", value, width)
	}
	blockLen, err := binary.ReadUvarint(reader)
	if err != nil {
		return errors.Wrap(ErrMalformedRecord, "failed to read name block length")
	}
	if blockLen > uint64(reader.Len()) {
		return errors.Wrap(ErrMalformedRecord, "name block truncated")
	}
	block := make([]byte, blockLen)
	if _, err = io.ReadFull(reader, block); err != nil {
		return errors.Wrap(ErrMalformedRecord, "failed to read name block")
	}
	if reader.Len() != 0 {
		return errors.Wrapf(ErrMalformedRecord, "%d bytes after name block", reader.Len())
	}

	switch {
	case flag&RecordNamesSnappy != 0:
		block, err = SnappyDeCompress(block)
	case flag&RecordNamesLz4 != 0:
		block, err = Lz4DeCompress(block)
	}
	if err != nil {
		return errors.Wrapf(ErrMalformedRecord, "failed to decompress names: %v", err)
	}
	names, err := unmarshalNames(block)
	if err != nil {
		return err
	}

	if err := s.init(kind, width, names, s.options); err != nil {
		return err
	}
	s.value = uint32(value)
	log.WithFields(log.Fields{"kind": kind, "flags": len(names), "size": len(data)}).Debug("flag set decoded")
	return nil
}

func marshalNames(names []string) []byte {
	buf := bytes.NewBuffer(nil)
	writeUvarint(buf, uint64(len(names)))
	for _, name := range names {
		writeUvarint(buf, uint64(len(name)))
		buf.WriteString(name)
	}
	return buf.Bytes()
}

func unmarshalNames(block []byte) ([]string, error) {
	reader := bytes.NewReader(block)
	count, err := binary.ReadUvarint(reader)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedRecord, "failed to read name count")
	}
	if count > uint64(Width32) {
		return nil, errors.Wrapf(ErrMalformedRecord, "%d names", count)
	}
	names := make([]string, 0, count)
	for i := uint64(0); i < count; i++ {
		n, err := binary.ReadUvarint(reader)
		if err != nil {
			return nil, errors.Wrap(ErrMalformedRecord, "failed to read name length")
		}
		if n > uint64(reader.Len()) {
			return nil, errors.Wrap(ErrMalformedRecord, "name truncated")
		}
		name := make([]byte, n)
		if _, err := io.ReadFull(reader, name); err != nil {
			return nil, errors.Wrap(ErrMalformedRecord, "failed to read name")
		}
		names = append(names, string(name))
	}
	if reader.Len() != 0 {
		return nil, errors.Wrapf(ErrMalformedRecord, "%d bytes after last name", reader.Len())
	}
	return names, nil
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	b := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(b, v)
	buf.Write(b[:n])
}
