// Package bitflag packs a fixed list of named booleans into a single 8, 16
// or 32 bit unsigned integer.
//
// A flag set is not safe for concurrent mutation; callers sharing one
// between goroutines must serialize access themselves.
package bitflag

import (
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Width is the number of bits backing a flag set. It is also the maximum
// number of flags the set can hold.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
)

// Max returns the largest value a set of this width can store.
func (w Width) Max() uint32 { return lowMask(int(w)) }

// Container is the behavior shared by Flags8, Flags16 and Flags32.
type Container interface {
	HasFlag(name string) bool
	GetFlag(name string) (bool, error)
	SetFlag(name string, value bool) error
	ToggleFlag(name string) error
	SetFlags(values map[string]bool)
	ToggleFlags(names ...string) error

	Count() int
	Any() bool
	None() bool
	All(names ...string) (bool, error)
	AnyOf(names ...string) (bool, error)
	NoneOf(names ...string) (bool, error)

	ToValue() uint32
	FromValue(v int64) error
	FromNumber(v float64) error
	ToObject() Object
	ToJSON() ([]byte, error)
	MarshalJSON() ([]byte, error)
	MarshalBinary() ([]byte, error)

	FlagNames() []string
	Field(name string) (*Field, error)
	Fields() []*Field
	Range(fn func(name string, value bool) bool)
	Width() Width
	Len() int
	String() string
}

// New creates an empty flag set of the given width.
func New(width Width, names []string, options *Options) (Container, error) {
	var (
		c   Container
		err error
	)
	switch width {
	case Width8:
		c, err = NewFlags8(names, options)
	case Width16:
		c, err = NewFlags16(names, options)
	case Width32:
		c, err = NewFlags32(names, options)
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "unsupported width %d", width)
	}
	// keep the interface nil on failure
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FromJSON builds a flag set of the given width from a JSON object of
// booleans. Flag names follow the key order of the document.
func FromJSON(width Width, data []byte, options *Options) (Container, error) {
	obj, err := ParseObject(data)
	if err != nil {
		return nil, err
	}
	return FromObject(width, obj, options)
}

// FromObject is FromJSON for an already parsed object.
func FromObject(width Width, obj Object, options *Options) (Container, error) {
	c, err := New(width, obj.Names(), options)
	if err != nil {
		return nil, err
	}
	c.SetFlags(obj.Map())
	return c, nil
}

// flagSet holds everything the width variants share.
type flagSet struct {
	noCopy noCopy

	kind    string
	width   Width
	value   uint32
	names   []string
	index   map[string]uint
	fields  []*Field
	options *Options
}

// noCopy lets go vet's copylocks check flag sets copied by value, which
// would leave their fields pointing at the original.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func (s *flagSet) init(kind string, width Width, names []string, options *Options) error {
	if options == nil {
		options = DefaultOptions
	}
	if len(names) == 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s needs at least one flag name", kind)
	}
	if len(names) > int(width) {
		return errors.Wrapf(ErrInvalidArgument, "%s holds at most %d flags, got %d", kind, width, len(names))
	}
	index := make(map[string]uint, len(names))
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return errors.Wrapf(ErrInvalidArgument, "flag name at position %d is blank", i)
		}
		if _, ok := index[name]; ok {
			return errors.Wrapf(ErrDuplicateName, "flag %q", name)
		}
		index[name] = uint(i)
	}

	s.kind = kind
	s.width = width
	s.value = 0
	s.names = append([]string(nil), names...)
	s.index = index
	s.options = options
	s.fields = make([]*Field, len(names))
	for i, name := range s.names {
		s.fields[i] = &Field{set: s, name: name, bit: uint(i)}
	}
	log.WithFields(log.Fields{"kind": kind, "flags": len(names)}).Debug("flag set created")
	return nil
}

func (s *flagSet) opts() *Options {
	if s.options == nil {
		return DefaultOptions
	}
	return s.options
}

func (s *flagSet) bit(name string) (uint, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownFlag, "%q", name)
	}
	return i, nil
}

func (s *flagSet) HasFlag(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s *flagSet) GetFlag(name string) (bool, error) {
	i, err := s.bit(name)
	if err != nil {
		return false, err
	}
	return hasBit(s.value, i), nil
}

func (s *flagSet) SetFlag(name string, value bool) error {
	i, err := s.bit(name)
	if err != nil {
		return err
	}
	s.value = assignBit(s.value, i, value)
	return nil
}

func (s *flagSet) ToggleFlag(name string) error {
	i, err := s.bit(name)
	if err != nil {
		return err
	}
	s.value = toggleBit(s.value, i)
	return nil
}

// SetFlags merges values into the set. Keys that are not registered are
// ignored.
func (s *flagSet) SetFlags(values map[string]bool) {
	for name, v := range values {
		i, ok := s.index[name]
		if !ok {
			log.WithField("flag", name).Debug("ignoring unregistered flag")
			continue
		}
		s.value = assignBit(s.value, i, v)
	}
}

// ToggleFlags flips every named flag. Unless Options.IgnoreUnknownToggles is
// set, an unregistered name fails the whole call before anything is flipped.
func (s *flagSet) ToggleFlags(names ...string) error {
	toggle := make([]uint, 0, len(names))
	for _, name := range names {
		i, err := s.bit(name)
		if err != nil {
			if s.opts().IgnoreUnknownToggles {
				continue
			}
			return err
		}
		toggle = append(toggle, i)
	}
	for _, i := range toggle {
		s.value = toggleBit(s.value, i)
	}
	return nil
}

// Count returns the number of registered flags that are set. Bits above the
// registered range are not counted.
func (s *flagSet) Count() int {
	return bits.OnesCount32(s.value & lowMask(len(s.names)))
}

// Any reports whether the stored value is non-zero, including bits above
// the registered range.
func (s *flagSet) Any() bool  { return s.value != 0 }
func (s *flagSet) None() bool { return !s.Any() }

func (s *flagSet) lookup(names []string) ([]uint, error) {
	out := make([]uint, len(names))
	for n, name := range names {
		i, err := s.bit(name)
		if err != nil {
			return nil, err
		}
		out[n] = i
	}
	return out, nil
}

// All reports whether every named flag is set. It is true for no names.
func (s *flagSet) All(names ...string) (bool, error) {
	idx, err := s.lookup(names)
	if err != nil {
		return false, err
	}
	for _, i := range idx {
		if !hasBit(s.value, i) {
			return false, nil
		}
	}
	return true, nil
}

func (s *flagSet) AnyOf(names ...string) (bool, error) {
	idx, err := s.lookup(names)
	if err != nil {
		return false, err
	}
	for _, i := range idx {
		if hasBit(s.value, i) {
			return true, nil
		}
	}
	return false, nil
}

func (s *flagSet) NoneOf(names ...string) (bool, error) {
	found, err := s.AnyOf(names...)
	if err != nil {
		return false, err
	}
	return !found, nil
}

func (s *flagSet) ToValue() uint32 { return s.value }

// FromValue replaces the stored value. v must fit the width of the set.
func (s *flagSet) FromValue(v int64) error {
	if v < 0 || v > int64(s.width.Max()) {
		return errors.Wrapf(ErrInvalidArgument, "value %d out of range [0, %d]", v, s.width.Max())
	}
	s.value = uint32(v)
	return nil
}

// FromNumber is FromValue for numbers that arrive as floating point, such as
// decoded JSON or user input. Non-integral values are rejected.
func (s *flagSet) FromNumber(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return errors.Wrapf(ErrInvalidArgument, "value %v is not an integer", v)
	}
	if v < 0 || v > float64(s.width.Max()) {
		return errors.Wrapf(ErrInvalidArgument, "value %v out of range [0, %d]", v, s.width.Max())
	}
	return s.FromValue(int64(v))
}

func (s *flagSet) ToObject() Object {
	obj := make(Object, len(s.names))
	for i, name := range s.names {
		obj[i] = Pair{Name: name, Value: hasBit(s.value, uint(i))}
	}
	return obj
}

func (s *flagSet) ToJSON() ([]byte, error) { return s.ToObject().MarshalJSON() }

func (s *flagSet) MarshalJSON() ([]byte, error) { return s.ToJSON() }

// checkUnset guards the decoders: the registry of a constructed set is
// fixed, only a zero value may be decoded into.
func (s *flagSet) checkUnset(kind string) error {
	if len(s.names) > 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s is already initialized", kind)
	}
	return nil
}

// decodeJSON builds a zero value set from a JSON object, keeping its options.
func (s *flagSet) decodeJSON(kind string, width Width, data []byte) error {
	if err := s.checkUnset(kind); err != nil {
		return err
	}
	obj, err := ParseObject(data)
	if err != nil {
		return err
	}
	if err := s.init(kind, width, obj.Names(), s.options); err != nil {
		return err
	}
	s.SetFlags(obj.Map())
	return nil
}

// FlagNames returns the registered names in bit order.
func (s *flagSet) FlagNames() []string {
	return append([]string(nil), s.names...)
}

// Deprecated: use FlagNames.
func (s *flagSet) Flags() []string { return s.FlagNames() }

// Range calls fn for every flag in bit order with its current value, until
// fn returns false.
func (s *flagSet) Range(fn func(name string, value bool) bool) {
	for i, name := range s.names {
		if !fn(name, hasBit(s.value, uint(i))) {
			return
		}
	}
}

func (s *flagSet) Width() Width { return s.width }
func (s *flagSet) Len() int     { return len(s.names) }

func (s *flagSet) String() string {
	var b strings.Builder
	b.WriteString(s.kind)
	b.WriteString(" {")
	for i, name := range s.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatBool(hasBit(s.value, uint(i))))
	}
	b.WriteByte('}')
	return b.String()
}
