package bitflag

import "github.com/pkg/errors"

// Field reads and writes one flag of the set it was created with. Fields
// are made once, when the set is constructed, and share its storage.
type Field struct {
	set  *flagSet
	name string
	bit  uint
}

func (f *Field) Name() string { return f.name }
func (f *Field) Bit() uint    { return f.bit }
func (f *Field) Get() bool    { return hasBit(f.set.value, f.bit) }

func (f *Field) Set(value bool) {
	f.set.value = assignBit(f.set.value, f.bit, value)
}

// Field returns the accessor bound to name.
func (s *flagSet) Field(name string) (*Field, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFlag, "%q", name)
	}
	return s.fields[i], nil
}

// Fields returns every accessor in bit order.
func (s *flagSet) Fields() []*Field {
	return append([]*Field(nil), s.fields...)
}
