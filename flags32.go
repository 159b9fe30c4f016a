package bitflag

// Flags32 packs up to 32 named flags into a 32 bit value.
//
// Use NewFlags32 or Flags32FromJSON to build one. The zero value has no flags
// and is only meant as a target for UnmarshalJSON or UnmarshalBinary. A
// Flags32 must not be copied after construction.
type Flags32 struct {
	flagSet
}

// NewFlags32 creates a Flags32 with every flag cleared. If options is nil,
// DefaultOptions is used.
func NewFlags32(names []string, options *Options) (*Flags32, error) {
	f := &Flags32{}
	if err := f.init("Flags32", Width32, names, options); err != nil {
		return nil, err
	}
	return f, nil
}

func Flags32FromJSON(data []byte, options *Options) (*Flags32, error) {
	obj, err := ParseObject(data)
	if err != nil {
		return nil, err
	}
	return Flags32FromObject(obj, options)
}

func Flags32FromObject(obj Object, options *Options) (*Flags32, error) {
	f, err := NewFlags32(obj.Names(), options)
	if err != nil {
		return nil, err
	}
	f.SetFlags(obj.Map())
	return f, nil
}

func (f *Flags32) ToLong() uint32 { return f.value }

func (f *Flags32) FromLong(v uint32) *Flags32 {
	f.value = v
	return f
}

func (f *Flags32) UnmarshalJSON(data []byte) error {
	return f.decodeJSON("Flags32", Width32, data)
}

func (f *Flags32) UnmarshalBinary(data []byte) error {
	return f.decodeBinary("Flags32", Width32, data)
}
