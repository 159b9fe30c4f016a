package bitflag

// Flags16 packs up to 16 named flags into a 16 bit value.
//
// Use NewFlags16 or Flags16FromJSON to build one. The zero value has no flags
// and is only meant as a target for UnmarshalJSON or UnmarshalBinary. A
// Flags16 must not be copied after construction.
type Flags16 struct {
	flagSet
}

// NewFlags16 creates a Flags16 with every flag cleared. If options is nil,
// DefaultOptions is used.
func NewFlags16(names []string, options *Options) (*Flags16, error) {
	f := &Flags16{}
	if err := f.init("Flags16", Width16, names, options); err != nil {
		return nil, err
	}
	return f, nil
}

// Flags16FromJSON builds a Flags16 from a JSON object of booleans.
func Flags16FromJSON(data []byte, options *Options) (*Flags16, error) {
	obj, err := ParseObject(data)
	if err != nil {
		return nil, err
	}
	return Flags16FromObject(obj, options)
}

func Flags16FromObject(obj Object, options *Options) (*Flags16, error) {
	f, err := NewFlags16(obj.Names(), options)
	if err != nil {
		return nil, err
	}
	f.SetFlags(obj.Map())
	return f, nil
}

func (f *Flags16) ToShort() uint16 { return uint16(f.value) }

func (f *Flags16) FromShort(v uint16) *Flags16 {
	f.value = uint32(v)
	return f
}

func (f *Flags16) UnmarshalJSON(data []byte) error {
	return f.decodeJSON("Flags16", Width16, data)
}

func (f *Flags16) UnmarshalBinary(data []byte) error {
	return f.decodeBinary("Flags16", Width16, data)
}
