package bitflag

// Flags8 packs up to 8 named flags into a single byte.
//
// Use NewFlags8 or Flags8FromJSON to build one. The zero value has no flags
// and is only meant as a target for UnmarshalJSON or UnmarshalBinary. A
// Flags8 must not be copied after construction.
type Flags8 struct {
	flagSet
}

// NewFlags8 creates a Flags8 with every flag cleared. If options is nil,
// DefaultOptions is used.
func NewFlags8(names []string, options *Options) (*Flags8, error) {
	f := &Flags8{}
	if err := f.init("Flags8", Width8, names, options); err != nil {
		return nil, err
	}
	return f, nil
}

// Flags8FromJSON builds a Flags8 from a JSON object of booleans.
func Flags8FromJSON(data []byte, options *Options) (*Flags8, error) {
	obj, err := ParseObject(data)
	if err != nil {
		return nil, err
	}
	return Flags8FromObject(obj, options)
}

func Flags8FromObject(obj Object, options *Options) (*Flags8, error) {
	f, err := NewFlags8(obj.Names(), options)
	if err != nil {
		return nil, err
	}
	f.SetFlags(obj.Map())
	return f, nil
}

// ToByte and FromByte are ToValue and FromValue sized to the set.
func (f *Flags8) ToByte() uint8 { return uint8(f.value) }

func (f *Flags8) FromByte(v uint8) *Flags8 {
	f.value = uint32(v)
	return f
}

func (f *Flags8) UnmarshalJSON(data []byte) error {
	return f.decodeJSON("Flags8", Width8, data)
}

func (f *Flags8) UnmarshalBinary(data []byte) error {
	return f.decodeBinary("Flags8", Width8, data)
}
