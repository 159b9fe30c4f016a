package bitflag

import (
	"io"
	"sort"

	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// Pair is one flag name with its value.
type Pair struct {
	Name  string
	Value bool
}

// Object is a flag name to value mapping that keeps its key order. It is
// encoded as a flat JSON object, e.g. {"read":true,"write":false}.
type Object []Pair

// ObjectFromMap builds an Object from m with keys in sorted order, since Go
// maps carry none.
func ObjectFromMap(m map[string]bool) Object {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	obj := make(Object, len(names))
	for i, name := range names {
		obj[i] = Pair{Name: name, Value: m[name]}
	}
	return obj
}

func (o Object) Names() []string {
	names := make([]string, len(o))
	for i, p := range o {
		names[i] = p.Name
	}
	return names
}

func (o Object) Map() map[string]bool {
	m := make(map[string]bool, len(o))
	for _, p := range o {
		m[p.Name] = p.Value
	}
	return m
}

func (o Object) MarshalJSON() ([]byte, error) {
	stream := json.ConfigCompatibleWithStandardLibrary.BorrowStream(nil)
	defer json.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)
	stream.WriteObjectStart()
	for i, p := range o {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(p.Name)
		stream.WriteBool(p.Value)
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, errors.Wrap(stream.Error, "failed to encode flags")
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func (o *Object) UnmarshalJSON(data []byte) error {
	obj, err := ParseObject(data)
	if err != nil {
		return err
	}
	*o = obj
	return nil
}

// ParseObject decodes a JSON object whose members are all booleans, keeping
// the order keys appear in. A repeated key keeps its first position and
// takes its last value.
func ParseObject(data []byte) (Object, error) {
	if !json.ConfigCompatibleWithStandardLibrary.Valid(data) {
		return nil, errors.Wrap(ErrInvalidArgument, "malformed json")
	}
	iter := json.ParseBytes(json.ConfigCompatibleWithStandardLibrary, data)
	if iter.WhatIsNext() != json.ObjectValue {
		return nil, errors.Wrap(ErrInvalidArgument, "json value is not an object")
	}

	obj := Object{}
	pos := make(map[string]int)
	var memberErr error
	iter.ReadObjectCB(func(it *json.Iterator, key string) bool {
		if it.WhatIsNext() != json.BoolValue {
			memberErr = errors.Wrapf(ErrInvalidArgument, "flag %q is not a boolean", key)
			return false
		}
		v := it.ReadBool()
		if i, ok := pos[key]; ok {
			obj[i].Value = v
			return true
		}
		pos[key] = len(obj)
		obj = append(obj, Pair{Name: key, Value: v})
		return true
	})
	if memberErr != nil {
		return nil, memberErr
	}
	if iter.Error != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "malformed json: %v", iter.Error)
	}
	// only whitespace may follow the object
	iter.WhatIsNext()
	if iter.Error != io.EOF {
		return nil, errors.Wrap(ErrInvalidArgument, "unexpected data after json object")
	}
	return obj, nil
}
