//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2024 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

package schema

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"time"

	"github.com/pkg/errors"
)

// Serializer turns property values into bytes and back. Implementations are
// stateless and registered once under a stable name; schema records
// reference them by that name, never by runtime identity.
type Serializer interface {
	Name() string
	Serialize(value interface{}) ([]byte, error)
	Deserialize(data []byte) (interface{}, error)
}

// DefaultSerializerName is the registry name of the generic serializer a
// type definition falls back to when none is set explicitly. Default-ness
// is decided by this name comparison alone.
const DefaultSerializerName = "gob"

var serializers = map[string]Serializer{}

func init() {
	for _, s := range []Serializer{
		GobSerializer{}, StringSerializer{}, Int64Serializer{},
	} {
		serializers[s.Name()] = s
	}

	// concrete types the generic serializer may carry in interface values
	gob.Register("")
	gob.Register(0)
	gob.Register(int64(0))
	gob.Register(float64(0))
	gob.Register(false)
	gob.Register([]byte(nil))
	gob.Register(time.Time{})
	gob.Register(map[string]interface{}{})
}

// RegisterSerializer adds a serializer to the static registry. Registration
// happens at process start-up, before any schema is loaded.
func RegisterSerializer(s Serializer) error {
	if _, ok := serializers[s.Name()]; ok {
		return errors.Errorf("serializer %q already registered", s.Name())
	}
	serializers[s.Name()] = s
	return nil
}

// LookupSerializer resolves a registry name from a schema record. Unknown
// names fail at load time.
func LookupSerializer(name string) (Serializer, error) {
	s, ok := serializers[name]
	if !ok {
		return nil, UnknownIdentifierError{What: "serializer", Name: name}
	}
	return s, nil
}

// DefaultSerializer returns the generic fallback serializer.
func DefaultSerializer() Serializer {
	return serializers[DefaultSerializerName]
}

// IsDefaultSerializer reports whether s stands for the default. A nil
// serializer on a type definition means "unset" and counts as default.
func IsDefaultSerializer(s Serializer) bool {
	return s == nil || s.Name() == DefaultSerializerName
}

// GobSerializer is the generic serializer, able to carry any registered
// value type. It makes no ordering promises, types that need
// order-preserving bytes set a dedicated serializer.
type GobSerializer struct{}

func (GobSerializer) Name() string {
	return DefaultSerializerName
}

func (GobSerializer) Serialize(value interface{}) ([]byte, error) {
	buf := bytes.Buffer{}
	if err := gob.NewEncoder(&buf).Encode(&value); err != nil {
		return nil, errors.Wrap(err, "gob serialize")
	}
	return buf.Bytes(), nil
}

func (GobSerializer) Deserialize(data []byte) (interface{}, error) {
	var value interface{}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&value); err != nil {
		return nil, errors.Wrap(err, "gob deserialize")
	}
	return value, nil
}

// StringSerializer stores strings as their raw bytes.
type StringSerializer struct{}

func (StringSerializer) Name() string {
	return "string.raw"
}

func (StringSerializer) Serialize(value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errors.Errorf("string serializer: expected string, got %T", value)
	}
	return []byte(s), nil
}

func (StringSerializer) Deserialize(data []byte) (interface{}, error) {
	return string(data), nil
}

// Int64Serializer stores integers as 8 fixed big-endian bytes so encoded
// values sort like their numeric order for non-negative values.
type Int64Serializer struct{}

func (Int64Serializer) Name() string {
	return "int64.fixed"
}

func (Int64Serializer) Serialize(value interface{}) ([]byte, error) {
	var v int64
	switch typed := value.(type) {
	case int64:
		v = typed
	case int:
		v = int64(typed)
	default:
		return nil, errors.Errorf("int64 serializer: expected integer, got %T", value)
	}

	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, uint64(v))
	return out, nil
}

func (Int64Serializer) Deserialize(data []byte) (interface{}, error) {
	if len(data) != 8 {
		return nil, errors.Errorf("int64 serializer: expected 8 bytes, got %d", len(data))
	}
	return int64(binary.BigEndian.Uint64(data)), nil
}
