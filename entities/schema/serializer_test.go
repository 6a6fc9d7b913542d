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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializerRegistry(t *testing.T) {
	for _, name := range []string{"gob", "string.raw", "int64.fixed"} {
		s, err := LookupSerializer(name)
		require.Nil(t, err)
		assert.Equal(t, name, s.Name())
	}

	_, err := LookupSerializer("no.such.serializer")
	unknown := UnknownIdentifierError{}
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "serializer", unknown.What)

	err = RegisterSerializer(GobSerializer{})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestDefaultSerializerIsByNameNotIdentity(t *testing.T) {
	assert.True(t, IsDefaultSerializer(nil))
	assert.True(t, IsDefaultSerializer(GobSerializer{}))
	assert.True(t, IsDefaultSerializer(DefaultSerializer()))
	assert.False(t, IsDefaultSerializer(StringSerializer{}))
}

func TestGobSerializerCarriesMixedValues(t *testing.T) {
	s := GobSerializer{}

	for _, value := range []interface{}{"hello", 7, 3.5, true} {
		data, err := s.Serialize(value)
		require.Nil(t, err)

		out, err := s.Deserialize(data)
		require.Nil(t, err)
		assert.Equal(t, value, out)
	}
}

func TestInt64SerializerPreservesOrder(t *testing.T) {
	s := Int64Serializer{}

	small, err := s.Serialize(int64(7))
	require.Nil(t, err)
	large, err := s.Serialize(int64(70000))
	require.Nil(t, err)

	assert.True(t, bytes.Compare(small, large) < 0)

	out, err := s.Deserialize(large)
	require.Nil(t, err)
	assert.Equal(t, int64(70000), out)

	_, err = s.Serialize("not a number")
	assert.NotNil(t, err)
}

func TestValidatePredicates(t *testing.T) {
	exists := mustValidateFunc(t, "exists")
	assert.True(t, exists.Test("anything"))
	assert.False(t, exists.Test(nil))

	inRange := Validator{
		mustValidateFunc(t, "isMoreThan", 0),
		mustValidateFunc(t, "isLessThan", 100),
	}
	assert.True(t, inRange.Validate(50))
	assert.False(t, inRange.Validate(100))
	assert.False(t, inRange.Validate("fifty"))

	isIn := mustValidateFunc(t, "isIn", "public", "private")
	assert.True(t, isIn.Test("public"))
	assert.False(t, isIn.Test("secret"))
}

func TestAggregatorApply(t *testing.T) {
	sum := mustAggregator(t, "sum")
	out, err := sum.Apply(int64(2), int64(3))
	require.Nil(t, err)
	assert.Equal(t, int64(5), out)

	max := mustAggregator(t, "max")
	out, err = max.Apply(2.5, 1.5)
	require.Nil(t, err)
	assert.Equal(t, 2.5, out)

	_, err = sum.Apply("a", "b")
	assert.NotNil(t, err)
}
