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

package byteentity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagValuesAreStable(t *testing.T) {
	// on-disk format, changing any of these breaks existing stores
	assert.Equal(t, byte(1), byte(EntityFlag))
	assert.Equal(t, byte(2), byte(CorrectWayDirectedEdgeFlag))
	assert.Equal(t, byte(3), byte(IncorrectWayDirectedEdgeFlag))
	assert.Equal(t, byte(4), byte(UndirectedEdgeFlag))
}

func TestClassify(t *testing.T) {
	flags := []ElementFlag{
		EntityFlag, CorrectWayDirectedEdgeFlag,
		IncorrectWayDirectedEdgeFlag, UndirectedEdgeFlag,
	}

	for _, flag := range flags {
		t.Run(flag.String(), func(t *testing.T) {
			key := []byte{0x42, 0x42, 0x00, byte(flag)}
			out, err := Classify(key)
			require.Nil(t, err)
			assert.Equal(t, flag, out)
		})
	}
}

func TestClassifyDependsOnTrailingByteOnly(t *testing.T) {
	base := []byte{0x10, 0x20, 0x00, byte(UndirectedEdgeFlag)}
	out, err := Classify(base)
	require.Nil(t, err)
	require.Equal(t, UndirectedEdgeFlag, out)

	// altering or prepending any non-trailing byte must not change the result
	altered := append([]byte{0xff, 0x00, 0x7f}, base...)
	altered[1] = 0x99
	out, err = Classify(altered)
	require.Nil(t, err)
	assert.Equal(t, UndirectedEdgeFlag, out)
}

func TestClassifyRejectsMalformedKeys(t *testing.T) {
	_, err := Classify(nil)
	assert.NotNil(t, err)

	_, err = Classify([]byte{})
	assert.NotNil(t, err)

	_, err = Classify([]byte{0x00, 0x77})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "unknown element flag")
}

func TestFlagIsEdge(t *testing.T) {
	assert.False(t, EntityFlag.IsEdge())
	assert.True(t, CorrectWayDirectedEdgeFlag.IsEdge())
	assert.True(t, IncorrectWayDirectedEdgeFlag.IsEdge())
	assert.True(t, UndirectedEdgeFlag.IsEdge())
}
