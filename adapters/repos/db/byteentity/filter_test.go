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

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyWithFlag(flag ElementFlag) []byte {
	return []byte{0x41, 0x00, byte(flag)}
}

func initFilter(t *testing.T, options map[string]string) *RangeElementFilter {
	logger, _ := test.NewNullLogger()

	f := &RangeElementFilter{}
	err := f.Init(nil, options, ScanEnvironment{Logger: logger})
	require.Nil(t, err)
	return f
}

func TestFilterDefaults(t *testing.T) {
	f := initFilter(t, map[string]string{})

	// all edge flags pass, entities are excluded by default
	assert.True(t, f.Accept(keyWithFlag(CorrectWayDirectedEdgeFlag), nil))
	assert.True(t, f.Accept(keyWithFlag(IncorrectWayDirectedEdgeFlag), nil))
	assert.True(t, f.Accept(keyWithFlag(UndirectedEdgeFlag), nil))
	assert.False(t, f.Accept(keyWithFlag(EntityFlag), nil))
}

func TestFilterIncludeEntities(t *testing.T) {
	f := initFilter(t, map[string]string{OptionIncludeEntities: ""})

	assert.True(t, f.Accept(keyWithFlag(EntityFlag), nil))
	assert.True(t, f.Accept(keyWithFlag(CorrectWayDirectedEdgeFlag), nil))
	assert.True(t, f.Accept(keyWithFlag(IncorrectWayDirectedEdgeFlag), nil))
	assert.True(t, f.Accept(keyWithFlag(UndirectedEdgeFlag), nil))
}

func TestFilterEntitiesOnly(t *testing.T) {
	f := initFilter(t, map[string]string{
		OptionIncludeEntities: "",
		OptionNoEdges:         "",
	})

	assert.True(t, f.Accept(keyWithFlag(EntityFlag), nil))
	assert.False(t, f.Accept(keyWithFlag(CorrectWayDirectedEdgeFlag), nil))
	assert.False(t, f.Accept(keyWithFlag(IncorrectWayDirectedEdgeFlag), nil))
	assert.False(t, f.Accept(keyWithFlag(UndirectedEdgeFlag), nil))
}

func TestFilterUndirectedOnly(t *testing.T) {
	f := initFilter(t, map[string]string{OptionUndirectedEdgeOnly: ""})

	assert.True(t, f.Accept(keyWithFlag(UndirectedEdgeFlag), nil))
	assert.False(t, f.Accept(keyWithFlag(CorrectWayDirectedEdgeFlag), nil))
	assert.False(t, f.Accept(keyWithFlag(IncorrectWayDirectedEdgeFlag), nil))
}

func TestFilterDirectedIncomingOnly(t *testing.T) {
	f := initFilter(t, map[string]string{
		OptionDirectedEdgeOnly: "",
		OptionIncomingEdgeOnly: "",
	})

	assert.False(t, f.Accept(keyWithFlag(CorrectWayDirectedEdgeFlag), nil))
	assert.True(t, f.Accept(keyWithFlag(IncorrectWayDirectedEdgeFlag), nil))
	assert.False(t, f.Accept(keyWithFlag(UndirectedEdgeFlag), nil))
}

func TestFilterDirectedOutgoingOnly(t *testing.T) {
	f := initFilter(t, map[string]string{
		OptionDirectedEdgeOnly: "",
		OptionOutgoingEdgeOnly: "",
	})

	assert.True(t, f.Accept(keyWithFlag(CorrectWayDirectedEdgeFlag), nil))
	assert.False(t, f.Accept(keyWithFlag(IncorrectWayDirectedEdgeFlag), nil))
	assert.False(t, f.Accept(keyWithFlag(UndirectedEdgeFlag), nil))
}

func TestFilterIncomingOnlyWithoutDirectedRestriction(t *testing.T) {
	f := initFilter(t, map[string]string{OptionIncomingEdgeOnly: ""})

	// undirected edges always pass the direction check
	assert.True(t, f.Accept(keyWithFlag(UndirectedEdgeFlag), nil))
	assert.True(t, f.Accept(keyWithFlag(IncorrectWayDirectedEdgeFlag), nil))
	assert.False(t, f.Accept(keyWithFlag(CorrectWayDirectedEdgeFlag), nil))
}

func TestFilterRejectsConflictingOptions(t *testing.T) {
	type testCase struct {
		name    string
		options map[string]string
	}

	tests := []testCase{
		{
			name: "directed and undirected",
			options: map[string]string{
				OptionDirectedEdgeOnly:   "",
				OptionUndirectedEdgeOnly: "",
			},
		},
		{
			name: "incoming and outgoing",
			options: map[string]string{
				OptionIncomingEdgeOnly: "",
				OptionOutgoingEdgeOnly: "",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := &RangeElementFilter{}
			err := f.Init(nil, tc.options, ScanEnvironment{})
			require.NotNil(t, err)

			// the message names both conflicting keys
			for key := range tc.options {
				assert.Contains(t, err.Error(), key)
			}

			// a failed Init leaves the filter unusable
			assert.False(t, f.Accept(keyWithFlag(UndirectedEdgeFlag), nil))
		})
	}
}

func TestFilterOptionValuesAreIgnored(t *testing.T) {
	f := initFilter(t, map[string]string{OptionUndirectedEdgeOnly: "false"})

	// presence counts, the value does not
	assert.True(t, f.Accept(keyWithFlag(UndirectedEdgeFlag), nil))
	assert.False(t, f.Accept(keyWithFlag(CorrectWayDirectedEdgeFlag), nil))
}

func TestDescribeOptions(t *testing.T) {
	opts := DescribeOptions()

	assert.Equal(t, rangeFilterName, opts.Name)
	assert.NotEmpty(t, opts.Description)

	expected := []string{
		OptionDirectedEdgeOnly, OptionUndirectedEdgeOnly,
		OptionIncludeEntities, OptionIncomingEdgeOnly,
		OptionOutgoingEdgeOnly, OptionNoEdges,
	}
	require.Len(t, opts.NamedOptions, len(expected))
	for _, key := range expected {
		assert.NotEmpty(t, opts.NamedOptions[key])
	}

	// fresh copy on every call
	opts.NamedOptions[OptionNoEdges] = "mutated"
	assert.NotEqual(t, "mutated", DescribeOptions().NamedOptions[OptionNoEdges])
}
