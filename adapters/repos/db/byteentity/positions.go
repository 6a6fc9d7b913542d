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

// Package byteentity implements the "byte entity" key layout: every graph
// element is flattened into sorted row-key bytes whose trailing byte is a
// flag discriminating entity vs edge and, for directed edges, which
// orientation of the mirror pair the entry belongs to. The package also
// provides the range filter that is pushed down into the store's scan path
// and classifies candidate keys from that trailing byte alone.
package byteentity

import "github.com/pkg/errors"

// ElementFlag is the trailing byte of every encoded row key.
type ElementFlag byte

// The numeric values are part of the on-disk format and must never change.
// They are deliberately spelled out rather than iota-derived so that
// reordering declarations can not silently rewrite stored data.
const (
	// EntityFlag marks a vertex entry.
	EntityFlag ElementFlag = 1

	// CorrectWayDirectedEdgeFlag marks a directed edge stored
	// source-before-destination.
	CorrectWayDirectedEdgeFlag ElementFlag = 2

	// IncorrectWayDirectedEdgeFlag marks the mirror entry of a directed
	// edge, stored destination-before-source so the edge is discoverable
	// from either endpoint in a sorted range scan.
	IncorrectWayDirectedEdgeFlag ElementFlag = 3

	// UndirectedEdgeFlag marks both entries of an undirected edge.
	UndirectedEdgeFlag ElementFlag = 4
)

func (f ElementFlag) String() string {
	switch f {
	case EntityFlag:
		return "entity"
	case CorrectWayDirectedEdgeFlag:
		return "correctWayDirectedEdge"
	case IncorrectWayDirectedEdgeFlag:
		return "incorrectWayDirectedEdge"
	case UndirectedEdgeFlag:
		return "undirectedEdge"
	default:
		return "unknown"
	}
}

// IsEdge reports whether the flag marks any edge entry.
func (f ElementFlag) IsEdge() bool {
	return f != EntityFlag
}

// Classify returns the element flag of a raw row key. Only the trailing byte
// is inspected. The store never hands out empty row keys, so an empty input
// or an out-of-range trailing byte indicates a corrupted key and is returned
// as an error rather than read past.
func Classify(rowKey []byte) (ElementFlag, error) {
	if len(rowKey) == 0 {
		return 0, errors.New("classify: empty row key")
	}

	flag := ElementFlag(rowKey[len(rowKey)-1])
	switch flag {
	case EntityFlag, CorrectWayDirectedEdgeFlag,
		IncorrectWayDirectedEdgeFlag, UndirectedEdgeFlag:
		return flag, nil
	default:
		return 0, errors.Errorf("classify: unknown element flag 0x%02x", byte(flag))
	}
}
