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
	"bytes"

	"github.com/pkg/errors"

	"github.com/sjtu2008/Gaffer/entities/graph"
)

// Row key layout:
//
//	entity:  esc(vertex) 0x00 flag
//	edge:    esc(first) 0x00 esc(second) 0x00 flag
//
// Vertex bytes are escaped so the 0x00 delimiter stays unambiguous. The
// group name and properties travel in the value, not the key.
const (
	delimiter  = 0x00
	escapeChar = 0x01

	escapedDelimiter  = 0x02
	escapedEscapeChar = 0x03
)

func escape(in []byte) []byte {
	out := make([]byte, 0, len(in)+1)
	for _, b := range in {
		switch b {
		case delimiter:
			out = append(out, escapeChar, escapedDelimiter)
		case escapeChar:
			out = append(out, escapeChar, escapedEscapeChar)
		default:
			out = append(out, b)
		}
	}
	return out
}

func unescape(in []byte) ([]byte, error) {
	out := make([]byte, 0, len(in))
	for i := 0; i < len(in); i++ {
		b := in[i]
		if b != escapeChar {
			out = append(out, b)
			continue
		}

		i++
		if i >= len(in) {
			return nil, errors.New("unescape: dangling escape character")
		}
		switch in[i] {
		case escapedDelimiter:
			out = append(out, delimiter)
		case escapedEscapeChar:
			out = append(out, escapeChar)
		default:
			return nil, errors.Errorf("unescape: invalid escape sequence 0x%02x", in[i])
		}
	}
	return out, nil
}

// EncodeEntityKey flattens a vertex into its single row key.
func EncodeEntityKey(e *graph.Entity) []byte {
	vertex := escape([]byte(e.Vertex))
	key := make([]byte, 0, len(vertex)+2)
	key = append(key, vertex...)
	key = append(key, delimiter, byte(EntityFlag))
	return key
}

// EncodeEdgeKeys flattens an edge into its stored entry pair. A directed
// edge yields the forward (source-first) entry plus its mirror; an
// undirected edge yields two undirected-flagged entries, one per endpoint
// order, so the edge is reachable from either side of a sorted scan.
func EncodeEdgeKeys(e *graph.Edge) [][]byte {
	src := escape([]byte(e.Source))
	dst := escape([]byte(e.Destination))

	if e.Directed {
		return [][]byte{
			edgeKey(src, dst, CorrectWayDirectedEdgeFlag),
			edgeKey(dst, src, IncorrectWayDirectedEdgeFlag),
		}
	}

	// canonical entry first, smaller endpoint leading
	if bytes.Compare(src, dst) > 0 {
		src, dst = dst, src
	}
	return [][]byte{
		edgeKey(src, dst, UndirectedEdgeFlag),
		edgeKey(dst, src, UndirectedEdgeFlag),
	}
}

func edgeKey(first, second []byte, flag ElementFlag) []byte {
	key := make([]byte, 0, len(first)+len(second)+3)
	key = append(key, first...)
	key = append(key, delimiter)
	key = append(key, second...)
	key = append(key, delimiter, byte(flag))
	return key
}

// DecodedKey is the identity information recoverable from a row key alone.
// For an entity only First is set. For an edge entry First and Second are
// the endpoints in stored order; a mirror entry still has them in stored
// (swapped) order, callers use the flag to recover source and destination.
type DecodedKey struct {
	Flag   ElementFlag
	First  string
	Second string
}

// DecodeKey parses a row key back into its element identity.
func DecodeKey(rowKey []byte) (DecodedKey, error) {
	flag, err := Classify(rowKey)
	if err != nil {
		return DecodedKey{}, err
	}

	// strip flag byte and the delimiter preceding it
	body := rowKey[:len(rowKey)-1]
	if len(body) == 0 || body[len(body)-1] != delimiter {
		return DecodedKey{}, errors.New("decode key: missing delimiter before flag byte")
	}
	body = body[:len(body)-1]

	if flag == EntityFlag {
		vertex, err := unescape(body)
		if err != nil {
			return DecodedKey{}, errors.Wrap(err, "decode entity key")
		}
		return DecodedKey{Flag: flag, First: string(vertex)}, nil
	}

	sep := bytes.IndexByte(body, delimiter)
	if sep < 0 {
		return DecodedKey{}, errors.New("decode edge key: missing endpoint delimiter")
	}

	first, err := unescape(body[:sep])
	if err != nil {
		return DecodedKey{}, errors.Wrap(err, "decode edge key: first endpoint")
	}
	second, err := unescape(body[sep+1:])
	if err != nil {
		return DecodedKey{}, errors.Wrap(err, "decode edge key: second endpoint")
	}

	return DecodedKey{Flag: flag, First: string(first), Second: string(second)}, nil
}
