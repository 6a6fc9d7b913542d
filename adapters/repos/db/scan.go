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

package db

import (
	"bytes"
	"context"
	"encoding/gob"
	"strings"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/sjtu2008/Gaffer/adapters/repos/db/byteentity"
	"github.com/sjtu2008/Gaffer/entities/graph"
)

// badgerSource adapts a badger iterator to the filter's source contract.
type badgerSource struct {
	it *badger.Iterator

	started bool
}

func (s *badgerSource) Next() bool {
	if !s.started {
		s.it.Rewind()
		s.started = true
	} else {
		s.it.Next()
	}
	return s.it.Valid()
}

func (s *badgerSource) Key() []byte {
	return s.it.Item().Key()
}

func (s *badgerSource) Value() ([]byte, error) {
	return s.it.Item().ValueCopy(nil)
}

// Scan walks the full key range and returns every element accepted by a
// range filter configured from options. The filter is evaluated on the raw
// key bytes before any value is copied. Both entries of an edge pair decode
// to the same logical edge, the scan reports each element once.
func (s *Store) Scan(ctx context.Context, options map[string]string) ([]graph.Element, error) {
	filter := &byteentity.RangeElementFilter{}

	var out []graph.Element
	seen := map[string]struct{}{}

	err := s.db.View(func(txn *badger.Txn) error {
		// values are fetched per accepted key only, the filter must run on
		// key bytes alone
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.PrefetchValues = false
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		source := &badgerSource{it: it}
		if err := filter.Init(source, options, byteentity.ScanEnvironment{
			Logger: s.logger,
		}); err != nil {
			return err
		}

		for source.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			key := source.Key()
			s.metrics.KeysScanned.Inc()
			if !filter.Accept(key, nil) {
				continue
			}
			s.metrics.KeysAccepted.Inc()

			value, err := source.Value()
			if err != nil {
				return errors.Wrap(err, "copy accepted value")
			}

			element, err := decodeElement(key, value)
			if err != nil {
				return err
			}

			id := identityKey(element)
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, element)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan elements")
	}

	return out, nil
}

func decodeElement(key, value []byte) (graph.Element, error) {
	decoded, err := byteentity.DecodeKey(key)
	if err != nil {
		return nil, err
	}

	stored := storedValue{}
	if err := gob.NewDecoder(bytes.NewReader(value)).Decode(&stored); err != nil {
		return nil, errors.Wrap(err, "decode element value")
	}

	if decoded.Flag == byteentity.EntityFlag {
		return &graph.Entity{
			Group:      stored.Group,
			Vertex:     decoded.First,
			Properties: stored.Properties,
		}, nil
	}

	edge := &graph.Edge{
		Group:      stored.Group,
		Properties: stored.Properties,
	}

	switch decoded.Flag {
	case byteentity.CorrectWayDirectedEdgeFlag:
		edge.Directed = true
		edge.Source, edge.Destination = decoded.First, decoded.Second
	case byteentity.IncorrectWayDirectedEdgeFlag:
		// mirror entry, endpoints are stored swapped
		edge.Directed = true
		edge.Source, edge.Destination = decoded.Second, decoded.First
	default:
		edge.Source, edge.Destination = decoded.First, decoded.Second
	}

	return edge, nil
}

// identityKey canonicalizes an element so both entries of an edge pair
// collapse to one scan result.
func identityKey(element graph.Element) string {
	switch e := element.(type) {
	case *graph.Entity:
		return strings.Join([]string{"entity", e.Group, e.Vertex}, "\x1f")
	case *graph.Edge:
		src, dst := e.Source, e.Destination
		if !e.Directed && src > dst {
			src, dst = dst, src
		}
		kind := "undirected"
		if e.Directed {
			kind = "directed"
		}
		return strings.Join([]string{"edge", kind, e.Group, src, dst}, "\x1f")
	default:
		return ""
	}
}
