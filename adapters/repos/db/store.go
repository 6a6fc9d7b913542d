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

// Package db persists graph elements in a sorted key-value engine. Every
// element is flattened through the byteentity key layout, so a range scan
// can classify candidate keys from their trailing flag byte alone and
// rejected elements never leave the storage tier.
package db

import (
	"bytes"
	"context"
	"encoding/gob"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/sjtu2008/Gaffer/adapters/repos/db/byteentity"
	"github.com/sjtu2008/Gaffer/entities/graph"
	"github.com/sjtu2008/Gaffer/usecases/monitoring"
)

func init() {
	// property values the stored-value codec may carry in interface form
	gob.Register("")
	gob.Register(0)
	gob.Register(int64(0))
	gob.Register(float64(0))
	gob.Register(false)
	gob.Register([]byte(nil))
	gob.Register(time.Time{})
}

// storedValue travels in the value half of every entry. Identity lives in
// the key, so both entries of an edge pair share one value.
type storedValue struct {
	Group      string
	Properties graph.Properties
}

// Store is a graph element store on top of badger. A single store may serve
// many concurrent scans, each scan owns its own filter instance.
type Store struct {
	db      *badger.DB
	logger  logrus.FieldLogger
	metrics *monitoring.ScanMetrics
}

// New opens a store rooted at dir. An empty dir opens an in-memory store,
// used by tests. A nil registerer disables monitoring.
func New(dir string, logger logrus.FieldLogger, reg prometheus.Registerer) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open element store")
	}

	return &Store{
		db:      db,
		logger:  logger,
		metrics: monitoring.NewScanMetrics(reg),
	}, nil
}

func (s *Store) Shutdown(ctx context.Context) error {
	return s.db.Close()
}

// Put writes an element. An entity becomes a single entry, an edge becomes
// its stored entry pair so it is discoverable from either endpoint.
func (s *Store) Put(ctx context.Context, element graph.Element) error {
	var keys [][]byte
	value := storedValue{Group: element.ElementGroup()}

	switch e := element.(type) {
	case *graph.Entity:
		keys = [][]byte{byteentity.EncodeEntityKey(e)}
		value.Properties = e.Properties
	case *graph.Edge:
		keys = byteentity.EncodeEdgeKeys(e)
		value.Properties = e.Properties
	default:
		return errors.Errorf("put: unsupported element type %T", element)
	}

	buf := bytes.Buffer{}
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return errors.Wrap(err, "encode element value")
	}

	return s.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Set(key, buf.Bytes()); err != nil {
				return errors.Wrap(err, "put element entry")
			}
		}
		return nil
	})
}
