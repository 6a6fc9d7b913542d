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
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// KeyValueSource is the scan iterator a filter is pushed down onto. The
// filter never advances the source itself, the scan executor interleaves
// Next/Key/Value with Accept calls.
type KeyValueSource interface {
	Next() bool
	Key() []byte
	Value() ([]byte, error)
}

// ScanEnvironment carries scan-scoped dependencies into a pushed-down
// filter.
type ScanEnvironment struct {
	Logger logrus.FieldLogger
}

// filterConfig is frozen at Init time, after which the filter is read-only
// and owned by exactly one scan.
type filterConfig struct {
	edges           bool
	entities        bool
	unDirectedEdges bool
	directedEdges   bool
	incomingEdges   bool
	outgoingEdges   bool
}

// parseFilterConfig interprets a presence-only options map. Both
// mutual-exclusion pairs are rejected here, never at Accept time.
func parseFilterConfig(options map[string]string) (filterConfig, error) {
	cfg := filterConfig{}

	if _, ok := options[OptionDirectedEdgeOnly]; ok {
		if _, ok := options[OptionUndirectedEdgeOnly]; ok {
			return cfg, errors.Errorf("must specify only one of %s or %s",
				OptionDirectedEdgeOnly, OptionUndirectedEdgeOnly)
		}
	}
	if _, ok := options[OptionIncomingEdgeOnly]; ok {
		if _, ok := options[OptionOutgoingEdgeOnly]; ok {
			return cfg, errors.Errorf("must specify only one of %s or %s",
				OptionIncomingEdgeOnly, OptionOutgoingEdgeOnly)
		}
	}

	if _, ok := options[OptionIncomingEdgeOnly]; ok {
		cfg.incomingEdges = true
	} else if _, ok := options[OptionOutgoingEdgeOnly]; ok {
		cfg.outgoingEdges = true
	}

	if _, ok := options[OptionDirectedEdgeOnly]; ok {
		cfg.directedEdges = true
	} else if _, ok := options[OptionUndirectedEdgeOnly]; ok {
		cfg.unDirectedEdges = true
	}

	if _, ok := options[OptionIncludeEntities]; ok {
		cfg.entities = true
	}
	if _, ok := options[OptionNoEdges]; !ok {
		cfg.edges = true
	}

	return cfg, nil
}

// RangeElementFilter is the push-down predicate of a range scan. Init must
// succeed before the first Accept call; after Init the filter is immutable
// and must only be used by the scan that configured it.
type RangeElementFilter struct {
	source KeyValueSource
	cfg    filterConfig
	ready  bool
}

// Init parses the scan options and binds the filter to its source iterator.
// A failed Init leaves the filter unusable.
func (f *RangeElementFilter) Init(source KeyValueSource,
	options map[string]string, env ScanEnvironment,
) error {
	cfg, err := parseFilterConfig(options)
	if err != nil {
		return errors.Wrap(err, "init range element filter")
	}

	f.source = source
	f.cfg = cfg
	f.ready = true

	if env.Logger != nil {
		env.Logger.WithFields(logrus.Fields{
			"action": "init_range_element_filter",
			"filter": rangeFilterName,
		}).Debug("range element filter configured")
	}

	return nil
}

// Accept classifies a raw candidate key from its trailing flag byte alone.
// It runs once per scanned key and must stay allocation-free; the value is
// part of the evaluator contract but never inspected.
func (f *RangeElementFilter) Accept(key, value []byte) bool {
	if !f.ready || len(key) == 0 {
		return false
	}

	flag := ElementFlag(key[len(key)-1])
	isEdge := flag != EntityFlag

	if isEdge && !f.cfg.edges {
		return false
	}
	if !isEdge && !f.cfg.entities {
		return false
	}
	if !isEdge {
		return true
	}

	return f.checkEdge(flag)
}

func (f *RangeElementFilter) checkEdge(flag ElementFlag) bool {
	if f.cfg.unDirectedEdges {
		return flag == UndirectedEdgeFlag
	}
	if f.cfg.directedEdges {
		return flag != UndirectedEdgeFlag && f.checkDirection(flag)
	}
	return f.checkDirection(flag)
}

func (f *RangeElementFilter) checkDirection(flag ElementFlag) bool {
	if f.cfg.incomingEdges {
		if flag == CorrectWayDirectedEdgeFlag {
			return false
		}
	} else if f.cfg.outgoingEdges {
		if flag == IncorrectWayDirectedEdgeFlag {
			return false
		}
	}
	return true
}
