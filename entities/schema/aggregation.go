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

import "github.com/pkg/errors"

// AggregateFn combines two property values of the same type into one, e.g.
// when the store folds duplicate element entries together.
type AggregateFn func(a, b interface{}) (interface{}, error)

var aggregateFns = map[string]AggregateFn{
	"sum": func(a, b interface{}) (interface{}, error) {
		if x, okA := asInt64(a); okA {
			if y, okB := asInt64(b); okB {
				return x + y, nil
			}
		}
		x, okA := asFloat(a)
		y, okB := asFloat(b)
		if !okA || !okB {
			return nil, errors.Errorf("sum: non-numeric operands %T and %T", a, b)
		}
		return x + y, nil
	},
	"min": func(a, b interface{}) (interface{}, error) {
		x, okA := asFloat(a)
		y, okB := asFloat(b)
		if !okA || !okB {
			return nil, errors.Errorf("min: non-numeric operands %T and %T", a, b)
		}
		if x <= y {
			return a, nil
		}
		return b, nil
	},
	"max": func(a, b interface{}) (interface{}, error) {
		x, okA := asFloat(a)
		y, okB := asFloat(b)
		if !okA || !okB {
			return nil, errors.Errorf("max: non-numeric operands %T and %T", a, b)
		}
		if x >= y {
			return a, nil
		}
		return b, nil
	},
	"first": func(a, _ interface{}) (interface{}, error) {
		return a, nil
	},
}

func asInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}

// Aggregator is a type definition's combine function, referenced by its
// stable registry name. Two aggregators are equal iff their names are, the
// runtime behavior is never compared.
type Aggregator struct {
	Function string

	fn AggregateFn
}

// NewAggregator resolves an aggregate function from the static registry.
func NewAggregator(function string) (*Aggregator, error) {
	fn, ok := aggregateFns[function]
	if !ok {
		return nil, UnknownIdentifierError{What: "aggregate function", Name: function}
	}
	return &Aggregator{Function: function, fn: fn}, nil
}

// Apply combines two values.
func (a *Aggregator) Apply(x, y interface{}) (interface{}, error) {
	return a.fn(x, y)
}

// Equal compares by definition.
func (a *Aggregator) Equal(other *Aggregator) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Function == other.Function
}
