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

import "reflect"

// ValidatePredicate decides whether a property value passes one validate
// function. Predicates are pure, a value that fails is simply invalid, there
// is nothing to retry.
type ValidatePredicate func(value interface{}, args []interface{}) bool

var validatePredicates = map[string]ValidatePredicate{
	"exists": func(value interface{}, _ []interface{}) bool {
		return value != nil
	},
	"isMoreThan": func(value interface{}, args []interface{}) bool {
		v, okV := asFloat(value)
		limit, okL := firstFloatArg(args)
		return okV && okL && v > limit
	},
	"isLessThan": func(value interface{}, args []interface{}) bool {
		v, okV := asFloat(value)
		limit, okL := firstFloatArg(args)
		return okV && okL && v < limit
	},
	"isIn": func(value interface{}, args []interface{}) bool {
		for _, candidate := range args {
			if reflect.DeepEqual(value, candidate) {
				return true
			}
		}
		return false
	},
}

func asFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func firstFloatArg(args []interface{}) (float64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	return asFloat(args[0])
}

// ValidateFunc is one entry of a type definition's validator chain: a
// registry name plus the arguments it was configured with. The predicate is
// resolved at construction so an unknown name fails at schema-load time.
type ValidateFunc struct {
	Function string
	Args     []interface{}

	predicate ValidatePredicate
}

// NewValidateFunc resolves a validate function from the static registry.
func NewValidateFunc(function string, args ...interface{}) (ValidateFunc, error) {
	predicate, ok := validatePredicates[function]
	if !ok {
		return ValidateFunc{}, UnknownIdentifierError{What: "validate function", Name: function}
	}

	return ValidateFunc{Function: function, Args: args, predicate: predicate}, nil
}

// Test runs the predicate against a single property value.
func (vf ValidateFunc) Test(value interface{}) bool {
	return vf.predicate(value, vf.Args)
}

// Equal compares by definition (name and arguments), never by runtime
// behavior.
func (vf ValidateFunc) Equal(other ValidateFunc) bool {
	return vf.Function == other.Function && reflect.DeepEqual(vf.Args, other.Args)
}

// Validator is an ordered chain of validate functions. Merging two
// validators concatenates their chains, validators never conflict.
type Validator []ValidateFunc

// Validate reports whether a value passes every function of the chain.
func (v Validator) Validate(value interface{}) bool {
	for _, vf := range v {
		if !vf.Test(value) {
			return false
		}
	}
	return true
}

// Equal compares two chains entry by entry, order included.
func (v Validator) Equal(other Validator) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if !v[i].Equal(other[i]) {
			return false
		}
	}
	return true
}
