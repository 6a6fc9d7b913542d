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
	"encoding/json"

	"github.com/pkg/errors"
)

// The wire form other tooling round-trips type definitions through. Merge
// never operates on this form, only on the in-memory TypeDefinition.
type typeDefinitionJSON struct {
	Class             string             `json:"class,omitempty"`
	SerialiserClass   string             `json:"serialiserClass,omitempty"`
	Position          string             `json:"position,omitempty"`
	ValidateFunctions []validateFuncJSON `json:"validateFunctions,omitempty"`
	AggregateFunction *aggregatorJSON    `json:"aggregateFunction,omitempty"`
}

type validateFuncJSON struct {
	Function string        `json:"function"`
	Args     []interface{} `json:"args,omitempty"`
}

type aggregatorJSON struct {
	Function string `json:"function"`
}

func (t *TypeDefinition) MarshalJSON() ([]byte, error) {
	wire := typeDefinitionJSON{
		Class:    string(t.Kind),
		Position: t.Position,
	}

	// the default serializer is left implicit on the wire
	if !IsDefaultSerializer(t.Serializer) {
		wire.SerialiserClass = t.Serializer.Name()
	}

	for _, vf := range t.Validator {
		wire.ValidateFunctions = append(wire.ValidateFunctions, validateFuncJSON{
			Function: vf.Function,
			Args:     vf.Args,
		})
	}

	if t.Aggregator != nil {
		wire.AggregateFunction = &aggregatorJSON{Function: t.Aggregator.Function}
	}

	return json.Marshal(wire)
}

func (t *TypeDefinition) UnmarshalJSON(data []byte) error {
	wire := typeDefinitionJSON{}
	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.Wrap(err, "unmarshal type definition")
	}

	out := TypeDefinition{Position: wire.Position}

	if wire.Class != "" {
		kind, err := ParseValueKind(wire.Class)
		if err != nil {
			return err
		}
		out.Kind = kind
	}

	if wire.SerialiserClass != "" {
		s, err := LookupSerializer(wire.SerialiserClass)
		if err != nil {
			return err
		}
		out.Serializer = s
	}

	for _, vf := range wire.ValidateFunctions {
		resolved, err := NewValidateFunc(vf.Function, vf.Args...)
		if err != nil {
			return err
		}
		out.Validator = append(out.Validator, resolved)
	}

	if wire.AggregateFunction != nil {
		agg, err := NewAggregator(wire.AggregateFunction.Function)
		if err != nil {
			return err
		}
		out.Aggregator = agg
	}

	*t = out
	return nil
}
