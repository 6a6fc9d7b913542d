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

// Package schema holds the per-property-type behavioral contract of the
// store: what shape of value a type holds, how it is serialized, validated
// and aggregated, and where the physical layer positions it. Type
// definitions are authored in independent schema fragments and merged at
// load time; once composed they are frozen and shared read-only across
// concurrent scan-time consumers.
package schema

// ValueKind identifies the shape of value a property type holds. The empty
// string means unset.
type ValueKind string

const (
	ValueKindString  ValueKind = "string"
	ValueKindInt     ValueKind = "int"
	ValueKindLong    ValueKind = "long"
	ValueKindDouble  ValueKind = "double"
	ValueKindBoolean ValueKind = "boolean"
	ValueKindDate    ValueKind = "date"
	ValueKindBytes   ValueKind = "bytes"
	ValueKindMap     ValueKind = "map"
)

// ValueKinds lists every known kind.
var ValueKinds = []ValueKind{
	ValueKindString, ValueKindInt, ValueKindLong, ValueKindDouble,
	ValueKindBoolean, ValueKindDate, ValueKindBytes, ValueKindMap,
}

// ParseValueKind parses a kind identifier from a schema record, rejecting
// anything outside the closed set.
func ParseValueKind(name string) (ValueKind, error) {
	for _, kind := range ValueKinds {
		if string(kind) == name {
			return kind, nil
		}
	}
	return "", UnknownIdentifierError{What: "value kind", Name: name}
}
