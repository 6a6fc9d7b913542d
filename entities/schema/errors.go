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

import "fmt"

// ConflictError is raised when merging two type definitions that disagree on
// a field neither side leaves unset. Any conflict is fatal to the whole
// schema-composition step, a merge is never retried or partially kept.
type ConflictError struct {
	TypeKind ValueKind
	Field    string
	OptionA  string
	OptionB  string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf(
		"unable to merge schemas: conflict with type (%s) %s, options are: %s and %s",
		e.TypeKind, e.Field, e.OptionA, e.OptionB)
}

// UnknownIdentifierError is raised when a schema record references a
// serializer, value kind, validate function or aggregate function that is
// not present in the static registry. It surfaces at schema-load time, never
// during scan traffic.
type UnknownIdentifierError struct {
	What string
	Name string
}

func (e UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.What, e.Name)
}
