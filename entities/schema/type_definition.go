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

// TypeDefinition is one property type's full behavioral contract. Every
// field is optional: the zero value is a fully-unset definition that any
// other definition can be folded into. A nil Serializer stands for the
// default serializer.
//
// Definitions are built during schema parsing, merged during composition and
// frozen afterwards; a frozen definition is shared read-only across
// concurrent scan-time consumers.
type TypeDefinition struct {
	Kind       ValueKind
	Serializer Serializer
	Position   string
	Validator  Validator
	Aggregator *Aggregator
}

// SerializerOrDefault resolves the effective serializer.
func (t *TypeDefinition) SerializerOrDefault() Serializer {
	if t.Serializer == nil {
		return DefaultSerializer()
	}
	return t.Serializer
}

// Merge folds other into t, field by field: an unset field is filled from
// other, a disagreeing pair of set fields is a ConflictError, validator
// chains concatenate. Merge stops at the first conflict; fields folded in
// before that point remain, callers treat any conflict as fatal to the whole
// composition and discard t.
func (t *TypeDefinition) Merge(other *TypeDefinition) error {
	if t.Kind == "" {
		t.Kind = other.Kind
	} else if other.Kind != "" && t.Kind != other.Kind {
		return ConflictError{
			TypeKind: t.Kind,
			Field:    "class",
			OptionA:  string(t.Kind),
			OptionB:  string(other.Kind),
		}
	}

	if IsDefaultSerializer(t.Serializer) {
		t.Serializer = other.Serializer
	} else if !IsDefaultSerializer(other.Serializer) &&
		t.Serializer.Name() != other.Serializer.Name() {
		return ConflictError{
			TypeKind: t.Kind,
			Field:    "serialiser",
			OptionA:  t.Serializer.Name(),
			OptionB:  other.Serializer.Name(),
		}
	}

	if t.Position == "" {
		t.Position = other.Position
	} else if other.Position != "" && t.Position != other.Position {
		return ConflictError{
			TypeKind: t.Kind,
			Field:    "position",
			OptionA:  t.Position,
			OptionB:  other.Position,
		}
	}

	if t.Validator == nil {
		t.Validator = append(Validator(nil), other.Validator...)
	} else if len(other.Validator) > 0 && !t.Validator.Equal(other.Validator) {
		// identical chains add nothing, so merging a definition into an
		// equal one stays a no-op
		t.Validator = append(t.Validator, other.Validator...)
	}

	if t.Aggregator == nil {
		t.Aggregator = other.Aggregator
	} else if other.Aggregator != nil && !t.Aggregator.Equal(other.Aggregator) {
		return ConflictError{
			TypeKind: t.Kind,
			Field:    "aggregate function",
			OptionA:  t.Aggregator.Function,
			OptionB:  other.Aggregator.Function,
		}
	}

	return nil
}

// Equal reports whether two definitions agree on all five fields. True
// duplicates across fragments are detected with this, a duplicate is not a
// conflict.
func (t *TypeDefinition) Equal(other *TypeDefinition) bool {
	if t.Kind != other.Kind || t.Position != other.Position {
		return false
	}
	if t.SerializerOrDefault().Name() != other.SerializerOrDefault().Name() {
		return false
	}
	if !t.Validator.Equal(other.Validator) {
		return false
	}
	return t.Aggregator.Equal(other.Aggregator)
}

// TypeDefinitionBuilder constructs a definition field by field before it is
// handed to composition.
type TypeDefinitionBuilder struct {
	t TypeDefinition
}

func NewTypeDefinition() *TypeDefinitionBuilder {
	return &TypeDefinitionBuilder{}
}

func (b *TypeDefinitionBuilder) Kind(kind ValueKind) *TypeDefinitionBuilder {
	b.t.Kind = kind
	return b
}

func (b *TypeDefinitionBuilder) Serializer(s Serializer) *TypeDefinitionBuilder {
	b.t.Serializer = s
	return b
}

func (b *TypeDefinitionBuilder) Position(position string) *TypeDefinitionBuilder {
	b.t.Position = position
	return b
}

func (b *TypeDefinitionBuilder) Validator(v Validator) *TypeDefinitionBuilder {
	b.t.Validator = v
	return b
}

func (b *TypeDefinitionBuilder) Aggregator(a *Aggregator) *TypeDefinitionBuilder {
	b.t.Aggregator = a
	return b
}

func (b *TypeDefinitionBuilder) Build() *TypeDefinition {
	out := b.t
	return &out
}
