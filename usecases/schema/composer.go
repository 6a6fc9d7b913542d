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

// Package schema composes independently authored schema fragments into the
// single frozen schema a running store uses. Composition happens once at
// load time, before any scan traffic exists.
package schema

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	entschema "github.com/sjtu2008/Gaffer/entities/schema"
)

// Fragment is one independently authored set of type definitions, e.g. per
// data source or per team.
type Fragment struct {
	Name  string
	Types map[string]*entschema.TypeDefinition
}

// Composer folds fragments into one schema. Any merge conflict is fatal to
// the whole composition, there is no partial schema.
type Composer struct {
	logger logrus.FieldLogger
	types  map[string]*entschema.TypeDefinition
	frozen bool
}

func NewComposer(logger logrus.FieldLogger) *Composer {
	return &Composer{
		logger: logger,
		types:  map[string]*entschema.TypeDefinition{},
	}
}

// AddFragment merges a fragment's type definitions into the composition.
// A type already present is merged field by field; an exact duplicate is
// accepted silently. On conflict the composition is unusable and the caller
// must discard the composer.
func (c *Composer) AddFragment(fragment Fragment) error {
	if c.frozen {
		return errors.New("schema composition already frozen")
	}

	// deterministic merge order so conflict messages are reproducible
	names := make([]string, 0, len(fragment.Types))
	for name := range fragment.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		incoming := fragment.Types[name]

		existing, ok := c.types[name]
		if !ok {
			copied := *incoming
			copied.Validator = append(entschema.Validator(nil), incoming.Validator...)
			c.types[name] = &copied
			continue
		}

		if existing.Equal(incoming) {
			continue
		}

		if err := existing.Merge(incoming); err != nil {
			return errors.Wrapf(err, "fragment %q, type %q", fragment.Name, name)
		}
	}

	c.logger.WithFields(logrus.Fields{
		"action":   "schema_compose",
		"fragment": fragment.Name,
		"types":    len(fragment.Types),
	}).Debug("merged schema fragment")

	return nil
}

// Freeze ends composition. The returned schema is immutable by convention
// and may be shared read-only across concurrent scan-time consumers.
func (c *Composer) Freeze() map[string]*entschema.TypeDefinition {
	c.frozen = true
	return c.types
}

// Type looks up a composed definition.
func (c *Composer) Type(name string) (*entschema.TypeDefinition, bool) {
	t, ok := c.types[name]
	return t, ok
}
