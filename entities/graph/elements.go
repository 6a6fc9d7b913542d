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

// Package graph holds the element model of the store: vertices ("entities")
// and edges, both carrying an arbitrary property map. Elements are plain
// data, the key encoding and filtering live in the storage adapters.
package graph

// Properties is the property map attached to any element.
type Properties map[string]interface{}

// Clone returns a shallow copy, property values themselves are shared.
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}

	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Element is either an Entity or an Edge.
type Element interface {
	ElementGroup() string
}

// Entity is a graph vertex.
type Entity struct {
	Group      string
	Vertex     string
	Properties Properties
}

func (e *Entity) ElementGroup() string {
	return e.Group
}

// Edge is a relationship between two endpoints. A directed edge points from
// Source to Destination; an undirected edge treats both endpoints as
// interchangeable.
type Edge struct {
	Group       string
	Source      string
	Destination string
	Directed    bool
	Properties  Properties
}

func (e *Edge) ElementGroup() string {
	return e.Group
}

// SameIdentity reports whether two edges describe the same logical element,
// regardless of which stored entry (primary or mirror) they were decoded
// from. For undirected edges endpoint order does not matter.
func (e *Edge) SameIdentity(other *Edge) bool {
	if e.Group != other.Group || e.Directed != other.Directed {
		return false
	}

	if e.Source == other.Source && e.Destination == other.Destination {
		return true
	}

	if !e.Directed {
		return e.Source == other.Destination && e.Destination == other.Source
	}

	return false
}
