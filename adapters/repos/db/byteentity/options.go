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

// Recognized filter option keys. Only key presence matters, option values
// are ignored. The strings are part of the public scan API, exact and
// case-sensitive.
const (
	OptionDirectedEdgeOnly   = "DIRECTED_EDGE_ONLY"
	OptionUndirectedEdgeOnly = "UNDIRECTED_EDGE_ONLY"
	OptionIncludeEntities    = "INCLUDE_ENTITIES"
	OptionIncomingEdgeOnly   = "INCOMING_EDGE_ONLY"
	OptionOutgoingEdgeOnly   = "OUTGOING_EDGE_ONLY"
	OptionNoEdges            = "NO_EDGES"
)

const (
	rangeFilterName        = "rangeElementPropertyFilter"
	rangeFilterDescription = "Only returns entities or edges that are directed, " +
		"undirected, incoming or outgoing as specified by the scan options"
)

// IteratorOptions is the static catalog of recognized options, used by
// registration and introspection tooling. It is never parsed by the filter
// itself.
type IteratorOptions struct {
	Name         string
	Description  string
	NamedOptions map[string]string
}

// DescribeOptions returns the option catalog. Pure, the result is freshly
// allocated on every call so tooling may mutate its copy.
func DescribeOptions() IteratorOptions {
	return IteratorOptions{
		Name:        rangeFilterName,
		Description: rangeFilterDescription,
		NamedOptions: map[string]string{
			OptionDirectedEdgeOnly:   "Optional: set if only directed edges should be returned",
			OptionUndirectedEdgeOnly: "Optional: set if only undirected edges should be returned",
			OptionIncludeEntities:    "Optional: set if entities should be returned",
			OptionIncomingEdgeOnly:   "Optional: set if only incoming edges should be returned",
			OptionOutgoingEdgeOnly:   "Optional: set if only outgoing edges should be returned",
			OptionNoEdges:            "Optional: set if no edges should be returned",
		},
	}
}
