package model

import (
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
)

// allStorageNodes returns the deduplicated union of frozen- and ambient-
// storage-capable nodes, for the per-pallet holding-cost aggregate
// variables which are declared per storage node regardless of which states
// it can actually hold (a node that can't hold a state simply never gets a
// nonzero inventory var in that state, per pkg/cohort's reachability-driven
// sparsity).
func allStorageNodes(idx *network.Index) []domain.NodeID {
	seen := make(map[domain.NodeID]bool)
	var out []domain.NodeID
	for _, id := range idx.FrozenStorageNodes {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range idx.AmbientStorageNodes {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range idx.ManufacturingNodes {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
