package cohort

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
)

// NodeVisitor is called once per node reached by a Traverser walk, in
// depth-first pre-order from the walk's start node.
type NodeVisitor interface {
	VisitNode(node domain.Node, depth int) error
}

// Traverser walks the routing network rooted at a starting node, memoizing
// node lookups in patrickmn/go-cache rather than a hand-rolled
// mutex-guarded map.
type Traverser struct {
	idx   *network.Index
	cache *gocache.Cache
}

// NewTraverser builds a Traverser over idx. The cache entries never need to
// expire within a single planning run, so both TTLs are long; go-cache
// still bounds memory via its own janitor if the process lives long enough
// to matter (e.g. the long-lived solve server, pkg/diagnostics).
func NewTraverser(idx *network.Index) *Traverser {
	return &Traverser{
		idx:   idx,
		cache: gocache.New(30*time.Minute, time.Hour),
	}
}

// Walk visits start and every node reachable from it via outbound routes,
// each node exactly once, depth-first.
func (t *Traverser) Walk(start domain.NodeID, v NodeVisitor) error {
	return t.walk(start, 0, make(map[domain.NodeID]bool), v)
}

func (t *Traverser) walk(id domain.NodeID, depth int, visited map[domain.NodeID]bool, v NodeVisitor) error {
	if visited[id] {
		return nil
	}
	visited[id] = true

	node, err := t.lookupNode(id)
	if err != nil {
		return err
	}
	if err := v.VisitNode(node, depth); err != nil {
		return err
	}

	for _, route := range t.idx.RoutesFromOrigin(id) {
		if err := t.walk(route.DestinationNodeID, depth+1, visited, v); err != nil {
			return err
		}
	}
	return nil
}

func (t *Traverser) lookupNode(id domain.NodeID) (domain.Node, error) {
	if cached, found := t.cache.Get(string(id)); found {
		return cached.(domain.Node), nil
	}
	node, ok := t.idx.Node(id)
	if !ok {
		return domain.Node{}, fmt.Errorf("cohort: traversal reached unknown node %q", id)
	}
	t.cache.Set(string(id), node, gocache.DefaultExpiration)
	return node, nil
}
