package domain

import "fmt"

// NodeID uniquely identifies a location in the network (manufacturing site,
// hub, frozen-storage intermediate, or breadroom demand location).
type NodeID string

// ProductID identifies a finished good.
type ProductID string

// NodeCapabilities is the tagged-flag substructure the balance rule and
// preprocessor branch on: a single Node record with a capabilities
// substructure, rather than a class hierarchy per node kind.
type NodeCapabilities struct {
	CanManufacture       bool
	ProductionRatePerHr  int64 // units/hour; required if CanManufacture
	CanStore             bool
	StorageMode          StorageMode
	HasDemand            bool
	RequiresTruckSchedules bool
	DailyStartupHours    float64
	DailyShutdownHours   float64
	DefaultChangeoverHrs float64
}

// Node is the single polymorphic location record.
type Node struct {
	ID           NodeID
	Name         string
	Capabilities NodeCapabilities
}

// DefaultCapabilities returns the baseline defaults: 0.5h startup, 0.5h
// shutdown, 1.0h changeover, ambient storage.
func DefaultCapabilities() NodeCapabilities {
	return NodeCapabilities{
		StorageMode:          StorageAmbient,
		DailyStartupHours:    0.5,
		DailyShutdownHours:   0.5,
		DefaultChangeoverHrs: 1.0,
	}
}

// Validate checks the node invariants: a manufacturing node must have a
// positive production rate, and a node with can_store set must name a
// storage mode.
func (n Node) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("node: empty id")
	}
	if n.Capabilities.CanManufacture && n.Capabilities.ProductionRatePerHr <= 0 {
		return fmt.Errorf("node %s: can_manufacture requires production_rate_per_hour > 0", n.ID)
	}
	if n.Capabilities.CanStore && n.Capabilities.StorageMode == StorageNone {
		return fmt.Errorf("node %s: can_store=true requires a storage_mode", n.ID)
	}
	return nil
}

// ProductionState returns the cohort state freshly produced units enter.
// Ambient by default; a manufacturing node configured with storage_mode=both
// still produces into ambient: freeze-on-arrival happens downstream.
func (n Node) ProductionState() CohortState {
	return StateAmbient
}

// CanFreeze reports whether this node may host a freeze transition locally.
func (n Node) CanFreeze() bool {
	return n.Capabilities.StorageMode == StorageBoth
}

// CanThaw reports whether this node may host a thaw transition locally.
func (n Node) CanThaw() bool {
	return n.Capabilities.StorageMode == StorageBoth
}
