package domain

// CohortState is the arrival/storage state carried by a cohort's key
// dimension. There is no boolean "is frozen" flag anywhere in the model;
// the freeze/thaw state machine is implicit in arrival-state
// determination, with state itself as the discriminant.
type CohortState int

const (
	StateAmbient CohortState = iota
	StateFrozen
	StateThawed
)

// String implements fmt.Stringer.
func (s CohortState) String() string {
	switch s {
	case StateAmbient:
		return "ambient"
	case StateFrozen:
		return "frozen"
	case StateThawed:
		return "thawed"
	default:
		return "unknown"
	}
}

// MaxLifeDays returns the shelf-life ceiling in days for cohorts in this
// state.
func (s CohortState) MaxLifeDays() int {
	switch s {
	case StateAmbient:
		return 17
	case StateThawed:
		return 14
	case StateFrozen:
		return 120
	default:
		return 0
	}
}

// StorageMode is a node's intrinsic storage capability.
type StorageMode int

const (
	StorageNone StorageMode = iota
	StorageAmbient
	StorageFrozen
	StorageBoth
)

func (m StorageMode) String() string {
	switch m {
	case StorageAmbient:
		return "ambient"
	case StorageFrozen:
		return "frozen"
	case StorageBoth:
		return "both"
	default:
		return "none"
	}
}

// CanHold reports whether a node with this storage mode can host a cohort
// in the given state.
func (m StorageMode) CanHold(s CohortState) bool {
	switch s {
	case StateFrozen:
		return m == StorageFrozen || m == StorageBoth
	case StateAmbient, StateThawed:
		return m == StorageAmbient || m == StorageBoth
	default:
		return false
	}
}

// TransportMode is a route leg's physical transport condition.
type TransportMode int

const (
	TransportAmbient TransportMode = iota
	TransportFrozen
)

func (m TransportMode) String() string {
	if m == TransportFrozen {
		return "frozen"
	}
	return "ambient"
}

// ArrivalState derives the cohort state a shipment takes on arrival:
//
//	ambient transport -> ambient-only destination: arrives ambient
//	ambient transport -> frozen-only destination:  arrives frozen (freeze-on-arrival)
//	frozen  transport -> frozen-capable destination: arrives frozen
//	frozen  transport -> ambient-only destination: arrives thawed (thaw-on-arrival)
func ArrivalState(transport TransportMode, destCapability StorageMode) CohortState {
	switch transport {
	case TransportAmbient:
		if destCapability.CanHold(StateFrozen) && !destCapability.CanHold(StateAmbient) {
			return StateFrozen
		}
		return StateAmbient
	case TransportFrozen:
		if destCapability.CanHold(StateFrozen) {
			return StateFrozen
		}
		return StateThawed
	default:
		return StateAmbient
	}
}
