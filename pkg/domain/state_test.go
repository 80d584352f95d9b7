package domain

import "testing"

func TestArrivalState(t *testing.T) {
	cases := []struct {
		name      string
		transport TransportMode
		dest      StorageMode
		want      CohortState
	}{
		{"ambient to ambient-only", TransportAmbient, StorageAmbient, StateAmbient},
		{"ambient to frozen-only freezes on arrival", TransportAmbient, StorageFrozen, StateFrozen},
		{"frozen to frozen-capable stays frozen", TransportFrozen, StorageFrozen, StateFrozen},
		{"frozen to both stays frozen", TransportFrozen, StorageBoth, StateFrozen},
		{"frozen to ambient-only thaws", TransportFrozen, StorageAmbient, StateThawed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ArrivalState(c.transport, c.dest); got != c.want {
				t.Errorf("ArrivalState(%v, %v) = %v, want %v", c.transport, c.dest, got, c.want)
			}
		})
	}
}

func TestMaxLifeDays(t *testing.T) {
	if StateAmbient.MaxLifeDays() != 17 {
		t.Errorf("ambient max life = %d, want 17", StateAmbient.MaxLifeDays())
	}
	if StateThawed.MaxLifeDays() != 14 {
		t.Errorf("thawed max life = %d, want 14", StateThawed.MaxLifeDays())
	}
	if StateFrozen.MaxLifeDays() != 120 {
		t.Errorf("frozen max life = %d, want 120", StateFrozen.MaxLifeDays())
	}
}
