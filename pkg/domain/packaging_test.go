package domain

import "testing"

func TestPalletsForUnits(t *testing.T) {
	cases := []struct {
		units int64
		want  int64
	}{
		{0, 0},
		{1, 1},
		{320, 1},
		{321, 2},
		{325, 2}, // one full pallet plus a partial still rounds up to 2
		{14080, 44},
	}
	for _, c := range cases {
		if got := PalletsForUnits(c.units); got != c.want {
			t.Errorf("PalletsForUnits(%d) = %d, want %d", c.units, got, c.want)
		}
	}
}

func TestCasesForUnits(t *testing.T) {
	if got := CasesForUnits(325); got != 33 {
		t.Errorf("CasesForUnits(325) = %d, want 33", got)
	}
	if got := CasesForUnits(320); got != 32 {
		t.Errorf("CasesForUnits(320) = %d, want 32", got)
	}
}

func TestUnitsPerTruck(t *testing.T) {
	if UnitsPerTruck != 14080 {
		t.Errorf("UnitsPerTruck = %d, want 14080", UnitsPerTruck)
	}
}
