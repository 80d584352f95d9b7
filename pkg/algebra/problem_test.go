package algebra

import "testing"

func TestNewVarRejectsDuplicateNames(t *testing.T) {
	p := NewProblem()
	if _, err := p.NewVar("x", Continuous, 0, 1); err != nil {
		t.Fatalf("first NewVar: %v", err)
	}
	if _, err := p.NewVar("x", Continuous, 0, 1); err == nil {
		t.Error("expected duplicate-name error")
	}
}

func TestExprAddSkipsZeroCoefficients(t *testing.T) {
	e := NewExpr().Add(VarID(0), 0).Add(VarID(1), 2.5)
	if len(e.Terms) != 1 {
		t.Fatalf("got %d terms, want 1 (zero-coefficient term should be dropped)", len(e.Terms))
	}
	if e.Terms[0].Var != VarID(1) || e.Terms[0].Coef != 2.5 {
		t.Errorf("unexpected term %+v", e.Terms[0])
	}
}

func TestVarByNameRoundTrip(t *testing.T) {
	p := NewProblem()
	id, _ := p.NewVar("production.M.P.2026-01-01", Continuous, 0, 1e9)
	got, ok := p.VarByName("production.M.P.2026-01-01")
	if !ok || got != id {
		t.Errorf("VarByName = %v, %v; want %v, true", got, ok, id)
	}
}
