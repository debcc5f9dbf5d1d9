package core

import "testing"

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Grid", Params: []Parameter{IntParam("w", "Width", 220)}},
		{Name: "Noise", Params: []Parameter{
			FloatParam("persistence", "Persistence", 0.5),
			BoolParam("smooth", "Smooth", true),
			Int64Param("seed", "Seed", -3),
		}},
	}}

	cases := []struct {
		key   string
		typ   ParamType
		value string
	}{
		{"w", ParamTypeInt, "220"},
		{"persistence", ParamTypeFloat, "0.5"},
		{"smooth", ParamTypeBool, "true"},
		{"seed", ParamTypeInt, "-3"},
	}
	for _, tc := range cases {
		p, ok := snap.Lookup(tc.key)
		if !ok {
			t.Fatalf("Lookup(%q) missing", tc.key)
		}
		if p.Type != tc.typ || p.Value != tc.value {
			t.Fatalf("Lookup(%q) = %+v, want type %s value %s", tc.key, p, tc.typ, tc.value)
		}
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup of unknown key should fail")
	}
}
