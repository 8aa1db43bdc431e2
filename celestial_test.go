package ascent

import "testing"

func TestEarthConstants(t *testing.T) {
	if Earth.GM() != Earth.μ {
		t.Fatalf("GM() accessor out of sync with μ")
	}
	if Earth.Radius <= 0 {
		t.Fatalf("expected positive Earth radius, got %f", Earth.Radius)
	}
	if Earth.String() != "Earth body" {
		t.Fatalf("unexpected String(): %s", Earth.String())
	}
}
