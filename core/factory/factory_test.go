package factory

import (
	"errors"
	"testing"
)

type sample struct{ Meters float64 }

type sampleConf struct {
	Meters float64 `json:"distance_meters"`
}

func newSampleRegistry(t *testing.T) *Registry[*sample] {
	t.Helper()
	reg := NewRegistry[*sample]()
	if err := reg.Register("constant", func(conf map[string]any) (*sample, error) {
		var c sampleConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sample{Meters: c.Meters}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	return reg
}

// Test registry registration and instantiation using Decode.
func TestRegistry_Create(t *testing.T) {
	reg := newSampleRegistry(t)
	inst, err := reg.Create(ModuleConfig{Type: "constant", Conf: map[string]any{"distance_meters": 3}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inst.Meters != 3 {
		t.Fatalf("expected 3 got %f", inst.Meters)
	}
}

// Values from environment overrides arrive as strings.
func TestRegistry_CreateWeaklyTyped(t *testing.T) {
	reg := newSampleRegistry(t)
	inst, err := reg.Create(ModuleConfig{Type: "constant", Conf: map[string]any{"distance_meters": "1500.5"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inst.Meters != 1500.5 {
		t.Fatalf("expected 1500.5 got %f", inst.Meters)
	}
}

// Test duplicate registration and unknown type errors.
func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	if err := reg.Register("x", func(map[string]any) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("x", func(map[string]any) (int, error) { return 2, nil }); err == nil {
		t.Fatal("expected duplicate error")
	}
	if err := reg.Register("z", nil); err == nil {
		t.Fatal("expected nil factory error")
	}
	if _, err := reg.Create(ModuleConfig{Type: "y"}); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected unknown type error, got %v", err)
	}
}

func TestRegistry_Types(t *testing.T) {
	reg := NewRegistry[int]()
	for _, n := range []string{"directions", "constant"} {
		if err := reg.Register(n, func(map[string]any) (int, error) { return 0, nil }); err != nil {
			t.Fatalf("register: %v", err)
		}
	}
	got := reg.Types()
	if len(got) != 2 || got[0] != "constant" || got[1] != "directions" {
		t.Fatalf("unexpected types %v", got)
	}
}
