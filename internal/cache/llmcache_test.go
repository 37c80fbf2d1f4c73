package cache

import (
	"context"
	"testing"
)

func TestLLMCache_MissThenHit(t *testing.T) {
	c := &LLMCache{Dir: t.TempDir()}
	ctx := context.Background()
	key := KeyFrom("gpt-4o", "some prompt")

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
	if err := c.Save(ctx, key, []byte(`{"dataset":[]}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if string(b) != `{"dataset":[]}` {
		t.Fatalf("cached bytes = %q", b)
	}
}

func TestKeyFrom_DistinguishesModelAndPrompt(t *testing.T) {
	a := KeyFrom("m1", "p")
	b := KeyFrom("m2", "p")
	c := KeyFrom("m1", "q")
	if a == b || a == c {
		t.Fatalf("keys collide: %s %s %s", a, b, c)
	}
}

func TestLLMCache_UnconfiguredDir(t *testing.T) {
	c := &LLMCache{}
	if _, _, err := c.Get(context.Background(), "k"); err == nil {
		t.Fatal("expected error when dir not configured")
	}
}
