package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeSeeder struct {
	called string
	err    error
}

func (f *fakeSeeder) Pokedex(context.Context) (string, error) {
	f.called = "pokedex"
	return "Seed Executed", f.err
}

func (f *fakeSeeder) Teslo(context.Context) (string, error) {
	f.called = "teslo"
	return "SEED EXECUTED", f.err
}

func TestRunSeedPrintsMessage(t *testing.T) {
	var out bytes.Buffer
	s := &fakeSeeder{}

	if err := runSeed(context.Background(), s, "teslo", &out); err != nil {
		t.Fatalf("runSeed: %v", err)
	}
	if s.called != "teslo" {
		t.Fatalf("called %q", s.called)
	}
	if !strings.Contains(out.String(), `"message": "SEED EXECUTED"`) {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestRunSeedPropagatesError(t *testing.T) {
	var out bytes.Buffer
	s := &fakeSeeder{err: errors.New("pokeapi down")}

	if err := runSeed(context.Background(), s, "pokedex", &out); err == nil {
		t.Fatal("expected error")
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be printed on failure, got %s", out.String())
	}
}

func TestRunSeedUnknownTarget(t *testing.T) {
	if err := runSeed(context.Background(), &fakeSeeder{}, "dealership", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestSeedCommandRejectsUnknownTarget(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"seed", "dealership"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected argument validation error")
	}
}
