package setsync_test

import (
	"bytes"
	"context"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/bobg/setsync"
	"github.com/bobg/setsync/store/mem"
)

// failingKV delegates to a nested KV but fails every operation on the
// named paths.
type failingKV struct {
	kv   setsync.KV
	fail map[string]bool
}

func (f failingKV) Load(ctx context.Context, path string) ([]byte, error) {
	if f.fail[path] {
		return nil, errors.New("induced failure")
	}
	return f.kv.Load(ctx, path)
}

func (f failingKV) Save(ctx context.Context, path string, value []byte) error {
	if f.fail[path] {
		return errors.New("induced failure")
	}
	return f.kv.Save(ctx, path, value)
}

func TestTransferBothDirections(t *testing.T) {
	ctx := context.Background()

	localKV := mem.New()
	remote := mem.New()
	local := setsync.NewLocal(localKV)

	if err := localKV.Save(ctx, "outgoing", []byte("local content")); err != nil {
		t.Fatal(err)
	}
	if err := remote.Save(ctx, "incoming", []byte("remote content")); err != nil {
		t.Fatal(err)
	}

	plan := setsync.Plan{
		CanRead:  true,
		CanWrite: true,
		Pull:     []setsync.Section{{Name: "incoming", Timestamp: 200}},
		Push:     []setsync.Section{{Name: "outgoing", Timestamp: 300}},
	}

	outcome, err := setsync.Transfer(ctx, plan, local, remote)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(plan.Pull, outcome.Pulled()); diff != "" {
		t.Errorf("pulled mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(plan.Push, outcome.Pushed()); diff != "" {
		t.Errorf("pushed mismatch (-want +got):\n%s", diff)
	}

	got, err := localKV.Load(ctx, "incoming")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("remote content")) {
		t.Errorf("pulled content: got %q", got)
	}

	got, err = remote.Load(ctx, "outgoing")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("local content")) {
		t.Errorf("pushed content: got %q", got)
	}
}

// A failed transfer marks the run failed but the transfers that
// succeeded stay committed: no rollback.
func TestTransferPartialFailure(t *testing.T) {
	ctx := context.Background()

	localKV := mem.New()
	local := setsync.NewLocal(localKV)

	remote := failingKV{kv: mem.New(), fail: map[string]bool{"bad": true}}
	for _, name := range []string{"good1", "good2"} {
		if err := remote.kv.Save(ctx, name, []byte(name+" content")); err != nil {
			t.Fatal(err)
		}
	}

	plan := setsync.Plan{
		CanRead: true,
		Pull: []setsync.Section{
			{Name: "good1", Timestamp: 10},
			{Name: "bad", Timestamp: 20},
			{Name: "good2", Timestamp: 30},
		},
	}

	outcome, err := setsync.Transfer(ctx, plan, local, remote)
	if err == nil {
		t.Fatal("got nil error, want failure")
	}

	pulled := outcome.Pulled()
	sort.Slice(pulled, func(i, j int) bool { return pulled[i].Name < pulled[j].Name })
	want := []setsync.Section{{Name: "good1", Timestamp: 10}, {Name: "good2", Timestamp: 30}}
	if diff := cmp.Diff(want, pulled); diff != "" {
		t.Errorf("pulled mismatch (-want +got):\n%s", diff)
	}

	// The two good sections are durably present in local storage even
	// though the run as a whole failed.
	for _, name := range []string{"good1", "good2"} {
		got, err := localKV.Load(ctx, name)
		if err != nil {
			t.Fatalf("loading %s: %s", name, err)
		}
		if !bytes.Equal(got, []byte(name+" content")) {
			t.Errorf("loading %s: got %q", name, got)
		}
	}
	if _, err = localKV.Load(ctx, "bad"); !errors.Is(err, setsync.ErrNotFound) {
		t.Errorf("loading bad: got error %v, want ErrNotFound", err)
	}
}

func TestTransferEmptyPlan(t *testing.T) {
	outcome, err := setsync.Transfer(context.Background(), setsync.Plan{CanRead: true}, setsync.NewLocal(mem.New()), mem.New())
	if err != nil {
		t.Fatal(err)
	}
	if len(outcome.Pulled()) != 0 || len(outcome.Pushed()) != 0 {
		t.Errorf("got pulled=%v pushed=%v, want both empty", outcome.Pulled(), outcome.Pushed())
	}
}
