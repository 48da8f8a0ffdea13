package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"runtime"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/bobg/setsync"
	"github.com/bobg/setsync/store"
	"github.com/bobg/setsync/store/mem"
	"github.com/bobg/setsync/testutil"
)

func TestStore(t *testing.T) {
	testutil.ReadWrite(context.Background(), t, New([]setsync.KV{mem.New(), mem.New()}))
}

func TestSaveReachesAllNested(t *testing.T) {
	ctx := context.Background()

	nested := []*mem.Store{mem.New(), mem.New(), mem.New()}
	s := New([]setsync.KV{nested[0], nested[1], nested[2]})

	err := s.Save(ctx, "a", []byte("value"))
	if err != nil {
		t.Fatal(err)
	}

	for i, m := range nested {
		got, err := m.Load(ctx, "a")
		if err != nil {
			t.Fatalf("nested store %d: %s", i, err)
		}
		if !bytes.Equal(got, []byte("value")) {
			t.Errorf("nested store %d: got %q", i, got)
		}
	}
}

var errBroken = errors.New("broken")

// brokenKV fails every operation.
type brokenKV struct{}

func (brokenKV) Load(context.Context, string) ([]byte, error) { return nil, errBroken }
func (brokenKV) Save(context.Context, string, []byte) error   { return errBroken }

func TestLoadFirstSuccessWins(t *testing.T) {
	ctx := context.Background()

	good := mem.New()
	err := good.Save(ctx, "a", []byte("value"))
	if err != nil {
		t.Fatal(err)
	}

	s := New([]setsync.KV{brokenKV{}, good, brokenKV{}})

	got, err := s.Load(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("value")) {
		t.Errorf("got %q, want %q", got, "value")
	}
}

func TestLoadAllFail(t *testing.T) {
	s := New([]setsync.KV{brokenKV{}, brokenKV{}})

	_, err := s.Load(context.Background(), "a")
	if !errors.Is(err, errBroken) {
		t.Errorf("got error %v, want %v", err, errBroken)
	}
}

func TestLoadDoesNotLeakGoroutines(t *testing.T) {
	ctx := context.Background()

	good := mem.New()
	err := good.Save(ctx, "a", []byte("value"))
	if err != nil {
		t.Fatal(err)
	}

	success := New([]setsync.KV{good, mem.New()})
	failure := New([]setsync.KV{brokenKV{}, brokenKV{}})

	before := runtime.NumGoroutine()

	for i := 0; i < 100; i++ {
		if _, err := success.Load(ctx, "a"); err != nil {
			t.Fatal(err)
		}
		if _, err := failure.Load(ctx, "a"); err == nil {
			t.Fatal("got nil error from all-failing mirror")
		}
	}

	// Give stragglers a moment to deliver their buffered results and
	// exit.
	var after int
	for i := 0; i < 100; i++ {
		after = runtime.NumGoroutine()
		if after <= before+2 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if after > before+2 {
		t.Errorf("goroutines before=%d after=%d", before, after)
	}
}

func TestFactoryFromJSONConfig(t *testing.T) {
	var conf map[string]interface{}
	err := json.Unmarshal([]byte(`{"type":"mirror","nested":[{"type":"mem"},{"type":"mem"}]}`), &conf)
	if err != nil {
		t.Fatal(err)
	}

	kv, err := store.Create(context.Background(), "mirror", conf)
	if err != nil {
		t.Fatal(err)
	}

	testutil.ReadWrite(context.Background(), t, kv)
}
