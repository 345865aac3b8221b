package sizeq

import (
	"errors"
	"testing"

	"github.com/joshuapare/regkit/pkg/types"
)

// fakeValue simulates a registry value behind the two-call convention.
func fakeValue(data []byte) Probe {
	return func(buf []byte) (int, error) {
		if buf == nil {
			return len(data), nil
		}
		if len(buf) < len(data) {
			return len(data), ErrMoreData
		}
		copy(buf, data)
		return len(data), nil
	}
}

func TestGet_ExactLength(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	got, err := Get(fakeValue(data))
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(got) != len(data) {
		t.Fatalf("len = %d, want %d (logical length, not capacity)", len(got), len(data))
	}
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], data[i])
		}
	}
}

func TestGet_EmptyValue(t *testing.T) {
	got, err := Get(fakeValue(nil))
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestGet_ShrinkingValue(t *testing.T) {
	// The value shrinks between the size probe and the fill; the fill
	// succeeds and the result must carry the used length, not the capacity.
	calls := 0
	probe := func(buf []byte) (int, error) {
		calls++
		if buf == nil {
			return 64, nil
		}
		copy(buf, "short")
		return 5, nil
	}
	got, err := Get(probe)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if string(got) != "short" {
		t.Fatalf("got %q, want %q", got, "short")
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestGet_GrowingValueStabilizes(t *testing.T) {
	// The value grows once after the initial probe, then holds still. The
	// helper must renegotiate and succeed within the bound.
	data := []byte("grown value payload")
	probes := 0
	probe := func(buf []byte) (int, error) {
		probes++
		if buf == nil {
			return 4, nil // stale size
		}
		if len(buf) < len(data) {
			return len(data), ErrMoreData
		}
		copy(buf, data)
		return len(data), nil
	}
	got, err := Get(probe)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("got %q, want %q", got, data)
	}
}

func TestGet_NeverStabilizes(t *testing.T) {
	// A pathologically racing store must produce a platform error after the
	// bound, not an unbounded loop.
	fills := 0
	probe := func(buf []byte) (int, error) {
		if buf == nil {
			return 8, nil
		}
		fills++
		return len(buf) + 8, ErrMoreData
	}
	_, err := Get(probe)
	if err == nil {
		t.Fatal("Get() should fail on an unstable size")
	}
	if !errors.Is(err, ErrSizeUnstable) {
		t.Fatalf("error = %v, want ErrSizeUnstable", err)
	}
	var terr *types.Error
	if !errors.As(err, &terr) || terr.Kind != types.ErrKindPlatform {
		t.Fatalf("error should carry platform kind, got %v", err)
	}
	if fills != MaxAttempts {
		t.Fatalf("fills = %d, want %d", fills, MaxAttempts)
	}
}

func TestGet_ProbeFailurePropagates(t *testing.T) {
	sentinel := errors.New("no such value")
	probe := func(buf []byte) (int, error) { return 0, sentinel }
	_, err := Get(probe)
	if !errors.Is(err, sentinel) {
		t.Fatalf("error = %v, want probe failure surfaced untouched", err)
	}
}

func TestGet_LyingUsedLength(t *testing.T) {
	probe := func(buf []byte) (int, error) {
		if buf == nil {
			return 4, nil
		}
		return 9, nil // claims more than the buffer holds
	}
	_, err := Get(probe)
	if !errors.Is(err, ErrSizeUnstable) {
		t.Fatalf("error = %v, want ErrSizeUnstable", err)
	}
}
