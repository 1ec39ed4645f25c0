package hwy

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ajroetker/quadlane/hwy/contrib/alloc"
)

func TestLoadStoreAligned(t *testing.T) {
	buf := alloc.AllocateFloats(8)
	if buf == nil {
		t.Fatal("allocation failed")
	}
	for i := range buf {
		buf[i] = float32(i + 1)
	}

	v := LoadAligned(buf)
	assertLanes(t, "LoadAligned", v, [4]float32{1, 2, 3, 4})

	StoreAligned(Mul(v, Set(2)), buf[4:])
	want := []float32{1, 2, 3, 4, 2, 4, 6, 8}
	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("StoreAligned: index %d: got %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestAlignmentChecks(t *testing.T) {
	buf := alloc.AllocateFloats(12)
	if buf == nil {
		t.Fatal("allocation failed")
	}
	misaligned := buf[1:]

	t.Run("disabled", func(t *testing.T) {
		defer SetAlignmentChecks(false)()
		// Misaligned input is a precondition violation but is not detected.
		_ = LoadAligned(misaligned)
		StoreAligned(One(), misaligned)
	})

	t.Run("enabled", func(t *testing.T) {
		defer SetAlignmentChecks(true)()
		_ = LoadAligned(buf) // aligned input is fine

		for name, fn := range map[string]func(){
			"LoadAligned":  func() { _ = LoadAligned(misaligned) },
			"StoreAligned": func() { StoreAligned(One(), misaligned) },
		} {
			err := capturePanic(fn)
			if !errors.Is(err, alloc.ErrMisaligned) {
				t.Errorf("%s: got panic %v, want alloc.ErrMisaligned", name, err)
			}
		}
	})
}

func capturePanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}

func TestLoadBroadcast(t *testing.T) {
	buf := alloc.AllocateFloats(4)
	if buf == nil {
		t.Fatal("allocation failed")
	}
	buf[1] = 3.5
	// buf[1:] is deliberately not 16-byte aligned.
	assertLanes(t, "LoadBroadcast", LoadBroadcast(buf[1:]), [4]float32{3.5, 3.5, 3.5, 3.5})
}

func TestMaskLoadStore(t *testing.T) {
	src := []float32{1, 2, 3}
	assertLanes(t, "MaskLoad", MaskLoad(FirstN(3), src), [4]float32{1, 2, 3, 0})
	assertLanes(t, "MaskLoad partial", MaskLoad(FirstN(2), src), [4]float32{1, 2, 0, 0})

	dst := []float32{10, 20, 30, 40}
	MaskStore(FirstN(2), vec(1, 2, 3, 4), dst)
	want := []float32{1, 2, 30, 40}
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("MaskStore: index %d: got %v, want %v", i, dst[i], want[i])
		}
	}

	short := []float32{0}
	MaskStore(FirstN(4), vec(7, 8, 9, 10), short)
	if short[0] != 7 {
		t.Errorf("MaskStore short: got %v, want 7", short[0])
	}
}
