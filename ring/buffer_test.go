// File: ring/buffer_test.go
// Author: momentics <momentics@gmail.com>

package ring_test

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"runtime"
	"sync"
	"testing"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

func newBuffer(t *testing.T, capacity, itemSize int) *ring.Buffer {
	t.Helper()
	b, err := ring.NewBuffer(make([]byte, capacity*itemSize), capacity, itemSize)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d): %v", capacity, itemSize, err)
	}
	return b
}

// record is the two-field 8-byte item used by the fill/drain scenarios.
func record(tag, payload uint32) []byte {
	item := make([]byte, 8)
	binary.LittleEndian.PutUint32(item[0:4], tag)
	binary.LittleEndian.PutUint32(item[4:8], payload)
	return item
}

func TestNewBufferValidation(t *testing.T) {
	storage := make([]byte, 64)
	cases := []struct {
		name     string
		storage  []byte
		capacity int
		itemSize int
		wantErr  error
	}{
		{"zero capacity", storage, 0, 8, api.ErrInvalidCapacity},
		{"negative capacity", storage, -1, 8, api.ErrInvalidCapacity},
		{"capacity over 2^31-1", storage, 1 << 31, 8, api.ErrInvalidCapacity},
		{"zero item size", storage, 8, 0, api.ErrInvalidItemSize},
		{"short storage", storage, 9, 8, api.ErrStorageTooSmall},
		{"exact storage", storage, 8, 8, nil},
		{"oversized storage", storage, 7, 8, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ring.NewBuffer(c.storage, c.capacity, c.itemSize)
			if err != c.wantErr {
				t.Fatalf("NewBuffer: err = %v, want %v", err, c.wantErr)
			}
		})
	}
}

// fillDrain pushes capacity tagged records, asserts fullness, then drains and
// checks FIFO order.
func fillDrain(t *testing.T, b *ring.Buffer, pass int) {
	t.Helper()
	n := b.Cap()
	for i := 0; i < n; i++ {
		if rc := b.Push(record(uint32(i), uint32(pass))); rc != api.Ok {
			t.Fatalf("pass %d: push %d: %v", pass, i, rc)
		}
		if b.Len() != i+1 {
			t.Fatalf("pass %d: Len = %d after %d pushes", pass, b.Len(), i+1)
		}
	}
	if !b.IsFull() {
		t.Fatalf("pass %d: expected full at %d items", pass, n)
	}
	if rc := b.Push(record(99, 99)); rc != api.BufFull {
		t.Fatalf("pass %d: push into full ring: %v, want BufFull", pass, rc)
	}
	if b.Len() != n {
		t.Fatalf("pass %d: rejected push changed Len to %d", pass, b.Len())
	}
	for i := 0; i < n; i++ {
		slot := b.ReaderFront()
		if slot == nil {
			t.Fatalf("pass %d: ReaderFront nil at %d", pass, i)
		}
		if tag := binary.LittleEndian.Uint32(slot[0:4]); tag != uint32(i) {
			t.Fatalf("pass %d: drained tag %d at position %d", pass, tag, i)
		}
		if rc := b.Pop(); rc != api.Ok {
			t.Fatalf("pass %d: pop %d: %v", pass, i, rc)
		}
	}
	if !b.IsEmpty() {
		t.Fatalf("pass %d: expected empty after drain, Len = %d", pass, b.Len())
	}
	if rc := b.Pop(); rc != api.BufEmpty {
		t.Fatalf("pass %d: pop from empty ring: %v, want BufEmpty", pass, rc)
	}
}

func TestFillDrainNonPowerOfTwo(t *testing.T) {
	fillDrain(t, newBuffer(t, 7, 8), 0)
}

func TestFillDrainPowerOfTwo(t *testing.T) {
	fillDrain(t, newBuffer(t, 32, 8), 0)
}

func TestFillDrainRepeatedOnSameInstance(t *testing.T) {
	b := newBuffer(t, 7, 8)
	fillDrain(t, b, 0)
	fillDrain(t, b, 1)
}

// TestWraparoundManyCycles cycles a non-power-of-two ring far past the 2N
// cursor boundary and checks there is no drift or off-by-one anywhere.
func TestWraparoundManyCycles(t *testing.T) {
	b := newBuffer(t, 7, 8)
	for k := 0; k < 40; k++ { // 40 full cycles push the cursors past 2N many times
		fillDrain(t, b, k)
	}
}

func TestRoundTripBytes(t *testing.T) {
	for _, itemSize := range []int{1, 3, 8, 17, 256} {
		b := newBuffer(t, 5, itemSize)
		item := make([]byte, itemSize)
		rnd := rand.New(rand.NewSource(int64(itemSize)))
		rnd.Read(item)
		if rc := b.Push(item); rc != api.Ok {
			t.Fatalf("itemSize %d: push: %v", itemSize, rc)
		}
		got := b.ReaderFront()
		if !bytes.Equal(got, item) {
			t.Fatalf("itemSize %d: round trip mismatch", itemSize)
		}
		if rc := b.Pop(); rc != api.Ok {
			t.Fatalf("itemSize %d: pop: %v", itemSize, rc)
		}
	}
}

func TestWriterFrontStableUntilCommit(t *testing.T) {
	b := newBuffer(t, 4, 4)
	s1 := b.WriterFront()
	s2 := b.WriterFront()
	if &s1[0] != &s2[0] {
		t.Fatal("WriterFront moved without a Commit")
	}
	copy(s1, []byte{1, 2, 3, 4})
	if rc := b.Commit(); rc != api.Ok {
		t.Fatalf("commit: %v", rc)
	}
	s3 := b.WriterFront()
	if &s3[0] == &s1[0] {
		t.Fatal("WriterFront did not advance after Commit")
	}
	if got := b.ReaderFront(); !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Fatalf("committed slot holds %v", got)
	}
}

func TestPushSizeMismatchPanics(t *testing.T) {
	b := newBuffer(t, 4, 8)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on short item")
		}
	}()
	b.Push([]byte{1, 2, 3})
}

func TestSingleSlotBuffer(t *testing.T) {
	b := newBuffer(t, 1, 2)
	for i := 0; i < 5; i++ {
		if rc := b.Push([]byte{byte(i), 0}); rc != api.Ok {
			t.Fatalf("cycle %d: push: %v", i, rc)
		}
		if rc := b.Push([]byte{0xff, 0xff}); rc != api.BufFull {
			t.Fatalf("cycle %d: second push: %v, want BufFull", i, rc)
		}
		if got := b.ReaderFront(); got[0] != byte(i) {
			t.Fatalf("cycle %d: read %d", i, got[0])
		}
		if rc := b.Pop(); rc != api.Ok {
			t.Fatalf("cycle %d: pop: %v", i, rc)
		}
	}
}

// TestBufferPropertyBased performs randomized push/pop sequences and checks
// Len bookkeeping against a plain model counter.
func TestBufferPropertyBased(t *testing.T) {
	for _, capacity := range []int{1, 2, 7, 15, 16, 64} {
		rnd := rand.New(rand.NewSource(int64(capacity)))
		b := newBuffer(t, capacity, 4)
		size := 0
		for i := 0; i < 5000; i++ {
			item := make([]byte, 4)
			binary.LittleEndian.PutUint32(item, rnd.Uint32())
			if rnd.Intn(2) == 0 {
				if b.Push(item) == api.Ok {
					size++
				} else if size != capacity {
					t.Fatalf("N=%d: BufFull at model size %d", capacity, size)
				}
			} else {
				if b.Pop() == api.Ok {
					size--
				} else if size != 0 {
					t.Fatalf("N=%d: BufEmpty at model size %d", capacity, size)
				}
			}
			if b.Len() != size {
				t.Fatalf("N=%d: Len %d, model %d", capacity, b.Len(), size)
			}
			if b.Len() < 0 || b.Len() > capacity {
				t.Fatalf("N=%d: Len out of bounds: %d", capacity, b.Len())
			}
		}
	}
}

// TestBufferSPSCConcurrent crosses a real goroutine pair through the ring.
// Run under -race this also validates the acquire/release cursor publication.
func TestBufferSPSCConcurrent(t *testing.T) {
	const items = 100000
	b := newBuffer(t, 7, 4) // non-power-of-two to stress the doubled range
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		item := make([]byte, 4)
		for i := 0; i < items; i++ {
			binary.LittleEndian.PutUint32(item, uint32(i))
			for b.Push(item) != api.Ok {
				runtime.Gosched()
			}
		}
	}()
	for i := 0; i < items; i++ {
		var slot []byte
		for slot = b.ReaderFront(); slot == nil; slot = b.ReaderFront() {
			runtime.Gosched()
		}
		if got := binary.LittleEndian.Uint32(slot); got != uint32(i) {
			t.Fatalf("consumed %d at position %d", got, i)
		}
		if rc := b.Pop(); rc != api.Ok {
			t.Fatalf("pop %d: %v", i, rc)
		}
	}
	wg.Wait()
	if !b.IsEmpty() {
		t.Fatalf("ring not empty after drain: Len = %d", b.Len())
	}
}
