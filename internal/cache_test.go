package internal

import "testing"

func TestCacheEviction(t *testing.T) {
	const entrySize = constTextureSizeFactor // nil textures
	cache := NewCache(3*entrySize)

	keyA, keyB, keyC, keyD := [2]uint64{1, 0}, [2]uint64{2, 0}, [2]uint64{3, 0}, [2]uint64{4, 0}
	cache.SetTexture(keyA, nil)
	cache.SetTexture(keyB, nil)
	cache.SetTexture(keyC, nil)
	if cache.NumEntries() != 3 {
		t.Fatalf("expected 3 entries, got %d", cache.NumEntries())
	}
	if cache.CurrentSize() != 3*entrySize {
		t.Fatalf("expected size %d, got %d", 3*entrySize, cache.CurrentSize())
	}

	// bump A, so B becomes the least recently used
	if _, found := cache.GetTexture(keyA); !found {
		t.Fatal("expected A to be cached")
	}
	cache.SetTexture(keyD, nil)
	if _, found := cache.GetTexture(keyB); found {
		t.Fatal("expected B to be evicted")
	}
	for _, key := range [][2]uint64{keyA, keyC, keyD} {
		if _, found := cache.GetTexture(key); !found {
			t.Fatalf("expected %v to be cached", key)
		}
	}
	if len(cache.entries) != 3 {
		t.Fatalf("expected freed entry slot to be reused, got %d slots", len(cache.entries))
	}
	if cache.PeakSize() != 3*entrySize {
		t.Fatalf("unexpected peak size %d", cache.PeakSize())
	}

	// shrink capacity, most recently used survives (D, after the gets above)
	cache.SetCapacity(entrySize)
	if cache.NumEntries() != 1 {
		t.Fatalf("expected 1 entry, got %d", cache.NumEntries())
	}
	if _, found := cache.GetTexture(keyD); !found {
		t.Fatal("expected D to survive capacity shrinking")
	}

	// replacing an entry keeps the size stable
	cache.SetTexture(keyD, nil)
	if cache.NumEntries() != 1 || cache.CurrentSize() != entrySize {
		t.Fatalf("unexpected state after replacement: %d entries, %d bytes", cache.NumEntries(), cache.CurrentSize())
	}

	cache.Clear()
	if cache.NumEntries() != 0 || cache.CurrentSize() != 0 {
		t.Fatal("expected empty cache after Clear()")
	}
	if cache.PeakSize() != 3*entrySize {
		t.Fatal("Clear() must not reset the peak size")
	}
}

func TestCacheOversizedAndRemove(t *testing.T) {
	cache := NewCache(constTextureSizeFactor - 1)
	cache.SetTexture([2]uint64{1, 1}, nil)
	if cache.NumEntries() != 0 {
		t.Fatal("oversized texture must not be cached")
	}

	cache.SetCapacity(4*constTextureSizeFactor)
	cache.SetTexture([2]uint64{1, 1}, nil)
	cache.SetTexture([2]uint64{2, 2}, nil)
	if !cache.Remove([2]uint64{1, 1}) {
		t.Fatal("expected Remove() to find the key")
	}
	if cache.Remove([2]uint64{1, 1}) {
		t.Fatal("expected second Remove() to miss")
	}
	if cache.lruIndex != cache.mruIndex {
		t.Fatal("single entry must be both lru and mru")
	}

	cache.SetCapacity(0)
	if cache.NumEntries() != 0 || cache.Capacity() != 0 {
		t.Fatal("zero capacity must empty the cache")
	}
}
