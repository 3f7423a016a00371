//go:build cputext

package internal

import "image"
import "testing"

import "github.com/tinne26/blendemo/core"

func TestCacheEvictHooks(t *testing.T) {
	newTexture := func() core.Texture { return image.NewNRGBA(image.Rect(0, 0, 2, 2)) }
	entrySize := textureByteSize(newTexture())
	cache := NewCache(2*int(entrySize))

	var evicted []core.Texture
	hookID := cache.AddEvictHook(func(texture core.Texture) {
		evicted = append(evicted, texture)
		_ = cache.NumEntries() // hooks run unlocked
	})

	texA, texB, texC := newTexture(), newTexture(), newTexture()
	if !cache.SetTexture([2]uint64{1, 0}, texA) { t.Fatal("expected texture to be stored") }
	cache.SetTexture([2]uint64{2, 0}, texB)
	if len(evicted) != 0 { t.Fatalf("unexpected evictions %v", evicted) }

	// eviction
	cache.SetTexture([2]uint64{3, 0}, texC)
	if len(evicted) != 1 || evicted[0] != texA {
		t.Fatal("expected A to be evicted")
	}

	// replacement, then storing the same texture again
	texD := newTexture()
	cache.SetTexture([2]uint64{3, 0}, texD)
	cache.SetTexture([2]uint64{3, 0}, texD)
	if len(evicted) != 2 || evicted[1] != texC {
		t.Fatalf("expected only C to be reported on replacement, got %d evictions", len(evicted))
	}

	// removal and clearing
	cache.Remove([2]uint64{2, 0})
	cache.Clear()
	if len(evicted) != 4 || evicted[2] != texB || evicted[3] != texD {
		t.Fatalf("expected B and D to be reported, got %d evictions", len(evicted))
	}

	// oversized textures are not stored, nothing evicted
	big := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	if cache.SetTexture([2]uint64{9, 0}, big) { t.Fatal("oversized texture must not be stored") }

	cache.RemoveEvictHook(hookID)
	cache.SetTexture([2]uint64{1, 0}, texA)
	cache.SetCapacity(0)
	if len(evicted) != 4 { t.Fatal("removed hook must not be called") }
}
