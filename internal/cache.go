package internal

import "fmt"
import "sync"

import "github.com/tinne26/blendemo/core"

// Default cache size value, in bytes.
const DefaultCacheSize = 32*1024*1024 // 32 MiB

// Package level cache for decoded textures. Textures are keyed by
// the hash of their source name and a modification stamp, so reloading
// an unchanged file is free while edited files get a fresh entry.
var DefaultCache Cache = *NewCache(DefaultCacheSize)

const noEntry32 uint32 = uint32(0b11111111_11111111_11111111_11111111)

type CachedTextureEntry struct {
	Texture core.Texture // Read-only.
	Key [2]uint64 // Read-only.
	ByteSize uint32 // Read-only.
	PrevEntryIndex uint32 // towards LRU. none if == noEntry32. also used for nextFreeEntryIndex
	NextEntryIndex uint32 // towards MRU. none if == noEntry32
}

// A size-bounded LRU cache of textures. Safe for concurrent use.
type Cache struct {
	texturesMap map[[2]uint64]uint32
	entries []CachedTextureEntry
	mruIndex uint32
	lruIndex uint32
	nextFreeEntryIndex uint32 // none if == noEntry32

	mutex sync.RWMutex
	capacity uint64
	currentSize uint64
	peakSize uint64 // (max ever size)

	evicted []core.Texture // pending notifications, only used while locked
	evictHooks map[uint64]func(core.Texture)
	nextHookID uint64
}

// Registers a function to be called with every texture that leaves the
// cache, whether by eviction, replacement, Remove() or Clear(). Hooks
// are invoked after the cache is unlocked, so they may use the cache.
// Returns an id for [Cache.RemoveEvictHook]().
func (self *Cache) AddEvictHook(hook func(core.Texture)) uint64 {
	if hook == nil { panic("can't cache.AddEvictHook(nil)") }
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.evictHooks == nil {
		self.evictHooks = make(map[uint64]func(core.Texture), 1)
	}
	self.nextHookID += 1
	self.evictHooks[self.nextHookID] = hook
	return self.nextHookID
}

func (self *Cache) RemoveEvictHook(id uint64) {
	self.mutex.Lock()
	delete(self.evictHooks, id)
	self.mutex.Unlock()
}

func NewCache(capacity int) *Cache {
	const maxCapacity = 1*1024*1024*1024 // 1 GiB

	if capacity < 0 { panic("can't create cache with negative capacity") }
	if capacity > maxCapacity {
		capacity = maxCapacity
		fmt.Print("[blendemo.cache] Excessive cache capacity requested, limited to 1GiB\n")
	}
	return &Cache{
		capacity: uint64(capacity),
		texturesMap: make(map[[2]uint64]uint32, 8),
		entries: make([]CachedTextureEntry, 0, 8),
		nextFreeEntryIndex: noEntry32,
		mruIndex: noEntry32,
		lruIndex: noEntry32,
	}
}

func (self *Cache) Capacity() int {
	self.mutex.RLock()
	capacity := self.capacity
	self.mutex.RUnlock()
	return int(capacity)
}

// Sets the cache capacity, evicting least recently used entries
// until the current size fits.
func (self *Cache) SetCapacity(bytes int) {
	if bytes < 0 { panic("can't cache.SetCapacity(bytes) with bytes < 0") }
	self.mutex.Lock()
	self.capacity = uint64(bytes)
	if bytes == 0 {
		self.clear()
	} else {
		for self.currentSize > self.capacity {
			self.removeEntry(self.lruIndex)
		}
	}
	self.unlockAndNotify()
}

func (self *Cache) CurrentSize() int {
	self.mutex.RLock()
	currentSize := self.currentSize
	self.mutex.RUnlock()
	return int(currentSize)
}

func (self *Cache) PeakSize() uint64 {
	self.mutex.RLock()
	peakSize := self.peakSize
	self.mutex.RUnlock()
	return peakSize
}

// Returns the number of textures currently in the cache.
func (self *Cache) NumEntries() int {
	self.mutex.RLock()
	numEntries := len(self.texturesMap)
	self.mutex.RUnlock()
	return numEntries
}

// Drops all the entries. Capacity and peak size are kept.
func (self *Cache) Clear() {
	self.mutex.Lock()
	self.clear()
	self.unlockAndNotify()
}

// Stores the texture under the given key, replacing any previous
// entry. Textures that can't fit in the cache even after evicting
// everything else are not stored, and false is returned.
func (self *Cache) SetTexture(key [2]uint64, texture core.Texture) bool {
	byteSize := textureByteSize(texture)

	self.mutex.Lock()
	defer self.unlockAndNotify()

	// drop previous entry, if any
	entryIndex, found := self.texturesMap[key]
	if found {
		if self.entries[entryIndex].Texture == texture {
			self.entries[entryIndex].Texture = nil // same texture, not evicted
		}
		self.removeEntry(entryIndex)
	}
	if uint64(byteSize) > self.capacity { return false } // can't fit texture into cache

	// ensure free space
	for self.currentSize + uint64(byteSize) > self.capacity {
		self.removeEntry(self.lruIndex)
	}

	// assign entry index, reusing free slots when possible
	if self.nextFreeEntryIndex == noEntry32 {
		entryIndex = uint32(len(self.entries))
		self.entries = append(self.entries, CachedTextureEntry{})
	} else {
		entryIndex = self.nextFreeEntryIndex
		self.nextFreeEntryIndex = self.entries[entryIndex].PrevEntryIndex
	}
	self.entries[entryIndex] = CachedTextureEntry{
		Texture: texture,
		Key: key,
		ByteSize: byteSize,
		PrevEntryIndex: noEntry32,
		NextEntryIndex: noEntry32,
	}
	self.texturesMap[key] = entryIndex
	self.pushMRU(entryIndex)

	// update sizes
	self.currentSize += uint64(byteSize)
	if self.currentSize > self.peakSize {
		self.peakSize = self.currentSize
	}
	return true
}

// Returns the texture stored under the given key, if any, and marks
// it as the most recently used.
func (self *Cache) GetTexture(key [2]uint64) (core.Texture, bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	entryIndex, found := self.texturesMap[key]
	if !found { return nil, false }
	if entryIndex != self.mruIndex {
		self.unlink(entryIndex)
		self.pushMRU(entryIndex)
	}
	return self.entries[entryIndex].Texture, true
}

// Removes the entry with the given key. Returns false if the key
// wasn't cached.
func (self *Cache) Remove(key [2]uint64) bool {
	self.mutex.Lock()
	defer self.unlockAndNotify()
	entryIndex, found := self.texturesMap[key]
	if found { self.removeEntry(entryIndex) }
	return found
}

// precondition: must be called with the cache locked
func (self *Cache) clear() {
	for _, entryIndex := range self.texturesMap {
		self.evict(self.entries[entryIndex].Texture)
	}
	clear(self.texturesMap)
	clear(self.entries) // allow textures to be GC'd
	self.entries = self.entries[ : 0]
	self.mruIndex = noEntry32
	self.lruIndex = noEntry32
	self.nextFreeEntryIndex = noEntry32
	self.currentSize = 0
}

// precondition: must be called with the cache locked
func (self *Cache) removeEntry(entryIndex uint32) {
	if entryIndex == noEntry32 { panic("broken code") } // discretionary safety check
	self.unlink(entryIndex)
	entry := &self.entries[entryIndex]
	if uint64(entry.ByteSize) > self.currentSize {
		panic("broken code") // discretionary safety check
	}
	self.currentSize -= uint64(entry.ByteSize)
	delete(self.texturesMap, entry.Key)
	self.evict(entry.Texture)
	entry.Texture = nil // allow texture to be GC'd
	entry.PrevEntryIndex = self.nextFreeEntryIndex
	self.nextFreeEntryIndex = entryIndex
}

// precondition: must be called with the cache locked
func (self *Cache) unlink(entryIndex uint32) {
	entry := &self.entries[entryIndex]
	if entry.PrevEntryIndex != noEntry32 {
		self.entries[entry.PrevEntryIndex].NextEntryIndex = entry.NextEntryIndex
	} else {
		self.lruIndex = entry.NextEntryIndex
	}
	if entry.NextEntryIndex != noEntry32 {
		self.entries[entry.NextEntryIndex].PrevEntryIndex = entry.PrevEntryIndex
	} else {
		self.mruIndex = entry.PrevEntryIndex
	}
	entry.PrevEntryIndex = noEntry32
	entry.NextEntryIndex = noEntry32
}

// precondition: must be called with the cache locked and the entry unlinked
func (self *Cache) pushMRU(entryIndex uint32) {
	entry := &self.entries[entryIndex]
	entry.PrevEntryIndex = self.mruIndex
	entry.NextEntryIndex = noEntry32
	if self.mruIndex != noEntry32 {
		self.entries[self.mruIndex].NextEntryIndex = entryIndex
	} else {
		self.lruIndex = entryIndex
	}
	self.mruIndex = entryIndex
}

// precondition: must be called with the cache locked
func (self *Cache) evict(texture core.Texture) {
	if texture == nil || len(self.evictHooks) == 0 { return }
	self.evicted = append(self.evicted, texture)
}

// precondition: must be called with the cache locked. Unlocks it.
func (self *Cache) unlockAndNotify() {
	if len(self.evicted) == 0 {
		self.mutex.Unlock()
		return
	}

	evicted := self.evicted
	self.evicted = nil
	hooks := make([]func(core.Texture), 0, len(self.evictHooks))
	for _, hook := range self.evictHooks {
		hooks = append(hooks, hook)
	}
	self.mutex.Unlock()

	for _, texture := range evicted {
		for _, hook := range hooks {
			hook(texture)
		}
	}
}
