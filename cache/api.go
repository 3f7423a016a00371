package cache

import "github.com/tinne26/blendemo/internal"

// Default cache size value, in bytes.
const DefaultSize = 32*1024*1024 // 32 MiB

// cache size constant verification
func init() {
	if DefaultSize != internal.DefaultCacheSize {
		panic("DefaultSize != internal.DefaultCacheSize")
	}
}

// Returns the current cache capacity. It's either [DefaultSize] or
// the last value set by the user through [SetCapacity]().
func GetCapacity() int {
	return internal.DefaultCache.Capacity()
}

// Sets the maximum texture cache size, in bytes. The default value is
// [DefaultSize]. Values above 1GiB are not allowed.
// 
// Textures are only cached by the texture loader, so that reloading
// unchanged files doesn't decode them again. With a capacity of zero,
// every load decodes the file.
func SetCapacity(bytes int) {
	internal.DefaultCache.SetCapacity(bytes)
}

// Returns an approximation of the number of bytes taken by the textures
// currently stored in the cache.
//
// In Ebitengine this estimation is not particularly reliable, as images
// might or might not include borders, mipmaps, and their internal structure
// might change between versions, causing more or less overhead.
func GetCurrentSize() int {
	return internal.DefaultCache.CurrentSize()
}

// Returns an approximation of the maximum amount of bytes that the cache
// has been filled with at any point of its life.
func GetPeakSize() int {
	return int(internal.DefaultCache.PeakSize())
}

// Returns the number of textures currently cached.
func GetNumEntries() int {
	return internal.DefaultCache.NumEntries()
}

// Drops all cached textures. Loaders release the dropped textures
// they no longer hand out; textures still in use stay valid until
// they are given back with Loader.Drop().
func Clear() {
	internal.DefaultCache.Clear()
}
