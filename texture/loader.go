package texture

import "os"
import "sync"
import "io/fs"
import "image"
import "hash/fnv"

import "github.com/tinne26/blendemo/core"
import "github.com/tinne26/blendemo/internal"

// A [Loader] loads textures from files, keeping decoded textures in
// the package level texture cache (see the cache subpackage). Entries
// are keyed by file name and modification stamp, so loading the same
// unchanged file twice returns the same texture.
//
// The loader owns the textures it returns. Each successful [Loader.Load]()
// must be paired with a [Loader.Drop]() once the texture is no longer
// drawn. A texture is released when it has been dropped and it's no
// longer in the cache, whichever happens last. [Loader.Close]() releases
// everything the loader still holds.
type Loader struct {
	fsys fs.FS // nil for the OS filesystem
	cache *internal.Cache
	release func(core.Texture)

	mutex sync.Mutex
	hookID uint64 // 0 while not registered on the cache
	textures map[core.Texture]*loadedTexture
	stamps map[uint64]uint64 // name hash to latest mod stamp
	hits int
	misses int
}

type loadedTexture struct {
	key [2]uint64
	refs int
	cached bool
}

// Creates a new [Loader] that reads files from the given filesystem.
// If fsys is nil, names are regular OS paths.
func NewLoader(fsys fs.FS) *Loader {
	return newLoader(fsys, &internal.DefaultCache, Release)
}

func newLoader(fsys fs.FS, cache *internal.Cache, release func(core.Texture)) *Loader {
	return &Loader{
		fsys: fsys,
		cache: cache,
		release: release,
		textures: make(map[core.Texture]*loadedTexture, 4),
		stamps: make(map[uint64]uint64, 4),
	}
}

// Loads the texture for the given file name.
func (self *Loader) Load(name string) (core.Texture, error) {
	info, err := self.stat(name)
	if err != nil { return nil, loadErr(name, err) }
	if info.IsDir() { return nil, loadErr(name, errIsDir) }

	nameHash, stamp := hashName(name), modStamp(info)
	key := [2]uint64{nameHash, stamp}
	texture, found := self.cache.GetTexture(key)
	if found && self.acquire(texture) { return texture, nil }

	img, err := self.decode(name)
	if err != nil { return nil, err }
	texture = FromImage(img)

	self.mutex.Lock()
	if self.hookID == 0 { self.hookID = self.cache.AddEvictHook(self.onEvict) }
	self.misses += 1
	self.textures[texture] = &loadedTexture{ key: key, refs: 1, cached: true }
	prevStamp, hasPrev := self.stamps[nameHash]
	self.stamps[nameHash] = stamp
	self.mutex.Unlock()

	// stale versions of the file go away, dropped ones get released
	if hasPrev && prevStamp != stamp {
		self.cache.Remove([2]uint64{nameHash, prevStamp})
	}
	if !self.cache.SetTexture(key, texture) {
		self.mutex.Lock()
		self.textures[texture].cached = false
		self.mutex.Unlock()
	}
	return texture, nil
}

// Drops a reference to a texture returned by [Loader.Load](). Textures
// not owned by the loader are ignored.
func (self *Loader) Drop(texture core.Texture) {
	if texture == nil { return }
	self.mutex.Lock()
	loaded, found := self.textures[texture]
	if !found || loaded.refs == 0 {
		self.mutex.Unlock()
		return
	}
	loaded.refs -= 1
	releasable := (loaded.refs == 0 && !loaded.cached)
	if releasable { delete(self.textures, texture) }
	self.mutex.Unlock()

	if releasable { self.release(texture) }
}

// Releases all the textures held by the loader, removing them from
// the cache. Textures previously returned by [Loader.Load]() can't be
// used afterwards. The loader can still load new textures.
func (self *Loader) Close() {
	self.mutex.Lock()
	if self.hookID != 0 {
		self.cache.RemoveEvictHook(self.hookID)
		self.hookID = 0
	}
	textures := self.textures
	self.textures = make(map[core.Texture]*loadedTexture, 4)
	clear(self.stamps)
	self.mutex.Unlock()

	for texture, loaded := range textures {
		if loaded.cached {
			cached, found := self.cache.GetTexture(loaded.key)
			if found && cached == texture { self.cache.Remove(loaded.key) }
		}
		self.release(texture)
	}
}

// Returns the number of loads served from the cache and the number
// of loads that had to decode the file.
func (self *Loader) Stats() (hits, misses int) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.hits, self.misses
}

// Returns the number of textures owned by the loader that haven't
// been released yet.
func (self *Loader) Live() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.textures)
}

// Textures cached by other loaders are not shared. Returns false
// for them, so they are decoded again.
func (self *Loader) acquire(texture core.Texture) bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	loaded, found := self.textures[texture]
	if !found { return false }
	loaded.refs += 1
	self.hits += 1
	return true
}

func (self *Loader) onEvict(texture core.Texture) {
	self.mutex.Lock()
	loaded, found := self.textures[texture]
	if !found {
		self.mutex.Unlock()
		return
	}
	loaded.cached = false
	releasable := (loaded.refs == 0)
	if releasable { delete(self.textures, texture) }
	self.mutex.Unlock()

	if releasable { self.release(texture) }
}

func (self *Loader) stat(name string) (fs.FileInfo, error) {
	if self.fsys == nil { return os.Stat(name) }
	return fs.Stat(self.fsys, name)
}

func (self *Loader) decode(name string) (image.Image, error) {
	if self.fsys == nil { return DecodeFile(name) }
	return DecodeFS(self.fsys, name)
}

func hashName(name string) uint64 {
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(name))
	return hash.Sum64()
}

func modStamp(info fs.FileInfo) uint64 {
	return uint64(info.ModTime().UnixNano()) ^ (uint64(info.Size()) << 40)
}
