package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/blockbot/config"
)

// The cache holds objects that are expensive or pointless to load more than
// once per process, such as weight files read by many concurrent games.

type cache struct {
	sync.Mutex
	objects map[string]any
}

type LoadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is the process-wide cache.
var GlobalObjectCache *cache

var once sync.Once

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := loadFunc(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

func (c *cache) evict(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.objects, key)
}

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

func global() *cache {
	once.Do(func() {
		if GlobalObjectCache == nil {
			CreateGlobalObjectCache()
		}
	})
	return GlobalObjectCache
}

// Load returns the object stored under name, calling loadFunc to fill the
// cache on a miss. Failed loads are not cached.
func Load(cfg *config.Config, name string, loadFunc LoadFunc) (any, error) {
	return global().get(cfg, name, loadFunc)
}

// Evict drops name so the next Load reads it again.
func Evict(name string) {
	global().evict(name)
}
