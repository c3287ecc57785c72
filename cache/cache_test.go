package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/blockbot/config"
)

var DefaultConfig = config.DefaultConfig()

func TestLoadOnce(t *testing.T) {
	is := is.New(t)
	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		return key + "!", nil
	}
	for i := 0; i < 3; i++ {
		obj, err := Load(&DefaultConfig, "test-load-once", loader)
		is.NoErr(err)
		is.Equal(obj.(string), "test-load-once!")
	}
	is.Equal(calls, 1)

	Evict("test-load-once")
	_, err := Load(&DefaultConfig, "test-load-once", loader)
	is.NoErr(err)
	is.Equal(calls, 2)
}

func TestFailedLoadNotCached(t *testing.T) {
	is := is.New(t)
	boom := errors.New("boom")
	_, err := Load(&DefaultConfig, "test-fail", func(*config.Config, string) (any, error) {
		return nil, boom
	})
	is.True(errors.Is(err, boom))

	obj, err := Load(&DefaultConfig, "test-fail", func(*config.Config, string) (any, error) {
		return 7, nil
	})
	is.NoErr(err)
	is.Equal(obj.(int), 7)
}
