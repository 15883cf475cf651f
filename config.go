package main

import "sync"

type Config struct {
	SearchDepth     int    `json:"search_depth"`
	SearchWorkers   int    `json:"search_workers"`
	Seed            int64  `json:"seed"`
	LogSearchStats  bool   `json:"log_search_stats"`
	ObserverAddr    string `json:"observer_addr"`
	BlackIsHuman    bool   `json:"black_is_human"`
	WhiteIsHuman    bool   `json:"white_is_human"`
	ColoredRenderer bool   `json:"colored_renderer"`
}

func DefaultConfig() Config {
	return Config{
		SearchDepth:     defaultSearchDepth,
		SearchWorkers:   0, // 0 = GOMAXPROCS
		Seed:            0, // 0 = non-deterministic tie-break
		LogSearchStats:  false,
		ObserverAddr:    "",
		BlackIsHuman:    true,
		WhiteIsHuman:    false,
		ColoredRenderer: true,
	}
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
