package datagen

import "sync"

// Cache memoizes built datasets per seed. Memoization only decides whether a
// build is recomputed, never what it returns.
type Cache struct {
	mu       sync.Mutex
	datasets map[int64]*Dataset
}

// NewCache returns an empty dataset cache.
func NewCache() *Cache {
	return &Cache{datasets: make(map[int64]*Dataset)}
}

// Get returns the dataset for a seed, building it on first use.
func (c *Cache) Get(seed int64) (*Dataset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.datasets[seed]; ok {
		return d, nil
	}
	d, err := Build(seed)
	if err != nil {
		return nil, err
	}
	c.datasets[seed] = d
	return d, nil
}
