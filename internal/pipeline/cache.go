package pipeline

import "sync"

// Cache guarantees a single load per distinct source file for the lifetime
// of the process. Filter changes go through Dataset.FilterView and never
// re-trigger a load; Invalidate forces a reload on next use.
type Cache struct {
	mu       sync.Mutex
	datasets map[string]*Dataset
}

func NewCache() *Cache {
	return &Cache{datasets: make(map[string]*Dataset)}
}

// Load returns the derived dataset for path, running the pipeline only the
// first time a given path is requested. Failed loads are not cached.
func (c *Cache) Load(path string) (*Dataset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d, ok := c.datasets[path]; ok {
		return d, nil
	}

	d, err := Run(path)
	if err != nil {
		return nil, err
	}
	c.datasets[path] = d
	return d, nil
}

// Invalidate drops the cached dataset for path, if any.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.datasets, path)
}
