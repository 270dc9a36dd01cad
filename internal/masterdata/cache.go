package masterdata

import (
	"context"
	"sync/atomic"

	"github.com/smlogitech/backoffice/pkg/db/models"
)

// Cache publishes immutable snapshots of the client and driver master
// tables. Writers rebuild a whole snapshot and swap the pointer; readers
// never lock. Refresh happens after the owning transaction commits, so
// reads are eventually consistent with the store — acceptable because the
// cache only feeds autocomplete and order enrichment.
type Cache struct {
	repo    Repository
	clients atomic.Pointer[[]models.Client]
	drivers atomic.Pointer[[]models.Driver]
}

// NewCache builds an empty cache over the repository. Call Warm before
// serving.
func NewCache(repo Repository) *Cache {
	c := &Cache{repo: repo}
	empty := []models.Client{}
	c.clients.Store(&empty)
	emptyDrivers := []models.Driver{}
	c.drivers.Store(&emptyDrivers)
	return c
}

// Warm loads both snapshots by full table scan.
func (c *Cache) Warm(ctx context.Context) error {
	if err := c.RefreshClients(ctx); err != nil {
		return err
	}
	return c.RefreshDrivers(ctx)
}

// RefreshClients rebuilds and swaps the client snapshot.
func (c *Cache) RefreshClients(ctx context.Context) error {
	clients, err := c.repo.ListClients(ctx)
	if err != nil {
		return err
	}
	c.clients.Store(&clients)
	return nil
}

// RefreshDrivers rebuilds and swaps the driver snapshot.
func (c *Cache) RefreshDrivers(ctx context.Context) error {
	drivers, err := c.repo.ListDrivers(ctx)
	if err != nil {
		return err
	}
	c.drivers.Store(&drivers)
	return nil
}

// Clients returns the current client snapshot. Callers must not mutate it.
func (c *Cache) Clients() []models.Client {
	return *c.clients.Load()
}

// Drivers returns the current driver snapshot. Callers must not mutate it.
func (c *Cache) Drivers() []models.Driver {
	return *c.drivers.Load()
}

// FindClient looks a client up by exact company name.
func (c *Cache) FindClient(name string) (models.Client, bool) {
	for _, client := range c.Clients() {
		if client.Name == name {
			return client, true
		}
	}
	return models.Client{}, false
}

// FindDriver looks a driver up by the {name, vehicle number} pair.
func (c *Cache) FindDriver(name, vehicleNo string) (models.Driver, bool) {
	for _, driver := range c.Drivers() {
		if driver.Name == name && driver.VehicleNo == vehicleNo {
			return driver, true
		}
	}
	return models.Driver{}, false
}

// SearchClients returns up to limit clients whose name matches the query
// by prefix or by initial-consonant sequence.
func (c *Cache) SearchClients(query string, limit int) []models.Client {
	if limit <= 0 {
		limit = 10
	}
	var matched []models.Client
	for _, client := range c.Clients() {
		if MatchesQuery(client.Name, query) {
			matched = append(matched, client)
			if len(matched) >= limit {
				break
			}
		}
	}
	return matched
}

// SearchDrivers returns up to limit drivers matching the query against
// either the driver name or the vehicle number.
func (c *Cache) SearchDrivers(query string, limit int) []models.Driver {
	if limit <= 0 {
		limit = 10
	}
	var matched []models.Driver
	for _, driver := range c.Drivers() {
		if MatchesQuery(driver.Name, query) || MatchesQuery(driver.VehicleNo, query) {
			matched = append(matched, driver)
			if len(matched) >= limit {
				break
			}
		}
	}
	return matched
}
