// Package cart is the client-local shortlist: a durable, single-device staging
// list of catalog services kept ahead of any booking. It carries no booking
// semantics and is deliberately not exposed on the HTTP API — the file on disk
// plays the role a browser's local storage plays for the web client.
package cart

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"decoriva-server/models"
)

// Item is one shortlisted service, keyed by the catalog service id.
type Item struct {
	ServiceID uint    `json:"serviceId"`
	Name      string  `json:"service_name"`
	Category  string  `json:"category"`
	Cost      float64 `json:"cost"`
	ImageURL  string  `json:"image"`
}

// ItemFromService copies the shortlist-relevant fields of a catalog service.
func ItemFromService(s models.Service) Item {
	return Item{
		ServiceID: s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Cost:      s.Cost,
		ImageURL:  s.ImageURL,
	}
}

// Cart is a durable shortlist. All operations persist immediately so the list
// survives a restart of the hosting process.
type Cart struct {
	mu    sync.Mutex
	path  string
	items []Item
}

// Load opens the shortlist stored at path. A missing or unreadable file yields
// an empty cart rather than an error, mirroring how a fresh client starts.
func Load(path string) *Cart {
	c := &Cart{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	if err := json.Unmarshal(data, &c.items); err != nil {
		c.items = nil
	}
	return c
}

// Add appends a service to the shortlist. Adding an already-shortlisted
// service is refused (the caller surfaces a notice, not an error) so the cart
// can never hold duplicates.
func (c *Cart) Add(item Item) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.items {
		if existing.ServiceID == item.ServiceID {
			return false, nil
		}
	}
	c.items = append(c.items, item)
	return true, c.save()
}

// Remove drops the entry for a service id. Removing an absent id is a no-op.
func (c *Cart) Remove(serviceID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, item := range c.items {
		if item.ServiceID != serviceID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(c.items) {
		return nil
	}
	c.items = kept
	return c.save()
}

// Clear empties the shortlist.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	return c.save()
}

// Items returns a copy of the current shortlist.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of shortlisted services.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total recomputes the shortlist total from the current entries on every call;
// it is never cached.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += item.Cost
	}
	return total
}

func (c *Cart) save() error {
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return err
		}
	}
	return os.WriteFile(c.path, data, 0o644)
}
