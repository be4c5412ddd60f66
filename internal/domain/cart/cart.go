package cart

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
)

// Item is a selected service. Items are unique by service name.
type Item struct {
	catalog.Service
	Quantity int `json:"quantity"`
}

type Cart struct {
	ShopID int    `json:"shopId"`
	Items  []Item `json:"items"`
}

func New(shopID int) *Cart {
	return &Cart{ShopID: shopID, Items: []Item{}}
}

func (c *Cart) index(name string) int {
	for i := range c.Items {
		if c.Items[i].Name == name {
			return i
		}
	}
	return -1
}

func (c *Cart) Add(svc catalog.Service) {
	if i := c.index(svc.Name); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, Item{Service: svc, Quantity: 1})
}

// SetQuantity removes the item when q <= 0. Returns false for an unknown name.
func (c *Cart) SetQuantity(name string, q int) bool {
	i := c.index(name)
	if i < 0 {
		return false
	}
	if q <= 0 {
		c.removeAt(i)
		return true
	}
	c.Items[i].Quantity = q
	return true
}

func (c *Cart) Increment(name string) bool {
	i := c.index(name)
	if i < 0 {
		return false
	}
	return c.SetQuantity(name, c.Items[i].Quantity+1)
}

func (c *Cart) Decrement(name string) bool {
	i := c.index(name)
	if i < 0 {
		return false
	}
	return c.SetQuantity(name, c.Items[i].Quantity-1)
}

func (c *Cart) Remove(name string) bool {
	i := c.index(name)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

func (c *Cart) removeAt(i int) {
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

func (c *Cart) Clear() {
	c.Items = []Item{}
}

func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Total() int64 {
	return Total(c.Items)
}

func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Describe() string {
	return Describe(c.Items)
}

// Snapshot returns a copy safe to hand out while c keeps changing.
func (c *Cart) Snapshot() Cart {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return Cart{ShopID: c.ShopID, Items: items}
}

func Total(items []Item) int64 {
	var sum int64
	for _, it := range items {
		sum += it.PriceValue * int64(it.Quantity)
	}
	return sum
}

// Describe flattens items to "A x2, B".
func Describe(items []Item) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if it.Quantity > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
			continue
		}
		parts = append(parts, it.Name)
	}
	return strings.Join(parts, ", ")
}
