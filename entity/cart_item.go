package entity

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	FoodID uint `json:"foodId"`
	Food   Food `json:"-"`

	Quantity int `json:"quantity"`
	// UnitPrice is snapshotted when the line is added.
	UnitPrice int64 `json:"unitPrice"`
	LineTotal int64 `json:"lineTotal"`

	Customizations []string `gorm:"serializer:json" json:"customizations"`
	// CustomKey is the normalized merge key: same food + same
	// customizations (order-insensitive) land on the same line.
	CustomKey string `gorm:"index" json:"-"`
}

// CustomizationKey normalizes a customization set into the stored merge
// key. Each part is length-prefixed so a separator character inside a
// customization cannot make two different sets collide.
func CustomizationKey(customizations []string) string {
	if len(customizations) == 0 {
		return ""
	}
	key := make([]string, len(customizations))
	copy(key, customizations)
	sort.Strings(key)

	var b strings.Builder
	for _, c := range key {
		fmt.Fprintf(&b, "%d|%s", len(c), c)
	}
	return b.String()
}
