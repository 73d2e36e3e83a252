// Package modifier implements the in-progress configuration of a product's
// option groups before it becomes a cart line: per-group selections,
// "none" item exclusivity and min/max cardinality validation.
package modifier

import (
	"errors"
	"fmt"
	"sort"

	"storefront-gateway/models"
)

// noneItemNames marks the option items that stand for "no selection" inside
// a group. Choosing one suppresses every other item in that group, and
// choosing any other item clears it. The set matches the names vendors use
// in the catalog.
var noneItemNames = map[string]bool{
	"بدون سس":           true,
	"بدون نوشیدنی":      true,
	"بدون نوشابه":       true,
	"سس نمی‌خواهم":      true,
	"نمی‌خواهم نوشیدنی": true,
}

// IsNoneItem reports whether the item name is a "none" marker.
func IsNoneItem(name string) bool {
	return noneItemNames[name]
}

var (
	ErrUnknownGroup = errors.New("modifier: unknown option group")
	ErrUnknownItem  = errors.New("modifier: unknown option item")
)

// ConstraintError names the first violated cardinality rule; its message is
// what the UI surfaces next to the confirm button.
type ConstraintError struct {
	Group   string
	Message string
}

func (e *ConstraintError) Error() string { return e.Message }

// Selection is the transient configuration state for one product-add
// interaction. It is discarded on confirm or cancel and never shared.
type Selection struct {
	product models.Product
	groups  map[uint]models.OptionGroup
	// picks: group id -> item id -> quantity (always >= 1 once present)
	picks map[uint]map[uint]int
}

func NewSelection(product models.Product) *Selection {
	groups := make(map[uint]models.OptionGroup, len(product.OptionGroups))
	for _, g := range product.OptionGroups {
		groups[g.ID] = g
	}
	return &Selection{
		product: product,
		groups:  groups,
		picks:   make(map[uint]map[uint]int),
	}
}

// Set records quantity for an item in a group. Quantity 0 removes the item.
// Selecting a "none" item clears every other selection in the group;
// selecting any other item clears a previously chosen "none".
func (s *Selection) Set(groupID, itemID uint, quantity int) error {
	group, ok := s.groups[groupID]
	if !ok {
		return ErrUnknownGroup
	}
	item, ok := findItem(group, itemID)
	if !ok {
		return ErrUnknownItem
	}

	if quantity <= 0 {
		if picks := s.picks[groupID]; picks != nil {
			delete(picks, itemID)
			if len(picks) == 0 {
				delete(s.picks, groupID)
			}
		}
		return nil
	}

	picks := s.picks[groupID]
	if picks == nil {
		picks = make(map[uint]int)
		s.picks[groupID] = picks
	}

	if IsNoneItem(item.Name) {
		// "none" stands alone in its group
		for id := range picks {
			delete(picks, id)
		}
		picks[itemID] = 1
		return nil
	}

	// a real selection displaces a previously chosen "none"
	for id := range picks {
		if other, ok := findItem(group, id); ok && IsNoneItem(other.Name) {
			delete(picks, id)
		}
	}
	picks[itemID] = quantity
	return nil
}

// Toggle flips an item between unselected and quantity 1.
func (s *Selection) Toggle(groupID, itemID uint) error {
	if s.Quantity(groupID, itemID) > 0 {
		return s.Set(groupID, itemID, 0)
	}
	return s.Set(groupID, itemID, 1)
}

// Quantity returns the selected quantity for an item, 0 when unselected.
func (s *Selection) Quantity(groupID, itemID uint) int {
	return s.picks[groupID][itemID]
}

// SelectedCount is the total selected quantity inside a group.
func (s *Selection) SelectedCount(groupID uint) int {
	count := 0
	for _, q := range s.picks[groupID] {
		count += q
	}
	return count
}

// Validate checks every group against its cardinality constraints and
// returns the first violation in catalog order.
func (s *Selection) Validate() error {
	for _, group := range s.sortedGroups() {
		count := s.SelectedCount(group.ID)
		if min := group.EffectiveMinSelect(); count < min {
			return &ConstraintError{
				Group:   group.Name,
				Message: fmt.Sprintf("Selecting %s is required (at least %d)", group.Name, min),
			}
		}
		if group.MaxSelect > 0 && count > group.MaxSelect {
			return &ConstraintError{
				Group:   group.Name,
				Message: fmt.Sprintf("At most %d selections are allowed for %s", group.MaxSelect, group.Name),
			}
		}
	}
	return nil
}

// Confirm validates the selection and emits the cart line: the flattened,
// deterministically ordered modifier list and the unit price fixed at
// base price + Σ(delta × quantity).
func (s *Selection) Confirm() (models.CartItem, error) {
	if err := s.Validate(); err != nil {
		return models.CartItem{}, err
	}

	var modifiers []models.SelectedModifier
	price := s.product.BasePrice

	for _, group := range s.sortedGroups() {
		picks := s.picks[group.ID]
		if len(picks) == 0 {
			continue
		}
		for _, item := range sortedItems(group) {
			qty, ok := picks[item.ID]
			if !ok {
				continue
			}
			modifiers = append(modifiers, models.SelectedModifier{
				GroupID:    group.ID,
				GroupName:  group.Name,
				ItemID:     item.ID,
				ItemName:   item.Name,
				PriceDelta: item.PriceDelta,
				Quantity:   qty,
			})
			price += item.PriceDelta * int64(qty)
		}
	}

	return models.CartItem{
		ProductID: s.product.ID,
		Vendor:    s.product.Vendor,
		Title:     s.product.Name,
		UnitPrice: price,
		Quantity:  1,
		Modifiers: modifiers,
	}, nil
}

// Cancel discards the in-progress selection with no side effects.
func (s *Selection) Cancel() {
	s.picks = make(map[uint]map[uint]int)
}

func (s *Selection) sortedGroups() []models.OptionGroup {
	groups := make([]models.OptionGroup, 0, len(s.groups))
	for _, g := range s.groups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].SortOrder != groups[j].SortOrder {
			return groups[i].SortOrder < groups[j].SortOrder
		}
		return groups[i].ID < groups[j].ID
	})
	return groups
}

func findItem(group models.OptionGroup, itemID uint) (models.OptionItem, bool) {
	for _, item := range group.Items {
		if item.ID == itemID {
			return item, true
		}
	}
	return models.OptionItem{}, false
}

func sortedItems(group models.OptionGroup) []models.OptionItem {
	items := make([]models.OptionItem, len(group.Items))
	copy(items, group.Items)
	sort.Slice(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return items[i].ID < items[j].ID
	})
	return items
}
