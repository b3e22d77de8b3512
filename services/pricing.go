package services

import (
	"context"
	"math"

	"github.com/yeremiapane/food-delivery/models"
)

type LineRequest struct {
	MenuItemID uint
	Quantity   int
}

type PricedLine struct {
	MenuItemID     uint
	Quantity       int
	PriceCentsEach int64
}

type PricedOrder struct {
	Lines      []PricedLine
	TotalCents int64
}

// MenuItemLookup returns the menu item with the given id, or nil when it
// does not exist.
type MenuItemLookup func(ctx context.Context, id uint) (*models.MenuItem, error)

// PriceOrder validates every line against current menu state and snapshots
// its unit price. It only reads through lookup and stops at the first bad
// line, so callers must not write anything until it returns successfully.
func PriceOrder(ctx context.Context, restaurantID uint, lines []LineRequest, lookup MenuItemLookup) (*PricedOrder, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	priced := &PricedOrder{Lines: make([]PricedLine, 0, len(lines))}
	for i, line := range lines {
		if line.Quantity < 1 {
			return nil, &LineError{Line: i, MenuItemID: line.MenuItemID, Err: ErrInvalidQuantity}
		}

		item, err := lookup(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if item == nil || item.RestaurantID != restaurantID {
			return nil, &LineError{Line: i, MenuItemID: line.MenuItemID, Err: ErrInvalidReference}
		}
		if !item.IsAvailable {
			return nil, &LineError{Line: i, MenuItemID: line.MenuItemID, Err: ErrUnavailable}
		}

		total, ok := lineTotal(item.PriceCents, line.Quantity)
		if !ok || total > math.MaxInt64-priced.TotalCents {
			return nil, &LineError{Line: i, MenuItemID: line.MenuItemID, Err: ErrTotalOutOfRange}
		}

		priced.Lines = append(priced.Lines, PricedLine{
			MenuItemID:     item.ID,
			Quantity:       line.Quantity,
			PriceCentsEach: item.PriceCents,
		})
		priced.TotalCents += total
	}
	return priced, nil
}

// lineTotal multiplies without wrapping; ok is false when the product does
// not fit in int64. Prices are never negative.
func lineTotal(priceCents int64, quantity int) (int64, bool) {
	q := int64(quantity)
	if priceCents > 0 && q > math.MaxInt64/priceCents {
		return 0, false
	}
	return priceCents * q, true
}

// OrderItems converts the priced lines into rows for orderID, keeping input order.
func (p *PricedOrder) OrderItems(orderID uint) []models.OrderItem {
	items := make([]models.OrderItem, len(p.Lines))
	for i, line := range p.Lines {
		items[i] = models.OrderItem{
			OrderID:        orderID,
			MenuItemID:     line.MenuItemID,
			Quantity:       line.Quantity,
			PriceCentsEach: line.PriceCentsEach,
		}
	}
	return items
}
