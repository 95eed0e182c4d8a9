package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"mayamateul/cart"
	"mayamateul/coupon"
	"mayamateul/kv"
	"mayamateul/models"
	"mayamateul/pricing"
	"mayamateul/utils"
)

// Storage keys for the current order and per-order redundant copies.
const (
	CurrentOrderKey = "currentOrder"
	orderKeyPrefix  = "order_"
)

var (
	ErrEmptyCart           = errors.New("order: cart is empty")
	ErrIncompleteSelection = errors.New("order: fulfillment option or required customer fields missing")
)

// OrderKey returns the order-specific storage key.
func OrderKey(orderID string) string {
	return orderKeyPrefix + orderID
}

// Assembler snapshots cart, customer fields, coupon and totals into an
// immutable OrderRecord and persists it before the payment hand-off.
type Assembler struct {
	Store kv.Store
	Cart  *cart.Store
}

func NewAssembler(store kv.Store, cartStore *cart.Store) *Assembler {
	return &Assembler{Store: store, Cart: cartStore}
}

// Assemble builds and persists the order record. The cart snapshot is a
// copy: later cart mutations cannot alter a submitted order.
func (a *Assembler) Assemble(option string, customer models.CustomerDetails, c *coupon.Coupon, paymentMethod string) (models.OrderRecord, error) {
	lines := a.Cart.Snapshot()
	if len(lines) == 0 {
		return models.OrderRecord{}, ErrEmptyCart
	}
	if option == "" || customer.Name == "" || customer.Phone == "" {
		return models.OrderRecord{}, ErrIncompleteSelection
	}

	subtotal := a.Cart.TotalPrice()
	totals := pricing.ComputeTotals(subtotal, c)

	rec := models.OrderRecord{
		OrderID:       a.newOrderID(),
		Option:        option,
		Customer:      customer,
		CartItems:     lines,
		Subtotal:      totals.Subtotal,
		GST:           totals.Tax,
		Discount:      totals.Discount,
		Total:         totals.Total,
		PaymentMethod: paymentMethod,
		Timestamp:     time.Now(),
		Status:        "pending",
	}
	if c != nil {
		rec.CouponCode = c.Code
	}

	if err := a.persist(rec); err != nil {
		// storage failure is non-fatal: the in-memory record still flows to payment
		log.Println("order: error persisting order:", err)
	}
	return rec, nil
}

func (a *Assembler) persist(rec models.OrderRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := a.Store.Set(ctx, CurrentOrderKey, data); err != nil {
		return err
	}
	return a.Store.Set(ctx, OrderKey(rec.OrderID), data)
}

// newOrderID generates MAYA-<8 trailing epoch-ms digits>-<3 random digits>,
// regenerating on the off chance the id is already persisted.
func (a *Assembler) newOrderID() string {
	for i := 0; i < 5; i++ {
		id := GenerateOrderID()
		if _, err := a.Store.Get(context.Background(), OrderKey(id)); err == kv.ErrNotFound {
			return id
		}
	}
	return GenerateOrderID()
}

// GenerateOrderID builds an order identifier from the trailing epoch
// milliseconds and a random 3-digit disambiguator.
func GenerateOrderID() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return fmt.Sprintf("MAYA-%s-%s", ms, utils.GenerateRandomDigitString(3))
}
