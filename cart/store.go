package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"mayamateul/kv"
	"mayamateul/models"
	"mayamateul/utils"
)

// StorageKey is where the serialized line list lives in durable storage.
const StorageKey = "maya_mateul_cart"

// Subscriber receives an immutable snapshot after every cart mutation.
type Subscriber func(lines []models.CartLine)

// OpenSubscriber receives the cart-panel visibility flag when it flips.
type OpenSubscriber func(open bool)

type subscription struct {
	token string
	fn    Subscriber
}

type openSubscription struct {
	token string
	fn    OpenSubscriber
}

// Store owns the cart line collection for the session. All mutation goes
// through its methods; subscribers are notified synchronously, in
// subscription order, after each mutating call persists.
type Store struct {
	mu       sync.Mutex
	lines    []models.CartLine
	subs     []subscription
	openSubs []openSubscription
	open     bool
	store    kv.Store
}

// NewStore loads any persisted cart from the key-value port. A read failure
// is logged and the store starts empty.
func NewStore(store kv.Store) *Store {
	s := &Store{store: store}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := s.store.Get(context.Background(), StorageKey)
	if err != nil {
		if err != kv.ErrNotFound {
			log.Println("cart: error loading cart from storage:", err)
		}
		return
	}
	if err := json.Unmarshal(data, &s.lines); err != nil {
		log.Println("cart: error decoding stored cart:", err)
		s.lines = nil
	}
}

// persistLocked writes the current lines; failures are logged and the
// in-memory state stays authoritative.
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.lines)
	if err != nil {
		log.Println("cart: error encoding cart:", err)
		return
	}
	if err := s.store.Set(context.Background(), StorageKey, data); err != nil {
		log.Println("cart: error saving cart to storage:", err)
	}
}

func (s *Store) snapshotLocked() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// commitLocked persists, releases the lock and fans the snapshot out.
// Callbacks run outside the lock so a subscriber may call back into the
// store without deadlocking.
func (s *Store) commitLocked() {
	s.persistLocked()
	snap := s.snapshotLocked()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
}

// Add merges the candidate into an existing line with the same
// (id, size, addon) selection by incrementing its quantity, or appends a new
// line with quantity 1.
func (s *Store) Add(candidate models.CartLine) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].SameSelection(candidate) {
			s.lines[i].Quantity++
			s.commitLocked()
			return
		}
	}
	candidate.Quantity = 1
	s.lines = append(s.lines, candidate)
	s.commitLocked()
}

// Remove deletes every line matching the selection.
func (s *Store) Remove(key models.CartLine) {
	s.mu.Lock()
	kept := s.lines[:0]
	for _, l := range s.lines {
		if !l.SameSelection(key) {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	s.commitLocked()
}

// SetQuantity clamps qty at zero; zero delegates to Remove.
func (s *Store) SetQuantity(key models.CartLine, qty int) {
	if qty <= 0 {
		s.Remove(key)
		return
	}
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].SameSelection(key) {
			s.lines[i].Quantity = qty
		}
	}
	s.commitLocked()
}

// Clear empties the collection.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.commitLocked()
}

// Snapshot returns a defensive copy of the current lines.
func (s *Store) Snapshot() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Count is the sum of line quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, l := range s.lines {
		total += l.LineTotal()
	}
	return total
}

// Subscribe registers a callback for line changes and returns its token.
func (s *Store) Subscribe(fn Subscriber) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := utils.GetUUID()
	s.subs = append(s.subs, subscription{token: token, fn: fn})
	return token
}

// Unsubscribe drops the callback registered under token.
func (s *Store) Unsubscribe(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.token == token {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// --- cart panel visibility: separate flag, separate channel ---

// SubscribeOpen registers a callback for panel visibility changes.
func (s *Store) SubscribeOpen(fn OpenSubscriber) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := utils.GetUUID()
	s.openSubs = append(s.openSubs, openSubscription{token: token, fn: fn})
	return token
}

// UnsubscribeOpen drops the visibility callback registered under token.
func (s *Store) UnsubscribeOpen(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.openSubs {
		if sub.token == token {
			s.openSubs = append(s.openSubs[:i], s.openSubs[i+1:]...)
			return
		}
	}
}

func (s *Store) setOpen(open bool) {
	s.mu.Lock()
	s.open = open
	subs := make([]openSubscription, len(s.openSubs))
	copy(subs, s.openSubs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(open)
	}
}

func (s *Store) Open()  { s.setOpen(true) }
func (s *Store) Close() { s.setOpen(false) }

func (s *Store) Toggle() {
	s.mu.Lock()
	next := !s.open
	s.mu.Unlock()
	s.setOpen(next)
}

// IsOpen reports the current panel visibility.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}
