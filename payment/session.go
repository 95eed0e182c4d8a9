package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"mayamateul/cart"
	"mayamateul/kv"
	"mayamateul/models"
	"mayamateul/notify"
	"mayamateul/order"
	"mayamateul/utils"
)

// Status is the payment session state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusConfirmed  Status = "confirmed" // terminal
	StatusFailed     Status = "failed"    // terminal
)

// PaymentKeyPrefix prefixes the per-order payment record key.
const PaymentKeyPrefix = "payment_"

var (
	ErrNoAmount             = errors.New("payment: unable to determine payment amount")
	ErrInvalidTransactionID = errors.New("payment: transaction id must be 6-50 letters and digits")
	ErrAlreadyProcessing    = errors.New("payment: verification already in progress")
	ErrTerminal             = errors.New("payment: session already completed")
)

var txnIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{6,50}$`)

// Config carries the timing knobs; zero values fall back to production
// defaults (10-minute window, 10s polling, 30 attempts).
type Config struct {
	Window               time.Duration
	PollInterval         time.Duration
	MaxPollAttempts      int
	ConfirmRedirectDelay time.Duration
	TimeoutRedirectDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.Window <= 0 {
		c.Window = 10 * time.Minute
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 10 * time.Second
	}
	if c.MaxPollAttempts <= 0 {
		c.MaxPollAttempts = 30
	}
	if c.ConfirmRedirectDelay <= 0 {
		c.ConfirmRedirectDelay = 2 * time.Second
	}
	if c.TimeoutRedirectDelay <= 0 {
		c.TimeoutRedirectDelay = 3 * time.Second
	}
	return c
}

// Session drives one in-flight payment: a countdown, optional background
// verification polling, and manual confirmation. Every transition passes a
// status guard, so a late timer or poll against a terminal session is a
// no-op. Only one session is active per order; navigating away tears the
// instance down.
type Session struct {
	mu            sync.Mutex
	status        Status
	order         models.OrderRecord
	orderNumber   string
	amount        float64
	transactionID string
	message       string
	waLink        string
	attempts      int
	remaining     time.Duration
	redirects     []*time.Timer

	cfg      Config
	store    kv.Store
	cart     *cart.Store
	verifier *Verifier
	emitter  *notify.Emitter
	navigate func(dest string)

	done      chan struct{}
	closeOnce sync.Once
}

// NewSession resolves the payment amount and order identifier from, in
// priority order: the passed order snapshot, the persisted current order,
// and finally the live cart total. ErrNoAmount when all three come up
// empty; the caller must send the user back to the order form.
func NewSession(store kv.Store, cartStore *cart.Store, verifier *Verifier, emitter *notify.Emitter,
	snapshot *models.OrderRecord, cfg Config, navigate func(dest string)) (*Session, error) {

	cfg = cfg.withDefaults()
	s := &Session{
		status:   StatusPending,
		cfg:      cfg,
		store:    store,
		cart:     cartStore,
		verifier: verifier,
		emitter:  emitter,
		navigate: navigate,
		done:     make(chan struct{}),
	}

	switch {
	case snapshot != nil:
		s.order = *snapshot
	default:
		if data, err := store.Get(context.Background(), order.CurrentOrderKey); err == nil {
			if err := json.Unmarshal(data, &s.order); err != nil {
				log.Println("payment: error decoding stored order:", err)
			}
		}
	}

	if s.order.OrderID != "" {
		s.orderNumber = s.order.OrderID
		s.amount = s.order.Total
	} else if total := cartStore.TotalPrice(); total > 0 {
		// last-resort fallback: price the live cart under a fresh number
		s.amount = total
		s.orderNumber = fmt.Sprintf("ORD%d%s", time.Now().UnixMilli(), utils.GenerateRandomDigitString(4))
		s.order = models.OrderRecord{
			OrderID:   s.orderNumber,
			CartItems: cartStore.Snapshot(),
			Subtotal:  total,
			Total:     total,
			Timestamp: time.Now(),
			Status:    "pending",
		}
	}

	if s.amount <= 0 {
		return nil, ErrNoAmount
	}

	s.remaining = cfg.Window
	return s, nil
}

// Start launches the countdown and, when a verifier is configured, the
// background verification polling.
func (s *Session) Start() {
	go s.countdown()
	if s.verifier != nil {
		go s.poll()
	}
}

func (s *Session) countdown() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.remaining > 0 {
				s.remaining -= time.Second
			}
			expired := s.remaining <= 0
			s.mu.Unlock()
			if expired {
				// expire is a no-op while a verification is in flight;
				// keep ticking so the timeout lands once the rejection
				// returns the session to pending. A terminal transition
				// closes done and ends the loop.
				s.expire()
			}
		}
	}
}

// expire forces the timeout transition; it only fires from pending.
func (s *Session) expire() {
	s.mu.Lock()
	if s.status != StatusPending {
		s.mu.Unlock()
		return
	}
	s.status = StatusFailed
	s.message = "Payment window expired. Please restart your order."
	s.mu.Unlock()

	s.stopTimers()
	log.Printf("payment: order %s timed out", s.orderNumber)
	s.scheduleRedirect("/order", s.cfg.TimeoutRedirectDelay)
}

func (s *Session) poll() {
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			switch s.Status() {
			case StatusConfirmed, StatusFailed:
				return
			case StatusProcessing:
				continue // manual confirmation in flight
			}

			s.mu.Lock()
			s.attempts++
			attempts := s.attempts
			s.mu.Unlock()
			if attempts > s.cfg.MaxPollAttempts {
				return
			}

			resp, err := s.verifier.AutoVerify(context.Background(), AutoVerifyRequest{
				OrderNumber:   s.orderNumber,
				Amount:        s.amount,
				CustomerPhone: s.order.Customer.Phone,
			})
			if err != nil {
				log.Println("payment: auto-verify error:", err)
				continue
			}
			if resp.IsPaid {
				txn := ""
				if resp.Data != nil {
					txn = resp.Data.TransactionID
				}
				s.confirm(txn)
				return
			}
		}
	}
}

// ValidateTransactionID checks the manual-entry format: 6-50 characters,
// letters and digits only.
func ValidateTransactionID(txn string) error {
	if !txnIDPattern.MatchString(strings.TrimSpace(txn)) {
		return ErrInvalidTransactionID
	}
	return nil
}

// Confirm is the manual path: validate the transaction id, move to
// processing, verify externally, and confirm or fall back to pending. It
// returns the WhatsApp deep link on success.
func (s *Session) Confirm(transactionID string) (string, error) {
	transactionID = strings.TrimSpace(transactionID)
	if err := ValidateTransactionID(transactionID); err != nil {
		return "", err
	}

	s.mu.Lock()
	switch s.status {
	case StatusConfirmed, StatusFailed:
		s.mu.Unlock()
		return "", ErrTerminal
	case StatusProcessing:
		s.mu.Unlock()
		return "", ErrAlreadyProcessing
	}
	s.status = StatusProcessing
	s.mu.Unlock()

	if s.verifier != nil {
		resp, err := s.verifier.ProcessUpi(context.Background(), UpiPaymentRequest{
			OrderNumber:   s.orderNumber,
			TransactionID: transactionID,
			Amount:        s.amount,
			CustomerPhone: s.order.Customer.Phone,
			OrderDetails:  s.order,
		})
		if err != nil || !resp.Success {
			msg := "Payment verification failed. Please try again."
			if err == nil && resp.Message != "" {
				msg = resp.Message
			}
			s.mu.Lock()
			if s.status == StatusProcessing {
				s.status = StatusPending
				s.message = msg
			}
			s.mu.Unlock()
			if err != nil {
				return "", fmt.Errorf("payment: verification call failed: %w", err)
			}
			return "", errors.New(msg)
		}
	}

	link := s.confirm(transactionID)
	return link, nil
}

// confirm performs the terminal transition exactly once, from either the
// manual or the polling path. Timers and polling stop before any side
// effect so nothing stale fires after confirmation.
func (s *Session) confirm(transactionID string) string {
	s.mu.Lock()
	if s.status == StatusConfirmed || s.status == StatusFailed {
		link := s.waLink
		s.mu.Unlock()
		return link
	}
	s.status = StatusConfirmed
	s.transactionID = transactionID
	s.message = "Order confirmed! Details sent to restaurant via WhatsApp."
	rec := s.order
	s.mu.Unlock()

	s.stopTimers()

	now := time.Now()
	ctx := context.Background()

	record := models.PaymentRecord{
		ID:            utils.GetUUID(),
		OrderID:       s.orderNumber,
		TransactionID: transactionID,
		Amount:        s.amount,
		Timestamp:     now,
		Status:        string(StatusConfirmed),
		Order:         rec,
	}
	if data, err := json.Marshal(record); err == nil {
		if err := s.store.Set(ctx, PaymentKeyPrefix+s.orderNumber, data); err != nil {
			log.Println("payment: error saving payment record:", err)
		}
	}

	summary := models.OrderSummary{
		OrderID:       s.orderNumber,
		TransactionID: transactionID,
		Amount:        s.amount,
		Timestamp:     now,
		Status:        string(StatusConfirmed),
		Order:         rec,
	}
	if data, err := json.Marshal(summary); err == nil {
		if err := s.store.Set(ctx, order.SummaryKey, data); err != nil {
			log.Println("payment: error saving order summary:", err)
		}
	}

	s.cart.Clear()
	if err := s.store.Del(ctx, order.CurrentOrderKey); err != nil {
		log.Println("payment: error clearing current order:", err)
	}

	link := ""
	if s.emitter != nil {
		link = s.emitter.Emit(rec, transactionID)
	}
	s.mu.Lock()
	s.waLink = link
	s.mu.Unlock()

	s.scheduleRedirect("/order-summary", s.cfg.ConfirmRedirectDelay)
	return link
}

func (s *Session) stopTimers() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Session) scheduleRedirect(dest string, delay time.Duration) {
	if s.navigate == nil {
		return
	}
	t := time.AfterFunc(delay, func() { s.navigate(dest) })
	s.mu.Lock()
	s.redirects = append(s.redirects, t)
	s.mu.Unlock()
}

// Teardown releases the countdown, polling and any pending redirects. Safe
// to call at any time, from any state.
func (s *Session) Teardown() {
	s.stopTimers()
	s.mu.Lock()
	timers := s.redirects
	s.redirects = nil
	s.mu.Unlock()
	for _, t := range timers {
		t.Stop()
	}
}

// --- accessors ---

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) OrderNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderNumber
}

func (s *Session) Amount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.amount
}

func (s *Session) TransactionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transactionID
}

func (s *Session) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

func (s *Session) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

func (s *Session) Order() models.OrderRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}

func (s *Session) WhatsAppLink() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waLink
}

// Remaining formats the countdown as MM:SS.
func (s *Session) Remaining() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	rem := s.remaining
	if rem < 0 {
		rem = 0
	}
	min := int(rem.Minutes())
	sec := int(rem.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", min, sec)
}
