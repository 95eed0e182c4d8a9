package payment

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"

	"mayamateul/cart"
	"mayamateul/coupon"
	"mayamateul/kv"
	"mayamateul/models"
	"mayamateul/notify"
	"mayamateul/utils"

	"github.com/julienschmidt/httprouter"
)

// Service owns the active payment sessions, one per order number.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*Session

	Store    kv.Store
	Cart     *cart.Store
	Eval     *coupon.Evaluator
	Verifier *Verifier
	Emitter  *notify.Emitter
	UPIID    string
	Cfg      Config
}

func NewService(store kv.Store, cartStore *cart.Store, eval *coupon.Evaluator,
	verifier *Verifier, emitter *notify.Emitter, upiID string, cfg Config) *Service {
	return &Service{
		sessions: make(map[string]*Session),
		Store:    store,
		Cart:     cartStore,
		Eval:     eval,
		Verifier: verifier,
		Emitter:  emitter,
		UPIID:    upiID,
		Cfg:      cfg,
	}
}

func (s *Service) session(orderNumber string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[orderNumber]
}

// StartSession opens the payment page flow: resolve the pending order,
// spin up the countdown and polling, and return the UPI link alongside the
// session snapshot. Restarting an order's session tears the old one down.
func (s *Service) StartSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var snapshot *models.OrderRecord
	if r.Body != nil && r.ContentLength != 0 {
		var rec models.OrderRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err == nil && rec.OrderID != "" {
			snapshot = &rec
		}
	}

	sess, err := NewSession(s.Store, s.Cart, s.Verifier, s.Emitter, snapshot, s.Cfg, nil)
	if err != nil {
		if errors.Is(err, ErrNoAmount) {
			utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{
				"error":    "Invalid payment amount. Please restart your order.",
				"redirect": "/order",
			})
			return
		}
		log.Println("StartSession error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Unable to start payment session")
		return
	}

	s.mu.Lock()
	if old, ok := s.sessions[sess.OrderNumber()]; ok {
		old.Teardown()
	}
	s.sessions[sess.OrderNumber()] = sess
	s.mu.Unlock()

	sess.Start()

	uri := DeepLink(s.UPIID, sess.Amount(), sess.OrderNumber())
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"orderNumber": sess.OrderNumber(),
		"amount":      sess.Amount(),
		"status":      sess.Status(),
		"remaining":   sess.Remaining(),
		"upiUri":      uri,
		"upiId":       s.UPIID,
		"qrUrl":       "/api/payments/" + sess.OrderNumber() + "/qr",
	})
}

// GetStatus reports the live session state for the payment page to render.
func (s *Service) GetStatus(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	sess := s.session(ps.ByName("ordernum"))
	if sess == nil {
		utils.RespondWithError(w, http.StatusNotFound, "No active payment session")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"orderNumber":   sess.OrderNumber(),
		"amount":        sess.Amount(),
		"status":        sess.Status(),
		"remaining":     sess.Remaining(),
		"message":       sess.Message(),
		"transactionId": sess.TransactionID(),
		"whatsappUrl":   sess.WhatsAppLink(),
	})
}

type confirmRequest struct {
	TransactionID string `json:"transactionId"`
}

// Confirm takes the manually entered transaction id and drives the session
// through verification.
func (s *Service) Confirm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := s.session(ps.ByName("ordernum"))
	if sess == nil {
		utils.RespondWithError(w, http.StatusNotFound, "No active payment session")
		return
	}

	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	link, err := sess.Confirm(req.TransactionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTransactionID):
			utils.RespondWithError(w, http.StatusBadRequest,
				"Please enter a valid transaction ID (6-50 letters and digits).")
		case errors.Is(err, ErrTerminal):
			utils.RespondWithJSON(w, http.StatusConflict, utils.M{
				"error":  "This payment session has already completed.",
				"status": sess.Status(),
			})
		case errors.Is(err, ErrAlreadyProcessing):
			utils.RespondWithError(w, http.StatusConflict, "Verification already in progress")
		default:
			utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{
				"error":  err.Error(),
				"status": sess.Status(),
			})
		}
		return
	}

	if s.Eval != nil {
		s.Eval.Remove()
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":      sess.Status(),
		"message":     sess.Message(),
		"whatsappUrl": link,
		"redirect":    "/order-summary",
	})
}

// QR streams the UPI QR code PNG for the session amount.
func (s *Service) QR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := s.session(ps.ByName("ordernum"))
	if sess == nil {
		http.Error(w, "No active payment session", http.StatusNotFound)
		return
	}

	size := 256
	if v := r.URL.Query().Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 64 && n <= 1024 {
			size = n
		}
	}

	uri := DeepLink(s.UPIID, sess.Amount(), sess.OrderNumber())
	png, err := QRCode(uri, size)
	if err != nil {
		log.Println("QR encode error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "QR generation failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		log.Println("QR write error:", err)
	}
}

// Teardown ends a session when the user navigates away from the payment
// page. Terminal sessions are already stopped; this just drops the handle.
func (s *Service) Teardown(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	orderNumber := ps.ByName("ordernum")
	s.mu.Lock()
	sess, ok := s.sessions[orderNumber]
	if ok {
		delete(s.sessions, orderNumber)
	}
	s.mu.Unlock()
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "No active payment session")
		return
	}
	sess.Teardown()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Payment session closed"})
}

// Shutdown tears down every live session; called on server stop.
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.Teardown()
		delete(s.sessions, id)
	}
}
