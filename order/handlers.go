package order

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mayamateul/coupon"
	"mayamateul/kv"
	"mayamateul/models"
	"mayamateul/utils"

	"github.com/julienschmidt/httprouter"
)

// SummaryKey is where the payment flow leaves the order summary.
const SummaryKey = "order_summary"

// Handlers wires checkout submission and order retrieval. Remote is the
// optional external order backend; nil disables forwarding.
type Handlers struct {
	Asm    *Assembler
	Eval   *coupon.Evaluator
	Remote *Client
}

func NewHandlers(asm *Assembler, eval *coupon.Evaluator, remote *Client) *Handlers {
	return &Handlers{Asm: asm, Eval: eval, Remote: remote}
}

type placeRequest struct {
	Option        string                 `json:"option"`
	Customer      models.CustomerDetails `json:"customer"`
	PaymentMethod string                 `json:"paymentMethod"`
}

// PlaceOrder snapshots the cart into an order record. Cash orders confirm
// immediately and clear the cart; UPI orders hand off to the payment flow.
func (h *Handlers) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("PlaceOrder decode error:", err)
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "cash"
	}

	rec, err := h.Asm.Assemble(req.Option, req.Customer, h.Eval.Active(), req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{
				"error":    "Your cart is empty! Please add items from the menu.",
				"redirect": "/menu",
			})
		case errors.Is(err, ErrIncompleteSelection):
			utils.RespondWithError(w, http.StatusBadRequest, "Please fill all required fields and select an order option.")
		default:
			log.Println("PlaceOrder assemble error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Order creation failed")
		}
		return
	}

	// forward to the external backend when configured; local flow continues on failure
	if h.Remote != nil {
		if _, err := h.Remote.CreateOrder(r.Context(), rec); err != nil {
			log.Println("PlaceOrder remote create error:", err)
		}
	}

	if rec.PaymentMethod == "cash" {
		h.Asm.Cart.Clear()
		h.Eval.Remove()
		utils.RespondWithJSON(w, http.StatusCreated, utils.M{
			"order":    rec,
			"message":  "Order placed successfully! Payment: Cash on Delivery.",
			"redirect": "/",
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"order":    rec,
		"redirect": "/payment",
	})
}

// GetOrder reads the order-specific key, falling back to the external
// backend when the local copy is gone.
func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	orderID := ps.ByName("orderid")

	data, err := h.Asm.Store.Get(r.Context(), OrderKey(orderID))
	if err == nil {
		var rec models.OrderRecord
		if err := json.Unmarshal(data, &rec); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, rec)
			return
		}
		log.Println("GetOrder decode error:", err)
	} else if err != kv.ErrNotFound {
		log.Println("GetOrder storage error:", err)
	}

	if h.Remote != nil {
		rec, err := h.Remote.GetOrder(r.Context(), orderID)
		if err == nil {
			utils.RespondWithJSON(w, http.StatusOK, rec)
			return
		}
		log.Println("GetOrder remote fetch error:", err)
	}

	http.Error(w, "Order not found", http.StatusNotFound)
}

// GetSummary returns the order summary left behind by a confirmed payment.
func (h *Handlers) GetSummary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	data, err := h.Asm.Store.Get(r.Context(), SummaryKey)
	if err != nil {
		http.Error(w, "No order summary available", http.StatusNotFound)
		return
	}
	var sum models.OrderSummary
	if err := json.Unmarshal(data, &sum); err != nil {
		log.Println("GetSummary decode error:", err)
		http.Error(w, "Corrupt order summary", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sum)
}
