package coupon

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"mayamateul/utils"

	"github.com/julienschmidt/httprouter"
)

// Handlers validates and applies coupons against the live cart total. The
// total is injected as a closure so this package stays independent of the
// cart store.
type Handlers struct {
	Eval      *Evaluator
	CartTotal func() float64
}

func NewHandlers(eval *Evaluator, cartTotal func() float64) *Handlers {
	return &Handlers{Eval: eval, CartTotal: cartTotal}
}

type applyRequest struct {
	Code string `json:"code"`
}

type applyResponse struct {
	Valid   bool    `json:"valid"`
	Coupon  *Coupon `json:"coupon,omitempty"`
	Message string  `json:"message"`
}

// ListCoupons returns the available rule table.
func (h *Handlers) ListCoupons(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Available())
}

// ApplyCoupon validates the code and makes it the active coupon.
func (h *Handlers) ApplyCoupon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("ApplyCoupon decode error:", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	c, err := h.Eval.Apply(req.Code, h.CartTotal())
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		utils.RespondWithJSON(w, status, applyResponse{Valid: false, Message: err.Error()})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, applyResponse{
		Valid:   true,
		Coupon:  &c,
		Message: fmt.Sprintf("Coupon %q applied successfully!", c.Code),
	})
}

// RemoveCoupon clears the active coupon.
func (h *Handlers) RemoveCoupon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	code := h.Eval.Remove()
	msg := "No coupon was applied"
	if code != "" {
		msg = fmt.Sprintf("Coupon %q removed", code)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"removed": code, "message": msg})
}
