package cart

import (
	"encoding/json"
	"log"
	"net/http"

	"mayamateul/menu"
	"mayamateul/models"
	"mayamateul/pricing"
	"mayamateul/utils"

	"github.com/julienschmidt/httprouter"
)

// Handlers exposes the cart store over HTTP. The store resolves prices
// server-side from the menu table so clients cannot set their own.
type Handlers struct {
	Store *Store
}

func NewHandlers(store *Store) *Handlers {
	return &Handlers{Store: store}
}

type addRequest struct {
	ID    int    `json:"id"`
	Size  string `json:"size,omitempty"`
	Addon string `json:"addon,omitempty"`
}

type lineRequest struct {
	ID       int    `json:"id"`
	Size     string `json:"size,omitempty"`
	Addon    string `json:"addon,omitempty"`
	Quantity int    `json:"quantity"`
}

func (h *Handlers) respondCart(w http.ResponseWriter) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items":      h.Store.Snapshot(),
		"count":      h.Store.Count(),
		"totalPrice": h.Store.TotalPrice(),
	})
}

// AddToCart resolves the selection's price and merges it into the cart.
func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	item, ok := menu.ByID(req.ID)
	if !ok {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}

	size := ""
	if item.HasDualPricing() {
		size = req.Size
		if size != pricing.SizeFull {
			size = pricing.SizeHalf
		}
	}

	var addon *menu.Addon
	if req.Addon != "" {
		for i := range item.Addons {
			if item.Addons[i].Name == req.Addon {
				addon = &item.Addons[i]
				break
			}
		}
		if addon == nil {
			http.Error(w, "Unknown add-on for this item", http.StatusBadRequest)
			return
		}
	}

	price := pricing.FinalLinePrice(item, size, addon)
	if price <= 0 {
		http.Error(w, "Item has no price", http.StatusBadRequest)
		return
	}

	line := models.CartLine{
		ID:    item.ID,
		Name:  item.Name,
		Price: price,
		Image: item.Image,
		Size:  size,
		Addon: req.Addon,
	}
	h.Store.Add(line)

	h.respondCart(w)
}

// GetCart returns the current lines with count and total.
func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.respondCart(w)
}

// UpdateQuantity sets a line's quantity; zero removes it.
func (h *Handlers) UpdateQuantity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req lineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("UpdateQuantity decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	h.Store.SetQuantity(models.CartLine{ID: req.ID, Size: req.Size, Addon: req.Addon}, req.Quantity)
	h.respondCart(w)
}

// RemoveFromCart deletes all lines matching the selection.
func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req lineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("RemoveFromCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	h.Store.Remove(models.CartLine{ID: req.ID, Size: req.Size, Addon: req.Addon})
	h.respondCart(w)
}

// ClearCart empties the cart.
func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Store.Clear()
	h.respondCart(w)
}

// ToggleCart flips the cart-panel visibility flag.
func (h *Handlers) ToggleCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Store.Toggle()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"open": h.Store.IsOpen()})
}
