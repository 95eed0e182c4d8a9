package menu

import (
	"net/http"
	"strconv"

	"mayamateul/utils"

	"github.com/julienschmidt/httprouter"
)

// GetMenu returns all menu items, optional ?category= filter.
func GetMenu(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cat := r.URL.Query().Get("category"); cat != "" {
		items := ByCategory(cat)
		if items == nil {
			items = []Item{}
		}
		utils.RespondWithJSON(w, http.StatusOK, items)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, Items())
}

// GetMenuItem returns a single item by id.
func GetMenuItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("menuid"))
	if err != nil {
		http.Error(w, "Invalid menu id", http.StatusBadRequest)
		return
	}
	item, ok := ByID(id)
	if !ok {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

// GetCategories returns the category labels in menu order.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Categories())
}
