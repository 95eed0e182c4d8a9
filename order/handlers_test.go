package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mayamateul/cart"
	"mayamateul/coupon"
	"mayamateul/kv"
	"mayamateul/models"

	"github.com/julienschmidt/httprouter"
)

// ctxStore records the context of the last Get so handlers can be checked
// for propagating the request context.
type ctxStore struct {
	kv.Store
	lastGetCtx context.Context
}

func (c *ctxStore) Get(ctx context.Context, key string) ([]byte, error) {
	c.lastGetCtx = ctx
	return c.Store.Get(ctx, key)
}

type ctxKey string

func summaryHandlers(store kv.Store) *Handlers {
	cs := cart.NewStore(store)
	return NewHandlers(NewAssembler(store, cs), coupon.NewEvaluator(), nil)
}

func TestGetSummaryNotFound(t *testing.T) {
	h := summaryHandlers(kv.NewMemory())
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/order-summary", nil)

	h.GetSummary(w, r, httprouter.Params{})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetSummaryReturnsStored(t *testing.T) {
	mem := kv.NewMemory()
	sum := models.OrderSummary{
		OrderID:       "MAYA-12345678-001",
		TransactionID: "TXN123456",
		Amount:        681,
		Timestamp:     time.Now(),
		Status:        "confirmed",
	}
	data, _ := json.Marshal(sum)
	mem.Set(context.Background(), SummaryKey, data)

	h := summaryHandlers(mem)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/order-summary", nil)

	h.GetSummary(w, r, httprouter.Params{})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got models.OrderSummary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.OrderID != sum.OrderID || got.TransactionID != sum.TransactionID {
		t.Fatalf("summary = %+v", got)
	}
}

func TestGetSummaryUsesRequestContext(t *testing.T) {
	store := &ctxStore{Store: kv.NewMemory()}
	h := summaryHandlers(store)

	ctx := context.WithValue(context.Background(), ctxKey("request-scope"), "marker")
	r := httptest.NewRequest(http.MethodGet, "/api/order-summary", nil).WithContext(ctx)
	h.GetSummary(httptest.NewRecorder(), r, httprouter.Params{})

	if store.lastGetCtx == nil || store.lastGetCtx.Value(ctxKey("request-scope")) != "marker" {
		t.Fatal("storage read did not receive the request context")
	}
}
