package routes

import (
	"mayamateul/cart"
	"mayamateul/coupon"
	"mayamateul/live"
	"mayamateul/menu"
	"mayamateul/order"
	"mayamateul/payment"
	"mayamateul/ratelim"
	"mayamateul/receipt"

	"github.com/julienschmidt/httprouter"
)

// Deps bundles the wired services the route groups need.
type Deps struct {
	RateLimiter *ratelim.RateLimiter
	CartStore   *cart.Store
	Cart        *cart.Handlers
	Coupon      *coupon.Handlers
	Order       *order.Handlers
	Payment     *payment.Service
	Receipt     *receipt.Handlers
	Hub         *live.Hub
}

// RoutesWrapper registers every route group on the router.
func RoutesWrapper(router *httprouter.Router, d Deps) {
	AddMenuRoutes(router, d)
	AddCartRoutes(router, d)
	AddCouponRoutes(router, d)
	AddOrderRoutes(router, d)
	AddPaymentRoutes(router, d)
	AddLiveRoutes(router, d)
}

func AddMenuRoutes(router *httprouter.Router, d Deps) {
	router.GET("/api/menu", menu.GetMenu)
	router.GET("/api/menu/:menuid", menu.GetMenuItem)
	router.GET("/api/categories", menu.GetCategories)
}

func AddCartRoutes(router *httprouter.Router, d Deps) {
	rl := d.RateLimiter
	router.GET("/api/cart", d.Cart.GetCart)
	router.POST("/api/cart", rl.Limit(d.Cart.AddToCart))
	router.PUT("/api/cart/quantity", rl.Limit(d.Cart.UpdateQuantity))
	router.DELETE("/api/cart/item", rl.Limit(d.Cart.RemoveFromCart))
	router.DELETE("/api/cart", rl.Limit(d.Cart.ClearCart))
	router.POST("/api/cart/toggle", d.Cart.ToggleCart)
}

func AddCouponRoutes(router *httprouter.Router, d Deps) {
	rl := d.RateLimiter
	router.GET("/api/coupons", d.Coupon.ListCoupons)
	router.POST("/api/coupons/apply", rl.Limit(d.Coupon.ApplyCoupon))
	router.DELETE("/api/coupons/active", rl.Limit(d.Coupon.RemoveCoupon))
}

func AddOrderRoutes(router *httprouter.Router, d Deps) {
	rl := d.RateLimiter
	router.POST("/api/orders", rl.Limit(d.Order.PlaceOrder))
	router.GET("/api/order-summary", d.Order.GetSummary)
	router.GET("/api/orders/:orderid", d.Order.GetOrder)
	router.GET("/api/orders/:orderid/receipt", d.Receipt.Download)
}

func AddPaymentRoutes(router *httprouter.Router, d Deps) {
	rl := d.RateLimiter
	router.POST("/api/payments", rl.Limit(d.Payment.StartSession))
	router.GET("/api/payments/:ordernum/status", d.Payment.GetStatus)
	router.POST("/api/payments/:ordernum/confirm", rl.Limit(d.Payment.Confirm))
	router.GET("/api/payments/:ordernum/qr", d.Payment.QR)
	router.DELETE("/api/payments/:ordernum", d.Payment.Teardown)
}

func AddLiveRoutes(router *httprouter.Router, d Deps) {
	router.GET("/ws/cart", d.Hub.ServeWS(d.CartStore))
}
