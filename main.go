package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mayamateul/cart"
	"mayamateul/coupon"
	"mayamateul/kv"
	"mayamateul/live"
	"mayamateul/notify"
	"mayamateul/order"
	"mayamateul/payment"
	"mayamateul/ratelim"
	"mayamateul/rdx"
	"mayamateul/receipt"
	"mayamateul/routes"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// XSS, content sniffing, framing
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		// HSTS (must be on HTTPS)
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		// Referrer and permissions
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		// Prevent caching
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openStore selects the key-value backend from KV_DRIVER: memory (default),
// redis, or mongo.
func openStore() (kv.Store, func(), error) {
	switch os.Getenv("KV_DRIVER") {
	case "redis":
		if err := rdx.Init(); err != nil {
			return nil, nil, err
		}
		return kv.NewRedis(rdx.Conn), func() { rdx.Conn.Close() }, nil

	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(envOr("MONGO_URI", "mongodb://localhost:27017")))
		if err != nil {
			return nil, nil, err
		}
		store := kv.NewMongo(client.Database("mayamateul").Collection("storage"))
		if err := store.EnsureIndexes(ctx); err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			client.Disconnect(ctx)
		}
		return store, cleanup, nil

	default:
		return kv.NewMemory(), func() {}, nil
	}
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	store, cleanup, err := openStore()
	if err != nil {
		log.Fatalf("❌ Storage init failed: %v", err)
	}
	defer cleanup()

	upiID := envOr("RESTAURANT_UPI", "9402613361@ptaxis")
	supportPhone := envOr("SUPPORT_PHONE", "+919402613361")

	cartStore := cart.NewStore(store)
	eval := coupon.NewEvaluator()
	asm := order.NewAssembler(store, cartStore)
	emitter := notify.NewEmitter(supportPhone)

	var remote *order.Client
	if base := os.Getenv("ORDER_API_URL"); base != "" {
		remote = order.NewClient(base)
	}
	var verifier *payment.Verifier
	if base := os.Getenv("PAYMENT_API_URL"); base != "" {
		verifier = payment.NewVerifier(base, upiID)
	}

	paySvc := payment.NewService(store, cartStore, eval, verifier, emitter, upiID, payment.Config{})

	hub := live.NewHub()
	go hub.Run()
	hub.Watch(cartStore)

	rateLimiter := ratelim.NewRateLimiter(5, 10)

	router := httprouter.New()
	router.GET("/health", Index)

	routes.RoutesWrapper(router, routes.Deps{
		RateLimiter: rateLimiter,
		CartStore:   cartStore,
		Cart:        cart.NewHandlers(cartStore),
		Coupon:      coupon.NewHandlers(eval, cartStore.TotalPrice),
		Order:       order.NewHandlers(asm, eval, remote),
		Payment:     paySvc,
		Receipt:     receipt.NewHandlers(store),
		Hub:         hub,
	})

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	// create HTTP server
	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// on shutdown: stop live hub and payment sessions
	server.RegisterOnShutdown(func() {
		log.Println("🛑 Shutting down live hub...")
		hub.Stop()
		paySvc.Shutdown()
	})

	// start server
	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	// initiate graceful shutdown
	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
