package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/mercadofake/store/internal/service/models/order"
	"github.com/mercadofake/store/internal/service/models/product"
	createorder "github.com/mercadofake/store/internal/transport/http/create_order"
	createproduct "github.com/mercadofake/store/internal/transport/http/create_product"
	deleteorder "github.com/mercadofake/store/internal/transport/http/delete_order"
	deleteproduct "github.com/mercadofake/store/internal/transport/http/delete_product"
	getorder "github.com/mercadofake/store/internal/transport/http/get_order"
	getproduct "github.com/mercadofake/store/internal/transport/http/get_product"
	listorders "github.com/mercadofake/store/internal/transport/http/list_orders"
	listproducts "github.com/mercadofake/store/internal/transport/http/list_products"
	"github.com/mercadofake/store/internal/transport/http/openapi"
	updateorder "github.com/mercadofake/store/internal/transport/http/update_order"
	updateproduct "github.com/mercadofake/store/internal/transport/http/update_product"
	"github.com/mercadofake/store/pkg/http/middleware/trace"
	"github.com/mercadofake/store/pkg/logger"
)

type productService interface {
	List(ctx context.Context) ([]product.Product, error)
	Get(ctx context.Context, id string) (product.Product, error)
	Create(ctx context.Context, p product.Product) (product.Product, error)
	Update(ctx context.Context, p product.Product) (product.Product, error)
	Delete(ctx context.Context, id string) error
}

type orderService interface {
	List(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
	Get(ctx context.Context, id string) (order.Order, error)
	Create(ctx context.Context, productIDs []string) (order.Order, error)
	Update(ctx context.Context, id string, upd order.UpdateOrderModel) (order.Order, error)
	Delete(ctx context.Context, id string) error
}

type HTTPTransport struct {
	server   *http.Server
	router   *chi.Mux
	products productService
	orders   orderService
}

func NewHTTPTransport(products productService, orders orderService) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:   server,
		router:   router,
		products: products,
		orders:   orders,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Get("/{id}", h.getProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})

	h.router.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/", h.createOrder)
		r.Get("/{id}", h.getOrder)
		r.Put("/{id}", h.updateOrder)
		r.Delete("/{id}", h.deleteOrder)
	})

	h.router.Get("/healthz", h.health)
	h.router.Get("/openapi.yaml", h.openapiSpec)
	h.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/openapi.yaml"),
	))
}

func (h *HTTPTransport) listProducts(w http.ResponseWriter, r *http.Request) {
	listproducts.ListProducts(w, r, h.products)
}

func (h *HTTPTransport) createProduct(w http.ResponseWriter, r *http.Request) {
	createproduct.CreateProduct(w, r, h.products)
}

func (h *HTTPTransport) getProduct(w http.ResponseWriter, r *http.Request) {
	getproduct.GetProduct(w, r, h.products)
}

func (h *HTTPTransport) updateProduct(w http.ResponseWriter, r *http.Request) {
	updateproduct.UpdateProduct(w, r, h.products)
}

func (h *HTTPTransport) deleteProduct(w http.ResponseWriter, r *http.Request) {
	deleteproduct.DeleteProduct(w, r, h.products)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.orders)
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.orders)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	getorder.GetOrder(w, r, h.orders)
}

func (h *HTTPTransport) updateOrder(w http.ResponseWriter, r *http.Request) {
	updateorder.UpdateOrder(w, r, h.orders)
}

func (h *HTTPTransport) deleteOrder(w http.ResponseWriter, r *http.Request) {
	deleteorder.DeleteOrder(w, r, h.orders)
}

func (h *HTTPTransport) openapiSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	if _, err := w.Write(openapi.YAML); err != nil {
		slog.Error("Error sending OpenAPI document", "error", err)
	}
}

func (h *HTTPTransport) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("Error sending health response", "error", err)
	}
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	if viper.GetBool("tracing.enabled") {
		router.Use(trace.NewTraceMiddleware)
	}

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
