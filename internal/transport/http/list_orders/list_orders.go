package listorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/mercadofake/store/internal/service/models/order"
)

// service is an interface for the service layer.
type service interface {
	List(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
}

// queryOrdersRequest represents the list orders query parameters.
type queryOrdersRequest struct {
	Estados []string `schema:"estado,omitempty"`
}

// toModel converts queryOrdersRequest to order.QueryOrdersModel.
func (q *queryOrdersRequest) toModel() *order.QueryOrdersModel {
	return &order.QueryOrdersModel{
		Statuses: q.Estados,
	}
}

// ListOrders handles the list orders request. Repeatable estado query values
// filter the result.
// @Summary List orders
// @Produce json
// @Param estado query string false "Filter by estado"
// @Success 200 {array} order.Order
// @Router /orders/ [get]
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &queryOrdersRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request for list orders", "error", err)

		return
	}

	orders, err := service.List(r.Context(), query.toModel())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error listing orders", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		slog.Error("Error sending response for list orders", "error", err)
	}
}
