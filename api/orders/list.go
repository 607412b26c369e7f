package orders

import (
	"mesalink_server/api/middleware"
	"mesalink_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	orders, err := orm.feedService.Orders(r.Context(), barId)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load orders"), gecho.Send())
		return
	}

	// Optional status filter for the dashboard tabs
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := tables.OrderStatus(raw)
		if !status.Valid() {
			gecho.BadRequest(w, gecho.WithMessage("Unknown order status"), gecho.Send())
			return
		}

		filtered := make([]tables.Order, 0, len(orders))
		for _, order := range orders {
			if order.Status == status {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	gecho.Success(w,
		gecho.WithData(orders),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) HandleOrderStats(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	stats, err := orm.feedService.Stats(r.Context(), barId)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load order statistics"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(stats),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) HandleSearchOrders(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	orders, err := orm.feedService.Search(r.Context(), barId, r.URL.Query().Get("q"))
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Unable to search orders"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(orders),
		gecho.Send(),
	)
}
