package orders

import (
	"errors"
	"mesalink_server/api/middleware"
	"mesalink_server/lib"
	"mesalink_server/structs"
	"mesalink_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (orm *OrderRoutesManager) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	orderId, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderStatusRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please provide a valid status"), gecho.WithData(err), gecho.Send())
		return
	}

	order, err := orm.orderService.UpdateOrderStatus(r.Context(), barId, orderId, tables.OrderStatus(body.Status))
	if err != nil {
		switch {
		case lib.IsNotFound(err):
			gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
		case errors.Is(err, lib.ErrInvalidTransition):
			gecho.Conflict(w, gecho.WithMessage("This status change is not allowed"), gecho.Send())
		default:
			orm.logger.Error("Failed to update order status", gecho.Field("error", err), gecho.Field("order_id", orderId))
			gecho.InternalServerError(w, gecho.WithMessage("Unable to update the order"), gecho.Send())
		}
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order updated"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
