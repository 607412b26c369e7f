package menu

import (
	"errors"
	"mesalink_server/lib"
	"mesalink_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (mrm *MenuRoutesManager) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateOrderRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Please check your order and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if _, err := mrm.resolveTable(r, body.TableQRValue); err != nil {
		gecho.NotFound(w, gecho.WithMessage("This QR code is not valid"), gecho.Send())
		return
	}

	order, err := mrm.orderService.CreateOrder(r.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrInvalidQRToken):
			gecho.NotFound(w, gecho.WithMessage("This QR code is not valid"), gecho.Send())
		case errors.Is(err, lib.ErrProductUnavailable):
			gecho.BadRequest(w, gecho.WithMessage("One or more products are no longer available"), gecho.Send())
		default:
			mrm.logger.Error("Failed to create order", gecho.Field("error", err))
			gecho.InternalServerError(w, gecho.WithMessage("Unable to place the order. Please try again"), gecho.Send())
		}
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order placed"),
		gecho.WithData(map[string]any{
			"order_id":     order.Id,
			"order_number": order.OrderNumber,
			"status":       order.Status,
			"total_cents":  order.TotalCents,
		}),
		gecho.Send(),
	)
}
