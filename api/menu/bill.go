package menu

import (
	"errors"
	"mesalink_server/lib"
	"mesalink_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (mrm *MenuRoutesManager) HandleRequestBill(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.BillRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Please scan the QR code again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if _, err := mrm.resolveTable(r, body.TableQRValue); err != nil {
		gecho.NotFound(w, gecho.WithMessage("This QR code is not valid"), gecho.Send())
		return
	}

	stamped, err := mrm.orderService.RequestBill(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidQRToken) {
			gecho.NotFound(w, gecho.WithMessage("This QR code is not valid"), gecho.Send())
			return
		}
		mrm.logger.Error("Failed to request bill", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to request the bill. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Bill requested"),
		gecho.WithData(map[string]any{"orders_stamped": stamped}),
		gecho.Send(),
	)
}
