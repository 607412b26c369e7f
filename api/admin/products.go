package admin

import (
	"mesalink_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlePurgeProduct hard-deletes a product. The staff dashboard only
// deactivates; this is the one path that actually removes the row. Order
// items keep their snapshots, so history survives the purge.
func (arm *AdminRoutesManager) HandlePurgeProduct(w http.ResponseWriter, r *http.Request) {
	barId, err := uuid.Parse(chi.URLParam(r, "barID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid bar id"), gecho.Send())
		return
	}

	productId, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	if err := arm.productService.DeleteProduct(r.Context(), barId, productId); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to purge the product"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product purged"),
		gecho.Send(),
	)
}
