package products

import (
	"mesalink_server/api/middleware"
	"mesalink_server/lib"
	"mesalink_server/structs"
	"mesalink_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandleSetStatus flips a product between available and temporarily
// unavailable without touching the rest of the product
func (prm *ProductRoutesManager) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	productId, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProductStatusRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please provide a valid status"), gecho.WithData(err), gecho.Send())
		return
	}

	product, err := prm.productService.SetProductStatus(r.Context(), barId, productId, tables.ProductStatus(body.Status))
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update the product status"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product status updated"),
		gecho.WithData(product),
		gecho.Send(),
	)
}
