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

func (prm *ProductRoutesManager) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	list, err := prm.productService.ListProducts(r.Context(), barId)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load products"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(list),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
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

	product, err := prm.productService.GetProduct(r.Context(), barId, productId)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load the product"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateProductRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the product details"), gecho.WithData(err), gecho.Send())
		return
	}

	product, err := prm.productService.CreateProduct(r.Context(), barId, body)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Unable to create the product"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
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

	body, err := lib.ExtractAndValidateBody[structs.UpdateProductRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the product details"), gecho.WithData(err), gecho.Send())
		return
	}

	product, err := prm.productService.UpdateProduct(r.Context(), barId, productId, body)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update the product"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

// HandleDeleteProduct takes a product off the menu by marking it unavailable.
// Hard deletion is reserved for the admin purge route.
func (prm *ProductRoutesManager) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
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

	if _, err := prm.productService.SetProductStatus(r.Context(), barId, productId, tables.ProductStatusUnavailable); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to remove the product"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product removed from the menu"),
		gecho.Send(),
	)
}
