package categories

import (
	"mesalink_server/api/middleware"
	"mesalink_server/lib"
	"mesalink_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (crm *CategoryRoutesManager) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	list, err := crm.categoryService.ListCategories(r.Context(), barId)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load categories"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(list),
		gecho.Send(),
	)
}

func (crm *CategoryRoutesManager) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateCategoryRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the category details"), gecho.WithData(err), gecho.Send())
		return
	}

	category, err := crm.categoryService.CreateCategory(r.Context(), barId, body)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Unable to create the category"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category created"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (crm *CategoryRoutesManager) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	categoryId, err := uuid.Parse(chi.URLParam(r, "categoryID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateCategoryRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the category details"), gecho.WithData(err), gecho.Send())
		return
	}

	category, err := crm.categoryService.UpdateCategory(r.Context(), barId, categoryId, body)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Category not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update the category"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category updated"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (crm *CategoryRoutesManager) HandleDeactivateCategory(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	categoryId, err := uuid.Parse(chi.URLParam(r, "categoryID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category id"), gecho.Send())
		return
	}

	if err := crm.categoryService.DeactivateCategory(r.Context(), barId, categoryId); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Category not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to remove the category"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category removed"),
		gecho.Send(),
	)
}
