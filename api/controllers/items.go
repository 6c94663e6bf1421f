package controllers

import (
	"net/http"

	"github.com/bintangpramudya/kasirpay-backend/api/responses"
	"github.com/bintangpramudya/kasirpay-backend/api/validators"
	"github.com/bintangpramudya/kasirpay-backend/internal/items"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// ItemsController handles the sellable item endpoints.
type ItemsController struct {
	svc  items.Service
	logg *logger.Logger
}

func NewItemsController(svc items.Service, logg *logger.Logger) *ItemsController {
	return &ItemsController{svc: svc, logg: logg}
}

func (c *ItemsController) List(w http.ResponseWriter, r *http.Request) {
	params, err := validators.ParsePaginationParams(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	rows, meta, err := c.svc.List(r.Context(), params)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	responses.WriteList(w, rows, meta)
}

func (c *ItemsController) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := validators.ParsePathUUID(chi.URLParam(r, "itemId"), "itemId")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	item, err := c.svc.Get(r.Context(), id)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	responses.WriteSuccess(w, item)
}

func (c *ItemsController) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name" validate:"required,min=1"`
		Price int64  `json:"price" validate:"required,gt=0"`
	}
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	item, err := c.svc.Create(r.Context(), items.CreateItemDTO{Name: req.Name, Price: req.Price})
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	responses.WriteSuccessStatus(w, http.StatusCreated, item)
}

func (c *ItemsController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := validators.ParsePathUUID(chi.URLParam(r, "itemId"), "itemId")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	var req struct {
		Name  *string `json:"name" validate:"omitempty,min=1"`
		Price *int64  `json:"price" validate:"omitempty,gt=0"`
	}
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	item, err := c.svc.Update(r.Context(), id, items.UpdateItemDTO{Name: req.Name, Price: req.Price})
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	responses.WriteSuccess(w, item)
}

func (c *ItemsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := validators.ParsePathUUID(chi.URLParam(r, "itemId"), "itemId")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	if err := c.svc.Delete(r.Context(), id); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	responses.WriteSuccess(w, map[string]string{"status": "deleted"})
}
