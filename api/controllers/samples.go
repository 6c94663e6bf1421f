package controllers

import (
	"net/http"
	"strings"

	"github.com/bintangpramudya/kasirpay-backend/api/responses"
	"github.com/bintangpramudya/kasirpay-backend/api/validators"
	"github.com/bintangpramudya/kasirpay-backend/internal/samples"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// SamplesController handles the catalog sample endpoints.
type SamplesController struct {
	svc         samples.Service
	maxUploadMB int
	logg        *logger.Logger
}

func NewSamplesController(svc samples.Service, maxUploadMB int, logg *logger.Logger) *SamplesController {
	if maxUploadMB <= 0 {
		maxUploadMB = 2
	}
	return &SamplesController{svc: svc, maxUploadMB: maxUploadMB, logg: logg}
}

func (c *SamplesController) List(w http.ResponseWriter, r *http.Request) {
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

func (c *SamplesController) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := validators.ParsePathUUID(chi.URLParam(r, "sampleId"), "sampleId")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	sample, err := c.svc.Get(r.Context(), id)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	responses.WriteSuccess(w, sample)
}

// Create accepts a multipart form with a "name" field and an "image" file.
func (c *SamplesController) Create(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(c.maxUploadMB) << 20
	image, err := validators.ParseImageFile(r, "image", maxBytes)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	sample, err := c.svc.Create(r.Context(), samples.CreateSampleInput{
		Name:             strings.TrimSpace(r.FormValue("name")),
		ImageFilename:    image.Filename,
		ImageContentType: image.ContentType,
		ImageData:        image.Data,
	})
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	responses.WriteSuccessStatus(w, http.StatusCreated, sample)
}

func (c *SamplesController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := validators.ParsePathUUID(chi.URLParam(r, "sampleId"), "sampleId")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	var req struct {
		Name     *string `json:"name" validate:"omitempty,min=1"`
		ImageURL *string `json:"image_url" validate:"omitempty,url"`
	}
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	sample, err := c.svc.Update(r.Context(), id, samples.UpdateSampleDTO{
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	responses.WriteSuccess(w, sample)
}

func (c *SamplesController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := validators.ParsePathUUID(chi.URLParam(r, "sampleId"), "sampleId")
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
