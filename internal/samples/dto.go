package samples

import (
	"time"

	"github.com/google/uuid"

	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
)

// SampleDTO is the transport shape for catalog samples.
type SampleDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSampleDTO holds the data required to persist a new sample.
type CreateSampleDTO struct {
	Name     string
	ImageURL string
}

// UpdateSampleDTO carries the optional fields of a partial update.
type UpdateSampleDTO struct {
	Name     *string
	ImageURL *string
}

func FromModel(s *models.Sample) *SampleDTO {
	if s == nil {
		return nil
	}
	return &SampleDTO{
		ID:        s.ID,
		Name:      s.Name,
		ImageURL:  s.ImageURL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromModels(items []models.Sample) []SampleDTO {
	out := make([]SampleDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i]))
	}
	return out
}
