package samples

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
	pkgerrors "github.com/bintangpramudya/kasirpay-backend/pkg/errors"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
	"github.com/bintangpramudya/kasirpay-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const sampleNotFoundMessage = "Sample not found"

// Service defines the behavior needed by the samples controller.
type Service interface {
	List(ctx context.Context, params pagination.Params) ([]SampleDTO, pagination.Meta, error)
	Get(ctx context.Context, id uuid.UUID) (*SampleDTO, error)
	Create(ctx context.Context, input CreateSampleInput) (*SampleDTO, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateSampleDTO) (*SampleDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateSampleInput pairs the sample name with its raw image upload.
type CreateSampleInput struct {
	Name             string
	ImageFilename    string
	ImageContentType string
	ImageData        []byte
}

type sampleRepository interface {
	List(ctx context.Context, params pagination.Params) ([]models.Sample, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Sample, error)
	Create(ctx context.Context, dto CreateSampleDTO) (*models.Sample, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateSampleDTO) (*models.Sample, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type imageUploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type mailSender interface {
	SendSampleCreated(ctx context.Context, to, sampleName, imageURL string) error
}

type service struct {
	repo     sampleRepository
	uploader imageUploader
	mailer   mailSender
	notifyTo string
	logg     *logger.Logger
}

// ServiceParams bundles the dependencies required to build a samples service.
type ServiceParams struct {
	Repo     sampleRepository
	Uploader imageUploader
	Mailer   mailSender
	NotifyTo string
	Logger   *logger.Logger
}

// NewService constructs a samples service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("sample repository is required")
	}
	if params.Uploader == nil {
		return nil, fmt.Errorf("image uploader is required")
	}
	return &service{
		repo:     params.Repo,
		uploader: params.Uploader,
		mailer:   params.Mailer,
		notifyTo: params.NotifyTo,
		logg:     params.Logger,
	}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) ([]SampleDTO, pagination.Meta, error) {
	params = params.Normalize()
	rows, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list samples")
	}
	return FromModels(rows), pagination.GenerateMeta(params, total), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*SampleDTO, error) {
	sample, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, sampleNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load sample")
	}
	return FromModel(sample), nil
}

func (s *service) Create(ctx context.Context, input CreateSampleInput) (*SampleDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if len(input.ImageData) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Image is required")
	}

	key := objectKey(input.ImageFilename)
	imageURL, err := s.uploader.Upload(ctx, key, input.ImageContentType, input.ImageData)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upload image")
	}

	sample, err := s.repo.Create(ctx, CreateSampleDTO{Name: name, ImageURL: imageURL})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create sample")
	}

	s.notifyCreated(ctx, sample)

	return FromModel(sample), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateSampleDTO) (*SampleDTO, error) {
	sample, err := s.repo.Update(ctx, id, dto)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, sampleNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update sample")
	}
	return FromModel(sample), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, sampleNotFoundMessage)
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete sample")
	}
	return nil
}

// notifyCreated sends the announcement mail. Failures are logged and never
// surface to the caller.
func (s *service) notifyCreated(ctx context.Context, sample *models.Sample) {
	if s.mailer == nil || s.notifyTo == "" {
		return
	}
	if err := s.mailer.SendSampleCreated(ctx, s.notifyTo, sample.Name, sample.ImageURL); err != nil && s.logg != nil {
		logCtx := s.logg.WithField(ctx, "sample_id", sample.ID.String())
		s.logg.Warn(logCtx, "sample created mail failed: "+err.Error())
	}
}

func objectKey(filename string) string {
	ext := path.Ext(filename)
	return "samples/" + uuid.NewString() + ext
}
