package samples

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
	pkgerrors "github.com/bintangpramudya/kasirpay-backend/pkg/errors"
	"github.com/bintangpramudya/kasirpay-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRepo struct {
	byID    map[uuid.UUID]*models.Sample
	created []CreateSampleDTO
}

func newStubRepo() *stubRepo {
	return &stubRepo{byID: map[uuid.UUID]*models.Sample{}}
}

func (s *stubRepo) List(_ context.Context, _ pagination.Params) ([]models.Sample, int64, error) {
	out := make([]models.Sample, 0, len(s.byID))
	for _, sample := range s.byID {
		out = append(out, *sample)
	}
	return out, int64(len(out)), nil
}

func (s *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Sample, error) {
	if sample, ok := s.byID[id]; ok {
		return sample, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) Create(_ context.Context, dto CreateSampleDTO) (*models.Sample, error) {
	sample := &models.Sample{ID: uuid.New(), Name: dto.Name, ImageURL: dto.ImageURL}
	s.byID[sample.ID] = sample
	s.created = append(s.created, dto)
	return sample, nil
}

func (s *stubRepo) Update(_ context.Context, id uuid.UUID, dto UpdateSampleDTO) (*models.Sample, error) {
	sample, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if dto.Name != nil {
		sample.Name = *dto.Name
	}
	if dto.ImageURL != nil {
		sample.ImageURL = *dto.ImageURL
	}
	return sample, nil
}

func (s *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.byID, id)
	return nil
}

type stubUploader struct {
	uploads int
	lastKey string
	err     error
}

func (s *stubUploader) Upload(_ context.Context, key, _ string, _ []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.uploads++
	s.lastKey = key
	return "https://storage.googleapis.com/bucket/" + key, nil
}

type stubMailer struct {
	sent int
	err  error
}

func (s *stubMailer) SendSampleCreated(_ context.Context, _, _, _ string) error {
	if s.err != nil {
		return s.err
	}
	s.sent++
	return nil
}

func newServiceForTest(t *testing.T, repo *stubRepo, uploader *stubUploader, mailer *stubMailer) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:     repo,
		Uploader: uploader,
		Mailer:   mailer,
		NotifyTo: "ops@kasirpay.id",
	})
	require.NoError(t, err)
	return svc
}

func TestCreateUploadsThenPersistsThenMails(t *testing.T) {
	repo := newStubRepo()
	uploader := &stubUploader{}
	mailer := &stubMailer{}
	svc := newServiceForTest(t, repo, uploader, mailer)

	dto, err := svc.Create(context.Background(), CreateSampleInput{
		Name:             "Green Tea",
		ImageFilename:    "tea.png",
		ImageContentType: "image/png",
		ImageData:        []byte{0x89, 0x50},
	})
	require.NoError(t, err)
	assert.Equal(t, "Green Tea", dto.Name)
	assert.True(t, strings.HasPrefix(dto.ImageURL, "https://storage.googleapis.com/bucket/samples/"))
	assert.True(t, strings.HasSuffix(uploader.lastKey, ".png"))
	assert.Equal(t, 1, uploader.uploads)
	assert.Equal(t, 1, mailer.sent)
	require.Len(t, repo.created, 1)
}

func TestCreateMissingImage(t *testing.T) {
	svc := newServiceForTest(t, newStubRepo(), &stubUploader{}, &stubMailer{})

	_, err := svc.Create(context.Background(), CreateSampleInput{Name: "No Image"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Equal(t, "Image is required", typed.Message())
}

func TestCreateUploadFailureFailsRequest(t *testing.T) {
	repo := newStubRepo()
	svc := newServiceForTest(t, repo, &stubUploader{err: errors.New("bucket down")}, &stubMailer{})

	_, err := svc.Create(context.Background(), CreateSampleInput{
		Name:      "Green Tea",
		ImageData: []byte{0x89},
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
	assert.Empty(t, repo.created)
}

func TestCreateMailFailureIsBestEffort(t *testing.T) {
	repo := newStubRepo()
	svc := newServiceForTest(t, repo, &stubUploader{}, &stubMailer{err: errors.New("smtp down")})

	dto, err := svc.Create(context.Background(), CreateSampleInput{
		Name:      "Green Tea",
		ImageData: []byte{0x89},
	})
	require.NoError(t, err)
	assert.NotNil(t, dto)
	require.Len(t, repo.created, 1)
}

func TestGetUnknownSample(t *testing.T) {
	svc := newServiceForTest(t, newStubRepo(), &stubUploader{}, &stubMailer{})

	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Equal(t, "Sample not found", typed.Message())
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	repo := newStubRepo()
	uploader := &stubUploader{}
	svc := newServiceForTest(t, repo, uploader, &stubMailer{})

	dto, err := svc.Create(context.Background(), CreateSampleInput{Name: "Doomed", ImageData: []byte{1}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), dto.ID))

	err = svc.Delete(context.Background(), dto.ID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
