package validators

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/bintangpramudya/kasirpay-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"a@b.id","password":"supersecret"}`))
	var body loginBody
	require.NoError(t, DecodeJSONBody(req, &body))
	assert.Equal(t, "a@b.id", body.Email)
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"a@b.id","password":"supersecret","extra":1}`))
	var body loginBody
	err := DecodeJSONBody(req, &body)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDecodeJSONBodyReportsFieldErrors(t *testing.T) {
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"not-an-email","password":"x"}`))
	var body loginBody
	err := DecodeJSONBody(req, &body)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be at least 8", details["password"])
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest("GET", "/samples?page=3", nil)
	got, err := ParseQueryInt(req, "page", 1, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = ParseQueryInt(req, "perPage", 10, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	req = httptest.NewRequest("GET", "/samples?page=abc", nil)
	_, err = ParseQueryInt(req, "page", 1, 1, 100)
	require.Error(t, err)

	req = httptest.NewRequest("GET", "/samples?page=0", nil)
	_, err = ParseQueryInt(req, "page", 1, 1, 100)
	require.Error(t, err)
}

func TestParsePaginationParams(t *testing.T) {
	req := httptest.NewRequest("GET", "/samples?page=2&perPage=5&sortBy=name&sortOrder=ASC&search=tea&all=true", nil)
	params, err := ParsePaginationParams(req)
	require.NoError(t, err)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 5, params.PerPage)
	assert.Equal(t, "name", params.SortBy)
	assert.Equal(t, "asc", params.SortOrder)
	assert.Equal(t, "tea", params.Search)
	assert.True(t, params.All)
}

func TestParsePaginationParamsAcceptsPageSizeAlias(t *testing.T) {
	req := httptest.NewRequest("GET", "/samples?page=1&pageSize=7", nil)
	params, err := ParsePaginationParams(req)
	require.NoError(t, err)
	assert.Equal(t, 7, params.PerPage)

	// The documented knob wins when both are present.
	req = httptest.NewRequest("GET", "/samples?perPage=5&pageSize=7", nil)
	params, err = ParsePaginationParams(req)
	require.NoError(t, err)
	assert.Equal(t, 5, params.PerPage)
}

func TestParsePathUUID(t *testing.T) {
	_, err := ParsePathUUID("not-a-uuid", "sampleId")
	require.Error(t, err)

	id, err := ParsePathUUID("7b4451f2-0c77-4fd5-9b2c-8a9d63c1f111", "sampleId")
	require.NoError(t, err)
	assert.Equal(t, "7b4451f2-0c77-4fd5-9b2c-8a9d63c1f111", id.String())
}

// Smallest valid PNG: signature plus truncated chunks is enough for sniffing.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func buildMultipart(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	if field != "" {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func TestParseImageFileAcceptsPNG(t *testing.T) {
	buf, contentType := buildMultipart(t, "image", "sample.png", pngHeader)
	req := httptest.NewRequest("POST", "/samples", buf)
	req.Header.Set("Content-Type", contentType)

	file, err := ParseImageFile(req, "image", 2<<20)
	require.NoError(t, err)
	assert.Equal(t, "image/png", file.ContentType)
	assert.Equal(t, "sample.png", file.Filename)
}

func TestParseImageFileMissingField(t *testing.T) {
	buf, contentType := buildMultipart(t, "", "", nil)
	req := httptest.NewRequest("POST", "/samples", buf)
	req.Header.Set("Content-Type", contentType)

	_, err := ParseImageFile(req, "image", 2<<20)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Equal(t, "Image is required", typed.Message())
}

func TestParseImageFileRejectsNonImage(t *testing.T) {
	buf, contentType := buildMultipart(t, "image", "notes.txt", []byte("plain text payload"))
	req := httptest.NewRequest("POST", "/samples", buf)
	req.Header.Set("Content-Type", contentType)

	_, err := ParseImageFile(req, "image", 2<<20)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
