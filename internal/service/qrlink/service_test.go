package qrlink

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"strings"
	"testing"

	"quickcheck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	products map[string]domain.Product
	err      error
}

func (s *stubReader) GetByCode(_ context.Context, code string) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.products[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func newReader(products ...domain.Product) *stubReader {
	r := &stubReader{products: map[string]domain.Product{}}
	for _, p := range products {
		r.products[p.Code] = p
	}
	return r
}

func TestGenerate_CanonicalURL(t *testing.T) {
	gen, err := New(newReader(domain.Product{Code: "BC001", Status: domain.StatusShipped}), "https://example.com")
	require.NoError(t, err)

	link, err := gen.Generate(context.Background(), "BC001")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/status/BC001", link.URL)
	assert.Equal(t, "BC001", link.Code)
	assert.Equal(t, domain.StatusShipped, link.Status)

	img, err := png.Decode(bytes.NewReader(link.PNG))
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.True(t, strings.HasPrefix(link.DataURL(), "data:image/png;base64,"))
}

func TestGenerate_NotFoundLeavesStoreUntouched(t *testing.T) {
	reader := newReader(domain.Product{Code: "BC001", Status: domain.StatusShipped})
	gen, err := New(reader, "https://example.com")
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "BC999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, reader.products, 1)
}

func TestGenerate_LongestCodeFits(t *testing.T) {
	// every byte path-escapes to three, the worst case for the payload
	code := strings.Repeat("/", domain.MaxCodeLength)
	require.NoError(t, domain.ValidateCode(code))
	gen, err := New(newReader(domain.Product{Code: code, Status: domain.StatusProcessing}), "https://status.example.com")
	require.NoError(t, err)

	link, err := gen.Generate(context.Background(), code)
	require.NoError(t, err)
	assert.Len(t, link.URL, len("https://status.example.com/status/")+3*domain.MaxCodeLength)
	_, err = png.Decode(bytes.NewReader(link.PNG))
	require.NoError(t, err)
}

func TestGenerate_StoreError(t *testing.T) {
	gen, err := New(&stubReader{err: errors.New("db down")}, "https://example.com")
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "BC001")
	assert.EqualError(t, err, "db down")
}

func TestStatusURL_EscapesPathSegment(t *testing.T) {
	gen, err := New(newReader(), "http://localhost:8081/")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8081", gen.BaseURL())
	assert.Equal(t, "http://localhost:8081/status/BC-01", gen.StatusURL("BC-01"))
	assert.Equal(t, "http://localhost:8081/status/A%2FB%20C", gen.StatusURL("A/B C"))
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8081", "ftp://example.com", "/relative", "http://"} {
		_, err := New(newReader(), raw)
		assert.Error(t, err, "base url %q", raw)
	}
}
