package qrlink

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"quickcheck/internal/domain"
	"quickcheck/internal/qrcode"
)

type productReader interface {
	GetByCode(ctx context.Context, code string) (*domain.Product, error)
}

// Link is a minted QR pointer to a product's public status page.
// Status is a snapshot taken at generation time; the QR payload is URL only.
type Link struct {
	Code   string
	Status domain.Status
	URL    string
	PNG    []byte
}

// DataURL returns the PNG as a data: URL.
func (l *Link) DataURL() string {
	return qrcode.DataURL(l.PNG)
}

// Generator mints QR links for existing products only.
type Generator struct {
	repo    productReader
	baseURL string
	opts    qrcode.Options
}

// New validates baseURL, which must be an absolute http(s) URL.
func New(repo productReader, baseURL string) (*Generator, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Generator{repo: repo, baseURL: base, opts: qrcode.DefaultOptions()}, nil
}

// BaseURL is the configured public origin links are built on.
func (g *Generator) BaseURL() string {
	return g.baseURL
}

// StatusURL builds the canonical status page URL for code.
func (g *Generator) StatusURL(code string) string {
	return g.baseURL + "/status/" + url.PathEscape(code)
}

// Generate looks up code and renders its status URL. It never creates a
// product; a missing code yields domain.ErrNotFound.
func (g *Generator) Generate(ctx context.Context, code string) (*Link, error) {
	p, err := g.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	link := g.StatusURL(p.Code)
	img, err := qrcode.PNG(link, g.opts)
	if err != nil {
		return nil, fmt.Errorf("render qr for %q: %w", p.Code, err)
	}
	return &Link{Code: p.Code, Status: p.Status, URL: link, PNG: img}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("qr base url %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("qr base url %q: must be an absolute http(s) URL", raw)
	}
	return raw, nil
}
