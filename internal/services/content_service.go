package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// InlineContentPrefix marks a content reference that carries the text itself
// instead of pointing at the upload CDN.
const InlineContentPrefix = "data:text/plain;base64,"

var (
	ErrContentEmpty          = errors.New("content is required")
	ErrContentRefInvalid     = errors.New("invalid content reference")
	ErrContentHostNotAllowed = errors.New("content host is not allowed")
	ErrContentUnavailable    = errors.New("content could not be fetched")
	ErrContentTooLarge       = errors.New("content exceeds size limit")
)

const defaultContentMaxBytes = 2 * 1024 * 1024

// ContentService encodes inline content references and resolves any content
// reference back to plain text.
type ContentService struct {
	allowedHosts []string
	timeout      time.Duration
	maxBytes     int
}

// NewContentService limits fetched content to maxBytes; zero or less selects
// the 2 MiB default.
func NewContentService(allowedHosts []string, timeout time.Duration, maxBytes int) *ContentService {
	hosts := make([]string, 0, len(allowedHosts))
	for _, h := range allowedHosts {
		hosts = append(hosts, strings.ToLower(strings.TrimSpace(h)))
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if maxBytes <= 0 {
		maxBytes = defaultContentMaxBytes
	}
	return &ContentService{allowedHosts: hosts, timeout: timeout, maxBytes: maxBytes}
}

// EncodeInline returns the data URL fallback for text that bypasses the CDN.
func (s *ContentService) EncodeInline(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrContentEmpty
	}
	return InlineContentPrefix + base64.StdEncoding.EncodeToString([]byte(text)), nil
}

// Resolve returns the text behind a content reference.
func (s *ContentService) Resolve(ctx context.Context, ref string) (string, error) {
	if strings.HasPrefix(ref, InlineContentPrefix) {
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(ref, InlineContentPrefix))
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrContentRefInvalid, err)
		}
		return string(raw), nil
	}

	u, err := url.Parse(ref)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return "", ErrContentRefInvalid
	}
	if !s.hostAllowed(u.Hostname()) {
		return "", ErrContentHostNotAllowed
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	agent := fiber.Get(u.String()).Timeout(s.timeout)
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return "", fmt.Errorf("%w: %w", ErrContentRefInvalid, err)
	}
	// fasthttp stops reading once the body passes the limit
	agent.MaxResponseBodySize = s.maxBytes
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		err := errors.Join(errs...)
		if errors.Is(err, fasthttp.ErrBodyTooLarge) {
			return "", fmt.Errorf("%w: %w", ErrContentTooLarge, err)
		}
		return "", fmt.Errorf("%w: %w", ErrContentUnavailable, err)
	}
	if len(body) > s.maxBytes {
		return "", ErrContentTooLarge
	}
	if code != fiber.StatusOK {
		return "", fmt.Errorf("%w: upstream status %d", ErrContentUnavailable, code)
	}
	return string(body), nil
}

func (s *ContentService) hostAllowed(host string) bool {
	host = strings.ToLower(host)
	for _, allowed := range s.allowedHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}
