package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

// BlobFetcher reads stored document bytes for multipart attachment.
type BlobFetcher interface {
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}

// Client posts assembled payloads to the financing partner endpoint. A call
// is a single attempt: no retries, no automatic timeout beyond the HTTP
// client's own.
type Client struct {
	endpoint string
	bucket   string
	http     *http.Client
	blobs    BlobFetcher
}

// NewClient creates a Client for the given partner endpoint. Attachment
// bytes are fetched from the bucket the wizard uploaded them to.
func NewClient(endpoint, bucket string, timeout time.Duration, blobs BlobFetcher) *Client {
	return &Client{
		endpoint: endpoint,
		bucket:   bucket,
		http:     &http.Client{Timeout: timeout},
		blobs:    blobs,
	}
}

// Submit delivers the payload in the shape its kind requires. Any non-2xx
// response is a submission failure carrying the partner's reason when the
// body has one.
func (c *Client) Submit(ctx context.Context, payload *Payload) error {
	var req *http.Request
	var err error

	switch payload.Kind {
	case PayloadJSON:
		req, err = c.jsonRequest(ctx, payload)
	case PayloadMultipart:
		req, err = c.multipartRequest(ctx, payload)
	default:
		return domain.ErrInvalidOption
	}
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("submit.Client: partner returned %d: %s", resp.StatusCode, body)
		if len(body) > 0 {
			return fmt.Errorf("%w: %s", domain.ErrSubmissionFailed, body)
		}
		return domain.ErrSubmissionFailed
	}
	return nil
}

func (c *Client) jsonRequest(ctx context.Context, payload *Payload) (*http.Request, error) {
	body, err := json.Marshal(payload.JSON)
	if err != nil {
		return nil, fmt.Errorf("marshaling submission body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) multipartRequest(ctx context.Context, payload *Payload) (*http.Request, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range payload.Fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("writing field %s: %w", name, err)
		}
	}

	for _, att := range payload.Attachments {
		data, err := c.blobs.Download(ctx, c.bucket, att.Ref.StorageKey)
		if err != nil {
			return nil, fmt.Errorf("fetching attachment %s: %w", att.FieldName, err)
		}
		part, err := w.CreateFormFile(att.FieldName, att.Ref.OriginalName)
		if err != nil {
			return nil, fmt.Errorf("creating form file %s: %w", att.FieldName, err)
		}
		if _, err := part.Write(data); err != nil {
			return nil, fmt.Errorf("writing attachment %s: %w", att.FieldName, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("building submission request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req, nil
}
