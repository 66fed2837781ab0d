package upload

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/chatline/internal/logging"
)

// uploadResponse is the subset of the hosting service's JSON body we need.
type uploadResponse struct {
	URL string `json:"url"`
}

// attempt tracks one transmission. Its token ties the eventual resolution
// back to the selection that started it: a resolution whose attempt is no
// longer current is discarded, which is how "the latest selection wins".
type attempt struct {
	token uuid.UUID
	done  chan struct{}
	ref   string
	err   error
}

// Uploader transmits selected assets to the hosting endpoint. At most one
// attempt is current at any time; selecting again supersedes the previous
// attempt logically even while its request is still in flight.
type Uploader struct {
	rc        *resty.Client
	url       string
	preset    string
	namespace string
	log       logging.Logger

	mu  sync.Mutex
	cur *attempt
}

// New builds an Uploader for the given endpoint. preset and namespace are
// the two fixed identifying parameters the service expects alongside the
// file bytes; they are configuration, never user input. A zero timeout
// leaves the transport's own limits in effect.
func New(uploadURL, preset, namespace string, timeout time.Duration, log logging.Logger) *Uploader {
	rc := resty.New()
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	return &Uploader{
		rc:        rc,
		url:       uploadURL,
		preset:    preset,
		namespace: namespace,
		log:       log,
	}
}

// Select validates the asset and starts transmitting it in the background.
// A nil asset reports ErrMissingAsset; a disallowed media type reports
// ErrUnsupportedMediaType without touching the network. On success the new
// attempt becomes current immediately, superseding any in-flight one.
func (u *Uploader) Select(ctx context.Context, asset *Asset) error {
	if asset == nil {
		return ErrMissingAsset
	}
	if _, ok := allowedMediaTypes[asset.MediaType]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, asset.MediaType)
	}

	att := &attempt{token: uuid.New(), done: make(chan struct{})}

	u.mu.Lock()
	u.cur = att
	u.mu.Unlock()

	u.log.Debug(ctx, "image upload started", "attempt", att.token, "name", asset.Name)
	go u.transmit(ctx, att, asset)
	return nil
}

func (u *Uploader) transmit(ctx context.Context, att *attempt, asset *Asset) {
	ref, err := u.post(ctx, asset)

	u.mu.Lock()
	defer u.mu.Unlock()

	att.ref, att.err = ref, err
	close(att.done)

	if u.cur != att {
		u.log.Debug(ctx, "stale upload resolution discarded", "attempt", att.token)
	}
}

func (u *Uploader) post(ctx context.Context, asset *Asset) (string, error) {
	var res uploadResponse

	resp, err := u.rc.R().
		SetContext(ctx).
		SetFileReader("file", asset.Name, bytes.NewReader(asset.Data)).
		SetFormData(map[string]string{
			"upload_preset": u.preset,
			"cloud_name":    u.namespace,
		}).
		SetResult(&res).
		Post(u.url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: status %d", ErrUploadFailed, resp.StatusCode())
	}
	if res.URL == "" {
		return "", fmt.Errorf("%w: response carries no reference url", ErrUploadFailed)
	}
	return res.URL, nil
}

// Resolve blocks until the current attempt settles and returns its
// reference URL. If a newer selection supersedes the awaited attempt,
// Resolve moves on to the newest one. With no selection at all it returns
// ("", nil); whether that is acceptable is the caller's policy.
func (u *Uploader) Resolve(ctx context.Context) (string, error) {
	for {
		u.mu.Lock()
		att := u.cur
		u.mu.Unlock()

		if att == nil {
			return "", nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-att.done:
		}

		u.mu.Lock()
		if u.cur == att {
			ref, err := att.ref, att.err
			u.mu.Unlock()
			return ref, err
		}
		u.mu.Unlock()
		// superseded while waiting; go wait for the newer attempt
	}
}

// Reset drops all attempt state so the next sign-up starts with a fresh
// selection.
func (u *Uploader) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cur = nil
}
