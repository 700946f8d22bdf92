package gvision

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

var ErrNoCredentials = errors.New("gvision: credentials path, credentials JSON or API key is required")

// Client wraps the Cloud Vision images:annotate API for label detection.
type Client struct {
	service    *vision.Service
	maxResults int64
	cfg        Config
}

// NewClient creates a Vision client from cfg.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	opts, err := clientOptions(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gvision: failed to create vision service: %w", err)
	}

	return &Client{service: svc, maxResults: cfg.MaxResults, cfg: cfg}, nil
}

func clientOptions(ctx context.Context, cfg Config) ([]option.ClientOption, error) {
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	switch {
	case cfg.HTTPClient != nil:
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	case len(cfg.CredentialsJSON) > 0:
		creds, err := google.CredentialsFromJSON(ctx, cfg.CredentialsJSON, vision.CloudVisionScope)
		if err != nil {
			return nil, fmt.Errorf("gvision: failed to parse credentials: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	case cfg.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	default:
		return nil, ErrNoCredentials
	}

	return opts, nil
}

// DetectLabels runs label detection on image and returns labels sorted by
// descending score.
func (c *Client) DetectLabels(ctx context.Context, image []byte) ([]Label, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{
			{
				Image: &vision.Image{Content: base64.StdEncoding.EncodeToString(image)},
				Features: []*vision.Feature{
					{Type: featureLabelDetection, MaxResults: c.maxResults},
				},
			},
		},
	}

	resp, err := c.service.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gvision: annotate request failed: %w", err)
	}
	if len(resp.Responses) == 0 {
		return nil, nil
	}

	res := resp.Responses[0]
	if res.Error != nil && res.Error.Message != "" {
		return nil, &APIError{Code: res.Error.Code, Message: res.Error.Message}
	}

	labels := make([]Label, 0, len(res.LabelAnnotations))
	for _, ann := range res.LabelAnnotations {
		labels = append(labels, Label{Description: ann.Description, Score: ann.Score})
	}
	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].Score > labels[j].Score
	})

	return labels, nil
}
