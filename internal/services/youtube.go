package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	types "github.com/yungbote/coursetube-backend/internal/domain"
	xerrors "github.com/yungbote/coursetube-backend/internal/pkg/errors"
	"github.com/yungbote/coursetube-backend/internal/pkg/httpx"
	"github.com/yungbote/coursetube-backend/internal/platform/apierr"
	"github.com/yungbote/coursetube-backend/internal/platform/envutil"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

const playlistPageSize = 50

// PlaylistDetails is the metadata half of an ingestion: everything about the
// playlist itself, before any items are fetched.
type PlaylistDetails struct {
	Title        string
	Description  string
	ThumbnailURL string
}

type YouTubeClient interface {
	ResolvePlaylistID(rawURL string) (string, error)
	GetPlaylistDetails(ctx context.Context, playlistID string) (*PlaylistDetails, error)
	// GetPlaylistVideos pages through every playlist item, preserving the
	// provider's order across pages. Any malformed item fails the whole
	// fetch; a partial playlist is worse than none.
	GetPlaylistVideos(ctx context.Context, playlistID string) ([]types.Video, error)
}

type YouTubeConfig struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

type youtubeClient struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
}

func NewYouTubeClient(log *logger.Logger) (YouTubeClient, error) {
	apiKey := envutil.String("YOUTUBE_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("missing YOUTUBE_API_KEY")
	}
	return NewYouTubeClientFromConfig(log, YouTubeConfig{
		APIKey:     apiKey,
		BaseURL:    envutil.String("YOUTUBE_API_BASE", "https://www.googleapis.com/youtube/v3"),
		Timeout:    time.Duration(envutil.Int("YOUTUBE_TIMEOUT_SECONDS", 15)) * time.Second,
		MaxRetries: envutil.Int("YOUTUBE_MAX_RETRIES", 3),
	})
}

func NewYouTubeClientFromConfig(log *logger.Logger, cfg YouTubeConfig) (YouTubeClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("youtube api key required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.googleapis.com/youtube/v3"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &youtubeClient{
		log:        log.With("service", "YouTubeClient"),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxRetries: cfg.MaxRetries,
	}, nil
}

// NewDisabledYouTubeClient stands in when no API key is configured. Every
// call fails the same way, so ingestion reports a clear error instead of
// dereferencing a nil client.
func NewDisabledYouTubeClient() YouTubeClient { return disabledYouTubeClient{} }

type disabledYouTubeClient struct{}

func (disabledYouTubeClient) err() error {
	return fmt.Errorf("youtube api key not configured: %w", xerrors.ErrUpstream)
}

func (d disabledYouTubeClient) ResolvePlaylistID(string) (string, error) { return "", d.err() }

func (d disabledYouTubeClient) GetPlaylistDetails(context.Context, string) (*PlaylistDetails, error) {
	return nil, d.err()
}

func (d disabledYouTubeClient) GetPlaylistVideos(context.Context, string) ([]types.Video, error) {
	return nil, d.err()
}

// ResolvePlaylistID extracts the value of the list= query parameter,
// terminated by the next & or end of string.
func (c *youtubeClient) ResolvePlaylistID(rawURL string) (string, error) {
	idx := strings.Index(rawURL, "list=")
	if idx < 0 {
		return "", fmt.Errorf("no list= parameter in playlist URL: %w", xerrors.ErrInvalidArgument)
	}
	id := rawURL[idx+len("list="):]
	if amp := strings.IndexByte(id, '&'); amp >= 0 {
		id = id[:amp]
	}
	if id == "" {
		return "", fmt.Errorf("empty list= parameter in playlist URL: %w", xerrors.ErrInvalidArgument)
	}
	return id, nil
}

type ytThumbnail struct {
	URL string `json:"url"`
}

type ytThumbnails struct {
	High    *ytThumbnail `json:"high"`
	Default *ytThumbnail `json:"default"`
}

// pickThumbnail prefers the high resolution variant, falls back to default,
// and resolves to "" when neither is present.
func pickThumbnail(t ytThumbnails) string {
	if t.High != nil && t.High.URL != "" {
		return t.High.URL
	}
	if t.Default != nil {
		return t.Default.URL
	}
	return ""
}

type ytPlaylistSnippet struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Thumbnails  ytThumbnails `json:"thumbnails"`
}

type ytPlaylistsResponse struct {
	Items []struct {
		Snippet ytPlaylistSnippet `json:"snippet"`
	} `json:"items"`
}

func (c *youtubeClient) GetPlaylistDetails(ctx context.Context, playlistID string) (*PlaylistDetails, error) {
	q := url.Values{}
	q.Set("part", "snippet,contentDetails")
	q.Set("id", playlistID)
	q.Set("key", c.apiKey)

	var out ytPlaylistsResponse
	if err := c.getJSON(ctx, "/playlists", q, &out); err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("playlist %q: %w", playlistID, xerrors.ErrNotFound)
	}
	sn := out.Items[0].Snippet
	return &PlaylistDetails{
		Title:        sn.Title,
		Description:  sn.Description,
		ThumbnailURL: pickThumbnail(sn.Thumbnails),
	}, nil
}

type ytPlaylistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			Title       string       `json:"title"`
			Description string       `json:"description"`
			PublishedAt string       `json:"publishedAt"`
			Thumbnails  ytThumbnails `json:"thumbnails"`
			ResourceID  struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

func (c *youtubeClient) GetPlaylistVideos(ctx context.Context, playlistID string) ([]types.Video, error) {
	var videos []types.Video
	pageToken := ""
	for page := 0; ; page++ {
		q := url.Values{}
		q.Set("part", "snippet,contentDetails")
		q.Set("playlistId", playlistID)
		q.Set("maxResults", strconv.Itoa(playlistPageSize))
		q.Set("key", c.apiKey)
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var resp ytPlaylistItemsResponse
		if err := c.getJSON(ctx, "/playlistItems", q, &resp); err != nil {
			return nil, fmt.Errorf("playlist items page %d: %w", page, err)
		}

		for i, item := range resp.Items {
			sn := item.Snippet
			if sn.ResourceID.VideoID == "" || sn.Title == "" || sn.PublishedAt == "" {
				return nil, fmt.Errorf("playlist item %d on page %d is missing snippet fields: %w", i, page, xerrors.ErrUpstream)
			}
			videos = append(videos, types.Video{
				ID:           sn.ResourceID.VideoID,
				Title:        sn.Title,
				Description:  sn.Description,
				ThumbnailURL: pickThumbnail(sn.Thumbnails),
				PublishedAt:  sn.PublishedAt,
			})
		}

		if resp.NextPageToken == "" {
			return videos, nil
		}
		pageToken = resp.NextPageToken
	}
}

// getJSON performs one API call with bounded retries. Page fetches are
// read-only, so retrying a page is always safe.
func (c *youtubeClient) getJSON(ctx context.Context, path string, q url.Values, out interface{}) error {
	u := c.baseURL + path + "?" + q.Encode()

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := httpx.JitterSleep(time.Duration(attempt) * 500 * time.Millisecond)
			select {
			case <-ctx.Done():
				return fmt.Errorf("youtube request canceled: %w", ctx.Err())
			case <-time.After(backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return fmt.Errorf("build youtube request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("youtube request failed: %w", err)
			if httpx.IsRetryableError(err) {
				continue
			}
			return fmt.Errorf("%w: %w", xerrors.ErrUpstream, lastErr)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			lastErr = apierr.New(resp.StatusCode, "youtube_non_2xx",
				fmt.Errorf("youtube api status %d for %s: %w", resp.StatusCode, path, xerrors.ErrUpstream))
			if httpx.IsRetryableHTTPStatus(resp.StatusCode) {
				continue
			}
			return lastErr
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			resp.Body.Close()
			return fmt.Errorf("decode youtube response for %s: %w: %w", path, xerrors.ErrUpstream, err)
		}
		resp.Body.Close()
		return nil
	}
	if lastErr != nil && !errors.Is(lastErr, xerrors.ErrUpstream) {
		lastErr = fmt.Errorf("%w: %w", xerrors.ErrUpstream, lastErr)
	}
	return lastErr
}
