package course

// Video is a playlist entry as fetched from the provider. Videos are
// immutable and live only inside a Course's ordered video list; they are
// never persisted on their own.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     string `json:"duration,omitempty"`
	PublishedAt  string `json:"published_at"`
}
