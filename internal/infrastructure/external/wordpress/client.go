package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/bgnclinic/blog-automation/pkg/config"
)

// Media is an uploaded attachment
type Media struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
}

// PostRequest is the payload for creating a blog post
type PostRequest struct {
	Title           string
	HTML            string
	Excerpt         string
	Slug            string
	Tags            []string
	Category        string
	Status          string
	FeaturedMediaID int
}

// Post is a created blog post
type Post struct {
	ID      int    `json:"id"`
	URL     string `json:"link"`
	EditURL string `json:"-"`
}

type term struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Client publishes posts and media through the WordPress REST API
// using an application password
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
	cfg      config.WordPressConfig
	logger   *zap.Logger
}

// NewClient creates a new WordPress client
func NewClient(cfg config.WordPressConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		username: cfg.Username,
		password: cfg.AppPassword,
		http:     &http.Client{Timeout: cfg.Timeout},
		cfg:      cfg,
		logger:   logger,
	}
}

func (c *Client) apiURL(path string) string {
	return c.baseURL + "/wp-json/wp/v2" + path
}

// UploadMedia uploads image bytes and returns the attachment.
// When altText is set a follow-up update sets it on the attachment.
func (c *Client) UploadMedia(ctx context.Context, filename string, data []byte, contentType, altText string) (*Media, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL("/media"), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build media request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	var media Media
	if err := c.do(req, &media); err != nil {
		return nil, fmt.Errorf("media upload failed: %w", err)
	}

	if altText != "" {
		if err := c.postJSON(ctx, fmt.Sprintf("/media/%d", media.ID),
			map[string]any{"alt_text": altText}, nil); err != nil {
			c.logger.Warn("failed to set media alt text",
				zap.Int("media_id", media.ID), zap.Error(err))
		}
	}

	c.logger.Info("media uploaded to wordpress",
		zap.Int("media_id", media.ID), zap.String("filename", filename))

	return &media, nil
}

// CreatePost creates a post, resolving tag and category names to IDs
func (c *Client) CreatePost(ctx context.Context, post PostRequest) (*Post, error) {
	tagIDs := make([]int, 0, len(post.Tags))
	for _, tag := range post.Tags {
		id, err := c.ensureTerm(ctx, "tags", tag)
		if err != nil {
			c.logger.Warn("failed to resolve tag, skipping",
				zap.String("tag", tag), zap.Error(err))
			continue
		}
		tagIDs = append(tagIDs, id)
	}

	category := post.Category
	if category == "" {
		category = c.cfg.DefaultCategory
	}
	categoryIDs := []int{}
	if category != "" {
		if id, err := c.ensureTerm(ctx, "categories", category); err == nil {
			categoryIDs = append(categoryIDs, id)
		} else {
			c.logger.Warn("failed to resolve category, posting without one",
				zap.String("category", category), zap.Error(err))
		}
	}

	status := post.Status
	if status == "" {
		status = c.cfg.DefaultStatus
	}

	payload := map[string]any{
		"title":      post.Title,
		"content":    post.HTML,
		"excerpt":    post.Excerpt,
		"slug":       post.Slug,
		"status":     status,
		"tags":       tagIDs,
		"categories": categoryIDs,
	}
	if post.FeaturedMediaID > 0 {
		payload["featured_media"] = post.FeaturedMediaID
	}

	var created Post
	if err := c.postJSON(ctx, "/posts", payload, &created); err != nil {
		return nil, fmt.Errorf("post creation failed: %w", err)
	}
	created.EditURL = fmt.Sprintf("%s/wp-admin/post.php?post=%d&action=edit", c.baseURL, created.ID)

	c.logger.Info("wordpress post created",
		zap.Int("post_id", created.ID),
		zap.String("status", status),
		zap.String("url", created.URL))

	return &created, nil
}

// ensureTerm finds a tag or category by exact name, creating it if absent
func (c *Client) ensureTerm(ctx context.Context, taxonomy, name string) (int, error) {
	search := c.apiURL("/" + taxonomy + "?search=" + url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, search, nil)
	if err != nil {
		return 0, err
	}
	req.SetBasicAuth(c.username, c.password)

	var terms []term
	if err := c.do(req, &terms); err != nil {
		return 0, err
	}
	for _, t := range terms {
		if t.Name == name {
			return t.ID, nil
		}
	}

	var created term
	if err := c.postJSON(ctx, "/"+taxonomy, map[string]any{"name": name}, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL(path), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("wordpress returned status %d: %s", resp.StatusCode, string(body))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
