package wordpress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/bgnclinic/blog-automation/pkg/config"
)

func newTestClient(url string) *Client {
	return NewClient(config.WordPressConfig{
		URL:             url,
		Username:        "editor",
		AppPassword:     "app-pass",
		DefaultCategory: "안과정보",
		DefaultStatus:   "draft",
		Timeout:         5 * time.Second,
	}, zap.NewNop())
}

func TestUploadMedia(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wp-json/wp/v2/media":
			if r.Method != http.MethodPost {
				t.Fatalf("expected POST got %s", r.Method)
			}
			if _, _, ok := r.BasicAuth(); !ok {
				t.Fatalf("missing basic auth")
			}
			if cd := r.Header.Get("Content-Disposition"); cd != `attachment; filename="cover.jpg"` {
				t.Fatalf("unexpected content disposition %q", cd)
			}
			json.NewEncoder(w).Encode(map[string]any{"id": 42, "source_url": "https://cdn.example.com/cover.jpg"})
		case "/wp-json/wp/v2/media/42":
			var payload map[string]string
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("invalid alt payload: %v", err)
			}
			if payload["alt_text"] != "대표 이미지" {
				t.Fatalf("unexpected alt text %q", payload["alt_text"])
			}
			json.NewEncoder(w).Encode(map[string]any{"id": 42})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	media, err := newTestClient(ts.URL).UploadMedia(
		context.Background(), "cover.jpg", []byte{0xff, 0xd8}, "image/jpeg", "대표 이미지")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if media.ID != 42 {
		t.Fatalf("unexpected media id %d", media.ID)
	}
	if media.SourceURL != "https://cdn.example.com/cover.jpg" {
		t.Fatalf("unexpected source url %s", media.SourceURL)
	}
}

func TestCreatePost_ResolvesTermsAndBuildsEditURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/wp-json/wp/v2/tags" && r.Method == http.MethodGet:
			// First tag already exists, second does not
			if r.URL.Query().Get("search") == "밝은눈안과" {
				json.NewEncoder(w).Encode([]map[string]any{{"id": 7, "name": "밝은눈안과"}})
				return
			}
			json.NewEncoder(w).Encode([]map[string]any{})
		case r.URL.Path == "/wp-json/wp/v2/tags" && r.Method == http.MethodPost:
			json.NewEncoder(w).Encode(map[string]any{"id": 8, "name": "대학생"})
		case r.URL.Path == "/wp-json/wp/v2/categories" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode([]map[string]any{{"id": 3, "name": "안과정보"}})
		case r.URL.Path == "/wp-json/wp/v2/posts":
			var payload map[string]any
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("invalid post payload: %v", err)
			}
			if payload["status"] != "draft" {
				t.Fatalf("expected default draft status, got %v", payload["status"])
			}
			if payload["slug"] != "college-student-vision-correction-guide" {
				t.Fatalf("unexpected slug %v", payload["slug"])
			}
			json.NewEncoder(w).Encode(map[string]any{"id": 101, "link": "https://blog.example.com/?p=101"})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer ts.Close()

	post, err := newTestClient(ts.URL).CreatePost(context.Background(), PostRequest{
		Title: "대학생을 위한 시력교정술 완벽 가이드",
		HTML:  "<h1>본문</h1>",
		Slug:  "college-student-vision-correction-guide",
		Tags:  []string{"밝은눈안과", "대학생"},
	})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if post.ID != 101 {
		t.Fatalf("unexpected post id %d", post.ID)
	}
	want := ts.URL + "/wp-admin/post.php?post=101&action=edit"
	if post.EditURL != want {
		t.Fatalf("unexpected edit url %s", post.EditURL)
	}
}
