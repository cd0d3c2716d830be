package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bgnclinic/blog-automation/internal/domain/entities"
	"github.com/bgnclinic/blog-automation/internal/domain/repositories"
	"github.com/bgnclinic/blog-automation/internal/infrastructure/cache"
	"github.com/bgnclinic/blog-automation/internal/infrastructure/external/openai"
	"github.com/bgnclinic/blog-automation/internal/infrastructure/external/sheets"
	"github.com/bgnclinic/blog-automation/internal/infrastructure/external/wordpress"
	"github.com/bgnclinic/blog-automation/internal/infrastructure/storage"
	"github.com/bgnclinic/blog-automation/internal/usecase/analyzer"
	"github.com/bgnclinic/blog-automation/internal/usecase/content"
	usecaseErrors "github.com/bgnclinic/blog-automation/internal/usecase/errors"
)

const factCachePrefix = "interview:fact:"

// RunOptions controls which optional pipeline stages execute
type RunOptions struct {
	GenerateImages bool
	Publish        bool
	Status         string
}

// RunResult is the outcome of a full pipeline run
type RunResult struct {
	Fact      *entities.InterviewFact    `json:"fact"`
	Content   *entities.GeneratedContent `json:"content"`
	ImageURLs []string                   `json:"image_urls"`
	Published bool                       `json:"published"`
}

// Service orchestrates the interview-to-blog pipeline. The OpenAI,
// WordPress, Sheets and storage collaborators are optional: a nil
// collaborator means that stage is skipped and the pipeline degrades
// to its deterministic template output.
type Service struct {
	extractor *analyzer.Extractor
	assembler *content.Assembler

	facts    repositories.InterviewFactRepository
	contents repositories.GeneratedContentRepository
	store    cache.Store
	cacheTTL time.Duration

	ai      *openai.Client
	wp      *wordpress.Client
	tracker *sheets.Client
	mirror  *storage.MinIOClient

	http   *http.Client
	logger *zap.Logger
}

// NewService creates the pipeline service
func NewService(
	extractor *analyzer.Extractor,
	assembler *content.Assembler,
	facts repositories.InterviewFactRepository,
	contents repositories.GeneratedContentRepository,
	store cache.Store,
	cacheTTL time.Duration,
	ai *openai.Client,
	wp *wordpress.Client,
	tracker *sheets.Client,
	mirror *storage.MinIOClient,
	logger *zap.Logger,
) *Service {
	return &Service{
		extractor: extractor,
		assembler: assembler,
		facts:     facts,
		contents:  contents,
		store:     store,
		cacheTTL:  cacheTTL,
		ai:        ai,
		wp:        wp,
		tracker:   tracker,
		mirror:    mirror,
		http:      &http.Client{Timeout: 60 * time.Second},
		logger:    logger,
	}
}

// Analyze extracts a structured fact from interview text. Results are
// cached by source hash so re-submitting the same transcript is cheap.
// The optional AI pass supplements the pattern extraction with union
// merge semantics.
func (s *Service) Analyze(ctx context.Context, text string) (*entities.InterviewFact, error) {
	hash := sourceHash(text)

	if cached, ok := s.cachedFact(ctx, hash); ok {
		s.logger.Info("analysis cache hit", zap.String("source_hash", hash))
		return cached, nil
	}

	if s.facts != nil {
		existing, err := s.facts.GetBySourceHash(ctx, hash)
		if err != nil {
			s.logger.Warn("source hash lookup failed", zap.Error(err))
		} else if existing != nil {
			s.cacheFact(ctx, hash, existing)
			return existing, nil
		}
	}

	fact := s.extractor.Extract(text)
	fact.SourceHash = hash

	if s.ai != nil && fact.Metadata.ConfidenceScore > 0 {
		s.enhanceFact(ctx, text, fact)
	}

	if s.facts != nil {
		if err := s.facts.Create(ctx, fact); err != nil {
			return nil, fmt.Errorf("failed to store interview fact: %w", err)
		}
	}
	s.cacheFact(ctx, hash, fact)

	return fact, nil
}

// enhanceFact runs the AI supplement pass with retry. Failure is
// logged and swallowed, the pattern-based fact stands on its own.
func (s *Service) enhanceFact(ctx context.Context, text string, fact *entities.InterviewFact) {
	var enhancement *entities.Enhancement

	operation := func() error {
		var err error
		enhancement, err = s.ai.Enhance(ctx, text)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		s.logger.Warn("ai enhancement failed, keeping pattern result", zap.Error(err))
		return
	}

	fact.MergeEnhancement(enhancement)
	s.logger.Info("ai enhancement merged", zap.String("employee", fact.Employee.Name))
}

// Compose assembles a content package for an analyzed fact. When the
// AI draft fails or is unavailable the template body is used instead.
func (s *Service) Compose(ctx context.Context, factID uuid.UUID) (*entities.GeneratedContent, error) {
	fact, err := s.getFact(ctx, factID)
	if err != nil {
		return nil, err
	}

	body := ""
	if s.ai != nil {
		draft, err := s.ai.DraftArticle(ctx, fact)
		if err != nil {
			s.logger.Warn("ai draft failed, using template body", zap.Error(err))
		} else {
			body = draft
		}
	}

	pkg := s.assembler.Assemble(fact, body)

	if s.contents != nil {
		if err := s.contents.Create(ctx, pkg); err != nil {
			return nil, fmt.Errorf("failed to store content package: %w", err)
		}
	}

	return pkg, nil
}

// Illustrate generates the package's images and mirrors them into
// object storage when a mirror is configured. Individual prompt
// failures are skipped, the remaining images still publish.
func (s *Service) Illustrate(ctx context.Context, contentID uuid.UUID) ([]string, error) {
	if s.ai == nil {
		return nil, usecaseErrors.ErrImageFailed
	}

	pkg, err := s.getContent(ctx, contentID)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(pkg.ImagePrompts))
	for i, prompt := range pkg.ImagePrompts {
		url, err := s.ai.GenerateImage(ctx, prompt, openai.StyleMedicalClean)
		if err != nil {
			s.logger.Warn("image generation failed, skipping prompt",
				zap.Int("index", i), zap.Error(err))
			continue
		}

		if s.mirror != nil {
			if mirrored, err := s.mirrorImage(ctx, pkg.Slug, i, url); err != nil {
				s.logger.Warn("image mirror failed, keeping source url",
					zap.Int("index", i), zap.Error(err))
			} else {
				url = mirrored
			}
		}

		urls = append(urls, url)
	}

	pkg.ImageURLs = urls
	if s.contents != nil {
		if err := s.contents.Update(ctx, pkg); err != nil {
			return nil, fmt.Errorf("failed to store image urls: %w", err)
		}
	}

	return urls, nil
}

// mirrorImage copies a short-lived DALL-E result into MinIO
func (s *Service) mirrorImage(ctx context.Context, slug string, index int, url string) (string, error) {
	data, contentType, err := s.ai.FetchImage(ctx, url)
	if err != nil {
		return "", err
	}
	objectName := fmt.Sprintf("%s/%s_image_%d%s", slug, slug, index+1, extensionFor(contentType))
	return s.mirror.UploadImage(ctx, objectName, data, contentType)
}

// Publish pushes a content package to WordPress and appends the
// tracking row. Tracking failure does not fail the publish.
func (s *Service) Publish(ctx context.Context, contentID uuid.UUID, status string) (*entities.GeneratedContent, error) {
	if s.wp == nil {
		return nil, usecaseErrors.ErrPublisherUnavailable
	}

	pkg, err := s.getContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if pkg.IsPublished() {
		return nil, usecaseErrors.ErrAlreadyPublished
	}

	featuredID := 0
	for i, imageURL := range pkg.ImageURLs {
		data, contentType, err := s.fetchImage(ctx, imageURL)
		if err != nil {
			s.logger.Warn("image download for upload failed, skipping",
				zap.Int("index", i), zap.Error(err))
			continue
		}
		filename := fmt.Sprintf("%s_image_%d%s", pkg.Slug, i+1, extensionFor(contentType))
		altText := fmt.Sprintf("%s 이미지 %d", pkg.Title, i+1)

		media, err := s.wp.UploadMedia(ctx, filename, data, contentType, altText)
		if err != nil {
			s.logger.Warn("media upload failed, skipping image",
				zap.Int("index", i), zap.Error(err))
			continue
		}
		if featuredID == 0 {
			featuredID = media.ID
		}
	}

	post, err := s.wp.CreatePost(ctx, wordpress.PostRequest{
		Title:           pkg.Title,
		HTML:            pkg.ContentHTML,
		Excerpt:         pkg.MetaDescription,
		Slug:            pkg.Slug,
		Tags:            pkg.Tags,
		Status:          status,
		FeaturedMediaID: featuredID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrPublishFailed, err)
	}

	pkg.WPPostID = post.ID
	pkg.WPPostURL = post.URL
	pkg.WPEditURL = post.EditURL
	if status != "" {
		pkg.Status = status
	}

	if s.contents != nil {
		if err := s.contents.Update(ctx, pkg); err != nil {
			return nil, fmt.Errorf("failed to store publish result: %w", err)
		}
	}

	s.track(ctx, pkg)

	return pkg, nil
}

// track appends the sheet row, logging instead of failing
func (s *Service) track(ctx context.Context, pkg *entities.GeneratedContent) {
	if s.tracker == nil {
		return
	}

	fact, err := s.getFact(ctx, pkg.FactID)
	if err != nil {
		s.logger.Warn("tracking skipped, fact unavailable", zap.Error(err))
		return
	}
	if err := s.tracker.AppendTracking(ctx, fact, pkg); err != nil {
		s.logger.Warn("tracking sheet append failed", zap.Error(err))
	}
}

// Run executes the full pipeline for one interview text
func (s *Service) Run(ctx context.Context, text string, opts RunOptions) (*RunResult, error) {
	fact, err := s.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	pkg, err := s.Compose(ctx, fact.ID)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Fact:      fact,
		Content:   pkg,
		ImageURLs: []string{},
	}

	if opts.GenerateImages && s.ai != nil {
		urls, err := s.Illustrate(ctx, pkg.ID)
		if err != nil {
			s.logger.Warn("illustration stage failed, continuing", zap.Error(err))
		} else {
			result.ImageURLs = urls
			pkg.ImageURLs = urls
		}
	}

	if opts.Publish && s.wp != nil {
		published, err := s.Publish(ctx, pkg.ID, opts.Status)
		if err != nil {
			s.logger.Warn("publish stage failed, draft remains local", zap.Error(err))
		} else {
			result.Content = published
			result.Published = true
		}
	}

	return result, nil
}

// GetContent loads a stored content package
func (s *Service) GetContent(ctx context.Context, contentID uuid.UUID) (*entities.GeneratedContent, error) {
	return s.getContent(ctx, contentID)
}

// GetFact loads a stored interview fact
func (s *Service) GetFact(ctx context.Context, factID uuid.UUID) (*entities.InterviewFact, error) {
	return s.getFact(ctx, factID)
}

// ListFacts loads recent facts, optionally filtered by department
func (s *Service) ListFacts(ctx context.Context, department string, limit, offset int) ([]*entities.InterviewFact, error) {
	if s.facts == nil {
		return []*entities.InterviewFact{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if department != "" {
		return s.facts.ListByDepartment(ctx, department, limit, offset)
	}
	return s.facts.List(ctx, limit, offset)
}

func (s *Service) getFact(ctx context.Context, id uuid.UUID) (*entities.InterviewFact, error) {
	if s.facts == nil {
		return nil, usecaseErrors.ErrFactNotFound
	}
	fact, err := s.facts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fact == nil {
		return nil, usecaseErrors.ErrFactNotFound
	}
	return fact, nil
}

func (s *Service) getContent(ctx context.Context, id uuid.UUID) (*entities.GeneratedContent, error) {
	if s.contents == nil {
		return nil, usecaseErrors.ErrContentNotFound
	}
	pkg, err := s.contents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, usecaseErrors.ErrContentNotFound
	}
	return pkg, nil
}

func (s *Service) cachedFact(ctx context.Context, hash string) (*entities.InterviewFact, bool) {
	if s.store == nil {
		return nil, false
	}
	raw, ok := s.store.Get(ctx, factCachePrefix+hash)
	if !ok {
		return nil, false
	}
	var fact entities.InterviewFact
	if err := json.Unmarshal([]byte(raw), &fact); err != nil {
		s.logger.Warn("cached fact unreadable, dropping", zap.Error(err))
		s.store.Delete(ctx, factCachePrefix+hash)
		return nil, false
	}
	return &fact, true
}

func (s *Service) cacheFact(ctx context.Context, hash string, fact *entities.InterviewFact) {
	if s.store == nil {
		return
	}
	raw, err := json.Marshal(fact)
	if err != nil {
		return
	}
	s.store.Set(ctx, factCachePrefix+hash, string(raw), s.cacheTTL)
}

func (s *Service) fetchImage(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return data, contentType, nil
}

// sourceHash fingerprints normalized interview text
func sourceHash(text string) string {
	sum := sha256.Sum256([]byte(analyzer.Normalize(text)))
	return hex.EncodeToString(sum[:])
}

func extensionFor(contentType string) string {
	switch {
	case strings.Contains(contentType, "png"):
		return ".png"
	case strings.Contains(contentType, "webp"):
		return ".webp"
	default:
		return ".jpg"
	}
}
