package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bgnclinic/blog-automation/internal/domain/entities"
	"github.com/bgnclinic/blog-automation/internal/infrastructure/cache"
	"github.com/bgnclinic/blog-automation/internal/usecase/analyzer"
	"github.com/bgnclinic/blog-automation/internal/usecase/compliance"
	"github.com/bgnclinic/blog-automation/internal/usecase/content"
	usecaseErrors "github.com/bgnclinic/blog-automation/internal/usecase/errors"
	"github.com/bgnclinic/blog-automation/pkg/config"
)

type fakeFactRepo struct {
	byID   map[uuid.UUID]*entities.InterviewFact
	byHash map[string]*entities.InterviewFact
}

func newFakeFactRepo() *fakeFactRepo {
	return &fakeFactRepo{
		byID:   map[uuid.UUID]*entities.InterviewFact{},
		byHash: map[string]*entities.InterviewFact{},
	}
}

func (r *fakeFactRepo) Create(_ context.Context, fact *entities.InterviewFact) error {
	r.byID[fact.ID] = fact
	r.byHash[fact.SourceHash] = fact
	return nil
}

func (r *fakeFactRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.InterviewFact, error) {
	return r.byID[id], nil
}

func (r *fakeFactRepo) GetBySourceHash(_ context.Context, hash string) (*entities.InterviewFact, error) {
	return r.byHash[hash], nil
}

func (r *fakeFactRepo) List(_ context.Context, _, _ int) ([]*entities.InterviewFact, error) {
	facts := make([]*entities.InterviewFact, 0, len(r.byID))
	for _, f := range r.byID {
		facts = append(facts, f)
	}
	return facts, nil
}

func (r *fakeFactRepo) ListByDepartment(_ context.Context, department string, _, _ int) ([]*entities.InterviewFact, error) {
	facts := make([]*entities.InterviewFact, 0, len(r.byID))
	for _, f := range r.byID {
		if f.Employee.Department == department {
			facts = append(facts, f)
		}
	}
	return facts, nil
}

func (r *fakeFactRepo) Update(_ context.Context, fact *entities.InterviewFact) error {
	r.byID[fact.ID] = fact
	return nil
}

type fakeContentRepo struct {
	byID map[uuid.UUID]*entities.GeneratedContent
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{byID: map[uuid.UUID]*entities.GeneratedContent{}}
}

func (r *fakeContentRepo) Create(_ context.Context, c *entities.GeneratedContent) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeContentRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.GeneratedContent, error) {
	return r.byID[id], nil
}

func (r *fakeContentRepo) GetByFactID(_ context.Context, factID uuid.UUID) (*entities.GeneratedContent, error) {
	for _, c := range r.byID {
		if c.FactID == factID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeContentRepo) List(_ context.Context, _, _ int) ([]*entities.GeneratedContent, error) {
	contents := make([]*entities.GeneratedContent, 0, len(r.byID))
	for _, c := range r.byID {
		contents = append(contents, c)
	}
	return contents, nil
}

func (r *fakeContentRepo) Update(_ context.Context, c *entities.GeneratedContent) error {
	r.byID[c.ID] = c
	return nil
}

func newTestService(facts *fakeFactRepo, contents *fakeContentRepo) *Service {
	logger := zap.NewNop()
	cfg := config.AnalyzerConfig{
		MinTextLength:    10,
		FormalityRatio:   1.5,
		SkilledThreshold: 3,
		ExpertThreshold:  5,
	}
	return NewService(
		analyzer.NewExtractor(cfg, logger),
		content.NewAssembler(compliance.NewChecker(logger), logger),
		facts,
		contents,
		cache.NewMemoryStore(),
		time.Minute,
		nil, nil, nil, nil,
		logger,
	)
}

func TestAnalyze_StoresAndCaches(t *testing.T) {
	facts := newFakeFactRepo()
	svc := newTestService(facts, newFakeContentRepo())

	text := "저는 이예나 대리입니다. 홍보팀에서 10년째 근무하며 대학 제휴를 담당합니다."

	first, err := svc.Analyze(context.Background(), text)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.NotEmpty(t, first.SourceHash)
	assert.Len(t, facts.byID, 1)

	// Same text hits the cache, nothing new is stored
	second, err := svc.Analyze(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, facts.byID, 1)
}

func TestAnalyze_WhitespaceVariantsShareHash(t *testing.T) {
	facts := newFakeFactRepo()
	svc := newTestService(facts, newFakeContentRepo())

	first, err := svc.Analyze(context.Background(),
		"저는 이예나 대리입니다. 홍보팀에서 10년째 근무합니다.")
	require.NoError(t, err)

	second, err := svc.Analyze(context.Background(),
		"저는  이예나   대리입니다.\n홍보팀에서 10년째  근무합니다.")
	require.NoError(t, err)

	assert.Equal(t, first.SourceHash, second.SourceHash)
	assert.Len(t, facts.byID, 1)
}

func TestCompose_WithoutAIUsesTemplateBody(t *testing.T) {
	facts := newFakeFactRepo()
	contents := newFakeContentRepo()
	svc := newTestService(facts, contents)

	fact, err := svc.Analyze(context.Background(),
		"저는 이예나 대리입니다. 홍보팀에서 10년째 근무하며 대학 제휴를 담당합니다.")
	require.NoError(t, err)

	pkg, err := svc.Compose(context.Background(), fact.ID)
	require.NoError(t, err)
	assert.Equal(t, "대학생을 위한 시력교정술 완벽 가이드", pkg.Title)
	assert.NotEmpty(t, pkg.ContentMarkdown)
	assert.NotEmpty(t, pkg.ContentHTML)
	assert.Len(t, contents.byID, 1)
}

func TestCompose_UnknownFact(t *testing.T) {
	svc := newTestService(newFakeFactRepo(), newFakeContentRepo())

	_, err := svc.Compose(context.Background(), uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrFactNotFound)
}

func TestIllustrate_WithoutAIFails(t *testing.T) {
	svc := newTestService(newFakeFactRepo(), newFakeContentRepo())

	_, err := svc.Illustrate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrImageFailed)
}

func TestPublish_WithoutWordPressFails(t *testing.T) {
	svc := newTestService(newFakeFactRepo(), newFakeContentRepo())

	_, err := svc.Publish(context.Background(), uuid.New(), "draft")
	assert.ErrorIs(t, err, usecaseErrors.ErrPublisherUnavailable)
}

func TestRun_DegradesToLocalDraft(t *testing.T) {
	svc := newTestService(newFakeFactRepo(), newFakeContentRepo())

	result, err := svc.Run(context.Background(),
		"저는 이예나 대리입니다. 홍보팀에서 10년째 근무하며 대학 제휴를 담당합니다.",
		RunOptions{GenerateImages: true, Publish: true, Status: "draft"})
	require.NoError(t, err)

	assert.NotNil(t, result.Fact)
	assert.NotNil(t, result.Content)
	assert.False(t, result.Published)
	assert.Empty(t, result.ImageURLs)
	assert.NotEmpty(t, result.Content.ContentHTML)
}

func TestListFacts_FiltersByDepartment(t *testing.T) {
	facts := newFakeFactRepo()
	svc := newTestService(facts, newFakeContentRepo())

	_, err := svc.Analyze(context.Background(),
		"저는 이예나 대리입니다. 홍보팀에서 10년째 근무하며 대학 제휴를 담당합니다.")
	require.NoError(t, err)

	all, err := svc.ListFacts(context.Background(), "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	matched, err := svc.ListFacts(context.Background(), "홍보팀", 0, 0)
	require.NoError(t, err)
	assert.Len(t, matched, 1)

	none, err := svc.ListFacts(context.Background(), "간호팀", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRun_EmptyInputStillProducesDraft(t *testing.T) {
	svc := newTestService(newFakeFactRepo(), newFakeContentRepo())

	result, err := svc.Run(context.Background(), "", RunOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Content.Title)
	assert.NotEmpty(t, result.Content.Slug)
	assert.NotEmpty(t, result.Content.ContentHTML)
}
