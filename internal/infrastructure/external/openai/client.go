package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	gopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/bgnclinic/blog-automation/internal/domain/entities"
	"github.com/bgnclinic/blog-automation/pkg/config"
)

// Image prompt styles
const (
	StyleMedicalClean = "medical_clean"
	StyleInfographic  = "infographic"
	StyleEquipment    = "equipment"
)

var styleSuffixes = map[string]string{
	StyleMedicalClean: "clean medical illustration, professional healthcare setting, soft lighting, modern hospital environment, no people faces visible, hygienic sterile appearance",
	StyleInfographic:  "medical infographic style, clean icons, pastel colors, educational diagram, simple clear visual elements",
	StyleEquipment:    "modern medical equipment photography, clean white background, professional lighting",
}

const clinicStyleSuffix = "subtle blue and white color scheme, professional medical aesthetic, Korean hospital standard"

// Client wraps the OpenAI API for interview enhancement, article
// drafting and DALL-E image generation
type Client struct {
	client *gopenai.Client
	http   *http.Client
	cfg    config.OpenAIConfig
	logger *zap.Logger
}

// NewClient creates a new OpenAI client
func NewClient(cfg config.OpenAIConfig, logger *zap.Logger) *Client {
	return &Client{
		client: gopenai.NewClient(cfg.APIKey),
		http:   &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
		logger: logger,
	}
}

const enhanceSystemPrompt = `당신은 안과 병원 직원 인터뷰 분석 전문가입니다.
인터뷰 원문에서 패턴 매칭이 놓친 정보를 보완해 주세요.
아래 JSON 형식으로만 답변하세요. 설명 문장은 포함하지 마세요.
{
  "employee": {"name": "", "position": "", "department": "", "experience_years": 0, "specialty_areas": []},
  "personality": {"tone_style": "", "frequent_expressions": [], "communication_style": "", "personality_keywords": []},
  "customer_insights": {"frequent_questions": [], "customer_feedback": [], "target_demographics": []},
  "hospital_strengths": {"competitive_advantages": [], "unique_services": []}
}`

// Enhance asks the chat model to supplement a pattern-based extraction.
// The response must be the JSON shape of entities.Enhancement.
func (c *Client) Enhance(ctx context.Context, interviewText string) (*entities.Enhancement, error) {
	resp, err := c.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model:       c.cfg.ChatModel,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: enhanceSystemPrompt},
			{Role: gopenai.ChatMessageRoleUser, Content: interviewText},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("enhancement request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("enhancement returned no choices")
	}

	payload := stripCodeFence(resp.Choices[0].Message.Content)

	var enhancement entities.Enhancement
	if err := json.Unmarshal([]byte(payload), &enhancement); err != nil {
		return nil, fmt.Errorf("failed to parse enhancement response: %w", err)
	}

	return &enhancement, nil
}

// DraftArticle asks the chat model for a markdown blog draft grounded
// in the extracted fact. Only markdown the assembler understands is
// requested: #/##/### headings, bold, blank-line paragraphs.
func (c *Client) DraftArticle(ctx context.Context, fact *entities.InterviewFact) (string, error) {
	var sb strings.Builder
	sb.WriteString("다음 직원 인터뷰 분석 결과를 바탕으로 안과 블로그 글을 작성해 주세요.\n")
	sb.WriteString("마크다운 형식(#, ##, ### 제목과 **강조**, 빈 줄로 구분된 문단)만 사용하세요.\n")
	sb.WriteString("의료광고법에 따라 과장 표현(100% 성공, 완치, 부작용 없는 등)은 쓰지 마세요.\n\n")

	if fact.Employee.Name != "" {
		fmt.Fprintf(&sb, "담당 직원: %s %s (%s)\n",
			fact.Employee.Name, fact.Employee.Position, fact.Employee.Department)
	}
	if len(fact.Employee.SpecialtyAreas) > 0 {
		fmt.Fprintf(&sb, "전문 분야: %s\n", strings.Join(fact.Employee.SpecialtyAreas, ", "))
	}
	if len(fact.Knowledge.Procedures) > 0 {
		fmt.Fprintf(&sb, "관련 시술: %s\n", strings.Join(fact.Knowledge.Procedures, ", "))
	}
	if fact.Personality.ToneStyle != "" {
		fmt.Fprintf(&sb, "문체 톤: %s\n", fact.Personality.ToneStyle)
	}
	if len(fact.CustomerInsights.TargetDemographics) > 0 {
		fmt.Fprintf(&sb, "주요 고객층: %s\n", strings.Join(fact.CustomerInsights.TargetDemographics, ", "))
	}

	resp, err := c.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model:       c.cfg.ChatModel,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleUser, Content: sb.String()},
		},
	})
	if err != nil {
		return "", fmt.Errorf("article draft request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("article draft returned no choices")
	}

	return stripCodeFence(resp.Choices[0].Message.Content), nil
}

// GenerateImage creates one DALL-E image and returns its URL.
// The returned URL expires quickly, callers should mirror it.
func (c *Client) GenerateImage(ctx context.Context, prompt, style string) (string, error) {
	resp, err := c.client.CreateImage(ctx, gopenai.ImageRequest{
		Model:   c.cfg.ImageModel,
		Prompt:  enhancePrompt(prompt, style),
		Size:    c.cfg.ImageSize,
		Quality: c.cfg.ImageQuality,
		N:       1,
	})
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("image generation returned no data")
	}

	return resp.Data[0].URL, nil
}

// FetchImage downloads generated image bytes from a result URL
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	return data, contentType, nil
}

// enhancePrompt appends the style and clinic suffixes to a base prompt
func enhancePrompt(prompt, style string) string {
	suffix, ok := styleSuffixes[style]
	if !ok {
		suffix = styleSuffixes[StyleMedicalClean]
	}
	return fmt.Sprintf("%s, %s, %s, high quality, professional", prompt, suffix, clinicStyleSuffix)
}

// stripCodeFence removes a wrapping markdown code fence if present
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
