package sheets

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/bgnclinic/blog-automation/internal/domain/entities"
	"github.com/bgnclinic/blog-automation/pkg/config"
)

// trackingHeaders is the fixed header row of the tracking worksheet
var trackingHeaders = []string{
	"series", "title", "primary_keyword", "secondary_keywords", "tone_context",
	"slug", "meta_description", "tags",
	"image_prompt_1", "image_prompt_2", "image_prompt_3",
	"alt_text_1", "alt_text_2", "alt_text_3",
	"featured_image_filename", "image_filenames", "internal_links_titles",
	"status", "medical_ad_compliance_check", "content_structure",
	"faq_section", "publish_schedule", "target_audience", "cta_button",
	"related_procedures", "wp_post_id", "wp_post_url", "wp_edit_url",
	"created_date", "updated_date", "employee_name",
	"seo_score", "medical_compliance_score",
}

const seriesName = "직원 인터뷰"

// Client appends content tracking rows to a Google Sheets worksheet,
// creating the worksheet with its header row on first use
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
	logger        *zap.Logger
}

// NewClient creates a sheets client from a service account credentials file
func NewClient(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	client := &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.WorksheetName,
		logger:        logger,
	}

	if err := client.ensureWorksheet(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare tracking worksheet: %w", err)
	}

	return client, nil
}

// ensureWorksheet creates the tracking sheet and header row if absent
func (c *Client) ensureWorksheet(ctx context.Context) error {
	spreadsheet, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == c.worksheet {
			return nil
		}
	}

	_, err = c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: c.worksheet},
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to create worksheet: %w", err)
	}

	header := make([]interface{}, len(trackingHeaders))
	for i, h := range trackingHeaders {
		header[i] = h
	}
	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, c.worksheet+"!A1",
		&sheets.ValueRange{Values: [][]interface{}{header}}).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	c.logger.Info("tracking worksheet created", zap.String("worksheet", c.worksheet))
	return nil
}

// AppendTracking appends one row for an assembled content package
func (c *Client) AppendTracking(ctx context.Context, fact *entities.InterviewFact, content *entities.GeneratedContent) error {
	row := buildRow(fact, content)

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.worksheet+"!A1",
		&sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append tracking row: %w", err)
	}

	c.logger.Info("tracking row appended",
		zap.String("title", content.Title),
		zap.String("worksheet", c.worksheet))
	return nil
}

func buildRow(fact *entities.InterviewFact, content *entities.GeneratedContent) []interface{} {
	prompt := func(i int) string {
		if i < len(content.ImagePrompts) {
			return content.ImagePrompts[i]
		}
		return ""
	}
	altText := func(i int) string {
		return fmt.Sprintf("%s 이미지 %d", content.Title, i+1)
	}

	imageFiles := make([]string, 0, len(content.ImagePrompts))
	for i := range content.ImagePrompts {
		imageFiles = append(imageFiles, fmt.Sprintf("%s_image_%d.jpg", content.Slug, i+1))
	}
	featured := ""
	if len(imageFiles) > 0 {
		featured = imageFiles[0]
	}

	faqParts := make([]string, 0, len(content.FAQList))
	for _, faq := range content.FAQList {
		faqParts = append(faqParts, fmt.Sprintf("Q: %s A: %s", faq.Question, faq.Answer))
	}

	compliance := "통과"
	if len(content.Violations) > 0 {
		compliance = "검토 필요"
	}

	return []interface{}{
		seriesName,
		content.Title,
		content.PrimaryKeyword,
		strings.Join(fact.Employee.SpecialtyAreas, ", "),
		fact.Personality.ToneStyle,
		content.Slug,
		content.MetaDescription,
		strings.Join(content.Tags, ","),
		prompt(0), prompt(1), prompt(2),
		altText(0), altText(1), altText(2),
		featured,
		strings.Join(imageFiles, ", "),
		"",
		content.Status,
		compliance,
		"서론-본문-FAQ-CTA",
		strings.Join(faqParts, " || "),
		"",
		content.TargetAudience,
		content.CTAButtonText,
		strings.Join(fact.Knowledge.Procedures, ", "),
		content.WPPostID,
		content.WPPostURL,
		content.WPEditURL,
		content.CreatedAt.Format(time.RFC3339),
		time.Now().Format(time.RFC3339),
		fact.Employee.Name,
		fmt.Sprintf("%.2f", content.SEOScore),
		fmt.Sprintf("%.2f", content.ComplianceScore),
	}
}
