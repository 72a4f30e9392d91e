// Package ocr reads page running headers with an LLM vision model. Pages
// are rendered to PNG, sent as image parts of a chat completion, and the
// reply is taken as the header text.
package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	defaultModel = openai.ChatModelGPT4oMini

	// headerPrompt asks only for the running header so the model does not
	// transcribe body text.
	headerPrompt = "이 이미지는 건설공사 표준품셈 문서 페이지의 상단 영역입니다. " +
		"머릿말(페이지 상단의 장/부문 표시, 예: \"(제 1장 총칙 3)\" 또는 \"(01 공통부문)\")만 " +
		"정확히 그대로 출력하세요. 머릿말이 없으면 빈 줄만 출력하세요."
)

// Config holds settings for the vision OCR client.
type Config struct {
	APIKey     string
	Model      string
	Attempts   uint          // transport retry attempts
	RetryDelay time.Duration // base delay between attempts
	Timeout    time.Duration // HTTP timeout
	BaseURL    string        // Optional (tests)
	HTTPClient *http.Client  // Optional (tests)
}

// Client extracts header text from rendered page images.
type Client struct {
	model      string
	attempts   uint
	retryDelay time.Duration
	renderDPI  int
	client     openai.Client
}

// NewClient creates a vision OCR client.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		model:      cfg.Model,
		attempts:   cfg.Attempts,
		retryDelay: cfg.RetryDelay,
		renderDPI:  defaultRenderDPI,
		client:     openai.NewClient(opts...),
	}
}

// ExtractHeader reads the running header from a rendered page image.
// Transport failures are retried; the returned text is trimmed.
func (c *Client) ExtractHeader(ctx context.Context, imagePath string) (string, error) {
	dataURL, err := imageDataURL(imagePath)
	if err != nil {
		return "", err
	}

	var text string
	err = retry.Do(
		func() error {
			completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
				Model: openai.ChatModel(c.model),
				Messages: []openai.ChatCompletionMessageParamUnion{
					openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
						openai.TextContentPart(headerPrompt),
						openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
							URL: dataURL,
						}),
					}),
				},
			})
			if err != nil {
				return err
			}
			if len(completion.Choices) == 0 {
				return fmt.Errorf("empty completion response")
			}
			text = completion.Choices[0].Message.Content
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.retryDelay),
	)
	if err != nil {
		return "", fmt.Errorf("header ocr failed for %s: %w", imagePath, err)
	}

	return CleanHeader(text), nil
}

// ExtractHeaders renders and reads the headers of the given pages, keyed by
// page number. Pages whose header could not be read map to the empty
// string; rendering failures abort the run.
func (c *Client) ExtractHeaders(ctx context.Context, pdfPath string, pages []int) (map[int]string, error) {
	workDir, err := os.MkdirTemp("", "ascr-ocr-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create ocr work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	headers := make(map[int]string, len(pages))
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		imagePath, err := RenderPage(ctx, pdfPath, page, workDir, c.renderDPI)
		if err != nil {
			return nil, err
		}
		text, err := c.ExtractHeader(ctx, imagePath)
		if err != nil {
			headers[page] = ""
			continue
		}
		headers[page] = text
	}
	return headers, nil
}

// CleanHeader normalizes a model reply to a single header line.
func CleanHeader(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	return strings.Trim(text, "`")
}

// imageDataURL inlines a PNG file as a base64 data URL.
func imageDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read page image: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
