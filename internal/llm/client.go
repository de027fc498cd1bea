package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"docgen-server/internal/models"
)

// Client wraps the OpenAI-compatible chat completion API. It works against
// OpenAI, OpenRouter and Ollama via a configurable base URL.
type Client struct {
	client      *openai.Client
	model       string
	timeout     time.Duration
	maxRetries  int
	temperature float32
	logger      *zap.Logger
}

// Config holds the AI client settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	MaxRetries  int
	Temperature float64
}

// New creates a new AI client.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("AI API key is not set")
	}
	if cfg.Model == "" {
		cfg.Model = "openai/gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.7
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		timeout:     cfg.Timeout,
		maxRetries:  cfg.MaxRetries,
		temperature: float32(cfg.Temperature),
		logger:      logger.Named("LLMClient"),
	}, nil
}

// call sends one chat completion request with retries and exponential backoff.
func (c *Client) call(ctx context.Context, systemMessage, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	retryDelay := time.Second
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		req := openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: c.temperature,
			MaxTokens:   maxTokens,
		}

		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			lastErr = err
			c.logger.Warn("Chat completion attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			if attempt >= c.maxRetries {
				break
			}
			select {
			case <-ctx.Done():
				return "", classify(lastErr)
			case <-time.After(retryDelay):
			}
			retryDelay *= 2
			continue
		}

		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			lastErr = errors.New("empty response from AI API")
			c.logger.Warn("Empty chat completion response", zap.Int("attempt", attempt))
			if attempt >= c.maxRetries {
				break
			}
			select {
			case <-ctx.Done():
				return "", classify(lastErr)
			case <-time.After(retryDelay):
			}
			retryDelay *= 2
			continue
		}

		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	}

	return "", classify(lastErr)
}

// classify maps transport failures onto the service-level sentinels so
// handlers can pick the right HTTP status.
func classify(err error) error {
	if err == nil {
		return models.ErrGenerationFailed
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 429:
			return fmt.Errorf("%w: %s", models.ErrGenerationRateLimited, apiErr.Message)
		case apiErr.HTTPStatusCode >= 500:
			return fmt.Errorf("%w: %s", models.ErrGenerationUnavailable, apiErr.Message)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", models.ErrGenerationUnavailable, err)
	}
	return fmt.Errorf("%w: %v", models.ErrGenerationFailed, err)
}

// GenerateSectionContent generates the body text of a Word document section.
func (c *Client) GenerateSectionContent(ctx context.Context, topic, sectionHeader, extraContext string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Generate comprehensive, detailed content for a Word document section.\n\n")
	sb.WriteString(fmt.Sprintf("Document Topic: %s\nSection Header: %s", topic, sectionHeader))
	if extraContext != "" {
		sb.WriteString(fmt.Sprintf("\nAdditional Context: %s", extraContext))
	}
	sb.WriteString(`

Please write 3-5 well-developed paragraphs of professional content for this section.
The content should be:
- Detailed and informative with substantial depth
- Written in complete, flowing paragraphs (not bullet points)
- Professional and appropriate for a formal business document
- Rich in information and analysis
- Between 300-500 words to provide thorough coverage

Focus on providing comprehensive information, explanations, and insights related to the section header and main topic.
Write in a narrative style suitable for reading in a Word document.`)

	systemMessage := "You are a professional business writer creating comprehensive, detailed document content for Word documents. Write in full paragraphs with substantial depth and detail."
	return c.call(ctx, systemMessage, sb.String(), 1200)
}

// GenerateSlideContent generates bullet-point text for a presentation slide.
func (c *Client) GenerateSlideContent(ctx context.Context, topic, slideTitle, extraContext string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Generate concise, impactful content for a PowerPoint presentation slide.\n\n")
	sb.WriteString(fmt.Sprintf("Presentation Topic: %s\nSlide Title: %s", topic, slideTitle))
	if extraContext != "" {
		sb.WriteString(fmt.Sprintf("\nAdditional Context: %s", extraContext))
	}
	sb.WriteString(`

Please write concise, punchy bullet points for this slide.
The content should be:
- Brief and scannable (3-6 bullet points)
- Each bullet point should be 1-2 short sentences maximum
- Clear, impactful, and easy to read at a glance
- Suitable for visual presentation on a slide
- Professional and engaging
- Total content should be 50-100 words maximum

Format as bullet points, each on a new line.
Remember: slides are visual aids, not documents. Keep it concise!`)

	systemMessage := "You are a professional presentation designer creating concise, impactful slide content. Keep bullet points short and scannable - slides are visual aids, not documents."
	return c.call(ctx, systemMessage, sb.String(), 300)
}

// RefineContent rewrites existing content per the user's instructions.
// Oversized content is clamped to a token budget before prompting.
func (c *Client) RefineContent(ctx context.Context, currentContent, refinementPrompt string) (string, error) {
	clamped := TruncateToTokens(currentContent, c.model, refineContextTokenBudget)
	prompt := fmt.Sprintf(`Please refine the following content based on the user's instructions.

Current Content:
%s

Refinement Instructions:
%s

Please provide the refined version of the content, incorporating the requested changes while maintaining professional quality and coherence.`, clamped, refinementPrompt)

	systemMessage := "You are a professional editor helping to refine and improve document content."
	return c.call(ctx, systemMessage, prompt, 1000)
}

// GenerateTemplate generates an outline: section headers for word projects,
// slide titles for powerpoint projects.
func (c *Client) GenerateTemplate(ctx context.Context, topic string, docType models.ProjectType) ([]string, error) {
	var prompt string
	switch docType {
	case models.ProjectTypeWord:
		prompt = fmt.Sprintf(`Generate a professional outline for a Word document about: %s

Please provide 5-7 section headers that would create a comprehensive, well-structured document.
Return ONLY the section headers, one per line, without numbering or bullet points.
Make the headers clear, professional, and appropriate for a business document.

Example format:
Introduction
Background and Context
Key Findings
Recommendations
Conclusion`, topic)
	case models.ProjectTypePowerPoint:
		prompt = fmt.Sprintf(`Generate a professional outline for a PowerPoint presentation about: %s

Please provide 6-10 slide titles that would create a comprehensive, engaging presentation.
Return ONLY the slide titles, one per line, without numbering or bullet points.
Make the titles clear, concise, and appropriate for a business presentation.

Example format:
Introduction
Problem Statement
Current Situation
Proposed Solution
Implementation Plan
Expected Outcomes
Next Steps
Conclusion`, topic)
	default:
		return nil, models.ErrInvalidProjectType
	}

	systemMessage := "You are a professional document strategist creating well-structured outlines."
	response, err := c.call(ctx, systemMessage, prompt, 500)
	if err != nil {
		return nil, err
	}
	return ParseTemplateResponse(response), nil
}

// ParseTemplateResponse splits an outline response into clean header lines.
// Numbered and bulleted lines are dropped; if that filter removes every
// line, the unfiltered lines are returned instead.
func ParseTemplateResponse(response string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(response, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	headers := make([]string, 0, len(lines))
	for _, line := range lines {
		first := rune(line[0])
		if first >= '0' && first <= '9' {
			continue
		}
		if first == '-' || first == '*' {
			continue
		}
		headers = append(headers, line)
	}

	if len(headers) == 0 {
		return lines
	}
	return headers
}

// DetermineImageNeed asks the model whether the content benefits from an image.
func (c *Client) DetermineImageNeed(ctx context.Context, content string) (bool, error) {
	prompt := fmt.Sprintf(`Analyze the following content and determine if it would benefit from images.

Content:
%s

Consider:
- Would images make this content more engaging or easier to understand?
- Is the content visual in nature (describing objects, places, processes, data)?
- Would images add value beyond the text?

Respond with ONLY "YES" or "NO" - nothing else.`, content)

	systemMessage := "You are a professional document designer analyzing whether content needs images. Respond with only YES or NO."
	response, err := c.call(ctx, systemMessage, prompt, 10)
	if err != nil {
		return false, err
	}
	return strings.Contains(strings.ToUpper(response), "YES"), nil
}

// GenerateImageSearchQuery produces a short search query for the content.
// The result is capped at five words.
func (c *Client) GenerateImageSearchQuery(ctx context.Context, content string) (string, error) {
	prompt := fmt.Sprintf(`Generate a concise image search query for the following content.

Content:
%s

Requirements:
- MAXIMUM 5 words
- Focus on the main visual concept
- Use simple, descriptive keywords
- Professional and appropriate

Examples:
- "Eiffel Tower Paris"
- "business team meeting"
- "mountain landscape sunset"

Respond with ONLY the search query (2-5 words) - nothing else.`, content)

	systemMessage := "You are a professional image researcher. Create a short search query of 2-5 words maximum. Respond with only the query."
	response, err := c.call(ctx, systemMessage, prompt, 20)
	if err != nil {
		return "", err
	}

	words := strings.Fields(response)
	if len(words) > 5 {
		words = words[:5]
	}
	return strings.Join(words, " "), nil
}

// DetermineImagePlacement picks the placement strategy for an image.
// Powerpoint units resolve to background/foreground, word units to
// inline/wrapped; unrecognized answers take the conservative default.
func (c *Client) DetermineImagePlacement(ctx context.Context, content string, docType models.ProjectType) (models.ImagePlacement, error) {
	var prompt string
	switch docType {
	case models.ProjectTypePowerPoint:
		prompt = fmt.Sprintf(`Determine the optimal image placement for a PowerPoint slide.

Content:
%s

Placement options:
- background: Image behind all content with transparency (for inspirational/atmospheric images)
- foreground: Image positioned in content area alongside text (for specific objects/diagrams)

Consider:
- Content density (heavy text = foreground; light text = background)
- Content type (data/facts = foreground; inspirational = background)
- Image purpose (illustrative = foreground; atmospheric = background)

Respond with ONLY "background" or "foreground" - nothing else.`, content)
	case models.ProjectTypeWord:
		prompt = fmt.Sprintf(`Determine the optimal image placement for a Word document.

Content:
%s

Placement options:
- inline: Image embedded directly in text flow (breaks text)
- wrapped: Image with text wrapping around it (text flows around image)

Consider:
- Content flow and readability
- Image relevance to surrounding text
- Document structure

Respond with ONLY "inline" or "wrapped" - nothing else.`, content)
	default:
		return "", models.ErrInvalidProjectType
	}

	systemMessage := "You are a professional document designer determining optimal image placement. Respond with only the placement option."
	response, err := c.call(ctx, systemMessage, prompt, 10)
	if err != nil {
		return "", err
	}

	answer := strings.ToLower(strings.TrimSpace(response))
	if docType == models.ProjectTypePowerPoint {
		if strings.Contains(answer, "background") {
			return models.PlacementBackground, nil
		}
		return models.PlacementForeground, nil
	}
	if strings.Contains(answer, "wrapped") {
		return models.PlacementWrapped, nil
	}
	return models.PlacementInline, nil
}
