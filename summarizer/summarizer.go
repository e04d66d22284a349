package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"google.golang.org/genai"

	"blogboard/config"
)

// SuggestResult is the structured model response for an editor suggestion.
type SuggestResult struct {
	ShortDescription  string  `json:"short_description"`
	EstimatedReadTime string  `json:"estimated_read_time"`
	Error             *string `json:"error,omitempty"`
}

// LLMRequestLog captures one model call for debugging and cost tracking.
type LLMRequestLog struct {
	Prompt       string     `json:"prompt"`
	Response     string     `json:"response"`
	LatencyMs    int64      `json:"latency_ms"`
	TokenUsage   TokenUsage `json:"token_usage"`
	ModelName    string     `json:"model_name"`
	ModelVersion string     `json:"model_version"`
	GeneratedAt  time.Time  `json:"generated_at"`
}

type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

const systemInstruction = `
You are a writing assistant for a blogging platform.
Your task is to analyze a blog post draft and produce editor suggestions.
The response MUST be a valid JSON object with three keys:

1. short_description: A one or two sentence teaser for the post listing,
   no more than 160 characters, written in the same language as the draft.
2. estimated_read_time: The estimated reading time as a short label,
   e.g. "4 min read", assuming roughly 200 words per minute.
3. error: An optional string field. If the draft is empty or too short to
   describe, set this field to a descriptive error message. Otherwise, set
   it to 'null'.

Additional constraints:
- You MUST NOT wrap the JSON output in a markdown code block (e.g., ` + "```json ... ```" + `).
- The response should contain ONLY the raw JSON string.
- If suggestion fails, set the 'error' field to an appropriate message and
  provide empty strings for the other fields.
`

// Suggest asks the model for a short description and read-time estimate of
// the given draft content.
func Suggest(ctx context.Context, title, content string) (*SuggestResult, *LLMRequestLog, error) {
	startTime := time.Now()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	modelName := config.GetConfig().GeminiModel

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, nil, err
	}

	prompt := content
	if title != "" {
		prompt = fmt.Sprintf("Title: %s\n\n%s", title, content)
	}

	result, err := client.Models.GenerateContent(
		ctx,
		modelName,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		},
	)
	if err != nil {
		return nil, nil, err
	}

	var suggestion SuggestResult
	if err := json.Unmarshal([]byte(result.Text()), &suggestion); err != nil {
		return nil, nil, err
	}

	if suggestion.Error != nil {
		return &suggestion, nil, fmt.Errorf("model judged the draft unsuitable: %s", *suggestion.Error)
	}

	if result.UsageMetadata == nil {
		return &suggestion, nil, fmt.Errorf("usage metadata is nil")
	}

	llmLog := &LLMRequestLog{
		Prompt:    fmt.Sprintf("%s\n\n%s", systemInstruction, prompt),
		Response:  result.Text(),
		LatencyMs: time.Since(startTime).Milliseconds(),
		TokenUsage: TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		},
		ModelName:    modelName,
		ModelVersion: result.ModelVersion,
		GeneratedAt:  time.Now(),
	}

	return &suggestion, llmLog, nil
}
