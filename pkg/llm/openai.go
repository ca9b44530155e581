package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const BackendGPT = "gpt"

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

// NewOpenAIClient builds the "gpt" backend. Extra options are appended after
// the API key, so tests can point the client at a local server.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if model == "" {
		model = openai.ChatModelGPT4o
	}
	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModel(model),
		modelName: model,
	}
}

func (c *OpenAIClient) Name() string  { return BackendGPT }
func (c *OpenAIClient) Model() string { return c.modelName }

func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
