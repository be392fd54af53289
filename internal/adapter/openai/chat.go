package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `أنت معلّم خبير للطلاب العرب. مهمتك هي شرح الإجابات خطوة بخطوة باللغة العربية.

**إرشادات مهمة:**
1. اشرح كل خطوة بوضوح وبساطة
2. استخدم صيغة LaTeX للمعادلات الرياضية (مثال: $x^2 + y^2 = z^2$)
3. كن مشجعاً وإيجابياً في أسلوبك
4. إذا كانت هناك صورة، قم بتحليلها بعناية قبل الإجابة
5. استخدم السياق المقدم من المنهج الدراسي لتقديم إجابات دقيقة
6. إذا لم تكن متأكداً من الإجابة، اذكر ذلك بصراحة

**تنسيق الإجابة:**
- ابدأ بفهم السؤال
- قدم الحل خطوة بخطوة
- اختم بملخص أو نصيحة مفيدة
`

type ChatClient struct {
	client      *openai.Client
	model       string
	visionModel string
}

// NewChatClient creates a chat completion client. Questions that carry an
// image are routed to the vision model.
func NewChatClient(cfg ClientConfig, model, visionModel string) *ChatClient {
	return &ChatClient{
		client:      newClient(cfg),
		model:       model,
		visionModel: visionModel,
	}
}

// GenerateAnswer produces a step-by-step explanation for the student's
// question, grounded on the given curriculum context when present.
// imageDataURL is an optional base64 data URL of an attached image.
func (c *ChatClient) GenerateAnswer(
	ctx context.Context,
	question string,
	contextText string,
	imageDataURL string,
) (string, string, error) {
	model := c.model
	if imageDataURL != "" {
		model = c.visionModel
	}

	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		},
	}

	if contextText != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: fmt.Sprintf("**السياق من المنهج الدراسي:**\n\n%s\n\n---\n\n", contextText),
		})
	}

	if imageDataURL != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeText,
					Text: question,
				},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: imageDataURL},
				},
			},
		})
	} else {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: question,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", model, fmt.Errorf("failed to generate answer: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", model, fmt.Errorf("no response from model")
	}

	return resp.Choices[0].Message.Content, model, nil
}
