// Package synth turns scraped catalog JSON into prompt/completion training
// pairs by prompting a chat model over each file's content.
package synth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/HuskyLLM/husky-scraper/internal/cache"
	"github.com/HuskyLLM/husky-scraper/internal/llm"
)

// Pair is one training example.
type Pair struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

// Dataset is the model's expected response shape.
type Dataset struct {
	Dataset []Pair `json:"dataset"`
}

// ErrEmptyResponse indicates the model returned no usable content.
var ErrEmptyResponse = errors.New("empty model response")

// Builder generates datasets from scraped JSON documents.
type Builder struct {
	Client llm.Client
	Model  string
	Cache  *cache.LLMCache
	// Pause is the wait imposed between API calls to respect rate limits.
	// Cache hits skip both the call and the pause.
	Pause time.Duration

	// sleep is replaceable in tests.
	sleep func(time.Duration)
}

// Generate prompts the model over one scraped document and parses the
// returned dataset. The second result reports whether the response came from
// cache.
func (b *Builder) Generate(ctx context.Context, data any) (Dataset, bool, error) {
	if b.Client == nil || strings.TrimSpace(b.Model) == "" {
		return Dataset{}, false, errors.New("builder not configured")
	}
	prompt, err := buildPrompt(data)
	if err != nil {
		return Dataset{}, false, err
	}

	key := cache.KeyFrom(b.Model, prompt)
	if b.Cache != nil {
		if raw, ok, _ := b.Cache.Get(ctx, key); ok {
			var ds Dataset
			if err := json.Unmarshal(raw, &ds); err == nil {
				return ds, true, nil
			}
		}
	}

	resp, err := b.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return Dataset{}, false, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Dataset{}, false, ErrEmptyResponse
	}
	content := stripFences(strings.TrimSpace(resp.Choices[0].Message.Content))
	if content == "" {
		return Dataset{}, false, ErrEmptyResponse
	}

	var ds Dataset
	if err := json.Unmarshal([]byte(content), &ds); err != nil {
		return Dataset{}, false, fmt.Errorf("parse model response: %w", err)
	}
	if b.Cache != nil {
		payload, _ := json.Marshal(ds)
		_ = b.Cache.Save(ctx, key, payload)
	}
	return ds, false, nil
}

func (b *Builder) wait() {
	if b.Pause <= 0 {
		return
	}
	if b.sleep != nil {
		b.sleep(b.Pause)
		return
	}
	time.Sleep(b.Pause)
}

// buildPrompt frames one scraped document as an advisor-style request for
// question/answer pairs covering its policies, courses, contacts, and links.
func buildPrompt(data any) (string, error) {
	doc, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal input document: %w", err)
	}
	var sb strings.Builder
	sb.WriteString("You are a helpful university advisor. The JSON below holds scraped university catalog content: policies, procedures, course listings, contact information, and hyperlinks.\n")
	sb.WriteString("Convert it into question/answer training pairs a student might ask about this material. Cover:\n")
	sb.WriteString("- steps and procedures\n")
	sb.WriteString("- course descriptions, prerequisites, and credit hours\n")
	sb.WriteString("- contact information (emails, phone numbers)\n")
	sb.WriteString("- relevant hyperlinks\n")
	sb.WriteString("- deadlines, requirements, and special conditions\n")
	sb.WriteString("\nRespond with a JSON object of the form {\"dataset\": [{\"prompt\": \"...\", \"completion\": \"...\"}]}.\n")
	sb.WriteString("Generate at least 10 pairs when the material supports it; fewer is acceptable for sparse input. Completions must stay accurate to the source material and include any relevant contacts or links.\n")
	sb.WriteString("\nInput JSON:\n")
	sb.Write(doc)
	return sb.String(), nil
}

// stripFences removes a Markdown code fence wrapper, which some models emit
// despite the JSON response format.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
