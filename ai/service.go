package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"retail-insight/models"
)

// Service is the explicitly-constructed handle for the external Gemini
// boundary. It owns one client for the application's lifetime and an ordered
// model fallback list; it is injected into whatever needs it rather than
// living as a hidden package global.
type Service struct {
	client         *genai.Client
	models         []string
	attemptTimeout time.Duration
}

// NewService creates the Gemini client. models is the ordered fallback list;
// attemptTimeout bounds each individual model attempt.
func NewService(ctx context.Context, apiKey string, modelNames []string, attemptTimeout time.Duration) (*Service, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	return &Service{client: client, models: modelNames, attemptTimeout: attemptTimeout}, nil
}

// Close releases the underlying client.
func (s *Service) Close() error {
	return s.client.Close()
}

// GenerateDecisions asks the model for per-product stocking decisions and a
// narrative summary over the bounded sample.
func (s *Service) GenerateDecisions(ctx context.Context, sample models.AnalysisSample) (*models.DecisionReport, error) {
	prompt, err := buildDecisionPrompt(sample)
	if err != nil {
		return nil, err
	}

	text, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	report, err := parseDecisionReport(text)
	if err != nil {
		log.Printf("Could not parse AI decision response: %v", err)
		return nil, err
	}
	return report, nil
}

// Chat answers a free-form follow-up question against the same sample context
// the decision call used.
func (s *Service) Chat(ctx context.Context, sample models.AnalysisSample, question string) (string, error) {
	data, err := json.Marshal(sample)
	if err != nil {
		return "", fmt.Errorf("failed to serialize sample data: %w", err)
	}

	prompt := fmt.Sprintf(
		`You are a helpful AI assistant for a retail business. Answer the user's question concisely based only on the statistics below. The user asked: "%s"

		Statistics: %s`,
		question,
		string(data),
	)
	return s.generate(ctx, prompt)
}

// generate tries each configured model in order with a per-attempt timeout
// and returns the first non-empty text response.
func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	return tryEach(ctx, s.models, s.attemptTimeout, func(attemptCtx context.Context, name string) (string, error) {
		model := s.client.GenerativeModel(name)
		model.SafetySettings = []*genai.SafetySetting{
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		}

		resp, err := model.GenerateContent(attemptCtx, genai.Text(prompt))
		if err != nil {
			log.Printf("Gemini model %s failed: %v", name, err)
			return "", err
		}

		text := responseText(resp)
		if text == "" {
			return "", fmt.Errorf("no text content received from model %s", name)
		}
		return text, nil
	})
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	return text
}

func buildDecisionPrompt(sample models.AnalysisSample) (string, error) {
	data, err := json.Marshal(sample)
	if err != nil {
		return "", fmt.Errorf("failed to serialize sample data: %w", err)
	}

	jsonFormat := `{"decisions":[{"product":"string","decision":"main-stock|display-only|stop-order|watch-list","stage":"new|growth|mature|decline","reason":"string","action":"string"}],"summary":"string"}`

	return fmt.Sprintf(`
        You are an expert retail data analyst. Based on the sales statistics below, decide how each listed product should be stocked and summarize the overall state of the business.

        **Sales Statistics:**
        %s

        **Required Output:**
        You must provide a single, minified JSON object with the following exact structure. Use only the listed decision and stage values. Do not include any markdown formatting, backticks, or explanatory text before or after the JSON object.

        %s
    `, string(data), jsonFormat), nil
}

// extractJSON pulls the outermost JSON object out of a model reply that may
// be wrapped in prose or code fences.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return raw[start : end+1]
}

func parseDecisionReport(text string) (*models.DecisionReport, error) {
	jsonStr := extractJSON(text)
	if jsonStr == "" {
		return nil, fmt.Errorf("failed to parse AI response format")
	}

	var report models.DecisionReport
	if err := json.Unmarshal([]byte(jsonStr), &report); err != nil {
		return nil, fmt.Errorf("failed to parse AI decision data: %w", err)
	}

	for i := range report.Decisions {
		report.Decisions[i].Decision = normalizeTag(report.Decisions[i].Decision,
			[]string{models.DecisionMainStock, models.DecisionDisplayOnly, models.DecisionStopOrder, models.DecisionWatchList},
			models.DecisionWatchList)
		report.Decisions[i].Stage = normalizeTag(report.Decisions[i].Stage,
			[]string{models.StageNew, models.StageGrowth, models.StageMature, models.StageDecline},
			models.StageMature)
	}
	return &report, nil
}

// normalizeTag folds a model-returned tag onto the fixed enumeration,
// defaulting when the model improvised.
func normalizeTag(raw string, allowed []string, def string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	for _, a := range allowed {
		if tag == a {
			return a
		}
	}
	return def
}
