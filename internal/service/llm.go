package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shirleys-kitchen/backend/internal/model"
)

// Gemini models used by the assist features.
const (
	tipsModel  = "gemini-3-flash-preview"
	imageModel = "gemini-3-pro-image-preview"
	ttsModel   = "gemini-2.5-flash-preview-tts"
)

// ErrEntityNotFound is returned when the Gemini API rejects the configured
// key or model with its "Requested entity was not found" signature. Callers
// should prompt for re-configuration rather than show a generic failure.
var ErrEntityNotFound = errors.New("requested entity was not found")

// GeminiService handles interactions with the Gemini API for the cookbook's
// assist features: cooking tips, substitution answers, generated photos, and
// read-aloud audio.
type GeminiService struct {
	apiKey string
	apiURL string
	client *http.Client
	redis  *redis.Client
}

// NewGeminiService creates a GeminiService. The API key comes from
// GEMINI_API_KEY or GEMINI_API_KEY_FILE. A nil Redis client disables the
// tips cache.
func NewGeminiService(redisClient *redis.Client) (*GeminiService, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("GEMINI_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY or GEMINI_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("GEMINI_API_URL")
	if apiURL == "" {
		apiURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	return &GeminiService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 60 * time.Second},
		redis:  redisClient,
	}, nil
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiTool struct {
	GoogleSearch map[string]any `json:"google_search,omitempty"`
}

type geminiImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

type geminiSpeechConfig struct {
	VoiceConfig struct {
		PrebuiltVoiceConfig struct {
			VoiceName string `json:"voiceName"`
		} `json:"prebuiltVoiceConfig"`
	} `json:"voiceConfig"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string            `json:"responseModalities,omitempty"`
	ImageConfig        *geminiImageConfig  `json:"imageConfig,omitempty"`
	SpeechConfig       *geminiSpeechConfig `json:"speechConfig,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	Tools            []geminiTool            `json:"tools,omitempty"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks []struct {
				Web struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// GroundingSource is a web citation attached to a substitution answer.
type GroundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// SubstitutionAnswer is the grounded reply to an ingredient question.
type SubstitutionAnswer struct {
	Text    string            `json:"text"`
	Sources []GroundingSource `json:"sources"`
}

// CookingTips asks for expert tips on preparing the recipe. Answers are
// cached in Redis for a day so repeat visits don't burn quota.
func (s *GeminiService) CookingTips(ctx context.Context, recipe *model.Recipe) (string, error) {
	cacheKey := fmt.Sprintf("recipe:tips:%s", recipe.ID)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	prompt := fmt.Sprintf(`Act as a warm, professional chef who specializes in family heirlooms.
Provide 3 short, expert tips for making "%s" perfectly.
Context ingredients: %s.
Also, suggest one "Nan's Secret Twist" (a modern or unique ingredient addition) that would elevate this specific dish.
Format the output with clear headers.`,
		recipe.Title, strings.Join(recipe.Ingredients, ", "))

	resp, err := s.generateContent(ctx, tipsModel, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	text := firstText(resp)
	if text == "" {
		return "", fmt.Errorf("no tips in API response")
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, cacheKey, text, 24*time.Hour).Err(); err != nil {
			log.Printf("[GeminiService] failed to cache tips for %s: %v", recipe.ID, err)
		}
	}
	return text, nil
}

// SearchSubstitutions answers an ingredient-substitution question about the
// recipe, grounded with web search citations.
func (s *GeminiService) SearchSubstitutions(ctx context.Context, recipe *model.Recipe, question string) (*SubstitutionAnswer, error) {
	prompt := fmt.Sprintf(`I'm cooking "%s" and I need help with: %s. Provide ingredient substitutions or advice.`,
		recipe.Title, question)

	resp, err := s.generateContent(ctx, tipsModel, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		Tools:    []geminiTool{{GoogleSearch: map[string]any{}}},
	})
	if err != nil {
		return nil, err
	}

	answer := &SubstitutionAnswer{
		Text:    firstText(resp),
		Sources: []GroundingSource{},
	}
	if answer.Text == "" {
		answer.Text = "I couldn't find an answer."
	}
	if len(resp.Candidates) > 0 {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web.URI != "" {
				answer.Sources = append(answer.Sources, GroundingSource{
					URI:   chunk.Web.URI,
					Title: chunk.Web.Title,
				})
			}
		}
	}
	return answer, nil
}

// GenerateRecipeImage generates a photo of the dish and returns the PNG
// bytes. Size selects the resolution tier passed through to the API
// (for example "1K" or "2K").
func (s *GeminiService) GenerateRecipeImage(ctx context.Context, recipe *model.Recipe, size string) ([]byte, error) {
	prompt := fmt.Sprintf("Gourmet food photography of %s. %s. 8k, natural lighting, rustic kitchen setting.",
		recipe.Title, recipe.Description)

	resp, err := s.generateContent(ctx, imageModel, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{
			ImageConfig: &geminiImageConfig{AspectRatio: "16:9", ImageSize: size},
		},
	})
	if err != nil {
		return nil, err
	}

	data := firstInlineData(resp)
	if data == "" {
		return nil, fmt.Errorf("no image in API response")
	}
	img, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}
	return img, nil
}

// SynthesizeSpeech reads the recipe aloud and returns 24kHz 16-bit PCM
// audio bytes.
func (s *GeminiService) SynthesizeSpeech(ctx context.Context, recipe *model.Recipe) ([]byte, error) {
	textToRead := fmt.Sprintf("Recipe for %s. Ingredients: %s. Method: %s",
		recipe.Title,
		strings.Join(recipe.Ingredients, ". "),
		strings.Join(recipe.Instructions, ". "))

	cfg := &geminiGenerationConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig:       &geminiSpeechConfig{},
	}
	cfg.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName = "Kore"

	resp, err := s.generateContent(ctx, ttsModel, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{
			Text: "Read this recipe naturally and warmly: " + textToRead,
		}}}},
		GenerationConfig: cfg,
	})
	if err != nil {
		return nil, err
	}

	data := firstInlineData(resp)
	if data == "" {
		return nil, fmt.Errorf("no audio in API response")
	}
	audio, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio data: %w", err)
	}
	return audio, nil
}

func (s *GeminiService) generateContent(ctx context.Context, geminiModel string, reqBody geminiRequest) (*geminiResponse, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.apiURL, geminiModel)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if strings.Contains(string(body), "Requested entity was not found") {
			return nil, fmt.Errorf("API request failed with status %d: %w", resp.StatusCode, ErrEntityNotFound)
		}
		log.Printf("[GeminiService] API request failed with status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("no response from API")
	}
	return &result, nil
}

func firstText(resp *geminiResponse) string {
	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}

func firstInlineData(resp *geminiResponse) string {
	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return p.InlineData.Data
			}
		}
	}
	return ""
}
