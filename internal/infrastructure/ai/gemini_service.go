package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/application/ports"
)

// Verificação em tempo de compilação de que GeminiService implementa a porta.
var _ ports.MealAnalysisService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// systemPrompt define o papel do modelo e o formato de saída.
	// responseMimeType=application/json obriga o Gemini a devolver JSON puro,
	// dispensando limpeza de blocos markdown.
	systemPrompt = `Você é um nutricionista especializado em análise de refeições brasileiras.
Dada uma foto de refeição, uma transcrição de áudio ou uma descrição textual, devolva SOMENTE um objeto JSON (sem texto adicional) com a estrutura exata:
{
  "meal_name": "<nome curto da refeição em português>",
  "foods": ["<alimento 1>", "<alimento 2>"],
  "calories": <número: calorias totais estimadas>,
  "carbs_grams": <número: carboidratos em gramas>,
  "protein_grams": <número: proteínas em gramas>,
  "fat_grams": <número: gorduras em gramas>,
  "confidence": <número entre 0 e 100>
}

Regras:
- calories entre 0 e 5000; estime porções típicas brasileiras.
- confidence: 90-100 = identificação clara, 70-89 = provável, <70 = estimativa grosseira.
- foods: lista dos alimentos identificados, em português.`
)

// GeminiService adaptador que implementa a análise de refeições chamando a
// API REST do Google Gemini com net/http.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService constrói o adaptador. model costuma ser "gemini-1.5-flash".
// Com apiKey vazio as chamadas devolvem erro descritivo em vez de panic.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 25 * time.Second, // timeout de rede; o caller também põe WithTimeout
		},
	}
}

// ── Estruturas internas da API do Gemini ──────────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"` // "application/json" → JSON puro garantido
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// mealAnalysisPayload é o JSON que esperamos receber do modelo.
type mealAnalysisPayload struct {
	MealName     string   `json:"meal_name"`
	Foods        []string `json:"foods"`
	Calories     float64  `json:"calories"`
	CarbsGrams   float64  `json:"carbs_grams"`
	ProteinGrams float64  `json:"protein_grams"`
	FatGrams     float64  `json:"fat_grams"`
	Confidence   float64  `json:"confidence"`
}

// ── Implementação da porta ────────────────────────────────────────────────────

// AnalyzeMeal envia foto, transcrição de áudio ou descrição ao Gemini e
// devolve a estimativa de alimentos, calorias e macros.
func (s *GeminiService) AnalyzeMeal(ctx context.Context, in dto.AnalyzeMealRequest) (*dto.MealAnalysisDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY não configurado")
	}

	parts := buildUserParts(in)
	if len(parts) == 0 {
		return nil, fmt.Errorf("AI: nenhuma entrada para análise")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: parts},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.2, // baixa temperatura para estimativas mais estáveis
			MaxOutputTokens:  512,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: criar HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout ou cancelamento: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Gemini erro %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return nil, fmt.Errorf("AI: deserializar resposta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("AI: Gemini devolveu resposta vazia")
	}

	rawJSON := strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text)

	var analysis mealAnalysisPayload
	if err := json.Unmarshal([]byte(rawJSON), &analysis); err != nil {
		return nil, fmt.Errorf("AI: resposta do modelo não é JSON válido: %w (resposta: %s)", err, rawJSON)
	}

	return &dto.MealAnalysisDTO{
		MealName: analysis.MealName,
		Foods:    analysis.Foods,
		Calories: clamp(analysis.Calories, 0, 5000),
		Macros: dto.MacrosInput{
			CarbsGrams:   clamp(analysis.CarbsGrams, 0, 1000),
			ProteinGrams: clamp(analysis.ProteinGrams, 0, 500),
			FatGrams:     clamp(analysis.FatGrams, 0, 500),
		},
		Confidence: clamp(analysis.Confidence, 0, 100),
	}, nil
}

// buildUserParts monta as partes do turno do usuário: imagem inline (base64),
// transcrição de áudio e/ou descrição textual.
func buildUserParts(in dto.AnalyzeMealRequest) []geminiPart {
	var parts []geminiPart
	if in.ImageBase64 != "" {
		mime := in.ImageMIMEType
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MIMEType: mime,
			Data:     in.ImageBase64,
		}})
	}
	var text strings.Builder
	if in.AudioTranscript != "" {
		fmt.Fprintf(&text, "Transcrição do áudio do usuário: %s\n", in.AudioTranscript)
	}
	if in.Description != "" {
		fmt.Fprintf(&text, "Descrição da refeição: %s\n", in.Description)
	}
	if in.ImageBase64 != "" && text.Len() == 0 {
		text.WriteString("Analise a refeição da foto.")
	}
	if text.Len() > 0 {
		parts = append(parts, geminiPart{Text: text.String()})
	}
	return parts
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
