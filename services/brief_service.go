package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/adhamyosry771-star/filex-design/config"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Shown instead of an empty model response.
const briefFallback = "عذراً، لم أتمكن من تحسين الوصف في الوقت الحالي."

var ErrBriefUnavailable = errors.New("حدث خطأ أثناء الاتصال بالمساعد الذكي.")

// BriefService rewrites a user's raw project description into a
// professional design brief via the Gemini generateContent endpoint.
// One call, one timeout, no retries.
type BriefService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewBriefService() *BriefService {
	return &BriefService{
		apiKey:  config.AppConfig.GeminiAPIKey,
		model:   config.AppConfig.GeminiModel,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func buildBriefPrompt(rawDescription, projectType string) string {
	return fmt.Sprintf(`أنت مساعد تصميم ذكي وخبير في إدارة المشاريع الإبداعية.
المستخدم يريد تقديم طلب تصميم من نوع: "%s".
الوصف الأولي الذي قدمه المستخدم هو: "%s".

قم بإعادة صياغة هذا الوصف ليصبح "ملخص تصميم" (Design Brief) احترافي ومفصل.
- حسن اللغة واجعلها أكثر وضوحاً.
- اقترح تفاصيل مفقودة قد تكون مهمة لهذا النوع من التصميم (مثل الألوان المقترحة، الجمهور المستهدف، الانطباع المطلوب).
- قم بتنسيق الرد كنقاط أو فقرات قصيرة.
- يجب أن يكون الرد باللغة العربية بالكامل.
- لا تضف مقدمات طويلة، ادخل في الموضوع مباشرة.`, projectType, rawDescription)
}

func (s *BriefService) RefineDesignBrief(rawDescription, projectType string) (string, error) {
	if s.apiKey == "" {
		return "", ErrBriefUnavailable
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildBriefPrompt(rawDescription, projectType)}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", ErrBriefUnavailable
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)

	resp, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", ErrBriefUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrBriefUnavailable
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", ErrBriefUnavailable
	}

	var text strings.Builder
	if len(result.Candidates) > 0 {
		for _, part := range result.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
	}

	if strings.TrimSpace(text.String()) == "" {
		return briefFallback, nil
	}

	return text.String(), nil
}
