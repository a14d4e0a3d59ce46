package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestBriefService(baseURL string) *BriefService {
	return &BriefService{
		apiKey:  "test-key",
		model:   "gemini-2.5-flash",
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func geminiReply(text string) geminiResponse {
	return geminiResponse{
		Candidates: []struct {
			Content geminiContent `json:"content"`
		}{
			{Content: geminiContent{Parts: []geminiPart{{Text: text}}}},
		},
	}
}

func TestRefineDesignBriefReturnsModelText(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotPrompt = req.Contents[0].Parts[0].Text
		json.NewEncoder(w).Encode(geminiReply("ملخص تصميم احترافي"))
	}))
	defer server.Close()

	svc := newTestBriefService(server.URL)

	brief, err := svc.RefineDesignBrief("شعار لمتجر قهوة", "تصميم شعار")
	require.NoError(t, err)
	require.Equal(t, "ملخص تصميم احترافي", brief)

	require.True(t, strings.Contains(gotPrompt, "تصميم شعار"))
	require.True(t, strings.Contains(gotPrompt, "شعار لمتجر قهوة"))
}

func TestRefineDesignBriefConcatenatesParts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := geminiReply("")
		resp.Candidates[0].Content.Parts = []geminiPart{{Text: "الجزء الأول، "}, {Text: "الجزء الثاني"}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc := newTestBriefService(server.URL)

	brief, err := svc.RefineDesignBrief("وصف", "تصميم شعار")
	require.NoError(t, err)
	require.Equal(t, "الجزء الأول، الجزء الثاني", brief)
}

func TestRefineDesignBriefEmptyResponseFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer server.Close()

	svc := newTestBriefService(server.URL)

	brief, err := svc.RefineDesignBrief("وصف", "تصميم شعار")
	require.NoError(t, err)
	require.Equal(t, briefFallback, brief)
}

func TestRefineDesignBriefUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := newTestBriefService(server.URL)

	_, err := svc.RefineDesignBrief("وصف", "تصميم شعار")
	require.ErrorIs(t, err, ErrBriefUnavailable)
}

func TestRefineDesignBriefWithoutAPIKey(t *testing.T) {
	svc := newTestBriefService("http://localhost:1")
	svc.apiKey = ""

	_, err := svc.RefineDesignBrief("وصف", "تصميم شعار")
	require.ErrorIs(t, err, ErrBriefUnavailable)
}
