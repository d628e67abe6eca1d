package openrouter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"billing-agent/internal/application/port/output"
	"billing-agent/internal/domain/entity"
	"billing-agent/internal/infrastructure/logger"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertResponseMessage_WithContent(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		Role:    "assistant",
		Content: "Saved the CSV.",
	}

	result := convertResponseMessage(msg)

	assert.Equal(t, entity.RoleAssistant, result.Role)
	assert.Equal(t, "Saved the CSV.", result.Content)
	assert.Empty(t, result.ToolCalls)
}

func TestConvertResponseMessage_WithToolCalls(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		Role: "assistant",
		ToolCalls: []openai.ToolCall{
			{
				ID:   "call_123",
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      "save_csv_artifact",
					Arguments: `{"csv_data":"line,charge\nv1,15\n"}`,
				},
			},
		},
	}

	result := convertResponseMessage(msg)

	require.Len(t, result.ToolCalls, 1)
	assert.Equal(t, "call_123", result.ToolCalls[0].ID)
	assert.Equal(t, "save_csv_artifact", result.ToolCalls[0].Name)
	assert.Equal(t, `{"csv_data":"line,charge\nv1,15\n"}`, result.ToolCalls[0].Arguments)
}

func TestConvertMessages_ToolRoundTrip(t *testing.T) {
	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: "You are a Billing Specialist."},
		{Role: entity.RoleUser, Content: "Process my bill"},
		{
			Role:      entity.RoleAssistant,
			ToolCalls: []entity.ToolCall{{ID: "c1", Name: "get_pdf_text_from_artifact", Arguments: "{}"}},
		},
		{Role: entity.RoleTool, ToolCallID: "c1", Name: "get_pdf_text_from_artifact", Content: "PLANS"},
	}

	result := convertMessages(messages)

	require.Len(t, result, 4)
	assert.Equal(t, "system", result[0].Role)
	assert.Equal(t, "user", result[1].Role)
	require.Len(t, result[2].ToolCalls, 1)
	assert.Equal(t, openai.ToolTypeFunction, result[2].ToolCalls[0].Type)
	assert.Equal(t, "get_pdf_text_from_artifact", result[2].ToolCalls[0].Function.Name)
	assert.Equal(t, "c1", result[3].ToolCallID)
	assert.Equal(t, "PLANS", result[3].Content)
}

func TestConvertTools(t *testing.T) {
	params := map[string]interface{}{"type": "object"}
	result := convertTools([]entity.ToolDefinition{{Name: "save_csv_artifact", Description: "Saves CSV", Parameters: params}})

	require.Len(t, result, 1)
	assert.Equal(t, openai.ToolTypeFunction, result[0].Type)
	assert.Equal(t, "save_csv_artifact", result[0].Function.Name)
	assert.Equal(t, params, result[0].Function.Parameters)
}

func TestChat_AgainstFakeServer(t *testing.T) {
	var received openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{
					Role: "assistant",
					ToolCalls: []openai.ToolCall{{
						ID:       "call_1",
						Type:     openai.ToolTypeFunction,
						Function: openai.FunctionCall{Name: "get_pdf_text_from_artifact", Arguments: "{}"},
					}},
				},
			}},
		})
	}))
	defer server.Close()

	cfg := DefaultConfig("test-key", "")
	cfg.BaseURL = server.URL
	cfg.LogHTTP = true
	cfg.Logger = logger.NewNop()
	adapter := NewOpenRouterAdapter(cfg)

	resp, err := adapter.Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{{Role: entity.RoleUser, Content: "hi"}},
		Tools:    []entity.ToolDefinition{{Name: "get_pdf_text_from_artifact", Parameters: map[string]interface{}{"type": "object"}}},
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, received.Model)
	require.Len(t, received.Tools, 1)
	require.Len(t, resp.Message.ToolCalls, 1)
	assert.Equal(t, "get_pdf_text_from_artifact", resp.Message.ToolCalls[0].Name)
}

func TestChat_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	cfg := DefaultConfig("test-key", "some/model")
	cfg.BaseURL = server.URL
	adapter := NewOpenRouterAdapter(cfg)

	_, err := adapter.Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{{Role: entity.RoleUser, Content: "hi"}},
	})
	assert.Error(t, err)
}
