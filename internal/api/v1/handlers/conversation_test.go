package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calliope-ai/calliope/internal/services/conversation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleConversation(t *testing.T) {
	stub := &stubChatService{
		turns: []conversation.Turn{
			{Role: conversation.RoleUser, Text: "hello"},
			{Role: conversation.RoleAssistant, Text: "hi", Degraded: true},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/conversation", nil)
	w := httptest.NewRecorder()

	HandleConversation(stub, w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp conversationResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Turns, 2)
	assert.Equal(t, "hello", resp.Turns[0].Text)
	assert.True(t, resp.Turns[1].Degraded)
}

func TestHandleConversationEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/conversation", nil)
	w := httptest.NewRecorder()

	HandleConversation(&stubChatService{}, w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"turns": []}`, w.Body.String())
}

func TestHandleConversationReset(t *testing.T) {
	stub := &stubChatService{}

	req := httptest.NewRequest(http.MethodPost, "/v1/conversation/reset", nil)
	w := httptest.NewRecorder()

	HandleConversationReset(stub, w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, stub.resetCalled)
}
