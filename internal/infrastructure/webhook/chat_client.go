package webhook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jhoicas/Cuentas-api/internal/application/ports"
)

var _ ports.ChatRelay = (*ChatClient)(nil)

// chatReply es cada elemento del arreglo que devuelve el flujo de automatización: [{"output": "..."}].
type chatReply struct {
	Output string `json:"output"`
}

// noReply se devuelve cuando el flujo responde sin texto.
const noReply = "(no reply)"

// ChatClient adaptador que implementa ChatRelay contra el webhook de automatización.
// Cada mensaje se envía una sola vez, sin reintentos.
type ChatClient struct {
	url        string
	httpClient *resty.Client
}

// NewChatClient construye el cliente. timeout es el límite de red; el caso de uso
// impone además su propio deadline de contexto.
func NewChatClient(webhookURL string, timeout time.Duration) *ChatClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &ChatClient{url: webhookURL, httpClient: client}
}

// Send publica el mensaje y devuelve la primera respuesta del flujo.
func (c *ChatClient) Send(ctx context.Context, msg ports.ChatMessage) (string, error) {
	if c.url == "" {
		return "", errors.New("webhook de chat sin URL")
	}
	var replies []chatReply
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(msg).
		SetResult(&replies).
		ForceContentType("application/json").
		Post(c.url)
	if err != nil {
		return "", fmt.Errorf("llamar webhook de chat: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("webhook de chat respondió %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	if len(replies) == 0 || replies[0].Output == "" {
		return noReply, nil
	}
	return replies[0].Output, nil
}
