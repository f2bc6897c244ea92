package chatHandler

import (
	"strings"
	"time"

	"HealthCoach/internal/api/chat"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

const wsUserIDKey = "ws_user_id"

// UpgradeWebsocket gates the websocket route and stashes the session user
// id where the upgraded connection can still reach it.
func (h *ChatHandler) UpgradeWebsocket(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	c.Locals(wsUserIDKey, h.middleware.GetUserID(c))
	return c.Next()
}

func (h *ChatHandler) Websocket() fiber.Handler {
	return websocket.New(h.handleWebsocket)
}

// handleWebsocket runs the conversation loop: each text frame is one user
// turn, each reply frame is the assistant's response.
func (h *ChatHandler) handleWebsocket(c *websocket.Conn) {
	h.log.Info("Chat WebSocket client connected")
	defer h.log.Info("Chat WebSocket client disconnected")

	userID, _ := c.Locals(wsUserIDKey).(string)
	if userID == "" {
		_ = c.WriteJSON(map[string]string{"error": "session could not be established"})
		return
	}

	maxReadTimeout := 10 * time.Minute

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Chat WebSocket error: %v", err)
			}
			break
		}

		if messageType != websocket.TextMessage {
			continue
		}

		userInput := string(message)
		if strings.TrimSpace(userInput) == "" {
			if err := c.WriteJSON(chat.AskResponse{Response: chat.EmptyInputPrompt}); err != nil {
				break
			}
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		response, err := h.chatService.ProcessMessage(ctx, userID, chat.AskRequest{UserInput: userInput})
		cancel()
		if err != nil {
			h.log.Errorf("Error processing chat turn: %v", err)
			if writeErr := c.WriteJSON(map[string]string{"error": "failed to process message"}); writeErr != nil {
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(response); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}
	}
}
