package handler

import (
	"encoding/json"
	"net/http"

	"doctorbot/internal/usecase"
	"doctorbot/pkg/response"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// WebhookHandler receives update deliveries from the chat platform. Once
// the secret matches, the handler always acknowledges with 200: a non-2xx
// status makes the platform redeliver the same update indefinitely.
type WebhookHandler struct {
	webhookUsecase usecase.WebhookUsecase
	log            *logrus.Logger
	secret         string
}

func NewWebhookHandler(webhookUsecase usecase.WebhookUsecase, log *logrus.Logger, secret string) *WebhookHandler {
	return &WebhookHandler{
		webhookUsecase: webhookUsecase,
		log:            log,
		secret:         secret,
	}
}

func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if h.secret != "" && r.Header.Get(secretTokenHeader) != h.secret {
		response.Error(w, http.StatusBadRequest, "Invalid webhook secret", nil)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.log.Warnf("Failed to decode webhook update: %v", err)
		response.Success(w, http.StatusOK, "OK", nil)
		return
	}

	if err := h.webhookUsecase.HandleUpdate(r.Context(), &update); err != nil {
		h.log.Warnf("Failed to process update %d: %v", update.UpdateID, err)
	}

	response.Success(w, http.StatusOK, "OK", nil)
}
