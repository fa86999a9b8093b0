package http

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/smartstock/stockops-api/internal/application/chat"
	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/domain"
	"github.com/smartstock/stockops-api/pkg/logger"
)

// ChatHandler chats, mensajes y el stream de notificaciones (protegido).
type ChatHandler struct {
	uc  *chat.UseCase
	log *logger.Logger
}

// NewChatHandler construye el handler de chat.
func NewChatHandler(uc *chat.UseCase, log *logger.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, log: log}
}

// StartChat godoc
// @Summary      Crear o reutilizar un chat con otro usuario
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChatRequest  true  "recipient_email"
// @Success      201   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chats [post]
func (h *ChatHandler) StartChat(c *fiber.Ctx) error {
	var in dto.CreateChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.StartChat(c.Context(), GetUserEmail(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "destinatario inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListChats godoc
// @Summary      Listar chats del usuario
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ChatResponse
// @Router       /api/chats [get]
func (h *ChatHandler) ListChats(c *fiber.Ctx) error {
	out, err := h.uc.ListChats(c.Context(), GetUserEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListMessages godoc
// @Summary      Listar mensajes de un chat
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del chat"
// @Success      200  {array}   dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chats/{id}/messages [get]
func (h *ChatHandler) ListMessages(c *fiber.Ctx) error {
	out, err := h.uc.ListMessages(c.Context(), GetUserEmail(c), c.Params("id"))
	if err != nil {
		return h.chatError(c, err)
	}
	return c.JSON(out)
}

// SendMessage godoc
// @Summary      Enviar mensaje a un chat
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del chat"
// @Param        body  body  dto.SendMessageRequest  true  "text"
// @Success      201   {object}  dto.MessageResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/chats/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var in dto.SendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SendMessage(c.Context(), GetUserEmail(c), c.Params("id"), in)
	if err != nil {
		return h.chatError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// OpenChat godoc
// @Summary      Marcar un chat como leído
// @Tags         chat
// @Security     Bearer
// @Param        id  path  string  true  "ID del chat"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/chats/{id}/open [post]
func (h *ChatHandler) OpenChat(c *fiber.Ctx) error {
	if err := h.uc.OpenChat(c.Context(), GetUserEmail(c), c.Params("id")); err != nil {
		return h.chatError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Notifications godoc
// @Summary      Lista actual de no-leídos del usuario
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationListResponse
// @Router       /api/notifications [get]
func (h *ChatHandler) Notifications(c *fiber.Ctx) error {
	out, err := h.uc.Notifications(c.Context(), GetUserEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// NotificationStream godoc
// @Summary      Stream SSE de no-leídos (snapshots completos)
// @Tags         chat
// @Security     Bearer
// @Produce      text/event-stream
// @Router       /api/notifications/stream [get]
func (h *ChatHandler) NotificationStream(c *fiber.Ctx) error {
	email := GetUserEmail(c)

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	initial, err := h.uc.Notifications(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	ch, cancel := h.uc.Subscribe(email)
	log := h.log.Component("sse")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		// Estado actual primero: el cliente arranca con la lista completa.
		if err := writeSnapshot(w, initial.Notifications); err != nil {
			return
		}
		for snapshot := range ch {
			if err := writeSnapshot(w, snapshot); err != nil {
				log.Debug().Str("recipient", email).Msg("suscriptor SSE desconectado")
				return
			}
		}
	}))
	return nil
}

// writeSnapshot emite un evento SSE con la lista completa y hace flush.
// Cada evento reemplaza por completo el estado del cliente.
func writeSnapshot(w *bufio.Writer, snapshot []dto.NotificationDTO) error {
	if snapshot == nil {
		snapshot = []dto.NotificationDTO{}
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return err
	}
	return w.Flush()
}

func (h *ChatHandler) chatError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "chat no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no participas en este chat"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
