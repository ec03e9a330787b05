package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cafeteriasoma/soma-api/internal/application/events"
)

// WSHandler transmite por WebSocket los eventos de cambio de los stores
// para que los clientes conectados re-rendericen sin recargar.
type WSHandler struct {
	bus *events.Bus
}

// NewWSHandler construye el handler.
func NewWSHandler(bus *events.Bus) *WSHandler {
	return &WSHandler{bus: bus}
}

// Upgrade exige el handshake WebSocket antes de entrar al handler.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Stream envía cada evento del bus como JSON hasta que el cliente cierre.
func (h *WSHandler) Stream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		ch, cancel := h.bus.Subscribe()
		defer cancel()

		// Drena los mensajes entrantes para detectar el cierre del cliente.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				if err := conn.WriteJSON(event); err != nil {
					log.Debug().Err(err).Msg("cliente websocket desconectado")
					return
				}
			case <-closed:
				return
			}
		}
	})
}
