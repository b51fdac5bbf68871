package ws

import (
	"net/http"
	"strings"

	"jobbridge/internal/delivery/http/middleware"
	"jobbridge/internal/infrastructure/events"
	"jobbridge/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var knownEntities = map[string]bool{
	events.EntityBeneficiary: true,
	events.EntityProvider:    true,
	events.EntityJob:         true,
	events.EntitySkill:       true,
}

type Handler struct {
	hub      *Hub
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, log *zap.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger.OrNop(log),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the feed carries ids only, so any origin may listen
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// HandleRecordsWS upgrades the request and subscribes the connection to
// records_updated events. ?entities=job,beneficiary narrows the feed.
func (h *Handler) HandleRecordsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	entities, err := parseEntities(c.Query("entities"))
	if err != nil {
		return err
	}

	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("ws upgrade failed", zap.Error(err))
			return
		}

		client := NewClient(h.hub, conn, entities...)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})(c)
}

func parseEntities(raw string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		e := strings.ToLower(strings.TrimSpace(part))
		if e == "" {
			continue
		}
		if !knownEntities[e] {
			return nil, middleware.NewAppError(fiber.StatusBadRequest, "Unknown entity "+e, nil, nil)
		}
		out = append(out, e)
	}
	return out, nil
}
