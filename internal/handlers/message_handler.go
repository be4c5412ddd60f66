package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/messages"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
)

type MessageHandler struct {
	hub      *messages.Hub
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewMessageHandler(hub *messages.Hub, log *zap.Logger) *MessageHandler {
	return &MessageHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			// the API is token-authenticated; CORS already reflects origins
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: log,
	}
}

// GET /api/me/messages?query=
func (h *MessageHandler) List(c *gin.Context) {
	httpresp.List(c, h.hub.List(middleware.OwnerID(c), c.Query("query")))
}

func (h *MessageHandler) Open(c *gin.Context) {
	id, ok := chatID(c)
	if !ok {
		return
	}

	g, err := h.hub.Open(middleware.OwnerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, g)
}

func (h *MessageHandler) Send(c *gin.Context) {
	id, ok := chatID(c)
	if !ok {
		return
	}

	var in messages.SendInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c)
		return
	}

	m, err := h.hub.Send(middleware.OwnerID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Created(c, m)
}

// Stream upgrades to a websocket and pushes every new message of the owner
// as JSON. Client frames are read only to notice disconnects.
func (h *MessageHandler) Stream(c *gin.Context) {
	owner := middleware.OwnerID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	events, cancel := h.hub.Subscribe(owner)
	defer cancel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(1 << 10)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case ev, ok := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func chatID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c)
		return 0, false
	}
	return id, true
}
