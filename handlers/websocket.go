package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"realty-server/i18n"
	"realty-server/usecases"
	"realty-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// SessionResolver turns the token query parameter into a session.
type SessionResolver interface {
	Resolve(ctx context.Context, raw string) (*usecases.Session, error)
}

// WSHandler pushes live property, contract and session updates.
type WSHandler struct {
	mgr        *ws.Manager
	sessions   SessionResolver
	properties *usecases.PropertyUseCase
	contracts  *usecases.ContractUseCase
	catalog    *i18n.Catalog
	logger     *slog.Logger
}

func NewWSHandler(mgr *ws.Manager, sessions SessionResolver, properties *usecases.PropertyUseCase, contracts *usecases.ContractUseCase, catalog *i18n.Catalog) *WSHandler {
	return &WSHandler{
		mgr:        mgr,
		sessions:   sessions,
		properties: properties,
		contracts:  contracts,
		catalog:    catalog,
		logger:     slog.Default().With("module", "realtime"),
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleWS upgrades to websocket and streams the caller's topics until
// the client goes away.
// GET /ws?token=<session token>
func (h *WSHandler) HandleWS(c *gin.Context) {
	ctx := c.Request.Context()
	session, err := h.sessions.Resolve(ctx, c.Query("token"))
	if err != nil {
		localizedError(c, h.catalog, http.StatusUnauthorized, i18n.Unauthorized)
		return
	}

	subs, err := h.open(ctx, session)
	if err != nil {
		h.logger.ErrorContext(ctx, "open subscriptions", "error", err)
		localizedError(c, h.catalog, http.StatusInternalServerError, i18n.InternalError)
		return
	}
	defer func() {
		for _, sub := range subs {
			sub.Close()
		}
	}()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	// A session may hold several sockets (tabs, reconnects), so each
	// connection gets its own id.
	connID := uuid.NewString()
	h.mgr.Register(connID, conn)
	h.logger.Info("client connected", "conn_id", connID, "session_id", session.ID, "user_id", session.UserID, "demo", session.Demo)
	defer func() {
		h.mgr.Unregister(connID)
		h.logger.Info("client disconnected", "conn_id", connID, "session_id", session.ID)
	}()

	done := make(chan struct{})
	go h.writeLoop(conn, subs, done)

	conn.SetReadLimit(4096)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		// Clients only send control frames; reads detect disconnects.
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("read error", "conn_id", connID, "error", err)
			}
			close(done)
			return
		}
	}
}

// open subscribes the session to its topics. Demo sessions have no
// identity and get no live data.
func (h *WSHandler) open(ctx context.Context, session *usecases.Session) ([]*ws.Subscription, error) {
	if session.Demo {
		return nil, nil
	}
	sessionSub, _ := h.mgr.Subscribe(ws.UserTopic(ws.TopicSession, session.UserID))
	subs := []*ws.Subscription{sessionSub}

	propSub, err := h.properties.Watch(ctx, session)
	if err != nil {
		sessionSub.Close()
		return nil, err
	}
	subs = append(subs, propSub)

	contractSub, err := h.contracts.Watch(ctx, session)
	if err != nil {
		for _, sub := range subs {
			sub.Close()
		}
		return nil, err
	}
	return append(subs, contractSub), nil
}

// writeLoop is the only writer on conn.
func (h *WSHandler) writeLoop(conn *websocket.Conn, subs []*ws.Subscription, done <-chan struct{}) {
	merged := make(chan []byte)
	for _, sub := range subs {
		go func(sub *ws.Subscription) {
			for msg := range sub.C() {
				select {
				case merged <- msg:
				case <-done:
					return
				}
			}
		}(sub)
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	hello, _ := json.Marshal(ws.Envelope{Type: "ready", Topic: "", Data: gin.H{"topics": topicNames(subs)}})
	if err := write(conn, websocket.TextMessage, hello); err != nil {
		return
	}
	for {
		select {
		case msg := <-merged:
			if err := write(conn, websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := write(conn, websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		}
	}
}

func write(conn *websocket.Conn, messageType int, payload []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(messageType, payload)
}

func topicNames(subs []*ws.Subscription) []string {
	names := make([]string, 0, len(subs))
	for _, sub := range subs {
		names = append(names, sub.Topic())
	}
	return names
}

// localizedError writes the catalog text for key in the caller's
// Accept-Language, with the key as a machine-readable code.
func localizedError(c *gin.Context, catalog *i18n.Catalog, status int, key i18n.Key) {
	locale := catalog.Negotiate(c.GetHeader("Accept-Language"))
	c.AbortWithStatusJSON(status, gin.H{
		"error": catalog.T(locale, key),
		"code":  string(key),
	})
}
