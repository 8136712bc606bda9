package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	response "oscell/internal/adapter/http/dto/response"
	"oscell/internal/adapter/http/middleware"
	"oscell/internal/domain/entities"
	"oscell/internal/usecase"
	"oscell/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = (streamPongWait * 9) / 10
	streamMaxMsgSize = 4 * 1024
	streamBuffer     = 8
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServiceStreamHandler pushes the subject's full ledger over a websocket on
// every change. Each frame is a complete snapshot, so a slow client only ever
// loses intermediate states.
type ServiceStreamHandler struct {
	usecase usecase.IServiceLedgerUseCase
}

func NewServiceStreamHandler(uc usecase.IServiceLedgerUseCase) *ServiceStreamHandler {
	return &ServiceStreamHandler{usecase: uc}
}

// Stream godoc
// @Summary      Live service ledger
// @Description  Websocket. Each message is a LedgerEvent with the full sorted list or an error.
// @Tags         services
// @Security     Bearer
// @Param        token  query  string  false  "Token, for clients that cannot set headers"
// @Router       /services/stream [get]
func (h *ServiceStreamHandler) Stream(c *gin.Context) {
	subject := c.GetString(middleware.SubjectKey)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[ledger][ws] upgrade failed subject=%s err=%v", subject, err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	send := make(chan response.LedgerEvent, streamBuffer)
	push := func(ev response.LedgerEvent) {
		for {
			select {
			case send <- ev:
				return
			default:
			}
			// Full: drop the oldest snapshot, the new one supersedes it.
			select {
			case <-send:
			default:
			}
		}
	}

	unsubscribe, err := h.usecase.Subscribe(ctx, subject, interfaces.RecordListener{
		OnChange: func(records []entities.ServiceRecord) {
			push(response.NewSnapshotEvent(records))
		},
		OnError: func(err error) {
			push(response.NewErrorEvent(mapServiceRecordError(err).Message))
		},
	})
	if err != nil {
		appErr := mapServiceRecordError(err)
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		_ = conn.WriteJSON(response.NewErrorEvent(appErr.Message))
		return
	}
	defer unsubscribe()

	log.Printf("[ledger][ws] connected subject=%s", subject)

	done := make(chan struct{})
	go h.readLoop(conn, subject, done)
	h.writeLoop(conn, send, done)

	log.Printf("[ledger][ws] disconnected subject=%s", subject)
}

// readLoop only drains control frames; clients never send data.
func (h *ServiceStreamHandler) readLoop(conn *websocket.Conn, subject string, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(streamMaxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ledger][ws] read error subject=%s err=%v", subject, err)
			}
			return
		}
	}
}

func (h *ServiceStreamHandler) writeLoop(conn *websocket.Conn, send <-chan response.LedgerEvent, done <-chan struct{}) {
	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(streamWriteWait))
			return
		}
	}
}
