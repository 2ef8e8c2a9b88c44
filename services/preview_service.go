package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"lp-maker/lpmaker/broker"
	"lp-maker/lpmaker/database"
	"lp-maker/lpmaker/models"
	"lp-maker/lpmaker/render"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
)

// PreviewServiceInterface is the editor's live channel: clients
// subscribe by slug and receive freshly rendered HTML whenever the page
// is saved, plus engagement ticks as telemetry arrives.
type PreviewServiceInterface interface {
	Start(natsURL string)
	Stop()
	HandleConnection(c *gin.Context)
	BroadcastToSlug(slug string, message []byte)
}

type previewClient struct {
	conn *websocket.Conn
	slug string
	send chan []byte
}

type PreviewService struct {
	db       *database.Database
	upgrader websocket.Upgrader

	clientsMu sync.RWMutex
	clients   map[*previewClient]bool

	consumer *broker.Consumer
	stopChan chan struct{}
}

var PreviewServiceInstance PreviewServiceInterface

func NewPreviewService(db *database.Database) *PreviewService {
	return &PreviewService{
		db: db,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients:  make(map[*previewClient]bool),
		stopChan: make(chan struct{}),
	}
}

// Start subscribes to page and telemetry subjects. A broker outage only
// disables live refresh; the editor still works through plain fetches.
func (s *PreviewService) Start(natsURL string) {
	subjects := append(broker.TelemetrySubjects(), broker.PageUpdatedSubject)
	consumer, err := broker.InitConsumer(natsURL, subjects, "preview-hub")
	if err != nil {
		log.Printf("Warning: preview hub consumer unavailable: %v", err)
		return
	}
	s.consumer = consumer

	go s.processEvents(consumer.GetMessageChannel())
	log.Println("Preview hub started")
}

func (s *PreviewService) Stop() {
	close(s.stopChan)
	if s.consumer != nil {
		s.consumer.Close()
	}

	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for client := range s.clients {
		close(client.send)
		client.conn.Close()
	}
	s.clients = make(map[*previewClient]bool)
}

// HandleConnection upgrades the request and ties the client to the slug
// it is previewing.
func (s *PreviewService) HandleConnection(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug query parameter is required"})
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Preview upgrade failed: %v", err)
		return
	}

	client := &previewClient{
		conn: conn,
		slug: slug,
		send: make(chan []byte, 16),
	}

	s.clientsMu.Lock()
	s.clients[client] = true
	s.clientsMu.Unlock()

	go s.writePump(client)
	go s.readPump(client)
}

func (s *PreviewService) readPump(client *previewClient) {
	defer s.dropClient(client)
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *PreviewService) writePump(client *previewClient) {
	for message := range client.send {
		if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

func (s *PreviewService) dropClient(client *previewClient) {
	s.clientsMu.Lock()
	if _, ok := s.clients[client]; ok {
		delete(s.clients, client)
		close(client.send)
	}
	s.clientsMu.Unlock()
	client.conn.Close()
}

// BroadcastToSlug delivers a message to every client previewing slug.
func (s *PreviewService) BroadcastToSlug(slug string, message []byte) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	for client := range s.clients {
		if client.slug != slug {
			continue
		}
		select {
		case client.send <- message:
		default:
			// Slow client; skip rather than block the hub.
		}
	}
}

func (s *PreviewService) processEvents(messages chan *nats.Msg) {
	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				return
			}
			s.handleEvent(msg.Subject, msg.Data)
		case <-s.stopChan:
			return
		}
	}
}

func (s *PreviewService) handleEvent(subject string, data []byte) {
	event, err := models.EventFromJSON(data)
	if err != nil {
		log.Printf("Ignoring malformed event on %s: %v", subject, err)
		return
	}

	switch subject {
	case broker.PageUpdatedSubject:
		var payload struct {
			Slug string `json:"slug"`
		}
		if err := json.Unmarshal(event.Data, &payload); err != nil || payload.Slug == "" {
			return
		}
		s.pushRenderedPage(payload.Slug)
	default:
		// Telemetry tick: tell the editor header to refresh its
		// summary numbers.
		message, err := json.Marshal(map[string]string{"type": "telemetry", "event": event.Event})
		if err != nil {
			return
		}
		s.broadcastAll(message)
	}
}

func (s *PreviewService) pushRenderedPage(slug string) {
	page, err := PageServiceInstance.GetPageBySlug(s.db, slug)
	if err != nil {
		log.Printf("Preview refresh failed for %s: %v", slug, err)
		return
	}

	ctx := render.Context{
		PageID: models.DemoPageID,
		Slug:   page.Slug,
		Theme:  page.ResolvedTheme(),
	}
	if QuizServiceInstance != nil {
		ctx.QuizLookup = QuizServiceInstance.GetQuizByIDOrSlug
	}

	html := render.LiveFragment(render.PageNodes(page.Blocks, ctx))
	message, err := json.Marshal(map[string]string{"type": "page", "slug": page.Slug, "html": html})
	if err != nil {
		return
	}
	s.BroadcastToSlug(page.Slug, message)
}

func (s *PreviewService) broadcastAll(message []byte) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	for client := range s.clients {
		select {
		case client.send <- message:
		default:
		}
	}
}
