// Package web streams memory snapshots of a running GameBoy to
// websocket clients. Snapshots are brotli compressed and de-duplicated
// through a small cache that every client mirrors.
package web

import (
	"context"
	"encoding/binary"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

const (
	// DefaultCompressionLevel is the brotli quality used for streamed
	// snapshots. Snapshots sent to joining clients use syncQuality.
	DefaultCompressionLevel = 7
	syncQuality             = 9
	maxCompressionLevel     = 11

	cacheSize = 16
)

// ErrBadMessage is returned when a snapshot message can not be parsed.
var ErrBadMessage = errors.New("web: malformed message")

type frame struct {
	cycle uint64
	data  []byte
}

// Hub fans snapshots out to every connected client. A Hub is an
// http.Handler; Run must be running for connections to be served.
type Hub struct {
	clients map[*Client]bool

	broadcast            chan []byte
	register, unregister chan *Client
	frames               chan frame
	done                 chan struct{}

	compression      bool
	compressionLevel int
	frameSkipping    bool
	currentID        uint8

	cache    *cache
	latest   []byte
	lastHash uint64
	seen     bool
	skipped  uint32
	cycle    uint64
	dropped  uint64

	log log.Logger
	mu  sync.Mutex
}

// NewHub returns a Hub with compression and frame skipping enabled.
func NewHub(logger log.Logger) *Hub {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &Hub{
		clients:          make(map[*Client]bool),
		broadcast:        make(chan []byte, 16),
		register:         make(chan *Client),
		unregister:       make(chan *Client),
		frames:           make(chan frame, 4),
		done:             make(chan struct{}),
		compression:      true,
		compressionLevel: DefaultCompressionLevel,
		frameSkipping:    true,
		cache:            newCache(cacheSize),
		log:              logger,
	}
}

// Publish queues a snapshot taken at cycle. It never blocks: when the
// hub is behind, the snapshot is dropped and false is returned. The
// hub keeps snapshot, so the caller must not modify it afterwards.
func (h *Hub) Publish(cycle uint64, snapshot []byte) bool {
	select {
	case h.frames <- frame{cycle: cycle, data: snapshot}:
		return true
	default:
		h.mu.Lock()
		h.dropped++
		h.mu.Unlock()
		return false
	}
}

// Dropped returns the number of snapshots Publish could not queue.
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Run serves clients and processes snapshots until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	t := time.NewTicker(time.Second)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			h.greet(c)
			h.log.Infof("web: client %d connected from %s", c.ID, c.Metadata.RemoteAddr)
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.Send)
				h.sendAll([]byte{ClientClosing, c.ID})
				h.log.Infof("web: client %d disconnected after %s", c.ID, time.Since(c.connectedAt).Round(time.Second))
			}
		case msg := <-h.broadcast:
			h.sendAll(msg)
		case f := <-h.frames:
			h.process(f)
		case <-t.C:
			info := make([]byte, 10)
			info[0] = ServerInfo
			info[1] = uint8(len(h.clients))
			binary.LittleEndian.PutUint64(info[2:], h.cycle)
			h.sendAll(info)
		}
	}
}

// ServeHTTP upgrades the request to a websocket connection and
// registers a new client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("web: upgrading %s: %v", r.RemoteAddr, err)
		return
	}

	c := h.newClient(conn, r)
	if c == nil {
		conn.Close()
		return
	}

	go c.ReadPump()
	go c.WritePump()
}

// process encodes a snapshot and sends it to every client, either in
// full or as a reference to a cached copy.
func (h *Hub) process(f frame) {
	h.mu.Lock()
	compression, level, skipping := h.compression, h.compressionLevel, h.frameSkipping
	h.mu.Unlock()

	h.cycle = f.cycle
	h.latest = f.data

	hash := xxhash.Sum64(f.data)
	if skipping && h.seen && hash == h.lastHash {
		h.skipped++
		return
	}
	h.lastHash, h.seen = hash, true

	if h.skipped > 0 {
		msg := make([]byte, 5)
		msg[0] = SnapshotSkip
		binary.LittleEndian.PutUint32(msg[1:], h.skipped)
		h.sendAll(msg)
		h.skipped = 0
	}

	h.cache.Lock()
	defer h.cache.Unlock()

	cacheBuf := make([]byte, 2)
	if idx := h.cache.index(hash); idx != -1 {
		binary.LittleEndian.PutUint16(cacheBuf, uint16(idx))
		h.sendAll(append([]byte{SnapshotCache}, cacheBuf...))
		return
	}

	output, flags, err := encode(f.data, compression, level)
	if err != nil {
		h.log.Errorf("web: encoding snapshot at cycle %d: %v", f.cycle, err)
		return
	}

	binary.LittleEndian.PutUint16(cacheBuf, uint16(h.cache.add(hash, flags, output)))
	msg := append([]byte{Snapshot, flags}, cacheBuf...)
	h.sendAll(append(msg, output...))
}

// greet sends the hub settings, the latest snapshot and the cache to
// a client that just registered.
func (h *Hub) greet(c *Client) {
	h.mu.Lock()
	c.Send <- []byte{ClientInfo, c.ID, h.info(), uint8(h.compressionLevel)}
	compression := h.compression
	h.mu.Unlock()

	if h.latest != nil {
		output, flags, err := encode(h.latest, compression, syncQuality)
		if err != nil {
			h.log.Errorf("web: encoding sync snapshot: %v", err)
		} else {
			c.Send <- append([]byte{SnapshotSync, flags}, output...)
		}
	}

	h.cache.RLock()
	defer h.cache.RUnlock()

	data := []byte{SnapshotCacheSync}
	for i, e := range h.cache.cache {
		if len(e.data) == 0 {
			continue
		}

		entry := make([]byte, 7)
		binary.LittleEndian.PutUint16(entry, uint16(i))
		entry[2] = e.flags
		binary.LittleEndian.PutUint32(entry[3:], uint32(len(e.data)))
		data = append(data, append(entry, e.data...)...)
	}
	c.Send <- data
}

// info returns a byte of information containing the various
// hub settings. The byte is constructed as follows:
//
//	Bit 0: Compression enabled
//	Bit 1: Frame skipping enabled
func (h *Hub) info() byte {
	info := uint8(0)
	if h.compression {
		info |= types.Bit0
	}
	if h.frameSkipping {
		info |= types.Bit1
	}
	return info
}

// apply changes a hub setting on behalf of a client.
func (h *Hub) apply(event Event, value uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event {
	case Compression:
		h.compression = value == 1
	case CompressionLevel:
		if value > maxCompressionLevel {
			value = maxCompressionLevel
		}
		h.compressionLevel = int(value)
	case FrameSkipping:
		h.frameSkipping = value == 1
	}
}

// sendAll sends a message to every client. A client that can not keep
// up is disconnected.
func (h *Hub) sendAll(msg []byte) {
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
			close(c.Send)
			delete(h.clients, c)
		}
	}
}

// newClient creates a new client and registers it to the hub. It
// returns nil once the hub has stopped.
func (h *Hub) newClient(conn *websocket.Conn, r *http.Request) *Client {
	h.mu.Lock()
	h.currentID++
	id := h.currentID
	h.mu.Unlock()

	c := &Client{
		hub:  h,
		conn: conn,
		Send: make(chan []byte, 256),
		ID:   id,
		Metadata: struct {
			RemoteAddr string
			UserAgent  string
		}{RemoteAddr: r.RemoteAddr, UserAgent: r.Header.Get("User-Agent")},
		connectedAt: time.Now(),
	}

	select {
	case h.register <- c:
		return c
	case <-h.done:
		return nil
	}
}

func encode(data []byte, compress bool, quality int) ([]byte, uint8, error) {
	if !compress {
		return data, 0, nil
	}
	output, err := cbrotli.Encode(data, cbrotli.WriterOptions{Quality: quality})
	if err != nil {
		return nil, 0, err
	}
	return output, flagCompressed, nil
}

// DecodeSnapshot returns the memory snapshot carried by a Snapshot or
// SnapshotSync message.
func DecodeSnapshot(msg []byte) ([]byte, error) {
	var flags uint8
	var payload []byte
	switch {
	case len(msg) >= 4 && msg[0] == Snapshot:
		flags, payload = msg[1], msg[4:]
	case len(msg) >= 2 && msg[0] == SnapshotSync:
		flags, payload = msg[1], msg[2:]
	default:
		return nil, ErrBadMessage
	}

	if flags&flagCompressed == 0 {
		return payload, nil
	}
	return cbrotli.Decode(payload)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
