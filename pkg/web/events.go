package web

// Event is the first byte of a message sent by a client.
type Event = uint8

const (
	_ Event = iota
	Compression
	CompressionLevel
	FrameSkipping
	KeepAlive = 254
	Closing   = 255
)

// Type is the first byte of a message sent by the hub.
type Type = uint8

const (
	// Snapshot carries a new memory snapshot and the cache slot it
	// was stored in.
	Snapshot Type = iota
	// SnapshotCache refers to a snapshot the client already holds.
	SnapshotCache
	// SnapshotSkip reports how many unchanged snapshots were skipped.
	SnapshotSkip
	// SnapshotSync carries the latest snapshot to a client that just
	// connected.
	SnapshotSync
	// SnapshotCacheSync carries every cached snapshot to a client that
	// just connected, so later SnapshotCache messages resolve.
	SnapshotCacheSync
	ClientInfo
	ClientClosing
	ServerInfo
)

// flagCompressed marks a brotli encoded snapshot payload.
const flagCompressed uint8 = 1
