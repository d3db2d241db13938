package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// EventType mirrors the remote change feed's verb set.
type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// Event is one realtime change notification. Record carries the full
// new row for inserts and updates; deletes carry only OldID.
type Event struct {
	Type   EventType       `json:"type"`
	Table  string          `json:"table"`
	Record json.RawMessage `json:"record,omitempty"`
	OldID  string          `json:"old_id,omitempty"`
}

// Feed is a realtime change subscription. Next blocks until an event
// arrives, the context ends, or the connection drops.
type Feed interface {
	Next(ctx context.Context) (Event, error)
	Close() error
}

// FeedDialer opens a fresh feed. The reconciler redials through this
// after every connection loss.
type FeedDialer func(ctx context.Context) (Feed, error)

// wsFeed reads change events off one websocket connection.
type wsFeed struct {
	conn *websocket.Conn
}

// DialFeed connects to the remote change feed websocket and subscribes
// to the given tables.
func DialFeed(ctx context.Context, wsURL, apiKey string, tables []string) (Feed, error) {
	header := map[string][]string{"apikey": {apiKey}}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return nil, fmt.Errorf("dial feed: %w", err)
	}
	sub := struct {
		Action string   `json:"action"`
		Tables []string `json:"tables"`
	}{Action: "subscribe", Tables: tables}
	if err := conn.WriteJSON(sub); err != nil {
		conn.Close()
		return nil, fmt.Errorf("subscribe feed: %w", err)
	}
	return &wsFeed{conn: conn}, nil
}

func (f *wsFeed) Next(ctx context.Context) (Event, error) {
	if deadline, ok := ctx.Deadline(); ok {
		f.conn.SetReadDeadline(deadline)
	} else {
		f.conn.SetReadDeadline(time.Time{})
	}
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			f.conn.SetReadDeadline(time.Now())
		case <-done:
		}
	}()
	defer close(done)

	var ev Event
	if err := f.conn.ReadJSON(&ev); err != nil {
		if ctx.Err() != nil {
			return Event{}, ctx.Err()
		}
		return Event{}, fmt.Errorf("read feed: %w", err)
	}
	return ev, nil
}

func (f *wsFeed) Close() error {
	f.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return f.conn.Close()
}
