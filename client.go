package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Client is the realtime connection manager for the irepair messaging
// backend. It owns the socket lifecycle, routes inbound events to topic
// listeners, encodes outbound room commands, and reconnects autonomously
// with capped exponential backoff.
//
// A Client is safe for concurrent use. Construct one per app session and
// pass it to the screens that need it; there is no package-level instance.
type Client struct {
	cfg Config
	set settings

	logger   *zap.Logger
	registry *topicRegistry
	states   *stateNotifier

	dial dialFunc

	mu                sync.Mutex
	state             ConnState
	conn              *websocket.Conn
	reconnectAttempts int

	// generation is bumped on every Disconnect. Dials and backoff timers
	// capture the generation they were armed under and no-op when it has
	// moved on, so an explicit Disconnect cannot be undone by a timer that
	// was already in flight.
	generation uint64

	writeMu sync.Mutex
}

// NewClient creates a realtime client. The client does not connect until
// Connect is called.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	resolved, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}

	set := defaultSettings()
	for _, opt := range opts {
		opt(&set)
	}

	return &Client{
		cfg:      resolved,
		set:      set,
		logger:   set.logger,
		registry: newTopicRegistry(set.logger),
		states:   newStateNotifier(set.logger),
		dial:     gorillaDial(set.dialTimeout),
	}, nil
}

// Connect starts establishing the connection and returns immediately; the
// outcome is observable through OnConnectionChange. Calling Connect while a
// connection is open or already being established is a no-op. A missing auth
// token is treated as "not signed in yet": the attempt is logged and
// abandoned without error, and nothing is retried until the caller connects
// again. The only synchronous failure is an endpoint that cannot be derived
// from BaseURL.
func (c *Client) Connect() error {
	c.mu.Lock()
	if c.state == StateConnecting || c.state == StateOpen {
		c.mu.Unlock()
		return nil
	}
	c.state = StateConnecting
	gen := c.generation
	c.mu.Unlock()

	token, err := c.cfg.Tokens.Token()
	if err != nil || token == "" {
		c.abandonConnecting(gen)
		c.logger.Warn("connect skipped: no auth token available", zap.Error(err))
		return nil
	}

	endpoint, err := wsEndpoint(c.cfg.BaseURL, token)
	if err != nil {
		c.abandonConnecting(gen)
		return &ConnectionError{URL: c.cfg.BaseURL, Cause: err}
	}

	go c.establish(gen, endpoint)
	return nil
}

// abandonConnecting rolls the state back when an attempt never reached dial.
func (c *Client) abandonConnecting(gen uint64) {
	c.mu.Lock()
	if c.generation == gen && c.state == StateConnecting {
		c.state = StateDisconnected
	}
	c.mu.Unlock()
}

// establish dials and installs the socket. It is bound to the generation
// captured at Connect time, so a Disconnect issued mid-dial discards the
// result instead of resurrecting the connection.
func (c *Client) establish(gen uint64, endpoint string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.set.dialTimeout)
	defer cancel()

	conn, err := c.dial(ctx, endpoint)

	c.mu.Lock()
	if c.generation != gen || c.state != StateConnecting {
		c.mu.Unlock()
		if conn != nil {
			conn.Close()
		}
		return
	}

	if err != nil {
		// A dial that never opened counts as an unclean close for backoff.
		c.state = StateDisconnected
		attempt := c.reconnectAttempts
		c.mu.Unlock()

		c.logger.Warn("websocket dial failed", zap.Error(err))
		c.states.notify(false)
		c.scheduleReconnect(gen, attempt)
		return
	}

	prev := c.conn
	c.conn = conn
	c.state = StateOpen
	c.reconnectAttempts = 0
	c.mu.Unlock()

	if prev != nil {
		// A replaced socket must not keep feeding the dispatcher.
		prev.Close()
	}

	go c.readLoop(conn, gen)
	if c.set.pingInterval > 0 {
		go c.pingLoop(conn)
	}

	c.logger.Info("websocket connected")
	c.states.notify(true)
}

// Disconnect closes the connection with a normal-closure code and suppresses
// automatic reconnection. Idempotent; safe to call while disconnected.
func (c *Client) Disconnect() {
	c.mu.Lock()
	c.generation++
	c.reconnectAttempts = c.set.maxReconnectAttempts
	conn := c.conn
	c.conn = nil
	wasOpen := c.state == StateOpen
	if c.state != StateDisconnected {
		c.state = StateClosing
	}
	c.mu.Unlock()

	if conn != nil {
		conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		conn.Close()
	}

	c.mu.Lock()
	if c.state == StateClosing {
		c.state = StateDisconnected
	}
	c.mu.Unlock()

	if wasOpen {
		c.states.notify(false)
	}
}

// IsConnected reports whether the connection is currently open.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateOpen
}

// State returns the current connection state.
func (c *Client) State() ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// On registers a listener for an event topic and returns its unsubscribe
// function. Use TopicWildcard to observe every inbound event.
func (c *Client) On(topic string, fn Listener) func() {
	return c.registry.add(topic, fn)
}

// OnConnectionChange registers a listener notified with true when the
// connection opens and false on every close or error, independent of topic
// dispatch. Returns the unsubscribe function.
func (c *Client) OnConnectionChange(fn StateListener) func() {
	return c.states.add(fn)
}

// OnNewMessage registers a listener for inbound chat messages.
func (c *Client) OnNewMessage(fn func(ChatMessage)) func() {
	return c.On(EventNewMessage, func(ev Event) {
		var msg ChatMessage
		if c.decodeData(ev, &msg) {
			fn(msg)
		}
	})
}

// OnUserTyping registers a listener for typing indicators.
func (c *Client) OnUserTyping(fn func(TypingEvent)) func() {
	return c.On(EventUserTyping, func(ev Event) {
		var typing TypingEvent
		if c.decodeData(ev, &typing) {
			fn(typing)
		}
	})
}

// OnMessageRead registers a listener for read receipts.
func (c *Client) OnMessageRead(fn func(ReadReceipt)) func() {
	return c.On(EventMessageRead, func(ev Event) {
		var receipt ReadReceipt
		if c.decodeData(ev, &receipt) {
			fn(receipt)
		}
	})
}

// OnConversationUpdated registers a listener for conversation updates.
func (c *Client) OnConversationUpdated(fn func(ConversationEvent)) func() {
	return c.On(EventConversationUpdated, func(ev Event) {
		var conv ConversationEvent
		if c.decodeData(ev, &conv) {
			fn(conv)
		}
	})
}

// OnConversationCreated registers a listener for newly created conversations.
func (c *Client) OnConversationCreated(fn func(ConversationEvent)) func() {
	return c.On(EventConversationCreated, func(ev Event) {
		var conv ConversationEvent
		if c.decodeData(ev, &conv) {
			fn(conv)
		}
	})
}

// JoinConversation subscribes this connection to a conversation room.
// Reports whether the frame was actually transmitted.
func (c *Client) JoinConversation(conversationID string) bool {
	return c.send(c.set.vocab.Join(conversationID))
}

// LeaveConversation unsubscribes this connection from a conversation room.
func (c *Client) LeaveConversation(conversationID string) bool {
	return c.send(c.set.vocab.Leave(conversationID))
}

// SendTyping broadcasts a typing indicator for the configured user.
func (c *Client) SendTyping(conversationID string, isTyping bool) bool {
	return c.send(c.set.vocab.Typing(conversationID, c.cfg.UserID, isTyping))
}

// MarkMessageAsRead reports a read receipt for a message.
func (c *Client) MarkMessageAsRead(conversationID, messageID string) bool {
	return c.send(c.set.vocab.MarkRead(conversationID, messageID, c.cfg.UserID))
}

// send transmits one frame if the connection is open. A frame sent while the
// connection is down is dropped, not queued: delivery is at-most-once and
// the return value is the caller's only signal.
func (c *Client) send(f Frame) bool {
	if err := c.writeFrame(f); err != nil {
		c.logger.Warn("dropping frame", zap.String("type", f.Type), zap.Error(err))
		return false
	}
	return true
}

func (c *Client) writeFrame(f Frame) error {
	c.mu.Lock()
	conn := c.conn
	open := c.state == StateOpen
	c.mu.Unlock()

	if !open || conn == nil {
		return ErrNotConnected
	}

	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(c.set.writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, data)
}

// readLoop consumes frames from one socket until it closes. Frames read
// after the socket was replaced are discarded rather than dispatched.
func (c *Client) readLoop(conn *websocket.Conn, gen uint64) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.handleClose(conn, gen, err)
			return
		}

		c.mu.Lock()
		current := c.conn == conn
		c.mu.Unlock()
		if !current {
			return
		}

		c.handleFrame(data)
	}
}

// handleFrame parses one inbound text frame and dispatches it. A frame that
// fails to parse is dropped without affecting connection state.
func (c *Client) handleFrame(data []byte) {
	ev, err := parseEvent(data)
	if err != nil {
		c.logger.Warn("dropping malformed frame",
			zap.Error(err),
			zap.ByteString("frame", data),
		)
		return
	}
	c.registry.dispatch(ev)
}

// decodeData unwraps an event's data field into v, logging and skipping the
// event when the payload does not match.
func (c *Client) decodeData(ev Event, v any) bool {
	if err := json.Unmarshal(ev.Data, v); err != nil {
		c.logger.Warn("dropping event with unexpected payload",
			zap.String("topic", ev.Type),
			zap.Error(err),
		)
		return false
	}
	return true
}

// handleClose runs once per socket when its read loop ends. A clean close
// (normal closure, or an explicit Disconnect that already detached the
// socket) leaves the client down; an unclean close feeds the backoff.
func (c *Client) handleClose(conn *websocket.Conn, gen uint64, err error) {
	c.mu.Lock()
	if c.conn != conn {
		// The socket was replaced or torn down explicitly; its close has
		// already been accounted for.
		c.mu.Unlock()
		return
	}
	c.conn = nil
	c.state = StateDisconnected
	attempt := c.reconnectAttempts
	c.mu.Unlock()

	conn.Close()

	clean := websocket.IsCloseError(err, websocket.CloseNormalClosure)
	if clean {
		c.logger.Info("connection closed", zap.Error(err))
	} else {
		c.logger.Warn("connection lost", zap.Error(err))
	}

	c.states.notify(false)

	if !clean {
		c.scheduleReconnect(gen, attempt)
	}
}

// scheduleReconnect arms the backoff timer after an unclean close or failed
// dial. attempt is the number of failures already consumed; once it reaches
// the cap the client stays down until the caller reconnects.
func (c *Client) scheduleReconnect(gen uint64, attempt int) {
	if attempt >= c.set.maxReconnectAttempts {
		c.logger.Warn("reconnect attempts exhausted", zap.Int("attempts", attempt))
		return
	}

	delay := backoff{base: c.set.reconnectBase, max: c.set.reconnectMax}.delay(attempt)

	c.mu.Lock()
	c.reconnectAttempts = attempt + 1
	c.mu.Unlock()

	c.logger.Info("scheduling reconnect",
		zap.Int("attempt", attempt+1),
		zap.Duration("delay", delay),
	)

	time.AfterFunc(delay, func() {
		c.mu.Lock()
		stale := c.generation != gen
		c.mu.Unlock()
		if stale {
			return
		}
		if err := c.Connect(); err != nil {
			c.logger.Warn("reconnect failed", zap.Error(err))
		}
	})
}

// pingLoop keeps one socket alive with control-frame pings. It exits when
// that socket is no longer current; a failed ping closes the socket, which
// surfaces through the read loop as an unclean close.
func (c *Client) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(c.set.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		current := c.conn == conn
		c.mu.Unlock()
		if !current {
			return
		}

		deadline := time.Now().Add(c.set.writeTimeout)
		if err := conn.WriteControl(websocket.PingMessage, []byte("keepalive"), deadline); err != nil {
			c.logger.Warn("keepalive ping failed", zap.Error(err))
			conn.Close()
			return
		}
	}
}
