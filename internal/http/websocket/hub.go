package websocket

import (
	"context"
	"net/http"
	"slices"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hbomb79/Marquee/pkg/logger"
)

var socketLogger = logger.Get("WebSocket")

type SocketHandler func(*SocketHub, *SocketMessage) error

// SocketHub is the struct responsible for managing
// the websocket upgrading, connecting, pushing and
// receiving of messages. Every client belongs to an
// authenticated user, and messages may be targeted at
// a single client or at every client of a user.
type SocketHub struct {
	handlers     map[string]SocketHandler
	upgrader     *websocket.Upgrader
	clients      []*socketClient
	registerCh   chan *socketClient
	deregisterCh chan *socketClient
	sendCh       chan *SocketMessage
	receiveCh    chan *SocketMessage
	running      atomic.Bool
}

// New returns a new SocketHub. Upgrade requests are only accepted
// from the origins provided; an empty list accepts any origin.
func New(allowedOrigins []string) *SocketHub {
	return &SocketHub{
		handlers: make(map[string]SocketHandler),
		upgrader: &websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, origin)
			},
		},
		sendCh:       make(chan *SocketMessage),
		receiveCh:    make(chan *SocketMessage),
		registerCh:   make(chan *socketClient),
		deregisterCh: make(chan *socketClient),
	}
}

// BindCommand binds the command provided to a socket handler
func (hub *SocketHub) BindCommand(command string, handler SocketHandler) *SocketHub {
	hub.handlers[command] = handler
	return hub
}

// Run starts the socket hub by listening on all related channels
// for incoming clients and messages. This method blocks until
// the context provided is cancelled.
func (hub *SocketHub) Run(ctx context.Context) error {
	if ctx.Err() != nil {
		socketLogger.Emit(logger.STOP, "Refusing to start socket hub as provided context is already cancelled\n")
		return nil
	}
	if !hub.running.CompareAndSwap(false, true) {
		socketLogger.Emit(logger.WARNING, "Attempting to start socketHub when already running! Ignoring request.\n")
		return nil
	}

	socketLogger.Emit(logger.INFO, "Opening SocketHub!\n")
	defer hub.close()
	for {
		select {
		case message := <-hub.sendCh:
			hub.deliver(message)
		case message := <-hub.receiveCh:
			go hub.handleMessage(message)
		case client := <-hub.registerCh:
			if idx, _ := hub.findClient(client.id); idx > -1 {
				socketLogger.Emit(logger.ERROR, "Attempted to register client that is already registered (duplicate uuid)! Illegal!\n")
				client.Close()
				break
			}

			hub.clients = append(hub.clients, client)
			socketLogger.Emit(logger.NEW, "Registered new client {%v} for user %s\n", client.id, client.userID)
		case client := <-hub.deregisterCh:
			if idx, _ := hub.findClient(client.id); idx != -1 {
				hub.clients = append(hub.clients[:idx], hub.clients[idx+1:]...)
				socketLogger.Emit(logger.REMOVE, "Deregistered client {%v}\n", client.id)
				break
			}

			socketLogger.Emit(logger.WARNING, "Attempted to deregister unknown client {%v}\n", client.id)
		case <-ctx.Done():
			socketLogger.Emit(logger.REMOVE, "Shutting down socket hub! Closing all clients.\n")
			return nil
		}
	}
}

// Send accepts a socket message and will emit this message on
// the send channel. The message is ignored if hub is not running.
func (hub *SocketHub) Send(message *SocketMessage) {
	if !hub.running.Load() {
		socketLogger.Emit(logger.DEBUG, "Attempted to send message via socket hub, however the hub is offline. Ignoring message.\n")
		return
	}

	hub.sendCh <- message
}

// UpgradeToSocket upgrades a given HTTP request to a websocket owned by
// the user provided, and adds the new client to the hub. This method
// blocks until the client disconnects.
func (hub *SocketHub) UpgradeToSocket(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	if !hub.running.Load() {
		socketLogger.Emit(logger.ERROR, "Failed to upgrade incoming HTTP request to a websocket: SocketHub has not been started!\n")
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	sock, err := hub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		socketLogger.Emit(logger.ERROR, "Failed to upgrade incoming HTTP request to a websocket: %v\n", err.Error())
		return
	}

	client := &socketClient{id: uuid.New(), userID: userID, socket: sock}
	hub.registerCh <- client
	defer func() {
		hub.deregisterCh <- client
		client.Close()
	}()

	hub.Send(&SocketMessage{
		Title:  "CONNECTION_ESTABLISHED",
		Body:   map[string]interface{}{"client": client.id, "user": userID},
		Target: &client.id,
		Type:   Welcome,
	})

	if err := client.Read(hub.receiveCh); err != nil {
		socketLogger.Emit(logger.DEBUG, "Client {%v} closed: %v\n", client.id, err.Error())
	}
}

// ClientCount returns the number of connected clients. Must only be
// used by the hub's own handlers or tests.
func (hub *SocketHub) ClientCount() int { return len(hub.clients) }

func (hub *SocketHub) close() {
	for _, client := range hub.clients {
		client.Close()
	}

	hub.clients = nil
	hub.running.Store(false)
	socketLogger.Emit(logger.STOP, "Socket hub is now closed!\n")
}

// deliver sends the message to its target client, or to every client of
// the target user. Messages with neither are broadcast to every client.
func (hub *SocketHub) deliver(message *SocketMessage) {
	switch {
	case message.Target != nil:
		if _, client := hub.findClient(*message.Target); client != nil {
			hub.sendTo(client, message)
		} else {
			socketLogger.Emit(logger.WARNING, "Attempted to send message to target {%v}, but no matching client was found.\n", *message.Target)
		}
	case message.User != nil:
		for _, client := range hub.clients {
			if client.userID == *message.User {
				hub.sendTo(client, message)
			}
		}
	default:
		for _, client := range hub.clients {
			hub.sendTo(client, message)
		}
	}
}

func (hub *SocketHub) sendTo(client *socketClient, message *SocketMessage) {
	if err := client.SendMessage(message); err != nil {
		socketLogger.Emit(logger.ERROR, "Failed to send message %s to client {%v}: %v\n", message.Title, client.id, err)
	}
}

// handleMessage forwards the command to the bound handler if one
// exists, otherwise the client is told the command is unknown
func (hub *SocketHub) handleMessage(command *SocketMessage) {
	if command.Type != Command {
		socketLogger.Emit(logger.WARNING, "SocketHub received a message from client {%v} of type {%v} - only commands can be sent to the server!\n", command.Origin, command.Type)
		return
	}

	replyWithError := func(err string) {
		hub.Send(command.FormReply("COMMAND_FAILURE", map[string]interface{}{"error": err}, ErrorResponse))
	}

	handler, ok := hub.handlers[command.Title]
	if !ok {
		socketLogger.Emit(logger.WARNING, "No handler found for command '%v'\n", command.Title)
		replyWithError("Unknown command")
		return
	}

	if err := handler(hub, command); err != nil {
		socketLogger.Emit(logger.ERROR, "Handler for command '%v' returned error - %v\n", command.Title, err.Error())
		replyWithError(err.Error())
	}
}

func (hub *SocketHub) findClient(id uuid.UUID) (int, *socketClient) {
	for idx, client := range hub.clients {
		if client.id == id {
			return idx, client
		}
	}

	return -1, nil
}
