package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"psv/calculator"
	"psv/model"
)

// Hub serializes the request/reply traffic of one websocket connection.
// Requests arrive on msg, replies leave on reply; closing msg drains and
// stops both loops.
type Hub struct {
	conn  *websocket.Conn
	msg   chan model.Msg
	reply chan model.Msg
}

func NewHub(conn *websocket.Conn) *Hub {
	return &Hub{
		conn:  conn,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
	}
}

func (h *Hub) handleRequest() {
	for msg := range h.msg {
		h.reply <- h.dispatch(msg)
	}
	close(h.reply)
}

func (h *Hub) handleResponse() {
	for reply := range h.reply {
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.WithError(err).Error("websocket write failed")
		}
	}
}

// dispatch runs one request message through the engine and builds the reply.
func (h *Hub) dispatch(msg model.Msg) model.Msg {
	switch msg.Type {
	case "size":
		var in model.SizingInput
		if err := json.Unmarshal([]byte(msg.Content), &in); err != nil {
			return model.Msg{Type: "error", Content: "invalid sizing input: " + err.Error()}
		}
		applyDefaults(&in)
		result, err := calculator.Size(in)
		if err != nil {
			return model.Msg{Type: "error", Content: err.Error()}
		}
		data, err := json.Marshal(result)
		if err != nil {
			return model.Msg{Type: "error", Content: err.Error()}
		}
		return model.Msg{Type: "sized", Content: string(data)}
	default:
		log.WithFields(log.Fields{"type": msg.Type}).Warn("no such message type")
		return model.Msg{Type: "error", Content: "no such type: " + msg.Type}
	}
}
