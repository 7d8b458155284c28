package websocket

import "encoding/json"

type OutgoingMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type IncomingMessage struct {
	From  int64           `json:"from"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}
