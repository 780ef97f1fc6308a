/*
Package server implements msgpack IPC for document analysis services.

The server provides a minimal interface for uncommon-word analysis using
msgpack serialization over stdin/stdout. It is the boundary a presentation
collaborator (editor plugin, desktop shell) talks to: it hands over a raw
text blob and receives the ordered list of annotated words back.

# IPC

The server operates on a request response model where clients send
structured messages via stdin and receive responses through stdout. Each
message carries an ID, an op code, and the fields that op needs.

Analysis requests use this structure:

	{"id": "req_001", "op": "analyze", "t": "The crepuscular light...", "l": 75}

The server responds with records in ranker order:

	{"id": "req_001", "r": [{"w": "crepuscular", "d": "...", "e": "..."}], "c": 1, "t": 3}

Personal dictionary ops mutate the store and persist before responding:

	{"id": "dict_001", "op": "upsert", "w": "petrichor", "d": "smell of rain"}
	{"id": "dict_002", "op": "remove", "w": "petrichor"}

Lookups return the merged definition plus prefix neighbors on a miss:

	{"id": "def_001", "op": "define", "w": "lugubrios"}

Clients re-run "analyze" after a mutation; there is no incremental
re-ranking server side. Every request is processed synchronously with
timing info included in analysis responses.
*/
package server

// Request is the envelope for every incoming message.
type Request struct {
	ID         string `msgpack:"id"`
	Op         string `msgpack:"op"` // "analyze", "define", "upsert", "remove", "health"
	Text       string `msgpack:"t,omitempty"`
	Word       string `msgpack:"w,omitempty"`
	Definition string `msgpack:"d,omitempty"`
	Limit      int    `msgpack:"l,omitempty"`
}

// WordRecord is one annotated word in an analysis response.
type WordRecord struct {
	Word       string `msgpack:"w"`
	Definition string `msgpack:"d"`
	Example    string `msgpack:"e"`
}

// AnalyzeResponse carries the ordered analysis records.
type AnalyzeResponse struct {
	ID        string       `msgpack:"id"`
	Records   []WordRecord `msgpack:"r"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// DefineResponse answers a single-word lookup.
type DefineResponse struct {
	ID         string   `msgpack:"id"`
	Word       string   `msgpack:"w"`
	Definition string   `msgpack:"d"`
	Known      bool     `msgpack:"k"`
	Nearby     []string `msgpack:"n,omitempty"`
}

// StatusResponse acknowledges mutations and health checks.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
