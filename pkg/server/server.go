package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ebmartin/uncommon/internal/utils"
	"github.com/ebmartin/uncommon/pkg/analyze"
	"github.com/ebmartin/uncommon/pkg/config"
	"github.com/ebmartin/uncommon/pkg/dictionary"
)

// Server handles the IPC for document analysis
type Server struct {
	dict *dictionary.Merger
	opts analyze.Options
	cfg  config.ServerConfig
	dec  *msgpack.Decoder
	enc  *msgpack.Encoder
}

// NewServer creates an analysis server using stdin/stdout for IPC
func NewServer(dict *dictionary.Merger, opts analyze.Options, cfg config.ServerConfig) *Server {
	return newServer(dict, opts, cfg, os.Stdin, os.Stdout)
}

func newServer(dict *dictionary.Merger, opts analyze.Options, cfg config.ServerConfig, r io.Reader, w io.Writer) *Server {
	return &Server{
		dict: dict,
		opts: opts,
		cfg:  cfg,
		dec:  msgpack.NewDecoder(r),
		enc:  msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns when the client
// closes its end of the pipe.
func (s *Server) Start() error {
	log.Debug("Starting analysis server")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request by op code
func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "analyze":
		s.handleAnalyze(request)
	case "define":
		s.handleDefine(request)
	case "upsert":
		s.handleUpsert(request)
	case "remove":
		s.handleRemove(request)
	case "health":
		s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

// handleAnalyze runs the full pipeline over the request text. An empty
// text is not an error, it just yields zero records.
func (s *Server) handleAnalyze(request Request) {
	if s.cfg.MaxTextLen > 0 && len(request.Text) > s.cfg.MaxTextLen {
		s.sendError(request.ID, fmt.Sprintf("Text exceeds maximum length of %d bytes", s.cfg.MaxTextLen), 413)
		log.Debugf("Rejected oversized analyze request (%d bytes)", len(request.Text))
		return
	}

	opts := s.opts
	if request.Limit > 0 {
		opts.Limit = request.Limit
	} else if s.cfg.DefaultLimit > 0 {
		opts.Limit = s.cfg.DefaultLimit
	}

	start := time.Now()
	records := analyze.NewAnalyzer(s.dict, opts).Analyze(request.Text)
	elapsed := time.Since(start)

	out := make([]WordRecord, len(records))
	for i, r := range records {
		out[i] = WordRecord{
			Word:       r.Word,
			Definition: r.Definition,
			Example:    r.ExampleFromText,
		}
	}

	s.sendResponse(AnalyzeResponse{
		ID:        request.ID,
		Records:   out,
		Count:     len(out),
		TimeTaken: elapsed.Milliseconds(),
	})
}

// handleDefine answers a single-word lookup with prefix neighbors on a miss
func (s *Server) handleDefine(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		return
	}

	known := s.dict.Defined(request.Word)
	response := DefineResponse{
		ID:         request.ID,
		Word:       utils.NormalizeWord(request.Word),
		Definition: s.dict.Lookup(request.Word),
		Known:      known,
	}
	if !known {
		response.Nearby = s.dict.Nearby(request.Word, s.cfg.MaxNearby)
	}
	s.sendResponse(response)
}

// handleUpsert writes one personal dictionary entry
func (s *Server) handleUpsert(request Request) {
	if request.Word == "" || request.Definition == "" {
		s.sendError(request.ID, "Missing 'w' or 'd' parameter", 400)
		return
	}
	if err := s.dict.Upsert(request.Word, request.Definition); err != nil {
		log.Errorf("Upserting %q: %v", request.Word, err)
		s.sendError(request.ID, "Failed to persist entry", 500)
		return
	}
	s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
}

// handleRemove deletes one personal dictionary entry
func (s *Server) handleRemove(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		return
	}
	if err := s.dict.Remove(request.Word); err != nil {
		log.Errorf("Removing %q: %v", request.Word, err)
		s.sendError(request.ID, "Failed to persist removal", 500)
		return
	}
	s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
}

// sendResponse encodes the given response and writes it to the client
func (s *Server) sendResponse(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
