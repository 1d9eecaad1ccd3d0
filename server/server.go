package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"psv/calculator"
	"psv/geometry"
	"psv/model"
)

// Server exposes the sizing engine over HTTP JSON and websocket. It holds
// no calculation state; every request is one pure engine call.
type Server struct {
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(upgrader websocket.Upgrader) *Server {
	addr := srvCfg.Addr
	if env := os.Getenv("PSV_SERVER_ADDR"); env != "" {
		addr = env
	}
	return &Server{addr: addr, upgrader: upgrader}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/calculate", s.handleCalculate).Methods(http.MethodPost)
	r.HandleFunc("/ws", s.serveWs)
	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	return r
}

func (s *Server) Serve() {
	log.WithFields(log.Fields{"addr": s.addr}).Info("listening")
	if err := http.ListenAndServe(s.addr, s.Router()); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var in model.SizingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	applyDefaults(&in)
	result, err := calculator.Size(in)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// serveWs upgrades the connection and hands it to a per-connection hub.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(conn)
	go hub.handleRequest()
	go hub.handleResponse()
	defer close(hub.msg)

	var msg model.Msg
	for {
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).Info("websocket closed")
			return
		}
		hub.msg <- msg
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// applyDefaults fills the snapshot fields the caller may omit. No sizing
// arithmetic happens here.
func applyDefaults(in *model.SizingInput) {
	if in.Relief.Atmosphere == 0 {
		in.Relief.Atmosphere = srvCfg.DefaultAtmospherePsia
	}
}

// statusFor maps engine errors onto HTTP statuses: input-attributable
// failures are 400s, a convergence failure is a defect and stays a 500.
func statusFor(err error) int {
	var geomErr *geometry.GeometryError
	var propErr *calculator.InvalidFluidPropertyError
	if errors.As(err, &geomErr) || errors.As(err, &propErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("response encode failed")
	}
}
