package server

import (
	"net/http"

	"flowsim/calculator"
	"flowsim/channel"
	"flowsim/material"
	"flowsim/model"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

type Config struct {
	Addr            string
	ReadBufferSize  int
	WriteBufferSize int
	MaxSteps        int
}

func LoadConfig(file *ini.File) Config {
	section := file.Section("server")
	return Config{
		Addr:            section.Key("Addr").MustString(":9000"),
		ReadBufferSize:  section.Key("ReadBufferSize").MustInt(1024),
		WriteBufferSize: section.Key("WriteBufferSize").MustInt(1024),
		MaxSteps:        section.Key("MaxSteps").MustInt(1000000),
	}
}

type Server struct {
	cfg      Config
	upgrader websocket.Upgrader

	calc    *calculator.Calculator
	catalog *material.Catalog
	setup   channel.Setup
}

func NewServer(cfg Config, calc *calculator.Calculator, catalog *material.Catalog, setup channel.Setup) *Server {
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		calc:    calc,
		catalog: catalog,
		setup:   setup,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(s.calc, s.catalog, s.setup, s.cfg.MaxSteps)
	hub.conn = conn
	done := make(chan struct{})
	go hub.handleRequest()
	go hub.handleResponse(done)

	log.WithField("remote", conn.RemoteAddr().String()).Info("client connected")
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("read message failed")
			}
			break
		}
		hub.msg <- msg
	}
	close(hub.msg)
	<-done
	log.WithField("remote", conn.RemoteAddr().String()).Info("client disconnected")
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.cfg.Addr).Info("server listening")
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}
