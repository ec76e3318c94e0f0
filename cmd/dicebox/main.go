package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pefman/dicebox/internal/config"
	"github.com/pefman/dicebox/internal/engine"
	"github.com/pefman/dicebox/internal/models"
	"github.com/pefman/dicebox/internal/physics"
	"github.com/pefman/dicebox/internal/stats"
)

// ========================= Config (env-configurable) =========================
// Defaults come from dicebox.yaml (optional); env overrides:
//   PORT / DICEBOX_PORT   listen port
//   DICEBOX_CONFIG        config file path (default: dicebox.yaml)

// Build metadata injected via -ldflags at build time
var (
	buildVersion = "dev"
	buildTime    = ""
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// ========================= Metrics =========================

var (
	rollsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dicebox_rolls_total",
			Help: "Total number of triggered rolls",
		},
		[]string{"kind"},
	)
	settlesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dicebox_die_settles_total",
			Help: "Total number of dice that came to rest",
		},
	)
)

func init() {
	prometheus.MustRegister(rollsTotal, settlesTotal)
}

// ========================= Server =========================

type server struct {
	sim *sim
	hub *hub
}

func main() {
	cfgPath := getenv("DICEBOX_CONFIG", "dicebox.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if p := getenv("PORT", getenv("DICEBOX_PORT", "")); p != "" {
		cfg.Listen = ":" + p
	}

	sim, err := newSim(cfg)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	srv := &server{sim: sim, hub: newHub()}
	go sim.run()

	r := mux.NewRouter()
	r.HandleFunc("/api/dice", srv.handleDice).Methods(http.MethodGet)
	r.HandleFunc("/api/roll", srv.handleRollAll).Methods(http.MethodPost)
	r.HandleFunc("/api/roll/{index:[0-9]+}", srv.handleRollOne).Methods(http.MethodPost)
	r.HandleFunc("/api/dice/values", srv.handleSetValues).Methods(http.MethodPost)
	r.HandleFunc("/api/dice/{index:[0-9]+}/value", srv.handleSetValue).Methods(http.MethodPost)
	r.HandleFunc("/api/stats", srv.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/api/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"version": buildVersion, "built": buildTime})
	})
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/ws", srv.handleWS)

	log.Printf("dicebox %s listening on %s (%d dice, %.0fHz)", buildVersion, cfg.Listen, cfg.Dice.Count, cfg.TickHz)
	log.Fatal(http.ListenAndServe(cfg.Listen, r))
}

// ========================= Handlers =========================

func (s *server) handleDice(w http.ResponseWriter, _ *http.Request) {
	var state models.TableState
	s.sim.do(func() {
		state = models.TableState{
			Values:  s.sim.roller.Values(),
			Sum:     s.sim.roller.Sum(),
			Rolling: s.sim.roller.IsRolling(),
		}
	})
	writeJSON(w, http.StatusOK, state)
}

func (s *server) handleRollAll(w http.ResponseWriter, _ *http.Request) {
	var err error
	s.sim.do(func() {
		err = s.sim.roller.RollAll(func(values []int) {
			for _, v := range values {
				stats.RecordValue(v)
				settlesTotal.Inc()
			}
			stats.RecordRoll(values)
			sum := 0
			for _, v := range values {
				sum += v
			}
			s.hub.broadcast(models.WsMsg{
				Type: models.MsgRollResult,
				Data: models.RollResult{Values: values, Sum: sum},
			})
		})
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	rollsTotal.WithLabelValues("all").Inc()
	s.hub.broadcast(models.WsMsg{Type: models.MsgRollStart, Data: models.RollStart{Kind: "all"}})
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "rolling"})
}

func (s *server) handleRollOne(w http.ResponseWriter, r *http.Request) {
	idx, _ := strconv.Atoi(mux.Vars(r)["index"])
	var err error
	s.sim.do(func() {
		err = s.sim.roller.RollOne(idx, func(value int) {
			stats.RecordValue(value)
			settlesTotal.Inc()
			s.hub.broadcast(models.WsMsg{
				Type: models.MsgDieSettled,
				Data: models.DieSettled{Index: idx, Value: value},
			})
		})
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	rollsTotal.WithLabelValues("one").Inc()
	s.hub.broadcast(models.WsMsg{Type: models.MsgRollStart, Data: models.RollStart{Kind: "one", Index: idx}})
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "rolling"})
}

func (s *server) handleSetValues(w http.ResponseWriter, r *http.Request) {
	var req models.SetValuesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid json"})
		return
	}
	var err error
	s.sim.do(func() {
		err = s.sim.roller.SetValues(req.Values)
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	s.handleDice(w, r)
}

func (s *server) handleSetValue(w http.ResponseWriter, r *http.Request) {
	idx, _ := strconv.Atoi(mux.Vars(r)["index"])
	var req models.SetValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid json"})
		return
	}
	var err error
	s.sim.do(func() {
		err = s.sim.roller.SetDieValue(idx, req.Value)
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	s.handleDice(w, r)
}

func (s *server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, stats.Get())
}

// ========================= Helpers =========================

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

// writeErr maps engine errors onto HTTP statuses: conflicts are expected
// under interactive use (double-tapping roll) and stay quiet, everything
// else is logged.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrAlreadyRolling), errors.Is(err, engine.ErrRollPending):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, engine.ErrIndexOutOfRange):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, engine.ErrLengthMismatch), errors.Is(err, engine.ErrValueNotMapped), errors.Is(err, engine.ErrNoDice):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}

// ========================= Simulation loop =========================

// sim owns the physics world and the roller. Everything that touches them
// runs on the loop goroutine: ticks advance the simulation, and HTTP
// handlers post closures through cmds, which run between ticks. That keeps
// the engine single-threaded without locks.
type sim struct {
	world  *physics.World
	roller *engine.Roller
	dt     float64
	cmds   chan func()
}

func newSim(cfg config.Config) (*sim, error) {
	settle, err := cfg.SettleConfig()
	if err != nil {
		return nil, err
	}
	faces, err := cfg.FaceValues()
	if err != nil {
		return nil, err
	}

	world := physics.NewWorld(physics.DefaultConfig())
	roller := engine.NewRoller(cfg.ImpulseRange())
	for i := 0; i < cfg.Dice.Count; i++ {
		table, err := engine.NewFaceValueTable(faces)
		if err != nil {
			return nil, err
		}
		// space dice out so they land apart even without body-body collision
		pos := [3]float64{float64(i) * 3 * cfg.Dice.HalfExtent, cfg.Dice.HalfExtent, 0}
		body := world.AddBox(pos, cfg.Dice.HalfExtent, cfg.Dice.Mass)
		if err := roller.AddDie(engine.NewDie(body, table, settle)); err != nil {
			return nil, err
		}
	}

	return &sim{
		world:  world,
		roller: roller,
		dt:     1 / cfg.TickHz,
		cmds:   make(chan func()),
	}, nil
}

func (s *sim) run() {
	ticker := time.NewTicker(time.Duration(float64(time.Second) * s.dt))
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.world.Step(s.dt)
			s.roller.Step()
		case fn := <-s.cmds:
			fn()
		}
	}
}

// do runs fn on the loop goroutine and waits for it.
func (s *sim) do(fn func()) {
	done := make(chan struct{})
	s.cmds <- func() {
		fn()
		close(done)
	}
	<-done
}
