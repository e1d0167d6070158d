package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/animtx/anim"
)

// An Api exposes the playback transport over HTTP for a timeline UI: the
// playhead, the keyframe markers and the play/pause/reset controls.
type Api struct {
	controller *anim.Controller
}

// NewApi creates an instance of an Api.
func NewApi(controller *anim.Controller) *Api {
	a := new(Api)
	a.controller = controller
	return a
}

type transportState struct {
	CurrentTime   float64   `json:"currentTime"`
	Duration      float64   `json:"duration"`
	Playing       bool      `json:"playing"`
	KeyframeTimes []float64 `json:"keyframeTimes"`
}

func (a *Api) handleTransport(w http.ResponseWriter, r *http.Request) {
	state := transportState{
		CurrentTime:   a.controller.CurrentTime(),
		Duration:      a.controller.Duration(),
		Playing:       a.controller.IsPlaying(),
		KeyframeTimes: a.controller.KeyframeTimes(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// handleSeek moves the playhead and resolves the tracks so the scrub is
// visible immediately.
func (a *Api) handleSeek(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Time float64 `json:"time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.controller.SetTime(body.Time)
	a.controller.Update()
	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) handlePlay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.controller.Play()
	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) handlePause(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.controller.Pause()
	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.controller.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// Handler returns the transport routes.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/transport", a.handleTransport)
	mux.HandleFunc("/transport/seek", a.handleSeek)
	mux.HandleFunc("/transport/play", a.handlePlay)
	mux.HandleFunc("/transport/pause", a.handlePause)
	mux.HandleFunc("/transport/reset", a.handleReset)
	return mux
}

// Serve listens on addr until the process exits.
func (a *Api) Serve(addr string) {
	if addr == "" {
		addr = ":3000"
	}

	log.Println("Listening...")
	http.ListenAndServe(addr, a.Handler())
}
