package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AlexZinkM/paper-wallet/internal/engine"
	"github.com/AlexZinkM/paper-wallet/internal/model"
	"github.com/AlexZinkM/paper-wallet/internal/render"
	"github.com/AlexZinkM/paper-wallet/internal/session"
	"github.com/AlexZinkM/paper-wallet/internal/trigger"
)

const pageTitle = "Paper Wallet"

// PaperHandler serves paper wallet sessions
type PaperHandler struct {
	store  *session.Store
	engine engine.Engine
}

// NewPaperHandler creates a new PaperHandler
func NewPaperHandler(store *session.Store, e engine.Engine) *PaperHandler {
	return &PaperHandler{store: store, engine: e}
}

// CreateSession handles POST /sessions
// @Summary      Start a session
// @Description  Starts a paper wallet session (page load) with the confirmation dialog displayed
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  model.SessionResponse
// @Router       /sessions [post]
func (h *PaperHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	s := h.store.Create()
	writeJSON(w, http.StatusCreated, model.SessionResponse{
		ID:       s.ID,
		Progress: progressResponse(s.Snapshot()),
	})
}

// DeleteSession handles DELETE /sessions/{id}
// @Summary      End a session
// @Tags         sessions
// @Param        id   path  string  true  "Session ID"
// @Success      204
// @Router       /sessions/{id} [delete]
func (h *PaperHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed. Should be DELETE", http.StatusMethodNotAllowed)
		return
	}

	if err := h.store.Delete(r.PathValue("id")); err != nil {
		writeError(w, http.StatusNotFound, err, "not_found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Pointer handles POST /sessions/{id}/pointer
// @Summary      Record pointer movement
// @Description  Every 5th pointer event adds (x+y) mod 16 as one hex digit of entropy
// @Tags         entropy
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Session ID"
// @Param        request  body      model.PointerRequest  true  "Pointer position"
// @Success      200      {object}  model.ProgressResponse
// @Router       /sessions/{id}/pointer [post]
func (h *PaperHandler) Pointer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req model.PointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}

	writeJSON(w, http.StatusOK, progressResponse(s.ObservePointer(req.X, req.Y)))
}

// Key handles POST /sessions/{id}/key
// @Summary      Record key press
// @Description  Adds the hex form of code mod 32 to the entropy buffer
// @Tags         entropy
// @Accept       json
// @Produce      json
// @Param        id       path      string            true  "Session ID"
// @Param        request  body      model.KeyRequest  true  "Character code"
// @Success      200      {object}  model.ProgressResponse
// @Router       /sessions/{id}/key [post]
func (h *PaperHandler) Key(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req model.KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}

	writeJSON(w, http.StatusOK, progressResponse(s.ObserveKey(req.Code)))
}

// Progress handles GET /sessions/{id}/progress
// @Summary      Get entropy progress
// @Tags         entropy
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  model.ProgressResponse
// @Router       /sessions/{id}/progress [get]
func (h *PaperHandler) Progress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, progressResponse(s.Snapshot()))
}

// Show handles POST /sessions/{id}/show
// @Summary      Display the confirmation dialog
// @Description  Starts a new generation cycle. Wallets generated afterwards are appended to the page
// @Tags         generation
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  model.ProgressResponse
// @Router       /sessions/{id}/show [post]
func (h *PaperHandler) Show(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Show()
	writeJSON(w, http.StatusOK, progressResponse(s.Snapshot()))
}

// Confirm handles POST /sessions/{id}/confirm
// @Summary      Confirm and generate
// @Description  Hides the confirmation dialog, generates wallets from the collected entropy and renders them
// @Tags         generation
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  model.ConfirmResponse
// @Failure      409  {object}  model.ErrorResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /sessions/{id}/confirm [post]
func (h *PaperHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	s, ok := h.session(w, r)
	if !ok {
		return
	}

	res, err := s.Confirm()
	if err != nil {
		switch {
		case errors.Is(err, trigger.ErrNotVisible):
			writeError(w, http.StatusConflict, err, "dialog_hidden")
		case engine.IsPayloadError(err):
			log.Printf("session %s: generation failed: %v", s.ID, err)
			writeError(w, http.StatusBadGateway, err, "malformed_payload")
		default:
			log.Printf("session %s: generation failed: %v", s.ID, err)
			writeError(w, http.StatusInternalServerError, err, "")
		}
		return
	}

	resp := model.ConfirmResponse{Rendered: res.Rendered, Sections: []model.SectionResponse{}}
	for _, sec := range s.Sections() {
		if sec.ID < res.FirstID {
			continue
		}
		resp.Sections = append(resp.Sections, sectionResponse(sec, s.Code(sec.Target)))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Clear handles POST /sessions/{id}/clear
// @Summary      Clear rendered sections
// @Description  Removes rendered sections. Section ids are not reused and collected entropy is kept
// @Tags         generation
// @Param        id   path  string  true  "Session ID"
// @Success      204
// @Router       /sessions/{id}/clear [post]
func (h *PaperHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// Wallet handles GET /sessions/{id}/wallet
// @Summary      Printable wallet page
// @Description  Renders every section of the session as an HTML page with QR codes
// @Tags         generation
// @Produce      html
// @Param        id   path  string  true  "Session ID"
// @Success      200
// @Router       /sessions/{id}/wallet [get]
func (h *PaperHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	s, ok := h.session(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	err := s.WithPage(func(p *render.Page) error {
		return p.WriteHTML(w, pageTitle)
	})
	if err != nil {
		log.Printf("session %s: %v", s.ID, err)
	}
}

// Greet handles GET /greet
// @Summary      Demo wallet
// @Description  Returns one wallet generated without user entropy
// @Tags         generation
// @Produce      json
// @Success      200  {array}  model.WalletRecord
// @Router       /greet [get]
func (h *PaperHandler) Greet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	payload, err := h.engine.Greet()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err, "")
		return
	}
	set, err := engine.ParseWalletSet(payload)
	if err != nil {
		writeError(w, http.StatusBadGateway, err, "malformed_payload")
		return
	}
	writeJSON(w, http.StatusOK, set)
}

func (h *PaperHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err, "not_found")
		return nil, false
	}
	return s, true
}

func progressResponse(snap session.Snapshot) model.ProgressResponse {
	return model.ProgressResponse{
		Progress:         snap.Progress,
		Length:           snap.Length,
		State:            string(snap.State),
		TriggerStyle:     string(snap.TriggerStyle),
		IndicatorSuccess: snap.IndicatorSuccess,
		DialogVisible:    snap.DialogVisible,
	}
}

func sectionResponse(s render.Section, png []byte) model.SectionResponse {
	resp := model.SectionResponse{
		Kind:       string(s.Kind),
		ID:         s.ID,
		Label:      s.Label,
		Target:     s.Target,
		Address:    s.Address,
		PrivateKey: s.PrivateKey,
		HDSeed:     s.Seed.HDSeed,
		Path:       s.Seed.Path,
	}
	if png != nil {
		resp.QR = base64.StdEncoding.EncodeToString(png)
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error, code string) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}
