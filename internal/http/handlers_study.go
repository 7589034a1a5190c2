package http

import (
	"net/http"

	"logbook/internal/services"
)

// studyLogView is the list-response shape for one study log. Duration is
// reported in seconds regardless of the unit the log was created with.
type studyLogView struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	DurationSeconds int64  `json:"duration_seconds"`
	Date            string `json:"date"`
	CreatedAt       string `json:"created_at"`
}

func (s *Server) handleListStudyLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := s.studies.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	views := make([]studyLogView, 0, len(logs))
	for _, l := range logs {
		views = append(views, studyLogView{
			ID:              l.ID,
			Title:           l.Title,
			DurationSeconds: l.DurationSeconds,
			Date:            l.Date.String(),
			CreatedAt:       l.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleCreateStudyLog(w http.ResponseWriter, r *http.Request) {
	var in services.StudyCreateInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	msg, err := s.studies.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": msg})
}

func (s *Server) handleUpdateStudyLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var in services.StudyUpdateInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	msg, err := s.studies.Update(r.Context(), id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (s *Server) handleDeleteStudyLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.studies.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
