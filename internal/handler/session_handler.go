package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/exam"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/model"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/response"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/service"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/validator"
)

// SessionHandler handles the exam-taking endpoints.
type SessionHandler struct {
	sessions *service.SessionService
	papers   *service.PaperService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *service.SessionService, papers *service.PaperService) *SessionHandler {
	return &SessionHandler{sessions: sessions, papers: papers}
}

// CreateSession godoc
// POST /api/v1/sessions
// Selects a test and opens a fresh session in the instructions phase.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req model.CreateSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	snap, err := h.sessions.Create(req.TestID, req.Candidate)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"session": snap})
}

// GetSession godoc
// GET /api/v1/sessions/:id
// Returns the palette snapshot: statuses, answers, marks, clock, phase.
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	snap, err := h.sessions.Snapshot(id)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snap})
}

// GetPaper godoc
// GET /api/v1/sessions/:id/paper
// Returns the candidate paper (rules + questions, no answer key).
func (h *SessionHandler) GetPaper(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	snap, err := h.sessions.Snapshot(id)
	if err != nil {
		failFromErr(c, err)
		return
	}
	paper, err := h.papers.Paper(c.Request.Context(), snap.TestID)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, paper)
}

// StartExam godoc
// POST /api/v1/sessions/:id/start
// Confirms the instructions and starts the countdown.
func (h *SessionHandler) StartExam(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	snap, err := h.sessions.Start(id)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snap})
}

// SelectOption godoc
// POST /api/v1/sessions/:id/answer
func (h *SessionHandler) SelectOption(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req model.SelectOptionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	snap, err := h.sessions.SelectOption(id, req.QuestionID, req.OptionIndex)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snap})
}

// ClearAnswer godoc
// POST /api/v1/sessions/:id/clear
func (h *SessionHandler) ClearAnswer(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req model.QuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	snap, err := h.sessions.ClearAnswer(id, req.QuestionID)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snap})
}

// ToggleMark godoc
// POST /api/v1/sessions/:id/mark
// Mark for review & next: flips the flag, then advances.
func (h *SessionHandler) ToggleMark(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req model.QuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	snap, err := h.sessions.ToggleMark(id, req.QuestionID)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snap})
}

// SaveAndNext godoc
// POST /api/v1/sessions/:id/save-next
func (h *SessionHandler) SaveAndNext(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req model.QuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	snap, err := h.sessions.SaveAndNext(id, req.QuestionID)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snap})
}

// Navigate godoc
// POST /api/v1/sessions/:id/navigate
func (h *SessionHandler) Navigate(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req model.NavigateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	snap, err := h.sessions.Navigate(id, req.TargetQuestionID)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snap})
}

// SubmitExam godoc
// POST /api/v1/sessions/:id/submit
// Finalizes the exam. The payload must carry confirm=true.
func (h *SessionHandler) SubmitExam(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req model.SubmitRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	snap, err := h.sessions.Submit(id, req.Confirm)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snap})
}

// GetResult godoc
// GET /api/v1/sessions/:id/result
// Returns the score card once the session is finalized.
func (h *SessionHandler) GetResult(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	report, err := h.sessions.Result(id)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": report})
}

// DiscardSession godoc
// DELETE /api/v1/sessions/:id
// Returns to the catalog: drops the session and everything in it.
func (h *SessionHandler) DiscardSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.sessions.Discard(id); err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"discarded": true})
}

// sessionID parses the :id path parameter, responding on failure.
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// failFromErr maps domain errors onto HTTP status codes and error codes.
func failFromErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
	case errors.Is(err, service.ErrTestNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrTestNotFound)
	case errors.Is(err, service.ErrConfirmationRequired):
		response.Fail(c, http.StatusBadRequest, response.ErrConfirmationRequired)
	case errors.Is(err, exam.ErrSectionLimit):
		response.Fail(c, http.StatusConflict, response.ErrSectionLimitReached)
	case errors.Is(err, exam.ErrQuestionNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrQuestionNotFound)
	case errors.Is(err, exam.ErrOptionOutOfRange):
		response.Fail(c, http.StatusBadRequest, response.ErrOptionOutOfRange)
	case errors.Is(err, exam.ErrSessionNotActive):
		response.Fail(c, http.StatusConflict, response.ErrSessionNotActive)
	case errors.Is(err, exam.ErrAlreadyStarted):
		response.Fail(c, http.StatusConflict, response.ErrSessionStarted)
	case errors.Is(err, exam.ErrAlreadyFinalized):
		response.Fail(c, http.StatusConflict, response.ErrSessionFinalized)
	case errors.Is(err, exam.ErrSessionNotScored):
		response.Fail(c, http.StatusConflict, response.ErrResultNotReady)
	case errors.Is(err, exam.ErrNoQuestions):
		response.Fail(c, http.StatusServiceUnavailable, response.ErrNoQuestions)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
