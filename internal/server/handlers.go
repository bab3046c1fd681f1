package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/san-kum/sortviz/internal/animation"
	"github.com/san-kum/sortviz/internal/sorting"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now(),
			Uptime:    time.Since(s.startTime),
			Version:   Version,
		},
	})
}

func (s *Server) handleAlgorithms(c *gin.Context) {
	infos := make([]AlgorithmInfo, 0, len(sorting.Algorithms))
	for _, a := range sorting.Algorithms {
		infos = append(infos, AlgorithmInfo{Name: a.String(), Title: a.Title(), Description: a.Description()})
	}
	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: AlgorithmsResponse{
			Algorithms: infos,
			Selected:   s.session.Algorithm().String(),
			Total:      len(infos),
		},
	})
}

func (s *Server) handleFrame(c *gin.Context) {
	s.respondStatus(c, "")
}

func (s *Server) handleCreate(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid create request: "+err.Error())
		return
	}

	s.mu.Lock()
	s.halt()
	var err error
	if len(req.Values) > 0 {
		err = s.session.Load(req.Values)
	} else {
		err = s.session.CreateFromText(sizeText(req.Size))
	}
	s.mu.Unlock()

	if err != nil {
		s.respondError(c, err)
		return
	}
	s.respondStatus(c, "sequence created")
}

// sizeText renders the JSON size field back to the text a user would type.
func sizeText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (s *Server) handleAlgorithm(c *gin.Context) {
	var req AlgorithmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid algorithm request: "+err.Error())
		return
	}
	if err := s.session.SelectAlgorithm(req.Name); err != nil {
		s.respondError(c, err)
		return
	}
	s.respondStatus(c, "algorithm selected: "+s.session.Algorithm().Title())
}

func (s *Server) handleInterval(c *gin.Context) {
	var req IntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid interval request: "+err.Error())
		return
	}
	if err := s.session.SetInterval(req.Ms); err != nil {
		s.respondError(c, err)
		return
	}
	s.respondStatus(c, fmt.Sprintf("interval set to %dms", req.Ms))
}

func (s *Server) handleStart(c *gin.Context) {
	s.mu.Lock()
	s.halt()
	err := s.session.Start()
	if err == nil && s.session.Running() {
		s.driver.Start(s.ctx)
	}
	s.mu.Unlock()

	if err != nil {
		s.respondError(c, err)
		return
	}
	s.respondStatus(c, "animation started")
}

func (s *Server) handleStop(c *gin.Context) {
	s.mu.Lock()
	s.halt()
	s.mu.Unlock()
	s.respondStatus(c, "animation stopped")
}

func (s *Server) handleStep(c *gin.Context) {
	s.mu.Lock()
	s.halt()
	res, err := s.session.StepOnce()
	s.mu.Unlock()

	if err != nil {
		s.respondError(c, err)
		return
	}
	msg := "stepped"
	if res == sorting.Done {
		msg = "done"
	}
	s.respondStatus(c, msg)
}

func (s *Server) handleReset(c *gin.Context) {
	s.mu.Lock()
	s.halt()
	s.session.Reset()
	s.mu.Unlock()
	s.respondStatus(c, "session reset")
}

func (s *Server) respondStatus(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, ApiResponse{
		Status:  "success",
		Message: msg,
		Data:    FrameResponse(s.session.Status()),
	})
}

func (s *Server) respondError(c *gin.Context, err error) {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	c.JSON(code, ApiResponse{
		Status: "error",
		Error:  err.Error(),
	})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ApiResponse{
		Status: "error",
		Error:  msg,
	})
}

// statusCode maps session errors to HTTP status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, sorting.ErrInvalidInput),
		errors.Is(err, sorting.ErrInvalidSize),
		errors.Is(err, sorting.ErrInvalidValues),
		errors.Is(err, sorting.ErrInvalidAlgorithm),
		errors.Is(err, animation.ErrInvalidInterval):
		return http.StatusBadRequest
	case errors.Is(err, sorting.ErrNoSequence),
		errors.Is(err, animation.ErrAnimating):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
