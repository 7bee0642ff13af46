package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fina-ai/fina/core"
	"github.com/fina-ai/fina/logging"
	"github.com/fina-ai/fina/model"
	"github.com/fina-ai/fina/prompt"
)

// defaultConversationKey groups requests that carry no session identifier
// and no usable client address.
const defaultConversationKey = "default"

// fallbackReply is the only failure text a caller ever sees. Upstream detail
// stays in the server log.
const fallbackReply = "Maaf, aku lagi ada kendala teknis. Coba lagi sebentar ya 🙏"

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// handleChat validates the request, appends the user turn, builds the
// outbound payload and proxies it to the completion backend.
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	key := s.conversationKey(c, req.SessionID)

	// History as it stood before this message decides whether the greeting
	// directive applies and provides the serialized context block.
	history := s.store.Get(key)
	s.store.Append(key, core.NewUserMessage(req.Message))

	if s.cfg.Credential() == "" {
		s.logger.Error("completion credential not configured", "backend", s.cfg.Backend)
		c.JSON(http.StatusInternalServerError, gin.H{"reply": fallbackReply})
		return
	}

	outbound := model.Request{
		Instructions: prompt.Compose(req.Message, history),
		Turns:        core.Tail(s.store.Get(key), prompt.ContextWindow),
	}

	ctx, span := s.tel.StartSpan(c.Request.Context(), "model.complete")
	start := time.Now()
	resp, err := s.model.Complete(ctx, outbound)
	span.End()
	logging.LogModelCall(s.logger, s.model.Info().Name, totalTokens(resp.Usage), time.Since(start), err)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"reply": fallbackReply})
		return
	}
	s.tel.RecordTokenUsage(ctx, resp.Usage)

	reply := resp.Text
	if reply == "" {
		reply = fallbackReply
	}
	s.store.Append(key, core.NewAssistantMessage(reply))
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// conversationKey prefers the explicit session identifier, then the caller's
// network address, then a constant fallback.
func (s *Server) conversationKey(c *gin.Context, sessionID string) string {
	if key := strings.TrimSpace(sessionID); key != "" {
		return key
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return defaultConversationKey
}

// handleHealth reports liveness, the live session count and the configured
// static directory. Read-only, no side effects.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"version":       Version,
		"conversations": s.store.Size(),
		"staticDir":     s.cfg.StaticDir,
	})
}

// handleHistory returns the stored turns for a session key. Unknown keys
// yield an empty list; store reads are total.
func (s *Server) handleHistory(c *gin.Context) {
	key := strings.TrimSpace(c.Query("sessionId"))
	if key == "" {
		key = defaultConversationKey
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionId": key,
		"messages":  s.store.Get(key),
	})
}

// handleStatic serves static assets and the SPA fallback chain: the
// requested file, then the primary index document, then the secondary
// fallback, then a JSON 404.
func (s *Server) handleStatic(c *gin.Context) {
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		for _, candidate := range s.staticCandidates(c.Request.URL.Path) {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				c.File(candidate)
				return
			}
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// staticCandidates resolves the ordered list of file paths tried for an
// unmatched route. Requests escaping the static directory only see the
// index fallbacks.
func (s *Server) staticCandidates(urlPath string) []string {
	candidates := make([]string, 0, 3)
	cleaned := filepath.Join(s.cfg.StaticDir, filepath.Clean("/"+urlPath))
	if strings.HasPrefix(cleaned, filepath.Clean(s.cfg.StaticDir)+string(os.PathSeparator)) {
		candidates = append(candidates, cleaned)
	}
	return append(candidates,
		filepath.Join(s.cfg.StaticDir, "index.html"),
		filepath.Join(s.cfg.StaticDir, "fallback.html"),
	)
}

// totalTokens is a nil-safe accessor for logging.
func totalTokens(u *model.TokenUsage) int {
	if u == nil {
		return 0
	}
	return u.TotalTokens
}
