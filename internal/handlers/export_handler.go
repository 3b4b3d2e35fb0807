package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"impactio/internal/export"
	"impactio/internal/monitoring"
	"impactio/internal/services"
)

type ExportHandler struct {
	dashboard *DashboardHandler
	exports   *services.ExportService
	notifier  services.Notifier
}

// NewExportHandler; notifier may be nil when Telegram is not configured.
func NewExportHandler(dashboard *DashboardHandler, exports *services.ExportService, notifier services.Notifier) *ExportHandler {
	return &ExportHandler{dashboard: dashboard, exports: exports, notifier: notifier}
}

// @Summary      Экспорт лидов
// @Description  Downloads the currently filtered leads as csv (default), xlsx or pdf
// @Tags         Export
// @Produce      octet-stream
// @Param        format  query  string  false  "csv, xlsx or pdf"
// @Param        search  query  string  false  "Search in name, email, company"
// @Param        status  query  string  false  "Lead status or all"
// @Param        source  query  string  false  "Lead source or all"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /dashboard/leads/export [get]
func (h *ExportHandler) Download(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		respondError(c, "export.download", err)
		return
	}
	crit, err := h.dashboard.criteria(c, sess)
	if err != nil {
		respondError(c, "export.download", err)
		return
	}
	file, err := h.exports.Export(c.Request.Context(), sess, crit, format)
	if err != nil {
		respondError(c, "export.download", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Header("X-Export-Rows", strconv.Itoa(file.Rows))
	c.Data(http.StatusOK, file.ContentType, file.Body)
}

type EmailExportRequest struct {
	To     string `json:"to"`
	Format string `json:"format"`
}

// @Summary      Экспорт на почту
// @Description  Mails the filtered export as an attachment. Empty "to" means the signed-in user.
// @Tags         Export
// @Accept       json
// @Produce      json
// @Param        request  body  EmailExportRequest  false  "Recipient and format"
// @Success      202  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Security     BearerAuth
// @Router       /dashboard/leads/export/email [post]
func (h *ExportHandler) Email(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	var req EmailExportRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		respondError(c, "export.email", err)
		return
	}
	crit, err := h.dashboard.criteria(c, sess)
	if err != nil {
		respondError(c, "export.email", err)
		return
	}
	file, err := h.exports.EmailExport(c.Request.Context(), sess, crit, format, req.To)
	if err != nil {
		respondError(c, "export.email", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"message":  "Export sent",
		"filename": file.Filename,
		"rows":     file.Rows,
	})
}

// @Summary      Дайджест в Telegram
// @Description  Sends the current metrics to the configured Telegram chat
// @Tags         Export
// @Produce      json
// @Success      202  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Security     BearerAuth
// @Router       /dashboard/digest [post]
func (h *ExportHandler) Digest(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	if h.notifier == nil {
		respondError(c, "export.digest", services.ErrNotifierDisabled)
		return
	}
	m, err := h.dashboard.Service.Metrics(c.Request.Context(), sess)
	if err != nil {
		respondError(c, "export.digest", err)
		return
	}
	err = h.notifier.SendDigest(sess, m)
	monitoring.RecordNotification("telegram", err)
	if err != nil {
		respondError(c, "export.digest", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Digest sent"})
}
