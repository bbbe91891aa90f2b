package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/hsn-advisor/internal/application/advisor"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/dataset"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/hsn-advisor/pkg/errors"
)

// DatasetHandler exposes dataset administration endpoints: reload from disk
// and replace-by-upload.
type DatasetHandler struct {
	svc           *advisor.Service
	maxUploadSize int64
	logger        logging.Logger
}

// NewDatasetHandler creates a new DatasetHandler.
func NewDatasetHandler(svc *advisor.Service, maxUploadSize int64, logger logging.Logger) *DatasetHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &DatasetHandler{svc: svc, maxUploadSize: maxUploadSize, logger: logger}
}

// RegisterRoutes registers the dataset routes on the given group.
func (h *DatasetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/dataset/reload", h.Reload)
	rg.POST("/dataset", h.Upload)
}

// Reload handles POST /api/v1/dataset/reload.  A successful reload also
// resets the invalid-attempt tracker, so counters always describe attempts
// against the data currently being served.
func (h *DatasetHandler) Reload(c *gin.Context) {
	if err := h.svc.Reload(); err != nil {
		writeError(c, err)
		return
	}
	h.svc.ResetTracker()

	c.JSON(http.StatusOK, gin.H{
		"status":  "reloaded",
		"entries": h.svc.TableSize(),
	})
}

// Upload handles POST /api/v1/dataset.  The multipart "file" field replaces
// the reference data file on disk.  The upload is parsed and validated before
// it touches the live file, so a broken upload never disturbs the serving
// table.
func (h *DatasetHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		writeInvalidParam(c, `multipart form field "file" is required`)
		return
	}
	if h.maxUploadSize > 0 && file.Size > h.maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": ErrorBody{
			Code:    apperrors.CodeInvalidParam.String(),
			Message: fmt.Sprintf("upload exceeds the %d byte limit", h.maxUploadSize),
		}})
		return
	}

	src := h.svc.Source()
	wantExt := strings.ToLower(filepath.Ext(src.Path))
	if gotExt := strings.ToLower(filepath.Ext(file.Filename)); gotExt != wantExt {
		writeInvalidParam(c, fmt.Sprintf("uploaded file must have the %s extension, got %q", wantExt, file.Filename))
		return
	}

	tmpPath := src.Path + ".upload"
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		writeError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to store uploaded file"))
		return
	}

	// Parse the staged copy before replacing the live file.
	staged := src
	staged.Path = tmpPath
	if _, err := dataset.Load(staged); err != nil {
		_ = os.Remove(tmpPath)
		writeError(c, err)
		return
	}

	if err := os.Rename(tmpPath, src.Path); err != nil {
		_ = os.Remove(tmpPath)
		writeError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to replace reference data file"))
		return
	}

	if err := h.svc.Reload(); err != nil {
		writeError(c, err)
		return
	}
	h.svc.ResetTracker()

	h.logger.Info("reference data replaced by upload",
		logging.String("filename", file.Filename),
		logging.Int("entries", h.svc.TableSize()))

	c.JSON(http.StatusOK, gin.H{
		"status":  "uploaded",
		"entries": h.svc.TableSize(),
	})
}
