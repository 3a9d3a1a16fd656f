package handlers

import (
	"net/http"

	"github.com/mohamedfathy32/elnaseem-crm/services/storage"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxPassportSize caps passport uploads at 10 MB.
const maxPassportSize = 10 << 20

// StorageHandler exposes the passport upload endpoint.
type StorageHandler struct {
	Svc storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Svc: svc}
}

// UploadPassportHandler uploads a passport image or PDF and returns the
// secure URL the client document stores.
func (h *StorageHandler) UploadPassportHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, utils.Wrap(utils.KindInvalidArgument, "file not provided", err))
		return
	}
	if fileHeader.Size > maxPassportSize {
		utils.JSONError(c, utils.E(utils.KindInvalidArgument, "file exceeds the 10MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, utils.Wrap(utils.KindInvalidArgument, "unreadable file", err))
		return
	}
	defer file.Close()

	url, err := h.Svc.UploadPassport(c.Request.Context(), file, fileHeader)
	if err != nil {
		logger.Error("Passport upload failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
