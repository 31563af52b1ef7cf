package handler

import (
	"net/http"
	"os"

	"hospital-analytics-backend/internal/service"
	"hospital-analytics-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ETLHandler struct {
	etlService *service.ETLService
	csvDir     string
}

func NewETLHandler(etlService *service.ETLService, csvDir string) *ETLHandler {
	return &ETLHandler{
		etlService: etlService,
		csvDir:     csvDir,
	}
}

// RunLoad extracts the generated CSV files and replace-loads them into the
// relational store
func (h *ETLHandler) RunLoad(c *gin.Context) {
	report, err := h.etlService.RunLoad(h.csvDir)
	if err != nil {
		if os.IsNotExist(err) || report == nil {
			utils.ErrorResponse(c, http.StatusNotFound, "CSV folder not found. Run generation first")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, report)
}
