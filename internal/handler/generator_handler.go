package handler

import (
	"net/http"

	"hospital-analytics-backend/internal/generator"
	"hospital-analytics-backend/internal/service"
	"hospital-analytics-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type GeneratorHandler struct {
	generatorService *service.GeneratorService
	defaults         generator.Config
	csvDir           string
}

func NewGeneratorHandler(generatorService *service.GeneratorService, defaults generator.Config, csvDir string) *GeneratorHandler {
	return &GeneratorHandler{
		generatorService: generatorService,
		defaults:         defaults,
		csvDir:           csvDir,
	}
}

// generateRequest allows overriding the configured dataset shape per run.
type generateRequest struct {
	Seed           *int64 `json:"seed"`
	PatientCount   *int   `json:"patient_count"`
	AdmissionCount *int   `json:"admission_count"`
}

// Generate runs the dataset generator and writes the CSV files
func (h *GeneratorHandler) Generate(c *gin.Context) {
	cfg := h.defaults

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		if req.Seed != nil {
			cfg.Seed = *req.Seed
		}
		if req.PatientCount != nil && *req.PatientCount > 0 {
			cfg.PatientCount = *req.PatientCount
		}
		if req.AdmissionCount != nil && *req.AdmissionCount > 0 {
			cfg.AdmissionCount = *req.AdmissionCount
		}
	}

	result, err := h.generatorService.Generate(cfg, h.csvDir)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Generation failed: "+err.Error())
		return
	}

	utils.SuccessResponse(c, result)
}
