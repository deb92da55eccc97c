package measurementService

import (
	"GarmentGolang/internal/api/measurement"
	"GarmentGolang/internal/entity"
	"GarmentGolang/pkg/gemini"
	"GarmentGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IMeasurementService interface {
	Analyze(ctx context.Context, imagePayload string, model entity.GarmentModel) (*entity.AnalysisResult, error)
	Validate(result *entity.AnalysisResult) entity.ValidationOutcome
	AnalyzeBatch(ctx context.Context, images []string, model entity.GarmentModel) (*measurement.BatchResponse, error)
}

type measurementService struct {
	log    *logrus.Logger
	gemini gemini.IGemini
	utils  utils.IUtils
}

func New(
	log *logrus.Logger,
	gemini gemini.IGemini,
	utils utils.IUtils,
) IMeasurementService {
	return &measurementService{
		log:    log,
		gemini: gemini,
		utils:  utils,
	}
}
