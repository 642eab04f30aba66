// Package analysis runs the inventory analyses against datasets stored in zip archives.
package analysis

import (
	"fmt"
	"log/slog"

	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/domain/repositories"
	"github.com/vsinha/inventory/pkg/domain/services"
	"github.com/vsinha/inventory/pkg/domain/services/forecasting"
	"github.com/vsinha/inventory/pkg/infrastructure/logging"
)

// ForecastRequest describes a forecast of daily demand built from a sales dataset
type ForecastRequest struct {
	ArchivePath     string
	FileName        string
	DateColumn      string
	QuantityColumn  string
	Periods         int
	SeasonalPeriods int
}

// AnalysisService loads one dataset per call from an archive and runs the
// matching in-memory analysis on it unchanged.
type AnalysisService struct {
	source repositories.DatasetSource
	logger *slog.Logger
}

// NewAnalysisService creates a service reading archives through source
func NewAnalysisService(source repositories.DatasetSource, logger *slog.Logger) *AnalysisService {
	return &AnalysisService{
		source: source,
		logger: logging.OrDiscard(logger),
	}
}

// OpenArchive loads every CSV member of the archive
func (s *AnalysisService) OpenArchive(archivePath string) (repositories.DatasetRepository, error) {
	return s.source.OpenRepository(archivePath)
}

// ListDatasets returns the stems of every CSV member of the archive
func (s *AnalysisService) ListDatasets(archivePath string) ([]string, error) {
	repo, err := s.OpenArchive(archivePath)
	if err != nil {
		return nil, err
	}
	return repo.Names(), nil
}

// LoadDataset returns a single dataset from the archive
func (s *AnalysisService) LoadDataset(archivePath, fileName string) (*entities.Table, error) {
	repo, err := s.source.OpenRepository(archivePath, fileName)
	if err != nil {
		return nil, err
	}
	table, err := repo.GetDataset(fileName)
	if err != nil {
		return nil, err
	}
	s.logger.Info("dataset selected", "archive", archivePath, "file", fileName, "rows", table.Len())
	return table, nil
}

// ClassifyInventoryFromArchive runs ABC classification on one archive member
func (s *AnalysisService) ClassifyInventoryFromArchive(archivePath, fileName, valueColumn string, thresholds services.ABCThresholds) (*entities.Table, error) {
	table, err := s.LoadDataset(archivePath, fileName)
	if err != nil {
		return nil, err
	}
	return services.ClassifyInventory(table, valueColumn, thresholds)
}

// CalculateEOQFromArchive computes the EOQ of every row of one archive member
func (s *AnalysisService) CalculateEOQFromArchive(archivePath, fileName, demandColumn, orderCostColumn, holdingCostColumn string) (*entities.Table, []float64, error) {
	table, err := s.LoadDataset(archivePath, fileName)
	if err != nil {
		return nil, nil, err
	}
	values, err := services.CalculateEOQFromTable(table, demandColumn, orderCostColumn, holdingCostColumn)
	if err != nil {
		return nil, nil, err
	}
	return table, values, nil
}

// CalculateReorderPointsFromArchive computes the reorder point of every row of one archive member
func (s *AnalysisService) CalculateReorderPointsFromArchive(archivePath, fileName, dailyDemandColumn, leadTimeColumn, safetyStockColumn string) (*entities.Table, []float64, error) {
	table, err := s.LoadDataset(archivePath, fileName)
	if err != nil {
		return nil, nil, err
	}
	values, err := services.CalculateReorderPointsFromTable(table, dailyDemandColumn, leadTimeColumn, safetyStockColumn)
	if err != nil {
		return nil, nil, err
	}
	return table, values, nil
}

// ComputeLeadTimesFromArchive computes supplier lead times from one archive member
func (s *AnalysisService) ComputeLeadTimesFromArchive(archivePath, fileName string, params services.LeadTimeParams) (*services.LeadTimeResult, error) {
	table, err := s.LoadDataset(archivePath, fileName)
	if err != nil {
		return nil, err
	}
	return services.ComputeLeadTimes(table, params)
}

// TopSellingFromArchive ranks products by total quantity sold in one archive member
func (s *AnalysisService) TopSellingFromArchive(archivePath, fileName, productColumn, quantityColumn string, topN int) ([]services.ProductSales, error) {
	table, err := s.LoadDataset(archivePath, fileName)
	if err != nil {
		return nil, err
	}
	return services.TopSellingProducts(table, productColumn, quantityColumn, topN)
}

// ForecastFromArchive aggregates one archive member to daily demand and
// forecasts the following periods days.
func (s *AnalysisService) ForecastFromArchive(req ForecastRequest) (*entities.DemandSeries, error) {
	table, err := s.LoadDataset(req.ArchivePath, req.FileName)
	if err != nil {
		return nil, err
	}

	daily, err := services.DailyDemand(table, req.DateColumn, req.QuantityColumn)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("daily demand aggregated", "days", daily.Len())

	forecast, err := forecasting.Forecast(daily, req.Periods, forecasting.Options{SeasonalPeriods: req.SeasonalPeriods})
	if err != nil {
		return nil, fmt.Errorf("forecast of %s: %w", req.FileName, err)
	}
	return forecast, nil
}
