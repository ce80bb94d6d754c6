package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/avpetrov/PT-BookingService/internal/infra/storage/catalog"
	"github.com/avpetrov/PT-BookingService/internal/service/catalog/models"
)

// Service сервис для работы с каталогом: профиль тренера, услуги, расписание
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetTrainer получает профиль тренера
func (s *Service) GetTrainer(ctx context.Context) (*models.TrainerResponse, error) {
	trainer, err := s.catalogRepo.GetTrainer(ctx)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrTrainerNotFound) {
			s.logger.Warn("GetTrainer: trainer profile not found")
			return nil, ErrTrainerNotFound
		}
		s.logger.Error("GetTrainer: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetTrainer - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTrainer(trainer), nil
}

// ListSessionTypes получает список услуг тренера
func (s *Service) ListSessionTypes(ctx context.Context) (*models.SessionTypeListResponse, error) {
	sessionTypes, err := s.catalogRepo.ListSessionTypes(ctx)
	if err != nil {
		s.logger.Error("ListSessionTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSessionTypes - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSessionTypes: successfully fetched %d session types", len(sessionTypes))
	return models.FromDomainSessionTypes(sessionTypes), nil
}

// ListWorkingHours получает недельное расписание тренера
func (s *Service) ListWorkingHours(ctx context.Context) (*models.WorkingHoursListResponse, error) {
	workingHours, err := s.catalogRepo.ListWorkingHours(ctx)
	if err != nil {
		s.logger.Error("ListWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListWorkingHours: successfully fetched %d working days", len(workingHours))
	return models.FromDomainWorkingHours(workingHours), nil
}
