package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"happy/internal/models/db_models"
	"happy/internal/models/request_models"
	"happy/internal/models/response_models"
	"happy/internal/repositories"
	"happy/internal/views"
	"happy/pkg/utils"
)

type OrphanageServiceInterface interface {
	ListOrphanages(ctx context.Context) ([]response_models.Orphanage, error)
	GetOrphanageByID(ctx context.Context, id int64) (response_models.Orphanage, error)
	CreateOrphanage(ctx context.Context, req request_models.CreateOrphanageRequest, imagePaths []string) (response_models.Orphanage, error)
}

type OrphanageService struct {
	orphanageRepository repositories.OrphanageRepository
	validator           *OrphanageValidator
	imageBaseURL        string
	logger              *zap.Logger
}

func NewOrphanageService(
	orphanageRepository repositories.OrphanageRepository,
	validator *OrphanageValidator,
	imageBaseURL string,
	logger *zap.Logger,
) OrphanageServiceInterface {
	return &OrphanageService{
		orphanageRepository: orphanageRepository,
		validator:           validator,
		imageBaseURL:        imageBaseURL,
		logger:              logger.Named("orphanages"),
	}
}

func (o *OrphanageService) ListOrphanages(ctx context.Context) ([]response_models.Orphanage, error) {
	orphanages, err := o.orphanageRepository.ListWithImages(ctx)
	if err != nil {
		o.logger.Error("error listing orphanages", zap.Error(err))
		return nil, fmt.Errorf("list orphanages: %w: %w", utils.ErrDatabaseError, err)
	}

	return views.RenderOrphanages(orphanages, o.imageBaseURL), nil
}

func (o *OrphanageService) GetOrphanageByID(ctx context.Context, id int64) (response_models.Orphanage, error) {
	if id <= 0 {
		return response_models.Orphanage{}, utils.ErrInvalidOrphanageID
	}

	orphanage, err := o.orphanageRepository.GetByIDWithImages(ctx, id)
	if err != nil {
		o.logger.Error("error fetching orphanage", zap.Int64("id", id), zap.Error(err))
		return response_models.Orphanage{}, fmt.Errorf("get orphanage %d: %w: %w", id, utils.ErrDatabaseError, err)
	}

	if orphanage == nil {
		return response_models.Orphanage{}, utils.ErrOrphanageNotFound
	}

	return views.RenderOrphanage(*orphanage, o.imageBaseURL), nil
}

// CreateOrphanage validates the request together with the stored image names
// and persists the orphanage with its images. Nothing is written when
// validation fails.
func (o *OrphanageService) CreateOrphanage(ctx context.Context, req request_models.CreateOrphanageRequest, imagePaths []string) (response_models.Orphanage, error) {
	req = normalizeRequest(req)
	req.Images = make([]request_models.ImageInput, 0, len(imagePaths))
	for _, path := range imagePaths {
		req.Images = append(req.Images, request_models.ImageInput{Path: strings.TrimSpace(path)})
	}

	if err := o.validator.Validate(req); err != nil {
		return response_models.Orphanage{}, err
	}

	newOrphanage, err := buildOrphanage(req)
	if err != nil {
		return response_models.Orphanage{}, err
	}

	if _, err := o.orphanageRepository.CreateOrphanage(ctx, newOrphanage); err != nil {
		o.logger.Error("error creating orphanage", zap.String("name", newOrphanage.Name), zap.Error(err))
		return response_models.Orphanage{}, fmt.Errorf("create orphanage: %w: %w", utils.ErrDatabaseError, err)
	}

	o.logger.Info("orphanage created",
		zap.Int64("id", newOrphanage.ID),
		zap.Int("images", len(newOrphanage.Images)),
	)
	return views.RenderOrphanage(*newOrphanage, o.imageBaseURL), nil
}

func normalizeRequest(req request_models.CreateOrphanageRequest) request_models.CreateOrphanageRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Latitude = strings.TrimSpace(req.Latitude)
	req.Longitude = strings.TrimSpace(req.Longitude)
	req.About = strings.TrimSpace(req.About)
	req.Instructions = strings.TrimSpace(req.Instructions)
	req.OpeningHours = strings.TrimSpace(req.OpeningHours)
	req.OpenOnWeekends = strings.TrimSpace(req.OpenOnWeekends)
	return req
}

// buildOrphanage converts a validated request into its typed model. The
// parse failures below are already ruled out by the validator's latitude,
// longitude and boolean rules; they stay as a safety net.
func buildOrphanage(req request_models.CreateOrphanageRequest) (*db_models.Orphanage, error) {
	latitude, err := decimal.NewFromString(req.Latitude)
	if err != nil {
		return nil, singleViolation("latitude", "latitude", "latitude must be a decimal number")
	}
	longitude, err := decimal.NewFromString(req.Longitude)
	if err != nil {
		return nil, singleViolation("longitude", "longitude", "longitude must be a decimal number")
	}
	openOnWeekends, err := strconv.ParseBool(req.OpenOnWeekends)
	if err != nil {
		return nil, singleViolation("open_on_weekends", "boolean", "open_on_weekends must be true or false")
	}

	images := make([]db_models.Image, 0, len(req.Images))
	for _, image := range req.Images {
		images = append(images, db_models.Image{Path: image.Path})
	}

	return &db_models.Orphanage{
		Name:           req.Name,
		Latitude:       latitude,
		Longitude:      longitude,
		About:          req.About,
		Instructions:   req.Instructions,
		OpeningHours:   req.OpeningHours,
		OpenOnWeekends: openOnWeekends,
		Images:         images,
	}, nil
}

func singleViolation(field, rule, message string) *utils.ValidationError {
	return &utils.ValidationError{Violations: []utils.FieldViolation{{Field: field, Rule: rule, Message: message}}}
}
