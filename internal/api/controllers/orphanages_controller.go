package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"happy/internal/models/request_models"
	"happy/internal/services"
	"happy/internal/storage"
	"happy/pkg/utils"
)

const imagesFormField = "images"

type OrphanagesController struct {
	orphanageService services.OrphanageServiceInterface
	imageStorage     storage.ImageStorage
	logger           *zap.Logger
}

func NewOrphanagesController(
	orphanageService services.OrphanageServiceInterface,
	imageStorage storage.ImageStorage,
	logger *zap.Logger,
) *OrphanagesController {
	return &OrphanagesController{
		orphanageService: orphanageService,
		imageStorage:     imageStorage,
		logger:           logger.Named("orphanages_controller"),
	}
}

// ListOrphanages godoc
// @Summary List orphanages
// @Description Fetch every registered orphanage with its images
// @Tags Orphanages
// @Produce json
// @Success 200 {array} response_models.Orphanage
// @Failure 500 {object} utils.APIResponse
// @Router /orphanages [get]
func (o *OrphanagesController) ListOrphanages(c *gin.Context) {
	orphanages, err := o.orphanageService.ListOrphanages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, o.logger, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, orphanages)
}

// GetOrphanageByID godoc
// @Summary Get orphanage
// @Description Fetch one orphanage by id
// @Tags Orphanages
// @Produce json
// @Param id path int true "Orphanage ID"
// @Success 200 {object} response_models.Orphanage
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /orphanages/{id} [get]
func (o *OrphanagesController) GetOrphanageByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		utils.HandleServiceError(c, o.logger, utils.ErrInvalidOrphanageID)
		return
	}

	orphanage, err := o.orphanageService.GetOrphanageByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, o.logger, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, orphanage)
}

// CreateOrphanage godoc
// @Summary Register orphanage
// @Description Create an orphanage from multipart form data with zero or more images
// @Tags Orphanages
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param latitude formData string true "Latitude"
// @Param longitude formData string true "Longitude"
// @Param about formData string true "About"
// @Param instructions formData string true "Visiting instructions"
// @Param opening_hours formData string true "Opening hours"
// @Param open_on_weekends formData string true "Open on weekends (true/false)"
// @Param images formData file false "Photos"
// @Success 201 {object} response_models.Orphanage
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /orphanages [post]
func (o *OrphanagesController) CreateOrphanage(c *gin.Context) {
	var req request_models.CreateOrphanageRequest
	if err := c.ShouldBind(&req); err != nil {
		o.logger.Debug("unable to bind orphanage form", zap.Error(err))
		utils.HandleServiceError(c, o.logger, bindError(err))
		return
	}

	paths, err := o.storeUploads(c)
	if err != nil {
		utils.HandleServiceError(c, o.logger, err)
		return
	}

	orphanage, err := o.orphanageService.CreateOrphanage(c.Request.Context(), req, paths)
	if err != nil {
		o.discardUploads(c, paths)
		utils.HandleServiceError(c, o.logger, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, orphanage)
}

// storeUploads writes every "images" part to storage before the service runs.
func (o *OrphanagesController) storeUploads(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return []string{}, nil
		}
		return nil, utils.ErrInvalidForm
	}

	files := form.File[imagesFormField]
	paths := make([]string, 0, len(files))
	for _, file := range files {
		path, err := o.imageStorage.Save(c.Request.Context(), file)
		if err != nil {
			o.discardUploads(c, paths)
			return nil, errors.Join(utils.ErrStorageError, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (o *OrphanagesController) discardUploads(c *gin.Context, paths []string) {
	if len(paths) == 0 {
		return
	}
	if err := o.imageStorage.Remove(c.Request.Context(), paths...); err != nil {
		o.logger.Warn("failed to remove discarded uploads", zap.Strings("paths", paths), zap.Error(err))
	}
}

// bindError names the offending field when a JSON body carries a non-string
// value, e.g. {"latitude": -20.62}; every field is expected as text.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &utils.ValidationError{Violations: []utils.FieldViolation{{
			Field:   typeErr.Field,
			Rule:    "string",
			Message: typeErr.Field + " must be sent as a string",
		}}}
	}
	return utils.ErrInvalidForm
}
