package handlers

import (
	"errors"
	"net/http"
	"time"

	associateRepo "serenia/database/repository/associate"
	"serenia/models"
	"serenia/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssociateHandler exposes the associate directory endpoints.
type AssociateHandler struct {
	Repo associateRepo.AssociateRepository
}

func NewAssociateHandler(repo associateRepo.AssociateRepository) *AssociateHandler {
	return &AssociateHandler{Repo: repo}
}

type createAssociateRequest struct {
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	FCMToken    string `json:"fcmToken"`
}

func (h *AssociateHandler) CreateAssociateHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req createAssociateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if req.Designation != models.DesignationPsychologist && req.Designation != models.DesignationCosmetologist {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown designation"})
		return
	}

	now := time.Now()
	assoc := models.Associate{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Designation: req.Designation,
		FCMToken:    req.FCMToken,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.Repo.Create(&assoc); err != nil {
		logger.Error("Failed to create associate", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create associate"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"associate": assoc})
}

func (h *AssociateHandler) GetAssociateHandler(c *gin.Context) {
	associateID := c.Param("associateID")

	assoc, err := h.Repo.GetByID(associateID)
	if err != nil {
		if errors.Is(err, associateRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Associate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch associate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"associate": assoc})
}

func (h *AssociateHandler) ListAssociatesHandler(c *gin.Context) {
	designation := c.Query("designation")

	var (
		associates []models.Associate
		err        error
	)
	if designation != "" {
		associates, err = h.Repo.GetByDesignation(designation)
	} else {
		associates, err = h.Repo.GetAll()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch associates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"associates": associates})
}

func (h *AssociateHandler) DeleteAssociateHandler(c *gin.Context) {
	associateID := c.Param("associateID")

	if err := h.Repo.Delete(associateID); err != nil {
		if errors.Is(err, associateRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Associate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete associate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Associate deleted"})
}
