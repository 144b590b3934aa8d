package repositories

import (
	"errors"

	"outreachai_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository interface {
	Create(doc *models.Document) error
	FindByIDForUser(id, userID string) (*models.Document, error)
	FindByIDsForUser(ids []string, userID string) ([]models.Document, error)
	ListByUser(userID string) ([]models.Document, error)
	Update(doc *models.Document) error
	Delete(id, userID string) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(doc *models.Document) error {
	return r.db.Create(doc).Error
}

func (r *documentRepository) FindByIDForUser(id, userID string) (*models.Document, error) {
	var doc models.Document
	err := r.db.First(&doc, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) FindByIDsForUser(ids []string, userID string) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Where("id IN ? AND user_id = ?", ids, userID).Find(&docs).Error
	return docs, err
}

func (r *documentRepository) ListByUser(userID string) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *documentRepository) Update(doc *models.Document) error {
	return r.db.Save(doc).Error
}

func (r *documentRepository) Delete(id, userID string) error {
	result := r.db.Delete(&models.Document{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
