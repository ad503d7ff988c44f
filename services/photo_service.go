package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/openlot/openlot-api/models"
	"github.com/openlot/openlot-api/utils"
	"gorm.io/gorm"
)

// PhotoService stores and resolves car photos. Payloads arrive as base64
// strings; when S3 offload is enabled the decoded bytes go to the bucket
// and the row keeps only the object key.
type PhotoService interface {
	// StoreCarPhoto validates a payload and inserts a CarImage row using
	// the given (possibly transactional) database handle.
	StoreCarPhoto(tx *gorm.DB, carID uint, payload string) (*models.CarImage, error)

	// Hydrate fills the computed ImageURL field for offloaded photos.
	Hydrate(img *models.CarImage)

	// CleanupCarPhotos removes offloaded objects for a deleted car.
	CleanupCarPhotos(images []models.CarImage)
}

// CarPhotoService is the production PhotoService implementation
type CarPhotoService struct {
	s3      S3Interface
	offload bool
}

var photoServiceInstance PhotoService

// InitPhotoService initializes the photo service. With offload disabled the
// base64 payload is stored inline and s3 may be nil.
func InitPhotoService(s3 S3Interface, offload bool) PhotoService {
	photoServiceInstance = &CarPhotoService{s3: s3, offload: offload}
	return photoServiceInstance
}

// GetPhotoService returns the initialized photo service instance
func GetPhotoService() PhotoService {
	return photoServiceInstance
}

// SetPhotoService sets the photo service instance (primarily for testing)
func SetPhotoService(service PhotoService) {
	photoServiceInstance = service
}

// StoreCarPhoto validates, optionally offloads, and persists one photo
func (p *CarPhotoService) StoreCarPhoto(tx *gorm.DB, carID uint, payload string) (*models.CarImage, error) {
	data, err := utils.DecodeCarPhoto(payload)
	if err != nil {
		return nil, err
	}

	img := models.CarImage{CarID: carID}
	if p.offload && p.s3 != nil {
		key := fmt.Sprintf("cars/%d/%s.jpg", carID, uuid.NewString())
		if err := p.s3.UploadBytes(key, data, "image/jpeg"); err != nil {
			return nil, err
		}
		img.S3Key = &key
	} else {
		img.ImageBase64 = payload
	}

	if err := tx.Create(&img).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

// Hydrate computes a presigned URL for an offloaded photo
func (p *CarPhotoService) Hydrate(img *models.CarImage) {
	if img == nil || img.S3Key == nil || p.s3 == nil {
		return
	}
	url, err := p.s3.GetPresignedURL(*img.S3Key)
	if err != nil {
		log.Printf("warning: failed to presign %s: %v", *img.S3Key, err)
		return
	}
	img.ImageURL = &url
}

// CleanupCarPhotos deletes offloaded objects after the rows are gone.
// Object cleanup is best effort; the rows were removed transactionally.
func (p *CarPhotoService) CleanupCarPhotos(images []models.CarImage) {
	if p.s3 == nil {
		return
	}
	for _, img := range images {
		if img.S3Key == nil {
			continue
		}
		if err := p.s3.DeleteFile(*img.S3Key); err != nil {
			log.Printf("warning: failed to delete %s: %v", *img.S3Key, err)
		}
	}
}
