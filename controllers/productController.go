package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	appconfig "github.com/feneonmalo-star/La-boutique-de-Lea/config"
	"github.com/feneonmalo-star/La-boutique-de-Lea/initializers"
	"github.com/feneonmalo-star/La-boutique-de-Lea/models"
)

func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// GetProducts lists the catalog, optionally filtered by category and by a
// case-insensitive name search.
func GetProducts(ctx *gin.Context) {
	query := initializers.DB.Model(&models.Product{})

	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var products []models.Product
	if result := query.Find(&products); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func GetProduct(ctx *gin.Context) {
	var product models.Product
	result := initializers.DB.First(&product, "id = ?", ctx.Param("id"))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product.ID = uuid.NewString()
	product.CreatedAt = time.Now().UTC()
	if err := initializers.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func UpdateProduct(ctx *gin.Context) {
	var existing models.Product
	if err := initializers.DB.First(&existing, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch product", err)
		}
		return
	}

	var update models.Product
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Model(&existing).Updates(map[string]any{
		"name":        update.Name,
		"description": update.Description,
		"price":       update.Price,
		"image_url":   update.ImageUrl,
		"category":    update.Category,
		"stock":       update.Stock,
	}).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		return
	}

	initializers.DB.First(&existing, "id = ?", existing.ID)
	ctx.JSON(http.StatusOK, existing)
}

func DeleteProduct(ctx *gin.Context) {
	result := initializers.DB.Delete(&models.Product{}, "id = ?", ctx.Param("id"))
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImage pushes a product photo to S3 and stores the resulting
// public URL on the product.
func UploadProductImage(cfg *appconfig.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		file, err := ctx.FormFile("image")
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
			return
		}

		productID := ctx.Param("id")
		var product models.Product
		if err := initializers.DB.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
			}
			return
		}

		uploader, err := getAWSUploader()
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
			return
		}

		f, err := file.Open()
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Unable to read file", err)
			return
		}
		defer f.Close()

		key := fmt.Sprintf("%s-%s-%s", productID, time.Now().Format("20060102150405"), file.Filename)
		result, err := uploader.Upload(ctx.Request.Context(), &s3.PutObjectInput{
			Bucket:      aws.String(cfg.S3Bucket),
			Key:         aws.String(key),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		if err != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, err)
			respondWithError(ctx, http.StatusInternalServerError, "Upload failed", err)
			return
		}

		if err := initializers.DB.Model(&product).Update("image_url", result.Location).Error; err != nil {
			log.Printf("Image uploaded but not saved for product %s: %v", productID, err)
		}

		ctx.JSON(http.StatusOK, gin.H{"url": result.Location})
	}
}
