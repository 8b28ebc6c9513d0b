package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const reportURLExpiry = 24 * time.Hour

type ReportService interface {
	ExportRecommendationsCSV(ctx context.Context, tenantID uuid.UUID) (string, error)
}

type reportService struct {
	alertService AlertService
	minioService MinioService
	bucketName   string
}

func NewReportService(alertService AlertService, minioService MinioService, bucketName string) ReportService {
	return &reportService{
		alertService: alertService,
		minioService: minioService,
		bucketName:   bucketName,
	}
}

// ExportRecommendationsCSV writes the tenant's current order recommendations
// to object storage as CSV and returns a pre-signed download URL.
func (s *reportService) ExportRecommendationsCSV(ctx context.Context, tenantID uuid.UUID) (string, error) {
	recommendations, err := s.alertService.OrderRecommendations(ctx, tenantID)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write([]string{"product_id", "product_name", "current_stock", "recommended_quantity", "priority", "reason"}); err != nil {
		return "", fmt.Errorf("failed to write report header: %w", err)
	}
	for _, rec := range recommendations {
		row := []string{
			rec.ProductID,
			rec.ProductName,
			strconv.FormatFloat(rec.CurrentStock, 'f', -1, 64),
			strconv.FormatFloat(rec.RecommendedQuantity, 'f', -1, 64),
			string(rec.Priority),
			rec.Reason,
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write report row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to build report: %w", err)
	}

	if err := s.minioService.EnsureBucketExists(ctx, s.bucketName); err != nil {
		return "", fmt.Errorf("failed to ensure report bucket: %w", err)
	}

	objectKey := fmt.Sprintf("%s/order-recommendations-%s.csv", tenantID, time.Now().UTC().Format("20060102-150405"))
	if err := s.minioService.UploadObject(ctx, s.bucketName, objectKey, "text/csv", &buf, int64(buf.Len())); err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	url, err := s.minioService.GetPresignedURL(s.bucketName, objectKey, reportURLExpiry)
	if err != nil {
		// The object is unreachable without a URL, so do not leave it behind.
		if cleanupErr := s.minioService.DeleteObject(ctx, s.bucketName, objectKey); cleanupErr != nil {
			log.Printf("failed to remove unreachable report %s: %v", objectKey, cleanupErr)
		}
		return "", fmt.Errorf("failed to generate report URL: %w", err)
	}
	return url, nil
}
