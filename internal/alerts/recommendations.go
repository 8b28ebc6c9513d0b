package alerts

import (
	"math"
	"sort"

	"medstock/internal/models"
)

var priorityRank = map[models.RecommendationPriority]int{
	models.RecommendationPriorityHigh:   0,
	models.RecommendationPriorityMedium: 1,
	models.RecommendationPriorityLow:    2,
}

// GenerateOrderRecommendations derives purchase-order suggestions from
// stock-related alerts. Expiration alerts never produce recommendations.
// Output is sorted high before medium before low; equal priorities keep the
// relative order of the filtered input.
func GenerateOrderRecommendations(alerts []models.Alert) []models.OrderRecommendation {
	recs := make([]models.OrderRecommendation, 0, len(alerts))

	for _, alert := range alerts {
		if alert.Type != models.AlertTypeOutOfStock && alert.Type != models.AlertTypeLowStock {
			continue
		}
		product := alert.Product
		if product == nil {
			continue
		}

		rec := models.OrderRecommendation{
			ProductID:           product.ID.String(),
			ProductName:         product.Name,
			CurrentStock:        product.CurrentStock,
			RecommendedQuantity: product.MaxStock - product.CurrentStock,
		}

		switch {
		case alert.Type == models.AlertTypeOutOfStock:
			rec.RecommendedQuantity = math.Max(product.MaxStock, product.MinStock*2)
			rec.Priority = models.RecommendationPriorityHigh
			rec.Reason = "urgent: product out of stock"
		case product.CurrentStock <= product.MinStock:
			rec.Priority = models.RecommendationPriorityHigh
			rec.Reason = "stock below minimum"
		default:
			rec.Priority = models.RecommendationPriorityMedium
			rec.Reason = "routine restock"
		}

		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank[recs[i].Priority] < priorityRank[recs[j].Priority]
	})
	return recs
}
