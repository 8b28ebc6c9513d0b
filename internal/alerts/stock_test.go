package alerts

import (
	"math"
	"testing"

	"medstock/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func stockProduct(current, min, max float64) *models.Product {
	return &models.Product{
		ID:            uuid.New(),
		Name:          "Saline 0.9%",
		UnitOfMeasure: "bags",
		CurrentStock:  current,
		MinStock:      min,
		MaxStock:      max,
		Active:        true,
	}
}

func TestEvaluateStockLevel_OutOfStock(t *testing.T) {
	cfg := DefaultConfig()

	for _, stock := range []float64{0, -3} {
		alert := EvaluateStockLevel(stockProduct(stock, 10, 100), cfg)
		assert.NotNil(t, alert)
		assert.Equal(t, models.AlertTypeOutOfStock, alert.Type)
		assert.Equal(t, models.SeverityError, alert.Severity)
		assert.Equal(t, 1, alert.Priority)
		assert.NotNil(t, alert.StockLevel)
		assert.Equal(t, stock, *alert.StockLevel)
		assert.Contains(t, alert.Message, "no stock available")
	}
}

func TestEvaluateStockLevel_AbsoluteThreshold(t *testing.T) {
	// minStock=10, absolute offset 10 -> threshold 20
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		stock    float64
		wantType models.AlertType
		severity models.Severity
		priority int
	}{
		{"between min and threshold", 15, models.AlertTypeLowStock, models.SeverityWarning, 4},
		{"at threshold", 20, models.AlertTypeLowStock, models.SeverityWarning, 4},
		{"below minimum", 8, models.AlertTypeLowStock, models.SeverityError, 2},
		{"at minimum", 10, models.AlertTypeLowStock, models.SeverityError, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := EvaluateStockLevel(stockProduct(tt.stock, 10, 100), cfg)
			assert.NotNil(t, alert)
			assert.Equal(t, tt.wantType, alert.Type)
			assert.Equal(t, tt.severity, alert.Severity)
			assert.Equal(t, tt.priority, alert.Priority)
		})
	}

	assert.Nil(t, EvaluateStockLevel(stockProduct(25, 10, 100), cfg), "above threshold yields no alert")
}

func TestEvaluateStockLevel_PercentageThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LowStockThresholdType = models.ThresholdTypePercentage
	cfg.LowStockThresholdValue = 50 // minStock=20 -> threshold 30

	alert := EvaluateStockLevel(stockProduct(28, 20, 200), cfg)
	assert.NotNil(t, alert)
	assert.Equal(t, models.AlertTypeLowStock, alert.Type)
	assert.Equal(t, models.SeverityWarning, alert.Severity)

	assert.Nil(t, EvaluateStockLevel(stockProduct(31, 20, 200), cfg))
}

func TestEvaluateStockLevel_MessageIncludesStockAndMinimum(t *testing.T) {
	alert := EvaluateStockLevel(stockProduct(8, 10, 100), DefaultConfig())
	assert.NotNil(t, alert)
	assert.Contains(t, alert.Message, "8")
	assert.Contains(t, alert.Message, "bags")
	assert.Contains(t, alert.Message, "10")
}

func TestEvaluateStockLevel_NonFiniteStockTreatedAsZero(t *testing.T) {
	cfg := DefaultConfig()

	for _, stock := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		alert := EvaluateStockLevel(stockProduct(stock, 10, 100), cfg)
		assert.NotNil(t, alert)
		assert.Equal(t, models.AlertTypeOutOfStock, alert.Type)
		assert.Equal(t, 0.0, *alert.StockLevel)
	}
}
