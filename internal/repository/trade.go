package repository

import (
	"barshift-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TradeRepository handles database operations for shift trades
type TradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new trade repository
func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// Create creates a new trade
func (r *TradeRepository) Create(trade *models.ShiftTrade) error {
	return r.db.Create(trade).Error
}

// GetByID retrieves a trade with shift and parties preloaded
func (r *TradeRepository) GetByID(id uuid.UUID) (*models.ShiftTrade, error) {
	var trade models.ShiftTrade
	err := r.db.Preload("Shift").Preload("Proposer").Preload("Receiver").
		First(&trade, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &trade, nil
}

// GetOpenByShift retrieves non-terminal trades for a shift
func (r *TradeRepository) GetOpenByShift(shiftID uuid.UUID) ([]models.ShiftTrade, error) {
	var trades []models.ShiftTrade
	err := r.db.Where("shift_id = ? AND status IN ?", shiftID,
		[]models.TradeStatus{models.TradeStatusProposed, models.TradeStatusAccepted}).
		Find(&trades).Error
	return trades, err
}

// GetByStaffID retrieves trades where the staff member is proposer or receiver
func (r *TradeRepository) GetByStaffID(staffID uuid.UUID, limit, offset int) ([]models.ShiftTrade, int64, error) {
	var trades []models.ShiftTrade
	var total int64

	query := r.db.Model(&models.ShiftTrade{}).
		Where("proposer_id = ? OR receiver_id = ?", staffID, staffID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Shift").
		Where("proposer_id = ? OR receiver_id = ?", staffID, staffID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&trades).Error
	return trades, total, err
}

// Update updates a trade
func (r *TradeRepository) Update(trade *models.ShiftTrade) error {
	return r.db.Save(trade).Error
}
