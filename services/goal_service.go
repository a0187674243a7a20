package services

import (
	"errors"

	"github.com/Sumanth1803/DietPlan/models"

	"gorm.io/gorm"
)

var ErrInvalidGoal = errors.New("goal targets must be positive")

// DefaultTargets applies to every user without a saved DailyGoal row.
var DefaultTargets = models.DailyGoal{
	Calories: 2000,
	Protein:  50,
	Carbs:    275,
	Fat:      70,
	Fiber:    28,
	Sugar:    50,
	Sodium:   2300,
}

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// Effective returns the targets used for summaries and recommendations:
// the user's own row when present, the defaults otherwise. The bool says
// which one it was.
func (s *GoalService) Effective(userID uint) (models.DailyGoal, bool, error) {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultTargets, false, nil
		}
		return models.DailyGoal{}, false, err
	}
	return goal, true, nil
}

func (s *GoalService) Upsert(userID uint, targets models.DailyGoal) (*models.DailyGoal, error) {
	if targets.Calories <= 0 || targets.Protein <= 0 || targets.Carbs <= 0 ||
		targets.Fat <= 0 || targets.Fiber <= 0 || targets.Sugar <= 0 || targets.Sodium <= 0 {
		return nil, ErrInvalidGoal
	}

	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:   userID,
			Calories: targets.Calories,
			Protein:  targets.Protein,
			Carbs:    targets.Carbs,
			Fat:      targets.Fat,
			Fiber:    targets.Fiber,
			Sugar:    targets.Sugar,
			Sodium:   targets.Sodium,
		}
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.Calories = targets.Calories
	goal.Protein = targets.Protein
	goal.Carbs = targets.Carbs
	goal.Fat = targets.Fat
	goal.Fiber = targets.Fiber
	goal.Sugar = targets.Sugar
	goal.Sodium = targets.Sodium

	if err := s.db.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}
