package ports

import "go.trai.ch/nudge/internal/core/domain"

// PlanLoader defines the interface for loading the reminder plan.
//
//go:generate go run go.uber.org/mock/mockgen -source=plan_loader.go -destination=mocks/mock_plan_loader.go -package=mocks
type PlanLoader interface {
	// Load reads the plan from the given path.
	Load(path string) (*domain.Plan, error)
}
