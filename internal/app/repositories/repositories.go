package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminUserRepository *AdminUserRepository
	UpdateRepository    *UpdateRepository
	CutoffRepository    *CutoffRepository
	BookingRepository   *BookingRepository
	GuideRepository     *GuideRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminUserRepository: NewAdminUserRepository(db),
		UpdateRepository:    NewUpdateRepository(db),
		CutoffRepository:    NewCutoffRepository(db),
		BookingRepository:   NewBookingRepository(db),
		GuideRepository:     NewGuideRepository(db),
	}
}
