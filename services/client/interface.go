package client

import (
	"context"

	clientRepo "github.com/mohamedfathy32/elnaseem-crm/database/repository/client"
	settingsRepo "github.com/mohamedfathy32/elnaseem-crm/database/repository/settings"
	userRepo "github.com/mohamedfathy32/elnaseem-crm/database/repository/user"
	"github.com/mohamedfathy32/elnaseem-crm/models"
)

// ClientIntake carries the fields a data-entry user records for a new
// prospect. Prices and exchange figures never enter here; they only appear
// at the sold transition.
type ClientIntake struct {
	Source           string `json:"source"`
	ClientName       string `json:"clientName"`
	WhatsappNumber   string `json:"whatsappNumber"`
	TravelDate       string `json:"travelDate"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
	FollowUpDate     string `json:"followUpDate"`
	PassportURL      string `json:"passportUrl"`
	Notes            string `json:"notes"`
}

// StatusChangeRequest carries a pipeline transition. Sale is mandatory when
// the target status is sold and ignored otherwise. Note, when present, is
// appended to the client's note log.
type StatusChangeRequest struct {
	Status string              `json:"status"`
	Sale   *models.SaleDetails `json:"sale,omitempty"`
	Note   string              `json:"note,omitempty"`
}

type ClientService interface {
	// Intake & lifecycle
	Create(ctx context.Context, intake ClientIntake, actor *models.User) (*models.Client, error)
	RequestStatusChange(ctx context.Context, clientID string, req StatusChangeRequest, actor *models.User) (*models.Client, error)
	AddNote(ctx context.Context, clientID, text string, actor *models.User) (*models.Client, error)

	// Assignment
	RequestAssignment(ctx context.Context, clientID, employeeID string, actor *models.User) (*models.Client, error)
	BulkAssign(ctx context.Context, clientIDs []string, employeeID string, actor *models.User) error

	// Queries (visibility: non-managers see only clients assigned to them)
	Get(ctx context.Context, clientID string, actor *models.User) (*models.Client, error)
	ListMine(ctx context.Context, actor *models.User) ([]models.Client, error)
	ListAll(ctx context.Context, actor *models.User) ([]models.Client, error)
	ListByStatus(ctx context.Context, status string, actor *models.User) ([]models.Client, error)
	ListUnassigned(ctx context.Context, actor *models.User) ([]models.Client, error)
}

// DefaultClientService is the production implementation.
type DefaultClientService struct {
	Repo     clientRepo.ClientRepository
	Users    userRepo.UserRepository
	Settings settingsRepo.SettingsRepository
}

func NewDefaultClientService(repo clientRepo.ClientRepository, users userRepo.UserRepository, settings settingsRepo.SettingsRepository) *DefaultClientService {
	return &DefaultClientService{Repo: repo, Users: users, Settings: settings}
}
