package usecase_test

import (
	"context"
	"sync"

	authModel "givehub-admin/internal/auth/domain/model"
	"givehub-admin/internal/dashboard/config"
	"givehub-admin/internal/dashboard/domain/model"
	"givehub-admin/internal/dashboard/usecase"
	"givehub-admin/internal/shared/eventbus"
	"givehub-admin/internal/shared/logger"
	"givehub-admin/internal/shared/utils"

	"github.com/stretchr/testify/mock"
)

// mockPlatformAPI implements client.PlatformAPI for usecase tests.
type mockPlatformAPI struct {
	mock.Mock
}

func (m *mockPlatformAPI) Login(ctx context.Context, credentials authModel.LoginCredentials) (*authModel.LoginResult, error) {
	args := m.Called(ctx, credentials)
	if result := args.Get(0); result != nil {
		return result.(*authModel.LoginResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlatformAPI) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		return result.([]model.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlatformAPI) ListProjects(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		return result.([]model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlatformAPI) ListProjectsByCategory(ctx context.Context, categoryID string) ([]model.Project, error) {
	args := m.Called(ctx, categoryID)
	if result := args.Get(0); result != nil {
		return result.([]model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlatformAPI) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	args := m.Called(ctx, projectID)
	if result := args.Get(0); result != nil {
		return result.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlatformAPI) CreateProject(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error) {
	args := m.Called(ctx, req)
	if result := args.Get(0); result != nil {
		return result.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlatformAPI) UpdateProject(ctx context.Context, projectID string, req model.UpdateProjectRequest) (*model.Project, error) {
	args := m.Called(ctx, projectID, req)
	if result := args.Get(0); result != nil {
		return result.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlatformAPI) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *mockPlatformAPI) SetProjectApproval(ctx context.Context, projectID string, approved bool) error {
	args := m.Called(ctx, projectID, approved)
	return args.Error(0)
}

func (m *mockPlatformAPI) AttachProjectMedia(ctx context.Context, projectID string, files []model.FileUpload) (*model.Project, error) {
	args := m.Called(ctx, projectID, files)
	if result := args.Get(0); result != nil {
		return result.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlatformAPI) RemoveProjectMedia(ctx context.Context, projectID, mediaID string) error {
	args := m.Called(ctx, projectID, mediaID)
	return args.Error(0)
}

func (m *mockPlatformAPI) ListUsers(ctx context.Context) ([]model.DirectoryUser, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		return result.([]model.DirectoryUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlatformAPI) UpdateUserRole(ctx context.Context, userID, role string) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *mockPlatformAPI) UpdateProfile(ctx context.Context, req model.ProfileUpdateRequest) (*model.DirectoryUser, error) {
	args := m.Called(ctx, req)
	if result := args.Get(0); result != nil {
		return result.(*model.DirectoryUser), args.Error(1)
	}
	return nil, args.Error(1)
}

// mockSessionClient implements client.SessionClient.
type mockSessionClient struct {
	mock.Mock
}

func (m *mockSessionClient) CurrentSession(ctx context.Context, sessionID string) (*authModel.Session, error) {
	args := m.Called(ctx, sessionID)
	if result := args.Get(0); result != nil {
		return result.(*authModel.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionClient) UpdateSessionUser(ctx context.Context, sessionID string, user authModel.SessionUser) error {
	args := m.Called(ctx, sessionID, user)
	return args.Error(0)
}

// mockBankDetailsRepository implements repository.BankDetailsRepository.
type mockBankDetailsRepository struct {
	mock.Mock
}

func (m *mockBankDetailsRepository) Get(ctx context.Context, userID string) (model.BankDetails, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.BankDetails), args.Error(1)
}

func (m *mockBankDetailsRepository) Put(ctx context.Context, userID string, details model.BankDetails) error {
	args := m.Called(ctx, userID, details)
	return args.Error(0)
}

// mockAuditLogRepository implements repository.AuditLogRepository.
type mockAuditLogRepository struct {
	mock.Mock
}

func (m *mockAuditLogRepository) Append(ctx context.Context, event model.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockAuditLogRepository) List(ctx context.Context, limit int) ([]model.AuditEvent, error) {
	args := m.Called(ctx, limit)
	if result := args.Get(0); result != nil {
		return result.([]model.AuditEvent), args.Error(1)
	}
	return nil, args.Error(1)
}

// recordingEventBus captures published events synchronously so tests can
// assert on them without racing the fire-and-forget goroutine.
type recordingEventBus struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (b *recordingEventBus) Subscribe(eventType string, handler eventbus.Handler) {}

func (b *recordingEventBus) Publish(ctx context.Context, event eventbus.Event) error {
	b.record(event)
	return nil
}

func (b *recordingEventBus) PublishAndForget(ctx context.Context, event eventbus.Event) {
	b.record(event)
}

func (b *recordingEventBus) Unsubscribe(eventType string) {}

func (b *recordingEventBus) GetSubscriberCount(eventType string) int { return 0 }

func (b *recordingEventBus) record(event eventbus.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingEventBus) recorded() []eventbus.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]eventbus.Event(nil), b.events...)
}

func (b *recordingEventBus) recordedTypes() []string {
	types := make([]string, 0)
	for _, event := range b.recorded() {
		types = append(types, event.Type())
	}
	return types
}

// fixtures bundles a usecase with all its mocked dependencies.
type fixtures struct {
	platform *mockPlatformAPI
	sessions *mockSessionClient
	bank     *mockBankDetailsRepository
	audit    *mockAuditLogRepository
	bus      *recordingEventBus
	uc       *usecase.DashboardUsecase
}

func newFixtures() *fixtures {
	f := &fixtures{
		platform: &mockPlatformAPI{},
		sessions: &mockSessionClient{},
		bank:     &mockBankDetailsRepository{},
		audit:    &mockAuditLogRepository{},
		bus:      &recordingEventBus{},
	}
	f.uc = usecase.NewDashboardUsecase(
		f.platform,
		f.sessions,
		f.bank,
		f.audit,
		config.DefaultConfig(),
		f.bus,
		logger.NewLoggerWithConfig("error", "text"),
	)
	return f
}

// signedInContext mimics what the session middleware injects.
func signedInContext(userID, email string) context.Context {
	ctx := utils.WithSessionID(context.Background(), "sess-1")
	ctx = utils.WithUserID(ctx, userID)
	ctx = utils.WithUserEmail(ctx, email)
	return utils.WithToken(ctx, "platform-token")
}
