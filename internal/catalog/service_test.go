package catalog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/luooka/casebot/internal/domain"
)

// MockClient is a mock upstream catalog client
type MockClient struct {
	mock.Mock
}

func (m *MockClient) FetchContainerList(ctx context.Context) ([]RemoteContainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RemoteContainer), args.Error(1)
}

func (m *MockClient) FetchContainerDetail(ctx context.Context, id int64) ([]RemoteItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RemoteItem), args.Error(1)
}

// MockRepository is a mock catalog persistence layer
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx context.Context, containers []*domain.Container) error {
	args := m.Called(ctx, containers)
	return args.Error(0)
}

func (m *MockRepository) Load(ctx context.Context) ([]*domain.Container, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Container), args.Error(1)
}

func noSleep(time.Duration) {}

func TestCleanItems(t *testing.T) {
	raw := []RemoteItem{
		{ShortName: "AK-47 | 红线", Rln: "隐秘"},
		{ShortName: "AK-47 | 红线", Rln: "军规级"}, // duplicate, first wins
		{ShortName: "奇怪的东西", Rln: "不认识"},          // unknown tier, dropped
		{ShortName: "爪子刀（★） | 多普勒", Rln: "隐秘"},    // marker overrides tier
		{ShortName: "P250 | 波罗的海", Rln: "军规级"},
		{ShortName: "走私货", Rln: "Contraband"}, // pseudo-tier, never assignable upstream
	}

	items := cleanItems(raw)
	require.Len(t, items, 3)

	assert.Equal(t, "AK-47 | 红线", items[0].ShortName)
	assert.Equal(t, domain.TierCovert, items[0].Tier)
	assert.Equal(t, domain.TierExtra, items[1].Tier)
	assert.Equal(t, domain.TierMilSpec, items[2].Tier)
}

func TestSkipContainerName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"命悬一线武器箱", false},
		{"2020 RMR 传奇纪念包", false},
		{"行动收藏品", false},
		{"狂牙大行动胶囊", true},
		{"涂鸦收藏包", true},
		{"布章胶囊", true},
		{"可爱挂件", true},
		{"闪亮印花", true},
		{"挂件武器箱", false}, // keyword not at the end
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, skipContainerName(tt.name))
		})
	}
}

func TestSnapshotFind(t *testing.T) {
	snap := NewSnapshot([]*domain.Container{
		{Name: "命悬一线武器箱", Type: domain.ContainerCase},
		{Name: "光谱武器箱", Type: domain.ContainerCase},
		{Name: "光谱 2 号武器箱", Type: domain.ContainerCase},
	})

	c, err := snap.Find("光谱武器箱")
	require.NoError(t, err)
	assert.Equal(t, "光谱武器箱", c.Name)

	// Substring match walks names in sorted order; "光谱 2 号武器箱" sorts
	// before "光谱武器箱".
	c, err = snap.Find("光谱")
	require.NoError(t, err)
	assert.Equal(t, "光谱 2 号武器箱", c.Name)

	_, err = snap.Find("不存在")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrContainerNotFound)
}

func TestSnapshotList(t *testing.T) {
	snap := NewSnapshot([]*domain.Container{
		{Name: "b武器箱", Type: domain.ContainerCase},
		{Name: "a武器箱", Type: domain.ContainerCase},
		{Name: "某某纪念包", Type: domain.ContainerSouvenir},
		{Name: "某某收藏品", Type: domain.ContainerCollection},
	})

	groups := snap.List()
	assert.Equal(t, []string{"a武器箱", "b武器箱"}, groups[domain.ContainerCase])
	assert.Equal(t, []string{"某某纪念包"}, groups[domain.ContainerSouvenir])
	assert.Equal(t, []string{"某某收藏品"}, groups[domain.ContainerCollection])
}

func TestSyncCollectsAndPublishes(t *testing.T) {
	client := new(MockClient)
	repo := new(MockRepository)
	store := NewStore()
	ctx := context.Background()

	client.On("FetchContainerList", ctx).Return([]RemoteContainer{
		{ID: 1, Name: "命悬一线武器箱", Img: "http://img/1"},
		{ID: 2, Name: "闪亮印花", Img: ""}, // skipped by name rules
		{ID: 3, Name: "空箱子", Img: ""},   // cleaned to nothing, dropped
	}, nil)
	client.On("FetchContainerDetail", ctx, int64(1)).Return([]RemoteItem{
		{ShortName: "AK-47 | 红线", Rln: "军规级"},
		{ShortName: "AWP | 雷击", Rln: "受限"},
	}, nil)
	client.On("FetchContainerDetail", ctx, int64(3)).Return([]RemoteItem{
		{ShortName: "垃圾", Rln: "不认识"},
	}, nil)
	repo.On("Save", ctx, mock.Anything).Return(nil)

	svc := NewService(client, repo, store, WithSleep(noSleep))
	count, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	c, err := svc.Find("命悬一线武器箱")
	require.NoError(t, err)
	require.Len(t, c.Items, 2)

	// Probabilities are applied before publishing.
	total := 0.0
	for _, it := range c.Items {
		total += it.Probability
	}
	assert.InDelta(t, 1.0, total, 1e-6)

	client.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestSyncFailureLeavesSnapshotUntouched(t *testing.T) {
	client := new(MockClient)
	repo := new(MockRepository)
	store := NewStore()
	ctx := context.Background()

	// Seed a live snapshot.
	store.Publish(NewSnapshot([]*domain.Container{
		{Name: "旧武器箱", Type: domain.ContainerCase,
			Items: []domain.CatalogItem{{ShortName: "a", Tier: domain.TierMilSpec, Probability: 1}}},
	}))

	client.On("FetchContainerList", ctx).Return([]RemoteContainer{
		{ID: 1, Name: "新武器箱"},
	}, nil)
	client.On("FetchContainerDetail", ctx, int64(1)).Return(nil, errors.New("boom"))

	svc := NewService(client, repo, store, WithSleep(noSleep))
	_, err := svc.Sync(ctx)
	require.Error(t, err)

	// The old snapshot is still served and the repository was never touched.
	_, err = svc.Find("旧武器箱")
	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFindOnEmptyCatalog(t *testing.T) {
	svc := NewService(new(MockClient), new(MockRepository), NewStore(), WithSleep(noSleep))

	_, err := svc.Find("任何箱子")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestLoadPublishesStoredCatalog(t *testing.T) {
	client := new(MockClient)
	repo := new(MockRepository)
	store := NewStore()
	ctx := context.Background()

	repo.On("Load", ctx).Return([]*domain.Container{
		{Name: "命悬一线武器箱", Type: domain.ContainerCase,
			Items: []domain.CatalogItem{{ShortName: "AK-47 | 红线", Tier: domain.TierMilSpec}}},
	}, nil)

	svc := NewService(client, repo, store, WithSleep(noSleep))
	require.NoError(t, svc.Load(ctx))

	c, err := svc.Find("命悬一线")
	require.NoError(t, err)
	assert.Greater(t, c.Items[0].Probability, 0.0)
}

func TestLoadLogsSnapshotPublish(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	repo := new(MockRepository)
	ctx := context.Background()
	repo.On("Load", ctx).Return([]*domain.Container{
		{Name: "命悬一线武器箱", Type: domain.ContainerCase,
			Items: []domain.CatalogItem{{ShortName: "AK-47 | 红线", Tier: domain.TierMilSpec}}},
	}, nil)

	svc := NewService(new(MockClient), repo, NewStore(), WithSleep(noSleep))
	require.NoError(t, svc.Load(ctx))

	assert.Contains(t, buf.String(), LogMsgSnapshotPublished)
	assert.Contains(t, buf.String(), "containers=1")
}
