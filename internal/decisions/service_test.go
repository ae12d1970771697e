package decisions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditcore/internal/scoring"
)

type fakeStore struct {
	byID   map[int64]*Decision
	order  []int64
	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: map[int64]*Decision{}}
}

func (f *fakeStore) Insert(ctx context.Context, d *Decision) error {
	f.nextID++
	d.ID = f.nextID
	d.CreatedAt = time.Now().UTC()
	cp := *d
	f.byID[d.ID] = &cp
	f.order = append(f.order, d.ID)
	return nil
}

func (f *fakeStore) List(ctx context.Context) ([]Decision, error) {
	var result []Decision
	for _, id := range f.order {
		result = append(result, *f.byID[id])
	}
	return result, nil
}

func (f *fakeStore) Get(ctx context.Context, id int64) (*Decision, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeStore) Update(ctx context.Context, d *Decision) error {
	if _, ok := f.byID[d.ID]; !ok {
		return ErrNotFound
	}
	cp := *d
	f.byID[d.ID] = &cp
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return ErrNotFound
	}
	delete(f.byID, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func strptr(s string) *string { return &s }

func TestCreateMaterializesDerivedFields(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	in := Input{Revenue: 250_000, Sector: strptr("RETAIL"), BehaviorData: strptr("some bad signals")}
	d, err := svc.Create(ctx, in)
	require.NoError(t, err)

	want := scoring.Score(in.Revenue, in.Sector, in.BehaviorData)
	assert.Equal(t, want.Score, d.Score)
	assert.Equal(t, want.Tier, d.Tier)
	assert.Equal(t, want.Rationale, d.Rationale)
	assert.Equal(t, want.Visuals, d.Visuals)
	assert.NotZero(t, d.ID)
}

func TestUpdateRecomputesDerivedFields(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	d, err := svc.Create(ctx, Input{Revenue: 50_000})
	require.NoError(t, err)
	assert.Equal(t, 550.0, d.Score)

	updated, err := svc.Update(ctx, d.ID, Input{
		Revenue:      1_500_000,
		Sector:       strptr("Technology"),
		BehaviorData: strptr("good history"),
	})
	require.NoError(t, err)
	assert.Equal(t, 900.0, updated.Score)
	assert.Equal(t, scoring.TierPlatinum, updated.Tier)

	// Re-reading yields consistent derived fields.
	got, err := svc.GetByID(ctx, d.ID)
	require.NoError(t, err)
	want := scoring.Score(1_500_000, strptr("Technology"), strptr("good history"))
	assert.Equal(t, want.Score, got.Score)
	assert.Equal(t, want.Tier, got.Tier)
}

func TestGetAllInsertionOrder(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	for _, rev := range []float64{10_000, 200_000, 2_000_000} {
		_, err := svc.Create(ctx, Input{Revenue: rev})
		require.NoError(t, err)
	}

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].ID < all[1].ID && all[1].ID < all[2].ID)
}

func TestNotFoundPaths(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, 42, Input{Revenue: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 42), ErrNotFound)
}

func TestDeleteRemoves(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	d, err := svc.Create(ctx, Input{Revenue: 1})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, d.ID))

	_, err = svc.GetByID(ctx, d.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
