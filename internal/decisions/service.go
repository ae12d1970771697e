package decisions

import (
	"context"

	"creditcore/internal/scoring"
)

// Service orchestrates credit decisions: it runs the scoring engine over the
// applicant inputs and keeps the derived fields consistent on every write.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, in Input) (*Decision, error) {
	d := &Decision{
		Revenue:      in.Revenue,
		Sector:       in.Sector,
		BehaviorData: in.BehaviorData,
	}
	d.materialize()
	if err := s.store.Insert(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) GetAll(ctx context.Context) ([]Decision, error) {
	return s.store.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Decision, error) {
	return s.store.Get(ctx, id)
}

// Update overwrites the input triple and recomputes all derived fields.
// Partial input is not supported: the triple is taken whole from in.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*Decision, error) {
	d, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Revenue = in.Revenue
	d.Sector = in.Sector
	d.BehaviorData = in.BehaviorData
	d.materialize()
	if err := s.store.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (d *Decision) materialize() {
	res := scoring.Score(d.Revenue, d.Sector, d.BehaviorData)
	d.Score = res.Score
	d.Tier = res.Tier
	d.Rationale = res.Rationale
	d.Visuals = res.Visuals
}
