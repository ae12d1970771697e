package datamgmt

import (
	"context"
	"time"
)

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: func() time.Time { return time.Now().UTC() }}
}

// analyzeSource classifies a data source. Matching is on the literal source
// names the catalog uses.
func analyzeSource(dataSource string) string {
	switch dataSource {
	case "API":
		return "The data from the API is valid and up-to-date."
	case "Database":
		return "The data from the database needs to be cleaned and normalized."
	default:
		return "Unable to analyze the data source."
	}
}

func (s *Service) Create(ctx context.Context, in Input) (*Record, error) {
	rec := &Record{
		DataSource:      in.DataSource,
		DataType:        in.DataType,
		DataFormat:      in.DataFormat,
		DataOwner:       in.DataOwner,
		DataDescription: in.DataDescription,
		IsActive:        in.IsActive,
		Analysis:        analyzeSource(in.DataSource),
		LastUpdated:     s.now(),
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) GetAll(ctx context.Context) ([]Record, error) {
	return s.store.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Record, error) {
	return s.store.Get(ctx, id)
}

// Update overwrites the mutable fields and keeps the derived ones fresh: the
// analysis tracks the possibly-changed source and lastUpdated records the
// write time.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*Record, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.DataSource = in.DataSource
	rec.DataType = in.DataType
	rec.DataFormat = in.DataFormat
	rec.DataOwner = in.DataOwner
	rec.DataDescription = in.DataDescription
	rec.IsActive = in.IsActive
	rec.Analysis = analyzeSource(in.DataSource)
	rec.LastUpdated = s.now()
	if err := s.store.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
